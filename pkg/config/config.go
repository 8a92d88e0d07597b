// Package config defines the runtime configuration for the server: the
// ordered gateway list, the optional IPFS node API endpoint, debug mode, and
// operation timeouts. It also provides validation and defaulting helpers.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CIDPlaceholder is the token substituted with the content identifier in a
// gateway URL template. A template without it gets the CID appended.
const CIDPlaceholder = "{cid}"

// DefaultGateways is the fallback gateway order used when none are
// configured: the public ipfs.io gateway first, then Cloudflare and Pinata.
var DefaultGateways = []string{
	"https://ipfs.io/ipfs/{cid}",
	"https://cloudflare-ipfs.com/ipfs/{cid}",
	"https://gateway.pinata.cloud/ipfs/{cid}",
}

// Config holds all settings required to run the server.
// Use Validate to fill implicit defaults and to check the gateway templates.
type Config struct {
	// Gateways is the ordered list of HTTP gateway URL templates tried for
	// content retrieval. Each template contains at most one {cid}
	// placeholder. Earlier entries win; later ones are fallbacks.
	Gateways []string `json:"gateways" yaml:"gateways"`
	// NodeAPIURL is the HTTP API endpoint of a Kubo IPFS node (e.g.
	// http://localhost:5001). Optional; when set, the node handles uploads
	// and serves as the preferred read backend.
	NodeAPIURL string `json:"node_api_url" yaml:"node_api_url"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-operation deadlines. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	GatewayAttempt time.Duration // single gateway HTTP GET
	NodeFetch      time.Duration // ipfs cat via node API
	NodeUpload     time.Duration // ipfs add via node API
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	GatewayAttempt: 30s
//	NodeFetch:      60s
//	NodeUpload:     60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.GatewayAttempt == 0 {
		tt.GatewayAttempt = 30 * time.Second
	}
	if tt.NodeFetch == 0 {
		tt.NodeFetch = 60 * time.Second
	}
	if tt.NodeUpload == 0 {
		tt.NodeUpload = 60 * time.Second
	}
	return tt
}

// Validate normalizes the configuration by applying the default gateway list
// when none is configured and verifies each gateway template: templates must
// be non-blank and contain at most one CID placeholder.
func (c *Config) Validate() error {
	if len(c.Gateways) == 0 {
		c.Gateways = append([]string(nil), DefaultGateways...)
	}

	for i, gw := range c.Gateways {
		if strings.TrimSpace(gw) == "" {
			return fmt.Errorf("gateway %d is blank", i)
		}
		if strings.Count(gw, CIDPlaceholder) > 1 {
			return fmt.Errorf("gateway %q has more than one %s placeholder", gw, CIDPlaceholder)
		}
	}

	return nil
}

// Load reads a YAML configuration file, applies environment overrides and
// validates the result. An empty path skips the file and builds the
// configuration from environment and defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Timeouts = cfg.Timeouts.WithDefaults()
	return cfg, nil
}

// Environment variables recognized by applyEnv.
const (
	EnvGateways = "IPFS_MCP_GATEWAYS" // comma-separated gateway templates
	EnvNodeAPI  = "IPFS_MCP_NODE_API" // Kubo API endpoint
	EnvDebug    = "IPFS_MCP_DEBUG"    // any non-empty value enables debug
)

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvGateways); v != "" {
		c.Gateways = c.Gateways[:0]
		for _, gw := range strings.Split(v, ",") {
			if gw = strings.TrimSpace(gw); gw != "" {
				c.Gateways = append(c.Gateways, gw)
			}
		}
	}
	if v := os.Getenv(EnvNodeAPI); v != "" {
		c.NodeAPIURL = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		c.Debug = true
	}
}
