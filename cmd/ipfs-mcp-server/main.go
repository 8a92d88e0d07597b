package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shamank/ipfs-mcp-server/pkg/config"
	"github.com/shamank/ipfs-mcp-server/pkg/mcpserver"
	"github.com/shamank/ipfs-mcp-server/pkg/registry"
	"github.com/shamank/ipfs-mcp-server/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	setupLogger(cfg.Debug)
	defer func() { _ = zap.L().Sync() }()

	var node *storage.NodeClient
	if cfg.NodeAPIURL != "" {
		node, err = storage.NewNodeClient(cfg.NodeAPIURL, cfg.Timeouts.NodeFetch, cfg.Timeouts.NodeUpload)
		if err != nil {
			zap.L().Fatal("failed to connect to IPFS node API",
				zap.String("url", cfg.NodeAPIURL), zap.Error(err))
		}
		zap.L().Info("using IPFS node API", zap.String("url", cfg.NodeAPIURL))
	}

	store := storage.NewClient(cfg.Gateways, node, cfg.Timeouts)
	srv := mcpserver.New(registry.New(), store)

	zap.L().Info("starting MCP server on stdio",
		zap.Strings("gateways", cfg.Gateways),
		zap.Bool("upload_enabled", node != nil))

	if err := srv.ServeStdio(); err != nil {
		zap.L().Fatal("server terminated", zap.Error(err))
	}
}

// setupLogger installs the global zap logger. Everything goes to stderr:
// stdout belongs to the MCP stdio transport.
func setupLogger(debug bool) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
