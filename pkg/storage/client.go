package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shamank/ipfs-mcp-server/pkg/config"
)

// Fetcher retrieves the raw bytes for a CID along with a MIME type hint.
// An empty hint means the backend had no MIME information.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (data []byte, mimeType string, err error)
}

// Uploader stores a blob and returns the CID it is now addressable by.
type Uploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// ErrNoNode is returned for upload attempts when no node API is configured.
// Gateways are read-only; uploads need a Kubo node.
var ErrNoNode = errors.New("no IPFS node configured")

// Client aggregates the configured backends: always a gateway client, plus
// an optional Kubo node used as the preferred read path and the only write
// path.
type Client struct {
	gateway *GatewayClient
	node    *NodeClient
}

// NewClient wires a storage client from configured gateway templates and an
// optional node client (pass nil when no node API is configured).
func NewClient(gateways []string, node *NodeClient, timeouts config.Timeouts) *Client {
	return &Client{
		gateway: NewGatewayClient(gateways, timeouts.GatewayAttempt),
		node:    node,
	}
}

// Fetch retrieves the content for id. When a node is configured it is tried
// first; the gateway list remains the fallback, so a dead local node never
// makes content unreachable.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, string, error) {
	if c.node != nil {
		data, mimeType, err := c.node.Fetch(ctx, id)
		if err == nil {
			return data, mimeType, nil
		}
		zap.L().Warn("node fetch failed, falling back to gateways",
			zap.String("cid", id), zap.Error(err))
	}
	return c.gateway.Fetch(ctx, id)
}

// Upload stores data via the configured node. Fails with ErrNoNode when the
// server runs gateway-only.
func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	if c.node == nil {
		return "", fmt.Errorf("%w: uploads require node_api_url", ErrNoNode)
	}
	return c.node.Upload(ctx, data)
}

// CanUpload reports whether an upload backend is available.
func (c *Client) CanUpload() bool {
	return c.node != nil
}
