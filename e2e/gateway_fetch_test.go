//go:build e2e

package e2e

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shamank/ipfs-mcp-server/pkg/storage"
)

// "Hello from IPFS Gateway Checker", pinned on the public network.
const helloCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

func TestGatewayFetchLive(t *testing.T) {
	gateway := os.Getenv("IPFS_GATEWAY_URL")
	if gateway == "" {
		t.Skip("IPFS_GATEWAY_URL not set")
	}

	gw := storage.NewGatewayClient([]string{gateway}, 30*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	data, mimeType, err := gw.Fetch(ctx, helloCID)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty body")
	}
	if !strings.Contains(string(data), "Hello from IPFS") {
		t.Fatalf("unexpected body: %q", string(data))
	}
	if mimeType == "" {
		t.Fatal("gateway returned no content type")
	}
}

func TestNodeFetchLive(t *testing.T) {
	api := os.Getenv("IPFS_NODE_API_URL")
	if api == "" {
		t.Skip("IPFS_NODE_API_URL not set")
	}

	node, err := storage.NewNodeClient(api, time.Minute, time.Minute)
	if err != nil {
		t.Fatalf("NewNodeClient error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	id, err := node.Upload(ctx, []byte("round trip"))
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	data, _, err := node.Fetch(ctx, id)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(data) != "round trip" {
		t.Fatalf("round trip mismatch: %q", string(data))
	}
}
