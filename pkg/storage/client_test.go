package storage

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shamank/ipfs-mcp-server/pkg/config"
)

func TestClient_UploadWithoutNode(t *testing.T) {
	c := NewClient([]string{"https://gw/ipfs/{cid}"}, nil, config.Timeouts{}.WithDefaults())

	if c.CanUpload() {
		t.Fatal("gateway-only client must not report upload capability")
	}
	if _, err := c.Upload(context.Background(), []byte("data")); !errors.Is(err, ErrNoNode) {
		t.Fatalf("expected ErrNoNode, got %v", err)
	}
}

func TestClient_GatewayFetchWithoutNode(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient([]string{srv.URL + "/ipfs/{cid}"}, nil, config.Timeouts{GatewayAttempt: time.Second})
	data, mimeType, err := c.Fetch(context.Background(), "QmTest")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if string(data) != `{"ok":true}` || mimeType != "application/json" {
		t.Fatalf("unexpected result: %q %q", data, mimeType)
	}
}

func TestNodeClient_NilAPI(t *testing.T) {
	n := &NodeClient{}
	if _, _, err := n.Fetch(context.Background(), "QmTest"); err == nil {
		t.Fatal("expected error from unconfigured node client")
	}
	if _, err := n.Upload(context.Background(), []byte("x")); err == nil {
		t.Fatal("expected error from unconfigured node client")
	}
}
