package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// NodeClient reads and writes content through a Kubo node's HTTP API.
type NodeClient struct {
	api           *rpc.HttpApi
	fetchTimeout  time.Duration
	uploadTimeout time.Duration
}

// NewNodeClient constructs a Kubo HTTP API client pointed at apiURL. The
// underlying HTTP client uses a short dial/request timeout suitable for a
// local or nearby node.
func NewNodeClient(apiURL string, fetchTimeout, uploadTimeout time.Duration) (*NodeClient, error) {
	httpClient := http.Client{
		Timeout: 5 * time.Second,
	}
	api, err := rpc.NewURLApiWithClient(apiURL, &httpClient)
	if err != nil {
		return nil, fmt.Errorf("connect to IPFS node %s: %w", apiURL, err)
	}
	return &NodeClient{
		api:           api,
		fetchTimeout:  fetchTimeout,
		uploadTimeout: uploadTimeout,
	}, nil
}

// Fetch retrieves content by CID via `ipfs cat`. The node API does not
// report a MIME type, so the hint is always empty.
func (n *NodeClient) Fetch(ctx context.Context, id string) ([]byte, string, error) {
	if n.api == nil {
		return nil, "", fmt.Errorf("ipfs node client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, n.fetchTimeout)
	defer cancel()

	zap.L().Debug("fetching from IPFS node", zap.String("cid", id))

	resp, err := n.api.Request("cat", id).Send(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("ipfs cat %s: %w", id, err)
	}
	defer func(resp *rpc.Response) {
		if err := resp.Close(); err != nil {
			zap.L().Error("error closing node response", zap.String("cid", id), zap.Error(err))
		}
	}(resp)

	if resp.Error != nil {
		return nil, "", fmt.Errorf("ipfs cat %s: %w", id, resp.Error)
	}

	data, err := io.ReadAll(resp.Output)
	if err != nil {
		return nil, "", fmt.Errorf("read ipfs cat output for %s: %w", id, err)
	}
	return data, "", nil
}

// Upload adds data to IPFS through the node's `add` command and returns the
// resulting CID.
func (n *NodeClient) Upload(ctx context.Context, data []byte) (string, error) {
	if n.api == nil {
		return "", fmt.Errorf("ipfs node client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, n.uploadTimeout)
	defer cancel()

	req := n.api.Request("add")
	req.Body(bytes.NewReader(data))

	resp, err := req.Send(ctx)
	if err != nil {
		return "", fmt.Errorf("ipfs add: %w", err)
	}
	defer func(resp *rpc.Response) {
		if err := resp.Close(); err != nil {
			zap.L().Error("error closing node response", zap.Error(err))
		}
	}(resp)

	if resp.Error != nil {
		return "", fmt.Errorf("ipfs add: %w", resp.Error)
	}

	body, err := io.ReadAll(resp.Output)
	if err != nil {
		return "", fmt.Errorf("read ipfs add response: %w", err)
	}

	var addResp struct {
		Hash string `json:"Hash"`
	}
	if err := json.Unmarshal(body, &addResp); err != nil {
		return "", fmt.Errorf("parse ipfs add response: %w", err)
	}
	if addResp.Hash == "" {
		return "", fmt.Errorf("ipfs add returned no hash")
	}

	zap.L().Debug("uploaded content to IPFS node", zap.String("cid", addResp.Hash))
	return addResp.Hash, nil
}
