package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

// NodeClient talks to a Monero daemon's /json_rpc endpoint
type NodeClient struct {
	rpcURL    string
	rpcClient jsonrpc.RPCClient
}

// NewNodeClient creates a new node client for rpcURL
func NewNodeClient(rpcURL string, timeout time.Duration) *NodeClient {
	return &NodeClient{
		rpcURL: rpcURL,
		rpcClient: jsonrpc.NewClientWithOpts(rpcURL, &jsonrpc.RPCClientOpts{
			HTTPClient: &http.Client{Timeout: timeout},
		}),
	}
}

// blockCountResult is the result object of get_block_count
type blockCountResult struct {
	Count  uint64 `json:"count"`
	Status string `json:"status"`
}

// GetBlockCount returns the daemon's current chain height
func (c *NodeClient) GetBlockCount(ctx context.Context) (uint64, error) {
	var out blockCountResult
	if err := c.rpcClient.CallForInto(ctx, &out, "get_block_count", nil); err != nil {
		return 0, fmt.Errorf("failed to get block count from %s: %w", c.rpcURL, err)
	}
	if out.Status != "" && out.Status != "OK" {
		return 0, fmt.Errorf("node returned status %q", out.Status)
	}
	if out.Count == 0 {
		return 0, fmt.Errorf("node returned no block count")
	}
	return out.Count, nil
}
