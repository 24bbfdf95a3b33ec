package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ObservedClient records a metric for every node call.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
	close      func()
}

// Dial connects to a JSON-RPC endpoint and wraps the client with metrics.
func Dial(ctx context.Context, url string, rpcMetrics RPCMetrics) (*ObservedClient, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum node: %w", err)
	}
	observed := NewObservedClient(client, rpcMetrics)
	observed.close = client.Close
	return observed, nil
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (c *ObservedClient) BlockNumber(ctx context.Context) (number uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("block_number", err, started)
	}()
	return c.client.BlockNumber(ctx)
}

func (c *ObservedClient) BlockByNumber(ctx context.Context, number *big.Int) (block *types.Block, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("block_by_number", err, started)
	}()
	return c.client.BlockByNumber(ctx, number)
}

func (c *ObservedClient) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("chain_id", err, started)
	}()
	return c.client.ChainID(ctx)
}

// Close releases the underlying connection when the client was dialled here.
func (c *ObservedClient) Close() {
	if c.close != nil {
		c.close()
	}
}
