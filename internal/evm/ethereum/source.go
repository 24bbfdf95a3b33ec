// Package ethereum adapts an Ethereum JSON-RPC node into a source of feed events.
package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

// Source reads blocks from a node and converts their transactions.
type Source struct {
	client Client
	signer types.Signer
}

// NewSource resolves the chain id once to pick the sender recovery rules.
func NewSource(ctx context.Context, client Client) (*Source, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	return &Source{
		client: client,
		signer: types.LatestSignerForChainID(chainID),
	}, nil
}

// LatestHeight returns the head block number.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	height, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// FetchBlock returns the feed events of every transaction in the block at height, in block order.
func (s *Source) FetchBlock(ctx context.Context, height uint64) ([]model.RawTransaction, error) {
	block, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(height))
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}

	txs := block.Transactions()
	out := make([]model.RawTransaction, 0, len(txs))
	for i, tx := range txs {
		raw, err := ConvertTransaction(s.signer, height, uint64(i), tx)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", height, err)
		}
		out = append(out, raw)
	}
	return out, nil
}
