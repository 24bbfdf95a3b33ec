package postgres

import (
	"fmt"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

const selectColumns = `hash, from_address, to_address, value, gas_price, gas, input, block_number, transaction_index, full_text`

// transactionRow mirrors the transactions table; block_number is BIGINT.
type transactionRow struct {
	Hash             string
	From             string
	To               string
	Value            string
	GasPrice         string
	Gas              string
	Input            string
	BlockNumber      int64
	TransactionIndex string
	FullText         string
}

func (r transactionRow) toModel() (model.Transaction, error) {
	blockNumber, err := safe.Uint64(r.BlockNumber)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("block number of %s: %w", r.Hash, err)
	}
	return model.Transaction{
		Hash:             r.Hash,
		From:             r.From,
		To:               r.To,
		Value:            r.Value,
		GasPrice:         r.GasPrice,
		Gas:              r.Gas,
		Input:            r.Input,
		BlockNumber:      blockNumber,
		TransactionIndex: r.TransactionIndex,
		FullText:         r.FullText,
	}, nil
}
