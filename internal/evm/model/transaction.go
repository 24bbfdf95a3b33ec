package model

import "strconv"

// RawTransaction is a transaction event as delivered by the feed.
type RawTransaction struct {
	Hash             string
	From             string
	To               string
	Value            string
	GasPrice         string
	Gas              string
	Input            string
	BlockNumber      uint64
	TransactionIndex string
}

// Transaction is the canonical stored transaction record.
// Numeric attributes are kept as opaque strings so values wider than 64 bits survive untouched.
type Transaction struct {
	Hash             string `json:"hash"`
	From             string `json:"from"`
	To               string `json:"to"`
	Value            string `json:"value"`
	GasPrice         string `json:"gasPrice"`
	Gas              string `json:"gas"`
	Input            string `json:"input"`
	BlockNumber      uint64 `json:"blockNumber"`
	TransactionIndex string `json:"transactionIndex"`
	FullText         string `json:"-"`
}

// NewTransaction builds the stored record for a raw event and derives its full-text projection.
func NewTransaction(raw RawTransaction) Transaction {
	tx := Transaction{
		Hash:             raw.Hash,
		From:             raw.From,
		To:               raw.To,
		Value:            raw.Value,
		GasPrice:         raw.GasPrice,
		Gas:              raw.Gas,
		Input:            raw.Input,
		BlockNumber:      raw.BlockNumber,
		TransactionIndex: raw.TransactionIndex,
	}
	tx.FullText = BuildFullText(tx)
	return tx
}

// BuildFullText joins from, to, input, hash and block number with single spaces.
func BuildFullText(tx Transaction) string {
	blockNumber := strconv.FormatUint(tx.BlockNumber, 10)

	buf := make([]byte, 0, len(tx.From)+len(tx.To)+len(tx.Input)+len(tx.Hash)+len(blockNumber)+4)
	buf = append(buf, tx.From...)
	buf = append(buf, ' ')
	buf = append(buf, tx.To...)
	buf = append(buf, ' ')
	buf = append(buf, tx.Input...)
	buf = append(buf, ' ')
	buf = append(buf, tx.Hash...)
	buf = append(buf, ' ')
	buf = append(buf, blockNumber...)
	return string(buf)
}
