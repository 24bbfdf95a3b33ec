package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

// ConvertTransaction renders tx as the feed event stored for it. Quantities keep the
// hex encoding the JSON-RPC API uses; addresses are lower case.
func ConvertTransaction(signer types.Signer, blockNumber uint64, index uint64, tx *types.Transaction) (model.RawTransaction, error) {
	from, err := types.Sender(signer, tx)
	if err != nil {
		return model.RawTransaction{}, fmt.Errorf("recover sender of %s: %w", tx.Hash().Hex(), err)
	}

	to := ""
	if tx.To() != nil {
		to = strings.ToLower(tx.To().Hex())
	}

	return model.RawTransaction{
		Hash:             tx.Hash().Hex(),
		From:             strings.ToLower(from.Hex()),
		To:               to,
		Value:            hexutil.EncodeBig(tx.Value()),
		GasPrice:         hexutil.EncodeBig(tx.GasPrice()),
		Gas:              hexutil.EncodeUint64(tx.Gas()),
		Input:            hexutil.Encode(tx.Data()),
		BlockNumber:      blockNumber,
		TransactionIndex: hexutil.EncodeUint64(index),
	}, nil
}
