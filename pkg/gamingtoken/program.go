// Package gamingtoken implements the gaming token program: mint
// configuration, time-locked staking, and linear 5% APR reward accrual.
package gamingtoken

import (
	"crypto/ed25519"
	"errors"

	"github.com/mr-tron/base58"

	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
)

var (
	ErrInvalidAccountData = errors.New("unexpected account data")
)

const ProgramName = "gaming_token"

var (
	PROGRAM_ADDRESS = mustBase58Decode("DhkqYC1mAnZ41dgPz6NDLovGM6zxE1j7wHLBAizYkNB8")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxDecimals     = 9

	// 5% nominal APR against a 365 day year, prorated by elapsed seconds
	AprNumerator   = 5
	AprDenominator = 100
	SecondsPerYear = 365 * 24 * 60 * 60
)

func Program() runtime.Program {
	return runtime.Program{
		ID:   PROGRAM_ID,
		Name: ProgramName,
	}
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
