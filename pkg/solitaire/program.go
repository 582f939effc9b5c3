// Package solitaire implements the solitaire program: per-game escrowed
// stakes, a deterministic Klondike move engine, completion settlement,
// and inactivity-gated abandonment.
package solitaire

import (
	"crypto/ed25519"
	"errors"

	"github.com/mr-tron/base58"

	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
)

var (
	ErrInvalidAccountData = errors.New("unexpected account data")
)

const ProgramName = "solitaire"

var (
	PROGRAM_ADDRESS = mustBase58Decode("Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

const (
	MaxGameIdLength = 32

	// Abandonment is allowed after 24 hours of inactivity and retains a
	// tenth of the stake in escrow.
	AbandonmentDelay          = 86400
	AbandonmentPenaltyDivisor = 10

	// Winning pays double the stake, completing without a win returns half.
	WinRewardMultiplier = 2
	LossRewardDivisor   = 2
	ScorePerMove        = 10
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
