package solitaire

import (
	"crypto/ed25519"

	"github.com/arcade-labs/arcade-server/pkg/solana"
)

var (
	gamePrefix   = []byte("game")
	escrowPrefix = []byte("escrow")
)

type GetGameAddressArgs struct {
	Authority ed25519.PublicKey
	GameId    string
}

type GetEscrowAddressArgs struct {
	GameId string
}

func GetGameAddress(args *GetGameAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		gamePrefix,
		args.Authority,
		[]byte(args.GameId),
	)
}

// GetEscrowAddress derives the game's escrow token account. The escrow is
// its own authority, so the same seeds produce its signer.
func GetEscrowAddress(args *GetEscrowAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		escrowPrefix,
		[]byte(args.GameId),
	)
}
