package memecoin

import (
	"crypto/ed25519"

	"github.com/arcade-labs/arcade-server/pkg/solana"
)

var (
	configPrefix      = []byte("memecoin_config")
	rewardPrefix      = []byte("reward")
	airdropPrefix     = []byte("airdrop")
	rewardsPoolPrefix = []byte("rewards_pool")
	airdropPoolPrefix = []byte("airdrop_pool")
)

type GetConfigAddressArgs struct {
	Mint ed25519.PublicKey
}

type GetRewardAccountAddressArgs struct {
	Player ed25519.PublicKey
	GameId string
}

type GetAirdropAccountAddressArgs struct {
	Recipient ed25519.PublicKey
}

type GetPoolAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetConfigAddress(args *GetConfigAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		configPrefix,
		args.Mint,
	)
}

// GetRewardAccountAddress derives the per-(player, game) reward record.
// Its create-or-fail lifecycle is what limits disbursement to once per
// pair.
func GetRewardAccountAddress(args *GetRewardAccountAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		rewardPrefix,
		args.Player,
		[]byte(args.GameId),
	)
}

func GetAirdropAccountAddress(args *GetAirdropAccountAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		airdropPrefix,
		args.Recipient,
	)
}

// GetRewardsPoolAddress derives the game rewards pool token account. The
// pool is its own authority, so the same seeds produce its signer.
func GetRewardsPoolAddress(args *GetPoolAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		rewardsPoolPrefix,
		args.Mint,
	)
}

func GetAirdropPoolAddress(args *GetPoolAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		airdropPoolPrefix,
		args.Mint,
	)
}
