package gamingtoken

import (
	"crypto/ed25519"

	"github.com/arcade-labs/arcade-server/pkg/solana"
)

var (
	mintConfigPrefix           = []byte("mint_config")
	stakePrefix                = []byte("stake")
	stakeVaultPrefix           = []byte("stake_vault")
	rewardVaultPrefix          = []byte("reward_vault")
	vaultAuthorityPrefix       = []byte("vault_authority")
	rewardVaultAuthorityPrefix = []byte("reward_vault_authority")
)

type GetMintConfigAddressArgs struct {
	Mint ed25519.PublicKey
}

type GetStakeAccountAddressArgs struct {
	Owner ed25519.PublicKey
	Mint  ed25519.PublicKey
}

type GetVaultAddressArgs struct {
	Mint ed25519.PublicKey
}

func GetMintConfigAddress(args *GetMintConfigAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		mintConfigPrefix,
		args.Mint,
	)
}

func GetStakeAccountAddress(args *GetStakeAccountAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		stakePrefix,
		args.Owner,
		args.Mint,
	)
}

func GetStakeVaultAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		stakeVaultPrefix,
		args.Mint,
	)
}

func GetRewardVaultAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		rewardVaultPrefix,
		args.Mint,
	)
}

func GetVaultAuthorityAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		vaultAuthorityPrefix,
		args.Mint,
	)
}

func GetRewardVaultAuthorityAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		rewardVaultAuthorityPrefix,
		args.Mint,
	)
}
