package memecoin

import "crypto/ed25519"

type MemecoinInitialized struct {
	Mint        ed25519.PublicKey
	Name        string
	Symbol      string
	TotalSupply uint64
	Authority   ed25519.PublicKey
	Timestamp   int64
}

func (e *MemecoinInitialized) EventType() string { return "memecoin_initialized" }

type InitialSupplyDistributed struct {
	Mint        ed25519.PublicKey
	TotalAmount uint64
	Timestamp   int64
}

func (e *InitialSupplyDistributed) EventType() string { return "initial_supply_distributed" }

type GameRewardDistributed struct {
	Player    ed25519.PublicKey
	Amount    uint64
	GameId    string
	Timestamp int64
}

func (e *GameRewardDistributed) EventType() string { return "game_reward_distributed" }

type AirdropAccountSetup struct {
	Recipient   ed25519.PublicKey
	Amount      uint64
	ClaimableAt int64
	Timestamp   int64
}

func (e *AirdropAccountSetup) EventType() string { return "airdrop_account_setup" }

type AirdropClaimed struct {
	Recipient ed25519.PublicKey
	Amount    uint64
	Timestamp int64
}

func (e *AirdropClaimed) EventType() string { return "airdrop_claimed" }
