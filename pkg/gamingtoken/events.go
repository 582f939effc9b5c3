package gamingtoken

import "crypto/ed25519"

type MintInitialized struct {
	Mint      ed25519.PublicKey
	Name      string
	Symbol    string
	Decimals  uint8
	Authority ed25519.PublicKey
	Timestamp int64
}

func (e *MintInitialized) EventType() string { return "mint_initialized" }

type TokensMinted struct {
	Mint      ed25519.PublicKey
	To        ed25519.PublicKey
	Amount    uint64
	NewSupply uint64
	Timestamp int64
}

func (e *TokensMinted) EventType() string { return "tokens_minted" }

type TokensStaked struct {
	Owner     ed25519.PublicKey
	Amount    uint64
	LockUntil int64
	Timestamp int64
}

func (e *TokensStaked) EventType() string { return "tokens_staked" }

type TokensUnstaked struct {
	Owner     ed25519.PublicKey
	Principal uint64
	Reward    uint64
	Total     uint64
	Timestamp int64
}

func (e *TokensUnstaked) EventType() string { return "tokens_unstaked" }

type RewardsClaimed struct {
	Owner     ed25519.PublicKey
	Amount    uint64
	Timestamp int64
}

func (e *RewardsClaimed) EventType() string { return "rewards_claimed" }
