package gamingtoken

import (
	"bytes"
	"crypto/ed25519"
	"strconv"
	"time"

	"github.com/mr-tron/base58"

	"github.com/arcade-labs/arcade-server/pkg/solana/binary"
)

// MintConfig records the configuration of a gaming token mint. Created
// once per mint; TotalSupply monotonically increases with every MintTokens.
type MintConfig struct {
	Authority     ed25519.PublicKey
	Mint          ed25519.PublicKey
	TokenName     string
	TokenSymbol   string
	Decimals      uint8
	TotalSupply   uint64
	IsInitialized bool
	CreatedAt     int64
}

const MintConfigMaxSize = (8 + // discriminator
	32 + // authority
	32 + // mint
	4 + MaxNameLength + // token_name
	4 + MaxSymbolLength + // token_symbol
	1 + // decimals
	8 + // total_supply
	1 + // is_initialized
	8) // created_at

var mintConfigDiscriminator = []byte{164, 57, 31, 208, 118, 79, 22, 165}

func (obj *MintConfig) ToString() string {
	var authority, mint string

	if obj.Authority != nil {
		authority = base58.Encode(obj.Authority)
	}
	if obj.Mint != nil {
		mint = base58.Encode(obj.Mint)
	}

	return "MintConfig{" +
		"authority='" + authority + "'" +
		", mint='" + mint + "'" +
		", token_name='" + obj.TokenName + "'" +
		", token_symbol='" + obj.TokenSymbol + "'" +
		", decimals='" + strconv.Itoa(int(obj.Decimals)) + "'" +
		", total_supply='" + strconv.FormatUint(obj.TotalSupply, 10) + "'" +
		", is_initialized='" + strconv.FormatBool(obj.IsInitialized) + "'" +
		", created_at='" + time.Unix(obj.CreatedAt, 0).String() + "'" +
		"}"
}

func (obj *MintConfig) Marshal() []byte {
	data := make([]byte, 8+32+32+binary.StringSize(obj.TokenName)+binary.StringSize(obj.TokenSymbol)+1+8+1+8)

	var offset int

	binary.PutDiscriminator(data, mintConfigDiscriminator, &offset)

	binary.PutKey(data, obj.Authority, &offset)
	binary.PutKey(data, obj.Mint, &offset)
	binary.PutString(data, obj.TokenName, &offset)
	binary.PutString(data, obj.TokenSymbol, &offset)
	binary.PutUint8(data, obj.Decimals, &offset)
	binary.PutUint64(data, obj.TotalSupply, &offset)
	binary.PutBool(data, obj.IsInitialized, &offset)
	binary.PutInt64(data, obj.CreatedAt, &offset)

	return data
}

func (obj *MintConfig) Unmarshal(data []byte) error {
	var offset int
	var discriminator []byte

	if err := binary.GetDiscriminator(data, &discriminator, &offset); err != nil {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(discriminator, mintConfigDiscriminator) {
		return ErrInvalidAccountData
	}

	for _, err := range []error{
		binary.GetKey(data, &obj.Authority, &offset),
		binary.GetKey(data, &obj.Mint, &offset),
		binary.GetString(data, &obj.TokenName, &offset),
		binary.GetString(data, &obj.TokenSymbol, &offset),
		binary.GetUint8(data, &obj.Decimals, &offset),
		binary.GetUint64(data, &obj.TotalSupply, &offset),
		binary.GetBool(data, &obj.IsInitialized, &offset),
		binary.GetInt64(data, &obj.CreatedAt, &offset),
	} {
		if err != nil {
			return ErrInvalidAccountData
		}
	}

	return nil
}

// StakeAccount records a time-locked stake. Closed logically by setting
// IsActive to false on unstake. While active,
// CreatedAt <= LastRewardClaim <= now.
type StakeAccount struct {
	Owner           ed25519.PublicKey
	Mint            ed25519.PublicKey
	Amount          uint64
	LockUntil       int64
	CreatedAt       int64
	LastRewardClaim int64
	IsActive        bool
}

const StakeAccountSize = (8 + // discriminator
	32 + // owner
	32 + // mint
	8 + // amount
	8 + // lock_until
	8 + // created_at
	8 + // last_reward_claim
	1) // is_active

var stakeAccountDiscriminator = []byte{80, 158, 67, 124, 50, 189, 192, 255}

func (obj *StakeAccount) ToString() string {
	var owner, mint string

	if obj.Owner != nil {
		owner = base58.Encode(obj.Owner)
	}
	if obj.Mint != nil {
		mint = base58.Encode(obj.Mint)
	}

	return "StakeAccount{" +
		"owner='" + owner + "'" +
		", mint='" + mint + "'" +
		", amount='" + strconv.FormatUint(obj.Amount, 10) + "'" +
		", lock_until='" + time.Unix(obj.LockUntil, 0).String() + "'" +
		", created_at='" + time.Unix(obj.CreatedAt, 0).String() + "'" +
		", last_reward_claim='" + time.Unix(obj.LastRewardClaim, 0).String() + "'" +
		", is_active='" + strconv.FormatBool(obj.IsActive) + "'" +
		"}"
}

func (obj *StakeAccount) Marshal() []byte {
	data := make([]byte, StakeAccountSize)

	var offset int

	binary.PutDiscriminator(data, stakeAccountDiscriminator, &offset)

	binary.PutKey(data, obj.Owner, &offset)
	binary.PutKey(data, obj.Mint, &offset)
	binary.PutUint64(data, obj.Amount, &offset)
	binary.PutInt64(data, obj.LockUntil, &offset)
	binary.PutInt64(data, obj.CreatedAt, &offset)
	binary.PutInt64(data, obj.LastRewardClaim, &offset)
	binary.PutBool(data, obj.IsActive, &offset)

	return data
}

func (obj *StakeAccount) Unmarshal(data []byte) error {
	if len(data) != StakeAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator []byte

	if err := binary.GetDiscriminator(data, &discriminator, &offset); err != nil {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(discriminator, stakeAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	for _, err := range []error{
		binary.GetKey(data, &obj.Owner, &offset),
		binary.GetKey(data, &obj.Mint, &offset),
		binary.GetUint64(data, &obj.Amount, &offset),
		binary.GetInt64(data, &obj.LockUntil, &offset),
		binary.GetInt64(data, &obj.CreatedAt, &offset),
		binary.GetInt64(data, &obj.LastRewardClaim, &offset),
		binary.GetBool(data, &obj.IsActive, &offset),
	} {
		if err != nil {
			return ErrInvalidAccountData
		}
	}

	return nil
}
