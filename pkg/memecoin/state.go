package memecoin

import (
	"bytes"
	"crypto/ed25519"
	"strconv"
	"time"

	"github.com/mr-tron/base58"

	"github.com/arcade-labs/arcade-server/pkg/solana/binary"
)

// MemecoinConfig records the fixed-supply configuration and its pool
// allocations. CirculatingSupply moves from 0 to TotalSupply exactly once,
// on initial distribution.
type MemecoinConfig struct {
	Authority           ed25519.PublicKey
	Mint                ed25519.PublicKey
	TokenName           string
	TokenSymbol         string
	Decimals            uint8
	TotalSupply         uint64
	CirculatingSupply   uint64
	GameRewardsPool     uint64
	LiquidityPool       uint64
	TeamAllocation      uint64
	CommunityAllocation uint64
	IsInitialized       bool
	CreatedAt           int64
}

const MemecoinConfigMaxSize = (8 + // discriminator
	32 + // authority
	32 + // mint
	4 + MaxNameLength + // token_name
	4 + MaxSymbolLength + // token_symbol
	1 + // decimals
	8 + // total_supply
	8 + // circulating_supply
	8 + // game_rewards_pool
	8 + // liquidity_pool
	8 + // team_allocation
	8 + // community_allocation
	1 + // is_initialized
	8) // created_at

var memecoinConfigDiscriminator = []byte{19, 247, 108, 62, 91, 150, 33, 214}

func (obj *MemecoinConfig) ToString() string {
	var authority, mint string

	if obj.Authority != nil {
		authority = base58.Encode(obj.Authority)
	}
	if obj.Mint != nil {
		mint = base58.Encode(obj.Mint)
	}

	return "MemecoinConfig{" +
		"authority='" + authority + "'" +
		", mint='" + mint + "'" +
		", token_name='" + obj.TokenName + "'" +
		", token_symbol='" + obj.TokenSymbol + "'" +
		", decimals='" + strconv.Itoa(int(obj.Decimals)) + "'" +
		", total_supply='" + strconv.FormatUint(obj.TotalSupply, 10) + "'" +
		", circulating_supply='" + strconv.FormatUint(obj.CirculatingSupply, 10) + "'" +
		", game_rewards_pool='" + strconv.FormatUint(obj.GameRewardsPool, 10) + "'" +
		", liquidity_pool='" + strconv.FormatUint(obj.LiquidityPool, 10) + "'" +
		", team_allocation='" + strconv.FormatUint(obj.TeamAllocation, 10) + "'" +
		", community_allocation='" + strconv.FormatUint(obj.CommunityAllocation, 10) + "'" +
		", is_initialized='" + strconv.FormatBool(obj.IsInitialized) + "'" +
		", created_at='" + time.Unix(obj.CreatedAt, 0).String() + "'" +
		"}"
}

func (obj *MemecoinConfig) Marshal() []byte {
	data := make([]byte, 8+32+32+binary.StringSize(obj.TokenName)+binary.StringSize(obj.TokenSymbol)+1+8*6+1+8)

	var offset int

	binary.PutDiscriminator(data, memecoinConfigDiscriminator, &offset)

	binary.PutKey(data, obj.Authority, &offset)
	binary.PutKey(data, obj.Mint, &offset)
	binary.PutString(data, obj.TokenName, &offset)
	binary.PutString(data, obj.TokenSymbol, &offset)
	binary.PutUint8(data, obj.Decimals, &offset)
	binary.PutUint64(data, obj.TotalSupply, &offset)
	binary.PutUint64(data, obj.CirculatingSupply, &offset)
	binary.PutUint64(data, obj.GameRewardsPool, &offset)
	binary.PutUint64(data, obj.LiquidityPool, &offset)
	binary.PutUint64(data, obj.TeamAllocation, &offset)
	binary.PutUint64(data, obj.CommunityAllocation, &offset)
	binary.PutBool(data, obj.IsInitialized, &offset)
	binary.PutInt64(data, obj.CreatedAt, &offset)

	return data
}

func (obj *MemecoinConfig) Unmarshal(data []byte) error {
	var offset int
	var discriminator []byte

	if err := binary.GetDiscriminator(data, &discriminator, &offset); err != nil {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(discriminator, memecoinConfigDiscriminator) {
		return ErrInvalidAccountData
	}

	for _, err := range []error{
		binary.GetKey(data, &obj.Authority, &offset),
		binary.GetKey(data, &obj.Mint, &offset),
		binary.GetString(data, &obj.TokenName, &offset),
		binary.GetString(data, &obj.TokenSymbol, &offset),
		binary.GetUint8(data, &obj.Decimals, &offset),
		binary.GetUint64(data, &obj.TotalSupply, &offset),
		binary.GetUint64(data, &obj.CirculatingSupply, &offset),
		binary.GetUint64(data, &obj.GameRewardsPool, &offset),
		binary.GetUint64(data, &obj.LiquidityPool, &offset),
		binary.GetUint64(data, &obj.TeamAllocation, &offset),
		binary.GetUint64(data, &obj.CommunityAllocation, &offset),
		binary.GetBool(data, &obj.IsInitialized, &offset),
		binary.GetInt64(data, &obj.CreatedAt, &offset),
	} {
		if err != nil {
			return ErrInvalidAccountData
		}
	}

	return nil
}

// RewardAccount tracks a single game reward disbursement. One exists per
// (player, game) pair by address construction.
type RewardAccount struct {
	Player    ed25519.PublicKey
	GameId    string
	Amount    uint64
	Timestamp int64
}

const RewardAccountMaxSize = (8 + // discriminator
	32 + // player
	4 + MaxGameIdLength + // game_id
	8 + // amount
	8) // timestamp

var rewardAccountDiscriminator = []byte{225, 81, 31, 253, 84, 234, 171, 129}

func (obj *RewardAccount) Marshal() []byte {
	data := make([]byte, 8+32+binary.StringSize(obj.GameId)+8+8)

	var offset int

	binary.PutDiscriminator(data, rewardAccountDiscriminator, &offset)

	binary.PutKey(data, obj.Player, &offset)
	binary.PutString(data, obj.GameId, &offset)
	binary.PutUint64(data, obj.Amount, &offset)
	binary.PutInt64(data, obj.Timestamp, &offset)

	return data
}

func (obj *RewardAccount) Unmarshal(data []byte) error {
	var offset int
	var discriminator []byte

	if err := binary.GetDiscriminator(data, &discriminator, &offset); err != nil {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(discriminator, rewardAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	for _, err := range []error{
		binary.GetKey(data, &obj.Player, &offset),
		binary.GetString(data, &obj.GameId, &offset),
		binary.GetUint64(data, &obj.Amount, &offset),
		binary.GetInt64(data, &obj.Timestamp, &offset),
	} {
		if err != nil {
			return ErrInvalidAccountData
		}
	}

	return nil
}

// AirdropAccount is a single recipient's airdrop entitlement. Claimed
// implies ClaimedAt >= ClaimableAt.
type AirdropAccount struct {
	Recipient   ed25519.PublicKey
	Mint        ed25519.PublicKey
	Amount      uint64
	ClaimableAt int64
	Claimed     bool
	CreatedAt   int64
	ClaimedAt   *int64 // optional
}

const AirdropAccountSize = (8 + // discriminator
	32 + // recipient
	32 + // mint
	8 + // amount
	8 + // claimable_at
	1 + // claimed
	8 + // created_at
	9) // claimed_at

var airdropAccountDiscriminator = []byte{104, 36, 210, 178, 93, 239, 175, 66}

func (obj *AirdropAccount) ToString() string {
	var recipient, mint, claimedAt string

	if obj.Recipient != nil {
		recipient = base58.Encode(obj.Recipient)
	}
	if obj.Mint != nil {
		mint = base58.Encode(obj.Mint)
	}
	if obj.ClaimedAt != nil {
		claimedAt = time.Unix(*obj.ClaimedAt, 0).String()
	}

	return "AirdropAccount{" +
		"recipient='" + recipient + "'" +
		", mint='" + mint + "'" +
		", amount='" + strconv.FormatUint(obj.Amount, 10) + "'" +
		", claimable_at='" + time.Unix(obj.ClaimableAt, 0).String() + "'" +
		", claimed='" + strconv.FormatBool(obj.Claimed) + "'" +
		", created_at='" + time.Unix(obj.CreatedAt, 0).String() + "'" +
		", claimed_at='" + claimedAt + "'" +
		"}"
}

func (obj *AirdropAccount) Marshal() []byte {
	data := make([]byte, AirdropAccountSize)

	var offset int

	binary.PutDiscriminator(data, airdropAccountDiscriminator, &offset)

	binary.PutKey(data, obj.Recipient, &offset)
	binary.PutKey(data, obj.Mint, &offset)
	binary.PutUint64(data, obj.Amount, &offset)
	binary.PutInt64(data, obj.ClaimableAt, &offset)
	binary.PutBool(data, obj.Claimed, &offset)
	binary.PutInt64(data, obj.CreatedAt, &offset)
	binary.PutOptionalInt64(data, obj.ClaimedAt, &offset)

	return data
}

func (obj *AirdropAccount) Unmarshal(data []byte) error {
	if len(data) != AirdropAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator []byte

	if err := binary.GetDiscriminator(data, &discriminator, &offset); err != nil {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(discriminator, airdropAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	for _, err := range []error{
		binary.GetKey(data, &obj.Recipient, &offset),
		binary.GetKey(data, &obj.Mint, &offset),
		binary.GetUint64(data, &obj.Amount, &offset),
		binary.GetInt64(data, &obj.ClaimableAt, &offset),
		binary.GetBool(data, &obj.Claimed, &offset),
		binary.GetInt64(data, &obj.CreatedAt, &offset),
		binary.GetOptionalInt64(data, &obj.ClaimedAt, &offset),
	} {
		if err != nil {
			return ErrInvalidAccountData
		}
	}

	return nil
}
