// Package memecoin implements the memecoin program: a fixed-supply token
// with pooled allocations, per-player game reward disbursement, and
// time-gated airdrop claims.
package memecoin

import (
	"crypto/ed25519"
	"errors"

	"github.com/mr-tron/base58"

	"github.com/arcade-labs/arcade-server/pkg/solana"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
)

var (
	ErrInvalidAccountData = errors.New("unexpected account data")
)

const ProgramName = "memecoin"

var (
	PROGRAM_ADDRESS = mustBase58Decode("A1WF2rG5Vs5tG6nhq2ZeDEN9hyESrWV3dtyq1XdBWkqT")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxDecimals     = 9
	MaxGameIdLength = 32

	// Integer percent shares of total supply
	GameRewardsShare = 40
	LiquidityShare   = 30
	TeamShare        = 20
	CommunityShare   = 10
)

func Program() runtime.Program {
	return runtime.Program{
		ID:   PROGRAM_ID,
		Name: ProgramName,
	}
}

// PoolAllocations is the fixed 40/30/20/10 split of the total supply.
// Shares are computed with floor division, so when the total supply is
// not a multiple of 10 the remainder stays unallocated and is never
// minted.
type PoolAllocations struct {
	GameRewards uint64
	Liquidity   uint64
	Team        uint64
	Community   uint64
}

func SplitSupply(totalSupply uint64) (*PoolAllocations, error) {
	allocations := &PoolAllocations{}

	for _, pool := range []struct {
		share uint64
		dst   *uint64
	}{
		{GameRewardsShare, &allocations.GameRewards},
		{LiquidityShare, &allocations.Liquidity},
		{TeamShare, &allocations.Team},
		{CommunityShare, &allocations.Community},
	} {
		scaled, err := solana.CheckedMulU64(totalSupply, pool.share)
		if err != nil {
			return nil, err
		}
		*pool.dst = scaled / 100
	}

	return allocations, nil
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
