package memecoin

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcade-labs/arcade-server/pkg/events"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
	"github.com/arcade-labs/arcade-server/pkg/solana/token"
	"github.com/arcade-labs/arcade-server/pkg/testutil"
)

const totalSupply = uint64(1_000_000_000)

func TestInitializeMemecoin(t *testing.T) {
	env := testutil.NewEnv()
	p := NewProcessor(env.Runtime, env.Tokens)

	authority := testutil.NewRandomAccount(t)
	mint := testutil.NewRandomAccount(t)

	setupMemecoin(t, env, p, authority, mint)

	config := getConfig(t, env, mint)
	assert.Equal(t, authority, config.Authority)
	assert.Equal(t, "DogeMoon", config.TokenName)
	assert.Equal(t, "DOGE", config.TokenSymbol)
	assert.Equal(t, totalSupply, config.TotalSupply)
	assert.EqualValues(t, 0, config.CirculatingSupply)
	assert.EqualValues(t, 400_000_000, config.GameRewardsPool)
	assert.EqualValues(t, 300_000_000, config.LiquidityPool)
	assert.EqualValues(t, 200_000_000, config.TeamAllocation)
	assert.EqualValues(t, 100_000_000, config.CommunityAllocation)
	assert.True(t, config.IsInitialized)

	minted, ok := env.Tokens.GetMint(mint)
	require.True(t, ok)
	assert.EqualValues(t, 0, minted.Supply)

	require.Equal(t, 1, env.Events.Len())
	event, ok := env.Events.Events()[0].(*MemecoinInitialized)
	require.True(t, ok)
	assert.Equal(t, totalSupply, event.TotalSupply)

	err := p.InitializeMemecoin(authority, mint, &InitializeMemecoinArgs{
		Name:        "DogeMoon",
		Symbol:      "DOGE",
		Decimals:    9,
		TotalSupply: totalSupply,
	})
	assert.Equal(t, token.ErrMintAlreadyInUse, err)

	err = p.InitializeMemecoin(authority, testutil.NewRandomAccount(t), &InitializeMemecoinArgs{
		Name:        "DogeMoon",
		Symbol:      "DOGE",
		Decimals:    9,
		TotalSupply: 0,
	})
	assert.Equal(t, ErrInvalidSupply, err)
}

func TestSplitSupply(t *testing.T) {
	allocations, err := SplitSupply(totalSupply)
	require.NoError(t, err)
	assert.EqualValues(t, 400_000_000, allocations.GameRewards)
	assert.EqualValues(t, 300_000_000, allocations.Liquidity)
	assert.EqualValues(t, 200_000_000, allocations.Team)
	assert.EqualValues(t, 100_000_000, allocations.Community)

	// Floor division leaves the remainder of a non-multiple supply
	// unallocated.
	allocations, err = SplitSupply(105)
	require.NoError(t, err)
	assert.EqualValues(t, 42, allocations.GameRewards)
	assert.EqualValues(t, 31, allocations.Liquidity)
	assert.EqualValues(t, 21, allocations.Team)
	assert.EqualValues(t, 10, allocations.Community)
	assert.EqualValues(t, 104, allocations.GameRewards+allocations.Liquidity+allocations.Team+allocations.Community)
}

func TestDistributeInitialSupply(t *testing.T) {
	env := testutil.NewEnv()
	p := NewProcessor(env.Runtime, env.Tokens)

	authority := testutil.NewRandomAccount(t)
	mint := testutil.NewRandomAccount(t)

	setupMemecoin(t, env, p, authority, mint)
	accounts := setupDistributionAccounts(t, env, mint)

	err := p.DistributeInitialSupply(testutil.NewRandomAccount(t), mint, accounts)
	assert.Equal(t, ErrUnauthorized, err)

	require.NoError(t, p.DistributeInitialSupply(authority, mint, accounts))

	rewardsPool, _, err := GetRewardsPoolAddress(&GetPoolAddressArgs{Mint: mint})
	require.NoError(t, err)

	for _, balance := range []struct {
		account  ed25519.PublicKey
		expected uint64
	}{
		{rewardsPool, 400_000_000},
		{accounts.Liquidity, 300_000_000},
		{accounts.Team, 200_000_000},
		{accounts.Community, 100_000_000},
	} {
		actual, err := env.Tokens.Balance(balance.account)
		require.NoError(t, err)
		assert.Equal(t, balance.expected, actual)
	}

	config := getConfig(t, env, mint)
	assert.Equal(t, totalSupply, config.CirculatingSupply)

	minted, ok := env.Tokens.GetMint(mint)
	require.True(t, ok)
	assert.Equal(t, totalSupply, minted.Supply)

	event, ok := lastEvent(env).(*InitialSupplyDistributed)
	require.True(t, ok)
	assert.Equal(t, totalSupply, event.TotalAmount)

	err = p.DistributeInitialSupply(authority, mint, accounts)
	assert.Equal(t, ErrAlreadyDistributed, err)
}

func TestDistributeGameRewards(t *testing.T) {
	env := testutil.NewEnv()
	p := NewProcessor(env.Runtime, env.Tokens)

	authority := testutil.NewRandomAccount(t)
	mint := testutil.NewRandomAccount(t)
	player := testutil.NewRandomAccount(t)
	playerAccount := testutil.NewRandomAccount(t)

	setupMemecoin(t, env, p, authority, mint)
	require.NoError(t, p.DistributeInitialSupply(authority, mint, setupDistributionAccounts(t, env, mint)))
	require.NoError(t, env.Tokens.CreateAccount(playerAccount, mint, player))

	require.NoError(t, p.DistributeGameRewards(authority, mint, player, playerAccount, 1_000, "game_1"))

	balance, err := env.Tokens.Balance(playerAccount)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000, balance)

	rewardsPool, _, err := GetRewardsPoolAddress(&GetPoolAddressArgs{Mint: mint})
	require.NoError(t, err)
	balance, err = env.Tokens.Balance(rewardsPool)
	require.NoError(t, err)
	assert.EqualValues(t, 399_999_000, balance)

	reward := getRewardAccount(t, env, player, "game_1")
	assert.Equal(t, player, reward.Player)
	assert.Equal(t, "game_1", reward.GameId)
	assert.EqualValues(t, 1_000, reward.Amount)

	event, ok := lastEvent(env).(*GameRewardDistributed)
	require.True(t, ok)
	assert.EqualValues(t, 1_000, event.Amount)
	assert.Equal(t, "game_1", event.GameId)

	// One disbursement per (player, game) pair.
	err = p.DistributeGameRewards(authority, mint, player, playerAccount, 1_000, "game_1")
	assert.Equal(t, runtime.ErrAccountExists, err)

	require.NoError(t, p.DistributeGameRewards(authority, mint, player, playerAccount, 500, "game_2"))

	err = p.DistributeGameRewards(authority, mint, player, playerAccount, 500_000_000, "game_3")
	assert.Equal(t, ErrInsufficientRewards, err)

	err = p.DistributeGameRewards(player, mint, player, playerAccount, 100, "game_4")
	assert.Equal(t, ErrUnauthorized, err)

	err = p.DistributeGameRewards(authority, mint, player, playerAccount, 0, "game_5")
	assert.Equal(t, ErrInvalidAmount, err)
}

func TestAirdropLifecycle(t *testing.T) {
	env := testutil.NewEnv()
	p := NewProcessor(env.Runtime, env.Tokens)

	authority := testutil.NewRandomAccount(t)
	mint := testutil.NewRandomAccount(t)
	recipient := testutil.NewRandomAccount(t)
	recipientAccount := testutil.NewRandomAccount(t)

	setupMemecoin(t, env, p, authority, mint)
	require.NoError(t, env.Tokens.CreateAccount(recipientAccount, mint, recipient))

	airdropPool, _, err := GetAirdropPoolAddress(&GetPoolAddressArgs{Mint: mint})
	require.NoError(t, err)
	require.NoError(t, env.Tokens.CreateAccount(airdropPool, mint, airdropPool))
	fundTokenAccount(t, env, authority, mint, airdropPool, 500)

	setupTime := env.Clock.Now().Unix()
	claimableAt := setupTime + 3600

	err = p.SetupAirdropAccount(recipient, mint, 500, setupTime)
	assert.Equal(t, ErrInvalidClaimTime, err)

	require.NoError(t, p.SetupAirdropAccount(recipient, mint, 500, claimableAt))

	airdrop := getAirdropAccount(t, env, recipient)
	assert.Equal(t, recipient, airdrop.Recipient)
	assert.EqualValues(t, 500, airdrop.Amount)
	assert.Equal(t, claimableAt, airdrop.ClaimableAt)
	assert.False(t, airdrop.Claimed)
	assert.Nil(t, airdrop.ClaimedAt)

	// One airdrop entitlement per recipient.
	err = p.SetupAirdropAccount(recipient, mint, 500, claimableAt)
	assert.Equal(t, runtime.ErrAccountExists, err)

	env.Advance(3599)
	err = p.ClaimAirdrop(recipient, recipientAccount)
	assert.Equal(t, ErrAirdropNotAvailable, err)

	env.Advance(1)
	require.NoError(t, p.ClaimAirdrop(recipient, recipientAccount))

	balance, err := env.Tokens.Balance(recipientAccount)
	require.NoError(t, err)
	assert.EqualValues(t, 500, balance)

	airdrop = getAirdropAccount(t, env, recipient)
	assert.True(t, airdrop.Claimed)
	require.NotNil(t, airdrop.ClaimedAt)
	assert.Equal(t, claimableAt, *airdrop.ClaimedAt)

	event, ok := lastEvent(env).(*AirdropClaimed)
	require.True(t, ok)
	assert.EqualValues(t, 500, event.Amount)

	err = p.ClaimAirdrop(recipient, recipientAccount)
	assert.Equal(t, ErrAlreadyClaimed, err)
}

func setupMemecoin(t *testing.T, env *testutil.Env, p *Processor, authority, mint ed25519.PublicKey) {
	require.NoError(t, p.InitializeMemecoin(authority, mint, &InitializeMemecoinArgs{
		Name:        "DogeMoon",
		Symbol:      "DOGE",
		Decimals:    9,
		TotalSupply: totalSupply,
	}))
}

func setupDistributionAccounts(t *testing.T, env *testutil.Env, mint ed25519.PublicKey) *DistributionAccounts {
	accounts := &DistributionAccounts{
		Liquidity: testutil.NewRandomAccount(t),
		Team:      testutil.NewRandomAccount(t),
		Community: testutil.NewRandomAccount(t),
	}
	for _, account := range []ed25519.PublicKey{accounts.Liquidity, accounts.Team, accounts.Community} {
		require.NoError(t, env.Tokens.CreateAccount(account, mint, testutil.NewRandomAccount(t)))
	}
	return accounts
}

func fundTokenAccount(t *testing.T, env *testutil.Env, authority, mint, destination ed25519.PublicKey, amount uint64) {
	require.NoError(t, env.Runtime.Execute(Program(), "test_funding", authority, func(ix *runtime.Instruction) error {
		return env.Tokens.Mint(ix, mint, destination, amount, token.Signer(authority))
	}))
}

func getConfig(t *testing.T, env *testutil.Env, mint ed25519.PublicKey) *MemecoinConfig {
	configAddress, _, err := GetConfigAddress(&GetConfigAddressArgs{Mint: mint})
	require.NoError(t, err)

	account, ok := env.Runtime.Account(configAddress)
	require.True(t, ok)

	var config MemecoinConfig
	require.NoError(t, config.Unmarshal(account.Data()))
	return &config
}

func getRewardAccount(t *testing.T, env *testutil.Env, player ed25519.PublicKey, gameId string) *RewardAccount {
	rewardAddress, _, err := GetRewardAccountAddress(&GetRewardAccountAddressArgs{Player: player, GameId: gameId})
	require.NoError(t, err)

	account, ok := env.Runtime.Account(rewardAddress)
	require.True(t, ok)

	var reward RewardAccount
	require.NoError(t, reward.Unmarshal(account.Data()))
	return &reward
}

func getAirdropAccount(t *testing.T, env *testutil.Env, recipient ed25519.PublicKey) *AirdropAccount {
	airdropAddress, _, err := GetAirdropAccountAddress(&GetAirdropAccountAddressArgs{Recipient: recipient})
	require.NoError(t, err)

	account, ok := env.Runtime.Account(airdropAddress)
	require.True(t, ok)

	var airdrop AirdropAccount
	require.NoError(t, airdrop.Unmarshal(account.Data()))
	return &airdrop
}

func lastEvent(env *testutil.Env) events.Event {
	all := env.Events.Events()
	return all[len(all)-1]
}
