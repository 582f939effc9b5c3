package memecoin

import (
	"crypto/ed25519"

	"github.com/sirupsen/logrus"

	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
	"github.com/arcade-labs/arcade-server/pkg/solana/token"
)

// Processor executes memecoin instructions against the runtime and the
// token ledger.
type Processor struct {
	log    *logrus.Entry
	rt     *runtime.Runtime
	tokens *token.Service
}

func NewProcessor(rt *runtime.Runtime, tokens *token.Service) *Processor {
	return &Processor{
		log:    logrus.StandardLogger().WithField("type", "memecoin/Processor"),
		rt:     rt,
		tokens: tokens,
	}
}

type InitializeMemecoinArgs struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply uint64
}

// InitializeMemecoin creates the mint and the MemecoinConfig with the
// fixed 40/30/20/10 pool allocations. Nothing circulates until
// DistributeInitialSupply runs.
func (p *Processor) InitializeMemecoin(caller, mint ed25519.PublicKey, args *InitializeMemecoinArgs) error {
	return p.rt.Execute(Program(), "initialize_memecoin", caller, func(ix *runtime.Instruction) error {
		if len(args.Name) > MaxNameLength {
			return ErrNameTooLong
		}
		if len(args.Symbol) > MaxSymbolLength {
			return ErrSymbolTooLong
		}
		if args.Decimals > MaxDecimals {
			return ErrInvalidDecimals
		}
		if args.TotalSupply == 0 {
			return ErrInvalidSupply
		}

		allocations, err := SplitSupply(args.TotalSupply)
		if err != nil {
			return err
		}

		if err := p.tokens.CreateMint(mint, caller, args.Decimals); err != nil {
			return err
		}

		configAddress, _, err := GetConfigAddress(&GetConfigAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		account, err := ix.CreateAccount(configAddress, MemecoinConfigMaxSize)
		if err != nil {
			return err
		}

		config := &MemecoinConfig{
			Authority:           caller,
			Mint:                mint,
			TokenName:           args.Name,
			TokenSymbol:         args.Symbol,
			Decimals:            args.Decimals,
			TotalSupply:         args.TotalSupply,
			CirculatingSupply:   0,
			GameRewardsPool:     allocations.GameRewards,
			LiquidityPool:       allocations.Liquidity,
			TeamAllocation:      allocations.Team,
			CommunityAllocation: allocations.Community,
			IsInitialized:       true,
			CreatedAt:           ix.Now,
		}
		if err := account.SetData(config.Marshal()); err != nil {
			return err
		}

		ix.Emit(&MemecoinInitialized{
			Mint:        config.Mint,
			Name:        config.TokenName,
			Symbol:      config.TokenSymbol,
			TotalSupply: config.TotalSupply,
			Authority:   config.Authority,
			Timestamp:   config.CreatedAt,
		})

		return nil
	})
}

// DistributionAccounts are the destination token accounts for the
// non-derived allocations. The game rewards pool and the airdrop pool are
// derived and created by the instruction itself.
type DistributionAccounts struct {
	Liquidity ed25519.PublicKey
	Team      ed25519.PublicKey
	Community ed25519.PublicKey
}

// DistributeInitialSupply mints each pool's share in a fixed order:
// game rewards, liquidity, team, community. A second call fails because
// the circulating supply is no longer zero.
func (p *Processor) DistributeInitialSupply(caller, mint ed25519.PublicKey, accounts *DistributionAccounts) error {
	return p.rt.Execute(Program(), "distribute_initial_supply", caller, func(ix *runtime.Instruction) error {
		account, config, err := p.loadConfig(ix, mint)
		if err != nil {
			return err
		}

		if !caller.Equal(config.Authority) {
			return ErrUnauthorized
		}
		if config.CirculatingSupply != 0 {
			return ErrAlreadyDistributed
		}

		rewardsPool, _, err := GetRewardsPoolAddress(&GetPoolAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		if err := p.tokens.CreateAccount(rewardsPool, mint, rewardsPool); err != nil && err != token.ErrAccountAlreadyInUse {
			return err
		}
		airdropPool, _, err := GetAirdropPoolAddress(&GetPoolAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		if err := p.tokens.CreateAccount(airdropPool, mint, airdropPool); err != nil && err != token.ErrAccountAlreadyInUse {
			return err
		}

		for _, allocation := range []struct {
			destination ed25519.PublicKey
			amount      uint64
		}{
			{rewardsPool, config.GameRewardsPool},
			{accounts.Liquidity, config.LiquidityPool},
			{accounts.Team, config.TeamAllocation},
			{accounts.Community, config.CommunityAllocation},
		} {
			if err := p.tokens.Mint(ix, mint, allocation.destination, allocation.amount, token.Signer(caller)); err != nil {
				return err
			}
		}

		config.CirculatingSupply = config.TotalSupply
		if err := account.SetData(config.Marshal()); err != nil {
			return err
		}

		ix.Emit(&InitialSupplyDistributed{
			Mint:        config.Mint,
			TotalAmount: config.TotalSupply,
			Timestamp:   ix.Now,
		})

		return nil
	})
}

// DistributeGameRewards pays a player out of the game rewards pool. The
// reward record's create-or-fail lifecycle limits disbursement to once
// per (player, game) pair.
func (p *Processor) DistributeGameRewards(caller, mint, player, playerAccount ed25519.PublicKey, amount uint64, gameId string) error {
	return p.rt.Execute(Program(), "distribute_game_rewards", caller, func(ix *runtime.Instruction) error {
		_, config, err := p.loadConfig(ix, mint)
		if err != nil {
			return err
		}

		if amount == 0 {
			return ErrInvalidAmount
		}
		if len(gameId) > MaxGameIdLength {
			return ErrGameIdTooLong
		}
		if !caller.Equal(config.Authority) {
			return ErrUnauthorized
		}

		rewardAddress, _, err := GetRewardAccountAddress(&GetRewardAccountAddressArgs{Player: player, GameId: gameId})
		if err != nil {
			return err
		}
		account, err := ix.CreateAccount(rewardAddress, RewardAccountMaxSize)
		if err != nil {
			return err
		}

		rewardsPool, poolBump, err := GetRewardsPoolAddress(&GetPoolAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		balance, err := p.tokens.Balance(rewardsPool)
		if err != nil {
			return err
		}
		if balance < amount {
			return ErrInsufficientRewards
		}

		signer := token.ProgramSigner(PROGRAM_ID, poolBump, rewardsPoolPrefix, mint)
		if err := p.tokens.Transfer(ix, rewardsPool, playerAccount, amount, signer); err != nil {
			return err
		}

		reward := &RewardAccount{
			Player:    player,
			GameId:    gameId,
			Amount:    amount,
			Timestamp: ix.Now,
		}
		if err := account.SetData(reward.Marshal()); err != nil {
			return err
		}

		ix.Emit(&GameRewardDistributed{
			Player:    player,
			Amount:    amount,
			GameId:    gameId,
			Timestamp: reward.Timestamp,
		})

		return nil
	})
}

// SetupAirdropAccount creates the caller's airdrop entitlement. One per
// recipient, claimable strictly in the future.
func (p *Processor) SetupAirdropAccount(caller, mint ed25519.PublicKey, amount uint64, claimableAt int64) error {
	return p.rt.Execute(Program(), "setup_airdrop_account", caller, func(ix *runtime.Instruction) error {
		if amount == 0 {
			return ErrInvalidAmount
		}
		if claimableAt <= ix.Now {
			return ErrInvalidClaimTime
		}

		airdropAddress, _, err := GetAirdropAccountAddress(&GetAirdropAccountAddressArgs{Recipient: caller})
		if err != nil {
			return err
		}
		account, err := ix.CreateAccount(airdropAddress, AirdropAccountSize)
		if err != nil {
			return err
		}

		airdrop := &AirdropAccount{
			Recipient:   caller,
			Mint:        mint,
			Amount:      amount,
			ClaimableAt: claimableAt,
			Claimed:     false,
			CreatedAt:   ix.Now,
		}
		if err := account.SetData(airdrop.Marshal()); err != nil {
			return err
		}

		ix.Emit(&AirdropAccountSetup{
			Recipient:   airdrop.Recipient,
			Amount:      amount,
			ClaimableAt: claimableAt,
			Timestamp:   airdrop.CreatedAt,
		})

		return nil
	})
}

// ClaimAirdrop pays the entitlement out of the airdrop pool once the
// claimable time has been reached.
func (p *Processor) ClaimAirdrop(caller, recipientAccount ed25519.PublicKey) error {
	return p.rt.Execute(Program(), "claim_airdrop", caller, func(ix *runtime.Instruction) error {
		airdropAddress, _, err := GetAirdropAccountAddress(&GetAirdropAccountAddressArgs{Recipient: caller})
		if err != nil {
			return err
		}
		account, err := ix.OwnedAccount(airdropAddress)
		if err != nil {
			return err
		}

		var airdrop AirdropAccount
		if err := airdrop.Unmarshal(account.Data()); err != nil {
			return err
		}

		if !caller.Equal(airdrop.Recipient) {
			return ErrUnauthorized
		}
		if airdrop.Claimed {
			return ErrAlreadyClaimed
		}
		if ix.Now < airdrop.ClaimableAt {
			return ErrAirdropNotAvailable
		}

		airdropPool, poolBump, err := GetAirdropPoolAddress(&GetPoolAddressArgs{Mint: airdrop.Mint})
		if err != nil {
			return err
		}

		signer := token.ProgramSigner(PROGRAM_ID, poolBump, airdropPoolPrefix, airdrop.Mint)
		if err := p.tokens.Transfer(ix, airdropPool, recipientAccount, airdrop.Amount, signer); err != nil {
			return err
		}

		claimedAt := ix.Now
		airdrop.Claimed = true
		airdrop.ClaimedAt = &claimedAt
		if err := account.SetData(airdrop.Marshal()); err != nil {
			return err
		}

		ix.Emit(&AirdropClaimed{
			Recipient: airdrop.Recipient,
			Amount:    airdrop.Amount,
			Timestamp: claimedAt,
		})

		return nil
	})
}

func (p *Processor) loadConfig(ix *runtime.Instruction, mint ed25519.PublicKey) (*runtime.Account, *MemecoinConfig, error) {
	configAddress, _, err := GetConfigAddress(&GetConfigAddressArgs{Mint: mint})
	if err != nil {
		return nil, nil, err
	}

	account, err := ix.OwnedAccount(configAddress)
	if err != nil {
		return nil, nil, err
	}

	var config MemecoinConfig
	if err := config.Unmarshal(account.Data()); err != nil {
		return nil, nil, err
	}
	return account, &config, nil
}
