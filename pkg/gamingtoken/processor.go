package gamingtoken

import (
	"crypto/ed25519"

	"github.com/sirupsen/logrus"

	"github.com/arcade-labs/arcade-server/pkg/solana"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
	"github.com/arcade-labs/arcade-server/pkg/solana/token"
)

// Processor executes gaming token instructions against the runtime and
// the token ledger.
type Processor struct {
	log    *logrus.Entry
	rt     *runtime.Runtime
	tokens *token.Service
}

func NewProcessor(rt *runtime.Runtime, tokens *token.Service) *Processor {
	return &Processor{
		log:    logrus.StandardLogger().WithField("type", "gamingtoken/Processor"),
		rt:     rt,
		tokens: tokens,
	}
}

type InitializeMintArgs struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// InitializeMint creates the mint on the token ledger and its MintConfig
// record. The caller becomes the mint authority.
func (p *Processor) InitializeMint(caller, mint ed25519.PublicKey, args *InitializeMintArgs) error {
	return p.rt.Execute(Program(), "initialize_mint", caller, func(ix *runtime.Instruction) error {
		if len(args.Name) > MaxNameLength {
			return ErrNameTooLong
		}
		if len(args.Symbol) > MaxSymbolLength {
			return ErrSymbolTooLong
		}
		if args.Decimals > MaxDecimals {
			return ErrInvalidDecimals
		}

		if err := p.tokens.CreateMint(mint, caller, args.Decimals); err != nil {
			return err
		}

		configAddress, _, err := GetMintConfigAddress(&GetMintConfigAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		account, err := ix.CreateAccount(configAddress, MintConfigMaxSize)
		if err != nil {
			return err
		}

		config := &MintConfig{
			Authority:     caller,
			Mint:          mint,
			TokenName:     args.Name,
			TokenSymbol:   args.Symbol,
			Decimals:      args.Decimals,
			TotalSupply:   0,
			IsInitialized: true,
			CreatedAt:     ix.Now,
		}
		if err := account.SetData(config.Marshal()); err != nil {
			return err
		}

		ix.Emit(&MintInitialized{
			Mint:      config.Mint,
			Name:      config.TokenName,
			Symbol:    config.TokenSymbol,
			Decimals:  args.Decimals,
			Authority: config.Authority,
			Timestamp: config.CreatedAt,
		})

		return nil
	})
}

// MintTokens mints new supply to the destination token account. Only the
// recorded mint authority may call it.
func (p *Processor) MintTokens(caller, mint, tokenAccount ed25519.PublicKey, amount uint64) error {
	return p.rt.Execute(Program(), "mint_tokens", caller, func(ix *runtime.Instruction) error {
		account, config, err := p.loadMintConfig(ix, mint)
		if err != nil {
			return err
		}

		if amount == 0 {
			return ErrInvalidAmount
		}
		if !caller.Equal(config.Authority) {
			return ErrUnauthorized
		}

		if err := p.tokens.Mint(ix, mint, tokenAccount, amount, token.Signer(caller)); err != nil {
			return err
		}

		newSupply, err := solana.CheckedAddU64(config.TotalSupply, amount)
		if err != nil {
			return err
		}
		config.TotalSupply = newSupply
		if err := account.SetData(config.Marshal()); err != nil {
			return err
		}

		ix.Emit(&TokensMinted{
			Mint:      config.Mint,
			To:        tokenAccount,
			Amount:    amount,
			NewSupply: config.TotalSupply,
			Timestamp: ix.Now,
		})

		return nil
	})
}

// StakeTokens moves amount from the caller's token account into the stake
// vault and opens a stake locked for lockPeriod seconds. The mint's
// vaults are created on first stake.
func (p *Processor) StakeTokens(caller, mint, userTokenAccount ed25519.PublicKey, amount uint64, lockPeriod int64) error {
	return p.rt.Execute(Program(), "stake_tokens", caller, func(ix *runtime.Instruction) error {
		if amount == 0 {
			return ErrInvalidAmount
		}
		if lockPeriod <= 0 {
			return ErrInvalidLockPeriod
		}

		stakeAddress, _, err := GetStakeAccountAddress(&GetStakeAccountAddressArgs{Owner: caller, Mint: mint})
		if err != nil {
			return err
		}
		account, err := ix.CreateAccount(stakeAddress, StakeAccountSize)
		if err != nil {
			return err
		}

		if err := p.ensureVaults(mint); err != nil {
			return err
		}

		stakeVault, _, err := GetStakeVaultAddress(&GetVaultAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		if err := p.tokens.Transfer(ix, userTokenAccount, stakeVault, amount, token.Signer(caller)); err != nil {
			return err
		}

		stake := &StakeAccount{
			Owner:           caller,
			Mint:            mint,
			Amount:          amount,
			LockUntil:       ix.Now + lockPeriod,
			CreatedAt:       ix.Now,
			LastRewardClaim: ix.Now,
			IsActive:        true,
		}
		if err := account.SetData(stake.Marshal()); err != nil {
			return err
		}

		ix.Emit(&TokensStaked{
			Owner:     stake.Owner,
			Amount:    amount,
			LockUntil: stake.LockUntil,
			Timestamp: stake.CreatedAt,
		})

		return nil
	})
}

// ClaimRewards pays out rewards accrued since the last claim from the
// reward vault. A zero reward is a no-op without an event.
func (p *Processor) ClaimRewards(caller, mint, userTokenAccount ed25519.PublicKey) error {
	return p.rt.Execute(Program(), "claim_rewards", caller, func(ix *runtime.Instruction) error {
		account, stake, err := p.loadStakeAccount(ix, caller, mint)
		if err != nil {
			return err
		}

		if !stake.IsActive {
			return ErrStakeNotActive
		}
		if !caller.Equal(stake.Owner) {
			return ErrUnauthorized
		}

		reward, err := calculateReward(stake.Amount, ix.Now-stake.LastRewardClaim)
		if err != nil {
			return err
		}
		if reward == 0 {
			return nil
		}

		rewardVault, _, err := GetRewardVaultAddress(&GetVaultAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		_, authorityBump, err := GetRewardVaultAuthorityAddress(&GetVaultAddressArgs{Mint: mint})
		if err != nil {
			return err
		}

		signer := token.ProgramSigner(PROGRAM_ID, authorityBump, rewardVaultAuthorityPrefix, mint)
		if err := p.tokens.Transfer(ix, rewardVault, userTokenAccount, reward, signer); err != nil {
			return err
		}

		stake.LastRewardClaim = ix.Now
		if err := account.SetData(stake.Marshal()); err != nil {
			return err
		}

		ix.Emit(&RewardsClaimed{
			Owner:     stake.Owner,
			Amount:    reward,
			Timestamp: ix.Now,
		})

		return nil
	})
}

// UnstakeTokens closes an unlocked stake, returning the principal plus a
// reward computed from stake inception out of the stake vault. Rewards
// already disbursed by ClaimRewards are not deducted and are paid a
// second time, matching the deployed contract.
func (p *Processor) UnstakeTokens(caller, mint, userTokenAccount ed25519.PublicKey) error {
	return p.rt.Execute(Program(), "unstake_tokens", caller, func(ix *runtime.Instruction) error {
		account, stake, err := p.loadStakeAccount(ix, caller, mint)
		if err != nil {
			return err
		}

		if !stake.IsActive {
			return ErrStakeNotActive
		}
		if !caller.Equal(stake.Owner) {
			return ErrUnauthorized
		}
		if ix.Now < stake.LockUntil {
			return ErrTokensStillLocked
		}

		reward, err := calculateReward(stake.Amount, ix.Now-stake.CreatedAt)
		if err != nil {
			return err
		}
		total, err := solana.CheckedAddU64(stake.Amount, reward)
		if err != nil {
			return err
		}

		stakeVault, _, err := GetStakeVaultAddress(&GetVaultAddressArgs{Mint: mint})
		if err != nil {
			return err
		}
		_, authorityBump, err := GetVaultAuthorityAddress(&GetVaultAddressArgs{Mint: mint})
		if err != nil {
			return err
		}

		signer := token.ProgramSigner(PROGRAM_ID, authorityBump, vaultAuthorityPrefix, mint)
		if err := p.tokens.Transfer(ix, stakeVault, userTokenAccount, total, signer); err != nil {
			return err
		}

		stake.IsActive = false
		if err := account.SetData(stake.Marshal()); err != nil {
			return err
		}

		ix.Emit(&TokensUnstaked{
			Owner:     stake.Owner,
			Principal: stake.Amount,
			Reward:    reward,
			Total:     total,
			Timestamp: ix.Now,
		})

		return nil
	})
}

func (p *Processor) loadMintConfig(ix *runtime.Instruction, mint ed25519.PublicKey) (*runtime.Account, *MintConfig, error) {
	configAddress, _, err := GetMintConfigAddress(&GetMintConfigAddressArgs{Mint: mint})
	if err != nil {
		return nil, nil, err
	}

	account, err := ix.OwnedAccount(configAddress)
	if err != nil {
		return nil, nil, err
	}

	var config MintConfig
	if err := config.Unmarshal(account.Data()); err != nil {
		return nil, nil, err
	}
	return account, &config, nil
}

func (p *Processor) loadStakeAccount(ix *runtime.Instruction, owner, mint ed25519.PublicKey) (*runtime.Account, *StakeAccount, error) {
	stakeAddress, _, err := GetStakeAccountAddress(&GetStakeAccountAddressArgs{Owner: owner, Mint: mint})
	if err != nil {
		return nil, nil, err
	}

	account, err := ix.OwnedAccount(stakeAddress)
	if err != nil {
		return nil, nil, err
	}

	var stake StakeAccount
	if err := stake.Unmarshal(account.Data()); err != nil {
		return nil, nil, err
	}
	return account, &stake, nil
}

// ensureVaults creates the mint's stake and reward vaults the first time
// a stake is opened. Both are token accounts controlled by program
// derived authorities.
func (p *Processor) ensureVaults(mint ed25519.PublicKey) error {
	stakeVault, _, err := GetStakeVaultAddress(&GetVaultAddressArgs{Mint: mint})
	if err != nil {
		return err
	}
	vaultAuthority, _, err := GetVaultAuthorityAddress(&GetVaultAddressArgs{Mint: mint})
	if err != nil {
		return err
	}
	if err := p.tokens.CreateAccount(stakeVault, mint, vaultAuthority); err != nil && err != token.ErrAccountAlreadyInUse {
		return err
	}

	rewardVault, _, err := GetRewardVaultAddress(&GetVaultAddressArgs{Mint: mint})
	if err != nil {
		return err
	}
	rewardVaultAuthority, _, err := GetRewardVaultAuthorityAddress(&GetVaultAddressArgs{Mint: mint})
	if err != nil {
		return err
	}
	if err := p.tokens.CreateAccount(rewardVault, mint, rewardVaultAuthority); err != nil && err != token.ErrAccountAlreadyInUse {
		return err
	}

	return nil
}

// calculateReward prorates the 5% APR linearly by elapsed seconds, with
// truncating integer division. Sub-threshold accruals round to zero.
func calculateReward(amount uint64, elapsed int64) (uint64, error) {
	if elapsed <= 0 {
		return 0, nil
	}

	numerator, err := solana.CheckedMulU64(amount, AprNumerator)
	if err != nil {
		return 0, err
	}
	numerator, err = solana.CheckedMulU64(numerator, uint64(elapsed))
	if err != nil {
		return 0, err
	}

	return numerator / (AprDenominator * SecondsPerYear), nil
}
