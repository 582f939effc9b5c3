package solitaire

import (
	"crypto/ed25519"

	"github.com/sirupsen/logrus"

	"github.com/arcade-labs/arcade-server/pkg/solana"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
	"github.com/arcade-labs/arcade-server/pkg/solana/token"
)

// Processor executes solitaire instructions against the runtime and the
// token ledger.
type Processor struct {
	log    *logrus.Entry
	rt     *runtime.Runtime
	tokens *token.Service
}

func NewProcessor(rt *runtime.Runtime, tokens *token.Service) *Processor {
	return &Processor{
		log:    logrus.StandardLogger().WithField("type", "solitaire/Processor"),
		rt:     rt,
		tokens: tokens,
	}
}

// InitializeGame escrows the stake and deals a fresh game. The deal is a
// pure function of the game account address, so the layout is replayable.
func (p *Processor) InitializeGame(caller ed25519.PublicKey, gameId string, stakeAmount uint64, rewardMint, userTokenAccount ed25519.PublicKey) error {
	return p.rt.Execute(Program(), "initialize_game", caller, func(ix *runtime.Instruction) error {
		if stakeAmount == 0 {
			return ErrInvalidStakeAmount
		}
		if len(gameId) > MaxGameIdLength {
			return ErrGameIdTooLong
		}

		gameAddress, _, err := GetGameAddress(&GetGameAddressArgs{Authority: caller, GameId: gameId})
		if err != nil {
			return err
		}
		account, err := ix.CreateAccount(gameAddress, GameAccountMaxSize)
		if err != nil {
			return err
		}

		escrow, escrowBump, err := GetEscrowAddress(&GetEscrowAddressArgs{GameId: gameId})
		if err != nil {
			return err
		}
		if err := p.tokens.CreateAccount(escrow, rewardMint, escrow); err != nil {
			return err
		}

		if err := p.tokens.Transfer(ix, userTokenAccount, escrow, stakeAmount, token.Signer(caller)); err != nil {
			return err
		}

		var seed [32]byte
		copy(seed[:], gameAddress)

		game := &GameAccount{
			Authority:   caller,
			GameId:      gameId,
			StakeAmount: stakeAmount,
			RewardMint:  rewardMint,
			Status:      StatusActive,
			Moves:       0,
			Score:       0,
			IsWon:       false,
			CreatedAt:   ix.Now,
			UpdatedAt:   ix.Now,
			GameState:   *NewGameState(caller, seed, ix.Now),
			Bump:        escrowBump,
		}
		if err := account.SetData(game.Marshal()); err != nil {
			return err
		}

		ix.Emit(&GameStarted{
			GameId:      game.GameId,
			Player:      game.Authority,
			StakeAmount: stakeAmount,
			Timestamp:   game.CreatedAt,
		})

		return nil
	})
}

// MakeMove applies one validated move. A move that completes all four
// foundations wins and settles the status immediately, emitting
// GameCompleted in addition to MoveMade.
func (p *Processor) MakeMove(caller ed25519.PublicKey, gameId, fromPile, toPile string, cardIndex uint8) error {
	return p.rt.Execute(Program(), "make_move", caller, func(ix *runtime.Instruction) error {
		account, game, err := p.loadGame(ix, caller, gameId)
		if err != nil {
			return err
		}

		if game.Status != StatusActive {
			return ErrGameNotActive
		}
		if !caller.Equal(game.Authority) {
			return ErrUnauthorized
		}

		if err := game.GameState.MakeMove(fromPile, toPile, cardIndex); err != nil {
			return err
		}
		game.Moves++
		game.Score += ScorePerMove
		game.UpdatedAt = ix.Now

		if game.GameState.IsWon {
			endTime := ix.Now
			game.IsWon = true
			game.Status = StatusCompleted
			game.GameState.EndTime = &endTime

			ix.Emit(&GameCompleted{
				GameId:    game.GameId,
				Player:    game.Authority,
				Won:       true,
				Score:     game.Score,
				Moves:     game.Moves,
				Timestamp: game.UpdatedAt,
			})
		}

		if err := account.SetData(game.Marshal()); err != nil {
			return err
		}

		ix.Emit(&MoveMade{
			GameId:    game.GameId,
			Player:    game.Authority,
			FromPile:  fromPile,
			ToPile:    toPile,
			CardIndex: cardIndex,
			Moves:     game.Moves,
			Timestamp: game.UpdatedAt,
		})

		return nil
	})
}

// CompleteGame settles an active game: double the stake on a win, half
// the stake otherwise, paid out of the escrow. A winning payout exceeds
// the escrowed stake, so it fails with insufficient funds unless the
// escrow was topped up externally; that is the deployed contract's
// behavior and is preserved.
func (p *Processor) CompleteGame(caller ed25519.PublicKey, gameId string, finalScore uint64, userTokenAccount ed25519.PublicKey) error {
	return p.rt.Execute(Program(), "complete_game", caller, func(ix *runtime.Instruction) error {
		account, game, err := p.loadGame(ix, caller, gameId)
		if err != nil {
			return err
		}

		if game.Status != StatusActive {
			return ErrGameNotActive
		}
		if !caller.Equal(game.Authority) {
			return ErrUnauthorized
		}

		game.Status = StatusCompleted
		game.Score = finalScore
		game.IsWon = game.GameState.IsWon
		game.UpdatedAt = ix.Now

		var reward uint64
		if game.IsWon {
			reward, err = solana.CheckedMulU64(game.StakeAmount, WinRewardMultiplier)
			if err != nil {
				return err
			}
		} else {
			reward = game.StakeAmount / LossRewardDivisor
		}

		escrow, _, err := GetEscrowAddress(&GetEscrowAddressArgs{GameId: gameId})
		if err != nil {
			return err
		}
		signer := token.ProgramSigner(PROGRAM_ID, game.Bump, escrowPrefix, []byte(gameId))
		if err := p.tokens.Transfer(ix, escrow, userTokenAccount, reward, signer); err != nil {
			return err
		}

		if err := account.SetData(game.Marshal()); err != nil {
			return err
		}

		ix.Emit(&GameCompleted{
			GameId:    game.GameId,
			Player:    game.Authority,
			Won:       game.IsWon,
			Score:     finalScore,
			Moves:     game.Moves,
			Timestamp: game.UpdatedAt,
		})

		return nil
	})
}

// WithdrawStake abandons a game after 24 hours of inactivity, refunding
// the stake minus a 10% penalty that stays in escrow.
func (p *Processor) WithdrawStake(caller ed25519.PublicKey, gameId string, userTokenAccount ed25519.PublicKey) error {
	return p.rt.Execute(Program(), "withdraw_stake", caller, func(ix *runtime.Instruction) error {
		account, game, err := p.loadGame(ix, caller, gameId)
		if err != nil {
			return err
		}

		if game.Status != StatusActive {
			return ErrGameNotActive
		}
		if !caller.Equal(game.Authority) {
			return ErrUnauthorized
		}
		if ix.Now-game.UpdatedAt < AbandonmentDelay {
			return ErrWithdrawalTooEarly
		}

		game.Status = StatusAbandoned
		game.UpdatedAt = ix.Now

		penalty := game.StakeAmount / AbandonmentPenaltyDivisor
		refund := game.StakeAmount - penalty

		escrow, _, err := GetEscrowAddress(&GetEscrowAddressArgs{GameId: gameId})
		if err != nil {
			return err
		}
		signer := token.ProgramSigner(PROGRAM_ID, game.Bump, escrowPrefix, []byte(gameId))
		if err := p.tokens.Transfer(ix, escrow, userTokenAccount, refund, signer); err != nil {
			return err
		}

		if err := account.SetData(game.Marshal()); err != nil {
			return err
		}

		ix.Emit(&StakeWithdrawn{
			GameId:    game.GameId,
			Player:    game.Authority,
			Amount:    refund,
			Penalty:   penalty,
			Timestamp: game.UpdatedAt,
		})

		return nil
	})
}

func (p *Processor) loadGame(ix *runtime.Instruction, authority ed25519.PublicKey, gameId string) (*runtime.Account, *GameAccount, error) {
	gameAddress, _, err := GetGameAddress(&GetGameAddressArgs{Authority: authority, GameId: gameId})
	if err != nil {
		return nil, nil, err
	}

	account, err := ix.OwnedAccount(gameAddress)
	if err != nil {
		return nil, nil, err
	}

	var game GameAccount
	if err := game.Unmarshal(account.Data()); err != nil {
		return nil, nil, err
	}
	return account, &game, nil
}
