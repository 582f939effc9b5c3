package solitaire

import (
	"bytes"
	"crypto/ed25519"
	"strconv"
	"time"

	"github.com/mr-tron/base58"

	"github.com/arcade-labs/arcade-server/pkg/solana/binary"
)

type GameStatus uint8

const (
	StatusActive GameStatus = iota
	StatusCompleted
	StatusAbandoned
)

func (s GameStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusAbandoned:
		return "abandoned"
	}

	return "unknown"
}

// GameAccount is the settlement record for one game. Once Status leaves
// StatusActive the record is terminal and no instruction mutates it
// again. Bump is the escrow derivation bump, persisted at creation so
// settlement can reconstruct the escrow signer.
type GameAccount struct {
	Authority   ed25519.PublicKey
	GameId      string
	StakeAmount uint64
	RewardMint  ed25519.PublicKey
	Status      GameStatus
	Moves       uint32
	Score       uint64
	IsWon       bool
	CreatedAt   int64
	UpdatedAt   int64
	GameState   GameState
	Bump        uint8
}

const gameStateMaxSize = (32 + // player
	1 + // pile count
	13*(4+12+1+1) + // pile headers (id, type, card count)
	52*3 + // cards (suit, rank, face_up)
	4 + // moves
	8 + // score
	1 + // is_won
	1 + // is_complete
	8 + // start_time
	9) // end_time

const GameAccountMaxSize = (8 + // discriminator
	32 + // authority
	4 + MaxGameIdLength + // game_id
	8 + // stake_amount
	32 + // reward_mint
	1 + // status
	4 + // moves
	8 + // score
	1 + // is_won
	8 + // created_at
	8 + // updated_at
	gameStateMaxSize + // game_state
	1) // bump

var gameAccountDiscriminator = []byte{47, 188, 130, 9, 201, 74, 254, 22}

func (obj *GameAccount) ToString() string {
	var authority string

	if obj.Authority != nil {
		authority = base58.Encode(obj.Authority)
	}

	return "GameAccount{" +
		"authority='" + authority + "'" +
		", game_id='" + obj.GameId + "'" +
		", stake_amount='" + strconv.FormatUint(obj.StakeAmount, 10) + "'" +
		", status='" + obj.Status.String() + "'" +
		", moves='" + strconv.FormatUint(uint64(obj.Moves), 10) + "'" +
		", score='" + strconv.FormatUint(obj.Score, 10) + "'" +
		", is_won='" + strconv.FormatBool(obj.IsWon) + "'" +
		", created_at='" + time.Unix(obj.CreatedAt, 0).String() + "'" +
		", updated_at='" + time.Unix(obj.UpdatedAt, 0).String() + "'" +
		"}"
}

func (obj *GameAccount) Marshal() []byte {
	data := make([]byte, GameAccountMaxSize)

	var offset int

	binary.PutDiscriminator(data, gameAccountDiscriminator, &offset)

	binary.PutKey(data, obj.Authority, &offset)
	binary.PutString(data, obj.GameId, &offset)
	binary.PutUint64(data, obj.StakeAmount, &offset)
	binary.PutKey(data, obj.RewardMint, &offset)
	binary.PutUint8(data, uint8(obj.Status), &offset)
	binary.PutUint32(data, obj.Moves, &offset)
	binary.PutUint64(data, obj.Score, &offset)
	binary.PutBool(data, obj.IsWon, &offset)
	binary.PutInt64(data, obj.CreatedAt, &offset)
	binary.PutInt64(data, obj.UpdatedAt, &offset)
	putGameState(data, &obj.GameState, &offset)
	binary.PutUint8(data, obj.Bump, &offset)

	return data[:offset]
}

func (obj *GameAccount) Unmarshal(data []byte) error {
	var offset int
	var discriminator []byte

	if err := binary.GetDiscriminator(data, &discriminator, &offset); err != nil {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(discriminator, gameAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	var status uint8
	for _, err := range []error{
		binary.GetKey(data, &obj.Authority, &offset),
		binary.GetString(data, &obj.GameId, &offset),
		binary.GetUint64(data, &obj.StakeAmount, &offset),
		binary.GetKey(data, &obj.RewardMint, &offset),
		binary.GetUint8(data, &status, &offset),
		binary.GetUint32(data, &obj.Moves, &offset),
		binary.GetUint64(data, &obj.Score, &offset),
		binary.GetBool(data, &obj.IsWon, &offset),
		binary.GetInt64(data, &obj.CreatedAt, &offset),
		binary.GetInt64(data, &obj.UpdatedAt, &offset),
		getGameState(data, &obj.GameState, &offset),
		binary.GetUint8(data, &obj.Bump, &offset),
	} {
		if err != nil {
			return ErrInvalidAccountData
		}
	}
	obj.Status = GameStatus(status)

	return nil
}

func putGameState(dst []byte, state *GameState, offset *int) {
	binary.PutKey(dst, state.Player, offset)
	binary.PutUint8(dst, uint8(len(state.Piles)), offset)
	for i := range state.Piles {
		pile := &state.Piles[i]
		binary.PutString(dst, pile.Id, offset)
		binary.PutUint8(dst, uint8(pile.Type), offset)
		binary.PutUint8(dst, uint8(len(pile.Cards)), offset)
		for _, card := range pile.Cards {
			binary.PutUint8(dst, uint8(card.Suit), offset)
			binary.PutUint8(dst, card.Rank, offset)
			binary.PutBool(dst, card.FaceUp, offset)
		}
	}
	binary.PutUint32(dst, state.Moves, offset)
	binary.PutUint64(dst, state.Score, offset)
	binary.PutBool(dst, state.IsWon, offset)
	binary.PutBool(dst, state.IsComplete, offset)
	binary.PutInt64(dst, state.StartTime, offset)
	binary.PutOptionalInt64(dst, state.EndTime, offset)
}

func getGameState(src []byte, state *GameState, offset *int) error {
	if err := binary.GetKey(src, &state.Player, offset); err != nil {
		return err
	}

	var pileCount uint8
	if err := binary.GetUint8(src, &pileCount, offset); err != nil {
		return err
	}

	state.Piles = make([]Pile, pileCount)
	for i := range state.Piles {
		pile := &state.Piles[i]

		if err := binary.GetString(src, &pile.Id, offset); err != nil {
			return err
		}
		var pileType uint8
		if err := binary.GetUint8(src, &pileType, offset); err != nil {
			return err
		}
		pile.Type = PileType(pileType)

		var cardCount uint8
		if err := binary.GetUint8(src, &cardCount, offset); err != nil {
			return err
		}
		if cardCount > 0 {
			pile.Cards = make([]Card, cardCount)
		}
		for j := range pile.Cards {
			var suit uint8
			for _, err := range []error{
				binary.GetUint8(src, &suit, offset),
				binary.GetUint8(src, &pile.Cards[j].Rank, offset),
				binary.GetBool(src, &pile.Cards[j].FaceUp, offset),
			} {
				if err != nil {
					return err
				}
			}
			pile.Cards[j].Suit = Suit(suit)
		}
	}

	for _, err := range []error{
		binary.GetUint32(src, &state.Moves, offset),
		binary.GetUint64(src, &state.Score, offset),
		binary.GetBool(src, &state.IsWon, offset),
		binary.GetBool(src, &state.IsComplete, offset),
		binary.GetInt64(src, &state.StartTime, offset),
		binary.GetOptionalInt64(src, &state.EndTime, offset),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}
