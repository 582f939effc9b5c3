package solitaire

import "crypto/ed25519"

type GameStarted struct {
	GameId      string
	Player      ed25519.PublicKey
	StakeAmount uint64
	Timestamp   int64
}

func (e *GameStarted) EventType() string { return "game_started" }

type MoveMade struct {
	GameId    string
	Player    ed25519.PublicKey
	FromPile  string
	ToPile    string
	CardIndex uint8
	Moves     uint32
	Timestamp int64
}

func (e *MoveMade) EventType() string { return "move_made" }

type GameCompleted struct {
	GameId    string
	Player    ed25519.PublicKey
	Won       bool
	Score     uint64
	Moves     uint32
	Timestamp int64
}

func (e *GameCompleted) EventType() string { return "game_completed" }

type StakeWithdrawn struct {
	GameId    string
	Player    ed25519.PublicKey
	Amount    uint64
	Penalty   uint64
	Timestamp int64
}

func (e *StakeWithdrawn) EventType() string { return "stake_withdrawn" }
