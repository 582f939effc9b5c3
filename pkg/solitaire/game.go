package solitaire

import (
	"crypto/ed25519"
	"encoding/binary"
	"strconv"
)

// Klondike move rules. Everything here is a pure deterministic function
// of the pile layout and the move arguments; the processor owns clocks
// and settlement.

type Suit uint8

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

func (s Suit) IsRed() bool {
	return s == SuitHearts || s == SuitDiamonds
}

const (
	RankAce  = 1
	RankKing = 13
)

type Card struct {
	Suit   Suit
	Rank   uint8 // 1-13 (A-K)
	FaceUp bool
}

type PileType uint8

const (
	PileTableau PileType = iota
	PileFoundation
	PileStock
	PileWaste
)

func (t PileType) String() string {
	switch t {
	case PileTableau:
		return "tableau"
	case PileFoundation:
		return "foundation"
	case PileStock:
		return "stock"
	case PileWaste:
		return "waste"
	}

	return "unknown"
}

type Pile struct {
	Id    string
	Type  PileType
	Cards []Card
}

func (p *Pile) top() *Card {
	if len(p.Cards) == 0 {
		return nil
	}
	return &p.Cards[len(p.Cards)-1]
}

const (
	tableauPiles    = 7
	foundationPiles = 4
	deckSize        = 52

	StockPileId = "stock"
	WastePileId = "waste"
)

func TableauPileId(index int) string {
	return "tableau_" + strconv.Itoa(index)
}

func FoundationPileId(index int) string {
	return "foundation_" + strconv.Itoa(index)
}

// GameState is the full layout of a game in progress.
type GameState struct {
	Player     ed25519.PublicKey
	Piles      []Pile
	Moves      uint32
	Score      uint64
	IsWon      bool
	IsComplete bool
	StartTime  int64
	EndTime    *int64 // optional
}

// NewGameState deals a standard Klondike layout: seven tableau piles of
// one through seven cards with the top card face up, the remaining
// twenty-four cards face down in the stock. The shuffle is a pure
// function of the seed, so replaying a game account address reproduces
// the deal.
func NewGameState(player ed25519.PublicKey, seed [32]byte, startTime int64) *GameState {
	deck := make([]Card, 0, deckSize)
	for suit := SuitHearts; suit <= SuitSpades; suit++ {
		for rank := uint8(RankAce); rank <= RankKing; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}

	rng := newShuffleRng(seed)
	for i := deckSize - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}

	state := &GameState{
		Player:    player,
		StartTime: startTime,
	}

	var dealt int
	for i := 0; i < tableauPiles; i++ {
		cards := make([]Card, i+1)
		copy(cards, deck[dealt:dealt+i+1])
		cards[len(cards)-1].FaceUp = true
		dealt += i + 1

		state.Piles = append(state.Piles, Pile{
			Id:    TableauPileId(i),
			Type:  PileTableau,
			Cards: cards,
		})
	}
	for i := 0; i < foundationPiles; i++ {
		state.Piles = append(state.Piles, Pile{
			Id:   FoundationPileId(i),
			Type: PileFoundation,
		})
	}

	stock := make([]Card, deckSize-dealt)
	copy(stock, deck[dealt:])
	state.Piles = append(state.Piles, Pile{
		Id:    StockPileId,
		Type:  PileStock,
		Cards: stock,
	})
	state.Piles = append(state.Piles, Pile{Id: WastePileId, Type: PileWaste})

	return state
}

// MakeMove validates and applies a single move. Illegal moves fail with
// ErrInvalidMove and leave the state untouched. Each legal move counts
// once and scores ScorePerMove points.
func (g *GameState) MakeMove(fromPile, toPile string, cardIndex uint8) error {
	source := g.pile(fromPile)
	target := g.pile(toPile)
	if source == nil || target == nil || source == target {
		return ErrInvalidMove
	}

	switch {
	case source.Type == PileStock && target.Type == PileWaste:
		if err := g.drawFromStock(source, target); err != nil {
			return err
		}
	case source.Type == PileWaste && target.Type == PileStock:
		if err := g.recycleWaste(source, target); err != nil {
			return err
		}
	default:
		if err := g.moveCards(source, target, int(cardIndex)); err != nil {
			return err
		}
	}

	g.Moves++
	g.Score += ScorePerMove

	if g.foundationsComplete() {
		g.IsWon = true
		g.IsComplete = true
	}

	return nil
}

func (g *GameState) pile(id string) *Pile {
	for i := range g.Piles {
		if g.Piles[i].Id == id {
			return &g.Piles[i]
		}
	}
	return nil
}

func (g *GameState) drawFromStock(stock, waste *Pile) error {
	if len(stock.Cards) == 0 {
		return ErrInvalidMove
	}

	card := stock.Cards[len(stock.Cards)-1]
	card.FaceUp = true
	stock.Cards = stock.Cards[:len(stock.Cards)-1]
	waste.Cards = append(waste.Cards, card)
	return nil
}

// recycleWaste turns the waste back over into the stock, preserving draw
// order. Only legal once the stock is exhausted.
func (g *GameState) recycleWaste(waste, stock *Pile) error {
	if len(stock.Cards) != 0 || len(waste.Cards) == 0 {
		return ErrInvalidMove
	}

	for i := len(waste.Cards) - 1; i >= 0; i-- {
		card := waste.Cards[i]
		card.FaceUp = false
		stock.Cards = append(stock.Cards, card)
	}
	waste.Cards = waste.Cards[:0]
	return nil
}

func (g *GameState) moveCards(source, target *Pile, cardIndex int) error {
	if source.Type == PileStock || target.Type == PileStock || target.Type == PileWaste {
		return ErrInvalidMove
	}
	if cardIndex >= len(source.Cards) {
		return ErrInvalidMove
	}
	if !source.Cards[cardIndex].FaceUp {
		return ErrInvalidMove
	}

	// Only tableau piles give up runs; everything else moves its top card.
	if source.Type != PileTableau && cardIndex != len(source.Cards)-1 {
		return ErrInvalidMove
	}

	run := source.Cards[cardIndex:]

	switch target.Type {
	case PileFoundation:
		if len(run) != 1 {
			return ErrInvalidMove
		}
		if !foundationAccepts(target.top(), run[0]) {
			return ErrInvalidMove
		}
	case PileTableau:
		if !tableauAccepts(target.top(), run[0]) {
			return ErrInvalidMove
		}
	default:
		return ErrInvalidMove
	}

	target.Cards = append(target.Cards, run...)
	source.Cards = source.Cards[:cardIndex]

	// Expose the next tableau card.
	if source.Type == PileTableau {
		if top := source.top(); top != nil {
			top.FaceUp = true
		}
	}

	return nil
}

// foundationAccepts reports whether card may be placed on a foundation
// whose current top is top: aces start a foundation, and it builds up by
// one within a single suit.
func foundationAccepts(top *Card, card Card) bool {
	if top == nil {
		return card.Rank == RankAce
	}
	return top.Suit == card.Suit && card.Rank == top.Rank+1
}

// tableauAccepts reports whether card may be placed on a tableau whose
// current top is top: kings move to empty piles, and it builds down by
// one with alternating colors.
func tableauAccepts(top *Card, card Card) bool {
	if top == nil {
		return card.Rank == RankKing
	}
	if !top.FaceUp {
		return false
	}
	return top.Suit.IsRed() != card.Suit.IsRed() && card.Rank == top.Rank-1
}

func (g *GameState) foundationsComplete() bool {
	var complete int
	for i := range g.Piles {
		if g.Piles[i].Type == PileFoundation && len(g.Piles[i].Cards) == RankKing {
			complete++
		}
	}
	return complete == foundationPiles
}

type shuffleRng struct {
	state uint64
}

func newShuffleRng(seed [32]byte) *shuffleRng {
	state := binary.LittleEndian.Uint64(seed[:8])
	if state == 0 {
		state = 1
	}
	return &shuffleRng{state: state}
}

// xorshift64; deterministic across platforms and Go releases.
func (r *shuffleRng) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}
