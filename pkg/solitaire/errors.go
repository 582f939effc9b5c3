package solitaire

type SolitaireError uint32

const (
	// Invalid stake amount
	ErrInvalidStakeAmount SolitaireError = iota + 0x1770

	// Game ID too long
	ErrGameIdTooLong

	// Unauthorized
	ErrUnauthorized

	// Game not active
	ErrGameNotActive

	// Withdrawal too early
	ErrWithdrawalTooEarly

	// Invalid move
	ErrInvalidMove
)

func (e SolitaireError) Error() string {
	switch e {
	case ErrInvalidStakeAmount:
		return "invalid stake amount"
	case ErrGameIdTooLong:
		return "game id too long"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrGameNotActive:
		return "game not active"
	case ErrWithdrawalTooEarly:
		return "withdrawal too early"
	case ErrInvalidMove:
		return "invalid move"
	}

	return "unknown"
}
