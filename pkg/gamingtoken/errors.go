package gamingtoken

type GamingTokenError uint32

const (
	// Name too long
	ErrNameTooLong GamingTokenError = iota + 0x1770

	// Symbol too long
	ErrSymbolTooLong

	// Invalid decimals
	ErrInvalidDecimals

	// Invalid amount
	ErrInvalidAmount

	// Invalid lock period
	ErrInvalidLockPeriod

	// Unauthorized
	ErrUnauthorized

	// Stake not active
	ErrStakeNotActive

	// Tokens still locked
	ErrTokensStillLocked

	// Insufficient funds
	ErrInsufficientFunds
)

func (e GamingTokenError) Error() string {
	switch e {
	case ErrNameTooLong:
		return "name too long"
	case ErrSymbolTooLong:
		return "symbol too long"
	case ErrInvalidDecimals:
		return "invalid decimals"
	case ErrInvalidAmount:
		return "invalid amount"
	case ErrInvalidLockPeriod:
		return "invalid lock period"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrStakeNotActive:
		return "stake not active"
	case ErrTokensStillLocked:
		return "tokens still locked"
	case ErrInsufficientFunds:
		return "insufficient funds"
	}

	return "unknown"
}
