package memecoin

type MemecoinError uint32

const (
	// Name too long
	ErrNameTooLong MemecoinError = iota + 0x1770

	// Symbol too long
	ErrSymbolTooLong

	// Invalid decimals
	ErrInvalidDecimals

	// Invalid supply
	ErrInvalidSupply

	// Invalid amount
	ErrInvalidAmount

	// Game ID too long
	ErrGameIdTooLong

	// Unauthorized
	ErrUnauthorized

	// Already distributed
	ErrAlreadyDistributed

	// Insufficient rewards
	ErrInsufficientRewards

	// Already claimed
	ErrAlreadyClaimed

	// Airdrop not available
	ErrAirdropNotAvailable

	// Invalid claim time
	ErrInvalidClaimTime
)

func (e MemecoinError) Error() string {
	switch e {
	case ErrNameTooLong:
		return "name too long"
	case ErrSymbolTooLong:
		return "symbol too long"
	case ErrInvalidDecimals:
		return "invalid decimals"
	case ErrInvalidSupply:
		return "invalid supply"
	case ErrInvalidAmount:
		return "invalid amount"
	case ErrGameIdTooLong:
		return "game id too long"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrAlreadyDistributed:
		return "already distributed"
	case ErrInsufficientRewards:
		return "insufficient rewards"
	case ErrAlreadyClaimed:
		return "already claimed"
	case ErrAirdropNotAvailable:
		return "airdrop not available"
	case ErrInvalidClaimTime:
		return "invalid claim time"
	}

	return "unknown"
}
