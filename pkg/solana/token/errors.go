package token

import "github.com/pkg/errors"

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotFound     = errors.New("token account not found")
	ErrMintNotFound        = errors.New("mint not found")
	ErrAccountAlreadyInUse = errors.New("token account already in use")
	ErrMintAlreadyInUse    = errors.New("mint already in use")
	ErrOwnerMismatch       = errors.New("authority does not own the source account")
	ErrMintMismatch        = errors.New("token account mint mismatch")
	ErrInvalidSigner       = errors.New("authority signature is not valid for this transaction")
)
