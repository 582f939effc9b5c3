package token

import (
	"crypto/ed25519"
	"strconv"

	"github.com/mr-tron/base58"
)

// Mint defines a fungible unit on the token ledger.
type Mint struct {
	// The address of the mint
	Address ed25519.PublicKey
	// The key permitted to mint new supply
	Authority ed25519.PublicKey
	// Number of base 10 digits to the right of the decimal place
	Decimals uint8
	// Total supply of tokens in circulation
	Supply uint64
}

// Account holds a balance of a single mint. The owner may be a user key
// or a program-derived address controlled by seeds.
type Account struct {
	// The mint associated with this account
	Mint ed25519.PublicKey
	// The owner of this account
	Owner ed25519.PublicKey
	// The amount of tokens this account holds
	Amount uint64
}

func (a *Account) ToString() string {
	var mint, owner string

	if a.Mint != nil {
		mint = base58.Encode(a.Mint)
	}
	if a.Owner != nil {
		owner = base58.Encode(a.Owner)
	}

	return "Account{" +
		"mint='" + mint + "'" +
		", owner='" + owner + "'" +
		", amount='" + strconv.FormatUint(a.Amount, 10) + "'" +
		"}"
}
