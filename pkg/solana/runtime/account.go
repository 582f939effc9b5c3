package runtime

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// Account is a program-owned record. Only instructions of the owning
// program mutate it; the runtime enforces nothing beyond ownership and
// space, the semantics live in the programs.
type Account struct {
	Address ed25519.PublicKey
	Owner   ed25519.PublicKey

	space int
	data  []byte
}

// Data returns the current serialized record.
func (a *Account) Data() []byte {
	return a.data
}

// SetData replaces the serialized record. The new data must fit within
// the space allocated at creation.
func (a *Account) SetData(data []byte) error {
	if len(data) > a.space {
		return ErrAccountDataTooLarge
	}
	a.data = data
	return nil
}

func (a *Account) ToString() string {
	return "Account{" +
		"address='" + base58.Encode(a.Address) + "'" +
		", owner='" + base58.Encode(a.Owner) + "'" +
		"}"
}

func (a *Account) clone() *Account {
	data := make([]byte, len(a.data))
	copy(data, a.data)

	return &Account{
		Address: a.Address,
		Owner:   a.Owner,
		space:   a.space,
		data:    data,
	}
}
