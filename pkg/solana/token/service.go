// Package token implements the token ledger used by the programs: mints,
// token accounts, and mint/transfer primitives authorized either by the
// transaction signer or by a program-derived signer.
package token

import (
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arcade-labs/arcade-server/pkg/solana"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
)

// Authority proves the right to move funds. There are two forms: a user
// signature, checked against the verified transaction caller, and a
// program-derived signer, checked by replaying the address derivation.
type Authority interface {
	resolve(ix *runtime.Instruction) (ed25519.PublicKey, error)
}

type signerAuthority struct {
	key ed25519.PublicKey
}

// Signer authorizes with the transaction signature of key. The resolution
// fails unless key is the instruction's verified caller.
func Signer(key ed25519.PublicKey) Authority {
	return &signerAuthority{key: key}
}

func (a *signerAuthority) resolve(ix *runtime.Instruction) (ed25519.PublicKey, error) {
	if !ix.Caller.Equal(a.key) {
		return nil, ErrInvalidSigner
	}
	return a.key, nil
}

type programSignerAuthority struct {
	program ed25519.PublicKey
	bump    uint8
	seeds   [][]byte
}

// ProgramSigner authorizes as the program-derived address for the
// provided seed tuple and bump. Possession is proved by replaying the
// derivation; only the executing program can sign for its own addresses.
func ProgramSigner(program ed25519.PublicKey, bump uint8, seeds ...[]byte) Authority {
	return &programSignerAuthority{
		program: program,
		bump:    bump,
		seeds:   seeds,
	}
}

func (a *programSignerAuthority) resolve(ix *runtime.Instruction) (ed25519.PublicKey, error) {
	if !ix.Program.ID.Equal(a.program) {
		return nil, ErrInvalidSigner
	}

	seeds := make([][]byte, 0, len(a.seeds)+1)
	seeds = append(seeds, a.seeds...)
	seeds = append(seeds, []byte{a.bump})

	derived, err := solana.CreateProgramAddress(a.program, seeds...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid program signer seeds")
	}
	return derived, nil
}

// Service is the token ledger. It registers itself as a runtime resource
// so its side effects commit or roll back with the instruction that
// caused them. It never holds funds itself.
type Service struct {
	log *logrus.Entry

	mu       sync.Mutex
	mints    map[string]*Mint
	accounts map[string]*Account
}

func NewService(rt *runtime.Runtime) *Service {
	s := &Service{
		log:      logrus.StandardLogger().WithField("type", "token/Service"),
		mints:    make(map[string]*Mint),
		accounts: make(map[string]*Account),
	}
	rt.Register(s)
	return s
}

// Snapshot implements runtime.Resource.
func (s *Service) Snapshot() (restore func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mints := make(map[string]*Mint, len(s.mints))
	for address, mint := range s.mints {
		cloned := *mint
		mints[address] = &cloned
	}

	accounts := make(map[string]*Account, len(s.accounts))
	for address, account := range s.accounts {
		cloned := *account
		accounts[address] = &cloned
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.mints = mints
		s.accounts = accounts
	}
}

// CreateMint registers a new mint with zero supply.
func (s *Service) CreateMint(address, authority ed25519.PublicKey, decimals uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := base58.Encode(address)
	if _, ok := s.mints[key]; ok {
		return ErrMintAlreadyInUse
	}

	s.mints[key] = &Mint{
		Address:   address,
		Authority: authority,
		Decimals:  decimals,
	}
	return nil
}

// CreateAccount registers a new token account with a zero balance.
func (s *Service) CreateAccount(address, mint, owner ed25519.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mints[base58.Encode(mint)]; !ok {
		return ErrMintNotFound
	}

	key := base58.Encode(address)
	if _, ok := s.accounts[key]; ok {
		return ErrAccountAlreadyInUse
	}

	s.accounts[key] = &Account{
		Mint:  mint,
		Owner: owner,
	}
	return nil
}

// Mint creates amount new tokens in the destination account. The
// authority must resolve to the mint authority.
func (s *Service) Mint(ix *runtime.Instruction, mint, to ed25519.PublicKey, amount uint64, authority Authority) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := authority.resolve(ix)
	if err != nil {
		return err
	}

	m, ok := s.mints[base58.Encode(mint)]
	if !ok {
		return ErrMintNotFound
	}
	if !resolved.Equal(m.Authority) {
		return ErrOwnerMismatch
	}

	destination, ok := s.accounts[base58.Encode(to)]
	if !ok {
		return ErrAccountNotFound
	}
	if !destination.Mint.Equal(mint) {
		return ErrMintMismatch
	}

	newAmount, err := solana.CheckedAddU64(destination.Amount, amount)
	if err != nil {
		return err
	}
	newSupply, err := solana.CheckedAddU64(m.Supply, amount)
	if err != nil {
		return err
	}

	destination.Amount = newAmount
	m.Supply = newSupply
	return nil
}

// Transfer moves amount tokens between accounts of the same mint. The
// authority must resolve to the owner of the source account.
func (s *Service) Transfer(ix *runtime.Instruction, from, to ed25519.PublicKey, amount uint64, authority Authority) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := authority.resolve(ix)
	if err != nil {
		return err
	}

	source, ok := s.accounts[base58.Encode(from)]
	if !ok {
		return ErrAccountNotFound
	}
	destination, ok := s.accounts[base58.Encode(to)]
	if !ok {
		return ErrAccountNotFound
	}

	if !resolved.Equal(source.Owner) {
		return ErrOwnerMismatch
	}
	if !source.Mint.Equal(destination.Mint) {
		return ErrMintMismatch
	}
	if source.Amount < amount {
		return ErrInsufficientFunds
	}

	newDestinationAmount, err := solana.CheckedAddU64(destination.Amount, amount)
	if err != nil {
		return err
	}

	source.Amount -= amount
	destination.Amount = newDestinationAmount
	return nil
}

// Balance returns the current amount held by a token account.
func (s *Service) Balance(address ed25519.PublicKey) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[base58.Encode(address)]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return account.Amount, nil
}

// GetMint returns the mint at the provided address, if it exists.
func (s *Service) GetMint(address ed25519.PublicKey) (*Mint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mint, ok := s.mints[base58.Encode(address)]
	if !ok {
		return nil, false
	}
	cloned := *mint
	return &cloned, true
}

// GetAccount returns the token account at the provided address, if it
// exists.
func (s *Service) GetAccount(address ed25519.PublicKey) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[base58.Encode(address)]
	if !ok {
		return nil, false
	}
	cloned := *account
	return &cloned, true
}
