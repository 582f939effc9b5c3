// Package runtime provides an emulated transaction host for program state
// machines: a verified caller identity, a monotonic wall clock, a store of
// program-owned accounts, and atomic instruction execution with rollback.
package runtime

import (
	"crypto/ed25519"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arcade-labs/arcade-server/pkg/events"
	"github.com/arcade-labs/arcade-server/pkg/metrics"
)

var (
	ErrAccountExists       = errors.New("account already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountOwner = errors.New("account is not owned by the executing program")
	ErrAccountDataTooLarge = errors.New("account data exceeds allocated space")
)

// Program identifies an executing program to the runtime.
type Program struct {
	ID   ed25519.PublicKey
	Name string
}

// Resource is external state that must commit or roll back together with
// the account store. The token ledger registers itself as one.
type Resource interface {
	// Snapshot captures current state and returns a function restoring it.
	Snapshot() (restore func())
}

type Option func(*Runtime)

func WithClock(clock clockwork.Clock) Option {
	return func(r *Runtime) {
		r.clock = clock
	}
}

// Runtime executes instructions serially. Each execution either commits
// every account mutation, resource side effect and pending event, or none
// of them.
type Runtime struct {
	log   *logrus.Entry
	clock clockwork.Clock
	sink  events.Sink

	mu        sync.Mutex
	accounts  map[string]*Account
	resources []Resource
}

func New(sink events.Sink, opts ...Option) *Runtime {
	r := &Runtime{
		log:      logrus.StandardLogger().WithField("type", "runtime/Runtime"),
		clock:    clockwork.NewRealClock(),
		sink:     sink,
		accounts: make(map[string]*Account),
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

func (r *Runtime) Clock() clockwork.Clock {
	return r.clock
}

// Register adds a resource to the atomic commit scope of every
// subsequently executed instruction.
func (r *Runtime) Register(resource Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resources = append(r.resources, resource)
}

// Account returns the account at the provided address, if it exists.
func (r *Runtime) Account(address ed25519.PublicKey) (*Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[base58.Encode(address)]
	return account, ok
}

// Execute runs fn as a single instruction. The caller is the verified
// transaction signer. On error, every mutation made through the
// instruction context is rolled back and no events are published.
func (r *Runtime) Execute(program Program, instruction string, caller ed25519.PublicKey, fn func(ix *Instruction) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := r.clock.Now()

	ix := &Instruction{
		ID:      uuid.New().String(),
		Program: program,
		Caller:  caller,
		Now:     start.Unix(),
		rt:      r,
	}

	log := r.log.WithFields(logrus.Fields{
		"execution":   ix.ID,
		"program":     program.Name,
		"instruction": instruction,
		"caller":      base58.Encode(caller),
	})

	restore := r.snapshot()
	if err := fn(ix); err != nil {
		restore()

		log.WithError(err).Debug("instruction aborted")
		metrics.InstructionsTotal.WithLabelValues(program.Name, instruction, "failure").Inc()
		return err
	}

	for _, event := range ix.pending {
		r.sink.Emit(event)
	}
	metrics.EventsEmittedTotal.WithLabelValues(program.Name, instruction).Add(float64(len(ix.pending)))
	metrics.InstructionsTotal.WithLabelValues(program.Name, instruction, "success").Inc()
	metrics.InstructionDuration.WithLabelValues(program.Name, instruction).Observe(r.clock.Since(start).Seconds())

	log.Trace("instruction committed")
	return nil
}

func (r *Runtime) snapshot() (restore func()) {
	accounts := make(map[string]*Account, len(r.accounts))
	for address, account := range r.accounts {
		accounts[address] = account.clone()
	}

	restores := make([]func(), 0, len(r.resources))
	for _, resource := range r.resources {
		restores = append(restores, resource.Snapshot())
	}

	return func() {
		r.accounts = accounts
		for _, restoreResource := range restores {
			restoreResource()
		}
	}
}

// Instruction is the execution context handed to an instruction body. It
// scopes account creation and event emission to the current program and
// transaction.
type Instruction struct {
	ID      string
	Program Program
	Caller  ed25519.PublicKey
	Now     int64

	rt      *Runtime
	pending []events.Event
}

// Emit stages an event for publication when the instruction commits.
func (ix *Instruction) Emit(event events.Event) {
	ix.pending = append(ix.pending, event)
}

// CreateAccount allocates a program-owned account at the provided address.
// Creation of an existing account fails, which instructions rely on for
// replay protection.
func (ix *Instruction) CreateAccount(address ed25519.PublicKey, space int) (*Account, error) {
	key := base58.Encode(address)
	if _, ok := ix.rt.accounts[key]; ok {
		return nil, ErrAccountExists
	}

	account := &Account{
		Address: address,
		Owner:   ix.Program.ID,
		space:   space,
	}
	ix.rt.accounts[key] = account
	return account, nil
}

// Account returns the account at the provided address, if it exists.
func (ix *Instruction) Account(address ed25519.PublicKey) (*Account, bool) {
	account, ok := ix.rt.accounts[base58.Encode(address)]
	return account, ok
}

// OwnedAccount returns the account at the provided address, requiring it
// to exist and to be owned by the executing program.
func (ix *Instruction) OwnedAccount(address ed25519.PublicKey) (*Account, error) {
	account, ok := ix.Account(address)
	if !ok {
		return nil, ErrAccountNotFound
	}
	if !account.Owner.Equal(ix.Program.ID) {
		return nil, ErrInvalidAccountOwner
	}
	return account, nil
}
