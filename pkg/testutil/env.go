package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/arcade-labs/arcade-server/pkg/events"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
	"github.com/arcade-labs/arcade-server/pkg/solana/token"
)

// Env wires a runtime, token ledger and capturing event log around a
// fake clock pinned to a fixed instant, so temporal tests can advance
// time deterministically.
type Env struct {
	Runtime *runtime.Runtime
	Tokens  *token.Service
	Events  *events.Log
	Clock   *clockwork.FakeClock
}

func NewEnv() *Env {
	clock := clockwork.NewFakeClockAt(time.Unix(1700000000, 0))
	log := events.NewLog()
	rt := runtime.New(log, runtime.WithClock(clock))

	return &Env{
		Runtime: rt,
		Tokens:  token.NewService(rt),
		Events:  log,
		Clock:   clock,
	}
}

// Advance moves the fake clock forward by the provided number of seconds.
func (e *Env) Advance(seconds int64) {
	e.Clock.Advance(time.Duration(seconds) * time.Second)
}
