package runtime_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcade-labs/arcade-server/pkg/events"
	"github.com/arcade-labs/arcade-server/pkg/solana/runtime"
	"github.com/arcade-labs/arcade-server/pkg/testutil"
)

type testEvent struct {
	Value int
}

func (e *testEvent) EventType() string { return "test_event" }

func TestRuntime_CommitOnSuccess(t *testing.T) {
	log := events.NewLog()
	rt := runtime.New(log)

	program := runtime.Program{ID: testutil.NewRandomAccount(t), Name: "test"}
	caller := testutil.NewRandomAccount(t)
	address := testutil.NewRandomAccount(t)

	err := rt.Execute(program, "create", caller, func(ix *runtime.Instruction) error {
		account, err := ix.CreateAccount(address, 8)
		require.NoError(t, err)

		if err := account.SetData([]byte{1, 2, 3}); err != nil {
			return err
		}

		ix.Emit(&testEvent{Value: 42})
		return nil
	})
	require.NoError(t, err)

	account, ok := rt.Account(address)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, account.Data())
	assert.Equal(t, program.ID, account.Owner)

	require.Equal(t, 1, log.Len())
	event, ok := log.Events()[0].(*testEvent)
	require.True(t, ok)
	assert.Equal(t, 42, event.Value)
}

func TestRuntime_RollbackOnFailure(t *testing.T) {
	log := events.NewLog()
	rt := runtime.New(log)

	program := runtime.Program{ID: testutil.NewRandomAccount(t), Name: "test"}
	caller := testutil.NewRandomAccount(t)
	existing := testutil.NewRandomAccount(t)
	created := testutil.NewRandomAccount(t)

	require.NoError(t, rt.Execute(program, "create", caller, func(ix *runtime.Instruction) error {
		account, err := ix.CreateAccount(existing, 8)
		require.NoError(t, err)
		return account.SetData([]byte{1})
	}))

	expected := errors.New("instruction failed")
	err := rt.Execute(program, "mutate", caller, func(ix *runtime.Instruction) error {
		account, err := ix.OwnedAccount(existing)
		require.NoError(t, err)
		require.NoError(t, account.SetData([]byte{2}))

		if _, err := ix.CreateAccount(created, 8); err != nil {
			return err
		}

		ix.Emit(&testEvent{})
		return expected
	})
	assert.Equal(t, expected, err)

	account, ok := rt.Account(existing)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, account.Data())

	_, ok = rt.Account(created)
	assert.False(t, ok)

	assert.Equal(t, 0, log.Len())
}

func TestRuntime_CreateAccountReplayProtection(t *testing.T) {
	log := events.NewLog()
	rt := runtime.New(log)

	program := runtime.Program{ID: testutil.NewRandomAccount(t), Name: "test"}
	caller := testutil.NewRandomAccount(t)
	address := testutil.NewRandomAccount(t)

	require.NoError(t, rt.Execute(program, "create", caller, func(ix *runtime.Instruction) error {
		_, err := ix.CreateAccount(address, 8)
		return err
	}))

	err := rt.Execute(program, "create", caller, func(ix *runtime.Instruction) error {
		_, err := ix.CreateAccount(address, 8)
		return err
	})
	assert.Equal(t, runtime.ErrAccountExists, err)
}

func TestRuntime_OwnedAccount(t *testing.T) {
	log := events.NewLog()
	rt := runtime.New(log)

	owner := runtime.Program{ID: testutil.NewRandomAccount(t), Name: "owner"}
	other := runtime.Program{ID: testutil.NewRandomAccount(t), Name: "other"}
	caller := testutil.NewRandomAccount(t)
	address := testutil.NewRandomAccount(t)

	require.NoError(t, rt.Execute(owner, "create", caller, func(ix *runtime.Instruction) error {
		_, err := ix.CreateAccount(address, 8)
		return err
	}))

	err := rt.Execute(other, "mutate", caller, func(ix *runtime.Instruction) error {
		_, err := ix.OwnedAccount(address)
		return err
	})
	assert.Equal(t, runtime.ErrInvalidAccountOwner, err)

	err = rt.Execute(owner, "mutate", caller, func(ix *runtime.Instruction) error {
		_, err := ix.OwnedAccount(testutil.NewRandomAccount(t))
		return err
	})
	assert.Equal(t, runtime.ErrAccountNotFound, err)
}

func TestRuntime_AccountSpaceEnforced(t *testing.T) {
	log := events.NewLog()
	rt := runtime.New(log)

	program := runtime.Program{ID: testutil.NewRandomAccount(t), Name: "test"}
	caller := testutil.NewRandomAccount(t)
	address := testutil.NewRandomAccount(t)

	err := rt.Execute(program, "create", caller, func(ix *runtime.Instruction) error {
		account, err := ix.CreateAccount(address, 2)
		require.NoError(t, err)
		return account.SetData([]byte{1, 2, 3})
	})
	assert.Equal(t, runtime.ErrAccountDataTooLarge, err)

	_, ok := rt.Account(address)
	assert.False(t, ok)
}
