package piggybank

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerAccessors(t *testing.T) {
	db := newTestDB(t)
	setBalance(t, db, alice.Address(), iov(1000))
	c := NewController(auth, NewBucket(), ledger)

	ctx := weave.WithBlockTime(context.Background(), blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	key, _, err := c.Create(ctx, db, alice.Address())
	require.NoError(t, err)

	owner, err := c.GetOwner(db, key)
	require.NoError(t, err)
	assert.Equal(t, alice.Address(), owner)

	ts, err := c.GetLockTimestamp(db, key)
	require.NoError(t, err)
	assert.Equal(t, weave.UnixTime(0), ts)

	now, err := c.GetBlockTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, weave.AsUnixTime(blockNow), now)

	unlockAt := weave.AsUnixTime(blockNow.Add(time.Hour))
	amount := iov(33)
	_, err = c.Deposit(ctx, db, key, &amount, unlockAt)
	require.NoError(t, err)

	ts, err = c.GetLockTimestamp(db, key)
	require.NoError(t, err)
	assert.Equal(t, unlockAt, ts)

	balance, err := c.GetCurrentBalance(db, key)
	require.NoError(t, err)
	assert.True(t, balance.Equals(amount))

	_, err = c.GetOwner(db, weavetest.SequenceID(99))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestControllerRequiresBlockTime(t *testing.T) {
	db := newTestDB(t)
	setBalance(t, db, alice.Address(), iov(1000))
	c := NewController(auth, NewBucket(), ledger)
	ctx := authenticator.SetConditions(context.Background(), alice)

	key, _, err := c.Create(ctx, db, alice.Address())
	require.NoError(t, err)

	amount := iov(1)
	_, err = c.CanDeposit(ctx, db, key, &amount, weave.AsUnixTime(blockNow.Add(time.Hour)))
	assert.Error(t, err)
	_, err = c.GetBlockTimestamp(ctx)
	assert.Error(t, err)
}

func TestControllerConcurrentCreate(t *testing.T) {
	db := newTestDB(t)
	c := NewController(auth, NewBucket(), ledger)
	ctx := authenticator.SetConditions(context.Background(), alice)

	const workers = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		keys = make(map[string]struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, _, err := c.Create(ctx, db, alice.Address())
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			keys[string(key)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, keys, workers, "each vault must get a unique ID")
}

func TestControllerDepositChecksCurrencyOfAmount(t *testing.T) {
	db := newTestDB(t)
	c := NewController(auth, NewBucket(), ledger)
	ctx := weave.WithBlockTime(context.Background(), blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	key, _, err := c.Create(ctx, db, alice.Address())
	require.NoError(t, err)

	invalid := coin.Coin{Whole: 1, Ticker: "I"}
	_, err = c.CanDeposit(ctx, db, key, &invalid, weave.AsUnixTime(blockNow.Add(time.Hour)))
	assert.True(t, errors.ErrCurrency.Is(err), "%+v", err)
}
