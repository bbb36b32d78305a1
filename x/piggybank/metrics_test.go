package piggybank

import (
	"context"
	"strconv"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOperationsCountedOnHandlerResult(t *testing.T) {
	db := newTestDB(t)
	createVault(t, db, alice)

	ctx := weave.WithBlockTime(context.Background(), blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	code, _ := errors.ABCIInfo(ErrNotLocked, false)
	rejected := operationsTotal.WithLabelValues("withdraw", strconv.FormatUint(uint64(code), 10))
	before := testutil.ToFloat64(rejected)
	_, err := handler.Deliver(ctx, db, &weavetest.Tx{Msg: NewWithdrawMsg(vaultID)})
	if !ErrNotLocked.Is(err) {
		t.Fatalf("want %q error, got %+v", ErrNotLocked, err)
	}
	assert.Equal(t, before+1, testutil.ToFloat64(rejected))

	// A successful handler result is counted even if the caller discards
	// the changes afterwards.
	created := operationsTotal.WithLabelValues("create", "0")
	before = testutil.ToFloat64(created)
	cache := db.CacheWrap()
	_, err = handler.Deliver(ctx, cache, &weavetest.Tx{Msg: NewCreateMsg(alice.Address())})
	assert.Nil(t, err)
	cache.Discard()
	assert.Equal(t, before+1, testutil.ToFloat64(created))

	var vault Vault
	if err := NewBucket().One(db, weavetest.SequenceID(2), &vault); !errors.ErrNotFound.Is(err) {
		t.Fatalf("discarded vault must not be stored, got %+v", err)
	}
}
