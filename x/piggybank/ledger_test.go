package piggybank

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashLedger(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	vault := Condition(weavetest.SequenceID(1)).Address()

	db := store.MemStore()
	migration.MustInitPkg(db, "cash")
	setBalance(t, db, owner, iov(10))

	l := NewCashLedger(ctrl)

	balance, err := l.BalanceOf(db, vault, "IOV")
	require.NoError(t, err)
	assert.True(t, balance.Equals(iov(0)), "unknown address holds nothing")

	require.NoError(t, l.TransferFrom(db, owner, vault, iov(4)))
	balance, err = l.BalanceOf(db, vault, "IOV")
	require.NoError(t, err)
	assert.True(t, balance.Equals(iov(4)))

	balance, err = l.BalanceOf(db, vault, "ETH")
	require.NoError(t, err)
	assert.True(t, balance.Equals(coin.NewCoin(0, 0, "ETH")), "other currencies are reported as zero")

	err = l.TransferFrom(db, owner, vault, iov(7))
	assert.True(t, errors.ErrAmount.Is(err), "cannot transfer more than owned: %+v", err)

	require.NoError(t, l.Transfer(db, vault, owner, iov(4)))
	balance, err = l.BalanceOf(db, owner, "IOV")
	require.NoError(t, err)
	assert.True(t, balance.Equals(iov(10)))

	err = l.Transfer(db, weavetest.NewCondition().Address(), owner, iov(1))
	assert.True(t, errors.ErrEmpty.Is(err), "missing wallet: %+v", err)
}
