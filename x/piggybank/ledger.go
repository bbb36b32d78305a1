package piggybank

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// TokenLedger is the fungible token ledger that holds the vault funds. A
// vault never keeps its own record of the held amount. It always asks the
// ledger instead.
type TokenLedger interface {
	// TransferFrom pulls given amount from the owner account into the vault
	// custody. The owner must have authorized the transfer by signing the
	// transaction.
	TransferFrom(db weave.KVStore, owner, vault weave.Address, amount coin.Coin) error
	// Transfer pushes given amount out of the vault custody.
	Transfer(db weave.KVStore, vault, dest weave.Address, amount coin.Coin) error
	// BalanceOf returns the amount of given currency held by an address.
	// An address that never received any funds holds a zero amount.
	BalanceOf(db weave.ReadOnlyKVStore, addr weave.Address, ticker string) (coin.Coin, error)
}

// CashLedger is a TokenLedger that is using x/cash wallets.
type CashLedger struct {
	mover   cash.CoinMover
	wallets cash.WalletBucket
}

var _ TokenLedger = CashLedger{}

// NewCashLedger returns a ledger that moves coins using given controller
// and reads balances directly from the cash wallet bucket. The same
// controller instance must be used by the whole application.
func NewCashLedger(mover cash.CoinMover) CashLedger {
	return CashLedger{
		mover:   mover,
		wallets: cash.NewBucket(),
	}
}

func (l CashLedger) TransferFrom(db weave.KVStore, owner, vault weave.Address, amount coin.Coin) error {
	if err := l.mover.MoveCoins(db, owner, vault, amount); err != nil {
		return errors.Wrapf(err, "cannot transfer %s to the vault", amount)
	}
	return nil
}

func (l CashLedger) Transfer(db weave.KVStore, vault, dest weave.Address, amount coin.Coin) error {
	if err := l.mover.MoveCoins(db, vault, dest, amount); err != nil {
		return errors.Wrapf(err, "cannot transfer %s from the vault", amount)
	}
	return nil
}

func (l CashLedger) BalanceOf(db weave.ReadOnlyKVStore, addr weave.Address, ticker string) (coin.Coin, error) {
	obj, err := l.wallets.Get(db, addr)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot get wallet")
	}
	for _, c := range cash.AsCoins(obj) {
		if c.Ticker == ticker {
			return *c, nil
		}
	}
	return coin.NewCoin(0, 0, ticker), nil
}
