package piggybank

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
)

// RegisterQuery will register the vault bucket as "/vaults" and the derived
// vault balance as "/vaultbalances".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("vaults", qr)
	NewBalanceQuery(NewCashLedger(cash.NewController(cash.NewBucket()))).RegisterQuery(qr)
}

var _ weave.QueryHandler = (*BalanceQuery)(nil)

// BalanceQuery returns the amount held by a vault, as reported by the token
// ledger. Query data must be the vault ID.
type BalanceQuery struct {
	ctrl *Controller
}

func NewBalanceQuery(ledger TokenLedger) *BalanceQuery {
	return &BalanceQuery{ctrl: NewController(nil, NewBucket(), ledger)}
}

func (q *BalanceQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	if mod != weave.KeyQueryMod {
		return nil, errors.Wrap(errors.ErrHuman, "not implemented: "+mod)
	}
	if err := validateVaultID(data); err != nil {
		return nil, errors.Wrap(err, "vault ID")
	}
	balance, err := q.ctrl.GetCurrentBalance(db, data)
	if err != nil {
		return nil, err
	}
	raw, err := balance.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal balance")
	}
	return []weave.Model{weave.Pair(data, raw)}, nil
}

func (q *BalanceQuery) RegisterQuery(qr weave.QueryRouter) {
	qr.Register("/vaultbalances", q)
}
