package piggybank

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Vault{}, migration.NoModification)
}

var _ orm.CloneableData = (*Vault)(nil)

// Validate ensures the vault is valid. Lock flag, lock timestamp and ticker
// must always agree with each other.
func (v *Vault) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", v.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", v.Owner.Validate())
	errs = errors.AppendField(errs, "Address", v.Address.Validate())
	errs = errors.AppendField(errs, "LockTimestamp", v.LockTimestamp.Validate())
	switch {
	case v.Locked && v.LockTimestamp <= 0:
		errs = errors.Append(errs, errors.Field("LockTimestamp", errors.ErrState, "locked vault requires a lock timestamp"))
	case !v.Locked && v.LockTimestamp != 0:
		errs = errors.Append(errs, errors.Field("LockTimestamp", errors.ErrState, "unlocked vault cannot have a lock timestamp"))
	}
	switch {
	case v.Locked && !coin.IsCC(v.Ticker):
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "locked vault requires a valid ticker"))
	case !v.Locked && v.Ticker != "":
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrState, "unlocked vault cannot have a ticker"))
	}
	return errs
}

// Copy returns a deep copy of the vault.
func (v *Vault) Copy() orm.CloneableData {
	var meta *weave.Metadata
	if v.Metadata != nil {
		meta = v.Metadata.Copy()
	}
	return &Vault{
		Metadata:      meta,
		Owner:         v.Owner.Clone(),
		LockTimestamp: v.LockTimestamp,
		Locked:        v.Locked,
		Address:       v.Address.Clone(),
		Ticker:        v.Ticker,
	}
}

// lock opens a new lock cycle that expires at given time. The vault holds
// funds of given currency until unlocked.
func (v *Vault) lock(until weave.UnixTime, ticker string) {
	v.LockTimestamp = until
	v.Locked = true
	v.Ticker = ticker
}

// unlock closes the current lock cycle.
func (v *Vault) unlock() {
	v.LockTimestamp = 0
	v.Locked = false
	v.Ticker = ""
}

// NewVault returns an unlocked vault owned by given address. The vault
// address is computed from the vault ID.
func NewVault(id []byte, owner weave.Address) *Vault {
	return &Vault{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Address:  Condition(id).Address(),
	}
}

// Condition calculates the address of a vault given the key.
func Condition(key []byte) weave.Condition {
	return weave.NewCondition("piggybank", "seq", key)
}

// NewBucket returns a bucket for storing vaults. Vaults are indexed by their
// owner.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vault", &Vault{},
		orm.WithIDSequence(vaultSeq),
		orm.WithIndex("owner", idxOwner, false),
	)
	return migration.NewModelBucket("piggybank", b)
}

var vaultSeq = orm.NewSequence("vault", "id")

func idxOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "cannot take index of %T", obj.Value())
	}
	return v.Owner, nil
}
