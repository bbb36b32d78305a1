package piggybank

import (
	"sync"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

// Controller implements vault operations on top of the vault bucket and the
// token ledger. Mutating operations are serialized, so that a controller can
// be shared by concurrent callers.
type Controller struct {
	mu     sync.Mutex
	auth   x.Authenticator
	bucket orm.ModelBucket
	ledger TokenLedger
}

// NewController returns a vault controller. The caller identity is resolved
// using given authenticator.
func NewController(auth x.Authenticator, bucket orm.ModelBucket, ledger TokenLedger) *Controller {
	return &Controller{
		auth:   auth,
		bucket: bucket,
		ledger: ledger,
	}
}

// Create stores a new unlocked vault that belongs to given owner. The owner
// must sign the transaction.
func (c *Controller) Create(ctx weave.Context, db weave.KVStore, owner weave.Address) ([]byte, *Vault, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	key, err := vaultSeq.NextVal(db)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot acquire key")
	}
	vault := NewVault(key, owner)
	if _, err := c.bucket.Put(db, key, vault); err != nil {
		return nil, nil, errors.Wrap(err, "cannot store vault")
	}
	return key, vault, nil
}

// Vault returns the vault stored under given ID.
func (c *Controller) Vault(db weave.ReadOnlyKVStore, vaultID []byte) (*Vault, error) {
	var vault Vault
	if err := c.bucket.One(db, vaultID, &vault); err != nil {
		return nil, errors.Wrap(err, "cannot load vault")
	}
	return &vault, nil
}

// GetOwner returns the owner of the vault.
func (c *Controller) GetOwner(db weave.ReadOnlyKVStore, vaultID []byte) (weave.Address, error) {
	vault, err := c.Vault(db, vaultID)
	if err != nil {
		return nil, err
	}
	return vault.Owner, nil
}

// GetLockTimestamp returns the time when the vault lock expires. Zero is
// returned for an unlocked vault.
func (c *Controller) GetLockTimestamp(db weave.ReadOnlyKVStore, vaultID []byte) (weave.UnixTime, error) {
	vault, err := c.Vault(db, vaultID)
	if err != nil {
		return 0, err
	}
	return vault.LockTimestamp, nil
}

// GetCurrentBalance returns the amount held by the vault, as reported by
// the token ledger.
func (c *Controller) GetCurrentBalance(db weave.ReadOnlyKVStore, vaultID []byte) (coin.Coin, error) {
	vault, err := c.Vault(db, vaultID)
	if err != nil {
		return coin.Coin{}, err
	}
	return c.balance(db, vault)
}

// balance returns the amount held by the vault in the currency it was
// locked with. An unlocked vault is reported in the configured currency.
func (c *Controller) balance(db weave.ReadOnlyKVStore, vault *Vault) (coin.Coin, error) {
	ticker := vault.Ticker
	if ticker == "" {
		conf, err := loadConf(db)
		if err != nil {
			return coin.Coin{}, err
		}
		ticker = conf.Ticker
	}
	return c.ledger.BalanceOf(db, vault.Address, ticker)
}

// GetBlockTimestamp returns the current time.
func (c *Controller) GetBlockTimestamp(ctx weave.Context) (weave.UnixTime, error) {
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return 0, err
	}
	return weave.AsUnixTime(now), nil
}

// CanDeposit returns the vault if a deposit of given amount locked until
// given time can be made. No state is modified.
func (c *Controller) CanDeposit(ctx weave.Context, db weave.ReadOnlyKVStore, vaultID []byte, amount *coin.Coin, until weave.UnixTime) (*Vault, error) {
	vault, err := c.Vault(db, vaultID)
	if err != nil {
		return nil, err
	}
	if !c.auth.HasAddress(ctx, vault.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can deposit")
	}
	if amount == nil || !amount.IsPositive() {
		return nil, errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	if err := amount.Validate(); err != nil {
		return nil, errors.Wrap(err, "amount")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if amount.Ticker != conf.Ticker {
		return nil, errors.Wrapf(errors.ErrCurrency, "vault accepts only %s", conf.Ticker)
	}
	if vault.Locked {
		return nil, errors.Wrapf(ErrAlreadyLocked, "locked until %s", vault.LockTimestamp)
	}
	now, err := c.GetBlockTimestamp(ctx)
	if err != nil {
		return nil, err
	}
	if until <= now {
		return nil, errors.Wrap(ErrInvalidUnlockTime, "unlock time must be in the future")
	}
	if err := until.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidUnlockTime, err.Error())
	}
	return vault, nil
}

// Deposit locks the vault until given time and moves given amount from the
// owner into the vault. The vault is locked before the funds are
// transferred. On failure the enclosing transaction must be discarded.
func (c *Controller) Deposit(ctx weave.Context, db weave.KVStore, vaultID []byte, amount *coin.Coin, until weave.UnixTime) (*Vault, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vault, err := c.CanDeposit(ctx, db, vaultID, amount, until)
	if err != nil {
		return nil, err
	}
	vault.lock(until, amount.Ticker)
	if _, err := c.bucket.Put(db, vaultID, vault); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	if err := c.ledger.TransferFrom(db, vault.Owner, vault.Address, *amount); err != nil {
		return nil, err
	}
	return vault, nil
}

// CanWithdraw returns the vault and the amount that it holds if the vault
// can be withdrawn. No state is modified.
func (c *Controller) CanWithdraw(ctx weave.Context, db weave.ReadOnlyKVStore, vaultID []byte) (*Vault, coin.Coin, error) {
	vault, err := c.Vault(db, vaultID)
	if err != nil {
		return nil, coin.Coin{}, err
	}
	if !c.auth.HasAddress(ctx, vault.Owner) {
		return nil, coin.Coin{}, errors.Wrap(errors.ErrUnauthorized, "only the owner can withdraw")
	}
	if !vault.Locked {
		return nil, coin.Coin{}, errors.Wrap(ErrNotLocked, "no deposit to withdraw")
	}
	now, err := c.GetBlockTimestamp(ctx)
	if err != nil {
		return nil, coin.Coin{}, err
	}
	if now < vault.LockTimestamp {
		return nil, coin.Coin{}, errors.Wrapf(ErrLockNotExpired, "locked until %s", vault.LockTimestamp)
	}
	balance, err := c.balance(db, vault)
	if err != nil {
		return nil, coin.Coin{}, err
	}
	if !balance.IsPositive() {
		return nil, coin.Coin{}, errors.Wrap(ErrNothingToWithdraw, "vault is empty")
	}
	return vault, balance, nil
}

// Withdraw moves everything that the vault holds to the owner and unlocks
// the vault. Withdrawn amount is returned.
func (c *Controller) Withdraw(ctx weave.Context, db weave.KVStore, vaultID []byte) (*Vault, coin.Coin, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vault, balance, err := c.CanWithdraw(ctx, db, vaultID)
	if err != nil {
		return nil, coin.Coin{}, err
	}
	if err := c.ledger.Transfer(db, vault.Address, vault.Owner, balance); err != nil {
		return nil, coin.Coin{}, err
	}
	vault.unlock()
	if _, err := c.bucket.Put(db, vaultID, vault); err != nil {
		return nil, coin.Coin{}, errors.Wrap(err, "cannot store vault")
	}
	return vault, balance, nil
}
