package piggybank

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/x/cash"
	"github.com/pkg/errors"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	Minter cash.CoinMinter
}

// FromGenesis loads the configuration and the initial vaults. A vault
// declared with a lock timestamp is created locked, and its amount is minted
// on the vault address. Amounts must be of the configured currency.
func (i *Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var vaults []struct {
		Owner         weave.Address  `json:"owner"`
		LockTimestamp weave.UnixTime `json:"lock_timestamp"`
		Amount        *coin.Coin     `json:"amount"`
	}
	if err := opts.ReadOptions("piggybank", &vaults); err != nil {
		return err
	}
	if err := gconf.InitConfig(kv, opts, packageName, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	conf, err := loadConf(kv)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	bucket := NewBucket()
	for n, v := range vaults {
		key, err := vaultSeq.NextVal(kv)
		if err != nil {
			return errors.Wrap(err, "cannot acquire key")
		}
		vault := NewVault(key, v.Owner)
		if !coin.IsEmpty(v.Amount) && v.Amount.Ticker != conf.Ticker {
			return errors.Errorf("vault %d: amount must be of %s currency", n, conf.Ticker)
		}
		if v.LockTimestamp != 0 {
			vault.lock(v.LockTimestamp, conf.Ticker)
		}
		if _, err := bucket.Put(kv, key, vault); err != nil {
			return errors.Wrapf(err, "cannot save vault %d", n)
		}
		if coin.IsEmpty(v.Amount) {
			continue
		}
		if !vault.Locked {
			return errors.Errorf("vault %d: funds require a lock timestamp", n)
		}
		if err := i.Minter.CoinMint(kv, vault.Address, *v.Amount); err != nil {
			return errors.Wrap(err, "failed to issue coins")
		}
	}
	return nil
}
