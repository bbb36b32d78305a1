package piggybank_test

import (
	"testing"

	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestVaultValidation(t *testing.T) {
	owner := weavetest.NewCondition()

	specs := map[string]struct {
		Mutator func(v *piggybank.Vault)
		Exp     *errors.Error
	}{
		"Unlocked vault": {},
		"Locked vault": {
			Mutator: func(v *piggybank.Vault) {
				v.Locked = true
				v.LockTimestamp = 1500000000
				v.Ticker = "IOV"
			},
		},
		"Invalid metadata": {
			Mutator: func(v *piggybank.Vault) {
				v.Metadata.Schema = 0
			},
			Exp: errors.ErrMetadata,
		},
		"Owner is required": {
			Mutator: func(v *piggybank.Vault) {
				v.Owner = nil
			},
			Exp: errors.ErrEmpty,
		},
		"Address is required": {
			Mutator: func(v *piggybank.Vault) {
				v.Address = nil
			},
			Exp: errors.ErrEmpty,
		},
		"Locked without a timestamp": {
			Mutator: func(v *piggybank.Vault) {
				v.Locked = true
			},
			Exp: errors.ErrState,
		},
		"Locked without a ticker": {
			Mutator: func(v *piggybank.Vault) {
				v.Locked = true
				v.LockTimestamp = 1500000000
			},
			Exp: errors.ErrCurrency,
		},
		"Locked with an invalid ticker": {
			Mutator: func(v *piggybank.Vault) {
				v.Locked = true
				v.LockTimestamp = 1500000000
				v.Ticker = "iov"
			},
			Exp: errors.ErrCurrency,
		},
		"Ticker without a lock": {
			Mutator: func(v *piggybank.Vault) {
				v.Ticker = "IOV"
			},
			Exp: errors.ErrState,
		},
		"Timestamp without a lock": {
			Mutator: func(v *piggybank.Vault) {
				v.LockTimestamp = 1500000000
			},
			Exp: errors.ErrState,
		},
		"Timestamp out of range": {
			Mutator: func(v *piggybank.Vault) {
				v.Locked = true
				v.LockTimestamp = weave.AsUnixTime(weave.UnixTime(0).Time().AddDate(10000, 0, 0))
				v.Ticker = "IOV"
			},
			Exp: errors.ErrState,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			vault := piggybank.NewVault(weavetest.SequenceID(1), owner.Address())
			if spec.Mutator != nil {
				spec.Mutator(vault)
			}
			if err := vault.Validate(); !spec.Exp.Is(err) {
				t.Fatalf("want %q error, got %+v", spec.Exp, err)
			}
		})
	}
}

func TestNewVault(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	first := piggybank.NewVault(weavetest.SequenceID(1), owner)
	second := piggybank.NewVault(weavetest.SequenceID(2), owner)

	assert.Nil(t, first.Validate())
	assert.Equal(t, false, first.Locked)
	assert.Equal(t, weave.UnixTime(0), first.LockTimestamp)
	assert.Equal(t, piggybank.Condition(weavetest.SequenceID(1)).Address(), first.Address)
	if first.Address.Equals(second.Address) {
		t.Fatal("each vault must hold funds on its own address")
	}
}

func TestVaultCopy(t *testing.T) {
	vault := piggybank.NewVault(weavetest.SequenceID(1), weavetest.NewCondition().Address())
	vault.Locked = true
	vault.LockTimestamp = 1563000000
	vault.Ticker = "IOV"
	cpy := vault.Copy().(*piggybank.Vault)
	assert.Equal(t, vault, cpy)

	cpy.Owner[0]++
	cpy.Metadata.Schema = 7
	if vault.Owner.Equals(cpy.Owner) || vault.Metadata.Schema == 7 {
		t.Fatal("copy shares memory with the original")
	}
}

func TestVaultSerialization(t *testing.T) {
	vault := piggybank.NewVault(weavetest.SequenceID(3), weavetest.NewCondition().Address())
	vault.Locked = true
	vault.LockTimestamp = 1563000000
	vault.Ticker = "IOV"

	raw, err := vault.Marshal()
	assert.Nil(t, err)

	var got piggybank.Vault
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, vault, &got)
}
