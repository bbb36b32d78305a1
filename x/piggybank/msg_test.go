package piggybank_test

import (
	"testing"

	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCreateMsg(t *testing.T) {
	specs := map[string]struct {
		Mutator func(msg *piggybank.CreateMsg)
		Exp     *errors.Error
	}{
		"Happy path": {},
		"Invalid metadata": {
			Mutator: func(msg *piggybank.CreateMsg) {
				msg.Metadata.Schema = 0
			},
			Exp: errors.ErrMetadata,
		},
		"Missing metadata": {
			Mutator: func(msg *piggybank.CreateMsg) {
				msg.Metadata = nil
			},
			Exp: errors.ErrMetadata,
		},
		"Missing owner": {
			Mutator: func(msg *piggybank.CreateMsg) {
				msg.Owner = nil
			},
			Exp: errors.ErrEmpty,
		},
		"Invalid owner": {
			Mutator: func(msg *piggybank.CreateMsg) {
				msg.Owner = []byte{1, 2, 3}
			},
			Exp: errors.ErrInput,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			msg := piggybank.NewCreateMsg(weavetest.NewCondition().Address())
			if spec.Mutator != nil {
				spec.Mutator(msg)
			}
			if err := msg.Validate(); !spec.Exp.Is(err) {
				t.Fatalf("want %q error, got %+v", spec.Exp, err)
			}
		})
	}
}

func TestDepositMsg(t *testing.T) {
	specs := map[string]struct {
		Mutator func(msg *piggybank.DepositMsg)
		Exp     *errors.Error
	}{
		"Happy path": {},
		"Invalid metadata": {
			Mutator: func(msg *piggybank.DepositMsg) {
				msg.Metadata.Schema = 0
			},
			Exp: errors.ErrMetadata,
		},
		"Missing vault ID": {
			Mutator: func(msg *piggybank.DepositMsg) {
				msg.VaultID = nil
			},
			Exp: errors.ErrEmpty,
		},
		"Invalid vault ID": {
			Mutator: func(msg *piggybank.DepositMsg) {
				msg.VaultID = []byte("too long to be a sequence")
			},
			Exp: errors.ErrInput,
		},
		// Amount and the unlock time are validated by the vault, once
		// the sender is known to be allowed to deposit.
		"Zero amount is structurally valid": {
			Mutator: func(msg *piggybank.DepositMsg) {
				msg.Amount = &coin.Coin{Ticker: "IOV"}
			},
		},
		"Missing unlock time is structurally valid": {
			Mutator: func(msg *piggybank.DepositMsg) {
				msg.LockTimestamp = 0
			},
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			msg := piggybank.NewDepositMsg(weavetest.SequenceID(1), coin.NewCoin(1, 0, "IOV"), 1563000000)
			if spec.Mutator != nil {
				spec.Mutator(msg)
			}
			if err := msg.Validate(); !spec.Exp.Is(err) {
				t.Fatalf("want %q error, got %+v", spec.Exp, err)
			}
		})
	}
}

func TestWithdrawMsg(t *testing.T) {
	specs := map[string]struct {
		Msg *piggybank.WithdrawMsg
		Exp *errors.Error
	}{
		"Happy path": {
			Msg: piggybank.NewWithdrawMsg(weavetest.SequenceID(4)),
		},
		"Missing metadata": {
			Msg: &piggybank.WithdrawMsg{VaultID: weavetest.SequenceID(4)},
			Exp: errors.ErrMetadata,
		},
		"Missing vault ID": {
			Msg: piggybank.NewWithdrawMsg(nil),
			Exp: errors.ErrEmpty,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			if err := spec.Msg.Validate(); !spec.Exp.Is(err) {
				t.Fatalf("want %q error, got %+v", spec.Exp, err)
			}
		})
	}
}

func TestUpdateConfigurationMsg(t *testing.T) {
	specs := map[string]struct {
		Msg *piggybank.UpdateConfigurationMsg
		Exp *errors.Error
	}{
		"Happy path": {
			Msg: &piggybank.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch:    &piggybank.Configuration{Ticker: "ETH"},
			},
		},
		"Missing patch": {
			Msg: &piggybank.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Exp: errors.ErrEmpty,
		},
		"Invalid ticker": {
			Msg: &piggybank.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch:    &piggybank.Configuration{Ticker: "iov"},
			},
			Exp: errors.ErrCurrency,
		},
		"Owner only": {
			Msg: &piggybank.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch:    &piggybank.Configuration{Owner: weavetest.NewCondition().Address()},
			},
		},
		"Invalid owner": {
			Msg: &piggybank.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch:    &piggybank.Configuration{Owner: weave.Address{0x01, 0x02}, Ticker: "ETH"},
			},
			Exp: errors.ErrInput,
		},
		"Missing metadata": {
			Msg: &piggybank.UpdateConfigurationMsg{
				Patch: &piggybank.Configuration{Ticker: "ETH"},
			},
			Exp: errors.ErrMetadata,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			if err := spec.Msg.Validate(); !spec.Exp.Is(err) {
				t.Fatalf("want %q error, got %+v", spec.Exp, err)
			}
		})
	}
}

func TestDepositMsgSerialization(t *testing.T) {
	msg := piggybank.NewDepositMsg(weavetest.SequenceID(9), coin.NewCoin(12, 340000000, "IOV"), 1563000000)
	raw, err := msg.Marshal()
	assert.Nil(t, err)

	var got piggybank.DepositMsg
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, msg, &got)
}
