package piggybank

import (
	"strconv"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createVaultCost int64 = 100
	depositCost     int64 = 0
	withdrawCost    int64 = 0
)

// Tag keys used to notify about vault operations.
const (
	TagDepositOwner   = "piggybank.deposit.owner"
	TagDepositAmount  = "piggybank.deposit.amount"
	TagDepositUnlock  = "piggybank.deposit.unlock"
	TagWithdrawOwner  = "piggybank.withdraw.owner"
	TagWithdrawAmount = "piggybank.withdraw.amount"
)

// RegisterRoutes will instantiate and register all handlers in this
// package. Funds are held by given ledger.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ledger TokenLedger) {
	r = migration.SchemaMigratingRegistry(packageName, r)
	ctrl := NewController(auth, NewBucket(), ledger)

	r.Handle(&CreateMsg{}, CreateVaultHandler{ctrl: ctrl})
	r.Handle(&DepositMsg{}, DepositHandler{ctrl: ctrl})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// CreateVaultHandler creates new, unlocked vaults.
type CreateVaultHandler struct {
	ctrl *Controller
}

var _ weave.Handler = CreateVaultHandler{}

func (h CreateVaultHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.ctrl.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &weave.CheckResult{GasAllocated: createVaultCost}, nil
}

// Deliver stores a new vault. ID of the created vault is returned.
func (h CreateVaultHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	key, vault, err := h.ctrl.Create(ctx, db, msg.Owner)
	observeOperation("create", err)
	if err != nil {
		return nil, err
	}
	weave.GetLogger(ctx).Info("vault created",
		"vault", vault.Address,
		"owner", vault.Owner)
	return &weave.DeliverResult{Data: key}, nil
}

// DepositHandler locks a vault and moves funds into it.
type DepositHandler struct {
	ctrl *Controller
}

var _ weave.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.CanDeposit(ctx, db, msg.VaultID, msg.Amount, msg.LockTimestamp); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: depositCost}, nil
}

func (h DepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	vault, err := h.ctrl.Deposit(ctx, db, msg.VaultID, msg.Amount, msg.LockTimestamp)
	observeOperation("deposit", err)
	if err != nil {
		return nil, err
	}
	observeTransfer("deposit", *msg.Amount)

	weave.GetLogger(ctx).Info("vault deposit",
		"vault", vault.Address,
		"owner", vault.Owner,
		"amount", msg.Amount.String(),
		"unlock", vault.LockTimestamp)
	res := &weave.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(TagDepositOwner), Value: []byte(vault.Owner.String())},
			{Key: []byte(TagDepositAmount), Value: []byte(msg.Amount.String())},
			{Key: []byte(TagDepositUnlock), Value: []byte(strconv.FormatInt(int64(vault.LockTimestamp), 10))},
		},
	}
	return res, nil
}

// WithdrawHandler moves all funds from an expired vault to its owner.
type WithdrawHandler struct {
	ctrl *Controller
}

var _ weave.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, _, err := h.ctrl.CanWithdraw(ctx, db, msg.VaultID); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	vault, amount, err := h.ctrl.Withdraw(ctx, db, msg.VaultID)
	observeOperation("withdraw", err)
	if err != nil {
		return nil, err
	}
	observeTransfer("withdraw", amount)

	weave.GetLogger(ctx).Info("vault withdraw",
		"vault", vault.Address,
		"owner", vault.Owner,
		"amount", amount.String())
	res := &weave.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(TagWithdrawOwner), Value: []byte(vault.Owner.String())},
			{Key: []byte(TagWithdrawAmount), Value: []byte(amount.String())},
		},
	}
	return res, nil
}
