package piggybank

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateMsg{}, migration.NoModification)
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

// NewCreateMsg is a helper to quickly build a create vault message.
func NewCreateMsg(owner weave.Address) *CreateMsg {
	return &CreateMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
	}
}

var _ weave.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return "piggybank/create"
}

func (m *CreateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

// NewDepositMsg is a helper to quickly build a deposit message.
func NewDepositMsg(vaultID []byte, amount coin.Coin, until weave.UnixTime) *DepositMsg {
	return &DepositMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		VaultID:       vaultID,
		Amount:        &amount,
		LockTimestamp: until,
	}
}

var _ weave.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "piggybank/deposit"
}

// Validate checks only the message structure. Amount and lock time are
// checked by the vault, after the sender was authorized.
func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "VaultID", validateVaultID(m.VaultID))
	return errs
}

// NewWithdrawMsg is a helper to quickly build a withdraw message.
func NewWithdrawMsg(vaultID []byte) *WithdrawMsg {
	return &WithdrawMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultID:  vaultID,
	}
}

var _ weave.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "piggybank/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "VaultID", validateVaultID(m.VaultID))
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "piggybank/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	c := m.Patch
	if c == nil {
		return errors.Append(errs, errors.Field("Patch", errors.ErrEmpty, "required"))
	}
	// Only set fields are validated. Zero values are not patched.
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	if c.Ticker != "" && !coin.IsCC(c.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrCurrency, "invalid ticker"))
	}
	return errs
}

// validateVaultID returns an error if this is not a valid vault ID.
func validateVaultID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "required")
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "must be 8 bytes long, got %d", len(id))
	}
	return nil
}
