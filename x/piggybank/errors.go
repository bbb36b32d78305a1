package piggybank

import (
	"github.com/iov-one/weave/errors"
)

// Vault state errors. Access control and amount failures are reported using
// errors.ErrUnauthorized and errors.ErrAmount.
var (
	ErrAlreadyLocked     = errors.Register(1010, "vault already locked")
	ErrInvalidUnlockTime = errors.Register(1011, "invalid unlock time")
	ErrNotLocked         = errors.Register(1012, "vault not locked")
	ErrLockNotExpired    = errors.Register(1013, "lock not expired")
	ErrNothingToWithdraw = errors.Register(1014, "nothing to withdraw")
)
