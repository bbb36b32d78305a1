/*
Package piggybank implements a time-locked, single owner vault.

The owner deposits tokens together with a future unlock time. While the vault
is locked no further deposit is accepted. Once the unlock time has passed, the
owner can withdraw everything the vault holds and the cycle can start again.

The vault never tracks the deposited amount. Its balance is always the balance
of the vault address as reported by the token ledger, so anything that was
sent to the vault address is withdrawn as well.
*/
package piggybank
