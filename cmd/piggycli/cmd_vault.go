package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	piggybankd "github.com/iov-one/piggybank/cmd/piggybankd/app"
	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

func cmdCreateVault(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for opening a new vault. The vault is empty and unlocked
until its owner deposits funds. Submitting this transaction prints out the ID
of the created vault.
		`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", "Address of the vault owner. Only the owner can deposit and withdraw.")
	)
	fl.Parse(args)

	if len(*ownerFl) == 0 {
		flagDie("owner address is required")
	}

	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankCreateMsg{
			PiggybankCreateMsg: piggybank.NewCreateMsg(*ownerFl),
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for depositing funds into a vault and locking it until
given time. The owner of the vault must sign this transaction.

Unlock time can be given either as an absolute time using the -until flag or
as a duration relative to now using the -for flag.
		`)
		fl.PrintDefaults()
	}
	var (
		vaultFl  = flSeq(fl, "vault", "", "ID of the vault that the funds are deposited into.")
		amountFl = flCoin(fl, "amount", "", "Amount that is deposited. It must be of the currency configured for the vaults.")
		untilFl  = flTime(fl, "until", nil, fmt.Sprintf("Time until which the vault is locked. Use %q format (UTC) or a unix timestamp.", flagTimeFormat))
		forFl    = fl.Duration("for", 0, "Lock duration, relative to the current time. Ignored if -until is provided.")
	)
	fl.Parse(args)

	if len(*vaultFl) == 0 {
		flagDie("vault ID is required")
	}
	if coin.IsEmpty(amountFl) {
		flagDie("amount is required")
	}

	until := untilFl.UnixTime()
	if untilFl.Time().IsZero() {
		if *forFl <= 0 {
			flagDie("unlock time is required, use -until or -for")
		}
		until = weave.AsUnixTime(time.Now().Add(*forFl))
	}

	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankDepositMsg{
			PiggybankDepositMsg: piggybank.NewDepositMsg(*vaultFl, *amountFl, until),
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdWithdraw(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for withdrawing all funds held by a vault to its owner.
The vault lock must have expired. The owner of the vault must sign this
transaction.
		`)
		fl.PrintDefaults()
	}
	var (
		vaultFl = flSeq(fl, "vault", "", "ID of the vault that is withdrawn.")
	)
	fl.Parse(args)

	if len(*vaultFl) == 0 {
		flagDie("vault ID is required")
	}

	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankWithdrawMsg{
			PiggybankWithdrawMsg: piggybank.NewWithdrawMsg(*vaultFl),
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateConfiguration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for updating the vault configuration. Transaction must be
signed by the current configuration owner.

Only provided values are updated. Vaults that are already locked keep the
currency they were deposited with.
		`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "", "Address of the new configuration owner. Leave empty to not change.")
		tickerFl = fl.String("ticker", "", "Ticker of the currency that vaults accept. Leave empty to not change.")
	)
	fl.Parse(args)

	if len(*ownerFl) == 0 && *tickerFl == "" {
		flagDie("at least one of owner or ticker must be provided")
	}
	if *tickerFl != "" && !coin.IsCC(*tickerFl) {
		return fmt.Errorf("invalid ticker %q", *tickerFl)
	}

	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankUpdateConfigurationMsg{
			PiggybankUpdateConfigurationMsg: &piggybank.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &piggybank.Configuration{
					Owner:  *ownerFl,
					Ticker: *tickerFl,
				},
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}
