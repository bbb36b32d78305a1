package main

import (
	"flag"
	"fmt"
	"io"

	piggybankd "github.com/iov-one/piggybank/cmd/piggybankd/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/x/cash"
)

func cmdSendTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for transferring funds from the source account to the
destination account.
		`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = flAddress(fl, "src", "", "A source account address that the funds are sent from.")
		dstFl    = flAddress(fl, "dst", "", "A destination account address that the funds are sent to.")
		amountFl = flCoin(fl, "amount", "1 IOV", "An amount that is to be transferred between the source and the destination accounts.")
		memoFl   = fl.String("memo", "", "A short message attached to the transfer operation.")
	)
	fl.Parse(args)

	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_CashSendMsg{
			CashSendMsg: &cash.SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      *srcFl,
				Destination: *dstFl,
				Amount:      amountFl,
				Memo:        *memoFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdWithFee(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Modify given transaction and attach a fee as specified to it. If a transaction
already has a fee set, overwrite it with a new value.
		`)
		fl.PrintDefaults()
	}
	var (
		payerFl  = flAddress(fl, "payer", "", "Optional address of a payer. If not provided the main signer will be used.")
		amountFl = flCoin(fl, "amount", "", "Fee value that should be attached to the transaction. If not provided, default minimal fee is used.")
		tmAddrFl = fl.String("tm", defaultTmAddr, tmAddrUsage)
	)
	fl.Parse(args)

	if len(*payerFl) != 0 {
		if err := payerFl.Validate(); err != nil {
			flagDie("invalid payer address: %s", err)
		}
	}
	if !amountFl.IsNonNegative() {
		flagDie("fee value cannot be negative.")
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	if coin.IsEmpty(amountFl) {
		conf, err := cashConf(*tmAddrFl)
		if err != nil {
			return fmt.Errorf("cannot fetch minimal fee configuration: %s", err)
		}
		amountFl = &conf.MinimalFee
	}
	tx.Fees = &cash.FeeInfo{
		Payer: *payerFl,
		Fees:  amountFl,
	}

	_, err = writeTx(output, tx)
	return err
}

func cashConf(nodeURL string) (*cash.Configuration, error) {
	store := tendermintStore(nodeURL)
	var conf cash.Configuration
	if err := gconf.Load(store, "cash", &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
