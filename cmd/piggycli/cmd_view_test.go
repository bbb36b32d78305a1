package main

import (
	"bytes"
	"strings"
	"testing"

	piggybankd "github.com/iov-one/piggybank/cmd/piggybankd/app"
	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave/coin"
)

func TestCmdTransactionViewHappyPath(t *testing.T) {
	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankDepositMsg{
			PiggybankDepositMsg: piggybank.NewDepositMsg(sequenceID(2), coin.NewCoin(3, 0, "IOV"), 1900000000),
		},
	}
	var input bytes.Buffer
	if _, err := writeTx(&input, tx); err != nil {
		t.Fatalf("cannot marshal transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdTransactionView(&input, &output, nil); err != nil {
		t.Fatalf("cannot view a transaction: %s", err)
	}

	got := output.String()
	for _, want := range []string{
		`"Sum": {`,
		`"PiggybankDepositMsg": {`,
		`"schema": 1`,
		`"whole": 3`,
		`"ticker": "IOV"`,
		`"lock_timestamp": 1900000000`,
	} {
		if !strings.Contains(got, want) {
			t.Logf("got: %s", got)
			t.Fatalf("view result does not contain %s", want)
		}
	}
	if strings.Contains(got, "PiggybankWithdrawMsg") {
		t.Fatal("empty message fields must not be displayed")
	}
}

func TestCmdTransactionViewNoInput(t *testing.T) {
	var input, output bytes.Buffer
	if err := cmdTransactionView(&input, &output, nil); err == nil {
		t.Fatal("want an error for an empty input")
	}
}
