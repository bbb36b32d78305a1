package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCmdCreateVaultHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-owner", "b1ca7e78f74423ae01da3b51e676934d9105f282",
	}
	if err := cmdCreateVault(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new vault transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*piggybank.CreateMsg)

	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Owner))
	assert.Nil(t, msg.Validate())
}

func TestCmdCreateVaultRequiresOwner(t *testing.T) {
	cnt, cleanup := observeFlagDie(t)
	defer cleanup()

	var output bytes.Buffer
	_ = cmdCreateVault(nil, &output, nil)
	assert.Equal(t, 1, *cnt)
}

func TestCmdDepositHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-vault", "5",
		"-amount", "49 IOV",
		"-until", "2030-01-02 15:04",
	}
	if err := cmdDeposit(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new deposit transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*piggybank.DepositMsg)

	assert.Equal(t, sequenceID(5), msg.VaultID)
	assert.Equal(t, coin.NewCoinp(49, 0, "IOV"), msg.Amount)
	want := weave.AsUnixTime(time.Date(2030, time.January, 2, 15, 4, 0, 0, time.UTC))
	assert.Equal(t, want, msg.LockTimestamp)
}

func TestCmdDepositRelativeLock(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-vault", "1",
		"-amount", "1.5 IOV",
		"-for", "48h",
	}
	before := weave.AsUnixTime(time.Now().Add(48 * time.Hour))
	if err := cmdDeposit(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new deposit transaction: %s", err)
	}
	after := weave.AsUnixTime(time.Now().Add(48 * time.Hour))

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	msg := tx.GetPiggybankDepositMsg()
	if msg == nil {
		t.Fatal("deposit message expected")
	}
	if msg.LockTimestamp < before || msg.LockTimestamp > after {
		t.Fatalf("unexpected lock timestamp %d", msg.LockTimestamp)
	}
	assert.Equal(t, coin.NewCoinp(1, 500000000, "IOV"), msg.Amount)
}

func TestCmdDepositRequiresUnlockTime(t *testing.T) {
	cnt, cleanup := observeFlagDie(t)
	defer cleanup()

	var output bytes.Buffer
	_ = cmdDeposit(nil, &output, []string{"-vault", "1", "-amount", "1 IOV"})
	assert.Equal(t, 1, *cnt)
}

func TestCmdWithdrawHappyPath(t *testing.T) {
	var output bytes.Buffer
	if err := cmdWithdraw(nil, &output, []string{"-vault", "hex:0000000000000007"}); err != nil {
		t.Fatalf("cannot create a new withdraw transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*piggybank.WithdrawMsg)
	assert.Equal(t, sequenceID(7), msg.VaultID)
	assert.Nil(t, msg.Validate())
}

func TestCmdUpdateConfigurationHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-owner", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-ticker", "ETH",
	}
	if err := cmdUpdateConfiguration(nil, &output, args); err != nil {
		t.Fatalf("cannot create a configuration update transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	msg := tx.GetPiggybankUpdateConfigurationMsg()
	if msg == nil {
		t.Fatal("configuration update message expected")
	}
	assert.Nil(t, msg.Validate())
	assert.Equal(t, "ETH", msg.Patch.Ticker)
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Patch.Owner))
}

func TestCmdUpdateConfigurationInvalidTicker(t *testing.T) {
	var output bytes.Buffer
	err := cmdUpdateConfiguration(nil, &output, []string{"-ticker", "eth"})
	if err == nil {
		t.Fatal("want an invalid ticker error")
	}
}

func TestCmdUpdateConfigurationOwnerOnly(t *testing.T) {
	var output bytes.Buffer
	args := []string{"-owner", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"}
	if err := cmdUpdateConfiguration(nil, &output, args); err != nil {
		t.Fatalf("cannot create a configuration update transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	msg := tx.GetPiggybankUpdateConfigurationMsg()
	if msg == nil {
		t.Fatal("configuration update message expected")
	}
	assert.Nil(t, msg.Validate())
	assert.Equal(t, "", msg.Patch.Ticker)
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Patch.Owner))
}

func TestCmdUpdateConfigurationRequiresChange(t *testing.T) {
	cnt, cleanup := observeFlagDie(t)
	defer cleanup()

	var output bytes.Buffer
	_ = cmdUpdateConfiguration(nil, &output, nil)
	assert.Equal(t, 1, *cnt)
}
