package main

import (
	"bytes"
	"testing"

	piggybankd "github.com/iov-one/piggybank/cmd/piggybankd/app"
	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/sigs"
)

func TestCmdSignTransactionOffline(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	keyPath := mustCreateFile(t, bytes.NewReader(key.GetEd25519()))

	tx := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankCreateMsg{
			PiggybankCreateMsg: piggybank.NewCreateMsg(key.PublicKey().Address()),
		},
	}
	var input bytes.Buffer
	if _, err := writeTx(&input, tx); err != nil {
		t.Fatalf("cannot marshal transaction: %s", err)
	}

	var output bytes.Buffer
	args := []string{
		"-key", keyPath,
		"-chain", "test-chain",
		"-nonce", "4",
	}
	if err := cmdSignTransaction(&input, &output, args); err != nil {
		t.Fatalf("transaction signing failed: %s", err)
	}

	signed, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot read created transaction: %s", err)
	}
	if n := len(signed.Signatures); n != 1 {
		t.Fatalf("want one signature, got %d", n)
	}
	sig := signed.Signatures[0]
	assert.Equal(t, int64(4), sig.Sequence)

	signBytes, err := sigs.BuildSignBytesTx(signed, "test-chain", 4)
	assert.Nil(t, err)
	if !sig.Pubkey.Verify(signBytes, sig.Signature) {
		t.Fatal("invalid signature")
	}
	assert.Equal(t, key.PublicKey().Address(), sig.Pubkey.Address())
}

func TestCmdSignTransactionInvalidKey(t *testing.T) {
	keyPath := mustCreateFile(t, bytes.NewReader([]byte("too short")))
	var input, output bytes.Buffer
	err := cmdSignTransaction(&input, &output, []string{"-key", keyPath, "-chain", "c", "-nonce", "0"})
	if err == nil {
		t.Fatal("want an error")
	}
}
