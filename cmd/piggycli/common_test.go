package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/ioutil"
	"testing"

	piggybankd "github.com/iov-one/piggybank/cmd/piggybankd/app"
	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave/weavetest/assert"
)

func fromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustCreateFile(t testing.TB, r io.Reader) string {
	t.Helper()

	fd, err := ioutil.TempFile("", "piggycli")
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	if _, err := io.Copy(fd, r); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
	return fd.Name()
}

func TestUnpackSequence(t *testing.T) {
	cases := map[string]struct {
		Raw     string
		WantErr bool
		Want    []byte
	}{
		"default encoding (decimal)": {
			Raw:  "123",
			Want: sequenceID(123),
		},
		"zero decimal value is not allowed": {
			Raw:     "0",
			WantErr: true,
		},
		"empty value is not allowed": {
			Raw:     "",
			WantErr: true,
		},
		"hex encoded value": {
			Raw:  "hex:" + hex.EncodeToString(sequenceID(1234567890)),
			Want: sequenceID(1234567890),
		},
		"too short, hex encoded value": {
			Raw:     "hex:3132330a",
			WantErr: true,
		},
		"base64 encoded value": {
			Raw:  "base64:" + base64.StdEncoding.EncodeToString(sequenceID(1234567890)),
			Want: sequenceID(1234567890),
		},
		"too short, base64 encoded value": {
			Raw:     "base64:" + base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
			WantErr: true,
		},
		"unknown encoding": {
			Raw:     "x:_P1U_!RU)RQU_AU)FAf",
			WantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			b, err := unpackSequence(tc.Raw)
			if tc.WantErr {
				if err == nil {
					t.Fatalf("want error, got %x", b)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !bytes.Equal(b, tc.Want) {
				t.Fatalf("unexpected result: %x", b)
			}
		})
	}
}

func TestFromSequence(t *testing.T) {
	n, err := fromSequence(sequenceID(987))
	assert.Nil(t, err)
	assert.Equal(t, uint64(987), n)

	if _, err := fromSequence([]byte{1, 2}); err == nil {
		t.Fatal("want error for an invalid sequence")
	}
}

func TestReadWriteTxStream(t *testing.T) {
	var buf bytes.Buffer
	first := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankWithdrawMsg{
			PiggybankWithdrawMsg: piggybank.NewWithdrawMsg(sequenceID(1)),
		},
	}
	second := &piggybankd.Tx{
		Sum: &piggybankd.Tx_PiggybankWithdrawMsg{
			PiggybankWithdrawMsg: piggybank.NewWithdrawMsg(sequenceID(2)),
		},
	}

	n1, err := writeTx(&buf, first)
	assert.Nil(t, err)
	n2, err := writeTx(&buf, second)
	assert.Nil(t, err)

	got, n, err := readTx(&buf)
	assert.Nil(t, err)
	assert.Equal(t, n1, n)
	assert.Equal(t, first.GetPiggybankWithdrawMsg(), got.GetPiggybankWithdrawMsg())

	got, n, err = readTx(&buf)
	assert.Nil(t, err)
	assert.Equal(t, n2, n)
	assert.Equal(t, second.GetPiggybankWithdrawMsg(), got.GetPiggybankWithdrawMsg())

	if _, _, err := readTx(&buf); err != io.EOF {
		t.Fatalf("want EOF, got %v", err)
	}
}
