package main

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestSubmitTxResponse(t *testing.T) {
	fmts := map[string]func([]byte) (string, error){
		"mymsg":      fmtSequence,
		"anothermsg": func(b []byte) (string, error) { return string(b), nil },
	}

	cases := map[string]struct {
		Tx          weave.Tx
		DeliverData []byte
		WantResp    string
		WantErr     bool
	}{
		"not supported message returns no response": {
			Tx:          &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "message/not/supported"}},
			DeliverData: []byte(`this-data-must-not-be-parsed`),
		},
		"a sequence formatter returns a decimal representation": {
			Tx:          &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "mymsg"}},
			DeliverData: weavetest.SequenceID(123456),
			WantResp:    "123456",
		},
		"a custom formatter is used": {
			Tx:          &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "anothermsg"}},
			DeliverData: []byte("foobar"),
			WantResp:    "foobar",
		},
		"formatter for the invalid response returns an error": {
			Tx:          &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "mymsg"}},
			DeliverData: []byte("x"),
			WantErr:     true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			resp, err := extractResponse(tc.Tx, tc.DeliverData, fmts)
			if hasErr := err != nil; hasErr != tc.WantErr {
				t.Fatalf("returned error value: %+v", err)
			}
			assert.Equal(t, tc.WantResp, resp)
		})
	}
}

func TestCreateVaultResponseIsFormatted(t *testing.T) {
	format, ok := formatters["piggybank/create"]
	if !ok {
		t.Fatal("vault creation response formatter not registered")
	}
	got, err := format(weavetest.SequenceID(42))
	assert.Nil(t, err)
	assert.Equal(t, "42", got)
}
