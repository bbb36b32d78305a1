package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/ed25519"
)

const testMnemonic = `shy else mystery outer define there front bracket dawn honey excuse virus lazy book kiss cannon oven law coconut hedgehog veteran narrow great cage`

func TestKeygen(t *testing.T) {
	cases := map[string]string{
		"m/44'/234'/0'": "tiov1c3n70dph9m2jepszfmmh84pu75zuga3zrsd7jw",
		"m/44'/234'/1'": "tiov10lzv8v2lds7jvmkdt6t6khmhydr920r2yux8p9",
		"m/44'/234'/2'": "tiov18gwds8rx8cajav3m4lr5j98vlly9n8ms930z2l",
	}

	for path, bech := range cases {
		t.Run(path, func(t *testing.T) {
			priv, err := keygen(testMnemonic, path)
			if err != nil {
				t.Fatalf("cannot generate key: %s", err)
			}
			b, err := toBech32("tiov", priv.Public().(ed25519.PublicKey))
			if err != nil {
				t.Fatalf("cannot serialize to bech32: %s", err)
			}
			if got := string(b); got != bech {
				t.Logf("want: %s", bech)
				t.Logf(" got: %s", got)
				t.Fatal("unexpected bech address")
			}
		})
	}
}

func TestMnemonic(t *testing.T) {
	cases := map[string]struct {
		mnemonic string
		wantErr  bool
	}{
		"valid mnemonic 12 words": {
			mnemonic: "super bulk plunge better rookie donor reward obscure rescue type trade pelican",
		},
		"valid mnemonic 24 words": {
			mnemonic: "usage mountain noodle inspire distance lyrics caution wait mansion never announce biology squirrel guess key gain belt same matrix chase mom beyond model toy",
		},
		"additional whitespace is not allowed": {
			mnemonic: "super bulk plunge better rookie    donor reward obscure rescue type trade pelican",
			wantErr:  true,
		},
		"mnemonic cannot be tab separated": {
			mnemonic: "super\tbulk plunge better rookie donor reward obscure rescue type trade pelican",
			wantErr:  true,
		},
		"invalid checksum": {
			mnemonic: "super bulk plunge better rookie donor reward obscure rescue type trade trade",
			wantErr:  true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := keygen(tc.mnemonic, "m/44'/234'/0'")
			if hasErr := err != nil; hasErr != tc.wantErr {
				t.Fatalf("returned error value: %+v", err)
			}
		})
	}
}

func TestKeygenAndKeyaddrCommands(t *testing.T) {
	dir, err := ioutil.TempDir("", "piggycli")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	keyPath := filepath.Join(dir, "key")

	input := bytes.NewBufferString(testMnemonic + "\n")
	if err := cmdKeygen(input, ioutil.Discard, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}

	// An existing key is never overwritten.
	input = bytes.NewBufferString(testMnemonic)
	if err := cmdKeygen(input, ioutil.Discard, []string{"-key", keyPath}); err == nil {
		t.Fatal("want an error when the key file exists")
	}

	var output bytes.Buffer
	if err := cmdKeyaddr(nil, &output, []string{"-key", keyPath, "-bp", "tiov"}); err != nil {
		t.Fatalf("cannot print address: %s", err)
	}
	if !strings.HasPrefix(output.String(), "bech32\ttiov1c3n70dph9m2jepszfmmh84pu75zuga3zrsd7jw\n") {
		t.Fatalf("unexpected output: %s", output.String())
	}
}

func TestCmdMnemonic(t *testing.T) {
	var output bytes.Buffer
	if err := cmdMnemonic(nil, &output, []string{"-size", "128"}); err != nil {
		t.Fatalf("cannot generate mnemonic: %s", err)
	}
	mnemonic := strings.TrimSpace(output.String())
	if n := len(strings.Fields(mnemonic)); n != 12 {
		t.Fatalf("want 12 words, got %d", n)
	}
	if err := validateMnemonic(mnemonic); err != nil {
		t.Fatalf("generated mnemonic is not valid: %s", err)
	}
}
