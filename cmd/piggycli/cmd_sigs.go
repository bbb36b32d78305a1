package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/piggybank/cmd/piggybankd/client"
	"github.com/iov-one/weave/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

The chain ID and the signer nonce are fetched from the node unless both are
provided.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl  = fl.String("tm", defaultTmAddr, tmAddrUsage)
		keyPathFl = fl.String("key", defaultKeyPath, keyPathUsage)
		chainFl   = fl.String("chain", "", "Chain ID. Fetched from the node if not provided.")
		nonceFl   = fl.Int64("nonce", -1, "Signer nonce. Fetched from the node if not provided.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	var c *client.PiggybankClient
	if *chainFl == "" || *nonceFl < 0 {
		c = client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	}

	chainID := *chainFl
	if chainID == "" {
		if chainID, err = c.ChainID(); err != nil {
			return fmt.Errorf("cannot fetch chain ID: %s", err)
		}
	}

	nonce := *nonceFl
	if nonce < 0 {
		if nonce, err = client.NewNonce(c, key.PublicKey().Address()).Next(); err != nil {
			return fmt.Errorf("cannot get the next sequence number: %s", err)
		}
	}

	sig, err := sigs.SignTx(key, tx, chainID, nonce)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}
