package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/piggybank/cmd/piggybankd/client"
	"github.com/iov-one/weave"
)

func cmdBlockTime(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the time of the latest block. Vault locks expire according to the block
time, not the local clock.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr, tmAddrUsage)
	)
	fl.Parse(args)

	c := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	now, err := c.BlockTime()
	if err != nil {
		return fmt.Errorf("cannot fetch block time: %s", err)
	}
	return printBlockTime(output, now)
}

func printBlockTime(output io.Writer, now time.Time) error {
	_, err := fmt.Fprintf(output, "%s\t%d\n", now.UTC().Format(flagTimeFormat), weave.AsUnixTime(now))
	return err
}
