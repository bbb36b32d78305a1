package main

import (
	"os"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// Default values shared by commands that talk to a node or sign.
var (
	defaultTmAddr  = env("PIGGYCLI_TM_ADDR", "http://localhost:26657")
	defaultKeyPath = env("PIGGYCLI_PRIV_KEY", os.Getenv("HOME")+"/.piggybank.priv.key")
)

const (
	tmAddrUsage  = "Tendermint node address. You can use PIGGYCLI_TM_ADDR environment variable to set it."
	keyPathUsage = "Path to the private key file that transaction should be signed with. You can use PIGGYCLI_PRIV_KEY environment variable to set it."
)
