package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *weave.Address {
	var a weave.Address
	if defaultVal != "" {
		var err error
		a, err = weave.ParseAddress(defaultVal)
		if err != nil {
			flagDie("Cannot parse %q weave.Address flag value. %s", name, err)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
// If given value cannot be deserialized to required type, process is
// terminated.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			flagDie("Cannot parse %q coin flag value. %s", name, err)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flTime returns a time value. Both the human format and a unix timestamp are
// accepted as the argument.
func flTime(fl *flag.FlagSet, name string, defaultVal func() time.Time, usage string) *flagTime {
	var t flagTime
	if defaultVal != nil {
		t = flagTime{time: defaultVal()}
	}
	fl.Var(&t, name, usage)
	return &t
}

// flagTime is created to be used as a time.Time that implements flag.Value
// interface.
type flagTime struct {
	time time.Time
}

func (t flagTime) String() string {
	if t.time.IsZero() {
		return ""
	}
	return t.time.UTC().Format(flagTimeFormat)
}

func (t *flagTime) Set(raw string) error {
	if val, err := time.Parse(flagTimeFormat, raw); err == nil {
		t.time = val
		return nil
	}
	var ts weave.UnixTime
	if err := ts.UnmarshalJSON([]byte(raw)); err != nil {
		return fmt.Errorf("expected %q or unix timestamp format", flagTimeFormat)
	}
	t.time = ts.Time()
	return nil
}

func (t *flagTime) Time() time.Time {
	return t.time
}

func (t *flagTime) UnixTime() weave.UnixTime {
	return weave.AsUnixTime(t.time)
}

const flagTimeFormat = "2006-01-02 15:04"

// flSeq returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided.
// If given value cannot be deserialized to required type, process is
// terminated.
// Sequence can be serialized using one of the formats supported by the
// unpackSequence function.
func flSeq(fl *flag.FlagSet, name, defaultVal, usage string) *flagseq {
	var b []byte
	if defaultVal != "" {
		var err error
		b, err = unpackSequence(defaultVal)
		if err != nil {
			flagDie("Cannot parse %q sequence flag value. %s", name, err)
		}
	}
	var fs flagseq = b
	fl.Var(&fs, name, usage)
	return &fs
}

type flagseq []byte

func (b flagseq) String() string {
	if len(b) == 0 {
		return ""
	}
	n, err := fromSequence(b)
	if err != nil {
		panic(fmt.Sprintf("%q is not a valid sequence value: %s", []byte(b), err))
	}
	return fmt.Sprint(n)
}

func (b *flagseq) Set(raw string) error {
	val, err := unpackSequence(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flagDie terminates the program when a flag parsing was not successful. This
// is a variable so that it can be overwritten for the tests.
var flagDie = func(description string, args ...interface{}) {
	s := fmt.Sprintf(description, args...)
	fmt.Fprintln(os.Stderr, s)
	os.Exit(2)
}
