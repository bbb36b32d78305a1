package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"io/ioutil"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestSeqFlag(t *testing.T) {
	cases := map[string]struct {
		setup     func(fl *flag.FlagSet) *flagseq
		args      []string
		wantDie   int
		wantError bool
		wantVal   []byte
	}{
		"use default value, decimal representation": {
			setup: func(fl *flag.FlagSet) *flagseq {
				return flSeq(fl, "x", "1", "")
			},
			wantVal: sequenceID(1),
		},
		"parse decimal representation": {
			setup: func(fl *flag.FlagSet) *flagseq {
				return flSeq(fl, "x", "1", "")
			},
			args:    []string{"-x", "123"},
			wantVal: sequenceID(123),
		},
		"parse hex representation": {
			setup: func(fl *flag.FlagSet) *flagseq {
				return flSeq(fl, "x", "", "")
			},
			args:    []string{"-x", "hex:" + hex.EncodeToString(sequenceID(987654))},
			wantVal: sequenceID(987654),
		},
		"invalid default value": {
			setup: func(fl *flag.FlagSet) *flagseq {
				return flSeq(fl, "x", "zero", "")
			},
			wantDie: 1,
		},
		"invalid argument value": {
			setup: func(fl *flag.FlagSet) *flagseq {
				return flSeq(fl, "x", "", "")
			},
			args:      []string{"-x", "-4"},
			wantError: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cnt, cleanup := observeFlagDie(t)
			defer cleanup()

			fl := flag.NewFlagSet("", flag.ContinueOnError)
			fl.SetOutput(ioutil.Discard)
			val := tc.setup(fl)
			err := fl.Parse(tc.args)
			if !tc.wantError {
				assert.Nil(t, err)
			} else if err == nil {
				t.Fatal("Expected error but got none")
			}
			if *cnt != tc.wantDie {
				t.Errorf("want %d flagDie calls, got %d", tc.wantDie, *cnt)
			}
			if tc.wantDie == 0 && !bytes.Equal(*val, tc.wantVal) {
				t.Errorf("want %q value, got %q", tc.wantVal, *val)
			}
		})
	}
}

func TestTimeFlag(t *testing.T) {
	now := time.Now()

	cases := map[string]struct {
		setup     func(fl *flag.FlagSet) *flagTime
		args      []string
		wantError bool
		wantVal   time.Time
	}{
		"use default value": {
			setup: func(fl *flag.FlagSet) *flagTime {
				return flTime(fl, "x", func() time.Time { return now }, "")
			},
			wantVal: now,
		},
		"no default value": {
			setup: func(fl *flag.FlagSet) *flagTime {
				return flTime(fl, "x", nil, "")
			},
			wantVal: time.Time{},
		},
		"human format": {
			setup: func(fl *flag.FlagSet) *flagTime {
				return flTime(fl, "x", nil, "")
			},
			args:    []string{"-x", "2030-01-02 15:04"},
			wantVal: time.Date(2030, time.January, 2, 15, 4, 0, 0, time.UTC),
		},
		"unix timestamp": {
			setup: func(fl *flag.FlagSet) *flagTime {
				return flTime(fl, "x", nil, "")
			},
			args:    []string{"-x", "1900000000"},
			wantVal: weave.UnixTime(1900000000).Time(),
		},
		"invalid format": {
			setup: func(fl *flag.FlagSet) *flagTime {
				return flTime(fl, "x", nil, "")
			},
			args:      []string{"-x", "tomorrow"},
			wantError: true,
			wantVal:   time.Time{},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fl := flag.NewFlagSet("", flag.ContinueOnError)
			fl.SetOutput(ioutil.Discard)
			val := tc.setup(fl)
			err := fl.Parse(tc.args)
			if !tc.wantError {
				assert.Nil(t, err)
			} else if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !tc.wantVal.Equal(val.Time()) {
				t.Errorf("want %q value, got %q", tc.wantVal, val.Time())
			}
		})
	}
}

// observeFlagDie replaces flagDie with a function that counts its calls
// instead of terminating the process.
func observeFlagDie(t testing.TB) (*int, func()) {
	t.Helper()

	original := flagDie

	var cnt int
	flagDie = func(s string, args ...interface{}) {
		cnt++
	}
	cleanup := func() {
		flagDie = original
	}
	return &cnt, cleanup
}
