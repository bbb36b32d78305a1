package main

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/iov-one/piggybank/cmd/piggybankd/client"
	"github.com/iov-one/piggybank/x/piggybank"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Execute a ABCI query and print JSON encoded result.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl      = fl.String("tm", defaultTmAddr, tmAddrUsage)
		pathFl        = fl.String("path", "", "Path to be queried. Must be one of the supported.")
		dataFl        = fl.String("data", "", "Individual query data. Format depends on the queried entity: a decimal vault ID or a hex address.")
		prefixQueryFl = fl.Bool("prefix", false, "If true, use prefix queries instead of the exact match with provided data.")
	)
	fl.Parse(args)

	conf, ok := queries[*pathFl]
	if !ok {
		paths := make([]string, 0, len(queries))
		for p := range queries {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		return fmt.Errorf("available query paths:\n\t- %s", strings.Join(paths, "\n\t- "))
	}

	var data []byte
	if len(*dataFl) != 0 {
		var err error
		if data, err = conf.encID(*dataFl); err != nil {
			return fmt.Errorf("can not encode data: %s", err)
		}
	}
	queryPath := *pathFl
	if *prefixQueryFl || *dataFl == "" {
		queryPath += "?" + weave.PrefixQueryMod
	}

	c := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp, err := c.AbciQuery(queryPath, data)
	if err != nil {
		return fmt.Errorf("failed to run query: %s", err)
	}

	result, err := decodeModels(conf, resp.Models)
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

func decodeModels(conf queryConf, models []weave.Model) ([]keyval, error) {
	result := make([]keyval, 0, len(models))
	for i, m := range models {
		obj := conf.newObj()
		if err := obj.Unmarshal(m.Value); err != nil {
			return nil, fmt.Errorf("failed to unmarshal model %d: %s", i, err)
		}
		key, err := conf.decKey(m.Key)
		if err != nil {
			return nil, fmt.Errorf("cannot decode %x key: %s", m.Key, err)
		}
		result = append(result, keyval{Key: key, Value: obj})
	}
	return result, nil
}

type keyval struct {
	Key   string
	Value model
}

type queryConf struct {
	// newObj returns a new instance of the model that the result of the
	// ABCI query should be extracted into.
	newObj func() model
	// decKey is used to decode key value returned by the ABCI query and
	// transform it into human readable form.
	decKey func([]byte) (string, error)
	// encID is used to parse input format of the ID and encode it into
	// form that will be passed to the ABCI query. The format can differ
	// from decKey if we use secondary index for matching.
	encID func(string) ([]byte, error)
}

// queries contains a mapping of query path to that query specifics.
var queries = map[string]queryConf{
	"/vaults": {
		newObj: func() model { return &piggybank.Vault{} },
		decKey: sequenceKey,
		encID:  numericID,
	},
	"/vaults/owner": {
		newObj: func() model { return &piggybank.Vault{} },
		decKey: sequenceKey,
		encID:  addressID,
	},
	"/vaultbalances": {
		newObj: func() model { return &coin.Coin{} },
		decKey: rawSequenceKey,
		encID:  numericID,
	},
	"/wallets": {
		newObj: func() model { return &cash.Set{} },
		decKey: rawKey,
		encID:  addressID,
	},
	"/auth": {
		newObj: func() model { return &sigs.UserData{} },
		decKey: rawKey,
		encID:  addressID,
	},
}

// model is an entity used by weave to store data. This interface is
// implemented by any protobuf message.
type model interface {
	Unmarshal([]byte) error
}

func addressID(s string) ([]byte, error) {
	return weave.ParseAddress(s)
}

func numericID(s string) ([]byte, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse number: %s", err)
	}
	return sequenceID(n), nil
}

// sequenceKey decodes a bucket key, being the bucket name prefix followed by
// a sequence value.
func sequenceKey(raw []byte) (string, error) {
	return rawSequenceKey(raw[bytes.Index(raw, []byte(":"))+1:])
}

func rawSequenceKey(seq []byte) (string, error) {
	if len(seq) != sequenceBinarySize {
		return "", fmt.Errorf("invalid sequence length: %d", len(seq))
	}
	n := binary.BigEndian.Uint64(seq)
	return fmt.Sprint(n), nil
}

func rawKey(raw []byte) (string, error) {
	return hex.EncodeToString(raw), nil
}
