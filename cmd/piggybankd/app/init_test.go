package piggybankd

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenInitOptions(t *testing.T) {
	cases := map[string]struct {
		args    []string
		cur     string
		addr    string
		wantErr bool
	}{
		"without args":              {nil, "IOV", "", false},
		"with currency only":        {[]string{"ONE"}, "ONE", "", false},
		"with currency and address": {[]string{"TWO", "1234567890"}, "TWO", "1234567890", false},
		"with invalid currency":     {[]string{"too long"}, "", "", true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			val, err := GenInitOptions(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			assert.Nil(t, err)

			var opts weave.Options
			assert.Nil(t, json.Unmarshal(val, &opts))

			cc := fmt.Sprintf(`"ticker": "%s"`, tc.cur)
			assert.Equal(t, true, strings.Contains(string(val), cc))

			ca := fmt.Sprintf(`"owner": "%s"`, tc.addr)
			if tc.addr == "" {
				// we just know there is an address, not what it is
				ca = ca[:len(ca)-1]
			}
			assert.Equal(t, true, strings.Contains(string(val), ca))
		})
	}
}
