package piggybank

import (
	"strconv"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "piggybank"
	metricsSubsystem = "vault"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "operations_total",
		Help:      "Number of vault operations processed by the deliver handler, by operation and result code.",
	}, []string{"operation", "code"})

	movedTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "moved_tokens_total",
		Help:      "Amount of tokens deposited into and withdrawn from vaults.",
	}, []string{"direction", "ticker"})
)

// observeOperation counts a delivered operation. Successful operations are
// counted with code 0.
//
// The result is recorded when the handler returns. Decorators that wrap the
// handler, such as the fee collection, can still fail and roll back the
// transaction, so the counters follow handler results and not committed
// state.
func observeOperation(operation string, err error) {
	code, _ := errors.ABCIInfo(err, false)
	operationsTotal.WithLabelValues(operation, strconv.FormatUint(uint64(code), 10)).Inc()
}

// observeTransfer counts tokens moved in given direction. Same as with
// observeOperation, the transfer is counted before the transaction commits.
func observeTransfer(direction string, amount coin.Coin) {
	value := float64(amount.Whole) + float64(amount.Fractional)/float64(coin.FracUnit)
	movedTokensTotal.WithLabelValues(direction, amount.Ticker).Add(value)
}
