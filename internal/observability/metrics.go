package observability

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/danmuck/bitcalc/internal/sequence"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeDivisionByZero = "division_by_zero"
	OutcomeMalformed      = "malformed_length"
	OutcomeInvalid        = "invalid"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitcalc",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bitcalc",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	sequencesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitcalc",
			Subsystem: "sequence",
			Name:      "decoded_total",
			Help:      "Bitcodes decoded, by caller and outcome.",
		},
		[]string{"source", "outcome"},
	)
	blocksDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitcalc",
			Subsystem: "sequence",
			Name:      "blocks_deleted_total",
			Help:      "Blocks removed by repair, by caller and reason.",
		},
		[]string{"source", "reason"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, sequencesDecoded, blocksDeleted)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordSequence counts one decode. seq may be nil when construction failed;
// err is the construction or evaluation error, if any.
func RecordSequence(source string, seq *sequence.Sequence, err error) {
	RegisterMetrics()
	if seq != nil {
		for _, d := range seq.Deletions() {
			blocksDeleted.WithLabelValues(source, string(d.Reason)).Inc()
		}
	}
	sequencesDecoded.WithLabelValues(source, Outcome(seq, err)).Inc()
}

// Outcome labels a decode result. A malformed length outranks a successful
// evaluation so truncated input stays visible.
func Outcome(seq *sequence.Sequence, err error) string {
	switch {
	case errors.Is(err, sequence.ErrMalformedLength):
		return OutcomeMalformed
	case errors.Is(err, sequence.ErrEmptyExpression):
		return OutcomeEmpty
	case errors.Is(err, sequence.ErrDivisionByZero):
		return OutcomeDivisionByZero
	case err != nil:
		return OutcomeInvalid
	case seq != nil && seq.Warning() != nil:
		return OutcomeMalformed
	default:
		return OutcomeOK
	}
}
