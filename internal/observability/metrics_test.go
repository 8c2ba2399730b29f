package observability

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danmuck/bitcalc/internal/sequence"
	"github.com/danmuck/bitcalc/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOutcome(t *testing.T) {
	testlog.Start(t)

	valid := mustSequence(t, "010110100011")
	truncated := mustSequence(t, "01011")
	cases := []struct {
		seq  *sequence.Sequence
		err  error
		want string
	}{
		{seq: valid, want: OutcomeOK},
		{seq: truncated, want: OutcomeMalformed},
		{seq: valid, err: sequence.ErrEmptyExpression, want: OutcomeEmpty},
		{seq: valid, err: fmt.Errorf("%w at block 2", sequence.ErrDivisionByZero), want: OutcomeDivisionByZero},
		{err: &sequence.MalformedLengthError{Length: 5, Trailing: 1}, want: OutcomeMalformed},
		{err: sequence.ErrInvalidBit, want: OutcomeInvalid},
		{err: errors.New("other"), want: OutcomeInvalid},
	}
	for i, tc := range cases {
		if got := Outcome(tc.seq, tc.err); got != tc.want {
			t.Fatalf("case %d: expected %q, got %q", i, tc.want, got)
		}
	}
}

func TestRecordSequenceCountsDeletions(t *testing.T) {
	testlog.Start(t)

	// 1010 0101 0011 1010: leading op, 5, unexpected digit, trailing op
	seq := mustSequence(t, "1010010100111010")
	source := t.Name()
	RecordSequence(source, seq, nil)

	if got := testutil.ToFloat64(sequencesDecoded.WithLabelValues(source, OutcomeOK)); got != 1 {
		t.Fatalf("expected 1 decoded sequence, got %v", got)
	}
	checks := map[sequence.Reason]float64{
		sequence.ReasonUnexpectedOperator: 1,
		sequence.ReasonUnexpectedDigit:    1,
		sequence.ReasonTrailingOperator:   1,
		sequence.ReasonUnrecognized:       0,
	}
	for reason, want := range checks {
		if got := testutil.ToFloat64(blocksDeleted.WithLabelValues(source, string(reason))); got != want {
			t.Fatalf("reason %s: expected %v, got %v", reason, want, got)
		}
	}
}

func mustSequence(t *testing.T, bits string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.New(bits)
	if err != nil {
		t.Fatalf("new sequence %q: %v", bits, err)
	}
	return seq
}
