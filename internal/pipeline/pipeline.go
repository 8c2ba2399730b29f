// Package pipeline runs one bitcode through the sequence package and
// reports the result for the CLI and HTTP callers, with logging and metrics.
package pipeline

import (
	"errors"
	"strings"

	"github.com/danmuck/bitcalc/internal/observability"
	"github.com/danmuck/bitcalc/internal/sequence"
	"github.com/rs/zerolog"
)

var ErrAmbiguousInput = errors.New("pipeline: set bitcode or expression, not both")

// Input carries either a bitcode or an infix expression.
type Input struct {
	Bitcode    string `json:"bitcode"`
	Expression string `json:"expression"`
}

type Deletion struct {
	Index  int    `json:"index"`
	Value  uint8  `json:"value"`
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// Report is the outcome of one decode. Evaluation failures land in Error
// and Outcome; Result is nil whenever Error is set.
type Report struct {
	Original   string     `json:"original"`
	Bitcode    string     `json:"bitcode"`
	Expression string     `json:"expression"`
	Result     *float64   `json:"result,omitempty"`
	Deletions  []Deletion `json:"deletions"`
	Warning    string     `json:"warning,omitempty"`
	Error      string     `json:"error,omitempty"`
	Outcome    string     `json:"outcome"`
}

type Runner struct {
	source string
	logger zerolog.Logger
	opts   []sequence.Option
}

// NewRunner returns a Runner whose metrics are labelled with source.
func NewRunner(source string, logger zerolog.Logger, opts ...sequence.Option) *Runner {
	return &Runner{source: source, logger: logger, opts: opts}
}

// Decode builds, repairs, renders and evaluates in. Errors returned here are
// construction failures (bad bits, strict length, bad expression, ambiguous
// input); evaluation failures are reported inside the Report.
func (r *Runner) Decode(in Input) (Report, error) {
	seq, err := r.build(in)
	if err != nil {
		observability.RecordSequence(r.source, nil, err)
		r.logger.Warn().Err(err).Str("bitcode", in.Bitcode).Str("expression", in.Expression).Msg("decode rejected")
		return Report{}, err
	}
	observability.LogSequence(r.logger, seq)

	report := Report{
		Original:   seq.Original(),
		Bitcode:    seq.Bitcode(),
		Expression: seq.Decode(),
		Deletions:  deletions(seq.Deletions()),
	}
	if w := seq.Warning(); w != nil {
		report.Warning = w.Error()
	}

	result, evalErr := seq.Evaluate()
	if evalErr != nil {
		report.Error = evalErr.Error()
	} else {
		report.Result = &result
	}
	report.Outcome = observability.Outcome(seq, evalErr)
	observability.RecordSequence(r.source, seq, evalErr)

	event := r.logger.Info()
	if evalErr != nil {
		event = r.logger.Warn().Err(evalErr)
	}
	event.
		Str("bitcode", report.Bitcode).
		Str("expression", report.Expression).
		Int("deleted", len(report.Deletions)).
		Str("outcome", report.Outcome).
		Msg("decoded")
	return report, nil
}

func (r *Runner) build(in Input) (*sequence.Sequence, error) {
	bits := strings.TrimSpace(in.Bitcode)
	expr := strings.TrimSpace(in.Expression)
	switch {
	case bits != "" && expr != "":
		return nil, ErrAmbiguousInput
	case expr != "":
		return sequence.FromExpression(expr, r.opts...)
	default:
		return sequence.New(bits, r.opts...)
	}
}

func deletions(in []sequence.Deletion) []Deletion {
	out := make([]Deletion, 0, len(in))
	for _, d := range in {
		out = append(out, Deletion{
			Index:  d.Index,
			Value:  d.Value,
			Symbol: sequence.NewToken(d.Value).Symbol(),
			Reason: string(d.Reason),
		})
	}
	return out
}
