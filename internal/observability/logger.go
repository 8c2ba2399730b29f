package observability

import (
	"github.com/danmuck/bitcalc/internal/sequence"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// WithApp returns the global logger tagged with the app name.
func WithApp(app string) zerolog.Logger {
	return log.Logger.With().Str("app", app).Logger()
}

// LogSequence writes the repair trace for seq. Deletions go out at debug,
// a malformed length warning at warn.
func LogSequence(logger zerolog.Logger, seq *sequence.Sequence) {
	if w := seq.Warning(); w != nil {
		logger.Warn().Err(w).Str("bitcode", seq.Original()).Msg("malformed bitcode length")
	}
	for _, d := range seq.Deletions() {
		logger.Debug().
			Int("index", d.Index).
			Uint8("value", d.Value).
			Str("reason", string(d.Reason)).
			Msg("block deleted")
	}
}
