package dfa

import (
	"fmt"
	"log/slog"
	"strings"
)

// CompletenessWarning describes a partial transition function. The
// automaton is still valid; undefined pairs only fail if reached
// during execution.
type CompletenessWarning struct {
	// Missing is a bounded sample of undefined (state, symbol) pairs,
	// in sorted order.
	Missing []TransitionKey
	// TotalMissing counts all undefined pairs, including those not in
	// the sample.
	TotalMissing int
}

// DiagnosticSink receives non-fatal construction diagnostics.
// Construction proceeds whether or not a sink is supplied.
type DiagnosticSink interface {
	IncompleteTransitionFunction(w CompletenessWarning)
}

// SlogSink adapts a slog.Logger into a DiagnosticSink. Warnings are
// logged at warn level with the missing-pair sample attached.
func SlogSink(l *slog.Logger) DiagnosticSink {
	return slogSink{l: l}
}

type slogSink struct {
	l *slog.Logger
}

func (s slogSink) IncompleteTransitionFunction(w CompletenessWarning) {
	sample := make([]string, 0, len(w.Missing))
	for _, k := range w.Missing {
		sample = append(sample, fmt.Sprintf("(%s, %s)", k.From, k.Input))
	}
	s.l.Warn("transition function is partial",
		"missing_pairs", w.TotalMissing,
		"sample", strings.Join(sample, " "))
}

// NopSink discards all diagnostics.
var NopSink DiagnosticSink = nopSink{}

type nopSink struct{}

func (nopSink) IncompleteTransitionFunction(CompletenessWarning) {}
