package dfa

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// missingPairSample bounds how many undefined (state, symbol) pairs a
// completeness warning enumerates.
const missingPairSample = 10

// Option configures automaton construction.
type Option func(*options)

type options struct {
	sink DiagnosticSink
}

// WithDiagnostics routes construction warnings to sink instead of the
// default slog logger.
func WithDiagnostics(sink DiagnosticSink) Option {
	return func(o *options) { o.sink = sink }
}

// Automaton is a validated, immutable deterministic finite automaton:
// the formal 5-tuple of states, alphabet, initial state, final states
// and transition function. It is safe to share across goroutines;
// execution never mutates it.
type Automaton struct {
	states      StateSet
	alphabet    Alphabet
	initial     State
	finals      StateSet
	delta       *TransitionFunction
	fingerprint uint64
}

// New validates the 5-tuple and returns the automaton, or an
// *InvalidAutomatonError naming the violated invariant. Construction
// is all-or-nothing: a partially valid automaton is never returned.
//
// A nil transition function is treated as empty. A transition
// function that does not cover the full states x alphabet product is
// legal; it produces a CompletenessWarning on the diagnostic sink,
// never an error.
func New(states StateSet, alphabet Alphabet, initial State, finals StateSet, delta *TransitionFunction, opts ...Option) (*Automaton, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if states.Size() == 0 {
		return nil, &InvalidAutomatonError{Reason: "state set is empty"}
	}
	for _, q := range states.States() {
		if q == "" {
			return nil, &InvalidAutomatonError{Reason: "state set contains an empty label"}
		}
	}
	if alphabet.Size() == 0 {
		return nil, &InvalidAutomatonError{Reason: "alphabet is empty"}
	}
	if initial == "" {
		return nil, &InvalidAutomatonError{Reason: "initial state is not set"}
	}
	if !states.Contains(initial) {
		return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
			"initial state %q is not a declared state", string(initial))}
	}
	for _, q := range finals.States() {
		if !states.Contains(q) {
			return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
				"final state %q is not a declared state", string(q))}
		}
	}
	if delta == nil {
		delta = NewTransitionFunction()
	}
	if err := delta.validateTargets(states); err != nil {
		return nil, err
	}

	a := &Automaton{
		states:   states,
		alphabet: alphabet,
		initial:  initial,
		finals:   finals,
		delta:    delta.clone(),
	}

	fp, err := hashstructure.Hash(a.canonical(), hashstructure.FormatV2, nil)
	if err != nil {
		return nil, fmt.Errorf("fingerprint automaton: %w", err)
	}
	a.fingerprint = fp

	if missing, total := a.delta.missingPairs(states, alphabet, missingPairSample); total > 0 {
		sink := o.sink
		if sink == nil {
			sink = SlogSink(slog.Default())
		}
		sink.IncompleteTransitionFunction(CompletenessWarning{
			Missing:      missing,
			TotalMissing: total,
		})
	}

	return a, nil
}

// canonicalDef is the sorted, order-independent form of the 5-tuple
// that the structural fingerprint is computed over.
type canonicalDef struct {
	States      []State
	Alphabet    []Symbol
	Initial     State
	Finals      []State
	Transitions []canonicalTransition
}

type canonicalTransition struct {
	From  State
	Input Symbol
	To    State
}

func (a *Automaton) canonical() canonicalDef {
	keys := a.delta.Keys()
	transitions := make([]canonicalTransition, 0, len(keys))
	for _, k := range keys {
		to, _ := a.delta.Apply(k.From, k.Input)
		transitions = append(transitions, canonicalTransition{From: k.From, Input: k.Input, To: to})
	}
	return canonicalDef{
		States:      a.states.States(),
		Alphabet:    a.alphabet.Symbols(),
		Initial:     a.initial,
		Finals:      a.finals.States(),
		Transitions: transitions,
	}
}

// States returns the declared state set.
func (a *Automaton) States() StateSet { return a.states }

// Alphabet returns the input alphabet.
func (a *Automaton) Alphabet() Alphabet { return a.alphabet }

// InitialState returns the initial state.
func (a *Automaton) InitialState() State { return a.initial }

// FinalStates returns the accepting state set.
func (a *Automaton) FinalStates() StateSet { return a.finals }

// IsFinal reports whether q is an accepting state.
func (a *Automaton) IsFinal(q State) bool { return a.finals.Contains(q) }

// Transitions returns a copy of the transition function. Mutating the
// copy does not affect the automaton.
func (a *Automaton) Transitions() *TransitionFunction { return a.delta.clone() }

// Fingerprint returns the stable structural hash computed at
// construction. Two automata with the same 5-tuple share the same
// fingerprint regardless of declaration order.
func (a *Automaton) Fingerprint() uint64 { return a.fingerprint }

// String returns a short human-readable summary.
func (a *Automaton) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("DFA: %d states, %d symbols\n", a.states.Size(), a.alphabet.Size()))
	sb.WriteString(fmt.Sprintf("  States: %s\n", a.states))
	sb.WriteString(fmt.Sprintf("  Alphabet: %v\n", a.alphabet.Symbols()))
	sb.WriteString(fmt.Sprintf("  Initial: %s\n", a.initial))
	sb.WriteString(fmt.Sprintf("  Final: %s\n", a.finals))
	sb.WriteString(fmt.Sprintf("  Transitions: %d\n", a.delta.Size()))
	return sb.String()
}
