package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSeparator splits the composite keys accepted by
// (*Builder).TransitionMap.
const DefaultSeparator = ","

type rawTransition struct {
	from, input, to string
}

// Builder accumulates an automaton definition as plain strings and
// defers all validation to Build. Accumulation methods may be called
// in any order and never fail; Build either returns a fully validated
// automaton or one *InvalidAutomatonError describing the first
// problem found. A builder is single-use: build once, then discard.
type Builder struct {
	states      []string
	symbols     []string
	initial     string
	hasInitial  bool
	finals      []string
	transitions []rawTransition
	badKeys     []string
	sink        DiagnosticSink
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// States declares automaton states. Duplicates are tolerated and
// deduplicated at Build.
func (b *Builder) States(names ...string) *Builder {
	b.states = append(b.states, names...)
	return b
}

// Symbols declares input alphabet symbols.
func (b *Builder) Symbols(symbols ...string) *Builder {
	b.symbols = append(b.symbols, symbols...)
	return b
}

// Initial sets the initial state. The last call wins.
func (b *Builder) Initial(name string) *Builder {
	b.initial = name
	b.hasInitial = true
	return b
}

// Finals declares accepting states.
func (b *Builder) Finals(names ...string) *Builder {
	b.finals = append(b.finals, names...)
	return b
}

// Transition adds one transition triple.
func (b *Builder) Transition(from, input, to string) *Builder {
	b.transitions = append(b.transitions, rawTransition{from: from, input: input, to: to})
	return b
}

// TransitionMap adds transitions from composite "<state><sep><symbol>"
// keys mapped to target states, e.g. {"q0,1": "q1"}. An empty sep
// means DefaultSeparator. Keys are walked in sorted order so that
// duplicate (state, symbol) pairs resolve deterministically.
// Malformed keys are remembered and reported at Build.
func (b *Builder) TransitionMap(m map[string]string, sep string) *Builder {
	if sep == "" {
		sep = DefaultSeparator
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts := strings.SplitN(k, sep, 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			b.badKeys = append(b.badKeys, k)
			continue
		}
		b.transitions = append(b.transitions, rawTransition{from: parts[0], input: parts[1], to: m[k]})
	}
	return b
}

// Diagnostics routes construction warnings to sink.
func (b *Builder) Diagnostics(sink DiagnosticSink) *Builder {
	b.sink = sink
	return b
}

// Build validates the accumulated definition and constructs the
// automaton. Validation order: presence of states, alphabet and
// initial state; then membership of the initial state, every final
// state, and every field of every transition triple. Duplicate
// (state, symbol) transition definitions are allowed; the last one
// wins.
func (b *Builder) Build() (*Automaton, error) {
	if len(b.badKeys) > 0 {
		return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
			"malformed transition key %q", b.badKeys[0])}
	}
	if len(b.states) == 0 {
		return nil, &InvalidAutomatonError{Reason: "no states declared"}
	}
	if len(b.symbols) == 0 {
		return nil, &InvalidAutomatonError{Reason: "alphabet is empty"}
	}
	if !b.hasInitial {
		return nil, &InvalidAutomatonError{Reason: "initial state is not set"}
	}
	for _, name := range b.states {
		if name == "" {
			return nil, &InvalidAutomatonError{Reason: "state name is empty"}
		}
	}

	stateValues := make([]State, 0, len(b.states))
	for _, name := range b.states {
		stateValues = append(stateValues, State(name))
	}
	states := NewStateSet(stateValues...)

	symbolValues := make([]Symbol, 0, len(b.symbols))
	for _, s := range b.symbols {
		symbolValues = append(symbolValues, Symbol(s))
	}
	alphabet, err := NewAlphabet(symbolValues...)
	if err != nil {
		return nil, err
	}

	if !states.Contains(State(b.initial)) {
		return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
			"initial state %q is not a declared state", b.initial)}
	}

	finals := NewStateSet()
	for _, name := range b.finals {
		if !states.Contains(State(name)) {
			return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
				"final state %q is not a declared state", name)}
		}
		finals = finals.Add(State(name))
	}

	delta := NewTransitionFunction()
	for _, t := range b.transitions {
		switch {
		case !states.Contains(State(t.from)):
			return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
				"transition %s --%s--> %s: from state %q is not a declared state",
				t.from, t.input, t.to, t.from)}
		case !alphabet.Contains(Symbol(t.input)):
			return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
				"transition %s --%s--> %s: symbol %q is not in the alphabet",
				t.from, t.input, t.to, t.input)}
		case !states.Contains(State(t.to)):
			return nil, &InvalidAutomatonError{Reason: fmt.Sprintf(
				"transition %s --%s--> %s: target state %q is not a declared state",
				t.from, t.input, t.to, t.to)}
		}
		delta.Define(State(t.from), Symbol(t.input), State(t.to))
	}

	var opts []Option
	if b.sink != nil {
		opts = append(opts, WithDiagnostics(b.sink))
	}
	return New(states, alphabet, State(b.initial), finals, delta, opts...)
}
