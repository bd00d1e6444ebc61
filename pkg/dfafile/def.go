// Package dfafile reads and writes automaton definition files and
// exports diagram formats (DOT, PNG).
package dfafile

import (
	"github.com/ha1tch/dfakit/pkg/dfa"
)

// Definition is the file representation of an automaton: plain string
// identifiers, validated only when an automaton is built from it.
// Transition keys are "<state><sep><symbol>" composites, e.g. "q0,1".
type Definition struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	States      []string          `json:"states" yaml:"states"`
	Alphabet    []string          `json:"alphabet" yaml:"alphabet"`
	Initial     string            `json:"initialState" yaml:"initialState"`
	FinalStates []string          `json:"finalStates" yaml:"finalStates"`
	Transitions map[string]string `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	// Separator splits transition keys; empty means dfa.DefaultSeparator.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
}

// Builder returns a dfa.Builder loaded with the definition, for
// callers that want to attach diagnostics or extend it before
// building.
func (d *Definition) Builder() *dfa.Builder {
	b := dfa.NewBuilder().
		States(d.States...).
		Symbols(d.Alphabet...).
		Finals(d.FinalStates...).
		TransitionMap(d.Transitions, d.Separator)
	if d.Initial != "" {
		b.Initial(d.Initial)
	}
	return b
}

// Automaton validates the definition and builds the automaton.
func (d *Definition) Automaton() (*dfa.Automaton, error) {
	return d.Builder().Build()
}

// FromAutomaton maps a validated automaton back into its file
// representation, using the default transition key separator.
func FromAutomaton(a *dfa.Automaton, name string) *Definition {
	states := a.States().States()
	symbols := a.Alphabet().Symbols()
	finals := a.FinalStates().States()

	def := &Definition{
		Name:        name,
		States:      make([]string, 0, len(states)),
		Alphabet:    make([]string, 0, len(symbols)),
		Initial:     string(a.InitialState()),
		FinalStates: make([]string, 0, len(finals)),
		Transitions: make(map[string]string),
		Separator:   dfa.DefaultSeparator,
	}
	for _, q := range states {
		def.States = append(def.States, string(q))
	}
	for _, s := range symbols {
		def.Alphabet = append(def.Alphabet, string(s))
	}
	for _, q := range finals {
		def.FinalStates = append(def.FinalStates, string(q))
	}

	delta := a.Transitions()
	for _, k := range delta.Keys() {
		to, _ := delta.Apply(k.From, k.Input)
		def.Transitions[string(k.From)+dfa.DefaultSeparator+string(k.Input)] = string(to)
	}
	return def
}
