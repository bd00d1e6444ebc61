// Package dfa implements deterministic finite automata: validated
// definitions, interpreted execution with transition history, and a
// compiled table representation for repeated fast runs.
package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is one input token. Symbols are compared by value; they are
// usually single characters but multi-character tokens are allowed.
type Symbol string

// State is a label for one automaton configuration.
type State string

// Alphabet is an immutable set of distinct input symbols.
type Alphabet struct {
	symbols map[Symbol]struct{}
}

// NewAlphabet builds an alphabet from the given symbols, deduplicating.
// An automaton must read something, so an empty alphabet is rejected,
// as is an empty symbol.
func NewAlphabet(symbols ...Symbol) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, &InvalidAutomatonError{Reason: "alphabet is empty"}
	}
	set := make(map[Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		if s == "" {
			return Alphabet{}, &InvalidAutomatonError{Reason: "alphabet contains an empty symbol"}
		}
		set[s] = struct{}{}
	}
	return Alphabet{symbols: set}, nil
}

// Contains reports whether s is a member of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	_, ok := a.symbols[s]
	return ok
}

// Size returns the number of distinct symbols.
func (a Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns the symbols in sorted order.
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a.symbols))
	for s := range a.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StateSet is a persistent set of states. Add, Remove, Union and
// Intersect return new sets; a previously returned set is never
// mutated.
type StateSet struct {
	states map[State]struct{}
}

// NewStateSet builds a state set from the given states, deduplicating.
func NewStateSet(states ...State) StateSet {
	set := make(map[State]struct{}, len(states))
	for _, q := range states {
		set[q] = struct{}{}
	}
	return StateSet{states: set}
}

// Contains reports whether q is a member of the set.
func (s StateSet) Contains(q State) bool {
	_, ok := s.states[q]
	return ok
}

// ContainsAll reports whether every state in other is a member of s.
func (s StateSet) ContainsAll(other StateSet) bool {
	for q := range other.states {
		if !s.Contains(q) {
			return false
		}
	}
	return true
}

// Add returns a new set with q included.
func (s StateSet) Add(q State) StateSet {
	next := make(map[State]struct{}, len(s.states)+1)
	for k := range s.states {
		next[k] = struct{}{}
	}
	next[q] = struct{}{}
	return StateSet{states: next}
}

// Remove returns a new set with q excluded.
func (s StateSet) Remove(q State) StateSet {
	next := make(map[State]struct{}, len(s.states))
	for k := range s.states {
		if k != q {
			next[k] = struct{}{}
		}
	}
	return StateSet{states: next}
}

// Union returns a new set containing the members of both sets.
func (s StateSet) Union(other StateSet) StateSet {
	next := make(map[State]struct{}, len(s.states)+len(other.states))
	for k := range s.states {
		next[k] = struct{}{}
	}
	for k := range other.states {
		next[k] = struct{}{}
	}
	return StateSet{states: next}
}

// Intersect returns a new set containing the states present in both
// sets.
func (s StateSet) Intersect(other StateSet) StateSet {
	next := make(map[State]struct{})
	for k := range s.states {
		if other.Contains(k) {
			next[k] = struct{}{}
		}
	}
	return StateSet{states: next}
}

// Size returns the number of states in the set.
func (s StateSet) Size() int {
	return len(s.states)
}

// States returns the states in sorted order.
func (s StateSet) States() []State {
	out := make([]State, 0, len(s.states))
	for q := range s.states {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns a compact set notation, e.g. {Even, Odd}.
func (s StateSet) String() string {
	names := make([]string, 0, len(s.states))
	for _, q := range s.States() {
		names = append(names, string(q))
	}
	return fmt.Sprintf("{%s}", strings.Join(names, ", "))
}
