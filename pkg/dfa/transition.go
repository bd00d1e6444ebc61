package dfa

import (
	"fmt"
	"sort"
)

// TransitionKey identifies one (state, symbol) cell of the transition
// function.
type TransitionKey struct {
	From  State
	Input Symbol
}

// TransitionFunction is a partial mapping from (state, symbol) pairs
// to the next state. It is mutable while a definition is assembled;
// an Automaton takes a private copy at construction, so the copy it
// owns never changes.
type TransitionFunction struct {
	table map[TransitionKey]State
}

// NewTransitionFunction returns an empty transition function.
func NewTransitionFunction() *TransitionFunction {
	return &TransitionFunction{table: make(map[TransitionKey]State)}
}

// Define records one mapping. Defining the same (from, input) pair
// twice overwrites the earlier target.
func (t *TransitionFunction) Define(from State, input Symbol, to State) {
	t.table[TransitionKey{From: from, Input: input}] = to
}

// Apply returns the mapped next state, or false if the pair is
// undefined. Undefinedness is not an error here; it only becomes one
// during execution.
func (t *TransitionFunction) Apply(from State, input Symbol) (State, bool) {
	to, ok := t.table[TransitionKey{From: from, Input: input}]
	return to, ok
}

// Size returns the number of defined mappings.
func (t *TransitionFunction) Size() int {
	return len(t.table)
}

// Keys returns the defined keys sorted by state, then symbol.
func (t *TransitionFunction) Keys() []TransitionKey {
	out := make([]TransitionKey, 0, len(t.table))
	for k := range t.table {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Input < out[j].Input
	})
	return out
}

func (t *TransitionFunction) clone() *TransitionFunction {
	table := make(map[TransitionKey]State, len(t.table))
	for k, v := range t.table {
		table[k] = v
	}
	return &TransitionFunction{table: table}
}

// validateTargets checks every mapped target against the declared
// state set. A target outside the set is fatal.
func (t *TransitionFunction) validateTargets(states StateSet) error {
	for _, k := range t.Keys() {
		to := t.table[k]
		if !states.Contains(to) {
			return &InvalidAutomatonError{Reason: fmt.Sprintf(
				"transition %s --%s--> %s: target %q is not a declared state",
				k.From, k.Input, to, string(to))}
		}
	}
	return nil
}

// missingPairs lists up to limit (state, symbol) pairs with no defined
// transition, in sorted order, plus the total count of missing pairs.
func (t *TransitionFunction) missingPairs(states StateSet, alphabet Alphabet, limit int) ([]TransitionKey, int) {
	var missing []TransitionKey
	total := 0
	for _, q := range states.States() {
		for _, s := range alphabet.Symbols() {
			if _, ok := t.table[TransitionKey{From: q, Input: s}]; ok {
				continue
			}
			total++
			if len(missing) < limit {
				missing = append(missing, TransitionKey{From: q, Input: s})
			}
		}
	}
	return missing, total
}
