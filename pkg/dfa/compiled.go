package dfa

// undefined marks an absent cell in the compiled transition table.
const undefined = -1

// Compiled is a dense, integer-indexed rendering of a validated
// automaton: sorted state and symbol index slices and a rectangular
// table of next-state indices. It trades the interpreted path's
// transition history for O(1) array lookups per step. Like the
// automaton it was compiled from, it is immutable and safe to share;
// its lifetime is independent of the source automaton.
type Compiled struct {
	states      []State
	symbols     []Symbol
	stateIndex  map[State]int
	symbolIndex map[Symbol]int
	table       [][]int
	initial     int
	final       []bool
	fingerprint uint64
}

// Compile builds the indexed representation of a. The automaton is
// already validated, so no checks are repeated here. Cost is
// O(states x symbols) in time and space.
func Compile(a *Automaton) *Compiled {
	states := a.states.States()
	symbols := a.alphabet.Symbols()

	c := &Compiled{
		states:      states,
		symbols:     symbols,
		stateIndex:  make(map[State]int, len(states)),
		symbolIndex: make(map[Symbol]int, len(symbols)),
		table:       make([][]int, len(states)),
		final:       make([]bool, len(states)),
		fingerprint: a.fingerprint,
	}
	for i, q := range states {
		c.stateIndex[q] = i
	}
	for j, s := range symbols {
		c.symbolIndex[s] = j
	}
	for i, q := range states {
		row := make([]int, len(symbols))
		for j, s := range symbols {
			if to, ok := a.delta.Apply(q, s); ok {
				row[j] = c.stateIndex[to]
			} else {
				row[j] = undefined
			}
		}
		c.table[i] = row
		c.final[i] = a.finals.Contains(q)
	}
	c.initial = c.stateIndex[a.initial]
	return c
}

// Run walks the table over input and returns the final state and
// whether it is accepting. It fails with the same error kind at the
// same input position as (*Automaton).Execute, but records no
// transition history.
func (c *Compiled) Run(input []Symbol) (State, bool, error) {
	cur := c.initial
	for i, sym := range input {
		j, ok := c.symbolIndex[sym]
		if !ok {
			return "", false, &InvalidInputError{Symbol: sym, Position: i}
		}
		next := c.table[cur][j]
		if next == undefined {
			return "", false, &InvalidTransitionError{State: c.states[cur], Symbol: sym, Position: i}
		}
		cur = next
	}
	return c.states[cur], c.final[cur], nil
}

// RunString splits s into single-rune symbols and runs them.
func (c *Compiled) RunString(s string) (State, bool, error) {
	return c.Run(SplitSymbols(s))
}

// StateCount returns the number of states in the table.
func (c *Compiled) StateCount() int { return len(c.states) }

// SymbolCount returns the number of symbols in the table.
func (c *Compiled) SymbolCount() int { return len(c.symbols) }

// Fingerprint returns the structural fingerprint of the automaton
// this table was compiled from.
func (c *Compiled) Fingerprint() uint64 { return c.fingerprint }
