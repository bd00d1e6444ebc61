package dfa

// TransitionRecord is one step of an interpreted execution.
type TransitionRecord struct {
	From  State
	Input Symbol
	To    State
}

// Result is the outcome of one execution. Every call to Execute
// allocates a fresh Result owned by the caller.
type Result struct {
	FinalState State
	Accepted   bool
	Steps      []TransitionRecord
}

// Execute walks the automaton over input starting from the initial
// state, recording every transition taken.
//
// A symbol outside the alphabet fails with *InvalidInputError; an
// undefined transition fails with *InvalidTransitionError. Both carry
// the zero-based input position. Empty input performs zero transitions
// and reports the initial state.
func (a *Automaton) Execute(input []Symbol) (*Result, error) {
	current := a.initial
	steps := make([]TransitionRecord, 0, len(input))

	for i, sym := range input {
		if !a.alphabet.Contains(sym) {
			return nil, &InvalidInputError{Symbol: sym, Position: i}
		}
		next, ok := a.delta.Apply(current, sym)
		if !ok {
			return nil, &InvalidTransitionError{State: current, Symbol: sym, Position: i}
		}
		steps = append(steps, TransitionRecord{From: current, Input: sym, To: next})
		current = next
	}

	return &Result{
		FinalState: current,
		Accepted:   a.finals.Contains(current),
		Steps:      steps,
	}, nil
}

// ExecuteString splits s into single-rune symbols and executes them.
func (a *Automaton) ExecuteString(s string) (*Result, error) {
	return a.Execute(SplitSymbols(s))
}

// SplitSymbols turns a string into a sequence of single-rune symbols.
func SplitSymbols(s string) []Symbol {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}
