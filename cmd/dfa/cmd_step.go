package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ha1tch/dfakit/pkg/dfa"
)

func newStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step <file>",
		Short: "Step through an automaton interactively",
		Long: `Step through an automaton interactively in a terminal UI.

Type a symbol to take a transition: single-character symbols feed
immediately, multi-character symbols are typed and confirmed with
Enter. Ctrl-R resets to the initial state, Esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, def, err := loadAutomaton(args[0])
			if err != nil {
				return err
			}
			name := def.Name
			if name == "" {
				name = args[0]
			}
			return runStepper(a, name)
		},
	}
}

var (
	styleStepDefault = tcell.StyleDefault
	styleStepTitle   = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleStepState   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStepAccept  = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleStepHistory = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStepError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStepHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStepInput   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// stepper holds the interactive session state. The automaton itself
// stays untouched; only the cursor and history live here.
type stepper struct {
	screen  tcell.Screen
	a       *dfa.Automaton
	delta   *dfa.TransitionFunction
	name    string
	current dfa.State
	steps   []dfa.TransitionRecord
	entry   string
	message string
}

func runStepper(a *dfa.Automaton, name string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	st := &stepper{
		screen:  screen,
		a:       a,
		delta:   a.Transitions(),
		name:    name,
		current: a.InitialState(),
	}

	for {
		st.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !st.handleKey(ev) {
				return nil
			}
		}
	}
}

func (st *stepper) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlR:
		st.current = st.a.InitialState()
		st.steps = nil
		st.entry = ""
		st.message = "Reset to initial state"
	case tcell.KeyEnter:
		if st.entry != "" {
			st.feed(dfa.Symbol(st.entry))
			st.entry = ""
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(st.entry) > 0 {
			st.entry = st.entry[:len(st.entry)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		sym := dfa.Symbol(string(r))
		if st.entry == "" && st.a.Alphabet().Contains(sym) {
			st.feed(sym)
		} else {
			st.entry += string(r)
		}
	}
	return true
}

func (st *stepper) feed(sym dfa.Symbol) {
	pos := len(st.steps)
	if !st.a.Alphabet().Contains(sym) {
		st.message = (&dfa.InvalidInputError{Symbol: sym, Position: pos}).Error()
		return
	}
	next, ok := st.delta.Apply(st.current, sym)
	if !ok {
		st.message = (&dfa.InvalidTransitionError{State: st.current, Symbol: sym, Position: pos}).Error()
		return
	}
	st.steps = append(st.steps, dfa.TransitionRecord{From: st.current, Input: sym, To: next})
	st.current = next
	st.message = ""
}

func (st *stepper) draw() {
	st.screen.Clear()
	w, h := st.screen.Size()

	drawText(st.screen, 0, 0, styleStepTitle, truncate(fmt.Sprintf("dfa step: %s", st.name), w))

	stateStyle := styleStepState
	status := fmt.Sprintf("State: %s", st.current)
	if st.a.IsFinal(st.current) {
		status += " [accepting]"
		stateStyle = styleStepAccept
	}
	drawText(st.screen, 0, 2, stateStyle, truncate(status, w))
	drawText(st.screen, 0, 3, styleStepDefault,
		truncate(fmt.Sprintf("Alphabet: %v", st.a.Alphabet().Symbols()), w))

	historyTop := 5
	drawText(st.screen, 0, historyTop, styleStepDefault, "History:")
	visible := h - historyTop - 5
	if visible < 0 {
		visible = 0
	}
	start := 0
	if len(st.steps) > visible {
		start = len(st.steps) - visible
	}
	for i := start; i < len(st.steps); i++ {
		step := st.steps[i]
		line := fmt.Sprintf("  %d: %s --%s--> %s", i+1, step.From, step.Input, step.To)
		drawText(st.screen, 0, historyTop+1+i-start, styleStepHistory, truncate(line, w))
	}

	drawText(st.screen, 0, h-3, styleStepInput, truncate("> "+st.entry, w))
	if st.message != "" {
		drawText(st.screen, 0, h-2, styleStepError, truncate(st.message, w))
	}
	drawText(st.screen, 0, h-1, styleStepHelp,
		truncate("type symbol (Enter to confirm multi-char) | Ctrl-R reset | Esc quit", w))

	st.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, w int) string {
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w <= 0 {
		return ""
	}
	return string(runes[:w])
}
