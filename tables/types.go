// Package tables holds the immutable data model a generator emits and the
// runtime consumes: productions, lookahead DFAs, scanner-mode DFAs, and the
// grammar that ties them together. Nothing in this package is ever mutated
// after construction; Grammar and DFA values may be shared freely across
// concurrent parses (see the concurrency notes on the runtime packages).
package tables

import "fmt"

// LookaheadKind discriminates the three lookahead shapes an AcceptData may
// carry.
type LookaheadKind int

const (
	// LookaheadNone means the accept has no further constraint.
	LookaheadNone LookaheadKind = iota
	// LookaheadPositive means the accept is valid only if SubDFA also
	// matches starting at the position immediately after the candidate.
	LookaheadPositive
	// LookaheadNegative means the accept is valid only if SubDFA does NOT
	// match starting at the position immediately after the candidate.
	LookaheadNegative
)

func (k LookaheadKind) String() string {
	switch k {
	case LookaheadNone:
		return "none"
	case LookaheadPositive:
		return "positive"
	case LookaheadNegative:
		return "negative"
	default:
		return fmt.Sprintf("LookaheadKind(%d)", int(k))
	}
}

// Lookahead is the zero-width constraint attached to an AcceptData.
type Lookahead struct {
	Kind   LookaheadKind
	SubDFA *DFA // nil when Kind is LookaheadNone
}

// AcceptData describes one possible accept at a DFA state. A state's
// AcceptData list is evaluated in order; the first entry whose Lookahead is
// satisfied wins (see scan.MatchFinder). Priority only breaks ties between
// two candidate matches of equal span length encountered at different
// points in the scan, never between two accepts in the same list for the
// same end state.
type AcceptData struct {
	TokenType int
	Priority  int
	Lookahead Lookahead
}

// Transition is one outgoing edge of a DFAState, keyed externally by
// character-class index in DFAState.Transitions.
type Transition struct {
	Target  int
	Present bool
}

// DFAState is one state of a DFA: a dense, class-index-keyed transition
// table plus an ordered list of possible accepts.
type DFAState struct {
	// Transitions is indexed by character-class index. An absent slot
	// (zero value, Present == false) means no transition on that class.
	Transitions []Transition
	Accept      []AcceptData
}

// Copy returns a duplicate of the state with its own backing arrays, so
// mutating the copy (e.g. during table construction) never aliases the
// original.
func (s DFAState) Copy() DFAState {
	cp := DFAState{
		Transitions: make([]Transition, len(s.Transitions)),
		Accept:      make([]AcceptData, len(s.Accept)),
	}
	copy(cp.Transitions, s.Transitions)
	copy(cp.Accept, s.Accept)
	return cp
}

// DFA is a deterministic finite automaton over character-class indices.
// State 0 is always the initial state.
type DFA struct {
	States []DFAState
}

// Copy returns a deep duplicate of the DFA.
func (d DFA) Copy() DFA {
	cp := DFA{States: make([]DFAState, len(d.States))}
	for i, s := range d.States {
		cp.States[i] = s.Copy()
	}
	return cp
}

// ModeActionKind discriminates the three effects a scanner mode transition
// can have on the scanner context's mode stack.
type ModeActionKind int

const (
	ModeActionNone ModeActionKind = iota
	ModeSetMode
	ModePushMode
	ModePopMode
)

// ModeAction is the effect applied to a ScannerContext when a given token
// type is matched in a given mode. Target is meaningful only for
// ModeSetMode and ModePushMode.
type ModeAction struct {
	Kind   ModeActionKind
	Target int
}

// ModeTransition binds a token type, within one mode, to the action taken
// when a match of that type is accepted.
type ModeTransition struct {
	TokenType int
	Action    ModeAction
}

// ScannerMode is one state of the scanner's mode machine: a name (used only
// for diagnostics), the mode transitions effective while this mode is
// active, and the DFA driven while this mode is active.
type ScannerMode struct {
	Name            string
	ModeTransitions []ModeTransition
	DFA             DFA
}
