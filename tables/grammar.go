package tables

import "fmt"

// ParseItemKind discriminates the four shapes a ParseItem may take on a
// production's right-hand side (or, for Production, the synthetic
// end-of-production marker pushed alongside it).
type ParseItemKind int

const (
	// Term is a terminal: matched, consumed, and its token value is pushed
	// onto the value stack.
	Term ParseItemKind = iota
	// ClippedTerm is a terminal that is matched and consumed but whose
	// token is NOT pushed onto the value stack.
	ClippedTerm
	// NonTerm expands into one of the productions of NonTermIndex via
	// prediction.
	NonTerm
	// EndOfProd is the synthetic marker whose pop triggers evaluation of
	// ProdIndex's semantic action.
	EndOfProd
)

func (k ParseItemKind) String() string {
	switch k {
	case Term:
		return "T"
	case ClippedTerm:
		return "C"
	case NonTerm:
		return "N"
	case EndOfProd:
		return "E"
	default:
		return fmt.Sprintf("ParseItemKind(%d)", int(k))
	}
}

// ParseItem is a discriminated union over the four item kinds a
// production's right-hand side is built from. Only the field matching Kind
// is meaningful.
type ParseItem struct {
	Kind ParseItemKind

	TermIndex    int // valid when Kind == Term or Kind == ClippedTerm
	NonTermIndex int // valid when Kind == NonTerm
	ProdIndex    int // valid when Kind == EndOfProd
}

// T constructs a terminal ParseItem.
func T(termIndex int) ParseItem { return ParseItem{Kind: Term, TermIndex: termIndex} }

// C constructs a clipped-terminal ParseItem.
func C(termIndex int) ParseItem { return ParseItem{Kind: ClippedTerm, TermIndex: termIndex} }

// N constructs a non-terminal ParseItem.
func N(nonTermIndex int) ParseItem { return ParseItem{Kind: NonTerm, NonTermIndex: nonTermIndex} }

// E constructs an end-of-production marker ParseItem.
func E(prodIndex int) ParseItem { return ParseItem{Kind: EndOfProd, ProdIndex: prodIndex} }

// IsClipped reports whether the item consumes a terminal without
// contributing a value to the value stack.
func (pi ParseItem) IsClipped() bool {
	return pi.Kind == ClippedTerm
}

// Production is one alternative of a non-terminal: its left-hand side and
// an ordered right-hand side of ParseItems (terminals, clipped terminals,
// and nested non-terminals — never an EndOfProd item; that marker is
// synthesized by the parse driver when it expands a NonTerm, not stored in
// the production itself).
type Production struct {
	LHS int
	RHS []ParseItem
}

// ChildCount returns the number of RHS items that contribute a value to the
// value stack, i.e. every item whose Kind is not ClippedTerm.
func (p Production) ChildCount() int {
	n := 0
	for _, item := range p.RHS {
		if !item.IsClipped() {
			n++
		}
	}
	return n
}

// LookaheadTransition is one edge of a non-terminal's lookahead DFA:
// reading TermType while in FromState moves to ToState, and — if
// ProdNumber is non-negative — commits to that production number.
type LookaheadTransition struct {
	FromState  int
	TermType   int
	ToState    int
	ProdNumber int
}

// LookaheadDFA selects a production number for one non-terminal given up to
// K tokens of lookahead (§4.7). State 0 is initial. If Transitions is
// empty, DefaultProduction is always selected without consulting the token
// stream.
type LookaheadDFA struct {
	DefaultProduction int
	Transitions       []LookaheadTransition
	K                 int
}

// Grammar is the complete, immutable set of tables a generator emits for
// one grammar: its productions, the per-non-terminal lookahead DFAs, the
// scanner's modes, and the name tables used purely for diagnostics.
type Grammar struct {
	StartSymbol int

	Productions []Production

	// LookaheadAutomata is indexed by non-terminal index.
	LookaheadAutomata []LookaheadDFA

	Modes []ScannerMode

	// TerminalNames and NonTerminalNames are optional; when present they
	// are used to render human-readable diagnostics (§7), and Validate
	// takes len(TerminalNames) as the terminal count for its range checks.
	// The parse itself never consults them.
	TerminalNames    []string
	NonTerminalNames []string
}

// TerminalName returns the diagnostic name for a terminal index, falling
// back to a numeric rendering if TerminalNames wasn't supplied or doesn't
// cover the index.
func (g Grammar) TerminalName(termIndex int) string {
	if termIndex >= 0 && termIndex < len(g.TerminalNames) {
		return g.TerminalNames[termIndex]
	}
	return fmt.Sprintf("terminal#%d", termIndex)
}

// NonTerminalName returns the diagnostic name for a non-terminal index,
// falling back to a numeric rendering.
func (g Grammar) NonTerminalName(nonTermIndex int) string {
	if nonTermIndex >= 0 && nonTermIndex < len(g.NonTerminalNames) {
		return g.NonTerminalNames[nonTermIndex]
	}
	return fmt.Sprintf("non-terminal#%d", nonTermIndex)
}

// Validate checks the invariants spec.md's data model section requires of
// a Grammar before it is handed to a parse driver: every terminal index
// referenced by a ParseItem is in range, every production index referenced
// by an EndOfProd marker or lookahead transition is in range, and every
// non-terminal has a lookahead automaton. It does not check reachability
// or ambiguity — those are generator-time concerns, out of scope for the
// runtime (§1).
func (g Grammar) Validate() error {
	numTerms := len(g.TerminalNames)
	for pi, p := range g.Productions {
		for _, item := range p.RHS {
			switch item.Kind {
			case Term, ClippedTerm:
				if numTerms > 0 && (item.TermIndex < 0 || item.TermIndex >= numTerms) {
					return fmt.Errorf("production %d: terminal index %d out of range", pi, item.TermIndex)
				}
			case NonTerm:
				if item.NonTermIndex < 0 || item.NonTermIndex >= len(g.LookaheadAutomata) {
					return fmt.Errorf("production %d: non-terminal index %d has no lookahead automaton", pi, item.NonTermIndex)
				}
			}
		}
	}

	for n, dfa := range g.LookaheadAutomata {
		if dfa.DefaultProduction >= len(g.Productions) {
			return fmt.Errorf("non-terminal %d: default production %d out of range", n, dfa.DefaultProduction)
		}
		for _, t := range dfa.Transitions {
			if t.ProdNumber >= len(g.Productions) {
				return fmt.Errorf("non-terminal %d: lookahead transition names production %d out of range", n, t.ProdNumber)
			}
		}
	}

	if g.StartSymbol < 0 || g.StartSymbol >= len(g.LookaheadAutomata) {
		return fmt.Errorf("start symbol %d has no lookahead automaton", g.StartSymbol)
	}

	return nil
}
