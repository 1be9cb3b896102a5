package llkrt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/llkrt/rtparse"
	"github.com/dekarrin/llkrt/scan"
	"github.com/dekarrin/llkrt/tables"
	"github.com/dekarrin/llkrt/tokstream"
)

// identPlusGrammar builds the tables for a minimal right-recursive grammar:
//
//	Expr     -> IDENT ExprTail
//	ExprTail -> '+' IDENT ExprTail | ε
//
// exercising every ParseItem kind (T, C, N, and the synthetic E marker) plus
// a one-token-lookahead non-terminal decision, end to end through scan,
// tokstream, predict, and rtparse.
func identPlusGrammar() tables.Grammar {
	const (
		termEOF   = 0
		termIdent = 1
		termPlus  = 2
	)

	dfa := tables.DFA{
		States: []tables.DFAState{
			{Transitions: []tables.Transition{{Target: 1, Present: true}, {Target: 2, Present: true}}},
			{Accept: []tables.AcceptData{{TokenType: termIdent, Priority: 0}}},
			{Accept: []tables.AcceptData{{TokenType: termPlus, Priority: 0}}},
		},
	}
	modes := []tables.ScannerMode{{Name: "default", DFA: dfa}}

	grammar := tables.Grammar{
		StartSymbol: 0, // Expr
		Productions: []tables.Production{
			{LHS: 0, RHS: []tables.ParseItem{tables.T(termIdent), tables.N(1)}},                  // 0: Expr -> IDENT ExprTail
			{LHS: 1, RHS: []tables.ParseItem{tables.C(termPlus), tables.T(termIdent), tables.N(1)}}, // 1: ExprTail -> '+' IDENT ExprTail
			{LHS: 1, RHS: []tables.ParseItem{}},                                                    // 2: ExprTail -> ε
		},
		LookaheadAutomata: []tables.LookaheadDFA{
			{DefaultProduction: 0}, // Expr: only one production
			{
				DefaultProduction: 2, // ExprTail -> ε unless '+' follows
				K:                 1,
				Transitions: []tables.LookaheadTransition{
					{FromState: 0, TermType: termPlus, ToState: 1, ProdNumber: 1},
				},
			},
		},
		TerminalNames:    []string{"EOF", "IDENT", "PLUS"},
		NonTerminalNames: []string{"Expr", "ExprTail"},
		Modes:            modes,
	}

	return grammar
}

// identListActions collects the IDENT tokens of a parse, in left-to-right
// order, into a []string.
type identListActions struct{}

func (identListActions) CallSemanticAction(prodNumber int, children []any) (any, error) {
	switch prodNumber {
	case 0: // Expr -> IDENT ExprTail
		ident := children[0].(scan.Token)
		tail := children[1].([]string)
		return append([]string{ident.Text}, tail...), nil
	case 1: // ExprTail -> '+' IDENT ExprTail  (the '+' is clipped, absent here)
		ident := children[0].(scan.Token)
		tail := children[1].([]string)
		return append([]string{ident.Text}, tail...), nil
	case 2: // ExprTail -> ε
		return []string{}, nil
	}
	panic("unreachable production")
}

func (identListActions) OnComment(scan.Token) {}

func parseIdentList(t *testing.T, input string) []string {
	t.Helper()
	grammar := identPlusGrammar()

	classify := func(ch rune) (int, bool) {
		switch {
		case ch == '+':
			return 1, true
		case ch >= 'a' && ch <= 'z':
			return 0, true
		default:
			return 0, false
		}
	}

	assert.NoError(t, grammar.Validate())

	scanner := scan.Scan(input, "", classify, grammar.Modes, map[int]bool{}) // no trivia in this tiny grammar
	stream := tokstream.FromScanner(scanner)

	driver := rtparse.New(grammar, identListActions{})
	result, err := driver.Parse(stream)
	assert.NoError(t, err)

	return result.([]string)
}

// Test_EndToEnd_IdentPlusList exercises the full scan -> tokstream ->
// predict -> rtparse pipeline against a small right-recursive grammar.
func Test_EndToEnd_IdentPlusList(t *testing.T) {
	assert := assert.New(t)
	got := parseIdentList(t, "a+b+c")
	assert.Equal([]string{"a", "b", "c"}, got)
}

func Test_EndToEnd_SingleIdent(t *testing.T) {
	assert := assert.New(t)
	got := parseIdentList(t, "a")
	assert.Equal([]string{"a"}, got)
}

// Test_EndToEnd_Determinism covers spec.md §8 universal property 1: two
// parses of the same input with the same (pure) actions produce identical
// output.
func Test_EndToEnd_Determinism(t *testing.T) {
	assert := assert.New(t)
	first := parseIdentList(t, "a+b+c+d")
	second := parseIdentList(t, "a+b+c+d")
	assert.Equal(first, second)
}
