// Package predict implements the prediction engine (§4.7): choosing which
// production to expand a non-terminal into, given up to K tokens of
// lookahead peeked (never consumed) from a token stream.
package predict

import (
	"github.com/dekarrin/llkrt/rterr"
	"github.com/dekarrin/llkrt/tables"
)

// Peeker is the subset of tokstream.Stream that prediction needs: peeking
// ahead without consuming. token_type is reported as 0 (the EOF encoding)
// when the stream has no token at that position.
type Peeker interface {
	// PeekTokenType returns the token type at lookahead position i, or 0
	// (EOF) if the stream doesn't have a token there.
	PeekTokenType(i int) int
}

// Predict runs §4.7's algorithm: it walks dfa against up to dfa.K tokens
// peeked from stream, returning the production number to expand nonTerminal
// into. nonTerminalName is used only to build a diagnostic error if no
// production number can be determined.
func Predict(nonTerminalName string, dfa tables.LookaheadDFA, stream Peeker) (int, error) {
	if len(dfa.Transitions) == 0 {
		return dfa.DefaultProduction, nil
	}

	state := 0
	prod := dfa.DefaultProduction
	lastValidProd := -1

	for i := 0; i < dfa.K; i++ {
		term := stream.PeekTokenType(i)

		toState, prodNum, found := findTransition(dfa, state, term)
		if !found {
			break
		}

		state = toState
		prod = prodNum
		if prodNum >= 0 {
			lastValidProd = prodNum
		}
	}

	if prod >= 0 {
		return prod, nil
	}
	if lastValidProd >= 0 {
		return lastValidProd, nil
	}
	return 0, rterr.Prediction(nonTerminalName)
}

// findTransition returns the first transition in dfa whose FromState and
// TermType match, per §4.7 step 3's "first transition" rule.
func findTransition(dfa tables.LookaheadDFA, fromState, term int) (toState, prodNum int, found bool) {
	for _, t := range dfa.Transitions {
		if t.FromState == fromState && t.TermType == term {
			return t.ToState, t.ProdNumber, true
		}
	}
	return 0, 0, false
}
