// Package rtparse implements the parse driver (§4.8): the two-stack
// machine that expands a start symbol against a token stream, driven by a
// grammar's productions and lookahead automata, dispatching semantic
// actions as each production reduces.
package rtparse

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/dekarrin/llkrt/predict"
	"github.com/dekarrin/llkrt/rterr"
	"github.com/dekarrin/llkrt/scan"
	"github.com/dekarrin/llkrt/tables"
	"github.com/dekarrin/llkrt/tokstream"
)

// UserActions is the generator-supplied binding between productions and
// semantic values (§6). CallSemanticAction reduces production prodNumber
// given its already-popped children (in left-to-right RHS order) into one
// value to push back onto the value stack. OnComment is part of the
// binding's method set, but nothing in this module calls it: the scanner
// drops trivia tokens before they reach the token stream, and the driver
// never sees them.
type UserActions interface {
	CallSemanticAction(prodNumber int, children []any) (any, error)
	OnComment(token scan.Token)
}

// Trace, if non-nil, is invoked once per parse-stack item popped, before it
// is acted on. It is a supplemental debugging hook, not part of §4.8's
// algorithm: a nil Trace costs nothing and changes no observable behavior.
type Trace func(item tables.ParseItem)

// Driver runs one parse of a token stream against a grammar.
type Driver struct {
	grammar tables.Grammar
	actions UserActions

	// Trace, if set, is called with every parse-stack item as it's popped.
	Trace Trace
}

// New builds a Driver for grammar, dispatching semantic actions to actions.
func New(grammar tables.Grammar, actions UserActions) *Driver {
	return &Driver{grammar: grammar, actions: actions}
}

// Parse runs the two-stack machine of §4.8 to completion, returning the
// single value left after the start symbol's production tree has fully
// reduced.
func (d *Driver) Parse(stream *tokstream.Stream) (any, error) {
	parseStack := arraystack.New()
	valueStack := arraystack.New()

	parseStack.Push(tables.N(d.grammar.StartSymbol))

	var result any

	for !parseStack.Empty() {
		raw, _ := parseStack.Pop()
		item := raw.(tables.ParseItem)

		if d.Trace != nil {
			d.Trace(item)
		}

		switch item.Kind {
		case tables.Term, tables.ClippedTerm:
			tok, ok := stream.Peek(0)
			expectedName := d.grammar.TerminalName(item.TermIndex)
			if !ok {
				return nil, rterr.Syntax(expectedName, "EOF")
			}
			if tok.TokenType != item.TermIndex {
				return nil, rterr.Syntax(expectedName, d.grammar.TerminalName(tok.TokenType))
			}
			stream.Consume()
			if item.Kind == tables.Term {
				valueStack.Push(tok)
			}

		case tables.NonTerm:
			nonTermName := d.grammar.NonTerminalName(item.NonTermIndex)
			dfa := d.grammar.LookaheadAutomata[item.NonTermIndex]

			p, err := predict.Predict(nonTermName, dfa, stream)
			if err != nil {
				return nil, err
			}

			parseStack.Push(tables.E(p))
			rhs := d.grammar.Productions[p].RHS
			for i := len(rhs) - 1; i >= 0; i-- {
				parseStack.Push(rhs[i])
			}

		case tables.EndOfProd:
			prod := d.grammar.Productions[item.ProdIndex]
			childCount := prod.ChildCount()

			children := make([]any, childCount)
			for i := childCount - 1; i >= 0; i-- {
				v, ok := valueStack.Pop()
				if !ok {
					return nil, rterr.InternalParse(d.productionLabel(item.ProdIndex))
				}
				children[i] = v
			}

			value, err := d.reduce(item.ProdIndex, children)
			if err != nil {
				return nil, err
			}
			valueStack.Push(value)
			result = value
		}
	}

	return result, nil
}

// reduce dispatches a production's semantic action with the retry policy of
// §4.8: a SemanticMappingError is retried once with token-typed children
// filtered out, provided both kinds are actually present; any other failure
// (or a repeat SemanticMappingError on retry) is surfaced, the latter as a
// composite naming both child-type views.
func (d *Driver) reduce(prodNumber int, children []any) (any, error) {
	value, err := d.actions.CallSemanticAction(prodNumber, children)
	if err == nil {
		return value, nil
	}
	if !rterr.IsSemanticMapping(err) {
		return nil, err
	}

	filtered := filterTokens(children)
	if len(filtered) == len(children) || len(filtered) == 0 {
		// nothing to filter, or nothing left after filtering: retry can't
		// possibly do anything the first attempt didn't already try.
		return nil, err
	}

	retryValue, retryErr := d.actions.CallSemanticAction(prodNumber, filtered)
	if retryErr == nil {
		return retryValue, nil
	}

	return nil, rterr.SemanticMappingComposite(
		d.productionLabel(prodNumber),
		typeNames(children),
		typeNames(filtered),
		retryErr,
	)
}

// filterTokens returns the subset of children that are not scan.Token
// values, preserving order.
func filterTokens(children []any) []any {
	var out []any
	for _, c := range children {
		if _, isToken := c.(scan.Token); isToken {
			continue
		}
		out = append(out, c)
	}
	return out
}

// typeNames renders each child's dynamic type name for diagnostics.
func typeNames(children []any) []string {
	names := make([]string, len(children))
	for i, c := range children {
		if c == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = reflect.TypeOf(c).String()
	}
	return names
}

// productionLabel renders a production number as its left-hand side's
// diagnostic name, falling back to a numeric rendering if the number is out
// of range.
func (d *Driver) productionLabel(prodNumber int) string {
	if prodNumber < 0 || prodNumber >= len(d.grammar.Productions) {
		return fmt.Sprintf("production#%d", prodNumber)
	}
	prod := d.grammar.Productions[prodNumber]
	return d.grammar.NonTerminalName(prod.LHS)
}
