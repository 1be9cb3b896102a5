package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
)

// String renders the DFA as a state/transition table, for debugging only —
// never consulted by the match finder.
func (d DFA) String() string {
	data := [][]string{{"state", "transitions", "accepts"}}

	for i, s := range d.States {
		var transParts []string
		for class, t := range s.Transitions {
			if t.Present {
				transParts = append(transParts, fmt.Sprintf("%d->%d", class, t.Target))
			}
		}
		transCell := "-"
		if len(transParts) > 0 {
			transCell = strings.Join(transParts, ", ")
		}

		var acceptParts []string
		for _, a := range s.Accept {
			acceptParts = append(acceptParts, fmt.Sprintf("tt=%d/prio=%d/%s", a.TokenType, a.Priority, a.Lookahead.Kind))
		}
		acceptCell := "-"
		if len(acceptParts) > 0 {
			acceptCell = strings.Join(acceptParts, ", ")
		}

		data = append(data, []string{strconv.Itoa(i), transCell, acceptCell})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// String renders the grammar's productions as a table, for debugging only.
// Lookahead automata and scanner modes are not included.
func (g Grammar) String() string {
	data := [][]string{{"prod#", "lhs", "rhs"}}

	for i, p := range g.Productions {
		var rhsParts []string
		for _, item := range p.RHS {
			switch item.Kind {
			case Term:
				rhsParts = append(rhsParts, fmt.Sprintf("T(%s)", g.TerminalName(item.TermIndex)))
			case ClippedTerm:
				rhsParts = append(rhsParts, fmt.Sprintf("C(%s)", g.TerminalName(item.TermIndex)))
			case NonTerm:
				rhsParts = append(rhsParts, fmt.Sprintf("N(%s)", g.NonTerminalName(item.NonTermIndex)))
			}
		}
		rhsCell := "ε"
		if len(rhsParts) > 0 {
			rhsCell = strings.Join(rhsParts, " ")
		}
		data = append(data, []string{strconv.Itoa(i), g.NonTerminalName(p.LHS), rhsCell})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
