// Package rterr defines the fatal error kinds surfaced by the runtime (§7):
// SyntaxError, PredictionFailure, InternalParseError, SemanticMappingError,
// and ValueConversionError. Each is an unexported struct with an exported
// constructor, following the tqerrors style of one terse Error() message;
// the composite SemanticMappingError also carries a wrapped cause, exposed
// through Unwrap. Each kind also follows
// tqerrors's other two conventions: a "Formatted" constructor variant for
// arg-style construction of its free-text detail, and a Human() method that
// renders a longer, rosed-tabulated diagnostic alongside the terse Error().
package rterr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
)

// humanTable renders rows as a headerless two-column rosed table, the
// shared rendering used by every kind's Human() method.
func humanTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	return rosed.
		Edit("").
		InsertTableOpts(0, rows, 100, rosed.Options{NoTrailingLineSeparators: true}).
		String()
}

type syntaxError struct {
	msg      string
	expected string
	found    string
	note     string
}

func (e *syntaxError) Error() string { return e.msg }

// Human renders expected/found (and any extra detail from SyntaxFormatted)
// as a table, for diagnostics longer than Error()'s terse line.
func (e *syntaxError) Human() string {
	rows := [][]string{{"expected", e.expected}, {"found", e.found}}
	if e.note != "" {
		rows = append(rows, []string{"detail", e.note})
	}
	return humanTable(rows)
}

// Syntax returns a new SyntaxError naming the expected terminal and the
// token actually found ("EOF" if the stream was exhausted).
func Syntax(expected, found string) error {
	return &syntaxError{
		msg:      fmt.Sprintf("expected %s, found %s", expected, found),
		expected: expected,
		found:    found,
	}
}

// SyntaxFormatted is Syntax plus an extra detail line, built from a format
// string and arguments, surfaced only through Human().
func SyntaxFormatted(expected, found string, detailFormat string, a ...any) error {
	e := Syntax(expected, found).(*syntaxError)
	e.note = fmt.Sprintf(detailFormat, a...)
	return e
}

type predictionFailure struct {
	msg         string
	nonTerminal string
	note        string
}

func (e *predictionFailure) Error() string { return e.msg }

func (e *predictionFailure) Human() string {
	rows := [][]string{{"non-terminal", e.nonTerminal}}
	if e.note != "" {
		rows = append(rows, []string{"detail", e.note})
	}
	return humanTable(rows)
}

// Prediction returns a new PredictionFailure naming the non-terminal whose
// lookahead DFA terminated without a production number.
func Prediction(nonTerminal string) error {
	return &predictionFailure{
		msg:         fmt.Sprintf("could not predict a production for %s", nonTerminal),
		nonTerminal: nonTerminal,
	}
}

// PredictionFormatted is Prediction plus an extra detail line, built from a
// format string and arguments, surfaced only through Human().
func PredictionFormatted(nonTerminal string, detailFormat string, a ...any) error {
	e := Prediction(nonTerminal).(*predictionFailure)
	e.note = fmt.Sprintf(detailFormat, a...)
	return e
}

type internalParseError struct {
	msg        string
	production string
	note       string
}

func (e *internalParseError) Error() string { return e.msg }

func (e *internalParseError) Human() string {
	rows := [][]string{{"production", e.production}}
	if e.note != "" {
		rows = append(rows, []string{"detail", e.note})
	}
	return humanTable(rows)
}

// InternalParse returns a new InternalParseError naming the production whose
// E-marker found the value stack under-run. Indicates a bug in the
// generated tables, not a property of the input.
func InternalParse(production string) error {
	return &internalParseError{
		msg:        fmt.Sprintf("value stack exhausted while reducing %s", production),
		production: production,
	}
}

// InternalParseFormatted is InternalParse plus an extra detail line, built
// from a format string and arguments, surfaced only through Human().
func InternalParseFormatted(production string, detailFormat string, a ...any) error {
	e := InternalParse(production).(*internalParseError)
	e.note = fmt.Sprintf(detailFormat, a...)
	return e
}

type semanticMappingError struct {
	msg           string
	production    string
	reason        string
	rawTypes      []string
	filteredTypes []string
	note          string
	wrap          error
}

func (e *semanticMappingError) Error() string { return e.msg }
func (e *semanticMappingError) Unwrap() error { return e.wrap }

func (e *semanticMappingError) Human() string {
	var rows [][]string
	if e.reason != "" {
		rows = append(rows, []string{"reason", e.reason})
	}
	if e.rawTypes != nil {
		rows = append(rows, []string{"raw children", strings.Join(e.rawTypes, ", ")})
	}
	if e.filteredTypes != nil {
		rows = append(rows, []string{"filtered children", strings.Join(e.filteredTypes, ", ")})
	}
	if e.note != "" {
		rows = append(rows, []string{"detail", e.note})
	}
	return humanTable(rows)
}

// SemanticMapping returns a new SemanticMappingError for a semantic action
// that rejected its children. This is the error a user action returns to
// signal that its children don't match what it expected; the parse driver
// detects this kind (via IsSemanticMapping) to decide whether a retry
// without token children is worth attempting.
func SemanticMapping(production, reason string) error {
	return &semanticMappingError{
		msg:        fmt.Sprintf("semantic action for %s rejected its children: %s", production, reason),
		production: production,
		reason:     reason,
	}
}

// SemanticMappingFormatted is SemanticMapping with its reason built from a
// format string and arguments.
func SemanticMappingFormatted(production string, reasonFormat string, a ...any) error {
	return SemanticMapping(production, fmt.Sprintf(reasonFormat, a...))
}

// SemanticMappingComposite returns the error surfaced when both the raw-
// children attempt and the filtered-children retry were rejected. Error()
// stays terse; Human() lists both child-type views. retryCause (the retry
// attempt's error) is chained as the wrapped cause.
func SemanticMappingComposite(production string, rawTypes, filteredTypes []string, retryCause error) error {
	return &semanticMappingError{
		msg:           fmt.Sprintf("semantic action for %s rejected both raw and filtered children", production),
		production:    production,
		rawTypes:      rawTypes,
		filteredTypes: filteredTypes,
		wrap:          retryCause,
	}
}

// SemanticMappingCompositeFormatted is SemanticMappingComposite plus an
// extra detail line, built from a format string and arguments, surfaced
// only through Human().
func SemanticMappingCompositeFormatted(production string, rawTypes, filteredTypes []string, retryCause error, detailFormat string, a ...any) error {
	e := SemanticMappingComposite(production, rawTypes, filteredTypes, retryCause).(*semanticMappingError)
	e.note = fmt.Sprintf(detailFormat, a...)
	return e
}

type valueConversionError struct {
	msg    string
	source string
	target string
	note   string
}

func (e *valueConversionError) Error() string { return e.msg }

func (e *valueConversionError) Human() string {
	rows := [][]string{{"source type", e.source}, {"target type", e.target}}
	if e.note != "" {
		rows = append(rows, []string{"detail", e.note})
	}
	return humanTable(rows)
}

// ValueConversion returns a new ValueConversionError naming the source value's
// type and the target type convert_to<T> was asked to produce.
func ValueConversion(source, target string) error {
	return &valueConversionError{
		msg:    fmt.Sprintf("cannot convert value of type %s to %s: no active converter configured", source, target),
		source: source,
		target: target,
	}
}

// ValueConversionFormatted is ValueConversion plus an extra detail line,
// built from a format string and arguments, surfaced only through Human().
func ValueConversionFormatted(source, target string, detailFormat string, a ...any) error {
	e := ValueConversion(source, target).(*valueConversionError)
	e.note = fmt.Sprintf(detailFormat, a...)
	return e
}

// IsSemanticMapping reports whether err is (or wraps, one level, a)
// SemanticMappingError — used by the parse driver to decide whether a
// semantic action's failure is eligible for the retry-without-tokens policy.
func IsSemanticMapping(err error) bool {
	if _, ok := err.(*semanticMappingError); ok {
		return true
	}
	if w, ok := err.(interface{ Unwrap() error }); ok {
		_, ok := w.Unwrap().(*semanticMappingError)
		return ok
	}
	return false
}

// humaner is implemented by every error kind this package constructs.
type humaner interface {
	Human() string
}

// Human returns the longer, rosed-tabulated diagnostic for err if it is one
// of this package's kinds, falling back to err.Error() for any other error —
// mirroring tqerrors's GameMessage dispatch.
func Human(err error) string {
	if h, ok := err.(humaner); ok {
		return h.Human()
	}
	return err.Error()
}
