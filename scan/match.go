package scan

import "github.com/dekarrin/llkrt/chars"

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Length returns End - Start.
func (s Span) Length() int {
	return s.End - s.Start
}

// Positions pairs the position of a match's first character with the
// position immediately after its last character.
type Positions struct {
	Start chars.Position
	End   chars.Position
}

// Match is the output unit of the match finder: the byte span it covers,
// the token type of the winning accept, and the positions the span starts
// and ends at.
type Match struct {
	Span      Span
	TokenType int
	Positions Positions
}

// Token is the output unit of the scanner façade: a Match together with
// the literal source text it covers.
type Token struct {
	Text      string
	TokenType int
	Match     Match
}

// Classify maps a character to a character-class index for DFA transition
// lookup. An absent result means no transition is possible from the
// current DFA state on this character, terminating DFA advancement (§4.3).
type Classify func(ch rune) (class int, ok bool)
