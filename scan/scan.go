package scan

import (
	"github.com/dekarrin/llkrt/chars"
	"github.com/dekarrin/llkrt/tables"
)

// DefaultTrivia is the hard-wired set of token types the scanner façade
// drops before emission: whitespace/comments/etc. (§6, §9). Callers may
// override it via Scan's trivia parameter; passing nil keeps this default.
func DefaultTrivia() map[int]bool {
	return map[int]bool{1: true, 2: true, 3: true, 4: true}
}

// Scanner drives the match finder over a complete input, applying scanner
// mode transitions and trivia filtering, to produce a lazy sequence of
// Tokens (§4.5). Construct with Scan.
type Scanner struct {
	input    string
	fileName string
	it       *chars.Iterator
	ctx      *Context
	finder   *MatchFinder
	trivia   map[int]bool
}

// Scan builds a Scanner over input. fileName is accepted for diagnostic
// symmetry with the rest of the toolchain but is never read by the core
// (an intentional open question left unresolved — see DESIGN.md). modes
// must be non-empty; scanning always begins in modes[0]. trivia may be nil,
// in which case DefaultTrivia is used.
func Scan(input string, fileName string, classify Classify, modes []tables.ScannerMode, trivia map[int]bool) *Scanner {
	if trivia == nil {
		trivia = DefaultTrivia()
	}
	it := chars.New(input)
	return &Scanner{
		input:    input,
		fileName: fileName,
		it:       it,
		ctx:      NewContext(modes),
		finder:   NewMatchFinder(it, classify),
		trivia:   trivia,
	}
}

// FileName returns the name this Scanner was constructed with.
func (s *Scanner) FileName() string {
	return s.fileName
}

// Next returns the next non-trivia Token, or false once the input is
// exhausted. Characters not recognized by any DFA state are silently
// skipped one at a time (§4.4 "Progress on no-match") — an observable gap
// between the surrounding matches' spans, not an error.
func (s *Scanner) Next() (Token, bool) {
	for {
		if s.it.AtEOF() {
			return Token{}, false
		}

		m, ok := s.finder.FindNext(s.ctx.CurrentDFA())
		if !ok {
			if _, advanced := s.it.Next(); !advanced {
				return Token{}, false
			}
			continue
		}

		s.ctx.HandleModeTransition(m.TokenType)

		if s.trivia[m.TokenType] {
			continue
		}

		return Token{
			Text:      s.input[m.Span.Start:m.Span.End],
			TokenType: m.TokenType,
			Match:     m,
		}, true
	}
}

// All drains the Scanner into a slice, for tests and small inputs. Callers
// feeding a parse driver should instead wire Next directly into
// tokstream.New so large inputs are never buffered in full.
func (s *Scanner) All() []Token {
	var out []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
