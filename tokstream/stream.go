// Package tokstream provides a buffered k-lookahead view over a lazily
// produced token sequence (§4.6), the layer the prediction engine and
// parse driver consult between the scanner and the parse stack machine.
package tokstream

import "github.com/dekarrin/llkrt/scan"

// Source is the lazy producer a Stream pulls from: the same shape as
// scan.Scanner.Next, so a Stream is normally built directly over a
// scan.Scanner, but can be built over any token-producing function (tests
// use this to stub canned token sequences).
type Source func() (scan.Token, bool)

// Stream wraps a Source in a buffer, exposing k-lookahead without
// requiring the whole token sequence to be realized up front.
type Stream struct {
	source    Source
	buf       []scan.Token
	exhausted bool
}

// New builds a Stream pulling from source.
func New(source Source) *Stream {
	return &Stream{source: source}
}

// FromScanner builds a Stream directly over a scan.Scanner.
func FromScanner(s *scan.Scanner) *Stream {
	return New(s.Next)
}

// fill pulls from the underlying source until the buffer holds more than k
// tokens or the source is exhausted. Once exhausted is set, the source is
// never queried again.
func (s *Stream) fill(k int) {
	for !s.exhausted && len(s.buf) <= k {
		tok, ok := s.source()
		if !ok {
			s.exhausted = true
			break
		}
		s.buf = append(s.buf, tok)
	}
}

// Peek returns the token k positions ahead of the stream's current
// position without consuming anything (Peek(0) is the next token to be
// consumed). The second return is false if the stream doesn't have that
// many tokens remaining.
func (s *Stream) Peek(k int) (scan.Token, bool) {
	s.fill(k)
	if k < 0 || k >= len(s.buf) {
		return scan.Token{}, false
	}
	return s.buf[k], true
}

// Consume returns and removes the head of the buffer, pulling one token
// from the underlying source first if the buffer is currently empty.
func (s *Stream) Consume() (scan.Token, bool) {
	if len(s.buf) == 0 {
		s.fill(0)
	}
	if len(s.buf) == 0 {
		return scan.Token{}, false
	}
	tok := s.buf[0]
	s.buf = s.buf[1:]
	return tok, true
}

// PeekTokenType returns the token type at lookahead position k, or 0 (the
// EOF encoding used by lookahead DFAs, §6) if the stream has no token
// there. It satisfies predict.Peeker.
func (s *Stream) PeekTokenType(k int) int {
	tok, ok := s.Peek(k)
	if !ok {
		return 0
	}
	return tok.TokenType
}

// IsEOF reports whether the underlying source is exhausted and the buffer
// is empty — i.e. there is nothing left to Peek or Consume.
func (s *Stream) IsEOF() bool {
	s.fill(0)
	return s.exhausted && len(s.buf) == 0
}
