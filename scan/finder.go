package scan

import (
	"github.com/dekarrin/llkrt/chars"
	"github.com/dekarrin/llkrt/tables"
)

// MatchFinder drives a DFA over a character iterator to find the longest
// accepting match starting at the iterator's current position (§4.4). It
// holds no state of its own beyond the iterator and the classify function;
// a single MatchFinder can be reused across calls to FindNext against
// whatever DFA the active scanner mode currently specifies.
type MatchFinder struct {
	it       *chars.Iterator
	classify Classify
}

// NewMatchFinder builds a MatchFinder over it, using classify to map
// characters to DFA transition-class indices.
func NewMatchFinder(it *chars.Iterator, classify Classify) *MatchFinder {
	return &MatchFinder{it: it, classify: classify}
}

// FindNext drives dfa from the iterator's current position, returning the
// longest accepting match (tie-broken by priority, §8 property 3), or
// false if no accept was ever reached. On a false return the iterator is
// left exactly where it started; on a true return the iterator is left
// positioned immediately after the winning match.
func (mf *MatchFinder) FindNext(dfa tables.DFA) (Match, bool) {
	initial := mf.it.Snapshot()

	state := 0
	var startItem chars.Item
	haveStart := false

	var bestStartItem chars.Item
	var bestEndOffset int
	var bestEndPos chars.Position
	var bestTokenType int
	var bestPriority int
	bestLen := -1
	found := false
	var rollback chars.Checkpoint

	for {
		peeked, ok := mf.it.Peek()
		if !ok {
			break
		}
		class, ok := mf.classify(peeked.Char)
		if !ok {
			break
		}
		from := dfa.States[state]
		if class < 0 || class >= len(from.Transitions) {
			break
		}
		t := from.Transitions[class]
		if !t.Present {
			break
		}

		state = t.Target
		consumed, _ := mf.it.Next()
		if !haveStart {
			startItem = consumed
			haveStart = true
		}
		endOffset := mf.it.Offset()
		endPos := mf.it.Pos()

		successor := dfa.States[state]
		for _, accept := range successor.Accept {
			if !mf.evaluateLookahead(accept.Lookahead) {
				continue
			}

			curLen := endOffset - startItem.ByteIndex
			if isBetterCandidate(curLen, accept.Priority, bestLen, bestPriority, found) {
				found = true
				bestLen = curLen
				bestTokenType = accept.TokenType
				bestPriority = accept.Priority
				bestStartItem = startItem
				bestEndOffset = endOffset
				bestEndPos = endPos
				rollback = mf.it.Snapshot()
			}
			break // first satisfied entry in the list wins
		}
	}

	if !found {
		mf.it.GotoCheckpoint(initial)
		return Match{}, false
	}

	mf.it.GotoCheckpoint(rollback)
	return Match{
		Span:      Span{Start: bestStartItem.ByteIndex, End: bestEndOffset},
		TokenType: bestTokenType,
		Positions: Positions{Start: bestStartItem.Pos, End: bestEndPos},
	}, true
}

// isBetterCandidate implements §4.4 step g's tie rule: a candidate of
// curLen/curPriority beats the running best if there is no best yet, if it
// is strictly longer, or if it ties on length and has a strictly smaller
// priority (lower wins). Factored out so the cross-iteration equal-length
// case is directly testable (§8 property 3): within one FindNext run every
// iteration consumes at least one byte, so curLen strictly grows and that
// branch is never taken from FindNext itself.
func isBetterCandidate(curLen, curPriority, bestLen, bestPriority int, haveBest bool) bool {
	if !haveBest {
		return true
	}
	if curLen > bestLen {
		return true
	}
	if curLen == bestLen && curPriority < bestPriority {
		return true
	}
	return false
}

// evaluateLookahead resolves an AcceptData's Lookahead against the
// iterator's current position (which is always the position immediately
// after the candidate match, since it runs from inside FindNext's loop
// right after consuming the character that produced the candidate).
func (mf *MatchFinder) evaluateLookahead(la tables.Lookahead) bool {
	switch la.Kind {
	case tables.LookaheadNone:
		return true
	case tables.LookaheadPositive:
		return mf.CheckLookahead(*la.SubDFA)
	case tables.LookaheadNegative:
		return !mf.CheckLookahead(*la.SubDFA)
	default:
		return true
	}
}

// CheckLookahead walks sub from the iterator's current position using the
// same advance rule as FindNext, reporting whether any accepting state is
// ever reached. It uses the iterator's single Save/Restore slot (rather
// than FindNext's own Checkpoint bookkeeping) and always restores the
// iterator before returning, making this zero-width: the caller never
// observes a position change (§8 property 4).
func (mf *MatchFinder) CheckLookahead(sub tables.DFA) bool {
	mf.it.Save()
	defer mf.it.Restore()

	state := 0
	for {
		peeked, ok := mf.it.Peek()
		if !ok {
			return false
		}
		class, ok := mf.classify(peeked.Char)
		if !ok {
			return false
		}
		from := sub.States[state]
		if class < 0 || class >= len(from.Transitions) {
			return false
		}
		t := from.Transitions[class]
		if !t.Present {
			return false
		}

		state = t.Target
		mf.it.Next()

		if len(sub.States[state].Accept) > 0 {
			return true
		}
	}
}
