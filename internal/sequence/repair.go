package sequence

import "slices"

type Reason string

const (
	ReasonUnrecognized       Reason = "unrecognized"
	ReasonUnexpectedDigit    Reason = "unexpected-digit"
	ReasonUnexpectedOperator Reason = "unexpected-operator"
	ReasonTrailingOperator   Reason = "trailing-operator"
)

// Deletion is one block removed by Repair. Index is the block's position in
// the stream Repair was given, not in the shortened result.
type Deletion struct {
	Index  int
	Value  uint8
	Reason Reason
}

// Repair removes every block that breaks digit/operator alternation and
// returns the shortened stream. The backing array of blocks is reused.
//
// The cursor only advances when a block is accepted. On deletion the next
// block slides under the cursor and is checked against the same expectation.
func Repair(blocks []uint8) ([]uint8, []Deletion) {
	origin := make([]int, len(blocks))
	for i := range origin {
		origin[i] = i
	}

	var deletions []Deletion
	remove := func(at int, reason Reason) {
		deletions = append(deletions, Deletion{Index: origin[at], Value: blocks[at], Reason: reason})
		blocks = slices.Delete(blocks, at, at+1)
		origin = slices.Delete(origin, at, at+1)
	}

	expectDigit := true
	for cursor := 0; cursor < len(blocks); {
		v := blocks[cursor]
		if accepts(expectDigit, v) {
			expectDigit = !expectDigit
			cursor++
			continue
		}
		remove(cursor, rejection(v))
	}

	// still expecting a digit means the stream ended on an operator
	if expectDigit && len(blocks) > 0 {
		remove(len(blocks)-1, ReasonTrailingOperator)
	}
	return blocks, deletions
}

// IsRepaired reports whether blocks is empty or strictly alternates digit,
// operator, digit and ends on a digit.
func IsRepaired(blocks []uint8) bool {
	if len(blocks) == 0 {
		return true
	}
	if len(blocks)%2 == 0 {
		return false
	}
	for i, v := range blocks {
		if !accepts(i%2 == 0, v) {
			return false
		}
	}
	return true
}

func accepts(expectDigit bool, v uint8) bool {
	kind := KindOf(v)
	if expectDigit {
		return kind == KindDigit
	}
	return kind == KindOperator
}

func rejection(v uint8) Reason {
	switch KindOf(v) {
	case KindDigit:
		return ReasonUnexpectedDigit
	case KindOperator:
		return ReasonUnexpectedOperator
	default:
		return ReasonUnrecognized
	}
}
