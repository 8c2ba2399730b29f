package sequence

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLength = errors.New("sequence: bit length not a multiple of block width")
	ErrInvalidBit      = errors.New("sequence: invalid bit")
	ErrBlockOutOfRange = errors.New("sequence: block index out of range")
	ErrEmptyExpression = errors.New("sequence: empty expression")
	ErrDivisionByZero  = errors.New("sequence: division by zero")
	ErrInvalidSymbol   = errors.New("sequence: invalid expression symbol")
	ErrNotRepaired     = errors.New("sequence: blocks break digit/operator alternation")
)

// MalformedLengthError reports the trailing bits that do not form a whole block.
type MalformedLengthError struct {
	Length   int
	Trailing int
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("sequence: bit length %d not a multiple of %d (%d trailing bits ignored)",
		e.Length, BlockWidth, e.Trailing)
}

func (e *MalformedLengthError) Is(target error) bool {
	return target == ErrMalformedLength
}
