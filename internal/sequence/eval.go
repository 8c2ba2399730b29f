package sequence

import "fmt"

// Eval folds a repaired stream left to right with no operator precedence:
// [2 + 3 * 4] is (2+3)*4 = 20. Division is floating point.
//
// An empty stream fails with ErrEmptyExpression and a zero divisor with
// ErrDivisionByZero.
func Eval(blocks []uint8) (float64, error) {
	if len(blocks) == 0 {
		return 0, ErrEmptyExpression
	}
	if !IsRepaired(blocks) {
		return 0, ErrNotRepaired
	}

	acc := float64(blocks[0])
	for i := 1; i+1 < len(blocks); i += 2 {
		operand := float64(blocks[i+1])
		switch blocks[i] {
		case OpAdd:
			acc += operand
		case OpSub:
			acc -= operand
		case OpMul:
			acc *= operand
		case OpDiv:
			if operand == 0 {
				return 0, fmt.Errorf("%w at block %d", ErrDivisionByZero, i+1)
			}
			acc /= operand
		}
	}
	return acc, nil
}
