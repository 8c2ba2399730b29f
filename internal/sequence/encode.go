package sequence

import (
	"fmt"
	"strings"
)

// Encode writes each block as BlockWidth bits, most significant bit first.
// Values above 15 are truncated to their low BlockWidth bits.
func Encode(blocks []uint8) string {
	buf := make([]byte, 0, len(blocks)*BlockWidth)
	for _, v := range blocks {
		for shift := BlockWidth - 1; shift >= 0; shift-- {
			buf = append(buf, '0'+(v>>shift)&1)
		}
	}
	return string(buf)
}

// ParseExpression reads an expression in Render's format back into blocks.
// Whitespace is ignored; each digit is one block.
func ParseExpression(expr string) ([]uint8, error) {
	blocks := make([]uint8, 0, len(expr))
	for offset, r := range expr {
		switch {
		case r == ' ' || r == '\t':
			continue
		case r >= '0' && r <= '9':
			blocks = append(blocks, uint8(r-'0'))
		default:
			i := strings.IndexRune(operatorRunes, r)
			if i < 0 {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, r, offset)
			}
			blocks = append(blocks, OpAdd+uint8(i))
		}
	}
	return blocks, nil
}

const operatorRunes = "+-*/"
