package sequence

import "strings"

// Render writes digits as-is and pads operators with one space on each
// side. Values outside the digit and operator ranges render as " NaN ".
func Render(blocks []uint8) string {
	var b strings.Builder
	for _, v := range blocks {
		tok := NewToken(v)
		if tok.Kind == KindDigit {
			b.WriteString(tok.Symbol())
			continue
		}
		b.WriteByte(' ')
		b.WriteString(tok.Symbol())
		b.WriteByte(' ')
	}
	return b.String()
}
