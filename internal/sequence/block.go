package sequence

import "fmt"

// parseBlocks converts every whole block of bits to its value. Bits past the
// last whole block are counted in trailing and never read as a block.
func parseBlocks(bits string) (blocks []uint8, trailing int, err error) {
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return nil, 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[i], i)
		}
	}
	blocks = make([]uint8, len(bits)/BlockWidth)
	for i := range blocks {
		blocks[i] = blockValue(bits, i)
	}
	return blocks, len(bits) % BlockWidth, nil
}

// blockValue reads bits [i*BlockWidth, (i+1)*BlockWidth) as an unsigned
// big-endian integer. Caller guarantees the range is in bounds.
func blockValue(bits string, i int) uint8 {
	var v uint8
	for _, b := range []byte(bits[i*BlockWidth : (i+1)*BlockWidth]) {
		v = v<<1 | (b - '0')
	}
	return v
}
