package sequence

type options struct {
	strictLength bool
}

type Option func(*options)

// WithStrictLength makes New fail on a bit length that is not a multiple of
// BlockWidth instead of ignoring the trailing bits.
func WithStrictLength() Option {
	return func(o *options) {
		o.strictLength = true
	}
}

// Sequence is a repaired block stream built from a bitcode.
type Sequence struct {
	original  string
	blocks    []uint8
	deletions []Deletion
	warning   error
}

// New tokenizes bits and repairs the result. Characters other than '0' and
// '1' fail with ErrInvalidBit. Trailing bits that do not fill a block are
// ignored and reported through Warning, unless WithStrictLength is set.
func New(bits string, opts ...Option) (*Sequence, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	blocks, trailing, err := parseBlocks(bits)
	if err != nil {
		return nil, err
	}

	var warning error
	if trailing != 0 {
		warning = &MalformedLengthError{Length: len(bits), Trailing: trailing}
		if o.strictLength {
			return nil, warning
		}
	}

	blocks, deletions := Repair(blocks)
	return &Sequence{
		original:  bits,
		blocks:    blocks,
		deletions: deletions,
		warning:   warning,
	}, nil
}

// FromExpression builds a Sequence from an infix expression such as "5 + 3".
func FromExpression(expr string, opts ...Option) (*Sequence, error) {
	blocks, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}
	return New(Encode(blocks), opts...)
}

// Original returns the bitcode as given to New.
func (s *Sequence) Original() string {
	return s.original
}

// Bitcode returns the repaired blocks concatenated back into bits.
func (s *Sequence) Bitcode() string {
	return Encode(s.blocks)
}

func (s *Sequence) Len() int {
	return len(s.blocks)
}

func (s *Sequence) BlockValue(i int) (uint8, error) {
	if i < 0 || i >= len(s.blocks) {
		return 0, ErrBlockOutOfRange
	}
	return s.blocks[i], nil
}

func (s *Sequence) Blocks() []uint8 {
	out := make([]uint8, len(s.blocks))
	copy(out, s.blocks)
	return out
}

func (s *Sequence) Tokens() []Token {
	out := make([]Token, len(s.blocks))
	for i, v := range s.blocks {
		out[i] = NewToken(v)
	}
	return out
}

// Deletions lists the blocks removed by repair in removal order.
func (s *Sequence) Deletions() []Deletion {
	out := make([]Deletion, len(s.deletions))
	copy(out, s.deletions)
	return out
}

// Warning returns a *MalformedLengthError when trailing bits were ignored.
func (s *Sequence) Warning() error {
	return s.warning
}

// Decode renders the repaired stream, e.g. "5 + 3".
func (s *Sequence) Decode() string {
	return Render(s.blocks)
}

// Evaluate reduces the repaired stream left to right. See Eval.
func (s *Sequence) Evaluate() (float64, error) {
	return Eval(s.blocks)
}
