package sequence

import "strconv"

// BlockWidth is the number of bits per block.
const BlockWidth = 4

// Block values from the bitcode contract.
const (
	MaxDigit uint8 = 9
	OpAdd    uint8 = 10
	OpSub    uint8 = 11
	OpMul    uint8 = 12
	OpDiv    uint8 = 13
)

type Kind int

const (
	KindUnrecognized Kind = iota
	KindDigit
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	default:
		return "unrecognized"
	}
}

// KindOf classifies a raw block value.
func KindOf(v uint8) Kind {
	switch {
	case v <= MaxDigit:
		return KindDigit
	case v >= OpAdd && v <= OpDiv:
		return KindOperator
	default:
		return KindUnrecognized
	}
}

// Token is one block interpreted as a digit or operator.
type Token struct {
	Value uint8
	Kind  Kind
}

func NewToken(v uint8) Token {
	return Token{Value: v, Kind: KindOf(v)}
}

// Symbol returns the bare symbol: the digit, the operator sign, or "NaN".
func (t Token) Symbol() string {
	switch t.Kind {
	case KindDigit:
		return strconv.Itoa(int(t.Value))
	case KindOperator:
		return operatorSymbols[t.Value-OpAdd]
	default:
		return "NaN"
	}
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Symbol() + ")"
}

var operatorSymbols = [...]string{"+", "-", "*", "/"}
