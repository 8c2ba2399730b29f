package sequence

import (
	"errors"
	"testing"
)

func TestEvalLeftToRight(t *testing.T) {
	cases := []struct {
		blocks []uint8
		want   float64
	}{
		{blocks: []uint8{6}, want: 6},
		{blocks: []uint8{2, 10, 3, 12, 4}, want: 20},
		{blocks: []uint8{9, 11, 3, 13, 2}, want: 3},
		{blocks: []uint8{1, 13, 4, 12, 8}, want: 2},
		{blocks: []uint8{0, 11, 9, 12, 9}, want: -81},
		{blocks: []uint8{1, 13, 3}, want: 1.0 / 3.0},
	}
	for _, tc := range cases {
		got, err := Eval(tc.blocks)
		if err != nil {
			t.Fatalf("Eval(%v): %v", tc.blocks, err)
		}
		if got != tc.want {
			t.Fatalf("Eval(%v): expected %v, got %v", tc.blocks, tc.want, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		blocks []uint8
		want   error
	}{
		{blocks: nil, want: ErrEmptyExpression},
		{blocks: []uint8{4, 13, 0}, want: ErrDivisionByZero},
		{blocks: []uint8{0, 13, 0}, want: ErrDivisionByZero},
		{blocks: []uint8{4, 11, 4, 13, 0}, want: ErrDivisionByZero},
		{blocks: []uint8{4, 10}, want: ErrNotRepaired},
		{blocks: []uint8{14}, want: ErrNotRepaired},
	}
	for _, tc := range cases {
		if _, err := Eval(tc.blocks); !errors.Is(err, tc.want) {
			t.Fatalf("Eval(%v): expected %v, got %v", tc.blocks, tc.want, err)
		}
	}
}
