package sequence

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		blocks []uint8
		want   string
	}{
		{blocks: nil, want: ""},
		{blocks: []uint8{0}, want: "0"},
		{blocks: []uint8{1, 10, 2, 11, 3, 12, 4, 13, 5}, want: "1 + 2 - 3 * 4 / 5"},
		{blocks: []uint8{14}, want: " NaN "},
		{blocks: []uint8{3, 15, 3}, want: "3 NaN 3"},
	}
	for _, tc := range cases {
		if got := Render(tc.blocks); got != tc.want {
			t.Fatalf("Render(%v): expected %q, got %q", tc.blocks, tc.want, got)
		}
	}
}

func TestEncode(t *testing.T) {
	if got := Encode([]uint8{0, 5, 10, 15}); got != "0000010110101111" {
		t.Fatalf("unexpected encoding: %q", got)
	}
	if got := Encode(nil); got != "" {
		t.Fatalf("expected empty encoding, got %q", got)
	}
}

func TestParseExpressionRejectsUnknownSymbols(t *testing.T) {
	for _, expr := range []string{"5 % 3", "NaN", "2 x 2"} {
		if _, err := ParseExpression(expr); !errors.Is(err, ErrInvalidSymbol) {
			t.Fatalf("%q: expected ErrInvalidSymbol, got %v", expr, err)
		}
	}
}

func TestParseExpressionIgnoresSpacing(t *testing.T) {
	got, err := ParseExpression("\t9*8 -7 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []uint8{9, 12, 8, 11, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestKindOf(t *testing.T) {
	for v := uint8(0); v < 16; v++ {
		want := KindUnrecognized
		switch {
		case v <= 9:
			want = KindDigit
		case v <= 13:
			want = KindOperator
		}
		if got := KindOf(v); got != want {
			t.Fatalf("KindOf(%d): expected %v, got %v", v, want, got)
		}
	}
}
