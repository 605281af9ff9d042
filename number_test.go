package ijson

import "testing"

func TestParseNumberInteger(t *testing.T) {
	n, err := ParseNumber("-123456789012345678901234567890")
	if err != nil {
		t.Fatalf("ParseNumber: %v", err)
	}
	if !n.IsInt() {
		t.Fatalf("expected an integer Number")
	}
	if n.Int().Sign() >= 0 {
		t.Fatalf("expected a negative integer")
	}
	if n.String() != "-123456789012345678901234567890" {
		t.Fatalf("got %q", n.String())
	}
}

func TestParseNumberDecimalPreservesLiteral(t *testing.T) {
	n, err := ParseNumber("1.0E+2")
	if err != nil {
		t.Fatalf("ParseNumber: %v", err)
	}
	if n.IsInt() {
		t.Fatalf("expected a decimal Number for a literal with an exponent")
	}
	if n.String() != "1.0E+2" {
		t.Fatalf("got %q, want the literal preserved verbatim", n.String())
	}
	if n.Float64() != 100 {
		t.Fatalf("got %v, want 100", n.Float64())
	}
}

func TestParseNumberZero(t *testing.T) {
	n, err := ParseNumber("0")
	if err != nil {
		t.Fatalf("ParseNumber: %v", err)
	}
	if !n.IsInt() || n.Int().Sign() != 0 {
		t.Fatalf("got %+v", n)
	}
}

func TestParseNumberNegativeZeroDecimal(t *testing.T) {
	n, err := ParseNumber("-0.0")
	if err != nil {
		t.Fatalf("ParseNumber: %v", err)
	}
	if n.IsInt() {
		t.Fatalf("expected a decimal Number")
	}
	if n.String() != "-0.0" {
		t.Fatalf("got %q", n.String())
	}
}

func TestIsIntegerLiteral(t *testing.T) {
	cases := map[string]bool{
		"123":     true,
		"-5":      true,
		"0":       true,
		"1.5":     false,
		"1e10":    false,
		"1E10":    false,
		"-1.0e-2": false,
	}
	for lit, want := range cases {
		if got := isIntegerLiteral(lit); got != want {
			t.Errorf("isIntegerLiteral(%q) = %v, want %v", lit, got, want)
		}
	}
}
