package ijson

import "testing"

func TestDecodeStringSimpleEscapes(t *testing.T) {
	got, err := decodeString([]byte(`"a\tb\nc\"d"`))
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	want := "a\tb\nc\"d"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeStringBMPUnicodeEscape(t *testing.T) {
	lit := []byte{'"', 'c', 'a', 'f', '\\', 'u', '0', '0', 'e', '9', '"'}
	got, err := decodeString(lit)
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	if got != "café" {
		t.Fatalf("got %q, want %q", got, "café")
	}
}

func TestDecodeStringSurrogatePairEscape(t *testing.T) {
	lit := []byte{'"', '\\', 'u', 'D', '8', '3', 'D', '\\', 'u', 'D', 'C', 'A', '9', '"'}
	got, err := decodeString(lit)
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	want := "\U0001F4A9"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeStringLoneLowSurrogateIsError(t *testing.T) {
	_, err := decodeString([]byte(`"\uDCA9"`))
	if err == nil {
		t.Fatalf("expected an error for a lone low surrogate")
	}
}

func TestDecodeStringHighSurrogateWithoutLowIsError(t *testing.T) {
	_, err := decodeString([]byte(`"\uD83D"`))
	if err == nil {
		t.Fatalf("expected an error for an unpaired high surrogate")
	}
}

func TestDecodeStringInvalidEscapeIsError(t *testing.T) {
	_, err := decodeString([]byte(`"\q"`))
	if err == nil {
		t.Fatalf("expected an error for an invalid escape sequence")
	}
}

func TestDecodeStringRawUTF8(t *testing.T) {
	got, err := decodeString([]byte(`"💩"`))
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	if got != "💩" {
		t.Fatalf("got %q", got)
	}
}

func TestIsHexDigit(t *testing.T) {
	for _, c := range []byte("0123456789abcdefABCDEF") {
		if !isHexDigit(c) {
			t.Errorf("isHexDigit(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("gGzZ .") {
		if isHexDigit(c) {
			t.Errorf("isHexDigit(%q) = true, want false", c)
		}
	}
}
