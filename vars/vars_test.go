package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %v", s)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Yes":  true,
		"1":    true,
		"on":   true,
		"no":   false,
		"0":    false,
		"":     false,
		"foo":  false,
	} {
		if StrToBool(str) != expected {
			t.Fatalf("%s: expected %v", str, expected)
		}
	}
}
