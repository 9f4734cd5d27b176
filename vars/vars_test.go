package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", " yes", "on", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
	for _, str := range []string{"false", "no", "off", "0", "", "maybe"} {
		if StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 4096, 10000); n != 4096 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
}
