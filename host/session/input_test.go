package session

import (
	"testing"
)

func TestParseNumberPair(t *testing.T) {
	tests := []struct {
		input string
		a, b  float64
		ok    bool
	}{
		{"10, 20", 10, 20, true},
		{"10,20", 10, 20, true},
		{"10 20", 10, 20, true},
		{" 10.5 , -20.25 ", 10.5, -20.25, true},
		{"-300, -200", -300, -200, true},
		{"abc, 1", 0, 0, false},
		{"1, xyz", 0, 0, false},
		{"1", 0, 0, false},
		{"1, 2, 3", 0, 0, false},
		{"", 0, 0, false},
		{",", 0, 0, false},
	}

	for _, test := range tests {
		a, b, err := ParseNumberPair(test.input)
		if test.ok && err != nil {
			t.Errorf("ParseNumberPair(%q) failed: %v", test.input, err)
			continue
		}
		if !test.ok {
			if err == nil {
				t.Errorf("ParseNumberPair(%q) should fail", test.input)
			}
			continue
		}
		if a != test.a || b != test.b {
			t.Errorf("ParseNumberPair(%q) = (%v, %v), want (%v, %v)",
				test.input, a, b, test.a, test.b)
		}
	}
}

func TestParseRGB(t *testing.T) {
	r, g, b, err := ParseRGB("10 64 109")
	if err != nil {
		t.Fatalf("ParseRGB failed: %v", err)
	}
	if r != 10 || g != 64 || b != 109 {
		t.Errorf("ParseRGB = (%d, %d, %d)", r, g, b)
	}

	if _, _, _, err := ParseRGB("255, 0, 0"); err != nil {
		t.Errorf("comma separated components should parse: %v", err)
	}

	for _, bad := range []string{"", "1 2", "1 2 3 4", "red green blue"} {
		if _, _, _, err := ParseRGB(bad); err == nil {
			t.Errorf("ParseRGB(%q) should fail", bad)
		}
	}
}
