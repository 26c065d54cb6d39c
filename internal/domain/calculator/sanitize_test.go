package calculator

import "testing"

func TestSanitizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.34", "12.34"},
		{"$12.34", "12.34"},
		{"1,234.56", "1234.56"}, // thousands separators are stripped
		{"12.345", "12.34"},     // fraction truncated to two digits
		{"1.2.3", "1.23"},       // extra points collapse to the first
		{"abc", ""},
		{"", ""},
		{".5", ".5"},
		{"12.", "12."},
	}

	for _, tc := range cases {
		if got := SanitizePrice(tc.in); got != tc.want {
			t.Errorf("SanitizePrice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.34", "12.34"},
		{"$99.999", "99.99"},
		{"12.", "12"},
		{"", "0"},
		{"garbage", "0"},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): unexpected error %v", tc.in, err)
		}
		if !got.Equal(dec(tc.want)) {
			t.Errorf("ParsePrice(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
