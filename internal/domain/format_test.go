package domain

import "testing"

func TestFormatGBP(t *testing.T) {
	cases := map[float64]string{
		450000:  "£450,000",
		1234:    "£1,234",
		999:     "£999",
		1250000: "£1,250,000",
	}
	for in, want := range cases {
		if got := FormatGBP(in); got != want {
			t.Fatalf("FormatGBP(%v) = %q, want %q", in, got, want)
		}
	}
}
