package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	if got := NormalizeE164("020 7123 4567"); got != "+442071234567" {
		t.Fatalf("expected +442071234567, got %q", got)
	}
	if got := NormalizeE164("  not a number "); got != "not a number" {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
	if got := NormalizeE164(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFormatInternational(t *testing.T) {
	if got := FormatInternational("+442071234567"); got != "+44 20 7123 4567" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("+44 20 7123 4568") {
		t.Fatalf("expected London number to be valid")
	}
	if IsValid("12") {
		t.Fatalf("expected short number to be invalid")
	}
}
