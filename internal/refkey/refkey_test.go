package refkey_test

import (
	"testing"

	"triage/internal/refkey"
)

func TestNormalizeCaseAndWhitespaceInsensitive(t *testing.T) {
	inputs := []string{
		"ABC123",
		" abc123 ",
		"Abc 123",
		"abc​123",
		"a b c 1 2 3",
	}
	want := "abc123"
	for _, input := range inputs {
		if got := refkey.Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeKitBracketPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"zr55[xy-kit-001]", "xy-kit-001"},
		{"ZR55 [XY-KIT-001]", "xy-kit-001"},
		{"prefix[ab-kit_77]suffix", "ab-kit_77"},
	}
	for _, tc := range cases {
		if got := refkey.Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeSourcePrefixStripped(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"zr2024abc", "abc"},
		{"za7xyz-9", "xyz-9"},
		{"zxx100code", "code"},
		{"zrabc", "zrabc"}, // prefix requires digits
		{"[wrapped]", "wrapped"},
	}
	for _, tc := range cases {
		if got := refkey.Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeDuplicateBracketCollapse(t *testing.T) {
	if got := refkey.Normalize("ab12[ab12]"); got != "ab12" {
		t.Errorf("Normalize(ab12[ab12]) = %q, want ab12", got)
	}
	// Mismatched prefix and bracket content must not collapse.
	if got := refkey.Normalize("ab12[cd34]"); got == "ab12" {
		t.Error("Normalize(ab12[cd34]) unexpectedly collapsed to prefix")
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", " ​", "\t\n"} {
		if got := refkey.Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"ZR55[XY-KIT-001]",
		"ab12[ab12]",
		"za19 submission-44",
		"[bracketed]",
		"plain-ref_9",
		"",
	}
	for _, input := range inputs {
		once := refkey.Normalize(input)
		twice := refkey.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
