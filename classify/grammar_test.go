package classify

import "testing"

func TestMatchesGrammar(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1.250", true},
		{`0.75"`, true},
		{"3/8", true},
		{`3/8"`, true},
		{"1-1/2", true},
		{`1-1/2 "`, true},
		{"42", true},
		{"Ø1.000", true},
		{"2X 45°", true},
		{"NOTES", false},
		{"SEE DETAIL A", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := MatchesGrammar(tt.text); got != tt.want {
				t.Errorf("MatchesGrammar(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasInvalidLetters(t *testing.T) {
	allow := DefaultAllowlist()

	tests := []struct {
		text    string
		invalid bool
	}{
		{"1.250", false},
		{"1.250 TYP", false},
		{"Ø.500 THRU", false},
		{"R.125", false},
		{"3/8-16 UNC", false},
		{"7/16-20 UNEF", false},
		{".010 MAX FLAT", false},
		{"2.00 TO 3.00", false},
		{"SCALE 1:2", true},
		{"SHEET 2", true},
		{"PART 1023", true},
		{"1.5 BSC", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := hasInvalidLetters(tt.text, allow); got != tt.invalid {
				t.Errorf("hasInvalidLetters(%q) = %v, want %v", tt.text, got, tt.invalid)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.250", "1.250"},
		{"１２", "12"},           // full-width digits
		{"1⁄4", "1/4"},              // fraction slash
		{"0.75”", `0.75"`},          // typographic inch mark
		{"−.005", "-.005"},          // minus sign
	}

	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := collapseSpaces("  1.250   TYP "); got != "1.250 TYP" {
		t.Errorf("expected %q, got %q", "1.250 TYP", got)
	}
}
