package classify

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Drawing exports sometimes carry typographic variants of the ASCII
// characters the grammar expects.
var asciiFold = strings.NewReplacer(
	"⁄", "/", // fraction slash
	"−", "-", // minus sign
	"–", "-", // en dash
	"”", `"`, // right double quote as inch mark
	"″", `"`, // double prime as inch mark
)

// normalizeText applies NFKC compatibility folding (full-width digits,
// precomposed vulgar fractions) and maps typographic punctuation onto the
// ASCII forms the dimension grammar matches.
func normalizeText(text string) string {
	return asciiFold.Replace(norm.NFKC.String(text))
}

// collapseSpaces trims and collapses all interior whitespace runs to single
// spaces.
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
