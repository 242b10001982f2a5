package badge

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// IsBlank reports whether s has nothing to render: empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ContentLength counts user-perceived characters, so "👍🏽" and "é" (decomposed)
// each count as one.
func ContentLength(s string) int {
	return uniseg.GraphemeClusterCount(norm.NFC.String(s))
}
