package keys

import "strings"

// Normalize produces the canonical form of a symbolic game key.
// Behavior: trims, replaces inner spaces and hyphens with underscores and
// upper-cases the result, so "  tic-tac toe " becomes "TIC_TAC_TOE".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return strings.ToUpper(s)
}
