package util

import "golang.org/x/text/cases"

// FoldKey returns the case-folded form of s, used to compare group names case-insensitively.
func FoldKey(s string) string {
	// a Caser is stateful and must not be shared
	return cases.Fold().String(s)
}
