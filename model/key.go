/*
Package model holds the three entity types stored in the SafetyNet data
document and the identity-key matching rules shared by all repositories.

Identity keys - the (firstName, lastName) pair for persons and medical
records, the address for fire stations - are matched case-insensitively
after trimming. Values are stored as given, except identity fields, which
are trimmed at save time.
*/
package model

import "strings"

// NormalizeKey maps an identity-key component to its canonical matching form.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchKey reports whether two identity-key components denote the same entity.
func MatchKey(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}

// BlankKey reports whether an identity-key component is empty or whitespace only.
func BlankKey(s string) bool {
	return strings.TrimSpace(s) == ""
}
