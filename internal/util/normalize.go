package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// NormalizeRoleName trims and title-cases a role name so "data analyst " and
// "Data Analyst" hit the same position rows.
func NormalizeRoleName(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}

// NormalizeJobLevel trims and capitalizes only the first word ("senior" ->
// "Senior", "MID level" -> "Mid level").
func NormalizeJobLevel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// NormalizeRolePurpose only trims; free text keeps its casing.
func NormalizeRolePurpose(s string) string {
	return strings.TrimSpace(s)
}
