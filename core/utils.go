package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// FilterActive reports whether a categorical filter value narrows results.
// An empty value or the sentinel "all" disables the filter.
func FilterActive(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "all")
}

// CanonicalEnum maps v onto its canonical spelling in allowed,
// case-insensitively. Unknown values pass through untouched so the
// validator can reject them with a field error.
func CanonicalEnum(v string, allowed []string) string {
	v = strings.TrimSpace(v)
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a
		}
	}
	return v
}

// AnyContainsFold reports whether any of fields contains term,
// case-insensitively. A blank term matches everything.
func AnyContainsFold(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
