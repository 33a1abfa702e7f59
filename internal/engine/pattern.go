package engine

import "strings"

// MatchName reports whether a container name matches a glob-like filter
// pattern. Matching is case-insensitive. Four pattern forms, in precedence
// order:
//
//	*substr*  substr appears anywhere in the name
//	*suffix   name ends with suffix
//	prefix*   name starts with prefix
//	plain     name contains the string (deliberate contains default, not glob)
//
// A pattern of exactly "*" is the first form with an empty substring and
// matches everything.
func MatchName(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	p := strings.ToLower(pattern)
	n := strings.ToLower(name)

	switch {
	case strings.HasPrefix(p, "*") && strings.HasSuffix(p, "*") && len(p) > 1:
		return strings.Contains(n, p[1:len(p)-1])
	case p == "*":
		return true
	case strings.HasPrefix(p, "*"):
		return strings.HasSuffix(n, p[1:])
	case strings.HasSuffix(p, "*"):
		return strings.HasPrefix(n, p[:len(p)-1])
	default:
		return strings.Contains(n, p)
	}
}
