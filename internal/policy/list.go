// Package policy loads and caches the newline-delimited policy lists
// (helpers, managed-bins, managed-files) and implements prefix-on-separator
// membership tests over them.
package policy

import "strings"

// List is an ordered sequence of policy entries parsed from a policy file.
// Entries are absolute-path prefixes.
type List []string

// ParseList splits raw policy-file bytes into a List, one entry per line.
// Empty lines are dropped: the spec recommends this to avoid an empty
// entry acting as a prefix that matches every path (see DESIGN.md).
func ParseList(raw []byte) List {
	lines := strings.Split(string(raw), "\n")
	out := make(List, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Match reports whether candidate is covered by any entry in the list
// under prefix-on-separator semantics: an entry E matches a candidate C if
// C equals E, or C begins with E followed by '/'.
func (l List) Match(candidate string) bool {
	for _, entry := range l {
		if matchesEntry(entry, candidate) {
			return true
		}
	}
	return false
}

func matchesEntry(entry, candidate string) bool {
	if entry == "" {
		return false
	}
	if candidate == entry {
		return true
	}
	return strings.HasPrefix(candidate, entry) && candidate[len(entry)] == '/'
}
