// Package interests normalizes the interest list committed from the admin
// form. Entries are committed one at a time in the browser (enter or comma)
// and arrive as a single comma-joined field; this package is the
// authoritative server-side pass over that input.
package interests

import "strings"

// Add appends entry to list after trimming. Blank entries and entries
// already present are rejected. The second return reports whether the
// entry was added, so committing "design" twice yields one entry.
func Add(list []string, entry string) ([]string, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return list, false
	}
	for _, have := range list {
		if have == entry {
			return list, false
		}
	}
	return append(list, entry), true
}

// Normalize applies the Add rules to a whole list, preserving first-seen
// order. It always returns a non-nil slice so templates can range freely.
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out, _ = Add(out, e)
	}
	return out
}

// Split parses the comma-joined hidden form field into its raw entries.
func Split(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Join renders a list back into the hidden form field representation.
func Join(list []string) string {
	return strings.Join(list, ",")
}
