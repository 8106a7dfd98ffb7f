package goshape

import "strings"

// FormatPath renders a sequence of traversal keys as a dotted/indexed path.
// Map keys are joined with dots and array indices are bracketed, so
// ["address","tags","0"] becomes "address.tags[0]". The empty sequence
// renders as "".
func FormatPath(keys []string) string {
	b := &strings.Builder{}
	for _, k := range keys {
		if isIndexKey(k) {
			b.WriteByte('[')
			b.WriteString(k)
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k)
	}
	return b.String()
}

// isIndexKey reports whether k is a non-negative-integer-shaped key, i.e. an
// array index.
func isIndexKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}
