package goparsing

import "strings"

// JoinPath joins path segments with ".", dropping empty segments.
//
//	JoinPath("items.0", "name") == "items.0.name"
//	JoinPath("", "name")        == "name"
func JoinPath(segments ...string) string {
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ".")
}

// splitPath splits a dot path into its non-empty segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PathToName converts a dot path into the bracketed form used by form field
// names: "items.0.name" becomes "items[0][name]".
func PathToName(path string) string {
	segs := splitPath(path)
	if len(segs) == 0 {
		return ""
	}
	b := &strings.Builder{}
	b.WriteString(segs[0])
	for _, s := range segs[1:] {
		b.WriteByte('[')
		b.WriteString(s)
		b.WriteByte(']')
	}
	return b.String()
}
