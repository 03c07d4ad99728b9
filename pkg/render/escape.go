package render

import "strings"

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return escape(s, nil)
}

// attrEntities are the extra escapes applied inside attribute values so
// whitespace control characters cannot break attribute parsing.
var attrEntities = map[rune]string{
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
func escapeAttr(s string) string {
	return escape(s, attrEntities)
}

func escape(s string, extra map[rune]string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			if entity, ok := extra[r]; ok {
				buf.WriteString(entity)
			} else {
				buf.WriteRune(r)
			}
		}
	}

	return buf.String()
}
