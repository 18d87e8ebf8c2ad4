package service

import (
	"io"
	"strings"

	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// Format renders props as properties text, one "key=value" line per entry in
// iteration order. The output parses back to the same keys and values.
func Format(props *propertiesDomain.Properties) string {
	var b strings.Builder
	for key, value := range props.All() {
		b.WriteString(escape(key, true))
		b.WriteByte('=')
		b.WriteString(escape(value, false))
		b.WriteByte('\n')
	}
	return b.String()
}

// Write writes props to w as produced by Format.
func Write(w io.Writer, props *propertiesDomain.Properties) error {
	_, err := io.WriteString(w, Format(props))
	return err
}

// escape escapes s so the parser reads it back unchanged. Keys also escape
// the separators and comment markers; a leading space is always escaped
// because the parser trims unescaped surrounding whitespace, and so is a
// trailing one.
func escape(s string, isKey bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '=', ':':
			if isKey {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		case '#', '!':
			if isKey && i == 0 {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		case ' ':
			if i == 0 || i == len(s)-1 {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
