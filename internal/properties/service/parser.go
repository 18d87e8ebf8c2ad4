package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	propertiesDomain "github.com/allisson/secure/internal/properties/domain"
)

// Parser implements PropertiesParser for line-oriented key=value text.
//
// Syntax:
//   - blank lines and lines starting with '#' or '!' are skipped
//   - a line ending in an odd number of backslashes continues on the next
//     line; the next line's leading whitespace is dropped
//   - key and value split at the first unescaped '=' or ':'; a line with
//     neither is a key with an empty value
//   - unescaped surrounding whitespace of key and value is trimmed
//   - escapes \t \n \r \f \uXXXX are decoded; any other escaped character
//     stands for itself
//
// A repeated key keeps the position of its first occurrence and the value of
// its last.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses text into Properties.
// Returns ErrPropertiesParse on a malformed \u escape or a continuation on the last line.
func (p *Parser) Parse(text string) (*propertiesDomain.Properties, error) {
	props := propertiesDomain.NewProperties()
	lines := splitLines(strings.TrimPrefix(text, "\ufeff"))

	for i := 0; i < len(lines); i++ {
		lineNumber := i + 1
		logical := strings.TrimLeft(lines[i], whitespace)
		if logical == "" || logical[0] == '#' || logical[0] == '!' {
			continue
		}

		for continues(logical) {
			logical = logical[:len(logical)-1]
			i++
			if i >= len(lines) {
				return nil, fmt.Errorf(
					"%w: line %d: continuation without a following line",
					propertiesDomain.ErrPropertiesParse,
					lineNumber,
				)
			}
			logical += strings.TrimLeft(lines[i], whitespace)
		}

		rawKey, rawValue := splitKeyValue(logical)

		key, err := unescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", propertiesDomain.ErrPropertiesParse, lineNumber, err)
		}
		value, err := unescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", propertiesDomain.ErrPropertiesParse, lineNumber, err)
		}

		props.Set(key, value)
	}

	return props, nil
}

const whitespace = " \t\f"

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

// splitLines splits on \n, \r\n and \r. A terminator at the very end does not
// start another line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// continues reports whether line ends in an odd number of backslashes.
func continues(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// splitKeyValue splits at the first unescaped '=' or ':'.
func splitKeyValue(line string) (key, value string) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '=', ':':
			return line[:i], line[i+1:]
		}
	}
	return line, ""
}

// unescape decodes escape sequences and trims unescaped surrounding whitespace.
func unescape(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	started := false
	significant := 0

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			if !started && isWhitespace(c) {
				continue
			}
			started = true
			b.WriteByte(c)
			if !isWhitespace(c) {
				significant = b.Len()
			}
			continue
		}

		started = true
		if i+1 >= len(raw) {
			break
		}
		i++

		switch raw[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, consumed, err := decodeUnicode(raw[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += consumed
		default:
			b.WriteByte(raw[i])
		}
		significant = b.Len()
	}

	return b.String()[:significant], nil
}

// decodeUnicode reads the four hex digits following "\u". A high surrogate
// immediately followed by an escaped low surrogate is combined into one rune.
// It returns the rune and the number of bytes consumed after the 'u'.
func decodeUnicode(s string) (rune, int, error) {
	r1, err := hex4(s)
	if err != nil {
		return 0, 0, err
	}
	r := rune(r1)

	if utf16.IsSurrogate(r) && len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if r2, err := hex4(s[6:]); err == nil {
			if combined := utf16.DecodeRune(r, rune(r2)); combined != unicode.ReplacementChar {
				return combined, 10, nil
			}
		}
	}

	return r, 4, nil
}

func hex4(s string) (uint64, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("malformed \\u escape %q: expected 4 hex digits", "\\u"+s)
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed \\u escape %q: expected 4 hex digits", "\\u"+s[:4])
	}
	return v, nil
}
