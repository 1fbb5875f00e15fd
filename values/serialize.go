package values

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/css"
)

// SerializeIdentifier escapes value so that it parses back as a single
// identifier with the same text.
func SerializeIdentifier(value string) string {
	if value == "" {
		return ""
	}
	if !strings.ContainsRune(value, '\\') && css.IsIdent([]byte(value)) {
		return value
	}
	if value == "-" {
		return `\-`
	}
	var sb strings.Builder
	if strings.HasPrefix(value, "--") {
		sb.WriteString("--")
		writeName(&sb, value[2:])
		return sb.String()
	}
	if value[0] == '-' {
		sb.WriteByte('-')
		value = value[1:]
	}
	r, w := utf8.DecodeRuneInString(value)
	switch {
	case r >= '0' && r <= '9':
		fmt.Fprintf(&sb, "\\%x ", r)
	case isNameStart(r):
		sb.WriteRune(r)
	default:
		writeEscaped(&sb, r)
	}
	writeName(&sb, value[w:])
	return sb.String()
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7F
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || (r >= '0' && r <= '9')
}

func writeName(sb *strings.Builder, value string) {
	for _, r := range value {
		if isNameChar(r) {
			sb.WriteRune(r)
			continue
		}
		writeEscaped(sb, r)
	}
}

func writeEscaped(sb *strings.Builder, r rune) {
	switch {
	case r < 0x20 || r == 0x7F:
		fmt.Fprintf(sb, "\\%x ", r)
	default:
		sb.WriteByte('\\')
		sb.WriteRune(r)
	}
}

// SerializeString returns value as a double quoted CSS string.
func SerializeString(value string) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte('"')
	for _, r := range value {
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			fmt.Fprintf(&sb, "\\%x ", r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// UnquoteString strips the quotes of a string token and resolves escapes.
func UnquoteString(data []byte) string {
	if len(data) >= 2 && (data[0] == '"' || data[0] == '\'') {
		end := len(data)
		if data[end-1] == data[0] {
			end--
		}
		data = data[1:end]
	}
	return Unescape(data)
}

// Unescape resolves CSS escape sequences in identifier or string data.
func Unescape(data []byte) string {
	if !strings.ContainsRune(string(data), '\\') {
		return string(data)
	}
	var sb strings.Builder
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			sb.WriteByte(data[i])
			continue
		}
		i++
		switch {
		case data[i] == '\n':
			// escaped newline inside a string is a line continuation
		case isHex(data[i]):
			j := i
			for j < len(data) && j-i < 6 && isHex(data[j]) {
				j++
			}
			code, _ := strconv.ParseUint(string(data[i:j]), 16, 32)
			r := rune(code)
			if r == 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
				r = utf8.RuneError
			}
			sb.WriteRune(r)
			if j < len(data) && (data[j] == ' ' || data[j] == '\t' || data[j] == '\n') {
				j++
			}
			i = j - 1
		default:
			sb.WriteByte(data[i])
		}
	}
	return sb.String()
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
