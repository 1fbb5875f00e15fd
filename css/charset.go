package css

import (
	"bytes"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"golang.org/x/net/html/charset"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// DetectCharset returns the encoding label of a stylesheet and the number of
// BOM bytes to skip. A BOM wins over an @charset rule; without either the
// stylesheet is UTF-8.
func DetectCharset(data []byte) (string, int) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "utf-8", len(bomUTF8)
	case bytes.HasPrefix(data, bomUTF16BE):
		return "utf-16be", len(bomUTF16BE)
	case bytes.HasPrefix(data, bomUTF16LE):
		return "utf-16le", len(bomUTF16LE)
	}

	// @charset must be the very first thing and use double quotes
	const prefix = `@charset "`
	if !bytes.HasPrefix(data, []byte(prefix)) {
		return "utf-8", 0
	}
	rest := data[len(prefix):]
	end := bytes.IndexByte(rest, '"')
	if end <= 0 || !bytes.HasPrefix(rest[end:], []byte(`";`)) {
		return "utf-8", 0
	}
	return string(parse.ToLower(bytes.Clone(rest[:end]))), 0
}

// DecodeInput converts a stylesheet to UTF-8 and returns the encoding label
// it was decoded from.
func DecodeInput(data []byte) ([]byte, string, error) {
	label, skip := DetectCharset(data)
	data = data[skip:]
	if label == "utf-8" {
		return data, label, nil
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, label, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, label, fmt.Errorf("unable to decode %s input: %w", label, err)
	}
	return out, label, nil
}
