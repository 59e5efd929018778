// Package canon produces the canonical byte form used wherever results are
// hashed or compared against golden files: RFC 8785 style JSON with UTF-16
// key ordering, NFC-normalized strings, and no floats or nulls.
//
// Determinism is the whole point. Two structurally equal result maps must
// marshal to identical bytes on every platform, so content-addressed IDs and
// golden snapshots stay stable.
package canon

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Marshal serializes v to canonical JSON. Supported shapes: string, int,
// int64, bool, []any, and map[string]any, nested arbitrarily. Floats and
// nils are rejected: they have no canonical form here.
func Marshal(v any) ([]byte, error) {
	var b strings.Builder
	if err := marshal(&b, v); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func marshal(b *strings.Builder, v any) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("null has no canonical form")
	case bool:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case int:
		fmt.Fprintf(b, "%d", val)
	case int64:
		fmt.Fprintf(b, "%d", val)
	case string:
		writeString(b, val)
	case []any:
		b.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := marshal(b, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, compareUTF16)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, k)
			b.WriteByte(':')
			if err := marshal(b, val[k]); err != nil {
				return fmt.Errorf("[%q]: %w", k, err)
			}
		}
		b.WriteByte('}')
	case float32, float64:
		return fmt.Errorf("floats have no canonical form: %v", val)
	default:
		return fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
	return nil
}

// writeString emits a JSON string with NFC normalization applied first.
// Only the quote, backslash, and control characters are escaped; HTML
// characters and U+2028/U+2029 pass through literally per RFC 8785.
func writeString(b *strings.Builder, s string) {
	s = norm.NFC.String(s)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else if r == utf8.RuneError {
				// Preserve replacement semantics for invalid UTF-8.
				b.WriteRune(utf8.RuneError)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// compareUTF16 orders keys by UTF-16 code units as RFC 8785 requires.
// UTF-8 byte order differs for characters outside the BMP, so plain string
// comparison is not a substitute.
func compareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}
