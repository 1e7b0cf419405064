package value

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MarshalCanonical produces a deterministic JSON encoding of v.
// This is the ONLY encoding used when operands are persisted or hashed.
//
// Differences from encoding/json:
//  1. No HTML escaping (< > & are written as is)
//  2. Integral floats keep a ".0" suffix (or an exponent) so they decode
//     back as Float
//  3. Range is written as an object with a fixed key order
//  4. NaN, infinities and invalid UTF-8 are rejected
//
// String content is never normalised: operands are rendered verbatim, so
// the stored form must be verbatim too.
func MarshalCanonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case String:
		b, err := marshalString(string(val))
		if err != nil {
			return err
		}
		buf.Write(b)
	case Int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case Float:
		f := float64(val)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("non-finite float is not encodable: %v", f)
		}
		s := formatFloat(f)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		buf.WriteString(s)
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(val)))
	case List:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case Range:
		buf.WriteString(`{"max":`)
		if err := writeCanonical(buf, val.Max); err != nil {
			return fmt.Errorf("%s: %w", keyMax, err)
		}
		fmt.Fprintf(buf, `,"max_open":%t,"min":`, val.MaxOpen)
		if err := writeCanonical(buf, val.Min); err != nil {
			return fmt.Errorf("%s: %w", keyMin, err)
		}
		fmt.Fprintf(buf, `,"min_open":%t}`, val.MinOpen)
	default:
		return fmt.Errorf("unsupported value type: %T", v)
	}
	return nil
}

// marshalString encodes s as a JSON string without HTML escaping. Invalid
// UTF-8 is rejected: encoding/json would replace it with U+FFFD and the
// decoded string would no longer match.
func marshalString(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("string %q is not valid UTF-8", s)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	// json.Encoder adds trailing newline, remove it
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Fingerprint computes a SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + part + 0x00 + part ...)
// The null separators keep part boundaries unambiguous.
func Fingerprint(domain string, parts ...[]byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	for _, p := range parts {
		h.Write([]byte{0x00})
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
