// Package encoding decodes object and group names found in model files.
//
// Exporters from older DCC tools write names in the system code page
// instead of UTF-8. Names that are not valid UTF-8 are decoded as EUC-KR,
// which also covers plain ASCII.
package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// DecodeName returns name as UTF-8. Valid UTF-8 is returned unchanged.
// Otherwise it is decoded as EUC-KR; if that fails too, invalid bytes are
// replaced with U+FFFD.
func DecodeName(name []byte) string {
	name = TrimNull(name)
	if utf8.Valid(name) {
		return string(name)
	}
	out, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), name)
	if err != nil || !utf8.Valid(out) {
		return strings.ToValidUTF8(string(name), "�")
	}
	return string(out)
}

// EncodeName converts a UTF-8 name to EUC-KR. The input is returned as-is
// when it has no EUC-KR representation.
func EncodeName(s string) []byte {
	out, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// TrimNull cuts data at the first null byte.
func TrimNull(data []byte) []byte {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return data[:i]
	}
	return data
}
