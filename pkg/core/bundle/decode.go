package bundle

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
)

// legacyEncodings are tried, in order, before UTF-8. x/text ships the
// WHATWG EUC-KR table, which is the CP949 superset, so the single
// entry covers both Korean code pages DART documents appear in.
var legacyEncodings = []encoding.Encoding{
	korean.EUCKR,
}

// DecodeKorean converts raw document bytes to a string. Each candidate
// encoding is tried strictly; the first clean decode wins. If nothing
// decodes cleanly, the bytes are force-decoded as UTF-8 with invalid
// sequences dropped. DecodeKorean never fails.
func DecodeKorean(data []byte) string {
	for _, enc := range legacyEncodings {
		if out, ok := decodeStrict(data, enc); ok {
			return out
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	return strings.ToValidUTF8(string(data), "")
}

// decodeStrict decodes with enc and reports whether the result is
// clean. x/text decoders substitute U+FFFD for undecodable input
// instead of erroring, so a replacement rune in the output marks the
// decode as failed.
func decodeStrict(data []byte, enc encoding.Encoding) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", false
	}
	return s, true
}
