// Package textenc decodes text that may arrive in legacy single-byte
// encodings alongside UTF-8.
package textenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable means no candidate encoding could decode the input.
var ErrUndecodable = errors.New("text not decodable by any candidate encoding")

type candidate struct {
	name string
	cm   *charmap.Charmap
}

// Fallback chain for DMD files: exporters on Windows commonly wrote object
// names in Windows-1251; Latin-1 defines all 256 bytes and is the terminal
// fallback.
var candidates = []candidate{
	{"windows-1251", charmap.Windows1251},
	{"latin-1", charmap.ISO8859_1},
}

// Decode converts raw bytes to a UTF-8 string, trying UTF-8 first and then
// each legacy fallback in order. An attempt fails when the charmap leaves
// any input byte undefined (Windows-1251 has gaps like 0x98), so the next
// candidate gets its turn instead of the output carrying replacement
// characters. Decode returns the decoded text and the name of the encoding
// that succeeded; the error lists every attempted encoding when all fail.
func Decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	for _, c := range candidates {
		if decoded, ok := decodeStrict(c.cm, data); ok {
			return decoded, c.name, nil
		}
	}

	names := make([]string, 0, len(candidates)+1)
	names = append(names, "utf-8")
	for _, c := range candidates {
		names = append(names, c.name)
	}
	return "", "", fmt.Errorf("%w: tried %s", ErrUndecodable, strings.Join(names, ", "))
}

// decodeStrict maps every byte through the charmap, failing the attempt on
// a byte the charmap leaves undefined rather than substituting U+FFFD.
func decodeStrict(cm *charmap.Charmap, data []byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		r := cm.DecodeByte(b)
		if r == utf8.RuneError {
			return "", false
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}
