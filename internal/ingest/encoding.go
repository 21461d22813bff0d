package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodingAuto requests encoding detection.
const EncodingAuto = "auto"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	iso2022Escapes = [][]byte{
		{0x1B, '$', 'B'},
		{0x1B, '$', '@'},
		{0x1B, '(', 'J'},
		{0x1B, '(', 'I'},
	}
)

type candidate struct {
	name string
	enc  encoding.Encoding
}

// legacyCandidates are tried in order when the input is neither Unicode nor
// ISO-2022-JP. Shift_JIS wins ties since the registrar exports it.
var legacyCandidates = []candidate{
	{name: "shift_jis", enc: japanese.ShiftJIS},
	{name: "euc-jp", enc: japanese.EUCJP},
}

// DetectEncoding guesses the text encoding of data and returns the encoding
// together with its canonical name.
func DetectEncoding(data []byte) (encoding.Encoding, string) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return unicode.UTF8BOM, "utf-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), "utf-16be"
	}
	for _, esc := range iso2022Escapes {
		if bytes.Contains(data, esc) {
			return japanese.ISO2022JP, "iso-2022-jp"
		}
	}
	if utf8.Valid(data) {
		return unicode.UTF8, "utf-8"
	}

	best := legacyCandidates[0]
	bestScore := -1
	for _, c := range legacyCandidates {
		decoded, _, err := transform.Bytes(c.enc.NewDecoder(), data)
		if err != nil {
			continue
		}
		score := legacyScore(decoded)
		if bestScore < 0 || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best.enc, best.name
}

// legacyScore penalizes replacement characters and half-width katakana. EUC-JP
// bytes read as Shift_JIS decode cleanly but mostly into half-width kana,
// which real transcripts do not contain.
func legacyScore(decoded []byte) int {
	score := 0
	for _, r := range string(decoded) {
		switch {
		case r == utf8.RuneError:
			score += 2
		case r >= 0xFF61 && r <= 0xFF9F:
			score++
		}
	}
	return score
}

// ResolveEncoding returns the encoding for a configured name. An empty name or
// "auto" returns nil, meaning the caller should detect.
func ResolveEncoding(name string) (encoding.Encoding, string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" || trimmed == EncodingAuto {
		return nil, "", nil
	}
	enc, err := htmlindex.Get(trimmed)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = trimmed
	}
	return enc, canonical, nil
}

// Decode converts data to UTF-8 text. When forced is empty or "auto" the
// encoding is detected; the chosen encoding name is returned. A leading
// UTF-8 or UTF-16 BOM is stripped in either case.
func Decode(data []byte, forced string) (string, string, error) {
	enc, name, err := ResolveEncoding(forced)
	if err != nil {
		return "", "", newError(ErrUnknownEncoding, strings.TrimSpace(forced), nil)
	}
	if enc == nil {
		enc, name = DetectEncoding(data)
	}
	// A Unicode BOM wins over the named encoding and is never part of the text.
	decoded, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", name, newError(ErrDecode, name, err)
	}
	return string(decoded), name, nil
}
