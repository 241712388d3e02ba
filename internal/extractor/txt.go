package extractor

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExtractTXT decodes a plain-text file, tolerating the usual encoding
// mess: UTF-8/UTF-16 BOMs, bare UTF-8, and Windows-1252/Latin-1
// leftovers. Undecodable bytes never fail the extraction, they just
// pass through.
func ExtractTXT(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	return cleanText(decodeText(data)), nil
}

func decodeText(data []byte) string {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:])
	}

	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, _, err := transform.Bytes(decoder, data); err == nil {
			return string(decoded)
		}
	}

	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		if decoded, _, err := transform.Bytes(decoder, data); err == nil {
			return string(decoded)
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	if decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data); err == nil {
		return string(decoded)
	}
	if decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data); err == nil {
		return string(decoded)
	}

	return string(data)
}

func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	var cleanedLines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
