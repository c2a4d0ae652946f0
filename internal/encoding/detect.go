// Package encoding normalizes bank statement files to UTF-8. Brazilian bank
// exports come in a mix of UTF-8, Windows-1252 and ISO-8859-1, often with a
// BOM, and the CSV layer should not have to care.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize is how much of the file the detector looks at. Statement headers
// plus a few rows are plenty for a charset guess.
const peekSize = 4096

type bom struct {
	prefix  []byte
	decoder func() transform.Transformer
}

var boms = []bom{
	{
		// The UTF-8 BOM carries no information, strip it.
		prefix:  []byte{0xEF, 0xBB, 0xBF},
		decoder: nil,
	},
	{
		prefix: []byte{0xFF, 0xFE},
		decoder: func() transform.Transformer {
			return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		},
	},
	{
		prefix: []byte{0xFE, 0xFF},
		decoder: func() transform.Transformer {
			return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		},
	},
}

// NewUTF8Reader wraps r in a reader that yields UTF-8, whatever the source
// encoding was. Order of attempts: BOM, valid UTF-8 as-is, chardet guess,
// Windows-1252 fallback (the safe bet for Brazilian bank files).
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peeking input: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(head, b.prefix) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.prefix))
			return br, nil
		}

		return transform.NewReader(br, b.decoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if dec := detectedDecoder(head); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func detectedDecoder(head []byte) transform.Transformer {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	case "ISO-8859-9":
		return charmap.ISO8859_9.NewDecoder()
	default:
		return nil
	}
}
