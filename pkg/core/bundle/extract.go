package bundle

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText reads the named entry from the archive and returns its
// plain text.
//
// The entry's bytes are decoded with the Korean-first encoding chain,
// then parsed as XML with a tolerant decoder, concatenating all
// character data in document order. If the XML parse fails, the content
// is re-parsed as HTML instead; only an error from that final stage
// propagates.
func ExtractText(zipBytes []byte, entryName string) (string, error) {
	data, err := ReadEntry(zipBytes, entryName)
	if err != nil {
		return "", err
	}

	markup := DecodeKorean(data)

	if text, err := xmlText(markup); err == nil {
		return text, nil
	}

	return htmlText(markup)
}

// xmlText concatenates every character-data node of an XML document in
// document order. The decoder is deliberately loose: unknown entities
// and unclosed HTML-style tags are tolerated, and charset declarations
// are ignored because the input is already UTF-8.
func xmlText(markup string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if cd, ok := tok.(xml.CharData); ok {
			sb.Write(cd)
		}
	}

	return sb.String(), nil
}

// htmlText extracts the rendered text content of an HTML fragment.
func htmlText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("bundle: fallback HTML parse failed: %w", err)
	}
	return doc.Text(), nil
}
