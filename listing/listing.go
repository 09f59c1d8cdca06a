// Package listing reads Android store-listing resource files.
//
// A store listing is an ordinary Android string resource file whose
// <string> elements carry the Play Store title and descriptions:
//
//	<resources>
//	    <string name="title">Com-Phone Story Maker</string>
//	    <string name="short_description">Make multimedia stories</string>
//	    <string name="full_description">…</string>
//	</resources>
package listing

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Field names one extracted resource and its store length limit.
type Field struct {
	Name  string
	Limit int
}

// Store limits for the three listing fields. The full description is plain
// text with line breaks; Google Play renders only a small subset of HTML.
var (
	Title            = Field{Name: "title", Limit: 50}
	ShortDescription = Field{Name: "short_description", Limit: 80}
	FullDescription  = Field{Name: "full_description", Limit: 4000}
)

// FileName is the fastlane file the field is written to.
func (f Field) FileName() string {
	return f.Name + ".txt"
}

// Selector describes the element the field is read from.
func (f Field) Selector() string {
	return fmt.Sprintf(`.//string[@name="%s"]`, f.Name)
}

// LengthWarning reports text longer than its field's limit.
type LengthWarning struct {
	Selector string
	Limit    int
	Length   int
	Text     string
}

func (w LengthWarning) String() string {
	return fmt.Sprintf("text length of %d is longer than limit of %d characters for selector %s", w.Length, w.Limit, w.Selector)
}

// Document holds the raw text of the first <string> element for each name.
type Document struct {
	texts map[string]string
}

// ParseFile parses the resource file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

type pendingText struct {
	name string
	buf  bytes.Buffer
}

// Parse reads a resource document. Only <string> elements below the root are
// considered, at any depth. An element's text ends at its first child element;
// text of elements with an empty body is recorded as absent.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{texts: make(map[string]string)}
	seen := make(map[string]bool)

	dec := xml.NewDecoder(r)
	depth := 0
	sawRoot := false
	var cur *pendingText

	flush := func() {
		if cur != nil && cur.buf.Len() > 0 {
			doc.texts[cur.name] = cur.buf.String()
		}
		cur = nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			flush()
			if depth > 0 && t.Name.Space == "" && t.Name.Local == "string" {
				if name, ok := nameAttr(t); ok && !seen[name] {
					seen[name] = true
					cur = &pendingText{name: name}
				}
			}
			depth++
			sawRoot = true
		case xml.EndElement:
			flush()
			depth--
		case xml.CharData:
			if cur != nil {
				cur.buf.Write(t)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("no root element")
	}
	if depth != 0 {
		return nil, fmt.Errorf("unexpected end of document")
	}
	return doc, nil
}

func nameAttr(el xml.StartElement) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Name.Space == "" && attr.Name.Local == "name" {
			return attr.Value, true
		}
	}
	return "", false
}

// Unescape trims s and removes Android string escapes for quotes.
func Unescape(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `\'`, `'`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s
}

// Text returns the cleaned text of field f. ok is false when the element is
// missing or empty. Text over the field's limit is returned whole together
// with a warning; a limit of zero disables the check.
func (d *Document) Text(f Field) (text string, ok bool, warn *LengthWarning) {
	raw, ok := d.texts[f.Name]
	if !ok {
		return "", false, nil
	}
	text = Unescape(raw)
	if n := utf8.RuneCountInString(text); f.Limit > 0 && n > f.Limit {
		warn = &LengthWarning{
			Selector: f.Selector(),
			Limit:    f.Limit,
			Length:   n,
			Text:     text,
		}
	}
	return text, true, warn
}
