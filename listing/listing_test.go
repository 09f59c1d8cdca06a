package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `<?xml version="1.0" encoding="utf-8"?>
<resources xmlns:tools="http://schemas.android.com/tools">
	<string name="title">  Com-Phone Story Maker  </string>
	<string name="short_description">Make \'stories\' with \"photos\" &amp; audio</string>
	<group>
		<string name="full_description"><![CDATA[Line one<br />]]>
Line two</string>
	</group>
	<string name="title">Duplicate title</string>
	<string name="empty"></string>
	<string name="blank">   </string>
	<string name="mixed">Before <b>bold</b> after</string>
</resources>
`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestDocument_Text(t *testing.T) {
	doc := parseSample(t)

	cases := []struct {
		name  string
		field Field
		want  string
		ok    bool
	}{
		{"TrimmedFirstMatch", Title, "Com-Phone Story Maker", true},
		{"Unescaped", ShortDescription, `Make 'stories' with "photos" & audio`, true},
		{"NestedWithCDATA", FullDescription, "Line one<br />\nLine two", true},
		{"Missing", Field{Name: "missing"}, "", false},
		{"Empty", Field{Name: "empty"}, "", false},
		{"WhitespaceOnly", Field{Name: "blank"}, "", true},
		{"TextBeforeFirstChild", Field{Name: "mixed"}, "Before", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok, warn := doc.Text(c.field)
			if ok != c.ok || got != c.want {
				t.Fatalf("Text(%s) = %q, %v; want %q, %v", c.field.Name, got, ok, c.want, c.ok)
			}
			if warn != nil {
				t.Fatalf("unexpected warning: %v", warn)
			}
		})
	}
}

func TestDocument_TextLengthWarning(t *testing.T) {
	long := strings.Repeat("é", 51)
	doc, err := Parse(strings.NewReader(`<resources><string name="title">` + long + `</string></resources>`))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("OverLimit", func(t *testing.T) {
		got, ok, warn := doc.Text(Title)
		if !ok || got != long {
			t.Fatalf("oversized text must be returned untruncated, got %q", got)
		}
		if warn == nil {
			t.Fatal("expected a length warning")
		}
		if warn.Limit != 50 || warn.Length != 51 || warn.Selector != `.//string[@name="title"]` {
			t.Fatalf("unexpected warning: %+v", warn)
		}
	})
	t.Run("CountsCharactersNotBytes", func(t *testing.T) {
		_, _, warn := doc.Text(Field{Name: "title", Limit: 51})
		if warn != nil {
			t.Fatalf("51 characters should fit a limit of 51: %v", warn)
		}
	})
	t.Run("ZeroLimitDisablesCheck", func(t *testing.T) {
		_, _, warn := doc.Text(Field{Name: "title"})
		if warn != nil {
			t.Fatalf("unexpected warning: %v", warn)
		}
	})
}

func TestParse_RootIsNotMatched(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<string name="title">Root</string>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := doc.Text(Title); ok {
		t.Fatal("the root element itself must not be matched")
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"<resources><string name=\"title\">x</resources>",
		"<resources><string name=\"title\">x</string>",
		"not xml",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Fatalf("Parse(%q) should fail", in)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store_listing.xml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	_, hasTitle, _ := doc.Text(Title)
	_, hasEmpty, _ := doc.Text(Field{Name: "empty"})
	if !hasTitle || hasEmpty {
		t.Fatalf("unexpected document contents")
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Fatal("ParseFile on a missing file should fail")
	}
}

func TestField_FileName(t *testing.T) {
	if got := FullDescription.FileName(); got != "full_description.txt" {
		t.Fatalf("FileName() = %q", got)
	}
}
