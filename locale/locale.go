// Package locale maps Android resource locale suffixes to fastlane locale identifiers.
package locale

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// DefaultCode is the Android suffix of the unqualified values directory.
const DefaultCode = ""

// Android codes without an entry here fall back to the code minus its leading dash.
var defaultEntries = map[string]string{
	"":    "en-US",
	"-es": "es-ES",
	"-fr": "fr-FR",
	"-nl": "nl-NL",
	"-pt": "pt-PT",
	"-pl": "pl-PL",
	"-ru": "ru-RU",
}

// Map is an immutable Android suffix to fastlane locale table.
type Map struct {
	entries map[string]string
}

// NewMap builds a Map from entries. The input is copied.
func NewMap(entries map[string]string) *Map {
	m := &Map{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

// DefaultEntries returns a copy of the built-in table.
func DefaultEntries() map[string]string {
	out := make(map[string]string, len(defaultEntries))
	for k, v := range defaultEntries {
		out[k] = v
	}
	return out
}

// Lookup returns the configured identifier for code, if any.
func (m *Map) Lookup(code string) (string, bool) {
	id, ok := m.entries[code]
	return id, ok
}

// Translate returns the fastlane identifier for an Android code. Unmapped codes
// lose their leading separator ("-de" becomes "de"); an unmapped empty code
// yields the empty string.
func (m *Map) Translate(code string) string {
	if id, ok := m.entries[code]; ok {
		return id
	}
	if code == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(code)
	return code[size:]
}

// Default is the identifier of the unsuffixed locale.
func (m *Map) Default() string {
	return m.Translate(DefaultCode)
}

// Codes returns the mapped Android codes in sorted order.
func (m *Map) Codes() []string {
	codes := make([]string, 0, len(m.entries))
	for k := range m.entries {
		codes = append(codes, k)
	}
	sort.Strings(codes)
	return codes
}

// PathMatcher derives Android locale codes from translation file paths.
type PathMatcher struct {
	re *regexp.Regexp
}

// NewPathMatcher matches "<anything>/values<code>/<resourceName>.xml",
// case-insensitively and with either path separator.
func NewPathMatcher(resourceName string) *PathMatcher {
	return &PathMatcher{
		re: regexp.MustCompile(`(?i)^.*[/\\]values([^/\\]*)[/\\]` + regexp.QuoteMeta(resourceName) + `\.xml$`),
	}
}

// Code returns the locale code embedded in path. The default locale yields ""
// with ok true.
func (p *PathMatcher) Code(path string) (string, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// androidRegion matches the Android "r" region qualifier, as in "pt-rBR".
var androidRegion = regexp.MustCompile(`-r([A-Za-z]{2}|[0-9]{3})$`)

// Validate reports whether id is a usable BCP 47 identifier. The Android
// "-rXX" region form is accepted.
func Validate(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("empty locale identifier")
	}
	normalized := androidRegion.ReplaceAllString(id, "-$1")
	if _, err := language.Parse(normalized); err != nil {
		return fmt.Errorf("invalid locale identifier %q: %w", id, err)
	}
	return nil
}

// ValidateCode reports whether code is an Android values-directory suffix.
func ValidateCode(code string) error {
	if code != "" && !strings.HasPrefix(code, "-") {
		return fmt.Errorf("android locale code %q must be empty or start with '-'", code)
	}
	return nil
}
