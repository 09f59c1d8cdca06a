// Package exporter writes fastlane store listing files from Android string resources.
//
// An export first checks that the release changelog exists, then reads every
// values*/<file>.xml translation, default locale first, and writes its title,
// short description and full description to <output>/<locale>/<field>.txt.
// A locale without a title of its own gets the default locale's title.
package exporter

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/communitymedia/mediaphone/common/config"
	"github.com/communitymedia/mediaphone/common/file"
	"github.com/communitymedia/mediaphone/listing"
	"github.com/communitymedia/mediaphone/locale"
)

// Exporter runs exports for one configuration.
type Exporter struct {
	cfg      *config.Config
	locales  *locale.Map
	matcher  *locale.PathMatcher
	title    listing.Field
	short    listing.Field
	full     listing.Field
	reporter Reporter
}

// New creates an Exporter. A nil reporter discards events.
func New(cfg *config.Config, reporter Reporter) *Exporter {
	if reporter == nil {
		reporter = NopReporter{}
	}
	title, short, full := cfg.Fields()
	return &Exporter{
		cfg:      cfg,
		locales:  cfg.LocaleMap(),
		matcher:  locale.NewPathMatcher(cfg.TranslationsFile),
		title:    title,
		short:    short,
		full:     full,
		reporter: reporter,
	}
}

// Locales returns the locale table in use.
func (e *Exporter) Locales() *locale.Map {
	return e.locales
}

// ChangelogPath is where fastlane expects the default locale's changelog for versionCode.
func (e *Exporter) ChangelogPath(versionCode int) string {
	return filepath.Join(e.cfg.OutputPath, e.locales.Default(), "changelogs", fmt.Sprintf("%d.txt", versionCode))
}

// CheckChangelog verifies the changelog for versionCode exists and returns its path.
// Changelogs are written by hand and never generated here.
func (e *Exporter) CheckChangelog(versionCode int) (string, error) {
	if versionCode <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidVersionCode, versionCode)
	}
	path := e.ChangelogPath(versionCode)
	if !file.Exists(path) {
		return path, fmt.Errorf("%w: versionCode %d, expected at %s", ErrChangelogMissing, versionCode, path)
	}
	e.reporter.ChangelogFound(path)
	return path, nil
}

// Pattern is the glob used to find translation files.
func (e *Exporter) Pattern() string {
	return filepath.Join(e.cfg.TranslationsPath, "values*", e.cfg.TranslationsFile+".xml")
}

// Discover finds all translation files, default locale first and the rest by path.
func (e *Exporter) Discover() ([]Source, error) {
	matches, err := filepath.Glob(e.Pattern())
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", e.Pattern(), err)
	}

	sources := make([]Source, 0, len(matches))
	for _, path := range matches {
		if !file.IsRegular(path) {
			continue
		}
		code, ok := e.matcher.Code(path)
		if !ok {
			continue
		}
		_, mapped := e.locales.Lookup(code)
		sources = append(sources, Source{
			Path:   path,
			Code:   code,
			Locale: e.locales.Translate(code),
			Mapped: mapped,
		})
	}
	SortSources(sources)
	return sources, nil
}

// SortSources orders sources so the default locale comes first and the
// rest follow by path. The fallback title depends on this order.
func SortSources(sources []Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		if sources[i].IsDefault() != sources[j].IsDefault() {
			return sources[i].IsDefault()
		}
		return sources[i].Path < sources[j].Path
	})
}

// Missing returns the mapped Android codes that have no source, in sorted order.
func (e *Exporter) Missing(sources []Source) []string {
	present := make(map[string]bool, len(sources))
	for _, src := range sources {
		present[src.Code] = true
	}
	var missing []string
	for _, code := range e.locales.Codes() {
		if !present[code] {
			missing = append(missing, code)
		}
	}
	return missing
}

// OutputDir is the fastlane directory for src.
func (e *Exporter) OutputDir(src Source) string {
	return filepath.Join(e.cfg.OutputPath, src.Locale)
}

// Run checks the changelog for versionCode and exports every discovered
// source accepted by filter. A nil filter accepts all sources.
func (e *Exporter) Run(versionCode int, filter func(Source) bool) (*Result, error) {
	changelog, err := e.CheckChangelog(versionCode)
	if err != nil {
		return nil, err
	}
	sources, err := e.Discover()
	if err != nil {
		return nil, err
	}
	res, err := e.Export(sources, filter)
	if res != nil {
		res.Changelog = changelog
	}
	return res, err
}

// Export processes sources in order. Sources rejected by filter are still
// read so they can provide the fallback title, but nothing is written or
// reported for them beyond SourceSkipped. index and total passed to the
// reporter count selected sources only. Processing stops at the first error.
func (e *Exporter) Export(sources []Source, filter func(Source) bool) (*Result, error) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	SortSources(ordered)

	selected := make([]bool, len(ordered))
	total := 0
	for i, src := range ordered {
		selected[i] = filter == nil || filter(src)
		if selected[i] {
			total++
		}
	}

	res := &Result{Sources: make([]SourceResult, 0, len(ordered))}
	var fallback Value
	index := 0
	for i, src := range ordered {
		write := selected[i]
		if write {
			e.reporter.SourceStarted(src, index, total)
		} else {
			e.reporter.SourceSkipped(src)
		}

		sr, err := e.process(src, fallback, write)
		if err != nil {
			return res, err
		}
		if !fallback.OK {
			fallback = sr.Title
		}
		res.Sources = append(res.Sources, sr)
		if write {
			e.reporter.SourceDone(src, index, total)
			index++
		}
	}
	return res, nil
}

// ProcessSource exports a single source. fallback is written as the title
// when the document has none.
func (e *Exporter) ProcessSource(src Source, fallback Value) (SourceResult, error) {
	return e.process(src, fallback, true)
}

func (e *Exporter) process(src Source, fallback Value, write bool) (SourceResult, error) {
	sr := SourceResult{Source: src, Skipped: !write}

	doc, err := listing.ParseFile(src.Path)
	if err != nil {
		return sr, err
	}

	title := e.extract(doc, e.title, src, &sr, write)
	sr.Title = title
	if !title.OK && fallback.OK {
		title = fallback
		sr.FallbackTitle = true
	}
	short := e.extract(doc, e.short, src, &sr, write)
	full := e.extract(doc, e.full, src, &sr, write)

	if !write {
		return sr, nil
	}

	dir := e.OutputDir(src)
	for _, out := range []struct {
		field listing.Field
		value Value
	}{
		{e.title, title},
		{e.short, short},
		{e.full, full},
	} {
		if !out.value.OK {
			continue
		}
		path, err := file.WriteText(dir, out.field.FileName(), out.value.Text)
		if err != nil {
			return sr, fmt.Errorf("write %s: %w", filepath.Join(dir, out.field.FileName()), err)
		}
		sr.Written = append(sr.Written, path)
		e.reporter.FileWritten(src, path)
	}
	return sr, nil
}

func (e *Exporter) extract(doc *listing.Document, f listing.Field, src Source, sr *SourceResult, report bool) Value {
	text, ok, warn := doc.Text(f)
	if warn != nil {
		sr.Warnings = append(sr.Warnings, *warn)
		if report {
			e.reporter.FieldTooLong(src, *warn)
		}
	}
	return Value{Text: text, OK: ok}
}
