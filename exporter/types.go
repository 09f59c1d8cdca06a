package exporter

import (
	"errors"

	"github.com/communitymedia/mediaphone/listing"
	"github.com/communitymedia/mediaphone/locale"
)

var (
	// ErrChangelogMissing means no changelog exists for the requested versionCode.
	ErrChangelogMissing = errors.New("changelog file not found")
	// ErrInvalidVersionCode is returned for versionCodes below 1.
	ErrInvalidVersionCode = errors.New("versionCode must be a positive integer")
)

// Source is one store listing translation file.
type Source struct {
	// Path of the XML file.
	Path string `json:"path"`
	// Code is the Android suffix of its values directory, "" for the default locale.
	Code string `json:"android_code"`
	// Locale is the fastlane identifier the files are written under.
	Locale string `json:"locale"`
	// Mapped is false when Locale was derived from Code rather than looked up.
	Mapped bool `json:"mapped"`
}

// IsDefault reports whether s is the unsuffixed values directory.
func (s Source) IsDefault() bool {
	return s.Code == locale.DefaultCode
}

// Value is an optional extracted field value.
type Value struct {
	Text string
	OK   bool
}

// SourceResult describes what was done for one source.
type SourceResult struct {
	Source Source
	// Title is the document's own title, before any fallback.
	Title Value
	// FallbackTitle is true when the written title came from another locale.
	FallbackTitle bool
	// Skipped is true when the source was filtered out and nothing was written.
	Skipped bool
	// Written lists the files created.
	Written  []string
	Warnings []listing.LengthWarning
}

// Result summarises an export run.
type Result struct {
	Changelog string
	Sources   []SourceResult
}

// Files returns the number of files written.
func (r *Result) Files() int {
	n := 0
	for _, s := range r.Sources {
		n += len(s.Written)
	}
	return n
}

// Locales returns the number of sources that had files written.
func (r *Result) Locales() int {
	n := 0
	for _, s := range r.Sources {
		if len(s.Written) > 0 {
			n++
		}
	}
	return n
}

// Reporter receives export events, in processing order.
type Reporter interface {
	ChangelogFound(path string)
	SourceStarted(src Source, index, total int)
	FileWritten(src Source, path string)
	FieldTooLong(src Source, warn listing.LengthWarning)
	SourceDone(src Source, index, total int)
	SourceSkipped(src Source)
}

// NopReporter ignores all events.
type NopReporter struct{}

func (NopReporter) ChangelogFound(string) {}
func (NopReporter) SourceStarted(Source, int, int) {}
func (NopReporter) FileWritten(Source, string) {}
func (NopReporter) FieldTooLong(Source, listing.LengthWarning) {}
func (NopReporter) SourceDone(Source, int, int) {}
func (NopReporter) SourceSkipped(Source) {}
