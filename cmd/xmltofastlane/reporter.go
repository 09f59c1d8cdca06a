package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/communitymedia/mediaphone/common/i18n"
	"github.com/communitymedia/mediaphone/exporter"
	"github.com/communitymedia/mediaphone/listing"
)

const (
	ansiRed    = "\033[91m"
	ansiYellow = "\033[93m"
	ansiReset  = "\033[0m"
)

func colorEnabled() bool {
	if noColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorize(color, s string) string {
	if !colorEnabled() {
		return s
	}
	return color + s + ansiReset
}

func localeLabel(src exporter.Source) string {
	if src.IsDefault() {
		return i18n.I18nMsg.Common.DefaultLocaleLabel
	}
	return src.Code
}

func printWarning(warn listing.LengthWarning) {
	fmt.Println(colorize(ansiYellow, fmt.Sprintf(i18n.I18nMsg.Export.WarningTooLong, warn.Length, warn.Limit, warn.Selector, warn.Text)))
}

// consoleReporter prints one line per locale and written file.
type consoleReporter struct{}

func (consoleReporter) ChangelogFound(path string) {
	fmt.Printf(i18n.I18nMsg.Export.ChangelogFound+"\n", path)
}

func (consoleReporter) SourceStarted(src exporter.Source, _, _ int) {
	fmt.Printf(i18n.I18nMsg.Export.ProcessingLocale+"\n", localeLabel(src))
}

func (consoleReporter) FileWritten(_ exporter.Source, path string) {
	fmt.Printf(i18n.I18nMsg.Export.WritingTo+"\n", path)
}

func (consoleReporter) FieldTooLong(_ exporter.Source, warn listing.LengthWarning) {
	printWarning(warn)
}

func (consoleReporter) SourceDone(exporter.Source, int, int) {}

func (consoleReporter) SourceSkipped(src exporter.Source) {
	fmt.Printf(i18n.I18nMsg.Export.SkippingLocale+"\n", localeLabel(src))
}

// progressReporter renders a bar while exporting and holds warnings back
// until the bar is finished.
type progressReporter struct {
	consoleReporter
	progress *mpb.Progress
	bar      *mpb.Bar
	warnings []listing.LengthWarning
}

func newProgressReporter() *progressReporter {
	return &progressReporter{progress: mpb.New(mpb.WithWidth(60))}
}

func (r *progressReporter) SourceStarted(src exporter.Source, _, total int) {
	if r.bar == nil {
		r.bar = r.progress.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name(i18n.I18nMsg.Export.ProgressBarName, decor.WCSyncSpaceR),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.Counters(0, " | %d/%d"),
			),
		)
	}
}

func (r *progressReporter) FileWritten(exporter.Source, string) {}

func (r *progressReporter) FieldTooLong(_ exporter.Source, warn listing.LengthWarning) {
	r.warnings = append(r.warnings, warn)
}

func (r *progressReporter) SourceSkipped(exporter.Source) {}

func (r *progressReporter) SourceDone(exporter.Source, int, int) {
	r.bar.Increment()
}

// Wait stops rendering and prints the held warnings.
func (r *progressReporter) Wait() {
	if r.bar != nil && !r.bar.Completed() {
		r.bar.Abort(false)
	}
	r.progress.Wait()
	for _, warn := range r.warnings {
		printWarning(warn)
	}
}
