package i18n

// ExportMessages holds export (root command) strings
type ExportMessages struct {
	FlagVersionCode string
	FlagLocales     string
	FlagInteractive string
	FlagProgress    string

	ChangelogFound       string
	ChangelogMissing     string
	ErrorInvalidVersion  string
	Generating           string
	ProcessingLocale     string
	SkippingLocale       string
	WritingTo            string
	WarningTooLong       string
	ErrorFailedToExport  string
	NoTranslationsFound  string
	ExportCompleted      string
	InteractiveSelection string
	SelectionCancelled   string
	NoLocalesSelected    string
	ProgressBarName      string
}

// English export messages
var EnglishExportMessages = ExportMessages{
	FlagVersionCode: "versionCode of the release; its changelog must exist",
	FlagLocales:     "comma-separated Android suffixes or fastlane locales to write (default all)",
	FlagInteractive: "choose the locales to write interactively",
	FlagProgress:    "show a progress bar instead of per-file output",

	ChangelogFound:       "Changelog file found (not translated):\n%s\n",
	ChangelogMissing:     "Error: No fastlane changelog file found for versionCode %d; expected at:\n%s",
	ErrorInvalidVersion:  "Error: versionCode must be a positive integer, got %d",
	Generating:           "Generating localised fastlane description files",
	ProcessingLocale:     "\nProcessing locale %s",
	SkippingLocale:       "\nSkipping locale %s (not selected)",
	WritingTo:            "Writing to %s",
	WarningTooLong:       "Warning: Text length of %d is longer than limit of %d characters for selector %s:\n%s",
	ErrorFailedToExport:  "Failed to export: %v",
	NoTranslationsFound:  "No translation files found under %s",
	ExportCompleted:      "\nWrote %d files for %d locales",
	InteractiveSelection: "Select locales to write:",
	SelectionCancelled:   "selection cancelled: %v",
	NoLocalesSelected:    "no locales selected",
	ProgressBarName:      "Exporting",
}
