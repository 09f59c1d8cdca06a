// Package i18n holds the user-facing strings of the command line tool, grouped by command.
package i18n

// AllMessages holds all user-facing strings grouped by module
type AllMessages struct {
	App     AppMessages
	Common  CommonMessages
	Export  ExportMessages
	Locales LocalesMessages
	Pack    PackMessages
}

// EnglishAllMessages is the only message set shipped; fastlane metadata
// tooling here is run by the English-speaking release maintainers.
var EnglishAllMessages = AllMessages{
	App:     EnglishAppMessages,
	Common:  EnglishCommonMessages,
	Export:  EnglishExportMessages,
	Locales: EnglishLocalesMessages,
	Pack:    EnglishPackMessages,
}

// I18nMsg holds the current message set - Global variable for easy access
var I18nMsg = EnglishAllMessages
