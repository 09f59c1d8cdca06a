package i18n

// LocalesMessages holds locales command strings
type LocalesMessages struct {
	Use   string
	Short string
	Long  string

	FlagJSON string

	TotalLocales  string
	Unmapped      string
	MissingHeader string
}

// English locales messages
var EnglishLocalesMessages = LocalesMessages{
	Use:   "locales",
	Short: "List translation files and their fastlane locales",
	Long:  `Find every store listing translation and show the fastlane locale it would be written to, without writing anything.`,

	FlagJSON: "output as JSON",

	TotalLocales:  "Total locales: %d",
	Unmapped:      "(derived)",
	MissingHeader: "\nMapped locales without a translation file:",
}
