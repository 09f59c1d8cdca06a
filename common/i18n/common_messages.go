package i18n

// CommonMessages holds strings shared between commands
type CommonMessages struct {
	// Error messages
	ErrorFailedToLoadConfig  string
	ErrorFailedToDiscover    string
	ErrorFailedToGetWorkDir  string
	ErrorInvalidLocaleFilter string
	ErrorFailedToMarshalJSON string

	// Common flag descriptions
	FlagRoot    string
	FlagRes     string
	FlagOut     string
	FlagConfig  string
	FlagNoColor string
	ElapsedTime string

	DefaultLocaleLabel string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToLoadConfig:  "Failed to load config: %v",
	ErrorFailedToDiscover:    "Failed to find translations: %v",
	ErrorFailedToGetWorkDir:  "Failed to resolve root directory: %v",
	ErrorInvalidLocaleFilter: "Unknown locale in --locales: %s",
	ErrorFailedToMarshalJSON: "Failed to marshal JSON: %v",

	FlagRoot:    "base directory for relative paths",
	FlagRes:     "Android res directory containing values*/ folders",
	FlagOut:     "fastlane metadata output directory",
	FlagConfig:  "YAML or TOML config file",
	FlagNoColor: "disable colored output",
	ElapsedTime: "Elapsed time: %s",

	DefaultLocaleLabel: "[default]",
}
