package i18n

// AppMessages holds application-level strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle    string
	VersionLabel    string
	GoVersionLabel  string
	PlatformLabel   string
	VersionCmdShort string
	VersionCmdLong  string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Generate fastlane store listing files from Android string resources",
	AppLongDescription: `Converts the store listing translations kept in
MediaPhone/src/main/res/values*/store_listing.xml into the
metadata/android/<locale>/*.txt layout read by fastlane supply.

Run without a subcommand to export; a changelog for the given
versionCode must already exist in the default locale.`,

	VersionTitle:    "xmltofastlane",
	VersionLabel:    "Version",
	GoVersionLabel:  "Go Version",
	PlatformLabel:   "Platform",
	VersionCmdShort: "Show version information",
	VersionCmdLong:  "Display version and build information",
}
