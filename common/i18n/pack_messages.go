package i18n

// PackMessages holds pack command strings
type PackMessages struct {
	Use   string
	Short string
	Long  string

	FlagArchive string
	FlagVerify  string

	ErrorFailedToPack   string
	ErrorFailedToVerify string
	ErrorVerifyMismatch string
	Packed              string
	Verified            string
}

// English pack messages
var EnglishPackMessages = PackMessages{
	Use:   "pack",
	Short: "Bundle the metadata directory into a .tar.xz archive",
	Long:  `Archive every file under the fastlane metadata directory into a reproducible, xz-compressed tarball for upload as a build artifact.`,

	FlagArchive: "archive file to create",
	FlagVerify:  "read the archive back and check its entries",

	ErrorFailedToPack:   "Failed to create archive: %v",
	ErrorFailedToVerify: "Failed to verify archive: %v",
	ErrorVerifyMismatch: "archive has %d entries, expected %d",
	Packed:              "Packed %d files (%d bytes) into %s",
	Verified:            "Verified %d entries",
}
