package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/communitymedia/mediaphone/archive"
	"github.com/communitymedia/mediaphone/common/i18n"
	"github.com/communitymedia/mediaphone/constant"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: i18n.I18nMsg.App.VersionCmdShort,
	Long:  i18n.I18nMsg.App.VersionCmdLong,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
		fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
		fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
		fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)
		fmt.Printf("xz: %s\n", archive.Implementation())
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
