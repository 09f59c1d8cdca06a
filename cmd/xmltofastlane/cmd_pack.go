package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/communitymedia/mediaphone/archive"
	"github.com/communitymedia/mediaphone/common/i18n"
)

var (
	packArchive string
	packVerify  bool
)

func initPackCmd() {
	packCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Pack.Use,
		Short: i18n.I18nMsg.Pack.Short,
		Long:  i18n.I18nMsg.Pack.Long,
		Args:  cobra.NoArgs,
		Run:   runPack,
	}

	packCmd.Flags().StringVarP(&packArchive, "archive", "a", "metadata-android.tar.xz", i18n.I18nMsg.Pack.FlagArchive)
	packCmd.Flags().BoolVar(&packVerify, "verify", false, i18n.I18nMsg.Pack.FlagVerify)

	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
	}()

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}

	dest := packArchive
	if !filepath.IsAbs(dest) {
		root, err := filepath.Abs(rootDir)
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToGetWorkDir, err)
		}
		dest = filepath.Join(root, dest)
	}

	summary, err := archive.Pack(cfg.OutputPath, dest)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Pack.ErrorFailedToPack, err)
	}
	fmt.Printf(i18n.I18nMsg.Pack.Packed+"\n", len(summary.Entries), summary.Bytes, summary.Path)

	if packVerify {
		names, err := archive.List(summary.Path)
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Pack.ErrorFailedToVerify, err)
		}
		if len(names) != len(summary.Entries) {
			log.Fatalf(i18n.I18nMsg.Pack.ErrorFailedToVerify, fmt.Errorf(i18n.I18nMsg.Pack.ErrorVerifyMismatch, len(names), len(summary.Entries)))
		}
		fmt.Printf(i18n.I18nMsg.Pack.Verified+"\n", len(names))
	}
}
