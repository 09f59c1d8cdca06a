package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/communitymedia/mediaphone/common/file"
	"github.com/communitymedia/mediaphone/common/i18n"
	"github.com/communitymedia/mediaphone/exporter"
)

var localesJson bool

func initLocalesCmd() {
	localesCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Locales.Use,
		Short: i18n.I18nMsg.Locales.Short,
		Long:  i18n.I18nMsg.Locales.Long,
		Args:  cobra.NoArgs,
		Run:   runLocales,
	}

	localesCmd.Flags().BoolVarP(&localesJson, "json", "j", false, i18n.I18nMsg.Locales.FlagJSON)

	rootCmd.AddCommand(localesCmd)
}

func runLocales(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if !localesJson {
			fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
		}
	}()

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}

	ex := exporter.New(cfg, nil)
	sources, err := ex.Discover()
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToDiscover, err)
	}

	if localesJson {
		data, err := json.MarshalIndent(sources, "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf(i18n.I18nMsg.Locales.TotalLocales+"\n", len(sources))
	for _, src := range sources {
		derived := ""
		if !src.Mapped {
			derived = " " + i18n.I18nMsg.Locales.Unmapped
		}
		fmt.Printf("%-10s %-12s %s%s\n", localeLabel(src), src.Locale, file.Rel(cfg.TranslationsPath, src.Path), derived)
	}

	if missing := ex.Missing(sources); len(missing) > 0 {
		fmt.Println(i18n.I18nMsg.Locales.MissingHeader)
		for _, code := range missing {
			label := code
			if code == "" {
				label = i18n.I18nMsg.Common.DefaultLocaleLabel
			}
			id, _ := ex.Locales().Lookup(code)
			fmt.Printf("%-10s %s\n", label, id)
		}
	}
}
