package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/communitymedia/mediaphone/common/i18n"
	"github.com/communitymedia/mediaphone/exporter"
)

var (
	exportVersionCode int
	exportLocales     string
	exportInteractive bool
	exportProgress    bool
)

// initExportCmd makes the root command itself run the export, so the tool is
// invoked as `xmltofastlane -v <versionCode>`.
func initExportCmd() {
	rootCmd.Run = runExport

	rootCmd.Flags().IntVarP(&exportVersionCode, "versionCode", "v", 0, i18n.I18nMsg.Export.FlagVersionCode)
	rootCmd.Flags().StringVarP(&exportLocales, "locales", "l", "", i18n.I18nMsg.Export.FlagLocales)
	rootCmd.Flags().BoolVarP(&exportInteractive, "interactive", "i", false, i18n.I18nMsg.Export.FlagInteractive)
	rootCmd.Flags().BoolVar(&exportProgress, "progress", false, i18n.I18nMsg.Export.FlagProgress)
	_ = rootCmd.MarkFlagRequired("versionCode")
}

func runExport(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
	}()

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToLoadConfig, err)
	}

	var (
		reporter exporter.Reporter = consoleReporter{}
		progress *progressReporter
	)
	if exportProgress {
		progress = newProgressReporter()
		reporter = progress
	}
	ex := exporter.New(cfg, reporter)

	// make sure we don't publish a release without a hand-written changelog
	changelog, err := ex.CheckChangelog(exportVersionCode)
	switch {
	case errors.Is(err, exporter.ErrInvalidVersionCode):
		fmt.Println(colorize(ansiRed, fmt.Sprintf(i18n.I18nMsg.Export.ErrorInvalidVersion, exportVersionCode)))
		os.Exit(1)
	case errors.Is(err, exporter.ErrChangelogMissing):
		fmt.Println(colorize(ansiRed, fmt.Sprintf(i18n.I18nMsg.Export.ChangelogMissing, exportVersionCode, changelog)))
		os.Exit(1)
	case err != nil:
		log.Fatalf(i18n.I18nMsg.Export.ErrorFailedToExport, err)
	}

	fmt.Println(i18n.I18nMsg.Export.Generating)
	sources, err := ex.Discover()
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToDiscover, err)
	}
	if len(sources) == 0 {
		if progress != nil {
			progress.Wait()
		}
		fmt.Printf(i18n.I18nMsg.Export.NoTranslationsFound+"\n", cfg.TranslationsPath)
		return
	}

	filter, err := buildFilter(sources)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Export.ErrorFailedToExport, err)
	}

	res, err := ex.Export(sources, filter)
	if progress != nil {
		progress.Wait()
	}
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Export.ErrorFailedToExport, err)
	}

	fmt.Printf(i18n.I18nMsg.Export.ExportCompleted+"\n", res.Files(), res.Locales())
}

// buildFilter turns --locales and --interactive into a source filter.
// A nil filter exports everything.
func buildFilter(sources []exporter.Source) (func(exporter.Source) bool, error) {
	selected := make(map[string]bool)

	if exportLocales != "" {
		for _, token := range strings.Split(exportLocales, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			found := false
			for _, src := range sources {
				if matchesLocale(src, token) {
					selected[src.Path] = true
					found = true
				}
			}
			if !found {
				return nil, fmt.Errorf(i18n.I18nMsg.Common.ErrorInvalidLocaleFilter, token)
			}
		}
	}

	if exportInteractive {
		candidates := sources
		if len(selected) > 0 {
			candidates = nil
			for _, src := range sources {
				if selected[src.Path] {
					candidates = append(candidates, src)
				}
			}
		}
		chosen, err := selectLocalesInteractively(candidates)
		if err != nil {
			return nil, err
		}
		selected = chosen
	}

	if len(selected) == 0 {
		return nil, nil
	}
	return func(src exporter.Source) bool {
		return selected[src.Path]
	}, nil
}

// matchesLocale accepts an Android suffix with or without the dash, a
// fastlane identifier, or "default".
func matchesLocale(src exporter.Source, token string) bool {
	if token == "default" {
		return src.IsDefault()
	}
	if strings.EqualFold(token, src.Locale) || token == src.Code {
		return true
	}
	return !src.IsDefault() && "-"+token == src.Code
}

func sourceOption(i int, src exporter.Source) string {
	return fmt.Sprintf("%d. values%s → %s", i+1, src.Code, src.Locale)
}

// selectLocalesInteractively shows a locale picker using survey, all selected by default.
func selectLocalesInteractively(sources []exporter.Source) (map[string]bool, error) {
	options := make([]string, 0, len(sources))
	bySelection := make(map[string]exporter.Source, len(sources))
	for i, src := range sources {
		opt := sourceOption(i, src)
		options = append(options, opt)
		bySelection[opt] = src
	}

	prompt := &survey.MultiSelect{
		Message:  i18n.I18nMsg.Export.InteractiveSelection,
		Options:  options,
		Default:  options,
		PageSize: 15,
	}

	var result []string
	if err := survey.AskOne(prompt, &result); err != nil {
		return nil, fmt.Errorf(i18n.I18nMsg.Export.SelectionCancelled, err)
	}
	if len(result) == 0 {
		return nil, errors.New(i18n.I18nMsg.Export.NoLocalesSelected)
	}

	selected := make(map[string]bool, len(result))
	for _, opt := range result {
		if src, ok := bySelection[opt]; ok {
			selected[src.Path] = true
		}
	}
	return selected, nil
}
