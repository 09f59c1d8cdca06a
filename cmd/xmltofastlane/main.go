package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/communitymedia/mediaphone/common/config"
	"github.com/communitymedia/mediaphone/common/i18n"
)

var (
	rootCmd    *cobra.Command
	rootDir    string
	resDir     string
	outDir     string
	configFile string
	noColor    bool
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "xmltofastlane",
		Short: i18n.I18nMsg.App.AppDescription,
		Long:  i18n.I18nMsg.App.AppLongDescription,
		Args:  cobra.NoArgs,
	}

	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", i18n.I18nMsg.Common.FlagRoot)
	rootCmd.PersistentFlags().StringVar(&resDir, "res", config.DefaultTranslationsPath, i18n.I18nMsg.Common.FlagRes)
	rootCmd.PersistentFlags().StringVar(&outDir, "out", config.DefaultOutputPath, i18n.I18nMsg.Common.FlagOut)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", i18n.I18nMsg.Common.FlagConfig)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, i18n.I18nMsg.Common.FlagNoColor)

	initExportCmd()
	initLocalesCmd()
	initPackCmd()
	initVersionCmd()
}

// loadConfig applies the config file and any explicitly set path flags,
// then resolves relative paths against --root.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("res") {
		cfg.TranslationsPath = resDir
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputPath = outDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(root), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
