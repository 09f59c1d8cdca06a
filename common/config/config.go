// Package config holds exporter settings and loads overrides from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/communitymedia/mediaphone/listing"
	"github.com/communitymedia/mediaphone/locale"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

const (
	DefaultTranslationsPath = "../MediaPhone/src/main/res"
	DefaultTranslationsFile = "store_listing"
	DefaultOutputPath       = "metadata/android"
)

// Limits are the maximum character counts per listing field. Zero disables the check.
type Limits struct {
	Title            int
	ShortDescription int
	FullDescription  int
}

// Config describes where translations are read from and where fastlane files go.
type Config struct {
	// TranslationsPath contains the values*/ resource directories.
	TranslationsPath string
	// TranslationsFile is the resource file name without the .xml extension.
	TranslationsFile string
	// OutputPath is the fastlane metadata root, e.g. fastlane/metadata/android.
	OutputPath string
	// Locales maps Android suffixes ("", "-es") to fastlane identifiers.
	Locales map[string]string
	Limits  Limits
}

// Default returns the settings used by the Com-Phone repository layout.
func Default() *Config {
	return &Config{
		TranslationsPath: DefaultTranslationsPath,
		TranslationsFile: DefaultTranslationsFile,
		OutputPath:       DefaultOutputPath,
		Locales:          locale.DefaultEntries(),
		Limits: Limits{
			Title:            listing.Title.Limit,
			ShortDescription: listing.ShortDescription.Limit,
			FullDescription:  listing.FullDescription.Limit,
		},
	}
}

// fileLimits uses pointers so an explicit 0 in a file can disable a limit.
type fileLimits struct {
	Title            *int `yaml:"title" toml:"title"`
	ShortDescription *int `yaml:"short_description" toml:"short_description"`
	FullDescription  *int `yaml:"full_description" toml:"full_description"`
}

type fileConfig struct {
	TranslationsPath string            `yaml:"translations_path" toml:"translations_path"`
	TranslationsFile string            `yaml:"translations_file" toml:"translations_file"`
	OutputPath       string            `yaml:"output_path" toml:"output_path"`
	Locales          map[string]string `yaml:"locales" toml:"locales"`
	Limits           fileLimits        `yaml:"limits" toml:"limits"`
}

// Load reads path and overlays it onto Default. Locale entries are merged
// into the built-in table. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.apply(&fc)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(fc *fileConfig) {
	if fc.TranslationsPath != "" {
		c.TranslationsPath = fc.TranslationsPath
	}
	if fc.TranslationsFile != "" {
		c.TranslationsFile = strings.TrimSuffix(fc.TranslationsFile, ".xml")
	}
	if fc.OutputPath != "" {
		c.OutputPath = fc.OutputPath
	}
	for code, id := range fc.Locales {
		c.Locales[code] = id
	}
	if fc.Limits.Title != nil {
		c.Limits.Title = *fc.Limits.Title
	}
	if fc.Limits.ShortDescription != nil {
		c.Limits.ShortDescription = *fc.Limits.ShortDescription
	}
	if fc.Limits.FullDescription != nil {
		c.Limits.FullDescription = *fc.Limits.FullDescription
	}
}

// Validate checks paths, limits and the locale table.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TranslationsPath) == "" {
		return fmt.Errorf("translations path is required")
	}
	if strings.TrimSpace(c.TranslationsFile) == "" {
		return fmt.Errorf("translations file is required")
	}
	if strings.ContainsAny(c.TranslationsFile, `/\*?[`) {
		return fmt.Errorf("translations file %q must be a plain file name", c.TranslationsFile)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Limits.Title < 0 || c.Limits.ShortDescription < 0 || c.Limits.FullDescription < 0 {
		return fmt.Errorf("length limits must not be negative")
	}

	codes := make([]string, 0, len(c.Locales))
	for code := range c.Locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if err := locale.ValidateCode(code); err != nil {
			return err
		}
		if err := locale.Validate(c.Locales[code]); err != nil {
			return fmt.Errorf("locale %q: %w", code, err)
		}
	}
	return nil
}

// Resolve returns a copy of c with relative paths joined onto root.
func (c *Config) Resolve(root string) *Config {
	out := *c
	out.Locales = make(map[string]string, len(c.Locales))
	for k, v := range c.Locales {
		out.Locales[k] = v
	}
	if !filepath.IsAbs(out.TranslationsPath) {
		out.TranslationsPath = filepath.Join(root, out.TranslationsPath)
	}
	if !filepath.IsAbs(out.OutputPath) {
		out.OutputPath = filepath.Join(root, out.OutputPath)
	}
	return &out
}

// LocaleMap builds the immutable lookup table.
func (c *Config) LocaleMap() *locale.Map {
	return locale.NewMap(c.Locales)
}

// Fields returns the listing fields in processing order.
func (c *Config) Fields() (title, short, full listing.Field) {
	title = listing.Field{Name: listing.Title.Name, Limit: c.Limits.Title}
	short = listing.Field{Name: listing.ShortDescription.Name, Limit: c.Limits.ShortDescription}
	full = listing.Field{Name: listing.FullDescription.Name, Limit: c.Limits.FullDescription}
	return title, short, full
}
