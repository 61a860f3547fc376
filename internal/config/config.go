// Package config loads the optional catalogue.yaml run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/transform"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project root.
const FileName = "catalogue.yaml"

// Config holds run settings layered over the conventional defaults.
type Config struct {
	Root           string
	Sheet          string
	Pretty         bool
	AllowedDomains []string
	Dictionary     string
	Languages      map[models.Language]LanguageConfig
}

// LanguageConfig holds per-language paths and column names. Empty fields keep defaults.
type LanguageConfig struct {
	Export         string
	Approved       string
	Fields         string
	JSON           string
	CSV            string
	HyperlinkField string
	DatasetField   string
}

// Default returns the configuration used when no file is present.
func Default(root string) Config {
	return Config{
		Root:       root,
		Dictionary: filepath.Join(root, "data", "dictionary.csv"),
		Languages:  map[models.Language]LanguageConfig{},
	}
}

// Load reads path, or root/catalogue.yaml when path is empty, over the defaults.
// A missing default file is not an error; a missing explicit file is.
func Load(root, path string) (Config, error) {
	cfg := Default(root)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: %s: %v", models.ErrInvalidConfig, path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", models.ErrInvalidConfig, path, err)
	}

	// Relative paths in the file resolve against the file's directory.
	base := filepath.Dir(path)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	if y.Catalogue.Sheet != "" {
		cfg.Sheet = y.Catalogue.Sheet
	}
	if y.Catalogue.Pretty != nil {
		cfg.Pretty = *y.Catalogue.Pretty
	}
	if y.Catalogue.AllowedDomains != nil {
		cfg.AllowedDomains = y.Catalogue.AllowedDomains
	}
	if y.Catalogue.Dictionary != "" {
		cfg.Dictionary = resolve(y.Catalogue.Dictionary)
	}
	for tag, l := range y.Catalogue.Languages {
		lang, err := models.ParseLanguage(tag)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", models.ErrInvalidConfig, path, err)
		}
		cfg.Languages[lang] = LanguageConfig{
			Export:         resolve(l.Export),
			Approved:       resolve(l.Approved),
			Fields:         resolve(l.Fields),
			JSON:           resolve(l.JSON),
			CSV:            resolve(l.CSV),
			HyperlinkField: l.HyperlinkField,
			DatasetField:   l.DatasetField,
		}
	}

	return cfg, nil
}

// Options builds extraction options for lang from the configuration.
func (c Config) Options(lang models.Language) catalogue.Options {
	opts := catalogue.DefaultOptions(c.Root, lang)
	opts.Sheet = c.Sheet
	opts.Pretty = c.Pretty
	opts.AllowedDomains = c.AllowedDomains

	l, ok := c.Languages[lang]
	if !ok {
		return opts
	}
	setIf(&opts.Paths.Export, l.Export)
	setIf(&opts.Paths.Approved, l.Approved)
	setIf(&opts.Paths.Fields, l.Fields)
	setIf(&opts.Paths.JSON, l.JSON)
	setIf(&opts.Paths.CSV, l.CSV)

	if l.HyperlinkField != "" || l.DatasetField != "" {
		cols := transform.DefaultLinkColumns(lang)
		setIf(&cols.Hyperlinks, l.HyperlinkField)
		setIf(&cols.Dataset, l.DatasetField)
		opts.LinkColumns = &cols
	}
	return opts
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

type yamlConfig struct {
	Catalogue struct {
		Sheet          string   `yaml:"sheet"`
		Pretty         *bool    `yaml:"pretty"`
		AllowedDomains []string `yaml:"allowed_domains"`
		Dictionary     string   `yaml:"dictionary"`

		Languages map[string]struct {
			Export         string `yaml:"export"`
			Approved       string `yaml:"approved"`
			Fields         string `yaml:"fields"`
			JSON           string `yaml:"json"`
			CSV            string `yaml:"csv"`
			HyperlinkField string `yaml:"hyperlink_field"`
			DatasetField   string `yaml:"dataset_field"`
		} `yaml:"languages"`
	} `yaml:"catalogue"`
}
