// Package main provides the CLI entry point for catalogue-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phac-aspc/catalogue-go/internal/config"
	"github.com/phac-aspc/catalogue-go/internal/logger"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/dictionary"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/spf13/cobra"
)

var (
	rootDir    string
	configPath string
	debug      bool

	lang         string
	exportPath   string
	approvedPath string
	fieldsPath   string
	outDir       string
	sheet        string
	pretty       bool

	dictInput  string
	dictOutDir string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Build the data catalogue table files",
		Long: `catalogue converts a data catalogue export into the cleaned JSON and CSV
files read by the catalogue page, and builds the plain-language dictionaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root holding the conventional input and output layout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: <root>/catalogue.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newExtractCmd(), newDictionaryCmd())
	return rootCmd
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract approved datasets into output-{lang}.json and output-{lang}.csv",
		Args:  cobra.NoArgs,
		RunE:  runExtract,
	}

	cmd.Flags().StringVar(&lang, "lang", "all", "Language to extract: en, fr, or all")
	cmd.Flags().StringVar(&exportPath, "export", "", "Catalogue export file (single language only)")
	cmd.Flags().StringVar(&approvedPath, "approved", "", "Approved-dataset list")
	cmd.Flags().StringVar(&fieldsPath, "fields", "", "Field-mapping table")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory for output-{lang}.json and output-{lang}.csv")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newDictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Build dictionary_en.json and dictionary_fr.json from the dictionary CSV",
		Args:  cobra.NoArgs,
		RunE:  runDictionary,
	}

	cmd.Flags().StringVar(&dictInput, "input", "", "Dictionary CSV (default: <root>/data/dictionary.csv)")
	cmd.Flags().StringVarP(&dictOutDir, "out-dir", "o", "", "Output directory (default: the input's directory)")
	return cmd
}

func loadConfig() (config.Config, *slog.Logger, error) {
	log := logger.New(logger.Config{Debug: debug})
	root, err := filepath.Abs(rootDir)
	if err != nil {
		root = rootDir
	}
	cfg, err := config.Load(root, configPath)
	return cfg, log, err
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	// Parse languages
	var langs []models.Language
	if lang == "all" {
		langs = models.Languages
	} else {
		l, err := models.ParseLanguage(lang)
		if err != nil {
			return err
		}
		langs = []models.Language{l}
	}
	if exportPath != "" && len(langs) > 1 {
		return errors.New("--export needs --lang en or --lang fr")
	}

	for _, l := range langs {
		opts := cfg.Options(l)
		applyExtractFlags(cmd, &opts)
		opts.Logger = log

		res, err := catalogue.Extract(opts)
		if err != nil {
			return err
		}
		log.Info("extraction complete",
			"lang", string(l),
			"source_rows", res.SourceRows,
			"rows", res.Rows,
			"filtered", res.Filtered,
			"linked", res.Linked)
	}
	return nil
}

// applyExtractFlags overlays explicitly set flags on the configured options.
func applyExtractFlags(cmd *cobra.Command, opts *catalogue.Options) {
	if exportPath != "" {
		opts.Paths.Export = exportPath
	}
	if approvedPath != "" {
		opts.Paths.Approved = approvedPath
	}
	if fieldsPath != "" {
		opts.Paths.Fields = fieldsPath
	}
	if outDir != "" {
		opts.Paths.JSON = filepath.Join(outDir, filepath.Base(opts.Paths.JSON))
		opts.Paths.CSV = filepath.Join(outDir, filepath.Base(opts.Paths.CSV))
	}
	if sheet != "" {
		opts.Sheet = sheet
	}
	if cmd.Flags().Changed("pretty") {
		opts.Pretty = pretty
	}
}

func runDictionary(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	input := cfg.Dictionary
	if dictInput != "" {
		input = dictInput
	}
	dir := dictOutDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	d, err := dictionary.Load(input)
	if err != nil {
		return fmt.Errorf("dictionary stage failed for %s: %w", input, err)
	}

	paths, err := dictionary.Write(d, dir)
	if err != nil {
		return fmt.Errorf("failed to write dictionaries: %w", err)
	}
	log.Info("dictionaries written",
		"en", paths[0], "en_terms", d.English.Len(),
		"fr", paths[1], "fr_terms", d.French.Len())
	return nil
}
