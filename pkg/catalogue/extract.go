package catalogue

import (
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/output"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/parser"
	"github.com/phac-aspc/catalogue-go/pkg/catalogue/transform"
)

// Result summarizes a successful extraction run.
type Result struct {
	Language models.Language
	// SourceRows is the number of data rows read from the export.
	SourceRows int
	// Rows is the number of rows written.
	Rows int
	// Filtered reports whether the export had an ID column to filter on.
	Filtered bool
	// Linked reports whether hyperlink enrichment ran.
	Linked bool
	// Columns are the written headers.
	Columns []string
	JSONPath string
	CSVPath  string
}

// Extract reads the export, keeps approved rows, cleans and renames them, and
// writes the JSON and CSV outputs. Nothing is written unless every stage succeeds.
func Extract(opts Options) (*Result, error) {
	log := opts.logger().With("lang", string(opts.Language))

	if _, err := models.ParseLanguage(string(opts.Language)); err != nil {
		return nil, NewStageError(StageConfig, opts.Language, "", wrapConfig(err))
	}

	approved, err := parser.LoadApprovedIDs(opts.Paths.Approved)
	if err != nil {
		return nil, NewStageError(StageConfig, opts.Language, opts.Paths.Approved, err)
	}
	mapping, err := parser.LoadFieldMapping(opts.Paths.Fields, opts.Language)
	if err != nil {
		return nil, NewStageError(StageConfig, opts.Language, opts.Paths.Fields, err)
	}
	log.Debug("config loaded", "approved_ids", approved.Len(), "columns", len(mapping.Sources))

	table, err := parser.ReadSource(opts.Paths.Export, opts.Sheet)
	if err != nil {
		return nil, NewStageError(StageSource, opts.Language, opts.Paths.Export, err)
	}
	log.Debug("export loaded", "path", opts.Paths.Export, "rows", len(table.Rows), "columns", len(table.Columns))

	res := &Result{Language: opts.Language, SourceRows: len(table.Rows)}

	table, res.Filtered = transform.FilterApproved(table, approved)
	if !res.Filtered {
		log.Warn("export has no ID column, approved-dataset filter skipped", "path", opts.Paths.Export)
	}

	transform.NormalizeTable(table)

	projected, err := output.Project(table, mapping)
	if err != nil {
		return nil, NewStageError(StageTransform, opts.Language, opts.Paths.Export, err)
	}

	res.Linked = transform.EnrichHyperlinks(projected, opts.Links(), opts.Domains())
	if !res.Linked {
		log.Debug("hyperlink enrichment skipped", "hyperlinks", opts.Links().Hyperlinks, "dataset", opts.Links().Dataset)
	}

	files, err := output.Render(projected, opts.Paths.JSON, opts.Paths.CSV, opts.Pretty)
	if err != nil {
		return nil, NewStageError(StageSerialize, opts.Language, "", err)
	}
	log.Info("writing extracted data", "json", opts.Paths.JSON, "csv", opts.Paths.CSV, "rows", len(projected.Rows))
	if err := output.WriteFiles(files); err != nil {
		return nil, NewStageError(StageSerialize, opts.Language, opts.Paths.JSON, err)
	}

	res.Rows = len(projected.Rows)
	res.Columns = projected.Columns
	res.JSONPath = opts.Paths.JSON
	res.CSVPath = opts.Paths.CSV
	return res, nil
}
