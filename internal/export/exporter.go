// Package export renders the workflow data sets as spreadsheet
// workbooks and parses completed evidence templates back in. Only
// metadata and register content move through here; uploaded documents
// themselves never do.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"isms-lab/internal/domain/models"
	"isms-lab/pkg/logger"
)

// Exporter builds the downloadable artifacts.
type Exporter struct {
	logger *logger.Logger
}

// NewExporter creates a new Exporter
func NewExporter(log *logger.Logger) *Exporter {
	return &Exporter{
		logger: log.WithComponent("export"),
	}
}

// newWorkbook creates a workbook whose default sheet is renamed to the
// first wanted sheet.
func newWorkbook(firstSheet string) *excelize.File {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", firstSheet)
	return f
}

// writeSheet fills a sheet from a header row and data rows.
func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return nil
}

// addSheet creates and fills a new sheet.
func addSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	return writeSheet(f, sheet, header, rows)
}

// levelLabel renders a risk level, with the unscored zero value shown
// the way the register displays it.
func levelLabel(level models.RiskLevel) string {
	if level == models.RiskLevelUnscored {
		return "Not Calculated"
	}
	return string(level)
}
