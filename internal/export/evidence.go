package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"isms-lab/internal/domain/catalog"
	"isms-lab/internal/domain/models"
)

var evidenceInstructions = []string{
	"Fill in the evidence details for each control",
	"Evidence Required: Describe what evidence exists (e.g., Policy document, Screenshots, Logs)",
	"Evidence Location: Specify where the evidence is stored",
	"Evidence Owner: Who maintains this evidence",
	"Last Updated: When was this evidence last verified",
	"Upload this completed file back to the system",
}

// EvidenceTemplate builds the blank evidence collection workbook, one
// row per catalog control plus an instructions sheet.
func (e *Exporter) EvidenceTemplate() (*excelize.File, error) {
	f := newWorkbook("Evidence Template")

	var rows [][]interface{}
	for _, group := range catalog.Groups() {
		for _, control := range group.Controls {
			rows = append(rows, []interface{}{
				control.ID, control.Name,
				"Describe the evidence here", "File path or URL",
				"Name/Department", "YYYY-MM-DD", "",
			})
		}
	}
	if err := writeSheet(f, "Evidence Template",
		[]interface{}{
			"Control ID", "Control Name", "Evidence Required",
			"Evidence Location", "Evidence Owner", "Last Updated", "Remarks",
		}, rows); err != nil {
		return nil, err
	}

	instructions := make([][]interface{}, len(evidenceInstructions))
	for i, text := range evidenceInstructions {
		instructions[i] = []interface{}{text}
	}
	if err := addSheet(f, "Instructions", []interface{}{"Instruction"}, instructions); err != nil {
		return nil, err
	}

	return f, nil
}

// ParseEvidenceTemplate reads a completed template back in. Only the
// first sheet is consulted; rows are matched to controls later, so
// unknown control ids pass through and the caller drops them.
func (e *Exporter) ParseEvidenceTemplate(r io.Reader) ([]models.EvidenceUpdate, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("template has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	idCol, ok := col["Control ID"]
	if !ok {
		return nil, fmt.Errorf("template missing Control ID column")
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var updates []models.EvidenceUpdate
	for _, row := range rows[1:] {
		if idCol >= len(row) || row[idCol] == "" {
			continue
		}
		updates = append(updates, models.EvidenceUpdate{
			ControlID:   row[idCol],
			Description: cell(row, "Evidence Required"),
			Location:    cell(row, "Evidence Location"),
			Owner:       cell(row, "Evidence Owner"),
			LastUpdated: cell(row, "Last Updated"),
		})
	}

	e.logger.Debug().Int("rows", len(updates)).Msg("evidence template parsed")
	return updates, nil
}
