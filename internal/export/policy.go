package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"isms-lab/internal/domain/models"
)

// PolicyCSV writes the policy register as delimited text, the one
// register that ships as CSV rather than a workbook.
func (e *Exporter) PolicyCSV(w io.Writer, policies []models.Policy) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		"Policy Name", "Version", "Owner", "Approved Date", "Review Date", "Status", "File Name",
	}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range policies {
		if err := cw.Write([]string{
			p.Name, p.Version, p.Owner, p.ApprovedDate, p.ReviewDate, string(p.Status), p.FileName,
		}); err != nil {
			return fmt.Errorf("write policy %s: %w", p.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
