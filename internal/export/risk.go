package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"isms-lab/internal/domain/models"
)

// RiskWorkbook renders the risk register with positional identifiers
// and a severity/status summary.
func (e *Exporter) RiskWorkbook(risks []models.RiskEntry) (*excelize.File, error) {
	f := newWorkbook("Risk Register")

	rows := make([][]interface{}, 0, len(risks))
	for i, r := range risks {
		rows = append(rows, []interface{}{
			fmt.Sprintf("RISK-%03d", i+1),
			r.Asset, r.Threat, r.Vulnerability,
			string(r.Likelihood), string(r.Impact), levelLabel(r.Level),
			r.Treatment, r.Owner, string(r.Status), r.ExistingControls,
		})
	}
	if err := writeSheet(f, "Risk Register",
		[]interface{}{
			"Risk ID", "Asset", "Threat", "Vulnerability", "Likelihood",
			"Impact", "Risk Level", "Treatment Plan", "Risk Owner", "Status",
			"Existing Controls",
		}, rows); err != nil {
		return nil, err
	}

	countLevel := func(level models.RiskLevel) int {
		n := 0
		for _, r := range risks {
			if r.Level == level {
				n++
			}
		}
		return n
	}
	countStatus := func(status models.RiskStatus) int {
		n := 0
		for _, r := range risks {
			if r.Status == status {
				n++
			}
		}
		return n
	}

	summary := [][]interface{}{
		{"Total Risks", len(risks)},
		{"Critical Risks", countLevel(models.RiskLevelCritical)},
		{"High Risks", countLevel(models.RiskLevelHigh)},
		{"Medium Risks", countLevel(models.RiskLevelMedium)},
		{"Low Risks", countLevel(models.RiskLevelLow)},
		{"Open Risks", countStatus(models.RiskStatusOpen)},
		{"Mitigated Risks", countStatus(models.RiskStatusMitigated)},
	}
	if err := addSheet(f, "Summary", []interface{}{"Category", "Count"}, summary); err != nil {
		return nil, err
	}

	return f, nil
}
