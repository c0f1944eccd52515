package export

import (
	"github.com/xuri/excelize/v2"

	"isms-lab/internal/domain/models"
)

// CompleteReport renders the full compliance report as one workbook
// with a sheet per register.
func (e *Exporter) CompleteReport(report *models.ComplianceReport) (*excelize.File, error) {
	f := newWorkbook("Scoping Responses")

	scoping := make([][]interface{}, 0, len(report.Scoping))
	for _, row := range report.Scoping {
		scoping = append(scoping, []interface{}{row.QuestionID, row.Response})
	}
	if err := writeSheet(f, "Scoping Responses",
		[]interface{}{"Question ID", "Response"}, scoping); err != nil {
		return nil, err
	}

	gaps := make([][]interface{}, 0, len(report.Gaps))
	for _, g := range report.Gaps {
		gaps = append(gaps, []interface{}{
			g.ControlID, g.ControlName, g.Annex, string(g.Status), g.Gaps, string(g.Priority),
		})
	}
	if err := addSheet(f, "Gap Assessment",
		[]interface{}{"Control ID", "Control Name", "Annex", "Status", "Gaps", "Priority"}, gaps); err != nil {
		return nil, err
	}

	risks := make([][]interface{}, 0, len(report.Risks))
	for _, r := range report.Risks {
		risks = append(risks, []interface{}{
			r.RiskID, r.Asset, r.Threat, string(r.Likelihood), string(r.Impact),
			levelLabel(r.Level), r.Treatment, r.Owner, string(r.Status),
		})
	}
	if err := addSheet(f, "Risk Register",
		[]interface{}{"Risk ID", "Asset", "Threat", "Likelihood", "Impact", "Risk Level", "Treatment", "Owner", "Status"}, risks); err != nil {
		return nil, err
	}

	policies := make([][]interface{}, 0, len(report.Policies))
	for _, p := range report.Policies {
		policies = append(policies, []interface{}{
			p.Name, p.Version, p.Owner, string(p.Status), p.ApprovedDate, p.ReviewDate,
		})
	}
	if err := addSheet(f, "Policy Register",
		[]interface{}{"Policy Name", "Version", "Owner", "Status", "Approved", "Next Review"}, policies); err != nil {
		return nil, err
	}

	vapt := make([][]interface{}, 0, len(report.VAPT))
	for _, v := range report.VAPT {
		vapt = append(vapt, []interface{}{
			v.Type, v.Scope, v.Vendor, v.StartDate, v.EndDate,
			v.Critical, v.High, v.Medium, v.Low, string(v.Status),
		})
	}
	if err := addSheet(f, "Assessment Findings",
		[]interface{}{"Assessment Type", "Scope", "Vendor", "Start Date", "End Date", "Critical", "High", "Medium", "Low", "Status"}, vapt); err != nil {
		return nil, err
	}

	audit := [][]interface{}{{
		report.Audit.StartDate, report.Audit.EndDate, report.Audit.AuditTeam,
		report.Audit.MajorNC, report.Audit.MinorNC, report.Audit.Observations,
		string(report.Audit.Status),
	}}
	if err := addSheet(f, "Internal Audit",
		[]interface{}{"Start Date", "End Date", "Audit Team", "Major NC", "Minor NC", "Observations", "Status"}, audit); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Int("gaps", len(report.Gaps)).
		Int("risks", len(report.Risks)).
		Msg("complete report workbook built")

	return f, nil
}
