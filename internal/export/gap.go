package export

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"isms-lab/internal/domain/models"
)

// GapWorkbook renders the gap assessment as a standalone workbook:
// one row per outstanding gap, the flattened follow-up Q&A, and a
// summary with the infrastructure context that drove generation.
func (e *Exporter) GapWorkbook(assessments []models.ControlAssessment, profile models.InfrastructureProfile) (*excelize.File, error) {
	f := newWorkbook("Gap Assessment")

	var gaps [][]interface{}
	for _, a := range assessments {
		if !a.IsGap() {
			continue
		}
		gaps = append(gaps, []interface{}{
			a.ControlID, a.ControlName, a.Annex, string(a.Status),
			a.ImplementationDetails, a.EvidenceDescription,
			evidenceFileNames(a.EvidenceFiles),
			a.IdentifiedGaps, string(a.Priority),
			len(a.Questions), len(a.Answers),
		})
	}
	if err := writeSheet(f, "Gap Assessment",
		[]interface{}{
			"Control ID", "Control Name", "Annex", "Implementation Status",
			"Current Implementation", "Evidence", "Evidence Files",
			"Identified Gaps", "Priority", "Questions Asked", "Questions Answered",
		}, gaps); err != nil {
		return nil, err
	}

	var qa [][]interface{}
	for _, a := range assessments {
		for _, q := range a.Questions {
			answer := a.Answers[q.ID]
			if answer == "" {
				answer = "Not Answered"
			}
			qa = append(qa, []interface{}{
				a.ControlID, a.ControlName, q.Prompt, answer, yesNo(q.Required),
			})
		}
	}
	if len(qa) > 0 {
		if err := addSheet(f, "Detailed Q&A",
			[]interface{}{"Control ID", "Control Name", "Question", "Answer", "Required"}, qa); err != nil {
			return nil, err
		}
	}

	summary := gapSummary(assessments, profile)
	if err := addSheet(f, "Summary", []interface{}{"Metric", "Value"}, summary); err != nil {
		return nil, err
	}

	return f, nil
}

func gapSummary(assessments []models.ControlAssessment, profile models.InfrastructureProfile) [][]interface{} {
	count := func(status models.ImplementationStatus) int {
		n := 0
		for _, a := range assessments {
			if a.Status == status {
				n++
			}
		}
		return n
	}

	totalGaps, highGaps, asked, answered, files := 0, 0, 0, 0, 0
	for _, a := range assessments {
		if a.IsGap() {
			totalGaps++
			if a.Priority == models.PriorityHigh {
				highGaps++
			}
		}
		asked += len(a.Questions)
		answered += len(a.Answers)
		files += len(a.EvidenceFiles)
	}

	summary := [][]interface{}{
		{"Total Controls", len(assessments)},
		{"Fully Implemented", count(models.StatusFullyImplemented)},
		{"Partially Implemented", count(models.StatusPartiallyImplemented)},
		{"Not Implemented", count(models.StatusNotImplemented)},
		{"Not Applicable", count(models.StatusNotApplicable)},
		{"Total Gaps", totalGaps},
		{"High Priority Gaps", highGaps},
		{"Questions Asked", asked},
		{"Questions Answered", answered},
		{"Evidence Files Uploaded", files},
	}

	if profile.HasCloud {
		providers := make([]string, len(profile.CloudProviders))
		for i, p := range profile.CloudProviders {
			providers[i] = string(p)
		}
		summary = append(summary, []interface{}{"Cloud Providers", strings.Join(providers, ", ")})
	}
	if len(profile.CriticalSystems) > 0 {
		summary = append(summary, []interface{}{"Critical Systems Count", len(profile.CriticalSystems)})
	}
	return summary
}

func evidenceFileNames(files []models.EvidenceFile) string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
