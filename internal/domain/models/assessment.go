package models

// ImplementationStatus records how far a control is implemented.
type ImplementationStatus string

const (
	StatusUnset                ImplementationStatus = ""
	StatusFullyImplemented     ImplementationStatus = "Fully Implemented"
	StatusPartiallyImplemented ImplementationStatus = "Partially Implemented"
	StatusNotImplemented       ImplementationStatus = "Not Implemented"
	StatusNotApplicable        ImplementationStatus = "Not Applicable"
)

// Priority classifies how urgently an identified gap must be closed.
type Priority string

const (
	PriorityUnset  Priority = ""
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// QuestionKind is the input kind of a follow-up question.
type QuestionKind string

const (
	QuestionKindText     QuestionKind = "text"
	QuestionKindTextarea QuestionKind = "textarea"
	QuestionKindSelect   QuestionKind = "select"
)

// FollowUpQuestion is a supplementary question attached to a control
// assessment, generated for the infrastructure profile in effect.
// Choices is present only for select questions.
type FollowUpQuestion struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	Kind     QuestionKind `json:"kind"`
	Choices  []string     `json:"choices,omitempty"`
	Required bool         `json:"required"`
}

// EvidenceFile is the metadata of an uploaded evidence document. Raw
// bytes are handled by the upload collaborator and never reach here.
type EvidenceFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ControlAssessment is the gap-assessment record for one control.
// Questions are fixed at creation time for the profile in effect so
// that answers keyed by question ID survive save/reload cycles.
type ControlAssessment struct {
	ControlID   string `json:"control_id"`
	ControlName string `json:"control_name"`
	Annex       string `json:"annex"`
	Description string `json:"description"`

	Status                ImplementationStatus `json:"status"`
	ImplementationDetails string               `json:"implementation_details"`

	EvidenceDescription string         `json:"evidence_description"`
	EvidenceLocation    string         `json:"evidence_location"`
	EvidenceOwner       string         `json:"evidence_owner"`
	EvidenceUpdated     string         `json:"evidence_updated"`
	EvidenceFiles       []EvidenceFile `json:"evidence_files,omitempty"`

	IdentifiedGaps string   `json:"identified_gaps"`
	Priority       Priority `json:"priority"`

	Questions []FollowUpQuestion `json:"questions,omitempty"`
	Answers   map[string]string  `json:"answers,omitempty"`
}

// IsGap reports whether the assessment counts as a gap row: anything
// not fully implemented and not excluded as inapplicable.
func (a ControlAssessment) IsGap() bool {
	return a.Status != StatusFullyImplemented && a.Status != StatusNotApplicable
}

// Clone returns a copy that does not share Answers or EvidenceFiles
// with the receiver. Questions are fixed after generation and stay
// shared.
func (a ControlAssessment) Clone() ControlAssessment {
	out := a
	if a.Answers != nil {
		out.Answers = make(map[string]string, len(a.Answers))
		for id, answer := range a.Answers {
			out.Answers[id] = answer
		}
	}
	if a.EvidenceFiles != nil {
		out.EvidenceFiles = append([]EvidenceFile(nil), a.EvidenceFiles...)
	}
	return out
}
