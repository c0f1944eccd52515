package workflow

import "fmt"

// Stage identifies one step of the compliance wizard.
type Stage string

const (
	StageScoping   Stage = "scoping"
	StageGap       Stage = "gap"
	StageRisk      Stage = "risk"
	StagePolicy    Stage = "policy"
	StageVAPT      Stage = "vapt"
	StageAudit     Stage = "audit"
	StageDashboard Stage = "dashboard"
)

// stageOrder is the fixed progression. The dashboard is terminal and
// has no completion gate.
var stageOrder = []Stage{
	StageScoping,
	StageGap,
	StageRisk,
	StagePolicy,
	StageVAPT,
	StageAudit,
	StageDashboard,
}

// Stages returns the ordered stage list.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

func stageIndex(s Stage) int {
	for i, stage := range stageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// next returns the stage after s, or s itself for the last stage.
func next(s Stage) Stage {
	i := stageIndex(s)
	if i < 0 || i >= len(stageOrder)-1 {
		return s
	}
	return stageOrder[i+1]
}

// ParseStage validates a stage name from the wire.
func ParseStage(name string) (Stage, error) {
	s := Stage(name)
	if stageIndex(s) < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
	return s, nil
}

// CompletionStatus reports the outcome of a stage completion attempt.
// NeedsConfirmation statuses are re-submitted with override set; they
// are data, not errors.
type CompletionStatus struct {
	Stage             Stage  `json:"stage"`
	Done              bool   `json:"done"`
	NeedsConfirmation bool   `json:"needs_confirmation,omitempty"`
	Message           string `json:"message,omitempty"`
	Completed         int    `json:"completed"`
	Total             int    `json:"total"`
	Next              Stage  `json:"next,omitempty"`
}
