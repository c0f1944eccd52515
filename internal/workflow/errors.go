package workflow

import "errors"

var (
	ErrUnknownStage       = errors.New("unknown stage")
	ErrStageUnreachable   = errors.New("stage not reachable yet")
	ErrStageIncomplete    = errors.New("stage incomplete")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrRiskNotFound       = errors.New("risk not found")
	ErrPolicyNotFound     = errors.New("policy not found")
	ErrPolicyRequired     = errors.New("required policy cannot be removed")
	ErrVAPTNotFound       = errors.New("vapt assessment not found")
	ErrFindingNotFound    = errors.New("audit finding not found")
)
