package workflow

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"isms-lab/internal/domain/catalog"
	"isms-lab/internal/domain/models"
	"isms-lab/internal/domain/services"
	"isms-lab/pkg/logger"
)

// Config carries the stage completion thresholds, expressed as
// fractions of the respective totals.
type Config struct {
	ScopingThreshold float64
	GapThreshold     float64
	PolicyThreshold  float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		ScopingThreshold: 0.5,
		GapThreshold:     0.8,
		PolicyThreshold:  0.7,
	}
}

// Store owns the six stage data sets and the wizard position. All
// methods are safe for concurrent use; handlers share one instance.
type Store struct {
	mu  sync.RWMutex
	cfg Config
	log *logger.Logger

	profiler  *services.Profiler
	questions *services.QuestionGenerator
	reports   *services.ReportBuilder

	current     Stage
	scoping     models.ScopingResponses
	profile     models.InfrastructureProfile
	assessments []models.ControlAssessment
	risks       []models.RiskEntry
	policies    []models.Policy
	vapt        []models.VAPTAssessment
	audit       models.InternalAudit
}

// NewStore creates a Store with the seeded registers: one blank risk
// entry, the required policy list, the three default engagements and a
// planned audit.
func NewStore(cfg Config, log *logger.Logger) *Store {
	s := &Store{
		cfg:       cfg,
		log:       log.WithComponent("workflow"),
		profiler:  services.NewProfiler(log),
		questions: services.NewQuestionGenerator(log),
		reports:   services.NewReportBuilder(log),
		current:   StageScoping,
		scoping:   models.ScopingResponses{},
	}

	s.risks = []models.RiskEntry{blankRisk()}
	for _, name := range models.RequiredPolicies {
		s.policies = append(s.policies, models.Policy{
			ID:     uuid.New(),
			Name:   name,
			Status: models.PolicyStatusDraft,
		})
	}
	for _, typ := range models.DefaultVAPTTypes {
		s.vapt = append(s.vapt, models.VAPTAssessment{
			ID:     uuid.New(),
			Type:   typ,
			Status: models.VAPTStatusPlanned,
		})
	}
	s.audit = models.InternalAudit{Status: models.AuditStatusPlanned}

	return s
}

func blankRisk() models.RiskEntry {
	return models.RiskEntry{
		ID:     uuid.New(),
		Status: models.RiskStatusOpen,
	}
}

// CurrentStage returns the wizard position.
func (s *Store) CurrentStage() Stage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Goto moves back to an already reachable stage. Forward movement only
// happens through CompleteStage.
func (s *Store) Goto(stage Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stageIndex(stage) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	if stageIndex(stage) > stageIndex(s.current) {
		return fmt.Errorf("%w: %s", ErrStageUnreachable, stage)
	}
	s.current = stage
	return nil
}

// CompleteStage runs the stage's completion gate and, when it passes,
// advances the wizard to the stage after it. Below-threshold scoping,
// gap, policy and vapt completions return a needs-confirmation status
// that a repeat call with override set accepts. The risk and audit
// gates are hard and return ErrStageIncomplete instead.
func (s *Store) CompleteStage(stage Stage, override bool) (CompletionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := CompletionStatus{Stage: stage}

	switch stage {
	case StageScoping:
		answered := countAnswered(s.scoping)
		total := catalog.TotalQuestions()
		status.Completed, status.Total = answered, total
		if float64(answered) < float64(total)*s.cfg.ScopingThreshold && !override {
			status.NeedsConfirmation = true
			status.Message = fmt.Sprintf("%d of %d scoping questions answered", answered, total)
			return status, nil
		}
		s.completeScoping()

	case StageGap:
		assessed := 0
		for _, a := range s.assessments {
			if a.Status != models.StatusUnset {
				assessed++
			}
		}
		status.Completed, status.Total = assessed, len(s.assessments)
		if float64(assessed) < float64(len(s.assessments))*s.cfg.GapThreshold && !override {
			status.NeedsConfirmation = true
			status.Message = fmt.Sprintf("%d of %d controls assessed", assessed, len(s.assessments))
			return status, nil
		}

	case StageRisk:
		valid := 0
		for _, r := range s.risks {
			if r.Asset != "" && r.Threat != "" {
				valid++
			}
		}
		status.Completed, status.Total = valid, len(s.risks)
		if valid == 0 {
			return status, fmt.Errorf("%w: no risk with asset and threat", ErrStageIncomplete)
		}

	case StagePolicy:
		uploaded := 0
		for _, p := range s.policies {
			if p.Uploaded() {
				uploaded++
			}
		}
		required := len(models.RequiredPolicies)
		status.Completed, status.Total = uploaded, required
		if float64(uploaded) < float64(required)*s.cfg.PolicyThreshold && !override {
			status.NeedsConfirmation = true
			status.Message = fmt.Sprintf("%d of %d required policies uploaded", uploaded, required)
			return status, nil
		}

	case StageVAPT:
		uploaded := 0
		for _, v := range s.vapt {
			if v.ReportFileName != "" {
				uploaded++
			}
		}
		status.Completed, status.Total = uploaded, len(s.vapt)
		if uploaded == 0 && !override {
			status.NeedsConfirmation = true
			status.Message = "no assessment reports uploaded"
			return status, nil
		}

	case StageAudit:
		if s.audit.StartDate == "" || s.audit.EndDate == "" {
			return status, fmt.Errorf("%w: audit start and end dates required", ErrStageIncomplete)
		}
		status.Completed, status.Total = 1, 1

	case StageDashboard:
		return status, fmt.Errorf("%w: dashboard has no completion gate", ErrUnknownStage)

	default:
		return status, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}

	status.Done = true
	status.Next = next(stage)
	s.current = status.Next

	s.log.Info().
		Str("stage", string(stage)).
		Str("next", string(status.Next)).
		Int("completed", status.Completed).
		Int("total", status.Total).
		Msg("stage completed")

	return status, nil
}

// completeScoping infers the infrastructure profile and, on first
// completion, creates one assessment per catalog control with the
// questions the profile calls for. Existing assessments keep their
// original questions so saved answers stay valid.
func (s *Store) completeScoping() {
	s.profile = s.profiler.InferProfile(s.scoping)

	if len(s.assessments) > 0 {
		return
	}
	for _, group := range catalog.Groups() {
		for _, control := range group.Controls {
			s.assessments = append(s.assessments, models.ControlAssessment{
				ControlID:   control.ID,
				ControlName: control.Name,
				Annex:       group.ID,
				Description: control.Description,
				Questions:   s.questions.Generate(control, s.profile),
				Answers:     map[string]string{},
			})
		}
	}
	s.log.Info().
		Int("controls", len(s.assessments)).
		Bool("cloud", s.profile.HasCloud).
		Bool("remote", s.profile.HasRemoteWork).
		Msg("assessments initialized")
}

func countAnswered(responses models.ScopingResponses) int {
	n := 0
	for _, answer := range responses {
		if strings.TrimSpace(answer) != "" {
			n++
		}
	}
	return n
}

// Responses returns a copy of the scoping answers.
func (s *Store) Responses() models.ScopingResponses {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.ScopingResponses, len(s.scoping))
	for id, answer := range s.scoping {
		out[id] = answer
	}
	return out
}

// SetResponses replaces the scoping answers. Ids not present in the
// questionnaire are dropped.
func (s *Store) SetResponses(responses models.ScopingResponses) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scoping = models.ScopingResponses{}
	for id, answer := range responses {
		if _, ok := catalog.FindQuestion(id); !ok {
			continue
		}
		s.scoping[id] = answer
	}
}

// Profile returns the profile inferred at the last scoping completion.
func (s *Store) Profile() models.InfrastructureProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// BuildReport assembles a compliance report from the current data.
func (s *Store) BuildReport() *models.ComplianceReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reports.Build(services.ReportInput{
		Scoping:     s.scoping,
		Assessments: s.assessments,
		Risks:       s.risks,
		Policies:    s.policies,
		VAPT:        s.vapt,
		Audit:       s.audit,
	})
}
