package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"isms-lab/internal/api/handlers"
	apimiddleware "isms-lab/internal/api/middleware"
	"isms-lab/internal/config"
	"isms-lab/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   *config.Config
	handlers *handlers.Handlers
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg *config.Config, h *handlers.Handlers, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Health check
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)

	router.Route("/api/v1", func(api chi.Router) {
		// Reference data
		api.Get("/questionnaire", r.handlers.Questionnaire.ListQuestions)
		api.Get("/catalog", r.handlers.Questionnaire.ListControls)
		api.Get("/catalog/{id}", r.handlers.Questionnaire.GetControl)

		// Scoping stage
		api.Route("/scoping", func(scoping chi.Router) {
			scoping.Get("/", r.handlers.Scoping.Get)
			scoping.Put("/", r.handlers.Scoping.Put)
			scoping.Post("/complete", r.handlers.Scoping.Complete)
		})
		api.Get("/profile", r.handlers.Scoping.Profile)

		// Gap assessment stage
		api.Route("/gap", func(gap chi.Router) {
			gap.Get("/", r.handlers.Gap.List)
			gap.Get("/export", r.handlers.Gap.Export)
			gap.Get("/evidence-template", r.handlers.Gap.EvidenceTemplate)
			gap.Post("/evidence-template", r.handlers.Gap.ImportEvidence)
			gap.Post("/complete", r.handlers.Gap.Complete)
			gap.Get("/{controlID}", r.handlers.Gap.Get)
			gap.Put("/{controlID}", r.handlers.Gap.Update)
			gap.Put("/{controlID}/answers", r.handlers.Gap.Answers)
			gap.Post("/{controlID}/evidence", r.handlers.Gap.Evidence)
		})

		// Risk register stage
		api.Route("/risks", func(risks chi.Router) {
			risks.Get("/", r.handlers.Risks.List)
			risks.Post("/", r.handlers.Risks.Create)
			risks.Get("/export", r.handlers.Risks.Export)
			risks.Post("/complete", r.handlers.Risks.Complete)
			risks.Put("/{id}", r.handlers.Risks.Update)
			risks.Delete("/{id}", r.handlers.Risks.Delete)
		})

		// Policy register stage
		api.Route("/policies", func(policies chi.Router) {
			policies.Get("/", r.handlers.Policies.List)
			policies.Post("/", r.handlers.Policies.Create)
			policies.Get("/export", r.handlers.Policies.Export)
			policies.Post("/complete", r.handlers.Policies.Complete)
			policies.Put("/{id}", r.handlers.Policies.Update)
			policies.Delete("/{id}", r.handlers.Policies.Delete)
			policies.Post("/{id}/upload", r.handlers.Policies.Upload)
		})

		// Security assessment stage
		api.Route("/vapt", func(vapt chi.Router) {
			vapt.Get("/", r.handlers.VAPT.List)
			vapt.Post("/complete", r.handlers.VAPT.Complete)
			vapt.Put("/{id}", r.handlers.VAPT.Update)
			vapt.Post("/{id}/upload", r.handlers.VAPT.Upload)
		})

		// Internal audit stage
		api.Route("/audit", func(audit chi.Router) {
			audit.Get("/", r.handlers.Audit.Get)
			audit.Put("/", r.handlers.Audit.Update)
			audit.Post("/findings", r.handlers.Audit.AddFinding)
			audit.Delete("/findings/{id}", r.handlers.Audit.DeleteFinding)
			audit.Post("/upload", r.handlers.Audit.Upload)
			audit.Post("/complete", r.handlers.Audit.Complete)
		})

		// Wizard navigation
		api.Route("/workflow", func(wf chi.Router) {
			wf.Get("/", r.handlers.Workflow.Status)
			wf.Post("/goto", r.handlers.Workflow.Goto)
		})

		// Aggregated report
		api.Route("/report", func(report chi.Router) {
			report.Get("/", r.handlers.Report.Get)
			report.Get("/export", r.handlers.Report.Export)
		})
	})

	return router
}
