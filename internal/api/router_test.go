package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"isms-lab/internal/api/handlers"
	"isms-lab/internal/config"
	"isms-lab/internal/domain/catalog"
	"isms-lab/internal/export"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "isms-lab", Environment: "test", Version: "test"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		},
		Workflow: config.WorkflowConfig{
			ScopingThreshold: 0.5,
			GapThreshold:     0.8,
			PolicyThreshold:  0.7,
		},
		Upload: config.UploadConfig{MaxFileSize: 25 << 20},
	}
}

func testServer(t *testing.T) (*httptest.Server, *workflow.Store) {
	t.Helper()

	cfg := testConfig()
	log := logger.NewDevelopment()
	store := workflow.NewStore(workflow.Config{
		ScopingThreshold: cfg.Workflow.ScopingThreshold,
		GapThreshold:     cfg.Workflow.GapThreshold,
		PolicyThreshold:  cfg.Workflow.PolicyThreshold,
	}, log)
	h := handlers.NewHandlers(handlers.Dependencies{
		Store:    store,
		Exporter: export.NewExporter(log),
		Config:   cfg,
		Logger:   log,
	})

	srv := httptest.NewServer(NewRouter(cfg, h, log).Setup())
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, into interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthAndReady(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}
	var health struct {
		Status string `json:"status"`
	}
	decode(t, resp, &health)
	if health.Status != "healthy" {
		t.Errorf("status = %q", health.Status)
	}

	resp, err = http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("GET /ready: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("ready status = %d", resp.StatusCode)
	}
}

func TestReferenceData(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/catalog")
	if err != nil {
		t.Fatalf("GET /catalog: %v", err)
	}
	var controls struct {
		Total int `json:"total"`
	}
	decode(t, resp, &controls)
	if controls.Total != catalog.TotalControls() {
		t.Errorf("catalog total = %d", controls.Total)
	}

	resp, err = http.Get(srv.URL + "/api/v1/catalog/A.8.13")
	if err != nil {
		t.Fatalf("GET control: %v", err)
	}
	var control struct {
		Name string `json:"name"`
	}
	decode(t, resp, &control)
	if control.Name != "Information backup" {
		t.Errorf("control name = %q", control.Name)
	}

	resp, err = http.Get(srv.URL + "/api/v1/catalog/A.9.9")
	if err != nil {
		t.Fatalf("GET missing control: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing control status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/v1/questionnaire")
	if err != nil {
		t.Fatalf("GET /questionnaire: %v", err)
	}
	var questions struct {
		Total int `json:"total"`
	}
	decode(t, resp, &questions)
	if questions.Total != catalog.TotalQuestions() {
		t.Errorf("questionnaire total = %d", questions.Total)
	}
}

func TestScopingFlow(t *testing.T) {
	srv, _ := testServer(t)

	put := map[string]interface{}{
		"responses": map[string]string{
			"22": "Hybrid cloud on AWS and Azure",
			"46": "yes, fully remote",
		},
	}
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v1/scoping", put)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT /scoping status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Two answers is below the threshold; the gate asks for
	// confirmation first.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/scoping/complete", nil)
	var status struct {
		Done              bool   `json:"done"`
		NeedsConfirmation bool   `json:"needs_confirmation"`
		Next              string `json:"next"`
	}
	decode(t, resp, &status)
	if status.Done || !status.NeedsConfirmation {
		t.Fatalf("status = %+v, want needs confirmation", status)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/scoping/complete", map[string]bool{"override": true})
	decode(t, resp, &status)
	if !status.Done || status.Next != "gap" {
		t.Fatalf("status = %+v", status)
	}

	// Profile reflects the hybrid cloud answers.
	resp, err := http.Get(srv.URL + "/api/v1/profile")
	if err != nil {
		t.Fatalf("GET /profile: %v", err)
	}
	var profile struct {
		HasCloud       bool     `json:"has_cloud"`
		HasRemoteWork  bool     `json:"has_remote_work"`
		CloudProviders []string `json:"cloud_providers"`
	}
	decode(t, resp, &profile)
	if !profile.HasCloud || !profile.HasRemoteWork {
		t.Errorf("profile = %+v", profile)
	}
	if len(profile.CloudProviders) != 2 {
		t.Errorf("providers = %v", profile.CloudProviders)
	}

	// Assessments exist for every catalog control.
	resp, err = http.Get(srv.URL + "/api/v1/gap")
	if err != nil {
		t.Fatalf("GET /gap: %v", err)
	}
	var gap struct {
		Total int `json:"total"`
	}
	decode(t, resp, &gap)
	if gap.Total != catalog.TotalControls() {
		t.Errorf("gap total = %d", gap.Total)
	}
}

func TestGapUpdateAndAnswers(t *testing.T) {
	srv, store := testServer(t)
	seedScoping(t, srv)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v1/gap/A.5.9", map[string]string{
		"status":   "Partially Implemented",
		"priority": "High",
	})
	var a struct {
		Status   string `json:"status"`
		Priority string `json:"priority"`
	}
	decode(t, resp, &a)
	if a.Status != "Partially Implemented" || a.Priority != "High" {
		t.Errorf("assessment = %+v", a)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/gap/A.5.9/answers", map[string]interface{}{
		"answers": map[string]string{"asset_inventory_tool": "ServiceNow"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT answers status = %d", resp.StatusCode)
	}

	saved, err := store.Assessment("A.5.9")
	if err != nil {
		t.Fatalf("Assessment: %v", err)
	}
	if saved.Answers["asset_inventory_tool"] != "ServiceNow" {
		t.Errorf("answers = %v", saved.Answers)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/gap/A.99.1", map[string]string{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown control status = %d", resp.StatusCode)
	}
}

func TestRisksCRUD(t *testing.T) {
	srv, _ := testServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/risks", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /risks status = %d", resp.StatusCode)
	}
	var created struct {
		ID string `json:"id"`
	}
	decode(t, resp, &created)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/risks/"+created.ID, map[string]string{
		"asset":      "Customer database",
		"threat":     "Ransomware",
		"likelihood": "High",
		"impact":     "High",
	})
	var updated struct {
		RiskLevel string `json:"risk_level"`
	}
	decode(t, resp, &updated)
	if updated.RiskLevel != "Critical" {
		t.Errorf("risk_level = %q, want Critical", updated.RiskLevel)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/risks/"+created.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/risks/not-a-uuid", map[string]string{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad id status = %d", resp.StatusCode)
	}
}

func TestAuditCompletionGate(t *testing.T) {
	srv, _ := testServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/audit/complete", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("complete without dates status = %d, want 422", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/audit", map[string]string{
		"start_date": "2026-01-10",
		"end_date":   "2026-01-14",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT /audit status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/audit/complete", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("complete with dates status = %d", resp.StatusCode)
	}
}

func TestWorkflowGoto(t *testing.T) {
	srv, _ := testServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/workflow/goto", map[string]string{"stage": "risk"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("forward goto status = %d, want 409", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/workflow/goto", map[string]string{"stage": "bogus"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown goto status = %d, want 400", resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/api/v1/workflow")
	if err != nil {
		t.Fatalf("GET /workflow: %v", err)
	}
	var status struct {
		Current string   `json:"current"`
		Stages  []string `json:"stages"`
	}
	decode(t, resp, &status)
	if status.Current != "scoping" || len(status.Stages) != 7 {
		t.Errorf("status = %+v", status)
	}
}

func TestReportEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/report")
	if err != nil {
		t.Fatalf("GET /report: %v", err)
	}
	var report struct {
		Stats struct {
			TotalPolicies int `json:"total_policies"`
			TotalRisks    int `json:"total_risks"`
		} `json:"stats"`
		Recommendations []string `json:"recommendations"`
	}
	decode(t, resp, &report)
	if report.Stats.TotalPolicies != 10 || report.Stats.TotalRisks != 1 {
		t.Errorf("stats = %+v", report.Stats)
	}
	// Nothing is uploaded yet, so the documentation recommendation is
	// always present.
	found := false
	for _, r := range report.Recommendations {
		if r == "Complete documentation: 10 policies pending upload" {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations = %v", report.Recommendations)
	}
}

func TestEvidenceTemplateDownload(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/gap/evidence-template")
	if err != nil {
		t.Fatalf("GET evidence-template: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content-type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="ISMS_Evidence_Template.xlsx"` {
		t.Errorf("content-disposition = %q", cd)
	}
}

// seedScoping answers the minimum and forces scoping completion so
// the gap endpoints have assessments to work with.
func seedScoping(t *testing.T, srv *httptest.Server) {
	t.Helper()

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/v1/scoping", map[string]interface{}{
		"responses": map[string]string{"22": "Hybrid cloud on AWS"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("seed PUT /scoping status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/scoping/complete", map[string]bool{"override": true})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("seed complete status = %d", resp.StatusCode)
	}
	var status struct {
		Done bool `json:"done"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status.Done {
		t.Fatal("seed scoping not done")
	}
}
