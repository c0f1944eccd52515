package config

import (
	"testing"
	"time"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	if cfg.App.Name != "isms-lab" || cfg.App.Environment != "development" {
		t.Errorf("app = %+v", cfg.App)
	}
	if cfg.Server.HTTPPort != 8080 || cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Workflow.ScopingThreshold != 0.5 || cfg.Workflow.GapThreshold != 0.8 || cfg.Workflow.PolicyThreshold != 0.7 {
		t.Errorf("workflow = %+v", cfg.Workflow)
	}
	if cfg.Upload.MaxFileSize != 25<<20 {
		t.Errorf("max_file_size = %d", cfg.Upload.MaxFileSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ISMS_SERVER_HTTP_PORT", "9090")
	t.Setenv("ISMS_WORKFLOW_GAP_THRESHOLD", "0.9")

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("http_port = %d, want 9090", cfg.Server.HTTPPort)
	}
	if cfg.Workflow.GapThreshold != 0.9 {
		t.Errorf("gap_threshold = %v, want 0.9", cfg.Workflow.GapThreshold)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
