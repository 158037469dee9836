package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.RollDelay != time.Second || cfg.FrameInterval != 50*time.Millisecond {
		t.Errorf("delays = %s, %s, want 1s, 50ms", cfg.RollDelay, cfg.FrameInterval)
	}
	if cfg.NarratorModel != "gemini-2.5-flash" {
		t.Errorf("NarratorModel = %q", cfg.NarratorModel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "seed: 42\nroll_delay: 300ms\nstrict: true\nlog_file: ''\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Seed != 42 || cfg.RollDelay != 300*time.Millisecond || !cfg.Strict || cfg.LogFile != "" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "seed: 42\n")
	t.Setenv("DICE_SEED", "7")
	t.Setenv("DICE_ROLL_DELAY", "2s")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("DICE_DEBUG", "true")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Seed != 7 || cfg.RollDelay != 2*time.Second || cfg.GeminiAPIKey != "key" || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{"malformed yaml", "seed: [", nil},
		{"zero delay", "roll_delay: 0s\n", nil},
		{"frame longer than delay", "roll_delay: 10ms\nframe_interval: 50ms\n", nil},
		{"bad seed env", "", map[string]string{"DICE_SEED": "abc"}},
		{"bad strict env", "", map[string]string{"DICE_STRICT": "maybe"}},
		{"bad debug env", "", map[string]string{"DICE_DEBUG": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadConfig() succeeded, want error")
			}
		})
	}
}
