package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ai-vision/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Pipeline.RecordSeconds != 5 {
		t.Errorf("record_seconds: got %d, want 5", cfg.Pipeline.RecordSeconds)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("sample_rate: got %d, want 16000", cfg.Audio.SampleRate)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model: got %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != 200 {
		t.Errorf("max_tokens: got %d, want 200", cfg.OpenAI.MaxTokens)
	}
	if cfg.OpenAI.Temperature != 0.5 {
		t.Errorf("temperature: got %v, want 0.5", cfg.OpenAI.Temperature)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api_key: got %q, want env value", cfg.OpenAI.APIKey)
	}
	if cfg.Notify.AppName != "AI-Vision" {
		t.Errorf("app_name: got %q", cfg.Notify.AppName)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	path := writeConfig(t, `
openai:
  api_key: ${OPENAI_API_KEY}
pipeline:
  record_seconds: 3
whisper:
  timeout: 90s
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-from-env" {
		t.Errorf("api_key: got %q, want expanded env value", cfg.OpenAI.APIKey)
	}
	if cfg.Pipeline.RecordSeconds != 3 {
		t.Errorf("record_seconds: got %d, want 3", cfg.Pipeline.RecordSeconds)
	}
	if got := config.Duration(cfg.Whisper.Timeout, time.Minute); got != 90*time.Second {
		t.Errorf("whisper timeout: got %v, want 90s", got)
	}
}

func TestValidate_MissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing credential")
	}
}

func TestDuration_FallsBack(t *testing.T) {
	if got := config.Duration("", 10*time.Second); got != 10*time.Second {
		t.Errorf("empty: got %v", got)
	}
	if got := config.Duration("not-a-duration", 10*time.Second); got != 10*time.Second {
		t.Errorf("bad input: got %v", got)
	}
	if got := config.Duration("250ms", 10*time.Second); got != 250*time.Millisecond {
		t.Errorf("parsed: got %v", got)
	}
}
