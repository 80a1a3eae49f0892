package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Audio    AudioConfig    `yaml:"audio"`
	Whisper  WhisperConfig  `yaml:"whisper"`
	Screen   ScreenConfig   `yaml:"screen"`
	OCR      OCRConfig      `yaml:"ocr"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Notify   NotifyConfig   `yaml:"notify"`
	Log      LogConfig      `yaml:"log"`
}

type PipelineConfig struct {
	RecordSeconds int    `yaml:"record_seconds"`
	ScratchDir    string `yaml:"scratch_dir"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
}

type WhisperConfig struct {
	Binary  string `yaml:"binary"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

type ScreenConfig struct {
	// Backend is "screencapture" (external executable) or "native" (in-process).
	Backend string `yaml:"backend"`
	Binary  string `yaml:"binary"`
	Timeout string `yaml:"timeout"`
}

type OCRConfig struct {
	Languages []string `yaml:"languages"`
}

type OpenAIConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
}

type NotifyConfig struct {
	// Backend is "osascript", "beeep", or "none".
	Backend string `yaml:"backend"`
	AppName string `yaml:"app_name"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML config at path, expanding ${VAR} references from the
// environment. A missing file is not an error: this is a single-shot tool and
// the defaults cover everything except the API credential.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// run on defaults
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	home, _ := os.UserHomeDir()

	if c.Pipeline.RecordSeconds == 0 {
		c.Pipeline.RecordSeconds = 5
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Whisper.Binary == "" {
		c.Whisper.Binary = home + "/AI-Vision/whisper.cpp/main"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = home + "/AI-Vision/whisper.cpp/models/ggml-base.en.bin"
	}
	if c.Whisper.Timeout == "" {
		c.Whisper.Timeout = "60s"
	}
	if c.Screen.Backend == "" {
		if runtime.GOOS == "darwin" {
			c.Screen.Backend = "screencapture"
		} else {
			c.Screen.Backend = "native"
		}
	}
	if c.Screen.Binary == "" {
		c.Screen.Binary = "screencapture"
	}
	if c.Screen.Timeout == "" {
		c.Screen.Timeout = "10s"
	}
	if len(c.OCR.Languages) == 0 {
		c.OCR.Languages = []string{"eng"}
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.MaxTokens == 0 {
		c.OpenAI.MaxTokens = 200
	}
	if c.OpenAI.Temperature == 0 {
		c.OpenAI.Temperature = 0.5
	}
	if c.OpenAI.Timeout == "" {
		c.OpenAI.Timeout = "30s"
	}
	if c.Notify.Backend == "" {
		if runtime.GOOS == "darwin" {
			c.Notify.Backend = "osascript"
		} else {
			c.Notify.Backend = "beeep"
		}
	}
	if c.Notify.AppName == "" {
		c.Notify.AppName = "AI-Vision"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks startup preconditions. A missing API credential is the one
// configuration error that must stop the run before any stage executes.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return nil
}

// Duration parses a duration field, falling back to def on empty or bad input.
func Duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
