package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ai-vision/config"
	"ai-vision/internal/application"
	"ai-vision/internal/infra/audio"
	"ai-vision/internal/infra/notify"
	"ai-vision/internal/infra/ocr"
	"ai-vision/internal/infra/openai"
	"ai-vision/internal/infra/screen"
	"ai-vision/internal/infra/tempfile"
	"ai-vision/internal/infra/whispercpp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	ctx := context.Background()

	notifier := createNotifier(cfg.Notify, logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration error", "error", err)
		if notifyErr := notifier.Notify(ctx, "Configuration Issue", err.Error()); notifyErr != nil {
			logger.Error("notifying configuration error", "error", notifyErr)
		}
		os.Exit(1)
	}

	recorder := audio.NewMicrophoneRecorder(
		time.Duration(cfg.Pipeline.RecordSeconds)*time.Second,
		cfg.Audio.SampleRate,
		logger,
	)

	recognizer := whispercpp.NewRecognizer(
		cfg.Whisper.Binary,
		cfg.Whisper.Model,
		config.Duration(cfg.Whisper.Timeout, 60*time.Second),
		logger,
	)

	extractor := ocr.NewTesseractExtractor(cfg.OCR.Languages, logger)

	assistant := openai.NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		config.Duration(cfg.OpenAI.Timeout, 30*time.Second),
	)

	artifacts := tempfile.NewTracker(cfg.Pipeline.ScratchDir, logger)

	pipeline := application.NewPipeline(
		recorder,
		recognizer,
		createCapturer(cfg.Screen, logger),
		extractor,
		assistant,
		notifier,
		artifacts,
		logger,
	)

	logger.Info("starting run",
		"record_seconds", cfg.Pipeline.RecordSeconds,
		"screen_backend", cfg.Screen.Backend,
	)

	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline error", "error", err)
		os.Exit(1)
	}
}

func createCapturer(cfg config.ScreenConfig, logger *slog.Logger) application.Capturer {
	switch cfg.Backend {
	case "native":
		return screen.NewNativeCapturer(logger)
	case "screencapture":
		return screen.NewCommandCapturer(cfg.Binary, config.Duration(cfg.Timeout, 10*time.Second), logger)
	default:
		logger.Warn("unknown screen backend, using screencapture", "backend", cfg.Backend)
		return screen.NewCommandCapturer(cfg.Binary, config.Duration(cfg.Timeout, 10*time.Second), logger)
	}
}

func createNotifier(cfg config.NotifyConfig, logger *slog.Logger) application.Notifier {
	switch cfg.Backend {
	case "osascript":
		return notify.NewOsascriptNotifier(cfg.AppName, logger)
	case "beeep":
		return notify.NewBeeepNotifier(cfg.AppName, logger)
	case "none":
		return &application.NoopNotifier{}
	default:
		logger.Warn("unknown notify backend, using beeep", "backend", cfg.Backend)
		return notify.NewBeeepNotifier(cfg.AppName, logger)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
