package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/ironbrookmc/scribe/internal/api"
	"github.com/ironbrookmc/scribe/internal/config"
	"github.com/ironbrookmc/scribe/internal/events"
	"github.com/ironbrookmc/scribe/internal/extractor"
	"github.com/ironbrookmc/scribe/internal/gemini"
	"github.com/ironbrookmc/scribe/internal/notify"
	"github.com/ironbrookmc/scribe/internal/pipeline"
	"github.com/ironbrookmc/scribe/internal/sink"
	"github.com/ironbrookmc/scribe/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	runID := uuid.New()
	slog.Info("scribe starting", "run_id", runID, "input", cfg.InputPath, "output", cfg.OutputPath)

	if cfg.HasAPIKey() {
		slog.Info("extraction credential loaded", "key", cfg.MaskedAPIKey(), "model", cfg.Model)
	} else {
		slog.Warn("GOOGLE_API_KEY not set or using the placeholder — extraction calls will fail and land in the failure log")
	}

	// Read the archive before opening any output so a missing input
	// leaves nothing behind.
	raw, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Error("input file not found, please create it", "path", cfg.InputPath)
		} else {
			slog.Error("failed to read input", "path", cfg.InputPath, "error", err)
		}
		os.Exit(1)
	}

	out, err := sink.NewWriter(cfg.OutputPath)
	if err != nil {
		slog.Error("failed to open output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	failures, err := sink.NewFailureLog(cfg.FailureLogPath)
	if err != nil {
		slog.Error("failed to open failure log", "error", err)
		os.Exit(1)
	}
	defer failures.Close()

	llm := gemini.NewClient(cfg.GoogleAPIKey, cfg.Model)
	ext := extractor.New(llm, slog.Default())

	runner := pipeline.NewRunner(pipeline.Config{
		MinSegmentLength: cfg.MinSegmentLength,
		SuccessDelay:     cfg.SuccessDelay,
		FailureDelay:     cfg.FailureDelay,
		ExtractRetries:   uint64(cfg.ExtractRetries),
	}, ext, out, failures, slog.Default())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional Postgres archive sink
	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			slog.Error("failed to prepare database schema", "error", err)
			os.Exit(1)
		}
		runner.SetArchiver(db)
		slog.Info("database archive enabled")
	}

	// Optional NATS progress events
	if cfg.NatsURL != "" {
		pub, err := events.Connect(cfg.NatsURL, cfg.NatsToken, runID, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		runner.SetPublisher(pub)
		slog.Info("event publishing enabled", "url", cfg.NatsURL)
	}

	// Optional status API
	if cfg.Port > 0 {
		srv := api.NewServer(cfg.Port, runID.String(), runner.Progress())
		go func() {
			if err := srv.Start(); err != nil {
				slog.Error("status server error", "error", err)
			}
		}()
	}

	summary, err := runner.Run(ctx, string(raw))
	if err != nil {
		slog.Error("run aborted", "error", err,
			"persisted", summary.Persisted,
			"failed", summary.Failed,
		)
		os.Exit(1)
	}

	postSlackSummary(cfg, summary)
	printSummary(cfg, summary)
}

func printSummary(cfg config.Config, s *pipeline.Summary) {
	fmt.Printf("\n=== Conversion Summary ===\n")
	fmt.Printf("Entries found: %d\n", s.Segments)
	fmt.Printf("Converted: %d\n", s.Persisted)
	fmt.Printf("Failed: %d\n", s.Failed)
	if s.Failed > 0 {
		fmt.Printf("Failure log: %s\n", cfg.FailureLogPath)
	}
	fmt.Printf("\nProcessing Complete! Your data is in %s\n", cfg.OutputPath)
}

func postSlackSummary(cfg config.Config, s *pipeline.Summary) {
	if cfg.SlackBotToken == "" || cfg.SlackChannel == "" {
		return
	}
	poster := notify.NewPoster(cfg.SlackBotToken, cfg.SlackChannel, slog.Default())
	if err := poster.PostRunSummary(context.Background(), s.Segments, s.Persisted, s.Failed, cfg.OutputPath); err != nil {
		slog.Warn("failed to post run summary to slack", "error", err)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
