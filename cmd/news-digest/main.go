package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pribylovaa/news-digest/internal/config"
	"github.com/pribylovaa/news-digest/internal/metrics"
	logctx "github.com/pribylovaa/news-digest/internal/pkg/log"
	"github.com/pribylovaa/news-digest/internal/render"
	"github.com/pribylovaa/news-digest/internal/rss"
	"github.com/pribylovaa/news-digest/internal/service"
	"github.com/pribylovaa/news-digest/internal/storage/jsonfile"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// cliOptions — параметры командной строки.
type cliOptions struct {
	configPath string
	outPath    string
	top        int
	quiet      bool
}

// parseFlags разбирает аргументы командной строки (без имени программы).
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("news-digest", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "path to config file, e.g. -config config/local.yaml (overrides CONFIG_PATH env; default ./local.yaml, then ENV only)")
	fs.StringVar(&opts.outPath, "out", "", "path to output JSON file (overrides output.path)")
	fs.IntVar(&opts.top, "top", 0, "number of articles to keep (overrides limits.top)")
	fs.BoolVar(&opts.quiet, "quiet", false, "do not print the digest to stdout")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	return opts, nil
}

// apply переносит флаги поверх загруженной конфигурации.
func (o cliOptions) apply(cfg *config.Config) {
	if o.outPath != "" {
		cfg.Output.Path = o.outPath
	}
	if o.top > 0 {
		cfg.Limits.Top = o.top
	}
	if o.quiet {
		cfg.Output.Console = false
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg := config.MustLoad(opts.configPath)
	opts.apply(cfg)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting news-digest",
		slog.String("env", cfg.Env),
		slog.Int("sources", len(cfg.Fetcher.Sources)),
	)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = logctx.Into(rootCtx, log)

	httpClient := &http.Client{Timeout: cfg.Fetcher.Timeout}
	parser := rss.New(httpClient, rss.Options{
		MaxConcurrent: cfg.Fetcher.MaxConcurrent,
		UserAgent:     cfg.Fetcher.UserAgent,
		MaxBodyBytes:  cfg.Fetcher.MaxBodyBytes,
	})

	sink := jsonfile.New(cfg.Output.Path)
	m := metrics.New()

	svc := service.New(parser, sink, *cfg, service.WithRecorder(m))
	log.Info("service_initialized", slog.String("output", sink.Path()))

	digest, runErr := svc.Run(rootCtx)
	if runErr != nil {
		log.Error("run_failed", slog.String("err", runErr.Error()))
	}

	if digest != nil && cfg.Output.Console {
		if err := render.NewConsole(os.Stdout).Render(digest); err != nil {
			log.Warn("render_failed", slog.String("err", err.Error()))
		}
	}

	if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Warn("metrics_write_failed",
			slog.String("path", cfg.Metrics.Textfile),
			slog.String("err", err.Error()),
		)
	}

	if runErr != nil {
		rootCancel()
		os.Exit(1)
	}

	log.Info("news-digest finished")
}

// setupLogger настраивает slog по окружению.
// Логи идут в stderr: stdout занят выводом дайджеста.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
