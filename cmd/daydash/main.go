package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daydash/internal/alerts"
	"daydash/internal/config"
	"daydash/internal/draft"
	"daydash/internal/notify"
	"daydash/internal/quickadd"
	"daydash/internal/storage"
	"daydash/internal/update"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "daydash failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	repo, err := storage.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Notify.Desktop {
		notifier = notify.DesktopNotifier{}
	}
	var player notify.SoundPlayer = notify.NoopPlayer{}
	if cfg.Notify.Sound {
		player = notify.ExecPlayer{SoundDir: cfg.Notify.SoundDir}
	}

	poller := alerts.NewPoller(storage.NewAlertStore(repo), notifier, player, logger, alerts.Config{
		TaskInterval:  time.Duration(cfg.Alerts.TaskPollSeconds) * time.Second,
		EventInterval: time.Duration(cfg.Alerts.EventPollSeconds) * time.Second,
	})
	poller.Start()
	defer poller.Stop()

	var generator draft.Generator
	if cfg.Draft.APIKey != "" {
		generator, err = draft.NewDeepSeekGenerator(cfg.Draft.APIKey, cfg.Draft.Model, cfg.Draft.MaxTokens)
		if err != nil {
			logger.Warn("draft generator disabled", "error", err)
			generator = nil
		}
	}

	model := update.NewModel(update.Deps{
		Repo:      repo,
		Poller:    poller,
		Parser:    quickadd.New(),
		Generator: generator,
		Notifier:  notifier,
	})

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
