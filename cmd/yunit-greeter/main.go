package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/op/go-logging"

	"github.com/Lucas-Developer/yunit/internal/apps"
	"github.com/Lucas-Developer/yunit/internal/config"
	"github.com/Lucas-Developer/yunit/internal/database"
	"github.com/Lucas-Developer/yunit/internal/database/repository"
	"github.com/Lucas-Developer/yunit/internal/display"
	"github.com/Lucas-Developer/yunit/internal/screenshot"
	"github.com/Lucas-Developer/yunit/internal/sessions"
	"github.com/Lucas-Developer/yunit/internal/tui"
)

var log = logging.MustGetLogger("greeter")

// initLogger parses the configured level string and installs a leveled
// stderr backend. Stdout belongs to the TUI.
func initLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{module} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Apps.Catalog), 0o755); err != nil {
		log.Fatalf("mkdir catalog dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	stateRepo := repository.NewGreeterStateRepo(db)

	registry, err := apps.LoadCatalog(cfg.Apps.Catalog)
	if err != nil {
		log.Fatalf("load application catalog: %v", err)
	}

	entries, err := sessions.Load(cfg.Sessions.Dir)
	if err != nil {
		log.Fatalf("load sessions: %v", err)
	}

	windows := display.NewRegistry()
	windows.Add(display.Window{ID: tui.GreeterWindowID, Backend: display.BackendQuick})
	windows.Activate(tui.GreeterWindowID)

	provider := &screenshot.Provider{
		Apps:        registry,
		Windows:     windows,
		BaseDir:     cfg.Screenshot.BaseDir,
		GridUnitPx:  cfg.Screenshot.GridUnitPx,
		RightMargin: cfg.Screenshot.RightMargin,
	}

	p := tea.NewProgram(
		tui.New(ctx, cfg, entries, provider, windows, stateRepo),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatalf("greeter: %v", err)
	}
}
