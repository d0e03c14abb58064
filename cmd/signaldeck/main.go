package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"SignalDeck/internal/chart"
	"SignalDeck/internal/collector"
	"SignalDeck/internal/config"
	"SignalDeck/internal/education"
	"SignalDeck/internal/logger"
	"SignalDeck/internal/scheduler"
	"SignalDeck/internal/session"
	"SignalDeck/internal/ui"
)

func main() {
	cfgPath := flag.String("config", envOr("CONFIG_PATH", "configs/config.yaml"), "config file")
	symbol := flag.String("symbol", "", "initial symbol (overrides config)")
	apiURL := flag.String("api-url", "", "analytics API base URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal("load config: %v", err)
	}
	if *symbol != "" {
		cfg.Dashboard.Symbol = *symbol
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}
	if err := cfg.Validate(); err != nil {
		fatal("config validation: %v", err)
	}
	tab, err := session.ParseTab(cfg.Dashboard.Tab)
	if err != nil {
		fatal("dashboard.tab: %v", err)
	}

	// stdout belongs to the UI, so logs always go to the rotating file.
	log, closer := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer closer.Close()
	log.Info().Str("api", cfg.API.BaseURL).Str("symbol", cfg.Dashboard.Symbol).Msg("SignalDeck starting")

	fetcher := collector.NewHTTPFetcher(collector.Options{
		BaseURL:  cfg.API.BaseURL,
		ProxyURL: cfg.API.Proxy,
		Timeout:  cfg.API.Timeout,
		Retries:  cfg.RetryCount(),
		Backoff:  cfg.API.Backoff,
	}, log)

	library, err := education.New(cfg.Education.TablePath, fetcher, log)
	if err != nil {
		fatal("init education table: %v", err)
	}

	surface := &chart.Terminal{}
	adapter := chart.NewAdapter(surface)
	ctrl := session.NewController(fetcher, log, session.WithChart(adapter))
	if _, err := ctrl.SwitchTab(string(tab)); err != nil {
		fatal("switch tab: %v", err)
	}

	m := ui.NewModel(ui.Options{
		Controller: ctrl,
		Education:  library,
		Chart:      adapter,
		Surface:    surface,
		Symbol:     cfg.Dashboard.Symbol,
		Log:        log,
		ToastTTL:   4 * time.Second,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	sched := scheduler.NewScheduler(func() { p.Send(ui.RefreshMsg{}) }, log)
	registered, err := sched.Register(cfg.Refresh.Cron)
	if err != nil {
		fatal("register refresh: %v", err)
	}
	if registered {
		sched.Start()
		defer sched.Stop()
	}

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("UI exited with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("SignalDeck stopped")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "signaldeck: "+format+"\n", args...)
	os.Exit(1)
}
