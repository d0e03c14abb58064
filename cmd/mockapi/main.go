package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"SignalDeck/internal/config"
	"SignalDeck/internal/logger"
	"SignalDeck/internal/mockapi"
)

func main() {
	cfgPath := flag.String("config", envOr("CONFIG_PATH", "configs/config.yaml"), "config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	fail := flag.String("fail", "", "comma-separated resource kinds that answer 500")
	seed := flag.Int64("seed", 0, "data seed (overrides config when non-zero)")
	pretty := flag.Bool("pretty", true, "human-readable logs")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}
	if *addr != "" {
		cfg.MockAPI.Addr = *addr
	}
	if *fail != "" {
		cfg.MockAPI.Fail = strings.Split(*fail, ",")
	}
	if *seed != 0 {
		cfg.MockAPI.Seed = *seed
	}

	log, closer := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: *pretty, Output: os.Stdout})
	defer closer.Close()

	kinds, err := cfg.FailKinds()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -fail")
	}

	srv, err := mockapi.New(mockapi.Config{
		Addr: cfg.MockAPI.Addr,
		Log:  log,
		Fail: kinds,
		Seed: cfg.MockAPI.Seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init mock API")
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("mock API server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
