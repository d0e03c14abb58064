package scheduler

import (
	"fmt"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler triggers periodic dashboard refreshes.
type Scheduler struct {
	Cron    *cron.Cron
	refresh func()
	log     zerolog.Logger

	mu      sync.Mutex
	entry   cron.EntryID
	running bool
}

// NewScheduler creates a Scheduler that calls refresh on every tick. A tick
// that fires while the previous refresh is still running is skipped.
func NewScheduler(refresh func(), log zerolog.Logger) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	return &Scheduler{
		Cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(&log)))),
		refresh: refresh,
		log:     log,
	}
}

// Register installs the refresh schedule. "off" or an empty spec registers
// nothing and reports false.
func (s *Scheduler) Register(spec string) (bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "off") {
		s.log.Info().Msg("periodic refresh disabled")
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry != 0 {
		s.Cron.Remove(s.entry)
		s.entry = 0
	}
	id, err := s.Cron.AddFunc(spec, s.tick)
	if err != nil {
		return false, fmt.Errorf("register refresh task: %w", err)
	}
	s.entry = id
	return true, nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the scheduler and waits for a running refresh to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow triggers a refresh immediately.
func (s *Scheduler) RunNow() {
	s.tick()
}

func (s *Scheduler) tick() {
	s.log.Debug().Msg("refresh tick")
	s.refresh()
}
