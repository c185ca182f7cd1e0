// Package scheduler keeps the league snapshot fresh on a fixed interval.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/ansinha/fplbot/internal/service"
)

type Scheduler struct {
	s       gocron.Scheduler
	league  *service.LeagueService
	refresh time.Duration
}

func NewScheduler(league *service.LeagueService, refresh time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:       s,
		league:  league,
		refresh: refresh,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.refresh),
		gocron.NewTask(s.refreshData),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshData() {
	if err := s.league.Refresh(); err != nil {
		slog.Error("Failed to refresh reference data", "error", err)
	}
}
