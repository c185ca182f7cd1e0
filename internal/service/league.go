// Package service orchestrates the periodic ingestion of league reference
// data into the store.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ansinha/fplbot/internal/api/fpl"
	"github.com/ansinha/fplbot/internal/store"
)

type LeagueService struct {
	api   *fpl.API
	store store.Store
}

func NewLeagueService(api *fpl.API, st store.Store) *LeagueService {
	return &LeagueService{api: api, store: st}
}

// Refresh replaces the store's snapshot wholesale with the provider's
// current view. Requests in flight keep reading whichever snapshot they
// started on.
func (s *LeagueService) Refresh() error {
	started := time.Now()

	players, teams, currentGW, nextGW, err := s.api.Bootstrap()
	if err != nil {
		return fmt.Errorf("refreshing bootstrap data: %w", err)
	}

	fixtures, err := s.api.Fixtures(currentGW, nextGW)
	if err != nil {
		return fmt.Errorf("refreshing fixtures: %w", err)
	}

	snap := store.Snapshot{Players: players, Teams: teams, Fixtures: fixtures}
	if err := s.store.ReplaceAll(snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	slog.Info("Reference data refreshed",
		"players", len(players),
		"teams", len(teams),
		"fixtures", len(fixtures),
		"current_gameweek", currentGW,
		"took", time.Since(started))
	return nil
}
