// Package memory holds the league snapshot in process memory behind a
// read-write lock. Reads copy out so callers never alias the snapshot.
package memory

import (
	"sync"

	"github.com/ansinha/fplbot/internal/models"
	"github.com/ansinha/fplbot/internal/store"
)

type Store struct {
	mu   sync.RWMutex
	snap store.Snapshot
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ReplaceAll(snap store.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}

func (s *Store) ListPlayers(f store.PlayerFilter) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]models.Player, 0, len(s.snap.Players))
	for _, p := range s.snap.Players {
		if store.MatchPlayer(p, f) {
			players = append(players, p)
		}
	}
	return players, nil
}

func (s *Store) GetPlayer(id int) (models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.snap.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Player{}, store.ErrNotFound
}

func (s *Store) ListTeams() ([]models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]models.Team, len(s.snap.Teams))
	copy(teams, s.snap.Teams)
	return teams, nil
}

func (s *Store) ListFixtures(f store.FixtureFilter) ([]models.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fixtures := make([]models.Fixture, 0, len(s.snap.Fixtures))
	for _, fx := range s.snap.Fixtures {
		if store.MatchFixture(fx, f) {
			fixtures = append(fixtures, fx)
		}
	}
	return fixtures, nil
}

// CurrentGameweek is the gameweek of the first fixture flagged current,
// falling back to the first flagged next when the season is between rounds.
func (s *Store) CurrentGameweek() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fx := range s.snap.Fixtures {
		if fx.IsCurrent {
			return fx.Gameweek, nil
		}
	}
	for _, fx := range s.snap.Fixtures {
		if fx.IsNext {
			return fx.Gameweek, nil
		}
	}
	return 0, store.ErrNotFound
}
