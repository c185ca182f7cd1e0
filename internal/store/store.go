// Package store defines the query contract over the league reference data
// (players, teams, fixtures) kept refreshed by the ingestion job.
package store

import (
	"errors"

	"github.com/ansinha/fplbot/internal/models"
)

// ErrNotFound is returned by keyed lookups that match nothing.
var ErrNotFound = errors.New("not found")

// PlayerFilter narrows ListPlayers. Zero values mean "no constraint".
type PlayerFilter struct {
	Position models.Position
	MinCost  models.Money
	MaxCost  models.Money // 0 means no cap
}

// FixtureFilter narrows ListFixtures. Zero values mean "no constraint".
type FixtureFilter struct {
	Gameweek  int
	IsCurrent bool
	IsNext    bool
}

// Snapshot is one wholesale refresh of the reference data.
type Snapshot struct {
	Players  []models.Player
	Teams    []models.Team
	Fixtures []models.Fixture
}

// Store is the read contract the router consumes plus the wholesale refresh
// hook the ingestion job drives. Reads observe a consistent snapshot; the
// core never mutates reference data.
type Store interface {
	ListPlayers(f PlayerFilter) ([]models.Player, error)
	GetPlayer(id int) (models.Player, error)
	ListTeams() ([]models.Team, error)
	ListFixtures(f FixtureFilter) ([]models.Fixture, error)
	CurrentGameweek() (int, error)
	ReplaceAll(s Snapshot) error
}

// MatchPlayer reports whether a player passes the filter.
func MatchPlayer(p models.Player, f PlayerFilter) bool {
	if f.Position != "" && p.Position != f.Position {
		return false
	}
	if f.MinCost > 0 && p.Cost < f.MinCost {
		return false
	}
	if f.MaxCost > 0 && p.Cost > f.MaxCost {
		return false
	}
	return true
}

// MatchFixture reports whether a fixture passes the filter.
func MatchFixture(fx models.Fixture, f FixtureFilter) bool {
	if f.Gameweek > 0 && fx.Gameweek != f.Gameweek {
		return false
	}
	if f.IsCurrent && !fx.IsCurrent {
		return false
	}
	if f.IsNext && !fx.IsNext {
		return false
	}
	return true
}
