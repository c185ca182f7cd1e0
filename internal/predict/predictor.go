// Package predict answers per-gameweek point predictions from an externally
// trained table, keyed by fuzzy player-name lookup.
package predict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ansinha/fplbot/internal/resolve"
)

// ErrNoPrediction means the table holds no row for the requested player and
// gameweek.
var ErrNoPrediction = errors.New("no prediction available")

// Predictor is the opaque prediction contract the router consumes.
type Predictor interface {
	Predict(playerName string, gameweek int) (float64, error)
}

// Row is one predicted-points entry for a player in a gameweek.
type Row struct {
	Player   string
	Team     string
	Position string
	Gameweek int
	Points   float64
}

// Table is a Predictor backed by a fixed set of rows, typically loaded from
// the CSV written by the prediction scraper.
type Table struct {
	rows  []Row
	names []string
}

// NewTable builds a Table, deduplicating player names in row order for the
// fuzzy-match candidate list.
func NewTable(rows []Row) *Table {
	seen := make(map[string]bool, len(rows))
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		if !seen[r.Player] {
			seen[r.Player] = true
			names = append(names, r.Player)
		}
	}
	return &Table{rows: rows, names: names}
}

// LoadCSV reads a predictions table with a Player,Team,Position,GW,Points
// header row. Rows with unparseable numbers are skipped.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening predictions file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading predictions file: %w", err)
	}

	var rows []Row
	for i, rec := range records {
		if i == 0 || len(rec) < 5 {
			continue
		}
		gw, err := strconv.Atoi(rec[3])
		if err != nil {
			continue
		}
		points, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			continue
		}
		rows = append(rows, Row{
			Player:   rec[0],
			Team:     rec[1],
			Position: rec[2],
			Gameweek: gw,
			Points:   points,
		})
	}

	return NewTable(rows), nil
}

// Predict fuzzily resolves the player name against the table's own
// reference list, then returns the points for that player and gameweek.
// A failed resolution or a missing gameweek row both yield ErrNoPrediction.
func (t *Table) Predict(playerName string, gameweek int) (float64, error) {
	match, _, err := resolve.ResolvePlayer(playerName, t.names)
	if err != nil {
		return 0, ErrNoPrediction
	}

	for _, r := range t.rows {
		if r.Player == match && r.Gameweek == gameweek {
			return r.Points, nil
		}
	}
	return 0, ErrNoPrediction
}
