// Package postgres persists the league snapshot in Postgres so it survives
// restarts between ingestion runs.
package postgres

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ansinha/fplbot/internal/models"
	"github.com/ansinha/fplbot/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	team_id INTEGER NOT NULL,
	team_name TEXT NOT NULL,
	position TEXT NOT NULL,
	cost INTEGER NOT NULL,
	form DOUBLE PRECISION NOT NULL,
	total_points INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS teams (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	strength_home INTEGER NOT NULL,
	strength_away INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS fixtures (
	gameweek INTEGER NOT NULL,
	home_team_id INTEGER NOT NULL,
	away_team_id INTEGER NOT NULL,
	home_score INTEGER,
	away_score INTEGER,
	home_difficulty INTEGER NOT NULL,
	away_difficulty INTEGER NOT NULL,
	is_current BOOLEAN NOT NULL,
	is_next BOOLEAN NOT NULL,
	finished BOOLEAN NOT NULL
);`

type Store struct {
	db *sql.DB
}

// Open connects, verifies the connection, and creates the schema if it
// doesn't exist yet.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceAll swaps the stored snapshot inside one transaction using COPY
// for the bulk loads.
func (s *Store) ReplaceAll(snap store.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning refresh transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`TRUNCATE players, teams, fixtures`); err != nil {
		return fmt.Errorf("clearing tables: %w", err)
	}

	if err := copyPlayers(tx, snap.Players); err != nil {
		return err
	}
	if err := copyTeams(tx, snap.Teams); err != nil {
		return err
	}
	if err := copyFixtures(tx, snap.Fixtures); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing refresh: %w", err)
	}
	return nil
}

func copyPlayers(tx *sql.Tx, players []models.Player) error {
	stmt, err := tx.Prepare(pq.CopyIn("players",
		"id", "name", "team_id", "team_name", "position", "cost", "form", "total_points"))
	if err != nil {
		return fmt.Errorf("preparing player copy: %w", err)
	}
	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, p.TeamID, p.TeamName, string(p.Position),
			int(p.Cost), p.Form, p.TotalPoints); err != nil {
			return fmt.Errorf("copying player %d: %w", p.ID, err)
		}
	}
	if _, err := stmt.Exec(); err != nil {
		return fmt.Errorf("flushing player copy: %w", err)
	}
	return stmt.Close()
}

func copyTeams(tx *sql.Tx, teams []models.Team) error {
	stmt, err := tx.Prepare(pq.CopyIn("teams", "id", "name", "strength_home", "strength_away"))
	if err != nil {
		return fmt.Errorf("preparing team copy: %w", err)
	}
	for _, t := range teams {
		if _, err := stmt.Exec(t.ID, t.Name, t.StrengthHome, t.StrengthAway); err != nil {
			return fmt.Errorf("copying team %d: %w", t.ID, err)
		}
	}
	if _, err := stmt.Exec(); err != nil {
		return fmt.Errorf("flushing team copy: %w", err)
	}
	return stmt.Close()
}

func copyFixtures(tx *sql.Tx, fixtures []models.Fixture) error {
	stmt, err := tx.Prepare(pq.CopyIn("fixtures",
		"gameweek", "home_team_id", "away_team_id", "home_score", "away_score",
		"home_difficulty", "away_difficulty", "is_current", "is_next", "finished"))
	if err != nil {
		return fmt.Errorf("preparing fixture copy: %w", err)
	}
	for _, f := range fixtures {
		if _, err := stmt.Exec(f.Gameweek, f.HomeTeamID, f.AwayTeamID,
			nullableInt(f.HomeScore), nullableInt(f.AwayScore),
			f.HomeDifficulty, f.AwayDifficulty, f.IsCurrent, f.IsNext, f.Finished); err != nil {
			return fmt.Errorf("copying fixture gw%d %d-%d: %w", f.Gameweek, f.HomeTeamID, f.AwayTeamID, err)
		}
	}
	if _, err := stmt.Exec(); err != nil {
		return fmt.Errorf("flushing fixture copy: %w", err)
	}
	return stmt.Close()
}

func (s *Store) ListPlayers(f store.PlayerFilter) ([]models.Player, error) {
	query := `SELECT id, name, team_id, team_name, position, cost, form, total_points
		FROM players WHERE 1=1`
	var args []interface{}
	if f.Position != "" {
		args = append(args, string(f.Position))
		query += fmt.Sprintf(" AND position = $%d", len(args))
	}
	if f.MinCost > 0 {
		args = append(args, int(f.MinCost))
		query += fmt.Sprintf(" AND cost >= $%d", len(args))
	}
	if f.MaxCost > 0 {
		args = append(args, int(f.MaxCost))
		query += fmt.Sprintf(" AND cost <= $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		var position string
		var cost int
		if err := rows.Scan(&p.ID, &p.Name, &p.TeamID, &p.TeamName, &position, &cost,
			&p.Form, &p.TotalPoints); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		p.Position = models.Position(position)
		p.Cost = models.Money(cost)
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *Store) GetPlayer(id int) (models.Player, error) {
	row := s.db.QueryRow(`SELECT id, name, team_id, team_name, position, cost, form, total_points
		FROM players WHERE id = $1`, id)

	var p models.Player
	var position string
	var cost int
	err := row.Scan(&p.ID, &p.Name, &p.TeamID, &p.TeamName, &position, &cost, &p.Form, &p.TotalPoints)
	if err == sql.ErrNoRows {
		return models.Player{}, store.ErrNotFound
	}
	if err != nil {
		return models.Player{}, fmt.Errorf("querying player %d: %w", id, err)
	}
	p.Position = models.Position(position)
	p.Cost = models.Money(cost)
	return p, nil
}

func (s *Store) ListTeams() ([]models.Team, error) {
	rows, err := s.db.Query(`SELECT id, name, strength_home, strength_away FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.StrengthHome, &t.StrengthAway); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *Store) ListFixtures(f store.FixtureFilter) ([]models.Fixture, error) {
	query := `SELECT gameweek, home_team_id, away_team_id, home_score, away_score,
		home_difficulty, away_difficulty, is_current, is_next, finished
		FROM fixtures WHERE 1=1`
	var args []interface{}
	if f.Gameweek > 0 {
		args = append(args, f.Gameweek)
		query += fmt.Sprintf(" AND gameweek = $%d", len(args))
	}
	if f.IsCurrent {
		query += " AND is_current"
	}
	if f.IsNext {
		query += " AND is_next"
	}
	query += " ORDER BY gameweek"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying fixtures: %w", err)
	}
	defer rows.Close()

	var fixtures []models.Fixture
	for rows.Next() {
		var fx models.Fixture
		var homeScore, awayScore sql.NullInt64
		if err := rows.Scan(&fx.Gameweek, &fx.HomeTeamID, &fx.AwayTeamID, &homeScore, &awayScore,
			&fx.HomeDifficulty, &fx.AwayDifficulty, &fx.IsCurrent, &fx.IsNext, &fx.Finished); err != nil {
			return nil, fmt.Errorf("scanning fixture: %w", err)
		}
		fx.HomeScore = intPointer(homeScore)
		fx.AwayScore = intPointer(awayScore)
		fixtures = append(fixtures, fx)
	}
	return fixtures, rows.Err()
}

func (s *Store) CurrentGameweek() (int, error) {
	var gw int
	err := s.db.QueryRow(`SELECT gameweek FROM fixtures WHERE is_current ORDER BY gameweek LIMIT 1`).Scan(&gw)
	if err == sql.ErrNoRows {
		err = s.db.QueryRow(`SELECT gameweek FROM fixtures WHERE is_next ORDER BY gameweek LIMIT 1`).Scan(&gw)
	}
	if err == sql.ErrNoRows {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("querying current gameweek: %w", err)
	}
	return gw, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intPointer(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
