package models

import (
	"fmt"
	"math"
)

// Position is a player's field position as reported by the league API.
type Position string

const (
	Goalkeeper Position = "GK"
	Defender   Position = "DEF"
	Midfielder Position = "MID"
	Forward    Position = "FWD"
)

// Money is a fixed-point amount in tenths of a million pounds, matching the
// league API's now_cost unit. Keeping costs integral avoids float drift when
// comparing against budgets.
type Money int

// MoneyFromFloat converts a value in millions (e.g. 7.5) to Money.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 10))
}

// Millions returns the amount in millions of pounds.
func (m Money) Millions() float64 {
	return float64(m) / 10
}

func (m Money) String() string {
	return fmt.Sprintf("£%.1fm", m.Millions())
}

type Player struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	TeamID      int      `json:"team_id"`
	TeamName    string   `json:"team_name"`
	Position    Position `json:"position"`
	Cost        Money    `json:"cost"`
	Form        float64  `json:"form"`
	TotalPoints int      `json:"total_points"`
}

type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	StrengthHome int    `json:"strength_home"`
	StrengthAway int    `json:"strength_away"`
}

// Fixture is one scheduled match. Scores are nil until the match has been
// played. Difficulty ratings are the provider's 1-5 scale, one per side.
type Fixture struct {
	Gameweek       int    `json:"gameweek"`
	HomeTeamID     int    `json:"home_team_id"`
	AwayTeamID     int    `json:"away_team_id"`
	HomeScore      *int   `json:"home_score,omitempty"`
	AwayScore      *int   `json:"away_score,omitempty"`
	HomeDifficulty int    `json:"home_difficulty"`
	AwayDifficulty int    `json:"away_difficulty"`
	IsCurrent      bool   `json:"is_current"`
	IsNext         bool   `json:"is_next"`
	Finished       bool   `json:"finished"`
}
