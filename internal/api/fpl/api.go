// Package fpl fetches players, teams, and fixtures from the public league
// API and maps them onto the domain models.
package fpl

import (
	"fmt"
	"strconv"

	"github.com/ansinha/fplbot/internal/models"
)

var positionByType = map[int]models.Position{
	1: models.Goalkeeper,
	2: models.Defender,
	3: models.Midfielder,
	4: models.Forward,
}

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// Bootstrap fetches the master data set: every player and team, plus the
// current and next gameweek numbers from the events calendar.
func (a *API) Bootstrap() ([]models.Player, []models.Team, int, int, error) {
	var resp bootstrapResponse
	if err := a.client.Get("/bootstrap-static/", &resp); err != nil {
		return nil, nil, 0, 0, fmt.Errorf("fetching bootstrap data: %w", err)
	}

	teams := make([]models.Team, 0, len(resp.Teams))
	teamNames := make(map[int]string, len(resp.Teams))
	for _, t := range resp.Teams {
		teams = append(teams, models.Team{
			ID:           t.ID,
			Name:         t.Name,
			StrengthHome: t.StrengthAttackHome,
			StrengthAway: t.StrengthAttackAway,
		})
		teamNames[t.ID] = t.Name
	}

	players := make([]models.Player, 0, len(resp.Elements))
	for _, e := range resp.Elements {
		form, err := strconv.ParseFloat(e.Form, 64)
		if err != nil {
			form = 0
		}
		players = append(players, models.Player{
			ID:          e.ID,
			Name:        e.WebName,
			TeamID:      e.Team,
			TeamName:    teamNames[e.Team],
			Position:    positionByType[e.ElementType],
			Cost:        models.Money(e.NowCost),
			Form:        form,
			TotalPoints: e.TotalPoints,
		})
	}

	currentGW, nextGW := 0, 0
	for _, ev := range resp.Events {
		if ev.IsCurrent {
			currentGW = ev.ID
		}
		if ev.IsNext {
			nextGW = ev.ID
		}
	}

	return players, teams, currentGW, nextGW, nil
}

// Fixtures fetches the full fixture list, dropping entries not yet assigned
// to a gameweek, and flags the current and next rounds.
func (a *API) Fixtures(currentGW, nextGW int) ([]models.Fixture, error) {
	var resp []apiFixture
	if err := a.client.Get("/fixtures/", &resp); err != nil {
		return nil, fmt.Errorf("fetching fixtures: %w", err)
	}

	fixtures := make([]models.Fixture, 0, len(resp))
	for _, f := range resp {
		if f.Event == nil {
			continue
		}
		fixtures = append(fixtures, models.Fixture{
			Gameweek:       *f.Event,
			HomeTeamID:     f.TeamH,
			AwayTeamID:     f.TeamA,
			HomeScore:      f.TeamHScore,
			AwayScore:      f.TeamAScore,
			HomeDifficulty: f.TeamHDifficulty,
			AwayDifficulty: f.TeamADifficulty,
			IsCurrent:      *f.Event == currentGW,
			IsNext:         *f.Event == nextGW,
			Finished:       f.Finished,
		})
	}

	return fixtures, nil
}
