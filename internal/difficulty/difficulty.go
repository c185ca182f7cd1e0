// Package difficulty computes fixture-difficulty outlooks for a team over a
// lookahead window of gameweeks.
package difficulty

import (
	"math"
	"sort"

	"github.com/ansinha/fplbot/internal/models"
)

// DefaultLookahead is how many upcoming fixtures are scored when the
// message didn't ask for a specific count.
const DefaultLookahead = 5

// Score builds the difficulty report for one team: fixtures from the
// current gameweek onward where the team plays on either side, ordered by
// gameweek, capped at lookahead. The difficulty of each fixture is the
// rating for the team's own side; the average is rounded to two decimals
// and is 0 when nothing is upcoming.
func Score(team models.Team, lookahead, currentGameweek int, fixtures []models.Fixture, teamNames map[int]string) models.FixtureReport {
	var upcoming []models.Fixture
	for _, f := range fixtures {
		if f.Gameweek < currentGameweek {
			continue
		}
		if f.HomeTeamID == team.ID || f.AwayTeamID == team.ID {
			upcoming = append(upcoming, f)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Gameweek < upcoming[j].Gameweek
	})
	if len(upcoming) > lookahead {
		upcoming = upcoming[:lookahead]
	}

	report := models.FixtureReport{
		Team:             team.Name,
		UpcomingFixtures: make([]models.FixtureOutlook, 0, len(upcoming)),
	}

	total := 0
	for _, f := range upcoming {
		outlook := models.FixtureOutlook{Gameweek: f.Gameweek}
		if f.HomeTeamID == team.ID {
			outlook.Venue = "Home"
			outlook.Opponent = teamNames[f.AwayTeamID]
			outlook.Difficulty = f.HomeDifficulty
		} else {
			outlook.Venue = "Away"
			outlook.Opponent = teamNames[f.HomeTeamID]
			outlook.Difficulty = f.AwayDifficulty
		}
		total += outlook.Difficulty
		report.UpcomingFixtures = append(report.UpcomingFixtures, outlook)
	}

	if len(report.UpcomingFixtures) > 0 {
		avg := float64(total) / float64(len(report.UpcomingFixtures))
		report.AverageDifficulty = math.Round(avg*100) / 100
	}

	return report
}
