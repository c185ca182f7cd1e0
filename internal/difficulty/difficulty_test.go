package difficulty_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ansinha/fplbot/internal/difficulty"
	"github.com/ansinha/fplbot/internal/models"
)

func TestScore(t *testing.T) {
	Convey("Given a team and its fixture list", t, func() {
		team := models.Team{ID: 2, Name: "Liverpool"}
		names := map[int]string{1: "Arsenal", 2: "Liverpool", 3: "Manchester City", 4: "Aston Villa"}
		fixtures := []models.Fixture{
			{Gameweek: 22, HomeTeamID: 2, AwayTeamID: 1, HomeDifficulty: 2, AwayDifficulty: 4},
			{Gameweek: 19, HomeTeamID: 2, AwayTeamID: 3, HomeDifficulty: 5, AwayDifficulty: 5},
			{Gameweek: 20, HomeTeamID: 2, AwayTeamID: 4, HomeDifficulty: 3, AwayDifficulty: 5},
			{Gameweek: 21, HomeTeamID: 3, AwayTeamID: 2, HomeDifficulty: 3, AwayDifficulty: 4},
			{Gameweek: 21, HomeTeamID: 1, AwayTeamID: 4, HomeDifficulty: 2, AwayDifficulty: 3},
		}

		Convey("When scoring from gameweek 20 with the default lookahead", func() {
			report := difficulty.Score(team, difficulty.DefaultLookahead, 20, fixtures, names)

			Convey("Then past and other-team fixtures are excluded", func() {
				So(len(report.UpcomingFixtures), ShouldEqual, 3)
			})

			Convey("Then fixtures come back sorted by gameweek", func() {
				So(report.UpcomingFixtures[0].Gameweek, ShouldEqual, 20)
				So(report.UpcomingFixtures[1].Gameweek, ShouldEqual, 21)
				So(report.UpcomingFixtures[2].Gameweek, ShouldEqual, 22)
			})

			Convey("Then each fixture uses the team's own side rating", func() {
				So(report.UpcomingFixtures[0].Difficulty, ShouldEqual, 3) // home vs Villa
				So(report.UpcomingFixtures[1].Difficulty, ShouldEqual, 4) // away at City
				So(report.UpcomingFixtures[1].Venue, ShouldEqual, "Away")
				So(report.UpcomingFixtures[1].Opponent, ShouldEqual, "Manchester City")
			})

			Convey("Then the average is the rounded mean", func() {
				So(report.AverageDifficulty, ShouldEqual, 3.0)
			})
		})

		Convey("When the lookahead is smaller than the candidate set", func() {
			report := difficulty.Score(team, 2, 20, fixtures, names)

			So(len(report.UpcomingFixtures), ShouldEqual, 2)
			So(report.AverageDifficulty, ShouldEqual, 3.5)
		})

		Convey("When no fixtures remain, the average is zero, not an error", func() {
			report := difficulty.Score(team, 5, 30, fixtures, names)

			So(report.UpcomingFixtures, ShouldBeEmpty)
			So(report.AverageDifficulty, ShouldEqual, 0.0)
		})

		Convey("When one difficulty rating increases, the average never decreases", func() {
			before := difficulty.Score(team, 5, 20, fixtures, names)

			raised := make([]models.Fixture, len(fixtures))
			copy(raised, fixtures)
			raised[0].HomeDifficulty++

			after := difficulty.Score(team, 5, 20, raised, names)
			So(after.AverageDifficulty, ShouldBeGreaterThanOrEqualTo, before.AverageDifficulty)
		})

		Convey("When the mean is not exact, it is rounded to two decimals", func() {
			three := []models.Fixture{
				{Gameweek: 20, HomeTeamID: 2, AwayTeamID: 1, HomeDifficulty: 2},
				{Gameweek: 21, HomeTeamID: 2, AwayTeamID: 3, HomeDifficulty: 2},
				{Gameweek: 22, HomeTeamID: 2, AwayTeamID: 4, HomeDifficulty: 3},
			}
			report := difficulty.Score(team, 5, 20, three, names)

			So(report.AverageDifficulty, ShouldEqual, 2.33)
		})
	})
}
