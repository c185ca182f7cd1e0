package chat_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ansinha/fplbot/internal/chat"
	"github.com/ansinha/fplbot/internal/models"
	"github.com/ansinha/fplbot/internal/predict"
	"github.com/ansinha/fplbot/internal/store"
	"github.com/ansinha/fplbot/internal/store/memory"
)

func intp(v int) *int { return &v }

func seededStore() *memory.Store {
	st := memory.NewStore()
	st.ReplaceAll(store.Snapshot{
		Players: []models.Player{
			{ID: 1, Name: "Salah", TeamID: 2, TeamName: "Liverpool", Position: models.Midfielder, Cost: models.MoneyFromFloat(7.0), Form: 5.2, TotalPoints: 120},
			{ID: 2, Name: "Haaland", TeamID: 3, TeamName: "Manchester City", Position: models.Forward, Cost: models.MoneyFromFloat(14.0), Form: 6.1, TotalPoints: 140},
			{ID: 3, Name: "Watkins", TeamID: 4, TeamName: "Aston Villa", Position: models.Forward, Cost: models.MoneyFromFloat(7.2), Form: 3.5, TotalPoints: 80},
			{ID: 4, Name: "Archer", TeamID: 4, TeamName: "Aston Villa", Position: models.Forward, Cost: models.MoneyFromFloat(4.5), Form: 1.0, TotalPoints: 12},
		},
		Teams: []models.Team{
			{ID: 1, Name: "Arsenal", StrengthHome: 1350, StrengthAway: 1300},
			{ID: 2, Name: "Liverpool", StrengthHome: 1340, StrengthAway: 1330},
			{ID: 3, Name: "Manchester City", StrengthHome: 1380, StrengthAway: 1360},
			{ID: 4, Name: "Aston Villa", StrengthHome: 1200, StrengthAway: 1150},
		},
		Fixtures: []models.Fixture{
			{Gameweek: 19, HomeTeamID: 2, AwayTeamID: 1, HomeScore: intp(2), AwayScore: intp(0), HomeDifficulty: 4, AwayDifficulty: 4, Finished: true},
			{Gameweek: 20, HomeTeamID: 2, AwayTeamID: 4, HomeDifficulty: 3, AwayDifficulty: 5, IsCurrent: true},
			{Gameweek: 21, HomeTeamID: 3, AwayTeamID: 2, HomeDifficulty: 3, AwayDifficulty: 4, IsNext: true},
			{Gameweek: 22, HomeTeamID: 2, AwayTeamID: 1, HomeDifficulty: 2, AwayDifficulty: 4},
		},
	})
	return st
}

func testPredictor() predict.Predictor {
	return predict.NewTable([]predict.Row{
		{Player: "Salah", Team: "Liverpool", Position: "MID", Gameweek: 21, Points: 8.4},
	})
}

func TestRouterScenarios(t *testing.T) {
	Convey("Given a router over the seeded league snapshot", t, func() {
		router := chat.NewRouter(seededStore(), testPredictor())

		Convey(`"Show me forwards under 7.5" filters forwards by max budget`, func() {
			resp := router.Handle("Show me forwards under 7.5")

			So(resp.Intent, ShouldEqual, chat.IntentPosition)
			So(resp.Kind, ShouldEqual, models.KindPlayers)
			So(len(resp.Players), ShouldEqual, 2)

			Convey("And results are sorted by total points descending", func() {
				So(resp.Players[0].Name, ShouldEqual, "Watkins")
				So(resp.Players[1].Name, ShouldEqual, "Archer")
			})
		})

		Convey(`"Should I buy Salah?" recommends a buy`, func() {
			resp := router.Handle("Should I buy Salah?")

			So(resp.Intent, ShouldEqual, chat.IntentTransfer)
			So(resp.Message, ShouldEqual, "Salah is recommended to buy based on current form and points.")
		})

		Convey(`"What are Liverpool's next fixtures?" averages the upcoming difficulties`, func() {
			resp := router.Handle("What are Liverpool's next fixtures?")

			So(resp.Intent, ShouldEqual, chat.IntentFixtures)
			So(resp.Fixtures, ShouldNotBeNil)
			So(len(resp.Fixtures.UpcomingFixtures), ShouldEqual, 3)
			So(resp.Fixtures.AverageDifficulty, ShouldEqual, 3.0)

			Convey("And the finished gameweek 19 fixture is excluded", func() {
				So(resp.Fixtures.UpcomingFixtures[0].Gameweek, ShouldEqual, 20)
			})

			Convey("And venue and opponent come from the matched side", func() {
				So(resp.Fixtures.UpcomingFixtures[1].Venue, ShouldEqual, "Away")
				So(resp.Fixtures.UpcomingFixtures[1].Opponent, ShouldEqual, "Manchester City")
			})
		})

		Convey("A prediction with table data reports the predicted points", func() {
			resp := router.Handle("predict points for Salah in gameweek 21")

			So(resp.Intent, ShouldEqual, chat.IntentPrediction)
			So(resp.Message, ShouldEqual, "Salah is predicted to score 8.40 points in gameweek 21.")
		})

		Convey("A prediction with no table row reports missing data", func() {
			resp := router.Handle("predict points for Saka in gameweek 21")

			So(resp.Message, ShouldEqual, `No predicted points data found for "Saka".`)
		})

		Convey("An unrecognized message gets the help text", func() {
			resp := router.Handle("hello there")

			So(resp.Intent, ShouldEqual, chat.IntentUnrecognized)
			So(resp.Message, ShouldContainSubstring, "I'm sorry, I don't understand that")
		})

		Convey(`"List the teams" returns the team list`, func() {
			resp := router.Handle("List the teams")

			So(resp.Intent, ShouldEqual, chat.IntentTeams)
			So(len(resp.Teams), ShouldEqual, 4)
		})
	})
}

func TestRouterPrecedence(t *testing.T) {
	Convey("Given a message matching several keyword classes", t, func() {
		router := chat.NewRouter(seededStore(), testPredictor())

		Convey(`"buy a forward" routes to the position filter, not transfer advice`, func() {
			resp := router.Handle("should I buy a forward under 5.0")

			So(resp.Intent, ShouldEqual, chat.IntentPosition)
		})

		Convey("A prediction keyword outranks position keywords", func() {
			resp := router.Handle("predict points for a forward")

			So(resp.Intent, ShouldEqual, chat.IntentPrediction)
		})

		Convey("A fixture keyword outranks transfer keywords", func() {
			resp := router.Handle("check fixtures before I sell salah")

			So(resp.Intent, ShouldEqual, chat.IntentFixtures)
		})
	})
}

func TestRouterClarifications(t *testing.T) {
	Convey("Given messages with a matched intent but missing slots", t, func() {
		router := chat.NewRouter(seededStore(), testPredictor())

		Convey("A transfer question with no player asks for one", func() {
			resp := router.Handle("should I buy")

			So(resp.Intent, ShouldEqual, chat.IntentTransfer)
			So(resp.Message, ShouldContainSubstring, "Which player")
		})

		Convey("A prediction with no gameweek asks for one", func() {
			resp := router.Handle("predict points for Salah")

			So(resp.Message, ShouldContainSubstring, "Which gameweek")
		})

		Convey("A fixture question naming no known team says so", func() {
			resp := router.Handle("what are the fixtures for real madrid")

			So(resp.Message, ShouldContainSubstring, "which team")
		})

		Convey("A transfer question about an unknown player has no recommendation", func() {
			resp := router.Handle("should I sell ronaldo")

			So(resp.Message, ShouldEqual, `I don't have a recommendation for "Ronaldo".`)
		})
	})
}

type failingStore struct {
	store.Store
}

var errDown = errors.New("connection refused")

func (f failingStore) ListPlayers(store.PlayerFilter) ([]models.Player, error) {
	return nil, errDown
}

func (f failingStore) ListTeams() ([]models.Team, error) {
	return nil, errDown
}

func TestRouterUpstreamFailure(t *testing.T) {
	Convey("Given a store whose queries fail", t, func() {
		router := chat.NewRouter(failingStore{Store: seededStore()}, testPredictor())

		Convey("A player query reports a fetch error, not a crash", func() {
			resp := router.Handle("show me forwards under 7.5")

			So(resp.Kind, ShouldEqual, models.KindMessage)
			So(resp.Message, ShouldEqual, "Error fetching player data.")
		})

		Convey("A fixture query reports a fetch error", func() {
			resp := router.Handle("what are liverpool's fixtures")

			So(resp.Message, ShouldEqual, "Error fetching fixture data.")
		})
	})
}
