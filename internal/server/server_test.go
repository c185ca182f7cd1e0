package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ansinha/fplbot/internal/chat"
	"github.com/ansinha/fplbot/internal/models"
	"github.com/ansinha/fplbot/internal/predict"
	"github.com/ansinha/fplbot/internal/server"
	"github.com/ansinha/fplbot/internal/store"
	"github.com/ansinha/fplbot/internal/store/memory"
)

func testRouter() *chat.Router {
	st := memory.NewStore()
	st.ReplaceAll(store.Snapshot{
		Players: []models.Player{
			{ID: 1, Name: "Salah", TeamName: "Liverpool", Position: models.Midfielder, Cost: 70, Form: 5.2, TotalPoints: 120},
		},
		Teams: []models.Team{{ID: 2, Name: "Liverpool"}},
		Fixtures: []models.Fixture{
			{Gameweek: 20, HomeTeamID: 2, AwayTeamID: 1, HomeDifficulty: 3, IsCurrent: true},
		},
	})
	return chat.NewRouter(st, predict.NewTable(nil))
}

func TestHandleChat(t *testing.T) {
	Convey("Given the chat endpoint", t, func() {
		srv := httptest.NewServer(server.New(testRouter()))
		defer srv.Close()

		Convey("A routed message returns the structured response", func() {
			resp, err := http.Post(srv.URL+"/chat", "application/json",
				strings.NewReader(`{"message": "Should I buy Salah?"}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var body models.Response
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body.Intent, ShouldEqual, chat.IntentTransfer)
			So(body.Message, ShouldEqual, "Salah is recommended to buy based on current form and points.")
		})

		Convey("A malformed body is a 400", func() {
			resp, err := http.Post(srv.URL+"/chat", "application/json", strings.NewReader("{"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("GET is not allowed on /chat", func() {
			resp, err := http.Get(srv.URL + "/chat")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusMethodNotAllowed)
		})

		Convey("The health endpoint responds", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
