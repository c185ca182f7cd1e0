// Package chat turns free-text messages into typed slots, routes them to an
// intent, and renders the result as a structured response.
package chat

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ansinha/fplbot/internal/difficulty"
	"github.com/ansinha/fplbot/internal/models"
	"github.com/ansinha/fplbot/internal/predict"
	"github.com/ansinha/fplbot/internal/recommend"
	"github.com/ansinha/fplbot/internal/resolve"
	"github.com/ansinha/fplbot/internal/store"
)

// Intent names, used as response labels and metric values.
const (
	IntentPrediction   = "prediction"
	IntentPosition     = "position_filter"
	IntentFixtures     = "fixture_lookup"
	IntentTransfer     = "transfer_advice"
	IntentTeams        = "team_list"
	IntentUnrecognized = "unrecognized"
)

const helpText = `I'm sorry, I don't understand that. Try one of:
- "Show me forwards under 7.5"
- "What are Arsenal's next fixtures?"
- "Should I buy Salah?"
- "Predict points for Salah in gameweek 21"
- "List the teams"`

// rule pairs an intent predicate with its handler. Rules are evaluated in
// declaration order and the first match wins, so a message like "buy a
// forward" always routes to the position filter, never to transfer advice.
type rule struct {
	intent string
	match  func(lower string, s models.Slots) bool
	handle func(lower string, s models.Slots) models.Response
}

// Router routes one message at a time against an immutable snapshot of the
// reference data. It holds no per-request state.
type Router struct {
	store     store.Store
	predictor predict.Predictor
	rules     []rule
}

// NewRouter builds a router over the given collaborators. The rule order
// here is the intent precedence and must not be reordered.
func NewRouter(st store.Store, predictor predict.Predictor) *Router {
	r := &Router{store: st, predictor: predictor}
	r.rules = []rule{
		{IntentPrediction, matchPrediction, r.handlePrediction},
		{IntentPosition, matchPosition, r.handlePosition},
		{IntentFixtures, matchFixtures, r.handleFixtures},
		{IntentTransfer, matchTransfer, r.handleTransfer},
		{IntentTeams, matchTeams, r.handleTeams},
	}
	return r
}

// Handle routes a message to the first matching intent rule and returns the
// rendered response. Every failure kind is rendered as user-facing text;
// Handle never fails.
func (r *Router) Handle(message string) models.Response {
	lower := strings.ToLower(message)
	slots := ExtractSlots(message)

	for _, rule := range r.rules {
		if rule.match(lower, slots) {
			resp := rule.handle(lower, slots)
			resp.Intent = rule.intent
			return resp
		}
	}

	return models.Response{
		Intent:  IntentUnrecognized,
		Kind:    models.KindMessage,
		Message: helpText,
	}
}

func matchPrediction(lower string, _ models.Slots) bool {
	return strings.Contains(lower, "predict")
}

func matchPosition(_ string, s models.Slots) bool {
	return s.Position != ""
}

func matchFixtures(lower string, _ models.Slots) bool {
	return strings.Contains(lower, "fixture")
}

func matchTransfer(_ string, s models.Slots) bool {
	return s.Action != ""
}

func matchTeams(lower string, _ models.Slots) bool {
	return strings.Contains(lower, "teams")
}

func (r *Router) handlePrediction(_ string, s models.Slots) models.Response {
	if s.Subject == "" {
		return clarify(`Which player should I predict for? Try "predict points for Salah in gameweek 21".`)
	}
	if s.Gameweek == 0 {
		return clarify(fmt.Sprintf(`Which gameweek should I predict %s's points for? Add "in gameweek <number>".`, s.Subject))
	}

	points, err := r.predictor.Predict(s.Subject, s.Gameweek)
	if err != nil {
		if err == predict.ErrNoPrediction {
			return message(models.KindPrediction, fmt.Sprintf("No predicted points data found for %q.", s.Subject))
		}
		slog.Error("Prediction lookup failed", "player", s.Subject, "gameweek", s.Gameweek, "error", err)
		return message(models.KindMessage, "Error fetching prediction data.")
	}

	return message(models.KindPrediction,
		fmt.Sprintf("%s is predicted to score %.2f points in gameweek %d.", s.Subject, points, s.Gameweek))
}

func (r *Router) handlePosition(_ string, s models.Slots) models.Response {
	filter := store.PlayerFilter{Position: s.Position}
	if s.MinBudget != nil {
		filter.MinCost = *s.MinBudget
	}
	if s.MaxBudget != nil {
		filter.MaxCost = *s.MaxBudget
	}

	players, err := r.store.ListPlayers(filter)
	if err != nil {
		slog.Error("Player query failed", "position", s.Position, "error", err)
		return message(models.KindMessage, "Error fetching player data.")
	}

	if len(players) == 0 {
		if s.MaxBudget != nil {
			return message(models.KindMessage,
				fmt.Sprintf("No %s players found under %s.", s.Position, *s.MaxBudget))
		}
		return message(models.KindMessage, fmt.Sprintf("No %s players found.", s.Position))
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].TotalPoints > players[j].TotalPoints
	})

	return models.Response{
		Kind:    models.KindPlayers,
		Message: fmt.Sprintf("Found %d %s players.", len(players), s.Position),
		Players: players,
	}
}

func (r *Router) handleFixtures(lower string, s models.Slots) models.Response {
	teams, err := r.store.ListTeams()
	if err != nil {
		slog.Error("Team query failed", "error", err)
		return message(models.KindMessage, "Error fetching fixture data.")
	}

	team, err := resolve.ResolveTeam(lower, teams)
	if err != nil {
		return message(models.KindMessage,
			"I couldn't work out which team you meant. Try including the full team name.")
	}

	currentGW, err := r.store.CurrentGameweek()
	if err != nil {
		slog.Error("Current gameweek lookup failed", "error", err)
		return message(models.KindMessage, "Error fetching fixture data.")
	}

	fixtures, err := r.store.ListFixtures(store.FixtureFilter{})
	if err != nil {
		slog.Error("Fixture query failed", "team", team.Name, "error", err)
		return message(models.KindMessage, "Error fetching fixture data.")
	}

	lookahead := difficulty.DefaultLookahead
	if s.Gameweek > 0 {
		lookahead = s.Gameweek
	}

	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	report := difficulty.Score(team, lookahead, currentGW, fixtures, names)
	return models.Response{
		Kind: models.KindFixtures,
		Message: fmt.Sprintf("%s's next %d fixtures have an average difficulty of %.2f.",
			report.Team, len(report.UpcomingFixtures), report.AverageDifficulty),
		Fixtures: &report,
	}
}

func (r *Router) handleTransfer(_ string, s models.Slots) models.Response {
	if s.Target == "" {
		return clarify(`Which player would you like advice on? Try "Should I buy Salah?".`)
	}

	players, err := r.store.ListPlayers(store.PlayerFilter{})
	if err != nil {
		slog.Error("Player query failed", "error", err)
		return message(models.KindMessage, "Error fetching player data.")
	}

	player, advice, ok := recommend.ClassifyOne(s.Target, players)
	if !ok {
		return message(models.KindRecommendation,
			fmt.Sprintf("I don't have a recommendation for %q.", s.Target))
	}

	return message(models.KindRecommendation,
		fmt.Sprintf("%s is recommended to %s based on current form and points.", player.Name, advice))
}

func (r *Router) handleTeams(_ string, _ models.Slots) models.Response {
	teams, err := r.store.ListTeams()
	if err != nil {
		slog.Error("Team query failed", "error", err)
		return message(models.KindMessage, "Error fetching team data.")
	}

	return models.Response{
		Kind:    models.KindTeams,
		Message: fmt.Sprintf("There are %d teams in the league.", len(teams)),
		Teams:   teams,
	}
}

func message(kind models.ResponseKind, text string) models.Response {
	return models.Response{Kind: kind, Message: text}
}

func clarify(text string) models.Response {
	return models.Response{Kind: models.KindMessage, Message: text}
}
