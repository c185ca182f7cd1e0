package models

// Slots are the typed parameters pulled out of one free-text message. They
// live for a single request only.
type Slots struct {
	Position  Position // "" when no position keyword matched
	MinBudget *Money
	MaxBudget *Money
	Gameweek  int    // 0 when absent
	Action    string // buy/sell/hold/recommend, "" when absent
	Target    string // player named after a transfer action keyword
	Subject   string // player named after "for" in a prediction request
}

// ResponseKind discriminates the payload carried by a Response.
type ResponseKind string

const (
	KindPlayers        ResponseKind = "players"
	KindTeams          ResponseKind = "teams"
	KindFixtures       ResponseKind = "fixtures"
	KindRecommendation ResponseKind = "recommendation"
	KindPrediction     ResponseKind = "prediction"
	KindMessage        ResponseKind = "message"
)

// Response is the structured result of routing one message. Exactly one of
// the payload fields is populated, per Kind; Message is always set for the
// text-only kinds and doubles as a caption for list kinds.
type Response struct {
	Intent   string         `json:"intent"`
	Kind     ResponseKind   `json:"kind"`
	Message  string         `json:"message,omitempty"`
	Players  []Player       `json:"players,omitempty"`
	Teams    []Team         `json:"teams,omitempty"`
	Fixtures *FixtureReport `json:"fixture_report,omitempty"`
}

// FixtureReport is the fixture-difficulty summary for one team over a
// lookahead window.
type FixtureReport struct {
	Team              string           `json:"team"`
	UpcomingFixtures  []FixtureOutlook `json:"upcoming_fixtures"`
	AverageDifficulty float64          `json:"average_difficulty"`
}

type FixtureOutlook struct {
	Gameweek   int    `json:"gameweek"`
	Opponent   string `json:"opponent"`
	Venue      string `json:"venue"`
	Difficulty int    `json:"difficulty"`
}
