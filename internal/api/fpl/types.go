package fpl

// Wire shapes for the bootstrap-static and fixtures endpoints. Only the
// fields the ingestion mapping reads are declared.

type bootstrapResponse struct {
	Events   []event   `json:"events"`
	Teams    []apiTeam `json:"teams"`
	Elements []element `json:"elements"`
}

type event struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
	IsNext    bool `json:"is_next"`
}

type apiTeam struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	StrengthAttackHome int    `json:"strength_attack_home"`
	StrengthAttackAway int    `json:"strength_attack_away"`
}

type element struct {
	ID          int    `json:"id"`
	WebName     string `json:"web_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`
	NowCost     int    `json:"now_cost"`
	Form        string `json:"form"`
	TotalPoints int    `json:"total_points"`
}

type apiFixture struct {
	Event           *int `json:"event"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHScore      *int `json:"team_h_score"`
	TeamAScore      *int `json:"team_a_score"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
	Finished        bool `json:"finished"`
}
