// Package recommend classifies players into buy/sell/hold buckets from
// their current form and cost.
package recommend

import (
	"strings"

	"github.com/ansinha/fplbot/internal/models"
)

// Advice is one of the three recommendation buckets.
type Advice string

const (
	Buy  Advice = "buy"
	Sell Advice = "sell"
	Hold Advice = "hold"
)

// Classification thresholds. In-form players below the cost ceiling are
// buys; out-of-form players at or above the cost floor are sells.
const (
	buyForm        = 4.0
	buyCostCeiling = models.Money(80)
	sellForm       = 2.9
	sellCostFloor  = models.Money(80)
)

// Buckets is a total partition of a player set: every player lands in
// exactly one bucket.
type Buckets struct {
	Buy  []models.Player `json:"buy"`
	Sell []models.Player `json:"sell"`
	Hold []models.Player `json:"hold"`
}

// Classify buckets a single player. The buy branch is checked first, then
// sell; everything else holds.
func Classify(p models.Player) Advice {
	switch {
	case p.Form >= buyForm && p.Cost <= buyCostCeiling:
		return Buy
	case p.Form <= sellForm && p.Cost >= sellCostFloor:
		return Sell
	default:
		return Hold
	}
}

// ClassifyAll buckets every player, preserving input order within each
// bucket.
func ClassifyAll(players []models.Player) Buckets {
	var b Buckets
	for _, p := range players {
		switch Classify(p) {
		case Buy:
			b.Buy = append(b.Buy, p)
		case Sell:
			b.Sell = append(b.Sell, p)
		default:
			b.Hold = append(b.Hold, p)
		}
	}
	return b
}

// ClassifyOne looks up a named player across the buckets and returns that
// player with their advice. Names are compared after lowercasing and
// stripping periods and whitespace, accepting the query as a substring of
// the stored name. Buckets are searched in buy, sell, hold order; the first
// match wins. The bool is false when no stored name matches.
func ClassifyOne(name string, players []models.Player) (models.Player, Advice, bool) {
	b := ClassifyAll(players)
	query := normalizeName(name)
	if query == "" {
		return models.Player{}, "", false
	}

	for _, bucket := range []struct {
		advice  Advice
		players []models.Player
	}{
		{Buy, b.Buy},
		{Sell, b.Sell},
		{Hold, b.Hold},
	} {
		for _, p := range bucket.players {
			if strings.Contains(normalizeName(p.Name), query) {
				return p, bucket.advice, true
			}
		}
	}

	return models.Player{}, "", false
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), "")
}
