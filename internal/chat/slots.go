package chat

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ansinha/fplbot/internal/models"
)

// Slot trigger vocabularies. Each scanner walks the token stream once and
// keyword families don't interact, so a message can carry several slots.
var (
	maxBudgetTriggers = map[string]bool{"under": true, "below": true, "less": true}
	minBudgetTriggers = map[string]bool{"over": true, "above": true, "more": true}
	gameweekTriggers  = map[string]bool{"gameweek": true, "gw": true}
	actionTriggers    = map[string]bool{"buy": true, "sell": true, "hold": true, "recommend": true}
	subjectBoundaries = map[string]bool{"in": true, "gameweek": true, "gw": true}
)

var positionKeywords = []struct {
	prefix   string
	position models.Position
}{
	{"forward", models.Forward},
	{"striker", models.Forward},
	{"midfielder", models.Midfielder},
	{"defender", models.Defender},
	{"goalkeeper", models.Goalkeeper},
	{"keeper", models.Goalkeeper},
}

// ExtractSlots tokenizes a message on whitespace and runs the independent
// slot scanners over the token stream. Tokens that fail to parse are
// skipped, never fatal: free text is expected to be messy.
func ExtractSlots(message string) models.Slots {
	tokens := strings.Fields(strings.ToLower(message))

	var s models.Slots
	scanBudget(tokens, &s)
	scanGameweek(tokens, &s)
	scanPosition(tokens, &s)
	scanAction(tokens, &s)
	scanSubject(tokens, &s)
	return s
}

// scanBudget fills the min/max budget from trigger words followed by a
// numeric token. A later trigger of the same kind overwrites an earlier
// one.
func scanBudget(tokens []string, s *models.Slots) {
	for i, tok := range tokens {
		if i+1 >= len(tokens) {
			break
		}
		if !maxBudgetTriggers[tok] && !minBudgetTriggers[tok] {
			continue
		}
		value, err := strconv.ParseFloat(trimPunct(tokens[i+1]), 64)
		if err != nil {
			continue
		}
		budget := models.MoneyFromFloat(value)
		if maxBudgetTriggers[tok] {
			s.MaxBudget = &budget
		} else {
			s.MinBudget = &budget
		}
	}
}

func scanGameweek(tokens []string, s *models.Slots) {
	for i, tok := range tokens {
		if !gameweekTriggers[tok] || i+1 >= len(tokens) {
			continue
		}
		gw, err := strconv.Atoi(trimPunct(tokens[i+1]))
		if err != nil {
			continue
		}
		s.Gameweek = gw
		return
	}
}

func scanPosition(tokens []string, s *models.Slots) {
	for _, tok := range tokens {
		tok = trimPunct(tok)
		for _, kw := range positionKeywords {
			if strings.HasPrefix(tok, kw.prefix) {
				s.Position = kw.position
				return
			}
		}
	}
}

// scanAction captures a transfer action keyword and everything after it as
// the target player name.
func scanAction(tokens []string, s *models.Slots) {
	for i, tok := range tokens {
		if !actionTriggers[tok] {
			continue
		}
		s.Action = tok
		s.Target = joinName(tokens[i+1:], nil)
		return
	}
}

// scanSubject captures the player named after "for", up to (but excluding)
// a gameweek boundary word, for prediction requests.
func scanSubject(tokens []string, s *models.Slots) {
	for i, tok := range tokens {
		if tok != "for" {
			continue
		}
		s.Subject = joinName(tokens[i+1:], subjectBoundaries)
		return
	}
}

// joinName title-cases and re-joins name tokens, stopping at the first
// boundary token when a boundary set is given.
func joinName(tokens []string, boundaries map[string]bool) string {
	var parts []string
	for _, tok := range tokens {
		if boundaries != nil && boundaries[tok] {
			break
		}
		tok = trimPunct(tok)
		if tok == "" {
			continue
		}
		parts = append(parts, titleWord(tok))
	}
	return strings.Join(parts, " ")
}

// trimPunct strips trailing punctuation, so "7.5," parses and "salah?"
// matches.
func trimPunct(tok string) string {
	return strings.TrimRightFunc(tok, unicode.IsPunct)
}

func titleWord(tok string) string {
	r := []rune(tok)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
