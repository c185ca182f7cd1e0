// Package resolve matches free-text entity mentions against the known
// reference sets of teams and players.
package resolve

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ansinha/fplbot/internal/models"
)

// MatchThreshold is the minimum similarity score (out of 100) at which a
// fuzzy player match is accepted.
const MatchThreshold = 70

// NotFoundError reports an entity mention that resolved to nothing.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// ResolveTeam finds the first known team whose name appears, case
// insensitively, anywhere in the message. First match in list order wins;
// overlapping or composite names are not disambiguated.
func ResolveTeam(message string, teams []models.Team) (models.Team, error) {
	lower := strings.ToLower(message)
	for _, team := range teams {
		if strings.Contains(lower, strings.ToLower(team.Name)) {
			return team, nil
		}
	}
	return models.Team{}, &NotFoundError{Kind: "team", Name: message}
}

// ResolvePlayer fuzzily matches text against candidate canonical names and
// returns the best candidate with its similarity score. Candidates scoring
// at or below MatchThreshold are rejected; ties keep the earlier candidate.
func ResolvePlayer(text string, candidates []string) (string, int, error) {
	bestScore := -1
	bestName := ""

	for _, candidate := range candidates {
		score := Similarity(text, candidate)
		if score > MatchThreshold && score > bestScore {
			bestScore = score
			bestName = candidate
		}
	}

	if bestScore == -1 {
		return "", 0, &NotFoundError{Kind: "player", Name: text}
	}
	return bestName, bestScore, nil
}

// Similarity scores two names in [0,100] using Levenshtein distance over
// normalized forms. Identical names score 100.
func Similarity(a, b string) int {
	na, nb := Normalize(a), Normalize(b)
	maxLen := max(len(na), len(nb))
	if maxLen == 0 {
		return 0
	}
	if na == nb {
		return 100
	}
	distance := fuzzy.LevenshteinDistance(na, nb)
	return int((1 - float64(distance)/float64(maxLen)) * 100)
}

// Normalize lowercases a name and strips punctuation, so "M.Salah" and
// "m salah" compare equal.
func Normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsPunct(r) || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
