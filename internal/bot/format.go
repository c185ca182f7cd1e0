package bot

import (
	"fmt"
	"strings"

	"github.com/ansinha/fplbot/internal/models"
)

// maxListedPlayers caps how many rows a player list renders in chat.
const maxListedPlayers = 10

// FormatResponse renders a structured response as Telegram Markdown.
func FormatResponse(resp models.Response) string {
	switch resp.Kind {
	case models.KindPlayers:
		return formatPlayers(resp)
	case models.KindTeams:
		return formatTeams(resp)
	case models.KindFixtures:
		return formatFixtures(resp)
	default:
		return resp.Message
	}
}

func formatPlayers(resp models.Response) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n\n", resp.Message))

	for i, p := range resp.Players {
		if i == maxListedPlayers {
			sb.WriteString(fmt.Sprintf("...and %d more\n", len(resp.Players)-maxListedPlayers))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", i+1, p.Name, p.TeamName))
		sb.WriteString(fmt.Sprintf("   %s | form %.1f | %d pts\n", p.Cost, p.Form, p.TotalPoints))
	}

	return sb.String()
}

func formatTeams(resp models.Response) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n\n", resp.Message))

	for _, t := range resp.Teams {
		sb.WriteString(fmt.Sprintf("• %s\n", t.Name))
	}

	return sb.String()
}

func formatFixtures(resp models.Response) string {
	if resp.Fixtures == nil {
		return resp.Message
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚽ *%s — upcoming fixtures*\n\n", resp.Fixtures.Team))

	for _, f := range resp.Fixtures.UpcomingFixtures {
		sb.WriteString(fmt.Sprintf("GW%d: %s (%s), difficulty %d\n",
			f.Gameweek, f.Opponent, f.Venue, f.Difficulty))
	}

	sb.WriteString(fmt.Sprintf("\nAverage difficulty: %.2f", resp.Fixtures.AverageDifficulty))
	return sb.String()
}
