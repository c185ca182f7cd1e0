// Command fetch-predictions scrapes the public predicted-points table with
// a headless browser and writes the CSV consumed by the points predictor.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const sourceURL = "https://fplform.com/fpl-predicted-points"

// gameweekOffsets are the predicted-points column positions relative to the
// probability-of-appearing column, one per upcoming gameweek.
var gameweekOffsets = []int{1, 3, 6, 9, 12, 15}

func main() {
	out := flag.String("out", "predicted_points.csv", "output CSV path")
	timeout := flag.Duration("timeout", 90*time.Second, "scrape timeout")
	flag.Parse()

	if err := run(*out, *timeout); err != nil {
		slog.Error("Error fetching predictions", "error", err)
		os.Exit(1)
	}
}

func run(out string, timeout time.Duration) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, timeout)
	defer cancel()

	var headers []string
	var rows [][]string
	err := chromedp.Run(ctx,
		chromedp.Navigate(sourceURL),
		chromedp.WaitVisible("table", chromedp.ByQuery),
		chromedp.Evaluate(`[...document.querySelectorAll("table th")].map(t => t.innerText.trim())`, &headers),
		chromedp.Evaluate(`[...document.querySelectorAll("table tbody tr")].map(r => [...r.querySelectorAll("td")].map(c => c.innerText.trim()))`, &rows),
	)
	if err != nil {
		return fmt.Errorf("scraping predictions page: %w", err)
	}

	currentGW := currentGameweek(headers)
	probCol := columnIndex(headers, "Prob")
	playerCol := columnIndex(headers, "Player")
	teamCol := columnIndex(headers, "Team")
	posCol := columnIndex(headers, "Pos")
	if probCol == -1 || playerCol == -1 {
		return fmt.Errorf("unexpected table layout: headers %v", headers)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Player", "Team", "Position", "GW", "Predicted Points"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	written := 0
	for _, row := range rows {
		if len(row) <= probCol {
			continue
		}
		for i, offset := range gameweekOffsets {
			col := probCol + offset
			if col >= len(row) {
				continue
			}
			points, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				continue
			}
			record := []string{
				cell(row, playerCol),
				cell(row, teamCol),
				cell(row, posCol),
				strconv.Itoa(currentGW + i),
				strconv.FormatFloat(points, 'f', -1, 64),
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
			written++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	slog.Info("Predictions saved", "path", out, "rows", written, "current_gameweek", currentGW)
	return nil
}

// currentGameweek pulls the round number out of the first "PPGW<n>" column
// header, defaulting to gameweek 1 when the header is missing.
func currentGameweek(headers []string) int {
	for _, h := range headers {
		if !strings.Contains(h, "PPGW") {
			continue
		}
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, h)
		if gw, err := strconv.Atoi(digits); err == nil && gw > 0 {
			return gw
		}
	}
	slog.Warn("Gameweek header not found, defaulting to gameweek 1")
	return 1
}

func columnIndex(headers []string, prefix string) int {
	for i, h := range headers {
		if strings.HasPrefix(h, prefix) {
			return i
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
