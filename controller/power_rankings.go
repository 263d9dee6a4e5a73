package controller

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/danieloyasodun/fantasy-gm/model"
)

// GetPowerRankings scores team strength from the results played through
// the given week using a two-step dominance matrix: beating a team also
// credits you with a share of the teams it beat. The dominance total is
// blended with scoring volume and margin, so an unlucky high scorer still
// ranks above its record.
func (c *controller) GetPowerRankings(ctx context.Context, leagueID, year, week int) ([]model.PowerRankingEntry, error) {
	season := c.season(year)

	l, err := c.espn.GetLeague(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	index := make(map[int]int, len(l.Teams))
	for i := range l.Teams {
		index[l.Teams[i].ID] = i
	}

	n := len(l.Teams)
	wins := newMatrix(n)
	points := make([]float64, n)
	margins := make([]float64, n)
	played := make([]int, n)

	for w := 1; w <= week; w++ {
		matchups, err := c.espn.GetMatchups(ctx, leagueID, season, w)
		if err != nil {
			log.Printf("error getting results for league %d, week %d: %v", leagueID, w, err)
			continue
		}

		for _, m := range matchups {
			hi, homeFound := index[m.Home.TeamID]
			ai, awayFound := index[m.Away.TeamID]
			if !homeFound || !awayFound {
				continue
			}

			switch m.Winner {
			case "HOME":
				wins[hi][ai] += 1
			case "AWAY":
				wins[ai][hi] += 1
			case "TIE":
				wins[hi][ai] += 0.5
				wins[ai][hi] += 0.5
			default:
				// Undecided matchups contribute nothing.
				continue
			}

			points[hi] += m.Home.Score
			points[ai] += m.Away.Score
			margins[hi] += m.Home.Score - m.Away.Score
			margins[ai] += m.Away.Score - m.Home.Score
			played[hi]++
			played[ai]++
		}
	}

	dominance := twoStepDominance(wins)

	entries := make([]model.PowerRankingEntry, 0, n)
	for i := range l.Teams {
		avgPoints := 0.0
		avgMargin := 0.0
		if played[i] > 0 {
			avgPoints = points[i] / float64(played[i])
			avgMargin = margins[i] / float64(played[i])
		}

		score := 0.81*dominance[i] + 0.15*avgPoints + 0.05*avgMargin
		entries = append(entries, model.PowerRankingEntry{
			Score:    math.Round(score*100) / 100,
			TeamID:   l.Teams[i].ID,
			TeamName: l.Teams[i].Name,
		})
	}

	// Stable sort keeps tied teams in upstream order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

func newMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// twoStepDominance returns the row sums of W + W*W.
func twoStepDominance(wins [][]float64) []float64 {
	n := len(wins)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			twoStep := 0.0
			for k := 0; k < n; k++ {
				twoStep += wins[i][k] * wins[k][j]
			}
			scores[i] += wins[i][j] + twoStep
		}
	}
	return scores
}
