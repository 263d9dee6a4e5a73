package controller

import (
	"context"
	"fmt"

	"github.com/danieloyasodun/fantasy-gm/model"
)

func (c *controller) GetScoreboard(ctx context.Context, leagueID, year, week int) ([]model.MatchupScore, error) {
	matchups, err := c.espn.GetMatchups(ctx, leagueID, c.season(year), week)
	if err != nil {
		return nil, fmt.Errorf("error getting matchups for league %d week %d: %w", leagueID, week, err)
	}
	if len(matchups) == 0 {
		return nil, fmt.Errorf("no matchups for week %d in league %d: %w", week, leagueID, ErrWeekNotFound)
	}

	scores := make([]model.MatchupScore, 0, len(matchups))
	for i := range matchups {
		scores = append(scores, projectMatchupScore(&matchups[i]))
	}
	return scores, nil
}

func (c *controller) GetBoxScores(ctx context.Context, leagueID, year, week int) ([]model.BoxScoreMatchup, error) {
	matchups, err := c.espn.GetMatchups(ctx, leagueID, c.season(year), week)
	if err != nil {
		return nil, fmt.Errorf("error getting matchups for league %d week %d: %w", leagueID, week, err)
	}
	if len(matchups) == 0 {
		return nil, fmt.Errorf("no matchups for week %d in league %d: %w", week, leagueID, ErrWeekNotFound)
	}

	boxes := make([]model.BoxScoreMatchup, 0, len(matchups))
	for i := range matchups {
		boxes = append(boxes, projectBoxScore(&matchups[i]))
	}
	return boxes, nil
}

func projectMatchupScore(m *model.Matchup) model.MatchupScore {
	return model.MatchupScore{
		Week:         m.Week,
		HomeTeamID:   m.Home.TeamID,
		HomeTeamName: m.Home.TeamName,
		HomeScore:    m.Home.Score,
		AwayTeamID:   m.Away.TeamID,
		AwayTeamName: m.Away.TeamName,
		AwayScore:    m.Away.Score,
		Winner:       m.Winner,
	}
}

func projectBoxScore(m *model.Matchup) model.BoxScoreMatchup {
	return model.BoxScoreMatchup{
		Week: m.Week,
		Home: projectBoxScoreSide(&m.Home),
		Away: projectBoxScoreSide(&m.Away),
	}
}

func projectBoxScoreSide(s *model.MatchupSide) model.BoxScoreSide {
	lineup := make([]model.LineupEntry, 0, len(s.Lineup))
	for _, p := range s.Lineup {
		lineup = append(lineup, model.LineupEntry{
			PlayerID:  p.PlayerID,
			Name:      p.Name,
			Slot:      p.Slot,
			Position:  p.Position,
			Points:    p.Points,
			Projected: p.Projected,
		})
	}

	return model.BoxScoreSide{
		TeamID:   s.TeamID,
		TeamName: s.TeamName,
		Score:    s.Score,
		Lineup:   lineup,
	}
}
