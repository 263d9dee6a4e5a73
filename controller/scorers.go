package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/danieloyasodun/fantasy-gm/model"
)

// Ties in all three views resolve to the first team in upstream-provided
// order. That matches what the league site shows and is deliberate, not
// an accident of iteration order.

func (c *controller) GetTopScorer(ctx context.Context, leagueID, year int) (*model.ScorerRecord, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	best := -1
	for i := range l.Teams {
		if best == -1 || l.Teams[i].PointsFor > l.Teams[best].PointsFor {
			best = i
		}
	}
	if best == -1 {
		return nil, ErrTeamNotFound
	}

	r := projectScorer(&l.Teams[best])
	return &r, nil
}

func (c *controller) GetLowestScorer(ctx context.Context, leagueID, year int) (*model.ScorerRecord, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	worst := -1
	for i := range l.Teams {
		if worst == -1 || l.Teams[i].PointsFor < l.Teams[worst].PointsFor {
			worst = i
		}
	}
	if worst == -1 {
		return nil, ErrTeamNotFound
	}

	r := projectScorer(&l.Teams[worst])
	return &r, nil
}

func (c *controller) GetPointOrder(ctx context.Context, leagueID, year int) ([]model.ScorerRecord, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	records := make([]model.ScorerRecord, 0, len(l.Teams))
	for i := range l.Teams {
		records = append(records, projectScorer(&l.Teams[i]))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Points > records[j].Points
	})
	return records, nil
}

func projectScorer(t *model.Team) model.ScorerRecord {
	return model.ScorerRecord{
		TeamID:   t.ID,
		TeamName: t.Name,
		Points:   t.PointsFor,
		Wins:     t.Wins,
		Losses:   t.Losses,
		Ties:     t.Ties,
	}
}
