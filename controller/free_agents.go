package controller

import (
	"context"
	"fmt"

	"github.com/danieloyasodun/fantasy-gm/model"
)

const defaultFreeAgentSize = 20

func (c *controller) GetFreeAgents(ctx context.Context, leagueID, year, size int, position string) ([]model.FreeAgentRecord, error) {
	if size <= 0 {
		size = defaultFreeAgentSize
	}

	var pos model.Position
	if position != "" {
		pos = model.ParsePosition(position)
		if pos == model.POS_UNKNOWN {
			return nil, fmt.Errorf("unknown position: %s", position)
		}
	}

	// ESPN performs the position and size filtering; no extra sorting is
	// imposed here.
	players, err := c.espn.GetFreeAgents(ctx, leagueID, c.season(year), size, pos)
	if err != nil {
		return nil, fmt.Errorf("error getting free agents for league %d: %w", leagueID, err)
	}
	if len(players) > size {
		players = players[:size]
	}

	records := make([]model.FreeAgentRecord, 0, len(players))
	for i := range players {
		records = append(records, projectFreeAgent(&players[i]))
	}
	return records, nil
}

func projectFreeAgent(p *model.Player) model.FreeAgentRecord {
	return model.FreeAgentRecord{
		PlayerID:        p.ID,
		Name:            p.Name,
		Position:        p.Position,
		ProTeam:         p.ProTeam,
		InjuryStatus:    p.InjuryStatus,
		TotalPoints:     p.TotalPoints,
		ProjectedPoints: p.ProjectedPoints,
		PercentOwned:    p.PercentOwned,
	}
}
