package espn

import (
	"context"

	"github.com/danieloyasodun/fantasy-gm/model"
)

func (c *client) GetFreeAgents(ctx context.Context, leagueID, year, size int, position model.Position) ([]model.Player, error) {
	playerFilter := map[string]any{
		"filterStatus": map[string]any{"value": []string{"FREEAGENT", "WAIVERS"}},
		"limit":        size,
		"sortPercOwned": map[string]any{
			"sortAsc":      false,
			"sortPriority": 1,
		},
	}
	if slot, found := model.SlotIDForPosition(position); found {
		playerFilter["filterSlotIds"] = map[string]any{"value": []int{slot}}
	}
	filter := map[string]any{"players": playerFilter}

	resp, err := c.getLeagueViews(ctx, leagueID, year, filter, "kona_player_info")
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, len(resp.Players))
	for _, e := range resp.Players {
		if e.Player == nil {
			continue
		}
		players = append(players, toPlayer(e.Player))
	}
	return players, nil
}
