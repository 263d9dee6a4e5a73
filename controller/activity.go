package controller

import (
	"context"
	"fmt"

	"github.com/danieloyasodun/fantasy-gm/model"
)

const defaultActivitySize = 25

func (c *controller) GetActivity(ctx context.Context, leagueID, year, size int, msgType string) ([]model.ActivityRecord, error) {
	if size <= 0 {
		size = defaultActivitySize
	}

	entries, err := c.espn.GetActivity(ctx, leagueID, c.season(year), size, msgType)
	if err != nil {
		return nil, fmt.Errorf("error getting activity for league %d: %w", leagueID, err)
	}

	records := make([]model.ActivityRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, projectActivity(&e)...)
	}
	return records, nil
}

// projectActivity emits one record per team/action/player group: a single
// action yields one record, a trade yields two (one per side), and an
// unrecognized shape yields one raw record rather than being dropped.
func projectActivity(e *model.ActivityEntry) []model.ActivityRecord {
	records := make([]model.ActivityRecord, 0, len(e.Actions))
	for _, a := range e.Actions {
		switch v := a.(type) {
		case model.SingleAction:
			records = append(records, model.ActivityRecord{
				Date:   e.Date,
				Type:   e.Type,
				Team:   v.Team,
				Action: v.Kind,
				Player: v.Player,
			})
		case model.TradeAction:
			records = append(records,
				model.ActivityRecord{
					Date:   e.Date,
					Type:   e.Type,
					Team:   v.TeamA,
					Action: "TRADED",
					Player: v.PlayerA,
				},
				model.ActivityRecord{
					Date:   e.Date,
					Type:   e.Type,
					Team:   v.TeamB,
					Action: "TRADED",
					Player: v.PlayerB,
				})
		case model.RawAction:
			records = append(records, model.ActivityRecord{
				Date: e.Date,
				Type: e.Type,
				Raw:  v.Text,
			})
		}
	}
	return records
}
