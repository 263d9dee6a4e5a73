package espn

import (
	"context"
	"fmt"
	"net/url"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn/internal"
)

func (c *client) GetMatchups(ctx context.Context, leagueID, year, week int) ([]model.Matchup, error) {
	query := url.Values{}
	query.Add("view", "mMatchup")
	query.Add("view", "mMatchupScore")
	query.Add("view", "mTeam")
	query.Add("scoringPeriodId", fmt.Sprintf("%d", week))

	var resp internal.LeagueResponse
	if err := c.get(ctx, leaguePath(leagueID, year), query, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Teams) == 0 {
		return nil, ErrLeagueNotFound
	}

	names := make(map[int]string, len(resp.Teams))
	for _, t := range resp.Teams {
		names[t.ID] = teamName(&t)
	}

	var matchups []model.Matchup
	for _, item := range resp.Schedule {
		if item.MatchupPeriodID != week || item.Home == nil || item.Away == nil {
			continue
		}

		m := model.Matchup{
			Week:   week,
			Home:   toMatchupSide(item.Home, week, names),
			Away:   toMatchupSide(item.Away, week, names),
			Winner: item.Winner,
		}
		if m.Winner == "" {
			m.Winner = "UNDECIDED"
		}
		matchups = append(matchups, m)
	}

	return matchups, nil
}

func toMatchupSide(mt *internal.MatchupTeam, week int, names map[int]string) model.MatchupSide {
	side := model.MatchupSide{
		TeamID:   mt.TeamID,
		TeamName: names[mt.TeamID],
		Score:    mt.TotalPoints,
	}

	if mt.RosterForCurrentScoringPeriod == nil {
		return side
	}

	side.Lineup = make([]model.LineupPlayer, 0, len(mt.RosterForCurrentScoringPeriod.Entries))
	for _, e := range mt.RosterForCurrentScoringPeriod.Entries {
		if e.PlayerPoolEntry == nil || e.PlayerPoolEntry.Player == nil {
			continue
		}
		p := e.PlayerPoolEntry.Player
		lp := model.LineupPlayer{
			PlayerID: p.ID,
			Name:     p.FullName,
			Slot:     model.SlotName(e.LineupSlotID),
			Position: model.PositionFromID(p.DefaultPositionID),
			Points:   e.PlayerPoolEntry.AppliedStatTotal,
		}
		// The week's projection rides along in the player's stat buckets.
		for _, s := range p.Stats {
			if s.ScoringPeriodID == week && s.StatSplitTypeID == 1 && s.StatSourceID == 1 {
				lp.Projected = s.AppliedTotal
				break
			}
		}
		side.Lineup = append(side.Lineup, lp)
	}

	return side
}
