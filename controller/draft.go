package controller

import (
	"context"
	"fmt"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn"
)

func (c *controller) GetDraft(ctx context.Context, leagueID, year int) ([]model.DraftPickRecord, error) {
	picks, err := c.espn.GetDraft(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting draft for league %d: %w", leagueID, err)
	}

	records := make([]model.DraftPickRecord, 0, len(picks))
	for _, p := range picks {
		records = append(records, model.DraftPickRecord{
			Round:      p.Round,
			RoundPick:  p.RoundPick,
			PlayerID:   p.PlayerID,
			PlayerName: p.PlayerName,
			TeamID:     p.TeamID,
			TeamName:   p.TeamName,
			Keeper:     p.Keeper,
			BidAmount:  p.BidAmount,
		})
	}
	return records, nil
}

func (c *controller) GetSettings(ctx context.Context, leagueID, year int) (*model.SettingsRecord, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}
	if l.Settings == nil {
		return nil, fmt.Errorf("league %d has no settings: %w", leagueID, espn.ErrLeagueNotFound)
	}

	s := l.Settings
	record := &model.SettingsRecord{
		Name:               s.Name,
		TeamCount:          s.TeamCount,
		RegularSeasonWeeks: s.RegularSeasonWeeks,
		PlayoffTeamCount:   s.PlayoffTeamCount,
		ScoringType:        s.ScoringType,
		AcquisitionType:    s.AcquisitionType,
		AcquisitionBudget:  s.AcquisitionBudget,
	}

	record.ScoringItems = make([]model.ScoringItemRecord, 0, len(s.ScoringItems))
	for _, item := range s.ScoringItems {
		record.ScoringItems = append(record.ScoringItems, model.ScoringItemRecord{
			StatID: item.StatID,
			Abbr:   item.Abbr,
			Label:  item.Label,
			Points: item.Points,
		})
	}

	record.PositionSlots = make([]model.PositionSlotRecord, 0, len(s.PositionSlots))
	for _, slot := range s.PositionSlots {
		record.PositionSlots = append(record.PositionSlots, model.PositionSlotRecord{
			Slot:  slot.Slot,
			Count: slot.Count,
		})
	}

	return record, nil
}
