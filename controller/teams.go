package controller

import (
	"context"
	"fmt"

	"github.com/danieloyasodun/fantasy-gm/model"
)

func (c *controller) GetTeams(ctx context.Context, leagueID, year int) ([]model.TeamSummary, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	teams := make([]model.TeamSummary, 0, len(l.Teams))
	for i := range l.Teams {
		teams = append(teams, projectTeamSummary(&l.Teams[i]))
	}
	return teams, nil
}

func (c *controller) GetTeam(ctx context.Context, leagueID, teamID, year int) (*model.TeamSummary, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	t, err := findTeam(l, teamID)
	if err != nil {
		return nil, err
	}
	s := projectTeamSummary(t)
	return &s, nil
}

func (c *controller) GetTeamDetail(ctx context.Context, leagueID, teamID, year int) (*model.TeamDetail, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	t, err := findTeam(l, teamID)
	if err != nil {
		return nil, err
	}
	d := projectTeamDetail(t)
	return &d, nil
}

func (c *controller) GetTeamPlayers(ctx context.Context, leagueID, teamID, year int) ([]model.PlayerSummary, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	t, err := findTeam(l, teamID)
	if err != nil {
		return nil, err
	}

	players := make([]model.PlayerSummary, 0, len(t.Roster))
	for i := range t.Roster {
		players = append(players, projectPlayerSummary(&t.Roster[i], t))
	}
	return players, nil
}

func (c *controller) GetTeamPlayersDetail(ctx context.Context, leagueID, teamID, year int) ([]model.PlayerDetail, error) {
	l, err := c.espn.GetLeague(ctx, leagueID, c.season(year))
	if err != nil {
		return nil, fmt.Errorf("error getting league %d: %w", leagueID, err)
	}

	t, err := findTeam(l, teamID)
	if err != nil {
		return nil, err
	}

	players := make([]model.PlayerDetail, 0, len(t.Roster))
	for i := range t.Roster {
		players = append(players, projectPlayerDetail(&t.Roster[i], t))
	}
	return players, nil
}

// The projection functions are pure: they only read the snapshot and
// never fail on a missing optional field.

func projectTeamSummary(t *model.Team) model.TeamSummary {
	roster := make([]string, 0, len(t.Roster))
	for i := range t.Roster {
		roster = append(roster, t.Roster[i].Name)
	}

	return model.TeamSummary{
		TeamID:        t.ID,
		TeamName:      t.Name,
		Abbrev:        t.Abbrev,
		Wins:          t.Wins,
		Losses:        t.Losses,
		Ties:          t.Ties,
		FinalStanding: t.FinalStanding,
		Roster:        roster,
	}
}

func projectTeamDetail(t *model.Team) model.TeamDetail {
	roster := make([]model.PlayerSummary, 0, len(t.Roster))
	for i := range t.Roster {
		roster = append(roster, projectPlayerSummary(&t.Roster[i], t))
	}

	schedule := make([]model.OpponentRecord, 0, len(t.Schedule))
	for _, o := range t.Schedule {
		schedule = append(schedule, model.OpponentRecord{
			Week:     o.Week,
			TeamID:   o.TeamID,
			TeamName: o.TeamName,
		})
	}

	return model.TeamDetail{
		TeamID:        t.ID,
		TeamName:      t.Name,
		Abbrev:        t.Abbrev,
		DivisionID:    t.DivisionID,
		DivisionName:  t.DivisionName,
		Wins:          t.Wins,
		Losses:        t.Losses,
		Ties:          t.Ties,
		PointsFor:     t.PointsFor,
		PointsAgainst: t.PointsAgainst,
		Standing:      t.Standing,
		FinalStanding: t.FinalStanding,
		Streak:        formatStreak(t.StreakType, t.StreakLength),
		Roster:        roster,
		Schedule:      schedule,
	}
}

func projectPlayerSummary(p *model.Player, t *model.Team) model.PlayerSummary {
	return model.PlayerSummary{
		PlayerID:        p.ID,
		Name:            p.Name,
		Position:        p.Position,
		PosRank:         p.PosRank,
		ProTeam:         p.ProTeam,
		EligibleSlots:   p.EligibleSlots,
		AcquisitionType: p.AcquisitionType,
		TeamID:          t.ID,
		TeamName:        t.Name,
	}
}

func projectPlayerDetail(p *model.Player, t *model.Team) model.PlayerDetail {
	weekly := make([]model.WeekRecord, 0, len(p.Weekly))
	for _, w := range p.Weekly {
		weekly = append(weekly, model.WeekRecord{
			Week:      w.Week,
			Points:    w.Points,
			Projected: w.Projected,
		})
	}

	return model.PlayerDetail{
		PlayerID:        p.ID,
		Name:            p.Name,
		Position:        p.Position,
		PosRank:         p.PosRank,
		ProTeam:         p.ProTeam,
		EligibleSlots:   p.EligibleSlots,
		AcquisitionType: p.AcquisitionType,
		InjuryStatus:    p.InjuryStatus,
		TotalPoints:     p.TotalPoints,
		ProjectedPoints: p.ProjectedPoints,
		AvgPoints:       p.AvgPoints,
		ProjectedAvg:    p.ProjectedAvg,
		PercentOwned:    p.PercentOwned,
		PercentStarted:  p.PercentStarted,
		Weekly:          weekly,
		TeamID:          t.ID,
		TeamName:        t.Name,
	}
}

func formatStreak(streakType string, length int) string {
	if length == 0 || streakType == "" {
		return ""
	}
	prefix := "W"
	if streakType == "LOSS" {
		prefix = "L"
	}
	return fmt.Sprintf("%s%d", prefix, length)
}
