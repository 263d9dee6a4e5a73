package espn

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn/internal"
)

func (c *client) GetLeague(ctx context.Context, leagueID, year int) (*model.League, error) {
	resp, err := c.getLeagueViews(ctx, leagueID, year, nil, "mTeam", "mRoster", "mSettings", "mMatchup")
	if err != nil {
		return nil, err
	}

	// ESPN answers some bad league ids with an empty body instead of a 404.
	if len(resp.Teams) == 0 {
		return nil, ErrLeagueNotFound
	}

	divisions := divisionNames(resp.Settings)

	l := &model.League{
		ID:    resp.ID,
		Year:  resp.SeasonID,
		Teams: make([]model.Team, 0, len(resp.Teams)),
	}
	if resp.Settings != nil {
		l.Name = resp.Settings.Name
		l.Settings = toSettings(resp.Settings)
	}

	names := make(map[int]string, len(resp.Teams))
	for _, t := range resp.Teams {
		names[t.ID] = teamName(&t)
	}

	for _, t := range resp.Teams {
		team := toTeam(&t, divisions)
		team.Schedule = teamSchedule(t.ID, resp.Schedule, names)
		l.Teams = append(l.Teams, team)
	}

	return l, nil
}

func (c *client) GetDraft(ctx context.Context, leagueID, year int) ([]model.DraftPick, error) {
	resp, err := c.getLeagueViews(ctx, leagueID, year, nil, "mDraftDetail", "mTeam")
	if err != nil {
		return nil, err
	}

	// ESPN answers some bad league ids with an empty body instead of a 404.
	if len(resp.Teams) == 0 {
		return nil, ErrLeagueNotFound
	}
	if resp.DraftDetail == nil || len(resp.DraftDetail.Picks) == 0 {
		return nil, fmt.Errorf("league %d has no draft: %w", leagueID, ErrLeagueNotFound)
	}

	names, err := c.playerNames(ctx, year)
	if err != nil {
		return nil, err
	}

	teamNames := make(map[int]string, len(resp.Teams))
	for _, t := range resp.Teams {
		teamNames[t.ID] = teamName(&t)
	}

	picks := make([]model.DraftPick, 0, len(resp.DraftDetail.Picks))
	for _, p := range resp.DraftDetail.Picks {
		picks = append(picks, model.DraftPick{
			Round:      p.RoundID,
			RoundPick:  p.RoundPickNumber,
			PlayerID:   p.PlayerID,
			PlayerName: names[p.PlayerID],
			TeamID:     p.TeamID,
			TeamName:   teamNames[p.TeamID],
			Keeper:     p.Keeper,
			BidAmount:  p.BidAmount,
		})
	}
	return picks, nil
}

// teamName prefers the single name field newer seasons use, falling back
// to the location + nickname pair of older ones.
func teamName(t *internal.Team) string {
	if t.Name != "" {
		return t.Name
	}
	if t.Location == "" {
		return t.Nickname
	}
	return fmt.Sprintf("%s %s", t.Location, t.Nickname)
}

func toTeam(t *internal.Team, divisions map[int]string) model.Team {
	team := model.Team{
		ID:            t.ID,
		Name:          teamName(t),
		Abbrev:        t.Abbrev,
		DivisionID:    t.DivisionID,
		DivisionName:  divisions[t.DivisionID],
		Standing:      t.PlayoffSeed,
		FinalStanding: t.RankCalculatedFinal,
	}

	if t.Record != nil && t.Record.Overall != nil {
		o := t.Record.Overall
		team.Wins = o.Wins
		team.Losses = o.Losses
		team.Ties = o.Ties
		team.PointsFor = o.PointsFor
		team.PointsAgainst = o.PointsAgainst
		team.StreakType = o.StreakType
		team.StreakLength = o.StreakLength
	}

	if t.Roster != nil {
		team.Roster = make([]model.Player, 0, len(t.Roster.Entries))
		for _, e := range t.Roster.Entries {
			if e.PlayerPoolEntry == nil || e.PlayerPoolEntry.Player == nil {
				continue
			}
			p := toPlayer(e.PlayerPoolEntry.Player)
			p.AcquisitionType = e.AcquisitionType
			team.Roster = append(team.Roster, p)
		}
	}

	return team
}

func toPlayer(p *internal.Player) model.Player {
	player := model.Player{
		ID:           p.ID,
		Name:         p.FullName,
		Position:     model.PositionFromID(p.DefaultPositionID),
		ProTeam:      model.ProTeamName(p.ProTeamID),
		InjuryStatus: p.InjuryStatus,
	}

	player.EligibleSlots = make([]string, 0, len(p.EligibleSlots))
	for _, s := range p.EligibleSlots {
		player.EligibleSlots = append(player.EligibleSlots, model.SlotName(s))
	}

	if r, found := p.Ratings["0"]; found {
		player.PosRank = r.PositionalRanking
	}

	if p.Ownership != nil {
		player.PercentOwned = p.Ownership.PercentOwned
		player.PercentStarted = p.Ownership.PercentStarted
	}

	weekly := make(map[int]*model.WeekStats)
	for _, s := range p.Stats {
		if s.StatSplitTypeID == 0 && s.ScoringPeriodID == 0 {
			// Season totals: source 0 is actual, 1 is projected.
			switch s.StatSourceID {
			case 0:
				player.TotalPoints = s.AppliedTotal
				player.AvgPoints = s.AppliedAverage
			case 1:
				player.ProjectedPoints = s.AppliedTotal
				player.ProjectedAvg = s.AppliedAverage
			}
			continue
		}
		if s.StatSplitTypeID == 1 && s.ScoringPeriodID > 0 {
			w, found := weekly[s.ScoringPeriodID]
			if !found {
				w = &model.WeekStats{Week: s.ScoringPeriodID}
				weekly[s.ScoringPeriodID] = w
			}
			switch s.StatSourceID {
			case 0:
				w.Points = s.AppliedTotal
			case 1:
				w.Projected = s.AppliedTotal
			}
		}
	}
	player.Weekly = make([]model.WeekStats, 0, len(weekly))
	for _, w := range weekly {
		player.Weekly = append(player.Weekly, *w)
	}
	sort.Slice(player.Weekly, func(i, j int) bool {
		return player.Weekly[i].Week < player.Weekly[j].Week
	})

	return player
}

func teamSchedule(teamID int, schedule []internal.ScheduleItem, names map[int]string) []model.Opponent {
	var opponents []model.Opponent
	for _, item := range schedule {
		if item.Home == nil || item.Away == nil {
			continue
		}
		var oppID int
		switch teamID {
		case item.Home.TeamID:
			oppID = item.Away.TeamID
		case item.Away.TeamID:
			oppID = item.Home.TeamID
		default:
			continue
		}
		opponents = append(opponents, model.Opponent{
			Week:     item.MatchupPeriodID,
			TeamID:   oppID,
			TeamName: names[oppID],
		})
	}
	return opponents
}

func divisionNames(s *internal.Settings) map[int]string {
	names := make(map[int]string)
	if s == nil || s.ScheduleSettings == nil {
		return names
	}
	for _, d := range s.ScheduleSettings.Divisions {
		names[d.ID] = d.Name
	}
	return names
}

// The lineupSlotCounts map keys slot ids as strings.
func slotNameFromKey(key string) string {
	id, err := strconv.Atoi(key)
	if err != nil {
		return key
	}
	return model.SlotName(id)
}

func toSettings(s *internal.Settings) *model.LeagueSettings {
	settings := &model.LeagueSettings{
		Name:      s.Name,
		TeamCount: s.Size,
	}

	if s.ScoringSettings != nil {
		settings.ScoringType = s.ScoringSettings.ScoringType
		settings.ScoringItems = make([]model.ScoringItem, 0, len(s.ScoringSettings.ScoringItems))
		for _, item := range s.ScoringSettings.ScoringItems {
			settings.ScoringItems = append(settings.ScoringItems, model.ScoringItem{
				StatID: item.StatID,
				Abbr:   model.ScoringStatAbbr(item.StatID),
				Label:  model.ScoringStatLabel(item.StatID),
				Points: item.Points,
			})
		}
	}

	if s.RosterSettings != nil {
		slots := make([]model.PositionSlot, 0, len(s.RosterSettings.LineupSlotCounts))
		for id, count := range s.RosterSettings.LineupSlotCounts {
			if count == 0 {
				continue
			}
			slots = append(slots, model.PositionSlot{Slot: slotNameFromKey(id), Count: count})
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })
		settings.PositionSlots = slots
	}

	if s.ScheduleSettings != nil {
		settings.RegularSeasonWeeks = s.ScheduleSettings.MatchupPeriodCount
		settings.PlayoffTeamCount = s.ScheduleSettings.PlayoffTeamCount
	}

	if s.AcquisitionSettings != nil {
		settings.AcquisitionType = s.AcquisitionSettings.AcquisitionType
		settings.AcquisitionBudget = s.AcquisitionSettings.AcquisitionBudget
	}

	return settings
}
