package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/testutils"
)

func testClient(url string) Client {
	return NewForTest(url, "test-s2", "{test-swid}")
}

func TestGetLeague_success(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	league, err := c.GetLeague(context.Background(), testutils.FakeLeagueID, 2025)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if league.ID != testutils.FakeLeagueID {
		t.Errorf("expected league id %d, got %d", testutils.FakeLeagueID, league.ID)
	}
	if league.Year != 2025 {
		t.Errorf("expected year 2025, got %d", league.Year)
	}
	if league.Name != "Gridiron Gentlemen" {
		t.Errorf("unexpected league name: %s", league.Name)
	}
	if len(league.Teams) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(league.Teams))
	}

	team := league.Teams[0]
	if team.ID != 1 || team.Name != "Hyperion Hammers" || team.Abbrev != "HYP" {
		t.Errorf("unexpected first team: %+v", team)
	}
	if team.DivisionName != "East" {
		t.Errorf("expected division East, got %s", team.DivisionName)
	}
	if team.Wins != 5 || team.Losses != 2 || team.Ties != 0 {
		t.Errorf("unexpected record: %d-%d-%d", team.Wins, team.Losses, team.Ties)
	}
	if team.PointsFor != 812.5 || team.PointsAgainst != 700.1 {
		t.Errorf("unexpected points: %f / %f", team.PointsFor, team.PointsAgainst)
	}
	if team.StreakType != "WIN" || team.StreakLength != 3 {
		t.Errorf("unexpected streak: %s %d", team.StreakType, team.StreakLength)
	}
	if len(team.Roster) != 2 {
		t.Fatalf("expected 2 roster players, got %d", len(team.Roster))
	}

	p := team.Roster[0]
	if p.ID != 101 || p.Name != "Josh Allen" {
		t.Fatalf("unexpected first roster player: %+v", p)
	}
	if p.Position != model.POS_QB {
		t.Errorf("expected position QB, got %v", p.Position)
	}
	if p.ProTeam != "BUF" {
		t.Errorf("expected pro team BUF, got %s", p.ProTeam)
	}
	if p.PosRank != 2 {
		t.Errorf("expected pos rank 2, got %d", p.PosRank)
	}
	if p.AcquisitionType != "DRAFT" {
		t.Errorf("expected acquisition DRAFT, got %s", p.AcquisitionType)
	}
	if p.TotalPoints != 88.4 || p.AvgPoints != 29.47 {
		t.Errorf("unexpected season totals: %f avg %f", p.TotalPoints, p.AvgPoints)
	}
	if p.ProjectedPoints != 350.0 {
		t.Errorf("expected projected 350.0, got %f", p.ProjectedPoints)
	}
	expectedWeekly := []model.WeekStats{
		{Week: 1, Points: 30.1, Projected: 22.0},
		{Week: 2, Points: 28.8, Projected: 21.5},
	}
	if !reflect.DeepEqual(p.Weekly, expectedWeekly) {
		t.Errorf("unexpected weekly stats: %+v", p.Weekly)
	}

	expectedSchedule := []model.Opponent{
		{Week: 1, TeamID: 2, TeamName: "Bayou Bandits"},
		{Week: 2, TeamID: 3, TeamName: "Rust Belt Raiders"},
		{Week: 3, TeamID: 4, TeamName: "Soggy Bottom Boys"},
	}
	if !reflect.DeepEqual(team.Schedule, expectedSchedule) {
		t.Errorf("unexpected schedule: %+v", team.Schedule)
	}
}

func TestGetLeague_settings(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	league, err := c.GetLeague(context.Background(), testutils.FakeLeagueID, 2025)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	s := league.Settings
	if s == nil {
		t.Fatal("settings should not have been nil")
	}
	if s.TeamCount != 4 {
		t.Errorf("expected 4 teams, got %d", s.TeamCount)
	}
	if s.ScoringType != "H2H_PPR" {
		t.Errorf("unexpected scoring type: %s", s.ScoringType)
	}
	if s.RegularSeasonWeeks != 14 || s.PlayoffTeamCount != 2 {
		t.Errorf("unexpected schedule settings: %d weeks, %d playoff teams",
			s.RegularSeasonWeeks, s.PlayoffTeamCount)
	}
	if s.AcquisitionType != "WAIVERS_TRADITIONAL" || s.AcquisitionBudget != 100 {
		t.Errorf("unexpected acquisition settings: %s %d", s.AcquisitionType, s.AcquisitionBudget)
	}

	if len(s.ScoringItems) != 4 {
		t.Fatalf("expected 4 scoring items, got %d", len(s.ScoringItems))
	}
	var rec, unknown *model.ScoringItem
	for i := range s.ScoringItems {
		switch s.ScoringItems[i].StatID {
		case 53:
			rec = &s.ScoringItems[i]
		case 99:
			unknown = &s.ScoringItems[i]
		}
	}
	if rec == nil || rec.Abbr != "REC" || rec.Points != 1.0 {
		t.Errorf("unexpected reception scoring item: %+v", rec)
	}
	if unknown == nil || unknown.Abbr != "STAT_99" || unknown.Label != "Stat 99" {
		t.Errorf("unrecognized stat ids should keep a fallback name: %+v", unknown)
	}

	// Slot 21 has a zero count in the fixture and must be dropped. The rest
	// come back sorted by name.
	expectedSlots := []model.PositionSlot{
		{Slot: "BE", Count: 5},
		{Slot: "D/ST", Count: 1},
		{Slot: "FLEX", Count: 1},
		{Slot: "K", Count: 1},
		{Slot: "QB", Count: 1},
		{Slot: "RB", Count: 2},
		{Slot: "TE", Count: 1},
		{Slot: "WR", Count: 2},
	}
	if !reflect.DeepEqual(s.PositionSlots, expectedSlots) {
		t.Errorf("unexpected position slots: %+v", s.PositionSlots)
	}
}

func TestGetLeague_notFound(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	league, err := c.GetLeague(context.Background(), 999, 2025)
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got %v", err)
	}
	if league != nil {
		t.Errorf("league should have been nil, was %+v", league)
	}
}

func TestGetLeague_unauthorized(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := NewForTest(fakeESPN.URL(), "", "")

	league, err := c.GetLeague(context.Background(), testutils.FakeLeagueID, 2025)
	if err == nil {
		t.Fatal("error should not have been nil")
	}
	if errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("an auth failure is not a missing league: %v", err)
	}
	if league != nil {
		t.Errorf("league should have been nil, was %+v", league)
	}
}

func TestGetLeague_httpError(t *testing.T) {
	fakeESPN := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL)

	league, err := c.GetLeague(context.Background(), testutils.FakeLeagueID, 2025)
	if err == nil {
		t.Fatal("error should not have been nil")
	}
	if league != nil {
		t.Errorf("league should have been nil, was %+v", league)
	}
}

func TestGetDraft(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	picks, err := c.GetDraft(context.Background(), testutils.FakeLeagueID, 2025)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(picks) != 8 {
		t.Fatalf("expected 8 picks, got %d", len(picks))
	}

	first := picks[0]
	if first.Round != 1 || first.RoundPick != 1 {
		t.Errorf("unexpected first pick slot: %d.%d", first.Round, first.RoundPick)
	}
	if first.PlayerName != "Jahmyr Gibbs" || first.TeamName != "Rust Belt Raiders" {
		t.Errorf("unexpected first pick: %+v", first)
	}

	keeper := picks[2]
	if !keeper.Keeper || keeper.BidAmount != 12 {
		t.Errorf("expected pick 1.3 to be a keeper with a bid of 12: %+v", keeper)
	}
	if keeper.PlayerName != "Josh Allen" || keeper.TeamName != "Hyperion Hammers" {
		t.Errorf("unexpected keeper pick: %+v", keeper)
	}
}

func TestGetDraft_emptyLeagueBody(t *testing.T) {
	// ESPN answers some bad league ids with 200 and an empty body.
	fakeESPN := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"teams":[]}`))
	}))
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL)

	picks, err := c.GetDraft(context.Background(), 999, 2025)
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got %v", err)
	}
	if picks != nil {
		t.Errorf("picks should have been nil, was %+v", picks)
	}
}

func TestGetDraft_noPicks(t *testing.T) {
	fakeESPN := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"teams":[{"id":1,"name":"Hyperion Hammers"}],"draftDetail":{"drafted":false,"picks":[]}}`))
	}))
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL)

	picks, err := c.GetDraft(context.Background(), testutils.FakeLeagueID, 2025)
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("an undrafted league should surface as not-found, got %v", err)
	}
	if picks != nil {
		t.Errorf("picks should have been nil, was %+v", picks)
	}
}

func TestGetMatchups(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.FakeLeagueID, 2025, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(matchups) != 2 {
		t.Fatalf("expected 2 matchups for week 1, got %d", len(matchups))
	}

	m := matchups[0]
	if m.Week != 1 || m.Winner != "HOME" {
		t.Errorf("unexpected matchup: week %d winner %s", m.Week, m.Winner)
	}
	if m.Home.TeamID != 1 || m.Home.TeamName != "Hyperion Hammers" || m.Home.Score != 120.5 {
		t.Errorf("unexpected home side: %+v", m.Home)
	}
	if m.Away.TeamID != 2 || m.Away.Score != 95.0 {
		t.Errorf("unexpected away side: %+v", m.Away)
	}

	if len(m.Home.Lineup) != 2 {
		t.Fatalf("expected 2 lineup players, got %d", len(m.Home.Lineup))
	}
	lp := m.Home.Lineup[0]
	if lp.PlayerID != 101 || lp.Name != "Josh Allen" {
		t.Fatalf("unexpected lineup player: %+v", lp)
	}
	if lp.Slot != "QB" || lp.Position != model.POS_QB {
		t.Errorf("unexpected slot or position: %s %v", lp.Slot, lp.Position)
	}
	if lp.Points != 30.1 || lp.Projected != 22.0 {
		t.Errorf("unexpected points: %f projected %f", lp.Points, lp.Projected)
	}
}

func TestGetMatchups_otherWeek(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.FakeLeagueID, 2025, 2)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(matchups) != 2 {
		t.Fatalf("expected 2 matchups for week 2, got %d", len(matchups))
	}
	if matchups[0].Home.TeamID != 1 || matchups[0].Away.TeamID != 3 {
		t.Errorf("unexpected week 2 pairing: %+v", matchups[0])
	}
	// No per-player data rides along outside the requested scoring period.
	if len(matchups[0].Home.Lineup) != 0 {
		t.Errorf("expected no lineup for week 2, got %d players", len(matchups[0].Home.Lineup))
	}
}

func TestGetFreeAgents(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	players, err := c.GetFreeAgents(context.Background(), testutils.FakeLeagueID, 2025, 20, "")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 free agents, got %d", len(players))
	}
	p := players[0]
	if p.Name != "Rashid Shaheed" || p.Position != model.POS_WR || p.ProTeam != "NO" {
		t.Errorf("unexpected first free agent: %+v", p)
	}
	if p.PercentOwned != 61.4 {
		t.Errorf("expected percent owned 61.4, got %f", p.PercentOwned)
	}
}

func TestGetFreeAgents_position(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	players, err := c.GetFreeAgents(context.Background(), testutils.FakeLeagueID, 2025, 20, model.POS_QB)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 quarterbacks, got %d", len(players))
	}
	for _, p := range players {
		if p.Position != model.POS_QB {
			t.Errorf("expected only quarterbacks, got %v for %s", p.Position, p.Name)
		}
	}
}

func TestGetActivity(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	c := testClient(fakeESPN.URL())

	entries, err := c.GetActivity(context.Background(), testutils.FakeLeagueID, 2025, 25, "")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 activity entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].Date != 1756400000000 || entries[1].Date != 1756350000000 || entries[2].Date != 1756300000000 {
		t.Errorf("entries are not sorted newest first: %d, %d, %d",
			entries[0].Date, entries[1].Date, entries[2].Date)
	}

	add, ok := entries[0].Actions[0].(model.SingleAction)
	if !ok {
		t.Fatalf("expected a single action, got %T", entries[0].Actions[0])
	}
	if add.Team != "Hyperion Hammers" || add.Kind != "FA ADDED" || add.Player != "Jaylen Wright" {
		t.Errorf("unexpected add action: %+v", add)
	}

	trade, ok := entries[1].Actions[0].(model.TradeAction)
	if !ok {
		t.Fatalf("expected a trade action, got %T", entries[1].Actions[0])
	}
	expectedTrade := model.TradeAction{
		TeamA:   "Hyperion Hammers",
		PlayerA: "Amon-Ra St. Brown",
		TeamB:   "Rust Belt Raiders",
		PlayerB: "Nico Collins",
	}
	if trade != expectedTrade {
		t.Errorf("unexpected trade action: %+v", trade)
	}

	drop, ok := entries[2].Actions[0].(model.SingleAction)
	if !ok {
		t.Fatalf("expected a single action, got %T", entries[2].Actions[0])
	}
	if drop.Team != "Bayou Bandits" || drop.Kind != "DROPPED" || drop.Player != "Tyler Allgeier" {
		t.Errorf("unexpected drop action: %+v", drop)
	}
}
