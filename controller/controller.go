package controller

import (
	"context"
	"errors"
	"time"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn"
	"github.com/itbasis/go-clock"
)

// ErrTeamNotFound is returned when a league snapshot has no team with the
// requested id. The web layer maps it to a 404.
var ErrTeamNotFound = errors.New("team not found")

// ErrWeekNotFound is returned when a requested week has no matchups in
// the league's schedule. The web layer maps it to a 404.
var ErrWeekNotFound = errors.New("week not found")

// C encapsulates business logic without worrying about any web layers.
// Every method builds a fresh league snapshot from the upstream client;
// nothing is cached between calls. A year of 0 means the current season.
type C interface {
	GetTeams(ctx context.Context, leagueID, year int) ([]model.TeamSummary, error)
	GetTeam(ctx context.Context, leagueID, teamID, year int) (*model.TeamSummary, error)
	GetTeamDetail(ctx context.Context, leagueID, teamID, year int) (*model.TeamDetail, error)
	GetTeamPlayers(ctx context.Context, leagueID, teamID, year int) ([]model.PlayerSummary, error)
	GetTeamPlayersDetail(ctx context.Context, leagueID, teamID, year int) ([]model.PlayerDetail, error)

	GetDraft(ctx context.Context, leagueID, year int) ([]model.DraftPickRecord, error)
	GetSettings(ctx context.Context, leagueID, year int) (*model.SettingsRecord, error)

	GetScoreboard(ctx context.Context, leagueID, year, week int) ([]model.MatchupScore, error)
	GetBoxScores(ctx context.Context, leagueID, year, week int) ([]model.BoxScoreMatchup, error)
	GetPowerRankings(ctx context.Context, leagueID, year, week int) ([]model.PowerRankingEntry, error)

	GetTopScorer(ctx context.Context, leagueID, year int) (*model.ScorerRecord, error)
	GetLowestScorer(ctx context.Context, leagueID, year int) (*model.ScorerRecord, error)
	GetPointOrder(ctx context.Context, leagueID, year int) ([]model.ScorerRecord, error)

	// GetActivity normalizes the transaction log. size <= 0 falls back to
	// the default of 25 entries.
	GetActivity(ctx context.Context, leagueID, year, size int, msgType string) ([]model.ActivityRecord, error)
	// GetFreeAgents returns available players, optionally filtered by
	// position. size <= 0 falls back to the default of 20.
	GetFreeAgents(ctx context.Context, leagueID, year, size int, position string) ([]model.FreeAgentRecord, error)
}

type controller struct {
	clock clock.Clock
	espn  espn.Client
}

func New(clock clock.Clock, espn espn.Client) (C, error) {
	c := &controller{
		clock: clock,
		espn:  espn,
	}
	return c, nil
}

// season resolves the requested year, defaulting to the season currently
// in progress. ESPN keys a season by its kickoff year, so January through
// February still belong to the previous season.
func (c *controller) season(year int) int {
	if year != 0 {
		return year
	}
	now := c.clock.Now()
	if now.Month() < time.March {
		return now.Year() - 1
	}
	return now.Year()
}

// findTeam is a linear scan; league sizes make anything fancier pointless.
func findTeam(l *model.League, teamID int) (*model.Team, error) {
	for i := range l.Teams {
		if l.Teams[i].ID == teamID {
			return &l.Teams[i], nil
		}
	}
	return nil, ErrTeamNotFound
}
