package mockespn

import (
	"context"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetLeague(ctx context.Context, leagueID, year int) (*model.League, error) {
	args := c.Called(leagueID, year)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetDraft(ctx context.Context, leagueID, year int) ([]model.DraftPick, error) {
	args := c.Called(leagueID, year)

	var res []model.DraftPick
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPick)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID, year, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, year, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) GetFreeAgents(ctx context.Context, leagueID, year, size int, position model.Position) ([]model.Player, error) {
	args := c.Called(leagueID, year, size, position)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) GetActivity(ctx context.Context, leagueID, year, size int, msgType string) ([]model.ActivityEntry, error) {
	args := c.Called(leagueID, year, size, msgType)

	var res []model.ActivityEntry
	if args.Get(0) != nil {
		res = args.Get(0).([]model.ActivityEntry)
	}

	return res, args.Error(1)
}
