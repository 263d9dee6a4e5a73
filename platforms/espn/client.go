package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn/internal"
)

const ESPNURL = "https://lm-api-reads.fantasy.espn.com"

// ErrLeagueNotFound is returned when the upstream reports no league for
// the requested id and season. The web layer maps it to a 404.
var ErrLeagueNotFound = errors.New("league not found")

type Client interface {
	// GetLeague returns a full league snapshot: teams, rosters, schedule
	// and settings.
	GetLeague(ctx context.Context, leagueID, year int) (*model.League, error)
	GetDraft(ctx context.Context, leagueID, year int) ([]model.DraftPick, error)
	GetMatchups(ctx context.Context, leagueID, year, week int) ([]model.Matchup, error)
	// GetFreeAgents relies on ESPN's own position/size filtering; position
	// may be empty for all positions.
	GetFreeAgents(ctx context.Context, leagueID, year, size int, position model.Position) ([]model.Player, error)
	// GetActivity returns the most recent transaction-log entries, newest
	// first. msgType may be "FA", "WAIVER", "TRADED" or empty for all.
	GetActivity(ctx context.Context, leagueID, year, size int, msgType string) ([]model.ActivityEntry, error)
}

type client struct {
	url        string
	s2         string
	swid       string
	httpClient *http.Client
}

// New creates a client for the production ESPN API. The espn_s2 and SWID
// cookie values authenticate access to private leagues.
func New(s2, swid string) (Client, error) {
	c := &client{
		url:  ESPNURL,
		s2:   s2,
		swid: swid,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url, s2, swid string) Client {
	return &client{
		url:  url,
		s2:   s2,
		swid: swid,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
}

func leaguePath(leagueID, year int) string {
	return fmt.Sprintf("/apis/v3/games/ffl/seasons/%d/segments/0/leagues/%d", year, leagueID)
}

// get performs one authenticated request and decodes the JSON body into
// out. filter, when non-nil, is serialized into the X-Fantasy-Filter
// header the ESPN API uses for server-side filtering.
func (c *client) get(ctx context.Context, path string, query url.Values, filter any, out any) error {
	u := fmt.Sprintf("%s%s", c.url, path)
	if len(query) > 0 {
		u = fmt.Sprintf("%s?%s", u, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating espn http request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.s2})
	req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})

	if filter != nil {
		f, err := json.Marshal(filter)
		if err != nil {
			return fmt.Errorf("error building fantasy filter: %w", err)
		}
		req.Header.Set("X-Fantasy-Filter", string(f))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending espn http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrLeagueNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from espn: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from espn: %w", err)
	}
	return nil
}

func (c *client) getLeagueViews(ctx context.Context, leagueID, year int, filter any, views ...string) (*internal.LeagueResponse, error) {
	query := url.Values{}
	for _, v := range views {
		query.Add("view", v)
	}

	var resp internal.LeagueResponse
	if err := c.get(ctx, leaguePath(leagueID, year), query, filter, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// playerNames loads the id -> name map for the season. ESPN's draft and
// communication payloads reference players only by id.
func (c *client) playerNames(ctx context.Context, year int) (map[int]string, error) {
	query := url.Values{}
	query.Add("view", "players_wl")

	filter := map[string]any{
		"filterActive": map[string]any{"value": true},
	}

	var players []internal.Player
	path := fmt.Sprintf("/apis/v3/games/ffl/seasons/%d/players", year)
	if err := c.get(ctx, path, query, filter, &players); err != nil {
		return nil, fmt.Errorf("error loading player names: %w", err)
	}

	names := make(map[int]string, len(players))
	for _, p := range players {
		names[p.ID] = p.FullName
	}
	return names, nil
}
