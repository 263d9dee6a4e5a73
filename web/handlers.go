package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danieloyasodun/fantasy-gm/controller"
	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func renderError(render *render.Render, w http.ResponseWriter, status int, detail string) {
	render.JSON(w, status, errorResponse{Status: status, Detail: detail})
}

// handleError maps a controller error to the response: a missing league,
// team or week is a 404, everything else surfaces as a generic 500.
func handleError(render *render.Render, w http.ResponseWriter, err error) {
	if errors.Is(err, espn.ErrLeagueNotFound) ||
		errors.Is(err, controller.ErrTeamNotFound) ||
		errors.Is(err, controller.ErrWeekNotFound) {
		renderError(render, w, http.StatusNotFound, err.Error())
		return
	}
	renderError(render, w, http.StatusInternalServerError, err.Error())
}

// The route patterns guarantee these parse, but a bad route change should
// fail loudly rather than serve league 0.
func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %v", name, err)
	}
	return v, nil
}

// yearParam returns 0 when the request leaves the season unspecified.
func yearParam(r *http.Request) (int, error) {
	y := r.URL.Query().Get("year")
	if y == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, fmt.Errorf("year must be an integer, got: %s", y)
	}
	return year, nil
}

func weekParam(r *http.Request) (int, error) {
	w := r.URL.Query().Get("week")
	if w == "" {
		return 0, errors.New("week parameter is required")
	}
	week, err := strconv.Atoi(w)
	if err != nil || week < 1 {
		return 0, fmt.Errorf("week must be a positive integer, got: %s", w)
	}
	return week, nil
}

// positionParam returns "" when absent. A position that doesn't parse is
// a client error, rejected here before any upstream call.
func positionParam(r *http.Request) (string, error) {
	p := r.URL.Query().Get("position")
	if p == "" {
		return "", nil
	}
	if model.ParsePosition(p) == model.POS_UNKNOWN {
		return "", fmt.Errorf("unknown position: %s", p)
	}
	return p, nil
}

// sizeParam returns 0 when absent so the controller applies its default.
func sizeParam(r *http.Request) (int, error) {
	s := r.URL.Query().Get("size")
	if s == "" {
		return 0, nil
	}
	size, err := strconv.Atoi(s)
	if err != nil || size < 1 {
		return 0, fmt.Errorf("size must be a positive integer, got: %s", s)
	}
	return size, nil
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"message": "Fantasy GM backend is running"})
	}
}

func leagueTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		teams, err := ctrl.GetTeams(r.Context(), id, 0)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func teamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		teamID, err := intParam(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		team, err := ctrl.GetTeam(r.Context(), leagueID, teamID, 0)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func teamDetailHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		teamID, err := intParam(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		year, err := yearParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		team, err := ctrl.GetTeamDetail(r.Context(), leagueID, teamID, year)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func teamPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		teamID, err := intParam(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		players, err := ctrl.GetTeamPlayers(r.Context(), leagueID, teamID, 0)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func teamPlayersDetailHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		teamID, err := intParam(r, "teamID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		year, err := yearParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		players, err := ctrl.GetTeamPlayersDetail(r.Context(), leagueID, teamID, year)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func draftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		picks, err := ctrl.GetDraft(r.Context(), id, 0)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, picks)
	}
}

func settingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		settings, err := ctrl.GetSettings(r.Context(), id, 0)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, settings)
	}
}

func powerRankingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		week, err := weekParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		rankings, err := ctrl.GetPowerRankings(r.Context(), id, 0, week)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, rankings)
	}
}

func scoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		week, err := weekParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		scores, err := ctrl.GetScoreboard(r.Context(), id, 0, week)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, scores)
	}
}

func boxScoresHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		week, err := weekParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		boxes, err := ctrl.GetBoxScores(r.Context(), id, 0, week)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, boxes)
	}
}

func activityHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		size, err := sizeParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		msgType := r.URL.Query().Get("msg_type")

		activity, err := ctrl.GetActivity(r.Context(), id, 0, size, msgType)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, activity)
	}
}

func freeAgentsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		size, err := sizeParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		position, err := positionParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		agents, err := ctrl.GetFreeAgents(r.Context(), id, 0, size, position)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, agents)
	}
}

func topScorerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		year, err := yearParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		scorer, err := ctrl.GetTopScorer(r.Context(), id, year)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, scorer)
	}
}

func lowestScorerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		year, err := yearParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		scorer, err := ctrl.GetLowestScorer(r.Context(), id, year)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, scorer)
	}
}

func pointOrderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "leagueID")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		year, err := yearParam(r)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		order, err := ctrl.GetPointOrder(r.Context(), id, year)
		if err != nil {
			handleError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, order)
	}
}
