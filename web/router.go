package web

import (
	"time"

	"github.com/danieloyasodun/fantasy-gm/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped. The upstream call inherits it.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	// The :\d+ patterns reject non-integer ids before any handler runs.
	r.Route("/league/{leagueID:\\d+}", func(r chi.Router) {
		r.Get("/", leagueTeamsHandler(ctrl, render))
		r.Get("/draft", draftHandler(ctrl, render))
		r.Get("/settings", settingsHandler(ctrl, render))
		r.Get("/power-rankings", powerRankingsHandler(ctrl, render))
		r.Get("/scoreboard", scoreboardHandler(ctrl, render))
		r.Get("/box-scores", boxScoresHandler(ctrl, render))
		r.Get("/activity", activityHandler(ctrl, render))
		r.Get("/free-agents", freeAgentsHandler(ctrl, render))
		r.Get("/top_scorer", topScorerHandler(ctrl, render))
		r.Get("/lowest_scorer", lowestScorerHandler(ctrl, render))
		r.Get("/point_order", pointOrderHandler(ctrl, render))

		r.Route("/team/{teamID:\\d+}", func(r chi.Router) {
			r.Get("/", teamHandler(ctrl, render))
			r.Get("/detailed", teamDetailHandler(ctrl, render))
			r.Get("/players", teamPlayersHandler(ctrl, render))
			r.Get("/players/detailed", teamPlayersDetailHandler(ctrl, render))
		})
	})

	return r
}
