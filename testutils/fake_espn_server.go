package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

// The league id all of the fixture data describes.
const FakeLeagueID = 111222

type FakeESPNServer struct {
	s *httptest.Server
}

func NewFakeESPNServer() *FakeESPNServer {
	r := chi.NewRouter()
	r.Route("/apis/v3/games/ffl/seasons/{year}", func(r chi.Router) {
		r.Get("/players", playersHandler)
		r.Route("/segments/0/leagues/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/communication/", communicationHandler)
		})
	})

	return &FakeESPNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

// leagueHandler picks a fixture based on the requested views, the same
// way the real API shapes its response.
func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if chi.URLParam(r, "leagueID") != fmt.Sprintf("%d", FakeLeagueID) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"messages":["You are not authorized to view this League."]}`))
		return
	}

	views := r.URL.Query()["view"]
	switch {
	case hasView(views, "mDraftDetail"):
		serveFile(w, "draft.json")
	case hasView(views, "kona_player_info"):
		if strings.Contains(r.Header.Get("X-Fantasy-Filter"), "filterSlotIds") {
			serveFile(w, "free_agents_qb.json")
		} else {
			serveFile(w, "free_agents.json")
		}
	case hasView(views, "mMatchupScore"):
		serveFile(w, "matchups.json")
	default:
		serveFile(w, "league.json")
	}
}

func communicationHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if chi.URLParam(r, "leagueID") != fmt.Sprintf("%d", FakeLeagueID) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, "activity.json")
}

func playersHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	serveFile(w, "players.json")
}

func authorized(r *http.Request) bool {
	s2, err := r.Cookie("espn_s2")
	if err != nil || s2.Value == "" {
		return false
	}
	swid, err := r.Cookie("SWID")
	return err == nil && swid.Value != ""
}

func hasView(views []string, want string) bool {
	for _, v := range views {
		if v == want {
			return true
		}
	}
	return false
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		log.Printf("error reading espndata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
