// internal/httpserver/routes_stats.go
//
// Win stats, gallery and per-win rewards.
//   - GET  /stats             → caller's WinStats
//   - POST /stats/reset       → zero the caller's counters
//   - GET  /gallery           → media collection with unlock flags
//   - GET  /rewards/{gameId}  → background reward for a won game

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/sachgames/internal/media"
	"github.com/robalobadob/sachgames/internal/stats"
)

func (s *Server) mountStats(r chi.Router) {
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Stats.LoadStats(r.Context(), s.Auth.Owner(w, r)))
	})
	r.Post("/stats/reset", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Stats.ResetStats(r.Context(), s.Auth.Owner(w, r)))
	})
	r.Get("/gallery", s.handleGallery)
	r.Get("/rewards/{gameId}", s.handleReward)
}

type galleryRes struct {
	Stats    stats.WinStats       `json:"stats"`
	Images   []media.GalleryEntry `json:"images"`
	Videos   []media.GalleryEntry `json:"videos"`
	Unlocked int                  `json:"unlocked"`
	Total    int                  `json:"total"`
	Fallback bool                 `json:"fallback"`
}

// handleGallery loads the caller's stats and the media collection. Item i is
// unlocked iff i < totalWins; locked tiles carry no URL.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	ws := s.Stats.LoadStats(r.Context(), s.Auth.Owner(w, r))
	col := s.Collector.Collect(r.Context())

	images, unlocked := lockGallery(col.Images, ws.TotalWins)
	videos, _ := lockGallery(col.Videos, ws.TotalWins)
	writeJSON(w, http.StatusOK, galleryRes{
		Stats:    ws,
		Images:   images,
		Videos:   videos,
		Unlocked: unlocked,
		Total:    len(images),
		Fallback: col.Fallback,
	})
}

func lockGallery(items []media.Item, wins int) ([]media.GalleryEntry, int) {
	out := media.Gallery(items, wins)
	unlocked := 0
	for i := range out {
		if out[i].Unlocked {
			unlocked++
			continue
		}
		out[i].Item = media.Item{Kind: out[i].Item.Kind}
	}
	return out, unlocked
}

func (s *Server) handleReward(w http.ResponseWriter, r *http.Request) {
	if s.Rewards == nil {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	rw, ok := s.Rewards.Get(chi.URLParam(r, "gameId"))
	if !ok {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, rw)
}
