package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"medguides/internal/auth"
	"medguides/internal/guides"
)

// ListGuides returns guides visible to the caller's role, newest first. The
// role comes from a fresh profile lookup; a missing or unreadable profile
// degrades to viewer.
func ListGuides(svc *guides.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := svc.ResolveRole(r.Context(), auth.Subject(r.Context()))
		rows, err := svc.ListGuides(r.Context(), role)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, rows)
	}
}

// GetGuide serves the detail view for any authenticated role regardless of
// publish state. Misses are a terminal 404.
func GetGuide(svc *guides.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		detail, err := svc.GetGuide(r.Context(), auth.Subject(r.Context()), id)
		if errors.Is(err, guides.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, detail)
	}
}

// Dashboard returns the counts shown on the landing page.
func Dashboard(svc *guides.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guideCount, categoryCount, err := svc.DashboardCounts(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{
			"published_guides": guideCount,
			"categories":       categoryCount,
		})
	}
}
