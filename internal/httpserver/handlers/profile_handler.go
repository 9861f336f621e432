package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medguides/internal/auth"
	"medguides/internal/models"
)

func Me(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := auth.Subject(r.Context())
		var p models.Profile
		if err := db.First(&p, "id = ?", sub).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, p)
	}
}

// UpdateMe edits the caller's display attributes. Email, role and created_at
// are read-only from this surface.
func UpdateMe(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FullName  *string `json:"full_name"`
			Specialty *string `json:"specialty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sub := auth.Subject(r.Context())
		var p models.Profile
		if err := db.First(&p, "id = ?", sub).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if req.FullName != nil {
			p.FullName = req.FullName
		}
		if req.Specialty != nil {
			p.Specialty = req.Specialty
		}
		p.UpdatedAt = time.Now()
		if err := db.Save(&p).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, p)
	}
}
