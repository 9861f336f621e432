package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medguides/internal/auth"
	"medguides/internal/models"
)

// Profiles are provisioned by an administrator; there is no self-signup and
// no self-promotion path. Role changes happen only through this surface.

func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var users []models.Profile
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, users)
	}
}

func CreateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email     string  `json:"email"`
			Password  string  `json:"password"`
			FullName  *string `json:"full_name,omitempty"`
			Role      string  `json:"role"`
			Specialty *string `json:"specialty,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Email == "" || req.Password == "" {
			http.Error(w, "email and password required", http.StatusBadRequest)
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			http.Error(w, "hash error", http.StatusInternalServerError)
			return
		}
		p := models.Profile{
			Email:        req.Email,
			PasswordHash: hash,
			FullName:     req.FullName,
			Role:         models.ParseRole(req.Role),
			Specialty:    req.Specialty,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := db.Create(&p).Error; err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		lg.Infow("provisioned profile", "user_id", p.ID, "role", p.Role)
		respondJSON(w, map[string]any{"id": p.ID, "email": p.Email, "role": p.Role})
	}
}

func UpdateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			FullName  *string `json:"full_name"`
			Specialty *string `json:"specialty"`
			Role      *string `json:"role"`
			Password  *string `json:"password,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var p models.Profile
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if req.FullName != nil {
			p.FullName = req.FullName
		}
		if req.Specialty != nil {
			p.Specialty = req.Specialty
		}
		if req.Role != nil {
			role := models.Role(*req.Role)
			if !role.Valid() {
				http.Error(w, "unknown role", http.StatusBadRequest)
				return
			}
			p.Role = role
		}
		if req.Password != nil && *req.Password != "" {
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				http.Error(w, "hash error", http.StatusInternalServerError)
				return
			}
			p.PasswordHash = hash
		}
		p.UpdatedAt = time.Now()
		if err := db.Save(&p).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"updated": true})
	}
}

func DeleteUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.Profile{}, "id = ?", id).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"deleted": true})
	}
}
