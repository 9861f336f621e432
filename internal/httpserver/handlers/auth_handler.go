package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medguides/internal/auth"
	"medguides/internal/models"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var p models.Profile
		if err := db.First(&p, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error; err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if err := auth.CheckPassword(p.PasswordHash, req.Password); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, jti, expiresAt, err := auth.Sign(p.ID, p.Role)
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}
		sess := models.Session{JTI: jti, UserID: p.ID, ExpiresAt: expiresAt, CreatedAt: time.Now()}
		if err := db.Create(&sess).Error; err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
		lg.Infow("login", "user_id", p.ID, "role", p.Role)
		respondJSON(w, map[string]any{"token": tok})
	}
}

func Logout(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jti := auth.FromContext(r.Context()).JWTID
		now := time.Now()
		_ = db.Model(&models.Session{}).Where("jti = ?", jti).Update("revoked_at", &now).Error
		respondJSON(w, map[string]any{"logged_out": true})
	}
}

// ChangePassword sets a new credential for the caller. There is no
// current-password confirmation step on this surface.
func ChangePassword(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Password == "" {
			http.Error(w, "password required", http.StatusBadRequest)
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			http.Error(w, "hash error", http.StatusInternalServerError)
			return
		}
		uid := auth.Subject(r.Context())
		if err := db.Model(&models.Profile{}).Where("id = ?", uid).
			Updates(map[string]any{"password_hash": hash, "updated_at": time.Now()}).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		lg.Infow("password changed", "user_id", uid)
		respondJSON(w, map[string]any{"updated": true})
	}
}
