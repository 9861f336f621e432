package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medguides/internal/auth"
	"medguides/internal/models"
)

// MyAccessLogs returns recent guide-view events. Regular users see their own
// history; administrators can pass ?all=1 to see recent events for everyone.
func MyAccessLogs(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := r.URL.Query().Get("all") == "1"
		var logs []models.AccessLog
		if all && auth.FromContext(r.Context()).Role == models.RoleAdmin {
			_ = db.Order("created_at desc").Limit(200).Find(&logs).Error
		} else {
			uid := auth.Subject(r.Context())
			_ = db.Where("user_id = ?", uid).Order("created_at desc").Limit(200).Find(&logs).Error
		}
		respondJSON(w, logs)
	}
}
