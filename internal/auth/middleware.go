package auth

import (
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"medguides/internal/models"
)

// SessionRequired resolves the caller's session before any data access. On
// any failure the request is redirected to the login route; protected pages
// never render an in-page auth error.
func SessionRequired(db *gorm.DB, loginRoute string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Redirect(w, r, loginRoute, http.StatusFound)
				return
			}
			claims, err := Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				http.Redirect(w, r, loginRoute, http.StatusFound)
				return
			}
			var sess models.Session
			if claims.JWTID == "" || db.First(&sess, "jti = ?", claims.JWTID).Error != nil {
				http.Redirect(w, r, loginRoute, http.StatusFound)
				return
			}
			if sess.RevokedAt != nil || time.Now().After(sess.ExpiresAt) {
				http.Redirect(w, r, loginRoute, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireUploader gates routes reserved for roles that may create guides.
func RequireUploader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !FromContext(r.Context()).Role.CanUpload() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the identity-provisioning surface.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if FromContext(r.Context()).Role != models.RoleAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
