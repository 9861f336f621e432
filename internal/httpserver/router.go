package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medguides/internal/auth"
	"medguides/internal/config"
	"medguides/internal/guides"
	"medguides/internal/httpserver/handlers"
)

func NewRouter(db *gorm.DB, svc *guides.Service, cfg config.Config, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Post("/v1/auth/login", handlers.Login(db, lg))
	r.Get(cfg.LoginRoute, func(w http.ResponseWriter, r *http.Request) {
		// Fixed landing route for unauthenticated redirects.
		http.Error(w, "sign in via POST /v1/auth/login", http.StatusUnauthorized)
	})

	r.Group(func(protected chi.Router) {
		protected.Use(auth.SessionRequired(db, cfg.LoginRoute))

		protected.Get("/v1/me", handlers.Me(db, lg))
		protected.Patch("/v1/me", handlers.UpdateMe(db, lg))
		protected.Post("/v1/auth/logout", handlers.Logout(db))
		protected.Post("/v1/auth/password", handlers.ChangePassword(db, lg))

		protected.Get("/v1/dashboard", handlers.Dashboard(svc, lg))
		protected.Get("/v1/categories", handlers.ListCategories(svc, lg))
		protected.Get("/v1/guides", handlers.ListGuides(svc, lg))
		protected.Get("/v1/guides/{id}", handlers.GetGuide(svc, lg))
		protected.Get("/v1/logs", handlers.MyAccessLogs(db, lg))

		protected.Group(func(uploader chi.Router) {
			uploader.Use(auth.RequireUploader)
			uploader.Post("/v1/guides", handlers.UploadGuide(svc, lg))
		})

		protected.Group(func(admin chi.Router) {
			admin.Use(auth.RequireAdmin)
			admin.Get("/v1/admin/users", handlers.ListUsers(db, lg))
			admin.Post("/v1/admin/users", handlers.CreateUser(db, lg))
			admin.Patch("/v1/admin/users/{id}", handlers.UpdateUser(db, lg))
			admin.Delete("/v1/admin/users/{id}", handlers.DeleteUser(db, lg))
			admin.Post("/v1/categories", handlers.CreateCategory(db, lg))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
