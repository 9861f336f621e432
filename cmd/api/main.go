package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"medguides/internal/auth"
	"medguides/internal/config"
	"medguides/internal/guides"
	"medguides/internal/httpserver"
	"medguides/internal/logger"
	"medguides/internal/models"
	"medguides/internal/storage"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	cfg := config.FromEnv()

	if cfg.DatabaseURL == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		lg.Fatalw("JWT_SECRET is empty")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.Profile{}, &models.Category{}, &models.MedicalGuide{}, &models.AccessLog{}, &models.Session{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDefaultAdmin(db, lg)
	seedCategories(db)

	store, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		lg.Fatalw("object store init failed", "error", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureBucket(ctx); err != nil {
		lg.Fatalw("bucket check failed", "error", err)
	}

	svc := guides.NewService(db, store, lg)
	router := httpserver.NewRouter(db, svc, cfg, lg)
	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatal(err)
	}
}

func seedDefaultAdmin(db *gorm.DB, lg *zap.SugaredLogger) {
	var count int64
	db.Model(&models.Profile{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hash, _ := auth.HashPassword("changeme")
	p := models.Profile{
		Email:        strings.ToLower("admin@medguides.local"),
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&p).Error; err != nil {
		lg.Warnw("seed admin failed", "error", err)
		return
	}
	lg.Infow("seeded default admin", "email", p.Email)
}

func seedCategories(db *gorm.DB) {
	for _, name := range []string{"Procedimientos", "Protocolos", "Farmacología", "Urgencias"} {
		var c models.Category
		db.FirstOrCreate(&c, models.Category{Name: name})
	}
}
