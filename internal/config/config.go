package config

import "os"

// Config carries everything read from the environment at startup.
type Config struct {
	HTTPPort    string
	DatabaseURL string
	LoginRoute  string

	// JWTSecret is validated at startup; signing code reads it from the
	// environment on use.
	JWTSecret string

	Minio MinioConfig
}

// MinioConfig configures the object store backing guide documents.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func FromEnv() Config {
	return Config{
		HTTPPort:    getenv("HTTP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LoginRoute:  getenv("LOGIN_ROUTE", "/login"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenv("MINIO_BUCKET", "medical-guides"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
