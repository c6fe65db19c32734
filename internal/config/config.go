package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppEnv         string
	IsProduction   bool
	JwtSecret      string
	Issuer         string
	AccessTokenTTL time.Duration
	ServerPort     string
	APIPrefix      string
	CORSOrigins    []string

	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbPath     string

	AdminUsername string
	AdminPassword string
	AdminEmail    string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string

	SendgridAPIKey   string
	MailFrom         string
	MailFromName     string
	AdminNotifyEmail string

	ValkeyAddr  string
	CatalogPath string

	ServiceTypes []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppEnv = getEnv("APP_ENV", "development")
	IsProduction = AppEnv == "production"
	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "bootcamp")
	minutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}
	AccessTokenTTL = time.Duration(minutes) * time.Minute
	ServerPort = getEnv("SERVER_PORT", "8080")
	APIPrefix = getEnv("API_PREFIX", "/api/v1")
	CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:5173"))

	DbDriver = getEnv("DB_DRIVER", "postgres")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "bootcamp")
	DbPath = getEnv("DB_PATH", "bootcamp.db")

	AdminUsername = getEnv("ADMIN_USERNAME", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	AdminEmail = getEnv("ADMIN_EMAIL", "")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "testimonials")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "")

	SendgridAPIKey = getEnv("SENDGRID_API_KEY", "")
	MailFrom = getEnv("MAIL_FROM", "noreply@localhost")
	MailFromName = getEnv("MAIL_FROM_NAME", "Bootcamp")
	AdminNotifyEmail = getEnv("ADMIN_NOTIFY_EMAIL", "")

	ValkeyAddr = getEnv("VALKEY_ADDR", "")
	CatalogPath = getEnv("CATALOG_PATH", "")

	ServiceTypes = LoadCatalog(CatalogPath).ServiceTypes
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
