package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/bootcamp-go/internal/api/middleware"
	"github.com/linskybing/bootcamp-go/internal/api/routes"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/config"
	"github.com/linskybing/bootcamp-go/internal/config/db"
	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/media"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"github.com/linskybing/bootcamp-go/internal/tokenstore"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin-password"
	AdminEmail    = "admin@example.com"
)

// Env is a fully wired API over a private in-memory database.
type Env struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Repos    *repository.Repos
	Services *application.Services
	Mail     *mail.Recorder
	Media    *media.MemoryStore
	Tokens   *tokenstore.Memory
}

// SetupRouter wires the real routes, services and repositories over sqlite
// and seeds one administrator.
func SetupRouter(t testing.TB) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	config.Issuer = "bootcamp-test"
	if config.APIPrefix == "" {
		config.APIPrefix = "/api/v1"
	}

	gormDB := OpenSQLite(t)

	env := &Env{
		DB:     gormDB,
		Repos:  repository.NewRepositories(gormDB),
		Mail:   &mail.Recorder{},
		Media:  media.NewMemoryStore("https://media.test"),
		Tokens: tokenstore.NewMemory(),
	}
	middleware.Init(env.Tokens)

	env.Services = application.New(env.Repos, application.Deps{
		Mailer:       env.Mail,
		Media:        env.Media,
		ServiceTypes: quote.DefaultServiceTypes,
		AdminEmail:   AdminEmail,
		TokenTTL:     30 * time.Minute,
	})
	require.NoError(t, env.Services.User.SeedAdmin(AdminUsername, AdminPassword, AdminEmail))

	env.Router = gin.New()
	routes.RegisterRoutes(env.Router, env.Repos, env.Services)
	return env
}

// OpenSQLite returns a migrated in-memory database closed with the test.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return gormDB
}
