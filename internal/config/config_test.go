package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/linskybing/bootcamp-go/internal/domain/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Defaults(t *testing.T) {
	cat := LoadCatalog("")
	assert.Equal(t, quote.DefaultServiceTypes, cat.ServiceTypes)

	cat = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, quote.DefaultServiceTypes, cat.ServiceTypes)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service_types:\n  - Web\n  - Data\n"), 0o644))

	cat := LoadCatalog(path)
	assert.Equal(t, []string{"Web", "Data"}, cat.ServiceTypes)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("APP_ENV", "production")

	LoadConfig()

	assert.Equal(t, 45*time.Minute, AccessTokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, CORSOrigins)
	assert.True(t, IsProduction)
	assert.Equal(t, "/api/v1", APIPrefix)
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")
	LoadConfig()
	assert.Equal(t, 30*time.Minute, AccessTokenTTL)
}
