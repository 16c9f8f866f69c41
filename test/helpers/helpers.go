package helpers

import (
	"context"
	"net/http"
	"os"
	"testing"

	"projectmart_backend/database"
	"projectmart_backend/internal/app"
	"projectmart_backend/internal/config"
	"projectmart_backend/internal/logger"
	"projectmart_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupTestApp builds a full router against the database from DATABASE_URL.
// Tests are skipped when no database is configured.
func SetupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	gin.SetMode(gin.TestMode)
	logger.Init("development")

	config.LoadConfig()
	cfg := config.GetConfig()
	cfg.Storage.BasePath = t.TempDir()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	require.NoError(t, err)

	registry, err := app.BuildRegistry()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, registry))

	container, err := app.BuildServices(cfg, registry)
	require.NoError(t, err)

	return app.SetupRouter(cfg, db, registry, container), db
}

// BeginTx opens a transaction that is rolled back when the test finishes, so
// integration tests leave no rows behind.
func BeginTx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

// WithTx binds the request to the test transaction; DBMiddleware prefers it
// over the shared pool.
func WithTx(req *http.Request, tx *gorm.DB) *http.Request {
	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	return req.WithContext(ctx)
}
