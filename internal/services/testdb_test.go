package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"picnicapi/server/internal/database"
	"picnicapi/server/internal/models"
)

// newTestDB открывает отдельную SQLite базу в памяти для каждого теста
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: живет в пределах одного соединения
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.ClosePostgres(db) })

	require.NoError(t, models.AutoMigrate(db))
	return db
}
