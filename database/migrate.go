package database

import (
	"fmt"

	"projectmart_backend/internal/forms"
	"projectmart_backend/internal/logger"
	"projectmart_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date: gorm-managed tables first, then one
// CREATE TABLE IF NOT EXISTS per registered submission kind. Existing tables
// are never altered or dropped.
func Migrate(db *gorm.DB, registry *forms.Registry) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}

	for _, kind := range registry.Kinds() {
		entry, _ := registry.Resolve(kind)
		if err := db.Exec(entry.CreateTableSQL()).Error; err != nil {
			return fmt.Errorf("create table %s: %w", entry.Table, err)
		}
		logger.Debug("submission table ready", "kind", kind, "table", entry.Table)
	}

	logger.Info("database migration complete", "tables", len(registry.Kinds())+1)
	return nil
}
