package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createContentsTable creates the contents table with all indexes.
func createContentsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_contents",
		Migrate: func(tx *gorm.DB) error {
			// Create table
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS contents (
					id BIGINT NOT NULL,
					content_type VARCHAR(20) NOT NULL,
					title VARCHAR(500) NOT NULL,
					tags TEXT[],

					-- Popularity counters
					clicks BIGINT NOT NULL DEFAULT 0,
					likes BIGINT NOT NULL DEFAULT 0,

					-- Timestamps; created_at is the ordering key
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					-- Ids are unique per content kind, not globally
					CONSTRAINT pk_contents PRIMARY KEY (id, content_type)
				);
			`).Error
			if err != nil {
				return err
			}

			// Create indexes matching the list, hot and search scans
			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_contents_type_created_at ON contents(content_type, created_at DESC, id ASC);",
				"CREATE INDEX IF NOT EXISTS idx_contents_type_clicks ON contents(content_type, clicks DESC, id ASC);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS contents;").Error
		},
	}
}
