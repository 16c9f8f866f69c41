package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SubmissionRepository executes the dynamic per-kind INSERTs built from the
// schema registry. Table and column names come from registry entries that are
// validated at startup; only values travel as bind parameters.
type SubmissionRepository interface {
	// Insert writes one row. When returningID is set, the generated id is
	// requested back atomically as part of the same statement.
	Insert(ctx context.Context, db *gorm.DB, table string, columns []string, values []any, returningID bool) (int64, error)
}

type submissionRepository struct{}

func NewSubmissionRepository() SubmissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Insert(ctx context.Context, db *gorm.DB, table string, columns []string, values []any, returningID bool) (int64, error) {
	if len(columns) != len(values) {
		return 0, fmt.Errorf("insert into %s: %d columns but %d values", table, len(columns), len(values))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders)

	if returningID {
		var id int64
		result := db.WithContext(ctx).Raw(query+" RETURNING id", values...).Scan(&id)
		if result.Error != nil {
			return 0, result.Error
		}
		return id, nil
	}

	result := db.WithContext(ctx).Exec(query, values...)
	return 0, result.Error
}
