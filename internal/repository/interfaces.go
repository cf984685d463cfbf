package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campuscompass/api-server/internal/models"
)

// ErrCollegeNotFound is returned when a lookup matches no record
var ErrCollegeNotFound = errors.New("college not found")

// CollegeRepository defines the interface for college data access.
// The API surface only reads; Create and BulkInsert exist for the
// out-of-band seeding tool.
type CollegeRepository interface {
	ListAll(ctx context.Context) ([]models.College, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, college *models.College) error
	BulkInsert(ctx context.Context, colleges []models.College) error
}

// dbExecutor abstracts *sql.DB and *sql.Tx for repository implementations
type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
