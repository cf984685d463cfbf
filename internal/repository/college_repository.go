package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campuscompass/api-server/internal/models"
)

// collegeRepository implements CollegeRepository on SQLite
type collegeRepository struct {
	db *sql.DB
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *sql.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

// ListAll retrieves every college, ordered by id. The ascending id order
// keeps recommendation tie-breaking deterministic.
func (r *collegeRepository) ListAll(ctx context.Context) ([]models.College, error) {
	query := `SELECT id, name, location, fees, branches FROM colleges ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query colleges: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan college: %w", err)
		}
		colleges = append(colleges, *college)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colleges: %w", err)
	}

	return colleges, nil
}

// GetByID retrieves a college by its identifier
func (r *collegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := `SELECT id, name, location, fees, branches FROM colleges WHERE id = ?`

	college := &models.College{}
	var fees sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&college.ID, &college.Name, &college.Location, &fees, &college.Branches,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("failed to get college: %w", err)
	}

	if fees.Valid {
		college.Fees = &fees.Int64
	}

	return college, nil
}

// Count returns the number of persisted colleges
func (r *collegeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM colleges`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count colleges: %w", err)
	}
	return count, nil
}

// Create inserts a single college and backfills its assigned id
func (r *collegeRepository) Create(ctx context.Context, college *models.College) error {
	return insertCollege(ctx, r.db, college)
}

// BulkInsert inserts colleges in one transaction, keeping their input order
func (r *collegeRepository) BulkInsert(ctx context.Context, colleges []models.College) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for i := range colleges {
		if err := insertCollege(ctx, tx, &colleges[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk insert: %w", err)
	}

	return nil
}

func insertCollege(ctx context.Context, exec dbExecutor, college *models.College) error {
	query := `INSERT INTO colleges (name, location, fees, branches) VALUES (?, ?, ?, ?)`

	result, err := exec.ExecContext(ctx, query,
		college.Name, college.Location, college.Fees, college.Branches,
	)
	if err != nil {
		return fmt.Errorf("failed to insert college %q: %w", college.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	college.ID = id

	return nil
}

func scanCollege(rows *sql.Rows) (*models.College, error) {
	college := &models.College{}
	var fees sql.NullInt64

	if err := rows.Scan(&college.ID, &college.Name, &college.Location, &fees, &college.Branches); err != nil {
		return nil, err
	}

	if fees.Valid {
		college.Fees = &fees.Int64
	}

	return college, nil
}
