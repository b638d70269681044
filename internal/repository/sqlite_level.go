package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
)

// SQLiteLevelRepo implements LevelRepo using a SQLite database.
type SQLiteLevelRepo struct {
	db db.DBTX
}

// NewSQLiteLevelRepo creates a new SQLiteLevelRepo.
func NewSQLiteLevelRepo(conn db.DBTX) *SQLiteLevelRepo {
	return &SQLiteLevelRepo{db: conn}
}

const levelColumns = `id, program_id, name, description, cover, order_index, created_at, updated_at`

func (r *SQLiteLevelRepo) Create(ctx context.Context, l *domain.Level) error {
	query := `INSERT INTO levels (` + levelColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.ProgramID,
		l.Name,
		l.Description,
		l.Cover,
		l.Order,
		formatTime(l.CreatedAt),
		formatTime(l.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting level: %w", err)
	}
	return nil
}

func (r *SQLiteLevelRepo) GetByID(ctx context.Context, id string) (*domain.Level, error) {
	query := `SELECT ` + levelColumns + ` FROM levels WHERE id = ?`
	l, err := r.scanLevel(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "level", id)
	}
	return l, nil
}

// ListByProgram returns the program's levels by order; ties keep insertion order.
func (r *SQLiteLevelRepo) ListByProgram(ctx context.Context, programID string) ([]*domain.Level, error) {
	query := `SELECT ` + levelColumns + ` FROM levels WHERE program_id = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("listing levels: %w", err)
	}
	defer rows.Close()

	var levels []*domain.Level
	for rows.Next() {
		l, err := r.scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning level row: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating levels: %w", err)
	}
	return levels, nil
}

// NextOrder returns one past the highest order among the program's levels.
func (r *SQLiteLevelRepo) NextOrder(ctx context.Context, programID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(order_index), 0) + 1 FROM levels WHERE program_id = ?`, programID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next level order: %w", err)
	}
	return next, nil
}

func (r *SQLiteLevelRepo) Update(ctx context.Context, l *domain.Level) error {
	query := `UPDATE levels SET program_id = ?, name = ?, description = ?, cover = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.ProgramID,
		l.Name,
		l.Description,
		l.Cover,
		l.Order,
		formatTime(l.UpdatedAt),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating level: %w", err)
	}
	return requireAffected(res, "level", l.ID)
}

// Touch bumps updated_at, used when the level's map is replaced.
func (r *SQLiteLevelRepo) Touch(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE levels SET updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("touching level: %w", err)
	}
	return requireAffected(res, "level", id)
}

func (r *SQLiteLevelRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM levels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting level: %w", err)
	}
	return requireAffected(res, "level", id)
}

func (r *SQLiteLevelRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM levels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting levels: %w", err)
	}
	return n, nil
}

func (r *SQLiteLevelRepo) scanLevel(row rowScanner) (*domain.Level, error) {
	var l domain.Level
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&l.ID, &l.ProgramID, &l.Name, &l.Description, &l.Cover, &l.Order,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	if l.CreatedAt, l.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &l, nil
}
