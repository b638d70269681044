package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

const progressColumns = `id, skill_id, name, description, criteria, point_value, order_index, created_at, updated_at`

func (r *SQLiteProgressRepo) Create(ctx context.Context, p *domain.Progress) error {
	query := `INSERT INTO progress_points (` + progressColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.SkillID,
		p.Name,
		p.Description,
		p.Criteria,
		p.PointValue,
		p.Order,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting progress point: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) GetByID(ctx context.Context, id string) (*domain.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_points WHERE id = ?`
	p, err := r.scanProgress(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "progress point", id)
	}
	return p, nil
}

func (r *SQLiteProgressRepo) ListBySkill(ctx context.Context, skillID string) ([]*domain.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_points WHERE skill_id = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, skillID)
	if err != nil {
		return nil, fmt.Errorf("listing progress points: %w", err)
	}
	defer rows.Close()

	var points []*domain.Progress
	for rows.Next() {
		p, err := r.scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress points: %w", err)
	}
	return points, nil
}

func (r *SQLiteProgressRepo) NextOrder(ctx context.Context, skillID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(order_index), 0) + 1 FROM progress_points WHERE skill_id = ?`, skillID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next progress order: %w", err)
	}
	return next, nil
}

func (r *SQLiteProgressRepo) Update(ctx context.Context, p *domain.Progress) error {
	query := `UPDATE progress_points SET skill_id = ?, name = ?, description = ?, criteria = ?,
		point_value = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.SkillID,
		p.Name,
		p.Description,
		p.Criteria,
		p.PointValue,
		p.Order,
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating progress point: %w", err)
	}
	return requireAffected(res, "progress point", p.ID)
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress_points WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting progress point: %w", err)
	}
	return requireAffected(res, "progress point", id)
}

func (r *SQLiteProgressRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM progress_points`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting progress points: %w", err)
	}
	return n, nil
}

func (r *SQLiteProgressRepo) scanProgress(row rowScanner) (*domain.Progress, error) {
	var p domain.Progress
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.SkillID, &p.Name, &p.Description, &p.Criteria, &p.PointValue, &p.Order,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	if p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
