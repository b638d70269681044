package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
)

// SQLiteSkillRepo implements SkillRepo using a SQLite database.
type SQLiteSkillRepo struct {
	db db.DBTX
}

// NewSQLiteSkillRepo creates a new SQLiteSkillRepo.
func NewSQLiteSkillRepo(conn db.DBTX) *SQLiteSkillRepo {
	return &SQLiteSkillRepo{db: conn}
}

const skillColumns = `id, level_id, name, description, video_url, animation_url,
	instructor_description, instructor_video_url, order_index, created_at, updated_at`

func (r *SQLiteSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (` + skillColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.LevelID,
		s.Name,
		s.Description,
		s.VideoURL,
		s.AnimationURL,
		s.InstructorDescription,
		s.InstructorVideoURL,
		s.Order,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting skill: %w", err)
	}
	return nil
}

func (r *SQLiteSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = ?`
	s, err := r.scanSkill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "skill", id)
	}
	return s, nil
}

func (r *SQLiteSkillRepo) ListByLevel(ctx context.Context, levelID string) ([]*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE level_id = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, levelID)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	var skills []*domain.Skill
	for rows.Next() {
		s, err := r.scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skills: %w", err)
	}
	return skills, nil
}

// ListSummariesByLevel returns the level's skills in order, each with the
// number of progress points it holds.
func (r *SQLiteSkillRepo) ListSummariesByLevel(ctx context.Context, levelID string) ([]domain.SkillSummary, error) {
	query := `SELECT s.id, s.name, COUNT(p.id)
		FROM skills s
		LEFT JOIN progress_points p ON p.skill_id = s.id
		WHERE s.level_id = ?
		GROUP BY s.id
		ORDER BY s.order_index, s.rowid`
	rows, err := r.db.QueryContext(ctx, query, levelID)
	if err != nil {
		return nil, fmt.Errorf("listing skill summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.SkillSummary
	for rows.Next() {
		var s domain.SkillSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.ProgressCount); err != nil {
			return nil, fmt.Errorf("scanning skill summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill summaries: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteSkillRepo) NextOrder(ctx context.Context, levelID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(order_index), 0) + 1 FROM skills WHERE level_id = ?`, levelID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next skill order: %w", err)
	}
	return next, nil
}

func (r *SQLiteSkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `UPDATE skills SET level_id = ?, name = ?, description = ?, video_url = ?, animation_url = ?,
		instructor_description = ?, instructor_video_url = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.LevelID,
		s.Name,
		s.Description,
		s.VideoURL,
		s.AnimationURL,
		s.InstructorDescription,
		s.InstructorVideoURL,
		s.Order,
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating skill: %w", err)
	}
	return requireAffected(res, "skill", s.ID)
}

// Delete removes the skill with its progress points and any map nodes
// placing it.
func (r *SQLiteSkillRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting skill: %w", err)
	}
	return requireAffected(res, "skill", id)
}

func (r *SQLiteSkillRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting skills: %w", err)
	}
	return n, nil
}

func (r *SQLiteSkillRepo) scanSkill(row rowScanner) (*domain.Skill, error) {
	var s domain.Skill
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.LevelID, &s.Name, &s.Description, &s.VideoURL, &s.AnimationURL,
		&s.InstructorDescription, &s.InstructorVideoURL, &s.Order,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	if s.CreatedAt, s.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}
