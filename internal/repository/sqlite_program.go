package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo using a SQLite database.
type SQLiteProgramRepo struct {
	db db.DBTX
}

// NewSQLiteProgramRepo creates a new SQLiteProgramRepo.
func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

const programColumns = `id, name, logo, instructors, student_count, created_at, updated_at`

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	instructors, err := encodeStrings(p.Instructors)
	if err != nil {
		return fmt.Errorf("encoding instructors: %w", err)
	}
	query := `INSERT INTO programs (` + programColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Logo,
		instructors,
		p.StudentCount,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id = ?`
	p, err := r.scanProgram(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "program", id)
	}
	return p, nil
}

func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*domain.Program
	for rows.Next() {
		p, err := r.scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program row: %w", err)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return programs, nil
}

func (r *SQLiteProgramRepo) Update(ctx context.Context, p *domain.Program) error {
	instructors, err := encodeStrings(p.Instructors)
	if err != nil {
		return fmt.Errorf("encoding instructors: %w", err)
	}
	query := `UPDATE programs SET name = ?, logo = ?, instructors = ?, student_count = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Logo,
		instructors,
		p.StudentCount,
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating program: %w", err)
	}
	return requireAffected(res, "program", p.ID)
}

// Delete removes the program; its levels, skills, progress points and maps
// go with it through the schema's cascades.
func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return requireAffected(res, "program", id)
}

func (r *SQLiteProgramRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM programs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting programs: %w", err)
	}
	return n, nil
}

func (r *SQLiteProgramRepo) scanProgram(row rowScanner) (*domain.Program, error) {
	var p domain.Program
	var instructors, createdAtStr, updatedAtStr string

	if err := row.Scan(&p.ID, &p.Name, &p.Logo, &instructors, &p.StudentCount, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	var err error
	if p.Instructors, err = decodeStrings(instructors); err != nil {
		return nil, fmt.Errorf("decoding instructors: %w", err)
	}
	if p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
