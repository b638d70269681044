package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
)

// SQLiteLevelMapRepo implements LevelMapRepo using a SQLite database.
// Nodes and connections keep the order they were saved in via a position
// column; Get returns them in that saved order.
type SQLiteLevelMapRepo struct {
	db db.DBTX
}

// NewSQLiteLevelMapRepo creates a new SQLiteLevelMapRepo.
func NewSQLiteLevelMapRepo(conn db.DBTX) *SQLiteLevelMapRepo {
	return &SQLiteLevelMapRepo{db: conn}
}

func (r *SQLiteLevelMapRepo) Get(ctx context.Context, levelID string) (*domain.LevelMap, error) {
	var savedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT saved_at FROM level_maps WHERE level_id = ?`, levelID,
	).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading level map: %w", err)
	}

	m := &domain.LevelMap{
		Nodes:       []domain.MapNode{},
		Connections: []domain.Connection{},
	}
	if m.Nodes, err = r.listNodes(ctx, levelID); err != nil {
		return nil, err
	}
	if m.Connections, err = r.listConnections(ctx, levelID); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteLevelMapRepo) listNodes(ctx context.Context, levelID string) ([]domain.MapNode, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, skill_id, x, y, width, height FROM map_nodes WHERE level_id = ? ORDER BY position`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing map nodes: %w", err)
	}
	defer rows.Close()

	nodes := []domain.MapNode{}
	for rows.Next() {
		var n domain.MapNode
		if err := rows.Scan(&n.ID, &n.SkillID, &n.X, &n.Y, &n.Width, &n.Height); err != nil {
			return nil, fmt.Errorf("scanning map node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating map nodes: %w", err)
	}
	return nodes, nil
}

func (r *SQLiteLevelMapRepo) listConnections(ctx context.Context, levelID string) ([]domain.Connection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_id, target_id FROM map_connections WHERE level_id = ? ORDER BY position`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing map connections: %w", err)
	}
	defer rows.Close()

	conns := []domain.Connection{}
	for rows.Next() {
		var c domain.Connection
		if err := rows.Scan(&c.ID, &c.SourceID, &c.TargetID); err != nil {
			return nil, fmt.Errorf("scanning map connection: %w", err)
		}
		conns = append(conns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating map connections: %w", err)
	}
	return conns, nil
}

// Replace overwrites the level's map with m. The old rows are dropped via
// the level_maps cascade before the new ones are inserted.
func (r *SQLiteLevelMapRepo) Replace(ctx context.Context, levelID string, m domain.LevelMap) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM level_maps WHERE level_id = ?`, levelID); err != nil {
		return fmt.Errorf("clearing level map: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO level_maps (level_id, saved_at) VALUES (?, ?)`, levelID, nowUTC(),
	); err != nil {
		return fmt.Errorf("inserting level map: %w", err)
	}

	for i, n := range m.Nodes {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO map_nodes (level_id, id, skill_id, x, y, width, height, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			levelID, n.ID, n.SkillID, n.X, n.Y, n.Width, n.Height, i,
		)
		if err != nil {
			return fmt.Errorf("inserting map node %s: %w", n.ID, err)
		}
	}
	for i, c := range m.Connections {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO map_connections (level_id, id, source_id, target_id, position)
			VALUES (?, ?, ?, ?, ?)`,
			levelID, c.ID, c.SourceID, c.TargetID, i,
		)
		if err != nil {
			return fmt.Errorf("inserting map connection %s: %w", c.ID, err)
		}
	}
	return nil
}

// Delete forgets the level's saved map; the next load falls back to the
// default layout. Deleting a level with no map is not an error.
func (r *SQLiteLevelMapRepo) Delete(ctx context.Context, levelID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM level_maps WHERE level_id = ?`, levelID); err != nil {
		return fmt.Errorf("deleting level map: %w", err)
	}
	return nil
}

func (r *SQLiteLevelMapRepo) RemoveSkillNodes(ctx context.Context, skillID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM map_nodes WHERE skill_id = ?`, skillID); err != nil {
		return fmt.Errorf("removing map nodes for skill: %w", err)
	}
	return nil
}
