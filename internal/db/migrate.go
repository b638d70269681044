package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the curriculum schema. Every statement is idempotent, so
// it is safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		logo          TEXT NOT NULL DEFAULT '',
		instructors   TEXT NOT NULL DEFAULT '[]',
		student_count INTEGER NOT NULL DEFAULT 0 CHECK(student_count >= 0),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS levels (
		id          TEXT PRIMARY KEY,
		program_id  TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		cover       TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_levels_program ON levels(program_id)`,

	`CREATE TABLE IF NOT EXISTS skills (
		id                     TEXT PRIMARY KEY,
		level_id               TEXT NOT NULL REFERENCES levels(id) ON DELETE CASCADE,
		name                   TEXT NOT NULL,
		description            TEXT NOT NULL DEFAULT '',
		video_url              TEXT NOT NULL DEFAULT '',
		animation_url          TEXT NOT NULL DEFAULT '',
		instructor_description TEXT NOT NULL DEFAULT '',
		instructor_video_url   TEXT NOT NULL DEFAULT '',
		order_index            INTEGER NOT NULL DEFAULT 0,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_skills_level ON skills(level_id)`,

	`CREATE TABLE IF NOT EXISTS progress_points (
		id          TEXT PRIMARY KEY,
		skill_id    TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		criteria    TEXT NOT NULL DEFAULT '',
		point_value INTEGER NOT NULL DEFAULT 0 CHECK(point_value >= 0),
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_points_skill ON progress_points(skill_id)`,

	// A row here means the level has a saved map, even an empty one.
	`CREATE TABLE IF NOT EXISTS level_maps (
		level_id TEXT PRIMARY KEY REFERENCES levels(id) ON DELETE CASCADE,
		saved_at TEXT NOT NULL
	)`,

	// Deleting a skill removes its nodes, which removes their connections.
	`CREATE TABLE IF NOT EXISTS map_nodes (
		level_id TEXT NOT NULL REFERENCES level_maps(level_id) ON DELETE CASCADE,
		id       TEXT NOT NULL,
		skill_id TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		x        REAL NOT NULL CHECK(x >= 0),
		y        REAL NOT NULL CHECK(y >= 0),
		width    REAL NOT NULL CHECK(width > 0),
		height   REAL NOT NULL CHECK(height > 0),
		position INTEGER NOT NULL,
		PRIMARY KEY (level_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_map_nodes_skill ON map_nodes(skill_id)`,

	`CREATE TABLE IF NOT EXISTS map_connections (
		level_id  TEXT NOT NULL REFERENCES level_maps(level_id) ON DELETE CASCADE,
		id        TEXT NOT NULL,
		source_id TEXT NOT NULL,
		target_id TEXT NOT NULL CHECK(target_id != source_id),
		position  INTEGER NOT NULL,
		PRIMARY KEY (level_id, id),
		FOREIGN KEY (level_id, source_id) REFERENCES map_nodes(level_id, id) ON DELETE CASCADE,
		FOREIGN KEY (level_id, target_id) REFERENCES map_nodes(level_id, id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_map_connections_source ON map_connections(level_id, source_id)`,
	`CREATE INDEX IF NOT EXISTS idx_map_connections_target ON map_connections(level_id, target_id)`,
}
