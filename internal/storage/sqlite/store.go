// Package sqlite provides a SQLite-backed store for a projects section.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"showcase.dev/internal/models"
	"showcase.dev/internal/storage/sqlite/migrations"
)

// ErrNoSection is returned by LoadSection before any section was saved.
var ErrNoSection = errors.New("no section stored")

// Store persists one projects section in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSection replaces the stored section and all of its projects.
func (s *Store) SaveSection(ctx context.Context, section *models.Section) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if section == nil {
		return fmt.Errorf("section is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO section (id, title, description, updated_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET title = excluded.title, description = excluded.description, updated_at = excluded.updated_at`,
		section.Title, section.Description, time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("upsert section: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM project_tags`); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}

	for i, p := range section.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, position, title, description, image, github, webapp, apk, video)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Description, p.Image, p.GitHub, p.WebApp, p.APK, p.Video,
		); err != nil {
			return fmt.Errorf("insert project %q: %w", p.ID, err)
		}
		for j, tag := range p.Tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_tags (project_id, position, tag) VALUES (?, ?, ?)`,
				p.ID, j, tag,
			); err != nil {
				return fmt.Errorf("insert tag for %q: %w", p.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// LoadSection reads the stored section with projects in saved order.
func (s *Store) LoadSection(ctx context.Context) (*models.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	section := &models.Section{}
	err := s.sqlDB.QueryRowContext(ctx, `SELECT title, description FROM section WHERE id = 1`).
		Scan(&section.Title, &section.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSection
	}
	if err != nil {
		return nil, fmt.Errorf("load section: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, title, description, image, github, webapp, apk, video
		 FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.GitHub, &p.WebApp, &p.APK, &p.Video); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Tags = []string{}
		index[p.ID] = len(section.Projects)
		section.Projects = append(section.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	if err := s.loadTags(ctx, section, index); err != nil {
		return nil, err
	}
	section.Normalize()
	return section, nil
}

func (s *Store) loadTags(ctx context.Context, section *models.Section, index map[string]int) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT project_id, tag FROM project_tags ORDER BY project_id, position`)
	if err != nil {
		return fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID, tag string
		if err := rows.Scan(&projectID, &tag); err != nil {
			return fmt.Errorf("scan tag: %w", err)
		}
		if i, ok := index[projectID]; ok {
			section.Projects[i].Tags = append(section.Projects[i].Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tags: %w", err)
	}
	return nil
}
