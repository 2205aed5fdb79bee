package store

import (
	"database/sql"
	"fmt"
	"os"
	"time"
)

// RecentProject is one entry of the recently-opened list.
type RecentProject struct {
	ID           int64
	Path         string
	Name         string
	LastOpenedAt time.Time
}

// RememberProject records that a project file was opened, bumping its
// timestamp if the path is already known. The newest entry doubles as
// the last-opened-project pointer.
func (s *Store) RememberProject(path, name string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO recent_projects (path, name, last_opened_at) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET name = excluded.name, last_opened_at = excluded.last_opened_at`,
		path, name, now,
	)
	if err != nil {
		return fmt.Errorf("remember project: %w", err)
	}
	return nil
}

// LastProject returns the most recently opened project whose file still
// exists. Stale pointers are pruned and skipped, never an error; no
// usable entry yields ("", false), a fresh no-previous-project state.
func (s *Store) LastProject() (string, bool) {
	for {
		var path string
		err := s.db.QueryRow(
			`SELECT path FROM recent_projects ORDER BY last_opened_at DESC, id DESC LIMIT 1`,
		).Scan(&path)
		if err == sql.ErrNoRows {
			return "", false
		}
		if err != nil {
			return "", false
		}
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		// File is gone; drop the stale pointer and try the next one.
		if _, err := s.db.Exec(`DELETE FROM recent_projects WHERE path = ?`, path); err != nil {
			return "", false
		}
	}
}

// RecentProjects lists known projects, newest first.
func (s *Store) RecentProjects(limit int) ([]RecentProject, error) {
	query := `SELECT id, path, name, last_opened_at FROM recent_projects
	          ORDER BY last_opened_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	defer rows.Close()

	var out []RecentProject
	for rows.Next() {
		var r RecentProject
		var opened string
		if err := rows.Scan(&r.ID, &r.Path, &r.Name, &opened); err != nil {
			return nil, err
		}
		r.LastOpenedAt, _ = time.Parse(time.RFC3339, opened)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ForgetProject removes a path from the recent list.
func (s *Store) ForgetProject(path string) error {
	_, err := s.db.Exec(`DELETE FROM recent_projects WHERE path = ?`, path)
	return err
}
