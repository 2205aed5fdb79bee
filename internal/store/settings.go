package store

import (
	"database/sql"
	"strconv"
)

// Setting returns a setting value, or the fallback when unset.
func (s *Store) Setting(key, fallback string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows || err != nil {
		return fallback
	}
	return value
}

// SettingFloat parses a numeric setting, falling back on absent or
// unparsable values.
func (s *Store) SettingFloat(key string, fallback float64) float64 {
	raw := s.Setting(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// SetSetting upserts a setting.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
