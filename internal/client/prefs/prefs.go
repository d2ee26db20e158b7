// Package prefs is the device-local preference store: remembered sort modes
// and unsent form drafts, keyed by profile. It lives in a small SQLite file
// next to the client and holds no vault data.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/dbx"
)

// Store is the SQLite-backed preference store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the preference database at path and ensures the
// schema exists. ":memory:" works for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference db: %w", err)
	}

	s := &Store{db: db}
	if err := s.initDatabase(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initDatabase(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		stmts := []string{
			`CREATE TABLE IF NOT EXISTS sort_prefs (
				profile_id TEXT NOT NULL,
				kind TEXT NOT NULL,
				field TEXT NOT NULL,
				direction TEXT NOT NULL,
				PRIMARY KEY (profile_id, kind)
			);`,
			`CREATE TABLE IF NOT EXISTS drafts (
				profile_id TEXT NOT NULL,
				form TEXT NOT NULL,
				payload BLOB NOT NULL,
				updated_at TEXT NOT NULL DEFAULT (datetime('now')),
				PRIMARY KEY (profile_id, form)
			);`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("initializing preference schema: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SortSpec returns the remembered sort for a profile and item kind. The
// second result is false when nothing was saved or the saved value is no
// longer valid.
func (s *Store) SortSpec(ctx context.Context, profileID, kind string) (models.SortSpec, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT field, direction FROM sort_prefs WHERE profile_id = ? AND kind = ?`,
		profileID, kind)

	var field, direction string
	if err := row.Scan(&field, &direction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SortSpec{}, false, nil
		}
		return models.SortSpec{}, false, fmt.Errorf("loading sort preference: %w", err)
	}

	spec := models.SortSpec{
		Field:     models.SortField(field),
		Direction: models.SortDirection(direction),
	}
	if !spec.Valid() {
		return models.SortSpec{}, false, nil
	}
	return spec, true, nil
}

// SaveSortSpec upserts the remembered sort for a profile and item kind.
func (s *Store) SaveSortSpec(ctx context.Context, profileID, kind string, spec models.SortSpec) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sort_prefs (profile_id, kind, field, direction) VALUES (?, ?, ?, ?)
		 ON CONFLICT (profile_id, kind) DO UPDATE SET field = excluded.field, direction = excluded.direction`,
		profileID, kind, string(spec.Field), string(spec.Direction))
	if err != nil {
		return fmt.Errorf("saving sort preference: %w", err)
	}
	return nil
}

// SaveDraft stores an unsent form payload so an interrupted edit survives a
// restart. The payload is opaque to the store.
func (s *Store) SaveDraft(ctx context.Context, profileID, form string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (profile_id, form, payload, updated_at) VALUES (?, ?, ?, datetime('now'))
		 ON CONFLICT (profile_id, form) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		profileID, form, payload)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Draft returns the stored payload for a form, or false when none exists.
func (s *Store) Draft(ctx context.Context, profileID, form string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM drafts WHERE profile_id = ? AND form = ?`,
		profileID, form)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("loading draft: %w", err)
	}
	return payload, true, nil
}

// DeleteDraft removes a stored draft; deleting a missing draft is not an
// error.
func (s *Store) DeleteDraft(ctx context.Context, profileID, form string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE profile_id = ? AND form = ?`,
		profileID, form)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}
