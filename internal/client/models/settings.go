package models

import "time"

// Settings is the per-profile configuration owned by the backend. The client
// reads it to drive auto-lock, clipboard clearing, soft delete and default
// sorting; edits go through the update_settings command.
type Settings struct {
	AutoLockEnabled bool
	AutoLockTimeout time.Duration

	ClipboardClearDelay time.Duration

	SoftDeleteEnabled bool

	BackupInterval time.Duration

	DefaultSortField     SortField
	DefaultSortDirection SortDirection
}

// DefaultSettings mirrors the backend defaults and is used until the first
// get_settings call succeeds. Soft delete defaults to enabled.
func DefaultSettings() Settings {
	return Settings{
		AutoLockEnabled:      true,
		AutoLockTimeout:      5 * time.Minute,
		ClipboardClearDelay:  30 * time.Second,
		SoftDeleteEnabled:    true,
		BackupInterval:       24 * time.Hour,
		DefaultSortField:     SortByTitle,
		DefaultSortDirection: SortAsc,
	}
}

// Sort returns the default sort spec from settings, falling back to
// DefaultSort when the stored values are unknown.
func (s Settings) Sort() SortSpec {
	spec := SortSpec{Field: s.DefaultSortField, Direction: s.DefaultSortDirection}
	if !spec.Valid() {
		return DefaultSort
	}
	return spec
}
