// Package models defines the client-side view of vault records. The backend
// remains the source of truth; these types mirror its records plus a few
// derived display fields computed by the mapper layer.
package models

import "time"

// TagArchived marks a data card as archived. Data cards encode the archived
// state as a tag inside the generic tag list; bank cards carry an explicit
// field instead (backend model divergence, mirrored as-is).
const TagArchived = "archived"

// DataCard is the full record of a generic credential/data item.
type DataCard struct {
	ID          string
	Title       string
	Username    string
	Password    string
	URL         string
	Notes       string
	OTPAuthURI  string
	Tags        []string
	FolderID    *string
	IsFavorite  bool
	Attachments []Attachment

	// DeletedAt is nil while the card is active and set once soft-deleted.
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Archived reports whether the card carries the archived tag.
func (c *DataCard) Archived() bool {
	for _, t := range c.Tags {
		if t == TagArchived {
			return true
		}
	}
	return false
}

// DataCardSummary is the lightweight list projection of a data card.
// Meta and UpdatedLabel are display-only fields derived by the mapper.
type DataCardSummary struct {
	ID         string
	Title      string
	Username   string
	URL        string
	Tags       []string
	Meta       string
	FolderID   *string
	IsFavorite bool
	Archived   bool

	HasAttachments bool
	HasOTP         bool
	HasNotes       bool

	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UpdatedLabel string
}

// DataCardInput carries the user-editable fields for create and update calls.
type DataCardInput struct {
	Title      string
	Username   string
	Password   string
	URL        string
	Notes      string
	OTPAuthURI string
	Tags       []string
	FolderID   *string
}

// Attachment describes a file attached to a data card. Contents live on the
// backend and are fetched separately.
type Attachment struct {
	ID       string
	FileName string
	Size     int64
}
