package mapper

import (
	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
)

// DataCardFromBackend converts a full wire record to the UI model. Missing
// optional collections become empty, not nil panics downstream.
func DataCardFromBackend(d rpc.DataCard) models.DataCard {
	card := models.DataCard{
		ID:         d.ID,
		Title:      d.Title,
		Username:   d.Username,
		Password:   d.Password,
		URL:        d.URL,
		Notes:      d.Notes,
		OTPAuthURI: d.OTPAuthURI,
		Tags:       d.Tags,
		FolderID:   d.FolderID,
		IsFavorite: d.IsFavorite,
		DeletedAt:  parseTimePtr(d.DeletedAt),
		CreatedAt:  parseTime(d.CreatedAt),
		UpdatedAt:  parseTime(d.UpdatedAt),
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	card.Attachments = make([]models.Attachment, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		card.Attachments = append(card.Attachments, models.Attachment{
			ID:       a.ID,
			FileName: a.FileName,
			Size:     a.Size,
		})
	}
	return card
}

// DataCardSummaryFromBackend converts a wire list projection, computing the
// derived display fields.
func DataCardSummaryFromBackend(d rpc.DataCardSummary) models.DataCardSummary {
	s := models.DataCardSummary{
		ID:             d.ID,
		Title:          d.Title,
		Username:       d.Username,
		URL:            d.URL,
		Tags:           d.Tags,
		Meta:           metaLine(d.Username, d.URL, d.NotesPreview),
		FolderID:       d.FolderID,
		IsFavorite:     d.IsFavorite,
		HasAttachments: d.HasAttachments,
		HasOTP:         d.HasOTP,
		HasNotes:       d.HasNotes,
		DeletedAt:      parseTimePtr(d.DeletedAt),
		CreatedAt:      parseTime(d.CreatedAt),
		UpdatedAt:      parseTime(d.UpdatedAt),
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	s.Archived = tagsContainArchived(s.Tags)
	s.UpdatedLabel = DateLabel(s.UpdatedAt)
	return s
}

// DataCardToSummary projects a full record to its list form, used when the
// view-model synthesizes a trash entry from the detail cache.
func DataCardToSummary(c models.DataCard) models.DataCardSummary {
	s := models.DataCardSummary{
		ID:             c.ID,
		Title:          c.Title,
		Username:       c.Username,
		URL:            c.URL,
		Tags:           c.Tags,
		Meta:           metaLine(c.Username, c.URL, c.Notes),
		FolderID:       c.FolderID,
		IsFavorite:     c.IsFavorite,
		Archived:       c.Archived(),
		HasAttachments: len(c.Attachments) > 0,
		HasOTP:         c.OTPAuthURI != "",
		HasNotes:       c.Notes != "",
		DeletedAt:      c.DeletedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	s.UpdatedLabel = DateLabel(s.UpdatedAt)
	return s
}

// DataCardInputToBackend converts edit-form input to the wire form.
func DataCardInputToBackend(in models.DataCardInput) rpc.DataCardInput {
	return rpc.DataCardInput{
		Title:      in.Title,
		Username:   in.Username,
		Password:   in.Password,
		URL:        in.URL,
		Notes:      in.Notes,
		OTPAuthURI: in.OTPAuthURI,
		Tags:       in.Tags,
		FolderID:   in.FolderID,
	}
}

// DataCardToInput extracts the mutable fields of a full record, seeding edit
// forms and update calls.
func DataCardToInput(c models.DataCard) models.DataCardInput {
	return models.DataCardInput{
		Title:      c.Title,
		Username:   c.Username,
		Password:   c.Password,
		URL:        c.URL,
		Notes:      c.Notes,
		OTPAuthURI: c.OTPAuthURI,
		Tags:       c.Tags,
		FolderID:   c.FolderID,
	}
}

// UpdateDataCardToBackend converts a full record straight to an update
// payload. Round-trip invariant: applied to DataCardFromBackend(dto), the
// result reproduces dto's mutable fields (server-only fields excluded).
func UpdateDataCardToBackend(c models.DataCard) rpc.DataCardInput {
	return DataCardInputToBackend(DataCardToInput(c))
}

func tagsContainArchived(tags []string) bool {
	for _, t := range tags {
		if t == models.TagArchived {
			return true
		}
	}
	return false
}
