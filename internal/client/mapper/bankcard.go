package mapper

import (
	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
)

func BankCardFromBackend(d rpc.BankCard) models.BankCard {
	return models.BankCard{
		ID:             d.ID,
		Title:          d.Title,
		CardholderName: d.CardholderName,
		Number:         d.Number,
		Expiry:         d.Expiry,
		CVC:            d.CVC,
		PIN:            d.PIN,
		BankName:       d.BankName,
		Notes:          d.Notes,
		FolderID:       d.FolderID,
		IsFavorite:     d.IsFavorite,
		Archived:       d.Archived,
		DeletedAt:      parseTimePtr(d.DeletedAt),
		CreatedAt:      parseTime(d.CreatedAt),
		UpdatedAt:      parseTime(d.UpdatedAt),
	}
}

func BankCardSummaryFromBackend(d rpc.BankCardSummary) models.BankCardSummary {
	s := models.BankCardSummary{
		ID:             d.ID,
		Title:          d.Title,
		CardholderName: d.CardholderName,
		BankName:       d.BankName,
		MaskedNumber:   MaskNumber(d.LastFour),
		Meta:           metaLine(d.CardholderName, d.BankName),
		FolderID:       d.FolderID,
		IsFavorite:     d.IsFavorite,
		Archived:       d.Archived,
		HasNotes:       d.HasNotes,
		DeletedAt:      parseTimePtr(d.DeletedAt),
		CreatedAt:      parseTime(d.CreatedAt),
		UpdatedAt:      parseTime(d.UpdatedAt),
	}
	s.UpdatedLabel = DateLabel(s.UpdatedAt)
	return s
}

// BankCardToSummary projects a full record to its list form for synthesized
// trash entries. The full number is reduced to its masked form here.
func BankCardToSummary(c models.BankCard) models.BankCardSummary {
	s := models.BankCardSummary{
		ID:             c.ID,
		Title:          c.Title,
		CardholderName: c.CardholderName,
		BankName:       c.BankName,
		MaskedNumber:   MaskNumber(c.Number),
		Meta:           metaLine(c.CardholderName, c.BankName),
		FolderID:       c.FolderID,
		IsFavorite:     c.IsFavorite,
		Archived:       c.Archived,
		HasNotes:       c.Notes != "",
		DeletedAt:      c.DeletedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	s.UpdatedLabel = DateLabel(s.UpdatedAt)
	return s
}

func BankCardInputToBackend(in models.BankCardInput) rpc.BankCardInput {
	return rpc.BankCardInput{
		Title:          in.Title,
		CardholderName: in.CardholderName,
		Number:         in.Number,
		Expiry:         in.Expiry,
		CVC:            in.CVC,
		PIN:            in.PIN,
		BankName:       in.BankName,
		Notes:          in.Notes,
		FolderID:       in.FolderID,
		Archived:       in.Archived,
	}
}

// BankCardToInput extracts the mutable fields of a full record, seeding edit
// forms and update calls.
func BankCardToInput(c models.BankCard) models.BankCardInput {
	return models.BankCardInput{
		Title:          c.Title,
		CardholderName: c.CardholderName,
		Number:         c.Number,
		Expiry:         c.Expiry,
		CVC:            c.CVC,
		PIN:            c.PIN,
		BankName:       c.BankName,
		Notes:          c.Notes,
		FolderID:       c.FolderID,
		Archived:       c.Archived,
	}
}

// UpdateBankCardToBackend converts a full record straight to an update
// payload. Same round-trip invariant as the data-card variant.
func UpdateBankCardToBackend(c models.BankCard) rpc.BankCardInput {
	return BankCardInputToBackend(BankCardToInput(c))
}
