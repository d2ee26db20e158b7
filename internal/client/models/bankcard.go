package models

import "time"

// BankCard is the full record of a payment-card item.
type BankCard struct {
	ID             string
	Title          string
	CardholderName string
	Number         string
	// Expiry is stored as "MM/YY".
	Expiry     string
	CVC        string
	PIN        string
	BankName   string
	Notes      string
	FolderID   *string
	IsFavorite bool
	Archived   bool

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BankCardSummary is the lightweight list projection of a bank card.
// MaskedNumber, Meta and UpdatedLabel are derived by the mapper; the full
// number never appears in summaries.
type BankCardSummary struct {
	ID             string
	Title          string
	CardholderName string
	BankName       string
	MaskedNumber   string
	Meta           string
	FolderID       *string
	IsFavorite     bool
	Archived       bool
	HasNotes       bool

	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UpdatedLabel string
}

// BankCardInput carries the user-editable fields for create and update calls.
type BankCardInput struct {
	Title          string
	CardholderName string
	Number         string
	Expiry         string
	CVC            string
	PIN            string
	BankName       string
	Notes          string
	FolderID       *string
	Archived       bool
}
