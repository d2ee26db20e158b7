package rpc

// Folder is the wire form of a vault folder.
type Folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
	IsSystem bool    `json:"is_system"`
}

// Attachment is the wire form of a data-card attachment descriptor.
type Attachment struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}

// DataCard is the full wire record of a data card. Timestamps are RFC 3339
// strings; deleted_at is null while the card is active.
type DataCard struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Username    string       `json:"username"`
	Password    string       `json:"password"`
	URL         string       `json:"url"`
	Notes       string       `json:"notes"`
	OTPAuthURI  string       `json:"otpauth_uri"`
	Tags        []string     `json:"tags"`
	FolderID    *string      `json:"folder_id"`
	IsFavorite  bool         `json:"is_favorite"`
	Attachments []Attachment `json:"attachments"`
	DeletedAt   *string      `json:"deleted_at"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// DataCardSummary is the wire form of the list projection. notes_preview is
// a short, non-secret excerpt the backend derives for display.
type DataCardSummary struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Username       string   `json:"username"`
	URL            string   `json:"url"`
	NotesPreview   string   `json:"notes_preview"`
	Tags           []string `json:"tags"`
	FolderID       *string  `json:"folder_id"`
	IsFavorite     bool     `json:"is_favorite"`
	HasAttachments bool     `json:"has_attachments"`
	HasOTP         bool     `json:"has_otp"`
	HasNotes       bool     `json:"has_notes"`
	DeletedAt      *string  `json:"deleted_at"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// DataCardInput carries the mutable fields for create_datacard and
// update_datacard.
type DataCardInput struct {
	Title      string   `json:"title"`
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	URL        string   `json:"url"`
	Notes      string   `json:"notes"`
	OTPAuthURI string   `json:"otpauth_uri"`
	Tags       []string `json:"tags"`
	FolderID   *string  `json:"folder_id"`
}

// BankCard is the full wire record of a bank card. Unlike data cards, the
// archived state is an explicit field here.
type BankCard struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CardholderName string  `json:"cardholder_name"`
	Number         string  `json:"number"`
	Expiry         string  `json:"expiry"`
	CVC            string  `json:"cvc"`
	PIN            string  `json:"pin"`
	BankName       string  `json:"bank_name"`
	Notes          string  `json:"notes"`
	FolderID       *string `json:"folder_id"`
	IsFavorite     bool    `json:"is_favorite"`
	Archived       bool    `json:"archived"`
	DeletedAt      *string `json:"deleted_at"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// BankCardSummary is the wire form of the bank-card list projection. The
// backend never includes the full number; last_four is all the client gets.
type BankCardSummary struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CardholderName string  `json:"cardholder_name"`
	BankName       string  `json:"bank_name"`
	LastFour       string  `json:"last_four"`
	FolderID       *string `json:"folder_id"`
	IsFavorite     bool    `json:"is_favorite"`
	Archived       bool    `json:"archived"`
	HasNotes       bool    `json:"has_notes"`
	DeletedAt      *string `json:"deleted_at"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// BankCardInput carries the mutable fields for create_bank_card and
// update_bank_card.
type BankCardInput struct {
	Title          string  `json:"title"`
	CardholderName string  `json:"cardholder_name"`
	Number         string  `json:"number"`
	Expiry         string  `json:"expiry"`
	CVC            string  `json:"cvc"`
	PIN            string  `json:"pin"`
	BankName       string  `json:"bank_name"`
	Notes          string  `json:"notes"`
	FolderID       *string `json:"folder_id"`
	Archived       bool    `json:"archived"`
}

// Settings is the wire form of the per-profile settings singleton.
type Settings struct {
	AutoLockEnabled        bool   `json:"auto_lock_enabled"`
	AutoLockTimeoutSeconds int    `json:"auto_lock_timeout"`
	ClipboardClearSeconds  int    `json:"clipboard_clear_timeout"`
	SoftDeleteEnabled      bool   `json:"soft_delete_enabled"`
	BackupIntervalHours    int    `json:"backup_interval_hours"`
	DefaultSortField       string `json:"default_sort_field"`
	DefaultSortDirection   string `json:"default_sort_direction"`
}

// Profile identifies the vault profile opened by unlock_vault.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BackupInfo describes a completed backup.
type BackupInfo struct {
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
	SizeBytes int64  `json:"size_bytes"`
}
