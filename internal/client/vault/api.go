// Package vault holds the client-side item lifecycle: per-profile sessions
// that cache summaries, soft-deleted items and full details, orchestrate
// mutations against the backend, and derive the visible list state. All
// security-sensitive work stays on the backend; this layer only mirrors its
// truth.
//
// Consistency policy: every mutation that is not provably side-effect-free
// re-fetches the authoritative record after the call (create returns it,
// update triggers an explicit reload). The two exceptions are the favorite
// flag and the folder assignment, single fields with no derived state, which
// are patched in place from the locally computed value.
package vault

import (
	"context"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
	"github.com/vaultdesk/vaultdesk/internal/logging"
)

// DataCardAPI is the backend surface the data-card session consumes.
// *rpc.Client satisfies it; tests provide fakes.
type DataCardAPI interface {
	ListDataCardSummaries(ctx context.Context, deleted bool) ([]rpc.DataCardSummary, error)
	GetDataCard(ctx context.Context, id string) (rpc.DataCard, error)
	CreateDataCard(ctx context.Context, in rpc.DataCardInput) (rpc.DataCard, error)
	UpdateDataCard(ctx context.Context, id string, in rpc.DataCardInput) error
	DeleteDataCard(ctx context.Context, id string) error
	RestoreDataCard(ctx context.Context, id string) error
	PurgeDataCard(ctx context.Context, id string) error
	RestoreAllDataCards(ctx context.Context) error
	PurgeAllDataCards(ctx context.Context) error
	SetDataCardFavorite(ctx context.Context, id string, favorite bool) error
	MoveDataCardToFolder(ctx context.Context, id string, folderID *string) error
	AddDataCardAttachment(ctx context.Context, cardID, fileName string, content []byte) (rpc.Attachment, error)
	GetDataCardAttachment(ctx context.Context, cardID, attachmentID string) ([]byte, error)
	DeleteDataCardAttachment(ctx context.Context, cardID, attachmentID string) error
}

// BankCardAPI is the backend surface the bank-card session consumes.
type BankCardAPI interface {
	ListBankCardSummaries(ctx context.Context, deleted bool) ([]rpc.BankCardSummary, error)
	GetBankCard(ctx context.Context, id string) (rpc.BankCard, error)
	CreateBankCard(ctx context.Context, in rpc.BankCardInput) (rpc.BankCard, error)
	UpdateBankCard(ctx context.Context, id string, in rpc.BankCardInput) error
	DeleteBankCard(ctx context.Context, id string) error
	RestoreBankCard(ctx context.Context, id string) error
	PurgeBankCard(ctx context.Context, id string) error
	RestoreAllBankCards(ctx context.Context) error
	PurgeAllBankCards(ctx context.Context) error
	SetBankCardFavorite(ctx context.Context, id string, favorite bool) error
	MoveBankCardToFolder(ctx context.Context, id string, folderID *string) error
}

// FolderAPI is the backend surface for folder management.
type FolderAPI interface {
	ListFolders(ctx context.Context) ([]rpc.Folder, error)
	CreateFolder(ctx context.Context, name string, parentID *string) (rpc.Folder, error)
	RenameFolder(ctx context.Context, id, name string) (rpc.Folder, error)
	DeleteFolderOnly(ctx context.Context, id string) error
	DeleteFolderAndCards(ctx context.Context, id string) error
}

// SessionAPI covers the profile-scoped commands shared by the whole session.
type SessionAPI interface {
	GetSettings(ctx context.Context) (rpc.Settings, error)
	UpdateSettings(ctx context.Context, in rpc.Settings) (rpc.Settings, error)
	LockVault(ctx context.Context) error
	CreateBackup(ctx context.Context, path string) (rpc.BackupInfo, error)
	RestoreBackup(ctx context.Context, path string) error
}

// API is the full backend surface a session needs.
type API interface {
	DataCardAPI
	BankCardAPI
	FolderAPI
	SessionAPI
}

// Notice is a user-visible, non-fatal failure report (rendered as a toast by
// the presentation layer).
type Notice struct {
	// Code is the stable backend error code, kept for diagnosis.
	Code    string
	Message string
}

// Events are the injected callbacks through which sessions signal the
// surrounding UI. Both are optional.
type Events struct {
	// OnLocked fires when the vault locked underneath us (explicitly or via
	// a VAULT_LOCKED failure) and the UI should return to re-authentication.
	OnLocked func()

	// OnNotice surfaces a transient failure message.
	OnNotice func(Notice)
}

func (e Events) locked() {
	if e.OnLocked != nil {
		e.OnLocked()
	}
}

func (e Events) notify(n Notice) {
	if e.OnNotice != nil {
		e.OnNotice(n)
	}
}

// SortPrefs persists the remembered sort mode per item kind per profile on
// the local device. Implemented by the prefs store.
type SortPrefs interface {
	SortSpec(ctx context.Context, profileID, kind string) (models.SortSpec, bool, error)
	SaveSortSpec(ctx context.Context, profileID, kind string, spec models.SortSpec) error
}

// sessionDeps bundles what both card sessions need from the surrounding
// session.
type sessionDeps struct {
	settings   func() models.Settings
	folderName func(id string) (string, bool)
	events     Events
	log        logging.Logger
	now        func() time.Time
	saveSort   func(kind string, spec models.SortSpec)

	// lockLocal runs the local half of the lock flow when the backend
	// reports VAULT_LOCKED; nil falls back to the bare OnLocked event.
	lockLocal func(ctx context.Context)
}
