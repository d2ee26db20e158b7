package vault

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
	"github.com/vaultdesk/vaultdesk/internal/logging"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// nopLogger discards everything; tests assert on events, not log lines.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// eventRecorder captures lock events and notices emitted by sessions.
type eventRecorder struct {
	mu      sync.Mutex
	locked  int
	notices []Notice
}

func (r *eventRecorder) events() Events {
	return Events{
		OnLocked: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.locked++
		},
		OnNotice: func(n Notice) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.notices = append(r.notices, n)
		},
	}
}

func (r *eventRecorder) lockedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locked
}

func (r *eventRecorder) noticeCodes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	codes := make([]string, 0, len(r.notices))
	for _, n := range r.notices {
		codes = append(codes, n.Code)
	}
	return codes
}

// fakeAPI is an in-memory backend double. Reads serve the canned pools;
// mutations record the call and optionally fail. Local cache behavior is what
// the tests exercise, so mutations do not touch the pools unless noted.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error

	active []rpc.DataCardSummary
	trash  []rpc.DataCardSummary
	cards  map[string]rpc.DataCard

	bankActive []rpc.BankCardSummary
	bankTrash  []rpc.BankCardSummary
	bankCards  map[string]rpc.BankCard

	folders  []rpc.Folder
	settings rpc.Settings

	nextID int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:     make(map[string]int),
		fail:      make(map[string]error),
		cards:     make(map[string]rpc.DataCard),
		bankCards: make(map[string]rpc.BankCard),
		settings: rpc.Settings{
			AutoLockEnabled:        false,
			SoftDeleteEnabled:      true,
			ClipboardClearSeconds:  30,
			DefaultSortField:       "title",
			DefaultSortDirection:   "asc",
			AutoLockTimeoutSeconds: 300,
		},
	}
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.fail[name]
}

func (f *fakeAPI) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) failWith(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[name] = err
}

func (f *fakeAPI) ListDataCardSummaries(ctx context.Context, deleted bool) ([]rpc.DataCardSummary, error) {
	name := "list_active"
	if deleted {
		name = "list_trash"
	}
	if err := f.record(name); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if deleted {
		return append([]rpc.DataCardSummary(nil), f.trash...), nil
	}
	return append([]rpc.DataCardSummary(nil), f.active...), nil
}

func (f *fakeAPI) GetDataCard(ctx context.Context, id string) (rpc.DataCard, error) {
	if err := f.record("get"); err != nil {
		return rpc.DataCard{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cards[id], nil
}

func (f *fakeAPI) CreateDataCard(ctx context.Context, in rpc.DataCardInput) (rpc.DataCard, error) {
	if err := f.record("create"); err != nil {
		return rpc.DataCard{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	card := rpc.DataCard{
		ID:         fmt.Sprintf("c%d", f.nextID),
		Title:      in.Title,
		Username:   in.Username,
		Password:   in.Password,
		URL:        in.URL,
		Notes:      in.Notes,
		OTPAuthURI: in.OTPAuthURI,
		Tags:       in.Tags,
		FolderID:   in.FolderID,
		CreatedAt:  testNow.Format(time.RFC3339),
		UpdatedAt:  testNow.Format(time.RFC3339),
	}
	f.cards[card.ID] = card
	return card, nil
}

func (f *fakeAPI) UpdateDataCard(ctx context.Context, id string, in rpc.DataCardInput) error {
	return f.record("update")
}

func (f *fakeAPI) DeleteDataCard(ctx context.Context, id string) error {
	return f.record("delete")
}

func (f *fakeAPI) RestoreDataCard(ctx context.Context, id string) error {
	return f.record("restore")
}

func (f *fakeAPI) PurgeDataCard(ctx context.Context, id string) error {
	return f.record("purge")
}

func (f *fakeAPI) RestoreAllDataCards(ctx context.Context) error {
	return f.record("restore_all")
}

func (f *fakeAPI) PurgeAllDataCards(ctx context.Context) error {
	return f.record("purge_all")
}

func (f *fakeAPI) SetDataCardFavorite(ctx context.Context, id string, favorite bool) error {
	return f.record("set_favorite")
}

func (f *fakeAPI) MoveDataCardToFolder(ctx context.Context, id string, folderID *string) error {
	return f.record("move")
}

func (f *fakeAPI) AddDataCardAttachment(ctx context.Context, cardID, fileName string, content []byte) (rpc.Attachment, error) {
	if err := f.record("add_attachment"); err != nil {
		return rpc.Attachment{}, err
	}
	return rpc.Attachment{ID: "att1", FileName: fileName, Size: int64(len(content))}, nil
}

func (f *fakeAPI) GetDataCardAttachment(ctx context.Context, cardID, attachmentID string) ([]byte, error) {
	if err := f.record("get_attachment"); err != nil {
		return nil, err
	}
	return []byte("content"), nil
}

func (f *fakeAPI) DeleteDataCardAttachment(ctx context.Context, cardID, attachmentID string) error {
	return f.record("delete_attachment")
}

func (f *fakeAPI) ListBankCardSummaries(ctx context.Context, deleted bool) ([]rpc.BankCardSummary, error) {
	name := "bank_list_active"
	if deleted {
		name = "bank_list_trash"
	}
	if err := f.record(name); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if deleted {
		return append([]rpc.BankCardSummary(nil), f.bankTrash...), nil
	}
	return append([]rpc.BankCardSummary(nil), f.bankActive...), nil
}

func (f *fakeAPI) GetBankCard(ctx context.Context, id string) (rpc.BankCard, error) {
	if err := f.record("bank_get"); err != nil {
		return rpc.BankCard{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bankCards[id], nil
}

func (f *fakeAPI) CreateBankCard(ctx context.Context, in rpc.BankCardInput) (rpc.BankCard, error) {
	if err := f.record("bank_create"); err != nil {
		return rpc.BankCard{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	card := rpc.BankCard{
		ID:             fmt.Sprintf("b%d", f.nextID),
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
		CreatedAt:      testNow.Format(time.RFC3339),
		UpdatedAt:      testNow.Format(time.RFC3339),
	}
	f.bankCards[card.ID] = card
	return card, nil
}

func (f *fakeAPI) UpdateBankCard(ctx context.Context, id string, in rpc.BankCardInput) error {
	return f.record("bank_update")
}

func (f *fakeAPI) DeleteBankCard(ctx context.Context, id string) error {
	return f.record("bank_delete")
}

func (f *fakeAPI) RestoreBankCard(ctx context.Context, id string) error {
	return f.record("bank_restore")
}

func (f *fakeAPI) PurgeBankCard(ctx context.Context, id string) error {
	return f.record("bank_purge")
}

func (f *fakeAPI) RestoreAllBankCards(ctx context.Context) error {
	return f.record("bank_restore_all")
}

func (f *fakeAPI) PurgeAllBankCards(ctx context.Context) error {
	return f.record("bank_purge_all")
}

func (f *fakeAPI) SetBankCardFavorite(ctx context.Context, id string, favorite bool) error {
	return f.record("bank_set_favorite")
}

func (f *fakeAPI) MoveBankCardToFolder(ctx context.Context, id string, folderID *string) error {
	return f.record("bank_move")
}

func (f *fakeAPI) ListFolders(ctx context.Context) ([]rpc.Folder, error) {
	if err := f.record("list_folders"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]rpc.Folder(nil), f.folders...), nil
}

func (f *fakeAPI) CreateFolder(ctx context.Context, name string, parentID *string) (rpc.Folder, error) {
	if err := f.record("create_folder"); err != nil {
		return rpc.Folder{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	folder := rpc.Folder{ID: fmt.Sprintf("f%d", f.nextID), Name: name, ParentID: parentID}
	f.folders = append(f.folders, folder)
	return folder, nil
}

func (f *fakeAPI) RenameFolder(ctx context.Context, id, name string) (rpc.Folder, error) {
	if err := f.record("rename_folder"); err != nil {
		return rpc.Folder{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.folders {
		if f.folders[i].ID == id {
			f.folders[i].Name = name
			return f.folders[i], nil
		}
	}
	return rpc.Folder{ID: id, Name: name}, nil
}

func (f *fakeAPI) DeleteFolderOnly(ctx context.Context, id string) error {
	return f.record("delete_folder_only")
}

func (f *fakeAPI) DeleteFolderAndCards(ctx context.Context, id string) error {
	return f.record("delete_folder_and_cards")
}

func (f *fakeAPI) GetSettings(ctx context.Context) (rpc.Settings, error) {
	if err := f.record("get_settings"); err != nil {
		return rpc.Settings{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings, nil
}

func (f *fakeAPI) UpdateSettings(ctx context.Context, in rpc.Settings) (rpc.Settings, error) {
	if err := f.record("update_settings"); err != nil {
		return rpc.Settings{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = in
	return f.settings, nil
}

func (f *fakeAPI) LockVault(ctx context.Context) error {
	return f.record("lock_vault")
}

func (f *fakeAPI) CreateBackup(ctx context.Context, path string) (rpc.BackupInfo, error) {
	if err := f.record("backup_create"); err != nil {
		return rpc.BackupInfo{}, err
	}
	return rpc.BackupInfo{Path: path, CreatedAt: testNow.Format(time.RFC3339), SizeBytes: 64}, nil
}

func (f *fakeAPI) RestoreBackup(ctx context.Context, path string) error {
	return f.record("backup_restore")
}

// testDeps builds sessionDeps around the recorder with soft delete enabled.
func testDeps(rec *eventRecorder, settings models.Settings) sessionDeps {
	return sessionDeps{
		settings:   func() models.Settings { return settings },
		folderName: func(string) (string, bool) { return "", false },
		events:     rec.events(),
		log:        nopLogger{},
		now:        func() time.Time { return testNow },
	}
}

func softSettings() models.Settings {
	s := models.DefaultSettings()
	s.SoftDeleteEnabled = true
	return s
}

func hardSettings() models.Settings {
	s := models.DefaultSettings()
	s.SoftDeleteEnabled = false
	return s
}

// dataSummaries builds summaries from id/title pairs.
func dataSummaries(pairs ...string) []rpc.DataCardSummary {
	out := make([]rpc.DataCardSummary, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, rpc.DataCardSummary{
			ID:        pairs[i],
			Title:     pairs[i+1],
			CreatedAt: testNow.Format(time.RFC3339),
			UpdatedAt: testNow.Format(time.RFC3339),
		})
	}
	return out
}

func cardRecord(id, title string) rpc.DataCard {
	return rpc.DataCard{
		ID:        id,
		Title:     title,
		CreatedAt: testNow.Format(time.RFC3339),
		UpdatedAt: testNow.Format(time.RFC3339),
	}
}
