package vault

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/mapper"
	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/logging"
)

// BackupInfo describes a completed vault backup.
type BackupInfo struct {
	Path      string
	CreatedAt time.Time
	SizeBytes int64
}

// SessionConfig assembles a Session's collaborators. API, Log and ProfileID
// are required; the rest are optional.
type SessionConfig struct {
	ProfileID string
	API       API
	Log       logging.Logger
	Events    Events

	// Prefs persists sort choices per profile on this device; nil disables
	// persistence.
	Prefs SortPrefs

	// SortSaveDelay debounces preference writes; zero writes immediately.
	SortSaveDelay time.Duration

	// WipeClipboard runs during Lock, before caches are dropped.
	WipeClipboard func(context.Context)

	// Now overrides the clock; tests use it for deterministic timestamps.
	Now func() time.Time
}

// Session is the root of one unlocked profile: it owns the settings and
// folder caches, both card sessions, the idle auto-lock countdown and the
// sort-preference writer. Create it after unlock_vault succeeds and discard
// it after Lock.
type Session struct {
	profileID string
	api       API
	events    Events
	log       logging.Logger
	prefs     SortPrefs
	wipe      func(context.Context)
	deps      sessionDeps

	mu       sync.Mutex
	settings models.Settings
	folders  []models.Folder
	locked   bool

	dataCards *DataCardSession
	bankCards *BankCardSession
	autolock  *AutoLock

	saverMu   sync.Mutex
	savers    map[string]*Debouncer
	saveDelay time.Duration
}

func NewSession(cfg SessionConfig) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		profileID: cfg.ProfileID,
		api:       cfg.API,
		events:    cfg.Events,
		log:       cfg.Log.With("profile", cfg.ProfileID),
		prefs:     cfg.Prefs,
		wipe:      cfg.WipeClipboard,
		settings:  models.DefaultSettings(),
		savers:    make(map[string]*Debouncer),
		saveDelay: cfg.SortSaveDelay,
	}

	s.deps = sessionDeps{
		settings:   s.Settings,
		folderName: s.folderName,
		events:     cfg.Events,
		log:        s.log,
		now:        now,
		saveSort:   s.saveSort,
		lockLocal:  s.lockLocal,
	}

	s.dataCards = newDataCardSession(cfg.API, s.deps)
	s.bankCards = newBankCardSession(cfg.API, s.deps)

	s.autolock = NewAutoLock(func() {
		if err := s.Lock(context.Background()); err != nil {
			s.log.Warn(context.Background(), "auto-lock failed", "error", err)
		}
	})

	return s
}

// Open loads everything the unlocked view needs: settings, folders, both
// active pools and remembered sort preferences, then arms the auto-lock
// countdown. The trash pools stay unloaded until first visited.
func (s *Session) Open(ctx context.Context) error {
	if err := s.refreshSettings(ctx); err != nil {
		return err
	}
	if err := s.refreshFolders(ctx); err != nil {
		return err
	}
	if err := s.dataCards.Load(ctx); err != nil {
		return err
	}
	if err := s.bankCards.Load(ctx); err != nil {
		return err
	}

	s.restoreSortPrefs(ctx)

	settings := s.Settings()
	s.dataCards.applyDefaultSort(settings)
	s.bankCards.applyDefaultSort(settings)
	s.autolock.Apply(settings.AutoLockEnabled, settings.AutoLockTimeout)

	s.log.Info(ctx, "session opened",
		"folders", len(s.Folders()),
		"auto_lock", settings.AutoLockEnabled)
	return nil
}

// Lock tears the session down: backend lock, clipboard wipe, cache reset,
// countdown stop, then the OnLocked event. Local teardown proceeds even when
// the backend call fails, because cached secrets must not outlive the intent
// to lock. Idempotent.
func (s *Session) Lock(ctx context.Context) error {
	if !s.markLocked() {
		return nil
	}

	err := s.api.LockVault(ctx)
	if err != nil {
		s.log.Warn(ctx, "backend lock failed", "error", err)
	}

	s.teardown(ctx)
	s.log.Info(ctx, "session locked")
	return err
}

// lockLocal runs the local half of the lock flow after the backend reported
// VAULT_LOCKED: the vault is already locked server-side, so no lock_vault
// call is issued. Idempotent like Lock.
func (s *Session) lockLocal(ctx context.Context) {
	if !s.markLocked() {
		return
	}
	s.teardown(ctx)
	s.log.Info(ctx, "session locked by backend")
}

func (s *Session) markLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return false
	}
	s.locked = true
	return true
}

// teardown wipes the clipboard, drops every cache, stops the countdown and
// fires OnLocked.
func (s *Session) teardown(ctx context.Context) {
	if s.wipe != nil {
		s.wipe(ctx)
	}

	s.dataCards.Reset()
	s.bankCards.Reset()

	s.mu.Lock()
	s.folders = nil
	s.settings = models.DefaultSettings()
	s.mu.Unlock()

	s.autolock.Stop()
	s.events.locked()
}

// Locked reports whether Lock has run.
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Close releases timers without locking the vault.
func (s *Session) Close() {
	s.autolock.Stop()
	s.saverMu.Lock()
	defer s.saverMu.Unlock()
	for _, d := range s.savers {
		d.Stop()
	}
}

// Touch resets the idle countdown; the presentation layer calls it on every
// user action.
func (s *Session) Touch() {
	s.autolock.Touch()
}

func (s *Session) ProfileID() string { return s.profileID }

func (s *Session) DataCards() *DataCardSession { return s.dataCards }

func (s *Session) BankCards() *BankCardSession { return s.bankCards }

// Settings returns the cached per-profile settings.
func (s *Session) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings persists the settings and applies the authoritative copy:
// the auto-lock countdown is rearmed and new sort defaults reach any list
// without an explicit user preference.
func (s *Session) UpdateSettings(ctx context.Context, in models.Settings) error {
	dto, err := s.api.UpdateSettings(ctx, mapper.SettingsToBackend(in))
	if err != nil {
		return classify(ctx, s.deps, "update_settings", err)
	}

	settings := mapper.SettingsFromBackend(dto)

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.dataCards.applyDefaultSort(settings)
	s.bankCards.applyDefaultSort(settings)
	s.autolock.Apply(settings.AutoLockEnabled, settings.AutoLockTimeout)
	return nil
}

func (s *Session) refreshSettings(ctx context.Context) error {
	dto, err := s.api.GetSettings(ctx)
	if err != nil {
		return classify(ctx, s.deps, "get_settings", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = mapper.SettingsFromBackend(dto)
	return nil
}

// Folders returns the cached folder list.
func (s *Session) Folders() []models.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// FolderTree arranges the cached folders hierarchically.
func (s *Session) FolderTree() []*models.FolderNode {
	return BuildFolderTree(s.Folders())
}

// Folder looks up a cached folder by id.
func (s *Session) Folder(id string) (models.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.folders {
		if f.ID == id {
			return f, true
		}
	}
	return models.Folder{}, false
}

func (s *Session) folderName(id string) (string, bool) {
	f, ok := s.Folder(id)
	return f.Name, ok
}

func (s *Session) refreshFolders(ctx context.Context) error {
	dtos, err := s.api.ListFolders(ctx)
	if err != nil {
		return classify(ctx, s.deps, "list_folders", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = mapper.FoldersFromBackend(dtos)
	return nil
}

// CreateFolder creates a folder and appends the authoritative record to the
// cache. Sibling name collisions come back as FOLDER_NAME_EXISTS from the
// backend; only emptiness is checked locally.
func (s *Session) CreateFolder(ctx context.Context, name string, parentID *string) (models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return models.Folder{}, invalid(s.deps, "folder name is required")
	}

	dto, err := s.api.CreateFolder(ctx, name, parentID)
	if err != nil {
		return models.Folder{}, classify(ctx, s.deps, "create_folder", err)
	}

	folder := mapper.FolderFromBackend(dto)
	s.mu.Lock()
	s.folders = append(s.folders, folder)
	s.mu.Unlock()
	return folder, nil
}

// RenameFolder renames a folder and patches the cache from the authoritative
// record.
func (s *Session) RenameFolder(ctx context.Context, id, name string) (models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return models.Folder{}, invalid(s.deps, "folder name is required")
	}

	dto, err := s.api.RenameFolder(ctx, id, name)
	if err != nil {
		return models.Folder{}, classify(ctx, s.deps, "rename_folder", err)
	}

	folder := mapper.FolderFromBackend(dto)
	s.mu.Lock()
	for i := range s.folders {
		if s.folders[i].ID == folder.ID {
			s.folders[i] = folder
			break
		}
	}
	s.mu.Unlock()
	return folder, nil
}

// DeleteFolderOnly removes the folder while the backend unfiles its cards.
// Folder and card caches are reloaded afterwards since children and
// assignments changed server-side. System folders are refused locally.
func (s *Session) DeleteFolderOnly(ctx context.Context, id string) error {
	if f, ok := s.Folder(id); ok && f.IsSystem {
		return invalid(s.deps, "system folders cannot be deleted")
	}

	if err := s.api.DeleteFolderOnly(ctx, id); err != nil {
		return classify(ctx, s.deps, "delete_folder_only", err)
	}
	return s.reloadAfterFolderDelete(ctx, false)
}

// DeleteFolderAndCards removes the folder together with its cards; the trash
// pools are refreshed too when loaded, because deleted cards land there.
func (s *Session) DeleteFolderAndCards(ctx context.Context, id string) error {
	if f, ok := s.Folder(id); ok && f.IsSystem {
		return invalid(s.deps, "system folders cannot be deleted")
	}

	if err := s.api.DeleteFolderAndCards(ctx, id); err != nil {
		return classify(ctx, s.deps, "delete_folder_and_cards", err)
	}
	return s.reloadAfterFolderDelete(ctx, true)
}

func (s *Session) reloadAfterFolderDelete(ctx context.Context, withTrash bool) error {
	if err := s.refreshFolders(ctx); err != nil {
		return err
	}
	if err := s.dataCards.Load(ctx); err != nil {
		return err
	}
	if err := s.bankCards.Load(ctx); err != nil {
		return err
	}
	if withTrash {
		if s.dataCards.TrashLoaded() {
			if err := s.dataCards.RefreshTrash(ctx); err != nil {
				return err
			}
		}
		if s.bankCards.TrashLoaded() {
			if err := s.bankCards.RefreshTrash(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateBackup writes an encrypted backup through the backend.
func (s *Session) CreateBackup(ctx context.Context, path string) (BackupInfo, error) {
	dto, err := s.api.CreateBackup(ctx, path)
	if err != nil {
		return BackupInfo{}, classify(ctx, s.deps, "backup_create", err)
	}

	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	return BackupInfo{Path: dto.Path, CreatedAt: createdAt, SizeBytes: dto.SizeBytes}, nil
}

// RestoreBackup replaces vault contents from a backup file and then reloads
// every cache from scratch; nothing local survives a restore.
func (s *Session) RestoreBackup(ctx context.Context, path string) error {
	if err := s.api.RestoreBackup(ctx, path); err != nil {
		return classify(ctx, s.deps, "backup_restore", err)
	}

	s.dataCards.Reset()
	s.bankCards.Reset()
	return s.Open(ctx)
}

func (s *Session) restoreSortPrefs(ctx context.Context) {
	if s.prefs == nil {
		return
	}
	for kind, restore := range map[string]func(models.SortSpec){
		KindDataCards: s.dataCards.restoreSort,
		KindBankCards: s.bankCards.restoreSort,
	} {
		spec, ok, err := s.prefs.SortSpec(ctx, s.profileID, kind)
		if err != nil {
			s.log.Warn(ctx, "sort preference load failed", "kind", kind, "error", err)
			continue
		}
		if ok {
			restore(spec)
		}
	}
}

// saveSort writes a sort preference through a per-kind debouncer so rapid
// toggling costs one write.
func (s *Session) saveSort(kind string, spec models.SortSpec) {
	if s.prefs == nil {
		return
	}

	s.saverMu.Lock()
	d, ok := s.savers[kind]
	if !ok {
		d = NewDebouncer(s.saveDelay)
		s.savers[kind] = d
	}
	s.saverMu.Unlock()

	d.Trigger(func() {
		ctx := context.Background()
		if err := s.prefs.SaveSortSpec(ctx, s.profileID, kind, spec); err != nil {
			s.log.Warn(ctx, "sort preference save failed", "kind", kind, "error", err)
		}
	})
}
