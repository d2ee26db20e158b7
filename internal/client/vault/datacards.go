package vault

import (
	"context"
	"strings"
	"sync"

	"github.com/vaultdesk/vaultdesk/internal/client/mapper"
	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// KindDataCards keys data-card preferences in the local prefs store.
const KindDataCards = "datacards"

// DataCardSession is the client-side lifecycle manager for data cards within
// one unlocked profile. It caches list summaries, the lazily loaded trash
// pool and full records by id, and keeps them in sync with the backend
// around every mutation. State is guarded by a single mutex; operations hold
// it only while reading or patching local state, never across two backend
// calls issued by different actions.
type DataCardSession struct {
	mu   sync.Mutex
	api  DataCardAPI
	deps sessionDeps

	cards       []models.DataCardSummary
	trash       []models.DataCardSummary
	trashLoaded bool
	details     map[string]models.DataCard

	nav        models.Nav
	selectedID string
	query      string
	filters    models.SearchFilters

	sortSpec models.SortSpec
	// sortExplicit is set once the user picked a sort (directly or via a
	// restored preference); settings defaults stop applying then.
	sortExplicit bool
}

func newDataCardSession(api DataCardAPI, deps sessionDeps) *DataCardSession {
	return &DataCardSession{
		api:      api,
		deps:     deps,
		details:  make(map[string]models.DataCard),
		nav:      models.NavAll,
		sortSpec: deps.settings().Sort(),
	}
}

// Load replaces the active pool with the backend's current summaries.
func (s *DataCardSession) Load(ctx context.Context) error {
	dtos, err := s.api.ListDataCardSummaries(ctx, false)
	if err != nil {
		return classify(ctx, s.deps, "list_datacards", err)
	}

	summaries := make([]models.DataCardSummary, 0, len(dtos))
	for _, d := range dtos {
		summaries = append(summaries, mapper.DataCardSummaryFromBackend(d))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = summaries
	return nil
}

// SelectNav switches the list view and clears the item selection. Entering
// the trash for the first time in a session triggers its lazy load; later
// visits reuse the cached pool until RefreshTrash is called.
func (s *DataCardSession) SelectNav(ctx context.Context, nav models.Nav) error {
	s.mu.Lock()
	s.nav = nav
	s.selectedID = ""
	needTrash := nav.InTrash() && !s.trashLoaded
	s.mu.Unlock()

	if needTrash {
		return s.RefreshTrash(ctx)
	}
	return nil
}

// RefreshTrash fetches the authoritative soft-deleted pool.
func (s *DataCardSession) RefreshTrash(ctx context.Context) error {
	dtos, err := s.api.ListDataCardSummaries(ctx, true)
	if err != nil {
		return classify(ctx, s.deps, "list_datacards_trash", err)
	}

	summaries := make([]models.DataCardSummary, 0, len(dtos))
	for _, d := range dtos {
		summaries = append(summaries, mapper.DataCardSummaryFromBackend(d))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trash = summaries
	s.trashLoaded = true
	return nil
}

// CreateCard persists a new card and, on success, inserts the authoritative
// record into the active pool, caches its detail and selects it. There is no
// optimistic insert: a failed call leaves local state untouched and returns
// nil.
func (s *DataCardSession) CreateCard(ctx context.Context, in models.DataCardInput) (*models.DataCard, error) {
	if err := validateDataCardInput(in); err != nil {
		return nil, invalid(s.deps, err.Error())
	}

	dto, err := s.api.CreateDataCard(ctx, mapper.DataCardInputToBackend(in))
	if err != nil {
		return nil, classify(ctx, s.deps, "create_datacard", err)
	}

	card := mapper.DataCardFromBackend(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[card.ID] = card
	s.cards = append(s.cards, mapper.DataCardToSummary(card))
	s.selectedID = card.ID
	if s.nav.InTrash() {
		s.nav = models.NavAll
	}
	return &card, nil
}

// UpdateCard persists edits and then re-fetches the full record instead of
// trusting the local diff, so the UI never shows data the backend did not
// actually store. While browsing the trash the trash pool is refreshed too,
// since an update may change a soft-deleted item's visible summary.
func (s *DataCardSession) UpdateCard(ctx context.Context, id string, in models.DataCardInput) (*models.DataCard, error) {
	if err := validateDataCardInput(in); err != nil {
		return nil, invalid(s.deps, err.Error())
	}

	if err := s.api.UpdateDataCard(ctx, id, mapper.DataCardInputToBackend(in)); err != nil {
		return nil, classify(ctx, s.deps, "update_datacard", err)
	}

	card, err := s.loadCard(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	inTrash := s.nav.InTrash()
	s.mu.Unlock()
	if inTrash {
		if err := s.RefreshTrash(ctx); err != nil {
			s.deps.log.Warn(ctx, "trash refresh after update failed", "id", id)
		}
	}

	return card, nil
}

// loadCard fetches the authoritative record, refreshing the detail cache and
// the matching active-list summary.
func (s *DataCardSession) loadCard(ctx context.Context, id string) (*models.DataCard, error) {
	dto, err := s.api.GetDataCard(ctx, id)
	if err != nil {
		return nil, classify(ctx, s.deps, "get_datacard", err)
	}

	card := mapper.DataCardFromBackend(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[card.ID] = card
	for i := range s.cards {
		if s.cards[i].ID == card.ID {
			s.cards[i] = mapper.DataCardToSummary(card)
			break
		}
	}
	return &card, nil
}

// DeleteCard removes the card from the active pool. With soft delete enabled
// and the trash already loaded this session, a local trash entry is
// synthesized from the cached detail (or the prior list summary) and stamped
// with the client clock; the next authoritative trash refresh replaces the
// approximation. With soft delete disabled the card is purged from the
// detail cache outright.
func (s *DataCardSession) DeleteCard(ctx context.Context, id string) error {
	s.mu.Lock()
	snapshot, found := s.snapshotSummaryLocked(id)
	s.mu.Unlock()
	if !found {
		s.deps.log.Debug(ctx, "delete of unknown card", "id", id)
	}

	if err := s.api.DeleteDataCard(ctx, id); err != nil {
		return classify(ctx, s.deps, "delete_datacard", err)
	}

	soft := s.deps.settings().SoftDeleteEnabled

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = removeByID(s.cards, id, func(c models.DataCardSummary) string { return c.ID })
	if s.selectedID == id {
		s.selectedID = ""
	}

	if soft && s.trashLoaded && found {
		now := s.deps.now()
		snapshot.DeletedAt = &now
		s.trash = append(s.trash, snapshot)
		if d, ok := s.details[id]; ok {
			d.DeletedAt = &now
			s.details[id] = d
		}
		return nil
	}

	delete(s.details, id)
	return nil
}

// snapshotSummaryLocked captures the card's summary before deletion,
// preferring the richer detail cache over the list entry.
func (s *DataCardSession) snapshotSummaryLocked(id string) (models.DataCardSummary, bool) {
	if d, ok := s.details[id]; ok {
		return mapper.DataCardToSummary(d), true
	}
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.DataCardSummary{}, false
}

// RestoreCard moves a soft-deleted card back to the active pool. The backend
// call must succeed before any local mutation.
func (s *DataCardSession) RestoreCard(ctx context.Context, id string) error {
	if err := s.api.RestoreDataCard(ctx, id); err != nil {
		return classify(ctx, s.deps, "restore_datacard", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.trash {
		if t.ID == id {
			s.trash = append(s.trash[:i], s.trash[i+1:]...)
			t.DeletedAt = nil
			s.cards = append(s.cards, t)
			break
		}
	}
	if d, ok := s.details[id]; ok {
		d.DeletedAt = nil
		s.details[id] = d
	}
	return nil
}

// PurgeCard permanently removes a soft-deleted card from every local cache.
func (s *DataCardSession) PurgeCard(ctx context.Context, id string) error {
	if err := s.api.PurgeDataCard(ctx, id); err != nil {
		return classify(ctx, s.deps, "purge_datacard", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trash = removeByID(s.trash, id, func(c models.DataCardSummary) string { return c.ID })
	delete(s.details, id)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return nil
}

// RestoreAllTrash restores every soft-deleted card. No-op without a backend
// call when the local trash cache is empty.
func (s *DataCardSession) RestoreAllTrash(ctx context.Context) error {
	s.mu.Lock()
	empty := len(s.trash) == 0
	s.mu.Unlock()
	if empty {
		return nil
	}

	if err := s.api.RestoreAllDataCards(ctx); err != nil {
		return classify(ctx, s.deps, "restore_all_datacards", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trash {
		t.DeletedAt = nil
		s.cards = append(s.cards, t)
		if d, ok := s.details[t.ID]; ok {
			d.DeletedAt = nil
			s.details[t.ID] = d
		}
	}
	s.trash = nil
	return nil
}

// PurgeAllTrash permanently removes every soft-deleted card. No-op without a
// backend call when the local trash cache is empty.
func (s *DataCardSession) PurgeAllTrash(ctx context.Context) error {
	s.mu.Lock()
	empty := len(s.trash) == 0
	s.mu.Unlock()
	if empty {
		return nil
	}

	if err := s.api.PurgeAllDataCards(ctx); err != nil {
		return classify(ctx, s.deps, "purge_all_datacards", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trash {
		delete(s.details, t.ID)
		if s.selectedID == t.ID {
			s.selectedID = ""
		}
	}
	s.trash = nil
	return nil
}

// ToggleFavorite flips the favorite flag read from the active list, persists
// it, then patches the summary and detail caches in place. This is one of
// the two deliberate optimistic patches: a lone boolean with no derived
// state does not warrant a re-fetch.
func (s *DataCardSession) ToggleFavorite(ctx context.Context, id string) error {
	s.mu.Lock()
	var current, found bool
	for _, c := range s.cards {
		if c.ID == id {
			current = c.IsFavorite
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		s.deps.log.Debug(ctx, "favorite toggle for unknown card", "id", id)
		return nil
	}

	next := !current
	if err := s.api.SetDataCardFavorite(ctx, id, next); err != nil {
		return classify(ctx, s.deps, "set_datacard_favorite", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].IsFavorite = next
			break
		}
	}
	if d, ok := s.details[id]; ok {
		d.IsFavorite = next
		s.details[id] = d
	}
	return nil
}

// MoveCardToFolder persists the new folder assignment and patches local
// caches in place (the other deliberate optimistic patch).
func (s *DataCardSession) MoveCardToFolder(ctx context.Context, id string, folderID *string) error {
	if err := s.api.MoveDataCardToFolder(ctx, id, folderID); err != nil {
		return classify(ctx, s.deps, "move_datacard_to_folder", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].FolderID = folderID
			break
		}
	}
	if d, ok := s.details[id]; ok {
		d.FolderID = folderID
		s.details[id] = d
	}
	return nil
}

// SelectCard marks the card selected and loads its full record if the detail
// cache misses. List rendering keeps working off the summary meanwhile.
func (s *DataCardSession) SelectCard(ctx context.Context, id string) error {
	s.mu.Lock()
	s.selectedID = id
	_, cached := s.details[id]
	s.mu.Unlock()

	if cached {
		return nil
	}
	_, err := s.loadCard(ctx, id)
	return err
}

// Selected returns the full record of the selected card, if its detail is
// cached.
func (s *DataCardSession) Selected() (models.DataCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return models.DataCard{}, false
	}
	d, ok := s.details[s.selectedID]
	return d, ok
}

// SelectedID returns the current selection, "" when nothing is selected.
func (s *DataCardSession) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// AddAttachment uploads a file to the card and re-fetches the record, since
// attachments change derived summary state.
func (s *DataCardSession) AddAttachment(ctx context.Context, cardID, fileName string, content []byte) (models.Attachment, error) {
	dto, err := s.api.AddDataCardAttachment(ctx, cardID, fileName, content)
	if err != nil {
		return models.Attachment{}, classify(ctx, s.deps, "add_datacard_attachment", err)
	}
	if _, err := s.loadCard(ctx, cardID); err != nil {
		return models.Attachment{}, err
	}
	return models.Attachment{ID: dto.ID, FileName: dto.FileName, Size: dto.Size}, nil
}

// Attachment fetches attachment content; nothing is cached locally.
func (s *DataCardSession) Attachment(ctx context.Context, cardID, attachmentID string) ([]byte, error) {
	content, err := s.api.GetDataCardAttachment(ctx, cardID, attachmentID)
	if err != nil {
		return nil, classify(ctx, s.deps, "get_datacard_attachment", err)
	}
	return content, nil
}

// DeleteAttachment removes an attachment and re-fetches the record.
func (s *DataCardSession) DeleteAttachment(ctx context.Context, cardID, attachmentID string) error {
	if err := s.api.DeleteDataCardAttachment(ctx, cardID, attachmentID); err != nil {
		return classify(ctx, s.deps, "delete_datacard_attachment", err)
	}
	_, err := s.loadCard(ctx, cardID)
	return err
}

// Nav returns the current navigation target.
func (s *DataCardSession) Nav() models.Nav {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// SetSearchQuery updates the text query applied by VisibleCards.
func (s *DataCardSession) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

func (s *DataCardSession) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetFilters updates the structural search filters.
func (s *DataCardSession) SetFilters(f models.SearchFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *DataCardSession) Filters() models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetSort selects the list ordering and persists it as a device preference.
func (s *DataCardSession) SetSort(spec models.SortSpec) {
	if !spec.Valid() {
		spec = models.DefaultSort
	}
	s.mu.Lock()
	s.sortSpec = spec
	s.sortExplicit = true
	s.mu.Unlock()
	if s.deps.saveSort != nil {
		s.deps.saveSort(KindDataCards, spec)
	}
}

func (s *DataCardSession) Sort() models.SortSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortSpec
}

// restoreSort applies a remembered device preference without re-saving it.
func (s *DataCardSession) restoreSort(spec models.SortSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if spec.Valid() {
		s.sortSpec = spec
		s.sortExplicit = true
	}
}

// applyDefaultSort lets fresh settings take effect unless the user has an
// explicit preference.
func (s *DataCardSession) applyDefaultSort(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sortExplicit {
		s.sortSpec = settings.Sort()
	}
}

// VisibleCards derives the currently visible list: active or trash pool by
// navigation mode, narrowed by bucket, structural filters and the text
// query, ordered by the current sort. Recomputed on demand, never stored.
func (s *DataCardSession) VisibleCards() []models.DataCardSummary {
	s.mu.Lock()
	pool := s.cards
	if s.nav.InTrash() {
		pool = s.trash
	}
	visible := make([]models.DataCardSummary, 0, len(pool))
	for _, c := range pool {
		if dataCardMatches(c, s.nav, s.filters, s.query) {
			visible = append(visible, c)
		}
	}
	spec := s.sortSpec
	s.mu.Unlock()

	return SortDataCardSummaries(visible, spec)
}

// Counts returns per-bucket and per-folder totals over the active pool plus
// the cached trash size.
func (s *DataCardSession) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countSummaries(s.cards, s.trash, func(c models.DataCardSummary) countKey {
		return countKey{favorite: c.IsFavorite, archived: c.Archived, folderID: c.FolderID}
	})
}

// SectionTitle resolves the heading for the current navigation target.
func (s *DataCardSession) SectionTitle() string {
	s.mu.Lock()
	nav := s.nav
	s.mu.Unlock()
	return sectionTitle(nav, s.deps.folderName)
}

// TrashLoaded reports whether the trash pool was fetched this session.
func (s *DataCardSession) TrashLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trashLoaded
}

// Reset drops all cached state, returning the session to its just-created
// shape. Sort preferences survive; they are device state, not vault state.
func (s *DataCardSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = nil
	s.trash = nil
	s.trashLoaded = false
	s.details = make(map[string]models.DataCard)
	s.nav = models.NavAll
	s.selectedID = ""
	s.query = ""
	s.filters = models.SearchFilters{}
}

// sectionTitle maps a navigation target to its heading. Localization happens
// in the presentation layer.
func sectionTitle(nav models.Nav, folderName func(string) (string, bool)) string {
	switch nav.Bucket {
	case models.BucketFavorites:
		return "Favorites"
	case models.BucketArchive:
		return "Archive"
	case models.BucketDeleted:
		return "Trash"
	case models.BucketFolder:
		if folderName != nil {
			if name, ok := folderName(nav.FolderID); ok {
				return name
			}
		}
		return "Folder"
	}
	return "All Items"
}

// removeByID drops the first element whose id matches.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

func validateDataCardInput(in models.DataCardInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return errTitleRequired
	}
	return nil
}
