package vault

import (
	"context"
	"sync"

	"github.com/vaultdesk/vaultdesk/internal/client/mapper"
	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// KindBankCards keys bank-card preferences in the local prefs store.
const KindBankCards = "bankcards"

// BankCardSession is the bank-card analog of DataCardSession: same lifecycle,
// same caches, same consistency policy. Bank cards have no attachments or
// OTP, and their archived state is an explicit field rather than a tag.
type BankCardSession struct {
	mu   sync.Mutex
	api  BankCardAPI
	deps sessionDeps

	cards       []models.BankCardSummary
	trash       []models.BankCardSummary
	trashLoaded bool
	details     map[string]models.BankCard

	nav        models.Nav
	selectedID string
	query      string
	filters    models.SearchFilters

	sortSpec     models.SortSpec
	sortExplicit bool
}

func newBankCardSession(api BankCardAPI, deps sessionDeps) *BankCardSession {
	return &BankCardSession{
		api:      api,
		deps:     deps,
		details:  make(map[string]models.BankCard),
		nav:      models.NavAll,
		sortSpec: deps.settings().Sort(),
	}
}

func (s *BankCardSession) Load(ctx context.Context) error {
	dtos, err := s.api.ListBankCardSummaries(ctx, false)
	if err != nil {
		return classify(ctx, s.deps, "list_bank_cards", err)
	}

	summaries := make([]models.BankCardSummary, 0, len(dtos))
	for _, d := range dtos {
		summaries = append(summaries, mapper.BankCardSummaryFromBackend(d))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = summaries
	return nil
}

func (s *BankCardSession) SelectNav(ctx context.Context, nav models.Nav) error {
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

func (s *BankCardSession) RefreshTrash(ctx context.Context) error {
	dtos, err := s.api.ListBankCardSummaries(ctx, true)
	if err != nil {
		return classify(ctx, s.deps, "list_bank_cards_trash", err)
	}

	summaries := make([]models.BankCardSummary, 0, len(dtos))
	for _, d := range dtos {
		summaries = append(summaries, mapper.BankCardSummaryFromBackend(d))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trash = summaries
	s.trashLoaded = true
	return nil
}

func (s *BankCardSession) CreateCard(ctx context.Context, in models.BankCardInput) (*models.BankCard, error) {
	if err := validateBankCardInput(in); err != nil {
		return nil, invalid(s.deps, err.Error())
	}

	dto, err := s.api.CreateBankCard(ctx, mapper.BankCardInputToBackend(in))
	if err != nil {
		return nil, classify(ctx, s.deps, "create_bank_card", err)
	}

	card := mapper.BankCardFromBackend(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[card.ID] = card
	s.cards = append(s.cards, mapper.BankCardToSummary(card))
	s.selectedID = card.ID
	if s.nav.InTrash() {
		s.nav = models.NavAll
	}
	return &card, nil
}

func (s *BankCardSession) UpdateCard(ctx context.Context, id string, in models.BankCardInput) (*models.BankCard, error) {
	if err := validateBankCardInput(in); err != nil {
		return nil, invalid(s.deps, err.Error())
	}

	if err := s.api.UpdateBankCard(ctx, id, mapper.BankCardInputToBackend(in)); err != nil {
		return nil, classify(ctx, s.deps, "update_bank_card", err)
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

func (s *BankCardSession) loadCard(ctx context.Context, id string) (*models.BankCard, error) {
	dto, err := s.api.GetBankCard(ctx, id)
	if err != nil {
		return nil, classify(ctx, s.deps, "get_bank_card", err)
	}

	card := mapper.BankCardFromBackend(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[card.ID] = card
	for i := range s.cards {
		if s.cards[i].ID == card.ID {
			s.cards[i] = mapper.BankCardToSummary(card)
			break
		}
	}
	return &card, nil
}

func (s *BankCardSession) DeleteCard(ctx context.Context, id string) error {
	s.mu.Lock()
	snapshot, found := s.snapshotSummaryLocked(id)
	s.mu.Unlock()

	if err := s.api.DeleteBankCard(ctx, id); err != nil {
		return classify(ctx, s.deps, "delete_bank_card", err)
	}

	soft := s.deps.settings().SoftDeleteEnabled

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = removeByID(s.cards, id, func(c models.BankCardSummary) string { return c.ID })
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

func (s *BankCardSession) snapshotSummaryLocked(id string) (models.BankCardSummary, bool) {
	if d, ok := s.details[id]; ok {
		return mapper.BankCardToSummary(d), true
	}
	for _, c := range s.cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.BankCardSummary{}, false
}

func (s *BankCardSession) RestoreCard(ctx context.Context, id string) error {
	if err := s.api.RestoreBankCard(ctx, id); err != nil {
		return classify(ctx, s.deps, "restore_bank_card", err)
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

func (s *BankCardSession) PurgeCard(ctx context.Context, id string) error {
	if err := s.api.PurgeBankCard(ctx, id); err != nil {
		return classify(ctx, s.deps, "purge_bank_card", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trash = removeByID(s.trash, id, func(c models.BankCardSummary) string { return c.ID })
	delete(s.details, id)
	if s.selectedID == id {
		s.selectedID = ""
	}
	return nil
}

func (s *BankCardSession) RestoreAllTrash(ctx context.Context) error {
	s.mu.Lock()
	empty := len(s.trash) == 0
	s.mu.Unlock()
	if empty {
		return nil
	}

	if err := s.api.RestoreAllBankCards(ctx); err != nil {
		return classify(ctx, s.deps, "restore_all_bank_cards", err)
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

func (s *BankCardSession) PurgeAllTrash(ctx context.Context) error {
	s.mu.Lock()
	empty := len(s.trash) == 0
	s.mu.Unlock()
	if empty {
		return nil
	}

	if err := s.api.PurgeAllBankCards(ctx); err != nil {
		return classify(ctx, s.deps, "purge_all_bank_cards", err)
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

func (s *BankCardSession) ToggleFavorite(ctx context.Context, id string) error {
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
	if err := s.api.SetBankCardFavorite(ctx, id, next); err != nil {
		return classify(ctx, s.deps, "set_bank_card_favorite", err)
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

func (s *BankCardSession) MoveCardToFolder(ctx context.Context, id string, folderID *string) error {
	if err := s.api.MoveBankCardToFolder(ctx, id, folderID); err != nil {
		return classify(ctx, s.deps, "move_bank_card_to_folder", err)
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

func (s *BankCardSession) SelectCard(ctx context.Context, id string) error {
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

func (s *BankCardSession) Selected() (models.BankCard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return models.BankCard{}, false
	}
	d, ok := s.details[s.selectedID]
	return d, ok
}

func (s *BankCardSession) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

func (s *BankCardSession) Nav() models.Nav {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

func (s *BankCardSession) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

func (s *BankCardSession) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *BankCardSession) SetFilters(f models.SearchFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *BankCardSession) Filters() models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *BankCardSession) SetSort(spec models.SortSpec) {
	if !spec.Valid() {
		spec = models.DefaultSort
	}
	s.mu.Lock()
	s.sortSpec = spec
	s.sortExplicit = true
	s.mu.Unlock()
	if s.deps.saveSort != nil {
		s.deps.saveSort(KindBankCards, spec)
	}
}

func (s *BankCardSession) Sort() models.SortSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortSpec
}

func (s *BankCardSession) restoreSort(spec models.SortSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if spec.Valid() {
		s.sortSpec = spec
		s.sortExplicit = true
	}
}

func (s *BankCardSession) applyDefaultSort(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sortExplicit {
		s.sortSpec = settings.Sort()
	}
}

func (s *BankCardSession) VisibleCards() []models.BankCardSummary {
	s.mu.Lock()
	pool := s.cards
	if s.nav.InTrash() {
		pool = s.trash
	}
	visible := make([]models.BankCardSummary, 0, len(pool))
	for _, c := range pool {
		if bankCardMatches(c, s.nav, s.filters, s.query) {
			visible = append(visible, c)
		}
	}
	spec := s.sortSpec
	s.mu.Unlock()

	return SortBankCardSummaries(visible, spec)
}

func (s *BankCardSession) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countSummaries(s.cards, s.trash, func(c models.BankCardSummary) countKey {
		return countKey{favorite: c.IsFavorite, archived: c.Archived, folderID: c.FolderID}
	})
}

func (s *BankCardSession) SectionTitle() string {
	s.mu.Lock()
	nav := s.nav
	s.mu.Unlock()
	return sectionTitle(nav, s.deps.folderName)
}

func (s *BankCardSession) TrashLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trashLoaded
}

func (s *BankCardSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = nil
	s.trash = nil
	s.trashLoaded = false
	s.details = make(map[string]models.BankCard)
	s.nav = models.NavAll
	s.selectedID = ""
	s.query = ""
	s.filters = models.SearchFilters{}
}
