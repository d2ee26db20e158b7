package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultdesk/vaultdesk/internal/bridge"
	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

func newDataSession(t *testing.T, api *fakeAPI, rec *eventRecorder, settings models.Settings) *DataCardSession {
	t.Helper()
	s := newDataCardSession(api, testDeps(rec, settings))
	require.NoError(t, s.Load(context.Background()))
	return s
}

// loadTrash makes the session fetch the trash pool and returns to All.
func loadTrash(t *testing.T, s *DataCardSession) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.SelectNav(ctx, models.Nav{Bucket: models.BucketDeleted}))
	require.NoError(t, s.SelectNav(ctx, models.NavAll))
}

func TestCreateCard_AppearsOnceAndIsSelected(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	card, err := s.CreateCard(context.Background(), models.DataCardInput{Title: "Work Email", Username: "alex@corp.example"})
	require.NoError(t, err)

	visible := s.VisibleCards()
	require.Len(t, visible, 1)
	assert.Equal(t, card.ID, visible[0].ID)
	assert.Equal(t, card.ID, s.SelectedID())
	assert.Equal(t, 1, api.callCount("create"))
}

func TestCreateCard_EmptyTitleRejectedWithoutBackendCall(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	_, err := s.CreateCard(context.Background(), models.DataCardInput{Title: "   "})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.callCount("create"))
	assert.Equal(t, []string{bridge.CodeValidationError}, rec.noticeCodes())
}

func TestCreateCard_WhileInTrashReturnsToAll(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	ctx := context.Background()

	require.NoError(t, s.SelectNav(ctx, models.Nav{Bucket: models.BucketDeleted}))
	_, err := s.CreateCard(ctx, models.DataCardInput{Title: "New"})
	require.NoError(t, err)

	assert.Equal(t, models.BucketAll, s.Nav().Bucket)
}

func TestUpdateCard_ShowsBackendTruthNotLocalDiff(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Old Title")
	api.mu.Lock()
	api.cards["c1"] = cardRecord("c1", "Server Truth")
	api.mu.Unlock()

	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	card, err := s.UpdateCard(context.Background(), "c1", models.DataCardInput{Title: "Local Guess"})
	require.NoError(t, err)

	assert.Equal(t, "Server Truth", card.Title)
	visible := s.VisibleCards()
	require.Len(t, visible, 1)
	assert.Equal(t, "Server Truth", visible[0].Title)
	assert.Equal(t, 1, api.callCount("update"))
	assert.Equal(t, 1, api.callCount("get"))
}

func TestDeleteCard_SoftDeleteSynthesizesLocalTrashEntry(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	loadTrash(t, s)

	require.NoError(t, s.DeleteCard(context.Background(), "c1"))

	assert.Empty(t, s.VisibleCards())
	require.NoError(t, s.SelectNav(context.Background(), models.Nav{Bucket: models.BucketDeleted}))
	trash := s.VisibleCards()
	require.Len(t, trash, 1)
	assert.Equal(t, "c1", trash[0].ID)
	require.NotNil(t, trash[0].DeletedAt)
	assert.Equal(t, testNow, *trash[0].DeletedAt)

	// The cached pool served the second visit; one trash fetch total.
	assert.Equal(t, 1, api.callCount("list_trash"))
	assert.Equal(t, 1, api.callCount("delete"))
}

func TestDeleteCard_TrashNotLoadedSkipsSynthesis(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	require.NoError(t, s.DeleteCard(context.Background(), "c1"))

	assert.Empty(t, s.VisibleCards())
	assert.False(t, s.TrashLoaded())
	assert.Equal(t, 1, api.callCount("delete"))
}

func TestDeleteCard_HardDeletePurgesDetailCache(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	api.mu.Lock()
	api.cards["c1"] = cardRecord("c1", "Work Email")
	api.mu.Unlock()

	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, hardSettings())
	require.NoError(t, s.SelectCard(context.Background(), "c1"))

	require.NoError(t, s.DeleteCard(context.Background(), "c1"))

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.VisibleCards())
}

func TestDeleteCard_BackendFailureLeavesStateUntouched(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	api.failWith("delete", &bridge.Error{Code: bridge.CodeNetworkError})
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	err := s.DeleteCard(context.Background(), "c1")

	require.Error(t, err)
	assert.Len(t, s.VisibleCards(), 1, "failed delete must not remove the card locally")
	assert.Equal(t, []string{bridge.CodeNetworkError}, rec.noticeCodes())
}

func TestRestoreCard_ClearsDeletedAt(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	loadTrash(t, s)
	require.NoError(t, s.DeleteCard(context.Background(), "c1"))

	require.NoError(t, s.RestoreCard(context.Background(), "c1"))

	visible := s.VisibleCards()
	require.Len(t, visible, 1)
	assert.Equal(t, "c1", visible[0].ID)
	assert.Nil(t, visible[0].DeletedAt)
	assert.Equal(t, 1, api.callCount("restore"))
}

func TestPurgeCard_GoneFromTrashAndDetails(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	api.mu.Lock()
	api.cards["c1"] = cardRecord("c1", "Work Email")
	api.mu.Unlock()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	require.NoError(t, s.SelectCard(context.Background(), "c1"))
	loadTrash(t, s)
	require.NoError(t, s.DeleteCard(context.Background(), "c1"))

	require.NoError(t, s.PurgeCard(context.Background(), "c1"))

	require.NoError(t, s.SelectNav(context.Background(), models.Nav{Bucket: models.BucketDeleted}))
	assert.Empty(t, s.VisibleCards())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestRestoreAllTrash_EmptyIsNoOpWithoutBackendCall(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	loadTrash(t, s)

	require.NoError(t, s.RestoreAllTrash(context.Background()))
	require.NoError(t, s.PurgeAllTrash(context.Background()))

	assert.Zero(t, api.callCount("restore_all"))
	assert.Zero(t, api.callCount("purge_all"))
}

func TestRestoreAllTrash_MovesEverythingBack(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "One", "c2", "Two")
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	loadTrash(t, s)
	require.NoError(t, s.DeleteCard(context.Background(), "c1"))
	require.NoError(t, s.DeleteCard(context.Background(), "c2"))

	require.NoError(t, s.RestoreAllTrash(context.Background()))

	assert.Len(t, s.VisibleCards(), 2)
	require.NoError(t, s.SelectNav(context.Background(), models.Nav{Bucket: models.BucketDeleted}))
	assert.Empty(t, s.VisibleCards())
	assert.Equal(t, 1, api.callCount("restore_all"))
}

func TestToggleFavorite_TwiceMakesTwoBackendCalls(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	ctx := context.Background()

	require.NoError(t, s.ToggleFavorite(ctx, "c1"))
	require.True(t, s.VisibleCards()[0].IsFavorite)

	require.NoError(t, s.ToggleFavorite(ctx, "c1"))
	assert.False(t, s.VisibleCards()[0].IsFavorite)

	assert.Equal(t, 2, api.callCount("set_favorite"),
		"no deduplication: every toggle is its own backend call")
}

func TestToggleFavorite_UnknownCardSkipsBackend(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	require.NoError(t, s.ToggleFavorite(context.Background(), "ghost"))
	assert.Zero(t, api.callCount("set_favorite"))
}

func TestMoveCardToFolder_PatchesInPlace(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	require.NoError(t, s.MoveCardToFolder(context.Background(), "c1", strPtr("f1")))

	require.NotNil(t, s.VisibleCards()[0].FolderID)
	assert.Equal(t, "f1", *s.VisibleCards()[0].FolderID)
	assert.Equal(t, 1, api.callCount("move"))
	assert.Zero(t, api.callCount("get"), "folder move does not re-fetch")
}

func TestVaultLockedError_FiresLockEventWithoutNotice(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	api.failWith("delete", &bridge.Error{Code: bridge.CodeVaultLocked})
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	err := s.DeleteCard(context.Background(), "c1")

	require.Error(t, err)
	assert.Equal(t, 1, rec.lockedCount())
	assert.Empty(t, rec.noticeCodes(), "locked failures surface via the lock flow, not a toast")
}

func TestUnknownErrorCode_GetsGenericNoticeWithRawCode(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	api.failWith("delete", &bridge.Error{Code: "QUOTA_EXCEEDED"})
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())

	require.Error(t, s.DeleteCard(context.Background(), "c1"))

	require.Len(t, rec.notices, 1)
	assert.Equal(t, "QUOTA_EXCEEDED", rec.notices[0].Code)
	assert.Contains(t, rec.notices[0].Message, "QUOTA_EXCEEDED")
}

func TestAttachments_MutationsRefetchRecord(t *testing.T) {
	api := newFakeAPI()
	api.active = dataSummaries("c1", "Work Email")
	api.mu.Lock()
	api.cards["c1"] = cardRecord("c1", "Work Email")
	api.mu.Unlock()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	ctx := context.Background()

	att, err := s.AddAttachment(ctx, "c1", "scan.pdf", []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", att.FileName)
	assert.Equal(t, 1, api.callCount("get"))

	require.NoError(t, s.DeleteAttachment(ctx, "c1", att.ID))
	assert.Equal(t, 2, api.callCount("get"))

	content, err := s.Attachment(ctx, "c1", att.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)
	assert.Equal(t, 2, api.callCount("get"), "content fetch does not reload the record")
}

func TestReset_KeepsSortPreference(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	s := newDataSession(t, api, rec, softSettings())
	spec := models.SortSpec{Field: models.SortByUpdatedAt, Direction: models.SortDesc}
	s.SetSort(spec)

	s.Reset()

	assert.Equal(t, spec, s.Sort())
	assert.Equal(t, models.BucketAll, s.Nav().Bucket)
	assert.Empty(t, s.SearchQuery())
}

func TestSectionTitles(t *testing.T) {
	api := newFakeAPI()
	rec := &eventRecorder{}
	deps := testDeps(rec, softSettings())
	deps.folderName = func(id string) (string, bool) {
		if id == "f1" {
			return "Work", true
		}
		return "", false
	}
	s := newDataCardSession(api, deps)
	ctx := context.Background()

	assert.Equal(t, "All Items", s.SectionTitle())

	require.NoError(t, s.SelectNav(ctx, models.Nav{Bucket: models.BucketFavorites}))
	assert.Equal(t, "Favorites", s.SectionTitle())

	require.NoError(t, s.SelectNav(ctx, models.NavFolder("f1")))
	assert.Equal(t, "Work", s.SectionTitle())

	require.NoError(t, s.SelectNav(ctx, models.NavFolder("ghost")))
	assert.Equal(t, "Folder", s.SectionTitle())
}
