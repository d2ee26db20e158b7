package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSortSpec_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.SortSpec(ctx, "p1", "datacards")
	require.NoError(t, err)
	assert.False(t, ok, "nothing saved yet")

	spec := models.SortSpec{Field: models.SortByCreatedAt, Direction: models.SortDesc}
	require.NoError(t, s.SaveSortSpec(ctx, "p1", "datacards", spec))

	got, ok, err := s.SortSpec(ctx, "p1", "datacards")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, spec, got)
}

func TestSaveSortSpec_Upserts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := models.SortSpec{Field: models.SortByTitle, Direction: models.SortAsc}
	second := models.SortSpec{Field: models.SortByUpdatedAt, Direction: models.SortDesc}
	require.NoError(t, s.SaveSortSpec(ctx, "p1", "datacards", first))
	require.NoError(t, s.SaveSortSpec(ctx, "p1", "datacards", second))

	got, ok, err := s.SortSpec(ctx, "p1", "datacards")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestSortSpec_KeyedByProfileAndKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSortSpec(ctx, "p1", "datacards",
		models.SortSpec{Field: models.SortByTitle, Direction: models.SortAsc}))

	_, ok, err := s.SortSpec(ctx, "p2", "datacards")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.SortSpec(ctx, "p1", "bankcards")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSortSpec_InvalidStoredValueReadsAsMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sort_prefs (profile_id, kind, field, direction) VALUES ('p1', 'datacards', 'bogus', 'asc')`)
	require.NoError(t, err)

	_, ok, err := s.SortSpec(ctx, "p1", "datacards")
	require.NoError(t, err)
	assert.False(t, ok, "a spec saved by a newer version must not surface")
}

func TestDrafts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Draft(ctx, "p1", "datacard")
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`{"title":"Work Email"}`)
	require.NoError(t, s.SaveDraft(ctx, "p1", "datacard", payload))

	got, ok, err := s.Draft(ctx, "p1", "datacard")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, got)

	updated := []byte(`{"title":"Work Email","username":"alex"}`)
	require.NoError(t, s.SaveDraft(ctx, "p1", "datacard", updated))
	got, _, err = s.Draft(ctx, "p1", "datacard")
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, s.DeleteDraft(ctx, "p1", "datacard"))
	_, ok, err = s.Draft(ctx, "p1", "datacard")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.DeleteDraft(ctx, "p1", "datacard"), "deleting a missing draft is fine")
}
