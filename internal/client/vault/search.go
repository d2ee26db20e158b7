package vault

import (
	"strings"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// matchesQuery does a case-insensitive substring match of query against the
// given text fields. An empty query matches everything, which also makes
// filtering idempotent: re-filtering an already matching list by the same
// query is a no-op.
func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// dataCardInBucket applies the navigation bucket to an active-pool summary.
// Archived cards show up only under the archive bucket; the trash bucket is
// handled by pool selection, not here.
func dataCardInBucket(s models.DataCardSummary, nav models.Nav) bool {
	switch nav.Bucket {
	case models.BucketAll:
		return !s.Archived
	case models.BucketFavorites:
		return s.IsFavorite && !s.Archived
	case models.BucketArchive:
		return s.Archived
	case models.BucketFolder:
		return !s.Archived && s.FolderID != nil && *s.FolderID == nav.FolderID
	case models.BucketDeleted:
		return true
	}
	return false
}

func dataCardMatchesFilters(s models.DataCardSummary, f models.SearchFilters) bool {
	if f.HasAttachments && !s.HasAttachments {
		return false
	}
	if f.HasOTP && !s.HasOTP {
		return false
	}
	if f.HasNotes && !s.HasNotes {
		return false
	}
	return true
}

// dataCardMatches is the full visibility predicate: bucket, then structural
// filters, then the text query over a fixed set of fields.
func dataCardMatches(s models.DataCardSummary, nav models.Nav, f models.SearchFilters, query string) bool {
	if !dataCardInBucket(s, nav) {
		return false
	}
	if !dataCardMatchesFilters(s, f) {
		return false
	}
	fields := append([]string{s.Title, s.Username, s.URL, s.Meta}, s.Tags...)
	return matchesQuery(query, fields...)
}

func bankCardInBucket(s models.BankCardSummary, nav models.Nav) bool {
	switch nav.Bucket {
	case models.BucketAll:
		return !s.Archived
	case models.BucketFavorites:
		return s.IsFavorite && !s.Archived
	case models.BucketArchive:
		return s.Archived
	case models.BucketFolder:
		return !s.Archived && s.FolderID != nil && *s.FolderID == nav.FolderID
	case models.BucketDeleted:
		return true
	}
	return false
}

// bankCardMatches honors only the filters that exist for bank cards: the
// attachment and OTP flags are data-card attributes and are ignored here.
func bankCardMatches(s models.BankCardSummary, nav models.Nav, f models.SearchFilters, query string) bool {
	if !bankCardInBucket(s, nav) {
		return false
	}
	if f.HasNotes && !s.HasNotes {
		return false
	}
	return matchesQuery(query, s.Title, s.CardholderName, s.BankName, s.MaskedNumber)
}
