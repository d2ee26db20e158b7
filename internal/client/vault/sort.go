package vault

import (
	"sort"
	"strings"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// sortKey is the comparable projection of a summary.
type sortKey struct {
	name    string
	created time.Time
	updated time.Time
}

// lessKeys is the total order behind every list view. Items with an empty
// name key sort last regardless of direction; ties fall back to the name so
// the order is deterministic for equal timestamps.
func lessKeys(a, b sortKey, spec models.SortSpec) bool {
	an := strings.ToLower(strings.TrimSpace(a.name))
	bn := strings.ToLower(strings.TrimSpace(b.name))

	if spec.Field == models.SortByTitle {
		if (an == "") != (bn == "") {
			return bn == ""
		}
		if an != bn {
			if spec.Direction == models.SortDesc {
				return an > bn
			}
			return an < bn
		}
		return false
	}

	at, bt := a.created, b.created
	if spec.Field == models.SortByUpdatedAt {
		at, bt = a.updated, b.updated
	}
	if !at.Equal(bt) {
		if spec.Direction == models.SortDesc {
			return at.After(bt)
		}
		return at.Before(bt)
	}
	return an < bn
}

func sortSummaries[T any](items []T, spec models.SortSpec, key func(T) sortKey) []T {
	if !spec.Valid() {
		spec = models.DefaultSort
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return lessKeys(key(out[i]), key(out[j]), spec)
	})
	return out
}

func dataCardSortKey(s models.DataCardSummary) sortKey {
	return sortKey{name: s.Title, created: s.CreatedAt, updated: s.UpdatedAt}
}

func bankCardSortKey(s models.BankCardSummary) sortKey {
	return sortKey{name: s.Title, created: s.CreatedAt, updated: s.UpdatedAt}
}

// SortDataCardSummaries returns a sorted copy of items. Stable, total, and
// symmetric: reversing the direction reverses the order for lists without
// duplicate names.
func SortDataCardSummaries(items []models.DataCardSummary, spec models.SortSpec) []models.DataCardSummary {
	return sortSummaries(items, spec, dataCardSortKey)
}

// SortBankCardSummaries is the bank-card analog of SortDataCardSummaries.
func SortBankCardSummaries(items []models.BankCardSummary, spec models.SortSpec) []models.BankCardSummary {
	return sortSummaries(items, spec, bankCardSortKey)
}
