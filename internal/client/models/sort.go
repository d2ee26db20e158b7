package models

// SortField selects the summary attribute list views are ordered by.
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "created_at"
	SortByUpdatedAt SortField = "updated_at"
)

// SortDirection is the order applied to the selected field.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is a configurable list ordering. The zero value is not valid;
// use DefaultSort.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is used when neither settings nor saved preferences specify one.
var DefaultSort = SortSpec{Field: SortByTitle, Direction: SortAsc}

// Valid reports whether both field and direction carry known values.
func (s SortSpec) Valid() bool {
	switch s.Field {
	case SortByTitle, SortByCreatedAt, SortByUpdatedAt:
	default:
		return false
	}
	return s.Direction == SortAsc || s.Direction == SortDesc
}
