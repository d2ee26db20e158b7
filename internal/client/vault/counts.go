package vault

// Counts holds the per-bucket and per-folder totals shown next to the
// navigation entries. Archived items count only toward Archive; the trash
// total comes from the locally cached trash pool.
type Counts struct {
	All       int
	Favorites int
	Archive   int
	Deleted   int
	Folders   map[string]int
}

type countKey struct {
	favorite bool
	archived bool
	folderID *string
}

func countSummaries[T any](active, trash []T, key func(T) countKey) Counts {
	c := Counts{Folders: make(map[string]int)}
	for _, item := range active {
		k := key(item)
		if k.archived {
			c.Archive++
			continue
		}
		c.All++
		if k.favorite {
			c.Favorites++
		}
		if k.folderID != nil {
			c.Folders[*k.folderID]++
		}
	}
	c.Deleted = len(trash)
	return c
}
