package models

// Bucket identifies one of the mutually exclusive list views.
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketFavorites Bucket = "favorites"
	BucketArchive   Bucket = "archive"
	BucketDeleted   Bucket = "deleted"
	BucketFolder    Bucket = "folder"
)

// Nav is the current navigation target. FolderID is meaningful only when
// Bucket is BucketFolder.
type Nav struct {
	Bucket   Bucket
	FolderID string
}

// NavAll is the default navigation target after unlock.
var NavAll = Nav{Bucket: BucketAll}

// NavFolder returns a navigation target pointing at a specific folder.
func NavFolder(folderID string) Nav {
	return Nav{Bucket: BucketFolder, FolderID: folderID}
}

// InTrash reports whether the navigation target is the soft-deleted pool.
func (n Nav) InTrash() bool {
	return n.Bucket == BucketDeleted
}

// SearchFilters narrows list views by structural attributes before the text
// query is applied. Zero value means "no filtering".
type SearchFilters struct {
	HasAttachments bool
	HasOTP         bool
	HasNotes       bool
}

// Empty reports whether no filter flag is set.
func (f SearchFilters) Empty() bool {
	return !f.HasAttachments && !f.HasOTP && !f.HasNotes
}
