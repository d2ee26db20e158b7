package models

// Folder groups vault items. ParentID forms a tree; the backend does not
// guarantee the parent chain is acyclic, so tree building must tolerate
// cycles.
type Folder struct {
	ID       string
	Name     string
	ParentID *string

	// IsSystem folders cannot be renamed or deleted by the user.
	IsSystem bool
}

// FolderNode is a folder with its resolved children, produced by tree
// building from the flat folder list.
type FolderNode struct {
	Folder
	Children []*FolderNode
}
