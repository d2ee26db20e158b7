package vault

import (
	"sort"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// BuildFolderTree assembles the folder tree from the flat backend list.
//
// The parent chain is not trusted: a folder whose chain hits a missing id or
// loops back on itself is treated as a root instead of being dropped, so a
// damaged vault stays navigable. Children are sorted by name for stable
// display.
func BuildFolderTree(folders []models.Folder) []*models.FolderNode {
	byID := make(map[string]models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	// treatAsRoot walks up the parent chain with a visited set.
	treatAsRoot := func(f models.Folder) bool {
		if f.ParentID == nil {
			return true
		}
		visited := map[string]struct{}{f.ID: {}}
		pid := f.ParentID
		for pid != nil {
			if _, seen := visited[*pid]; seen {
				return true
			}
			parent, ok := byID[*pid]
			if !ok {
				return true
			}
			visited[parent.ID] = struct{}{}
			pid = parent.ParentID
		}
		return false
	}

	nodes := make(map[string]*models.FolderNode, len(folders))
	for _, f := range folders {
		nodes[f.ID] = &models.FolderNode{Folder: f}
	}

	var roots []*models.FolderNode
	for _, f := range folders {
		node := nodes[f.ID]
		if treatAsRoot(f) {
			roots = append(roots, node)
			continue
		}
		parent := nodes[*f.ParentID]
		parent.Children = append(parent.Children, node)
	}

	var sortNodes func(ns []*models.FolderNode)
	sortNodes = func(ns []*models.FolderNode) {
		sort.Slice(ns, func(i, j int) bool { return ns[i].Name < ns[j].Name })
		for _, n := range ns {
			sortNodes(n.Children)
		}
	}
	sortNodes(roots)

	return roots
}
