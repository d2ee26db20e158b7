package rpc

import "context"

type folderByID struct {
	ID string `json:"id"`
}

func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	var out []Folder
	if err := c.bridge.Invoke(ctx, "list_folders", empty{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string, parentID *string) (Folder, error) {
	args := struct {
		Name     string  `json:"name"`
		ParentID *string `json:"parent_id"`
	}{Name: name, ParentID: parentID}

	var out Folder
	if err := c.bridge.Invoke(ctx, "create_folder", args, &out); err != nil {
		return Folder{}, err
	}
	return out, nil
}

func (c *Client) RenameFolder(ctx context.Context, id, name string) (Folder, error) {
	args := struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{ID: id, Name: name}

	var out Folder
	if err := c.bridge.Invoke(ctx, "rename_folder", args, &out); err != nil {
		return Folder{}, err
	}
	return out, nil
}

// DeleteFolderOnly removes the folder; the backend reparents contained cards
// to the folder's parent.
func (c *Client) DeleteFolderOnly(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "delete_folder_only", folderByID{ID: id}, &empty{})
}

// DeleteFolderAndCards removes the folder together with every card in it.
func (c *Client) DeleteFolderAndCards(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "delete_folder_and_cards", folderByID{ID: id}, &empty{})
}
