package rpc

import "context"

type cardByID struct {
	ID string `json:"id"`
}

type listArgs struct {
	Deleted bool `json:"deleted"`
}

// ListDataCardSummaries returns list projections of either the active pool
// (deleted=false) or the trash (deleted=true).
func (c *Client) ListDataCardSummaries(ctx context.Context, deleted bool) ([]DataCardSummary, error) {
	var out []DataCardSummary
	if err := c.bridge.Invoke(ctx, "list_datacards_summary_command", listArgs{Deleted: deleted}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDataCard(ctx context.Context, id string) (DataCard, error) {
	var out DataCard
	if err := c.bridge.Invoke(ctx, "get_datacard", cardByID{ID: id}, &out); err != nil {
		return DataCard{}, err
	}
	return out, nil
}

// CreateDataCard persists a new card and returns the authoritative record.
func (c *Client) CreateDataCard(ctx context.Context, in DataCardInput) (DataCard, error) {
	var out DataCard
	if err := c.bridge.Invoke(ctx, "create_datacard", in, &out); err != nil {
		return DataCard{}, err
	}
	return out, nil
}

// UpdateDataCard persists edits. Callers are expected to re-fetch the record
// afterwards rather than merging locally.
func (c *Client) UpdateDataCard(ctx context.Context, id string, in DataCardInput) error {
	args := struct {
		ID string `json:"id"`
		DataCardInput
	}{ID: id, DataCardInput: in}
	return c.bridge.Invoke(ctx, "update_datacard", args, &empty{})
}

func (c *Client) DeleteDataCard(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "delete_datacard", cardByID{ID: id}, &empty{})
}

func (c *Client) RestoreDataCard(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "restore_datacard", cardByID{ID: id}, &empty{})
}

func (c *Client) PurgeDataCard(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "purge_datacard", cardByID{ID: id}, &empty{})
}

func (c *Client) RestoreAllDataCards(ctx context.Context) error {
	return c.bridge.Invoke(ctx, "restore_all_datacards", empty{}, &empty{})
}

func (c *Client) PurgeAllDataCards(ctx context.Context) error {
	return c.bridge.Invoke(ctx, "purge_all_datacards", empty{}, &empty{})
}

func (c *Client) SetDataCardFavorite(ctx context.Context, id string, favorite bool) error {
	args := struct {
		ID       string `json:"id"`
		Favorite bool   `json:"favorite"`
	}{ID: id, Favorite: favorite}
	return c.bridge.Invoke(ctx, "set_datacard_favorite", args, &empty{})
}

func (c *Client) MoveDataCardToFolder(ctx context.Context, id string, folderID *string) error {
	args := struct {
		ID       string  `json:"id"`
		FolderID *string `json:"folder_id"`
	}{ID: id, FolderID: folderID}
	return c.bridge.Invoke(ctx, "move_datacard_to_folder", args, &empty{})
}

// AddDataCardAttachment uploads content as a new attachment and returns its
// descriptor.
func (c *Client) AddDataCardAttachment(ctx context.Context, cardID, fileName string, content []byte) (Attachment, error) {
	args := struct {
		CardID   string `json:"card_id"`
		FileName string `json:"file_name"`
		Content  []byte `json:"content"`
	}{CardID: cardID, FileName: fileName, Content: content}

	var out Attachment
	if err := c.bridge.Invoke(ctx, "add_datacard_attachment", args, &out); err != nil {
		return Attachment{}, err
	}
	return out, nil
}

func (c *Client) GetDataCardAttachment(ctx context.Context, cardID, attachmentID string) ([]byte, error) {
	args := struct {
		CardID       string `json:"card_id"`
		AttachmentID string `json:"attachment_id"`
	}{CardID: cardID, AttachmentID: attachmentID}

	var out struct {
		Content []byte `json:"content"`
	}
	if err := c.bridge.Invoke(ctx, "get_datacard_attachment", args, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

func (c *Client) DeleteDataCardAttachment(ctx context.Context, cardID, attachmentID string) error {
	args := struct {
		CardID       string `json:"card_id"`
		AttachmentID string `json:"attachment_id"`
	}{CardID: cardID, AttachmentID: attachmentID}
	return c.bridge.Invoke(ctx, "delete_datacard_attachment", args, &empty{})
}
