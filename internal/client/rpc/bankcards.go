package rpc

import "context"

func (c *Client) ListBankCardSummaries(ctx context.Context, deleted bool) ([]BankCardSummary, error) {
	var out []BankCardSummary
	if err := c.bridge.Invoke(ctx, "list_bank_cards_summary_command", listArgs{Deleted: deleted}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBankCard(ctx context.Context, id string) (BankCard, error) {
	var out BankCard
	if err := c.bridge.Invoke(ctx, "get_bank_card", cardByID{ID: id}, &out); err != nil {
		return BankCard{}, err
	}
	return out, nil
}

func (c *Client) CreateBankCard(ctx context.Context, in BankCardInput) (BankCard, error) {
	var out BankCard
	if err := c.bridge.Invoke(ctx, "create_bank_card", in, &out); err != nil {
		return BankCard{}, err
	}
	return out, nil
}

func (c *Client) UpdateBankCard(ctx context.Context, id string, in BankCardInput) error {
	args := struct {
		ID string `json:"id"`
		BankCardInput
	}{ID: id, BankCardInput: in}
	return c.bridge.Invoke(ctx, "update_bank_card", args, &empty{})
}

func (c *Client) DeleteBankCard(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "delete_bank_card", cardByID{ID: id}, &empty{})
}

func (c *Client) RestoreBankCard(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "restore_bank_card", cardByID{ID: id}, &empty{})
}

func (c *Client) PurgeBankCard(ctx context.Context, id string) error {
	return c.bridge.Invoke(ctx, "purge_bank_card", cardByID{ID: id}, &empty{})
}

func (c *Client) RestoreAllBankCards(ctx context.Context) error {
	return c.bridge.Invoke(ctx, "restore_all_bank_cards", empty{}, &empty{})
}

func (c *Client) PurgeAllBankCards(ctx context.Context) error {
	return c.bridge.Invoke(ctx, "purge_all_bank_cards", empty{}, &empty{})
}

func (c *Client) SetBankCardFavorite(ctx context.Context, id string, favorite bool) error {
	args := struct {
		ID       string `json:"id"`
		Favorite bool   `json:"favorite"`
	}{ID: id, Favorite: favorite}
	return c.bridge.Invoke(ctx, "set_bank_card_favorite", args, &empty{})
}

func (c *Client) MoveBankCardToFolder(ctx context.Context, id string, folderID *string) error {
	args := struct {
		ID       string  `json:"id"`
		FolderID *string `json:"folder_id"`
	}{ID: id, FolderID: folderID}
	return c.bridge.Invoke(ctx, "move_bank_card_to_folder", args, &empty{})
}
