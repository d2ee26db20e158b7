package rpc

import "context"

// UnlockVault opens the vault with the master password and returns the
// active profile. The password slice should be wiped by the caller.
func (c *Client) UnlockVault(ctx context.Context, password []byte) (Profile, error) {
	args := struct {
		Password string `json:"password"`
	}{Password: string(password)}

	var out Profile
	if err := c.bridge.Invoke(ctx, "unlock_vault", args, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

// LockVault locks the vault on the backend side. In-memory state cleanup is
// the caller's responsibility.
func (c *Client) LockVault(ctx context.Context) error {
	return c.bridge.Invoke(ctx, "lock_vault", empty{}, &empty{})
}

func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	var out Settings
	if err := c.bridge.Invoke(ctx, "get_settings", empty{}, &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// UpdateSettings persists the full settings object and returns the
// authoritative copy.
func (c *Client) UpdateSettings(ctx context.Context, in Settings) (Settings, error) {
	var out Settings
	if err := c.bridge.Invoke(ctx, "update_settings", in, &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// CreateBackup asks the backend to write an encrypted backup to path.
func (c *Client) CreateBackup(ctx context.Context, path string) (BackupInfo, error) {
	args := struct {
		Path string `json:"path"`
	}{Path: path}

	var out BackupInfo
	if err := c.bridge.Invoke(ctx, "backup_create", args, &out); err != nil {
		return BackupInfo{}, err
	}
	return out, nil
}

// RestoreBackup replaces vault contents from a backup file. Callers must
// fully reload local state afterwards.
func (c *Client) RestoreBackup(ctx context.Context, path string) error {
	args := struct {
		Path string `json:"path"`
	}{Path: path}
	return c.bridge.Invoke(ctx, "backup_restore", args, &empty{})
}

// CopyToClipboard places value on the system clipboard via the backend.
func (c *Client) CopyToClipboard(ctx context.Context, value string) error {
	args := struct {
		Value string `json:"value"`
	}{Value: value}
	return c.bridge.Invoke(ctx, "clipboard_copy", args, &empty{})
}

// WipeClipboard clears the clipboard only if it still holds expected
// (compare-and-clear; a value copied by another program is left alone).
func (c *Client) WipeClipboard(ctx context.Context, expected string) error {
	args := struct {
		Expected string `json:"expected"`
	}{Expected: expected}
	return c.bridge.Invoke(ctx, "clipboard_wipe", args, &empty{})
}
