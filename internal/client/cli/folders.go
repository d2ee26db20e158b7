package cli

import (
	"context"
	"strings"
)

// Folders prints the folder hierarchy.
func (a *App) Folders(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	out := renderFolderTree(s.FolderTree())
	if out == "" {
		printlnFn("No folders.")
		return nil
	}
	printlnFn(out)
	return nil
}

// MkDir creates a folder, optionally under a parent: mkdir <name> [parent-id].
func (a *App) MkDir(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: mkdir <name> [parent-id]")
		return nil
	}

	var parentID *string
	if len(args) > 1 {
		parentID = &args[1]
	}

	folder, err := s.CreateFolder(ctx, args[0], parentID)
	if err != nil {
		return err
	}
	printlnFn("Created folder:", folder.Name, idStyle.Render(folder.ID))
	return nil
}

// RenameDir renames a folder: renamedir <id> <new name...>.
func (a *App) RenameDir(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: renamedir <id> <name>")
		return nil
	}

	folder, err := s.RenameFolder(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	printlnFn("Renamed folder:", folder.Name)
	return nil
}

// RmDir deletes a folder. By default its cards survive and become unfiled;
// "rmdir <id> cards" deletes the contained cards too.
func (a *App) RmDir(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: rmdir <id> [cards]")
		return nil
	}

	if len(args) > 1 && args[1] == "cards" {
		if err := s.DeleteFolderAndCards(ctx, args[0]); err != nil {
			return err
		}
		printlnFn("Deleted folder and its cards.")
		return nil
	}

	if err := s.DeleteFolderOnly(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Deleted folder; its cards are now unfiled.")
	return nil
}
