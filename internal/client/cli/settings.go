package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
)

// Settings prints the current settings, or updates one of them:
//
//	settings                          — show
//	settings autolock on|off          — toggle auto-lock
//	settings autolocktime <seconds>   — idle timeout
//	settings cliptime <seconds>       — clipboard auto-clear delay
//	settings softdelete on|off        — trash vs immediate delete
//	settings backupinterval <hours>   — scheduled backup interval
//	settings sort <field> <asc|desc>  — default list ordering
func (a *App) Settings(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}

	current := s.Settings()
	if len(args) == 0 {
		printlnFn(renderField("Auto-lock", onOff(current.AutoLockEnabled)+" after "+current.AutoLockTimeout.String()))
		printlnFn(renderField("Clipboard", "clears after "+current.ClipboardClearDelay.String()))
		printlnFn(renderField("Soft delete", onOff(current.SoftDeleteEnabled)))
		printlnFn(renderField("Backups", "every "+current.BackupInterval.String()))
		printlnFn(renderField("Default sort", fmt.Sprintf("%s %s", current.DefaultSortField, current.DefaultSortDirection)))
		return nil
	}

	updated := current
	switch args[0] {
	case "autolock":
		v, ok := parseOnOff(args)
		if !ok {
			return nil
		}
		updated.AutoLockEnabled = v
	case "autolocktime":
		d, ok := parseSeconds(args)
		if !ok {
			return nil
		}
		updated.AutoLockTimeout = d
	case "cliptime":
		d, ok := parseSeconds(args)
		if !ok {
			return nil
		}
		updated.ClipboardClearDelay = d
	case "softdelete":
		v, ok := parseOnOff(args)
		if !ok {
			return nil
		}
		updated.SoftDeleteEnabled = v
	case "backupinterval":
		if len(args) < 2 {
			printlnFn("Usage: settings backupinterval <hours>")
			return nil
		}
		hours, err := strconv.Atoi(args[1])
		if err != nil || hours < 0 {
			printlnFn("Invalid hour count:", args[1])
			return nil
		}
		updated.BackupInterval = time.Duration(hours) * time.Hour
	case "sort":
		if len(args) < 3 {
			printlnFn("Usage: settings sort <title|created_at|updated_at> <asc|desc>")
			return nil
		}
		spec := models.SortSpec{
			Field:     models.SortField(args[1]),
			Direction: models.SortDirection(args[2]),
		}
		if !spec.Valid() {
			printlnFn("Invalid sort:", args[1], args[2])
			return nil
		}
		updated.DefaultSortField = spec.Field
		updated.DefaultSortDirection = spec.Direction
	default:
		printlnFn("Unknown setting:", args[0])
		return nil
	}

	if err := s.UpdateSettings(ctx, updated); err != nil {
		return err
	}
	printlnFn("Settings updated.")
	return nil
}

// Backup writes an encrypted backup to the given path.
func (a *App) Backup(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: backup <path>")
		return nil
	}

	info, err := s.CreateBackup(ctx, args[0])
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Backup written to %s (%d bytes)", info.Path, info.SizeBytes))
	return nil
}

// RestoreBackup replaces the vault from a backup file and reloads everything.
func (a *App) RestoreBackup(ctx context.Context, args []string) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: restorebackup <path>")
		return nil
	}

	confirm, err := GetSimpleText(a.reader, "This replaces the entire vault. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Aborted.")
		return nil
	}

	if err := s.RestoreBackup(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("Vault restored from backup.")
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func parseOnOff(args []string) (bool, bool) {
	if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
		printlnFn("Usage:", "settings", args[0], "on|off")
		return false, false
	}
	return args[1] == "on", true
}

func parseSeconds(args []string) (time.Duration, bool) {
	if len(args) < 2 {
		printlnFn("Usage:", "settings", args[0], "<seconds>")
		return 0, false
	}
	secs, err := strconv.Atoi(args[1])
	if err != nil || secs < 0 {
		printlnFn("Invalid second count:", args[1])
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}
