package mapper

import (
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/models"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
)

func FolderFromBackend(d rpc.Folder) models.Folder {
	return models.Folder{
		ID:       d.ID,
		Name:     d.Name,
		ParentID: d.ParentID,
		IsSystem: d.IsSystem,
	}
}

func FoldersFromBackend(ds []rpc.Folder) []models.Folder {
	out := make([]models.Folder, 0, len(ds))
	for _, d := range ds {
		out = append(out, FolderFromBackend(d))
	}
	return out
}

func SettingsFromBackend(d rpc.Settings) models.Settings {
	return models.Settings{
		AutoLockEnabled:      d.AutoLockEnabled,
		AutoLockTimeout:      time.Duration(d.AutoLockTimeoutSeconds) * time.Second,
		ClipboardClearDelay:  time.Duration(d.ClipboardClearSeconds) * time.Second,
		SoftDeleteEnabled:    d.SoftDeleteEnabled,
		BackupInterval:       time.Duration(d.BackupIntervalHours) * time.Hour,
		DefaultSortField:     models.SortField(d.DefaultSortField),
		DefaultSortDirection: models.SortDirection(d.DefaultSortDirection),
	}
}

func SettingsToBackend(s models.Settings) rpc.Settings {
	return rpc.Settings{
		AutoLockEnabled:        s.AutoLockEnabled,
		AutoLockTimeoutSeconds: int(s.AutoLockTimeout / time.Second),
		ClipboardClearSeconds:  int(s.ClipboardClearDelay / time.Second),
		SoftDeleteEnabled:      s.SoftDeleteEnabled,
		BackupIntervalHours:    int(s.BackupInterval / time.Hour),
		DefaultSortField:       string(s.DefaultSortField),
		DefaultSortDirection:   string(s.DefaultSortDirection),
	}
}
