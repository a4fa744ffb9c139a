package fsutil

import (
	"context"
	"errors"
	"fmt"
)

// BackupSuffix is appended to a file's path to form its sidecar backup.
const BackupSuffix = ".docgate.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup, keeping the file mode.
// It returns the backup path, or "" when path does not exist.
// An existing backup is never overwritten, so the oldest copy survives
// repeated runs.
func CreateBackup(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	exists, err := Exists(backupPath)
	if err != nil {
		return "", err
	}
	if exists {
		return backupPath, nil
	}

	content, info, err := ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode.Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}
