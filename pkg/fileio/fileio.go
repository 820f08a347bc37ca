// Package fileio brackets every command with the same file protocol:
// read the full document, write a timestamped backup, then write the
// replacement in full. Documents are never patched incrementally.
package fileio

import (
	"os"
	"time"

	"github.com/arthur-debert/wtconf/pkg/errors"
	"github.com/arthur-debert/wtconf/pkg/logging"
	"github.com/arthur-debert/wtconf/pkg/paths"
	"github.com/arthur-debert/wtconf/pkg/zshcfg"
)

// ReadDocument loads a config file as a Document
func ReadDocument(path string) (zshcfg.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zshcfg.Document{}, errors.Newf(errors.ErrFileNotFound,
				"config file not found: %s", path)
		}
		return zshcfg.Document{}, errors.Wrapf(err, errors.ErrFileRead,
			"failed to read %s", path)
	}
	return zshcfg.Parse(string(data)), nil
}

// WriteDocument replaces the file's contents with the document
func WriteDocument(path string, doc zshcfg.Document) error {
	if err := os.WriteFile(path, []byte(doc.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

// CreateBackup copies the file to a timestamped sibling named
// <name>.<kind>.backup.<YYYYMMDD_HHMMSS> and returns the backup path.
// The backup is written before the target is ever overwritten, so a crash
// mid-operation leaves either the original or a fully written replacement.
func CreateBackup(path, kind string) (string, error) {
	logger := logging.GetLogger("fileio")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrFileNotFound,
				"config file not found: %s", path)
		}
		return "", errors.Wrapf(err, errors.ErrBackupCreate,
			"failed to read %s for backup", path)
	}

	backupPath := paths.BackupPath(path, kind, time.Now())
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate,
			"failed to create backup %s", backupPath)
	}

	logger.Debug().Str("path", path).Str("backup", backupPath).Msg("Backup created")
	return backupPath, nil
}
