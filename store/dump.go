package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/spf13/afero"
)

// WriteDump writes tasks as id|title|priority|status|labels, one per line.
// Fields are not escaped; the dump is a best-effort record, not a format
// that can be read back reliably.
func WriteDump(w io.Writer, tasks []models.Task) error {
	bw := bufio.NewWriter(w)
	for _, task := range tasks {
		if _, err := fmt.Fprintf(bw, "%d|%s|%s|%s|%s\n",
			task.ID,
			task.Title,
			task.Priority.String(),
			task.Status.String(),
			strings.Join(task.Labels(), ","),
		); err != nil {
			return fmt.Errorf("write task %d: %w", task.ID, err)
		}
	}
	return bw.Flush()
}

// SaveDump writes the store's tasks to path on fs, replacing any existing file.
func SaveDump(fs afero.Fs, path string, s TaskStore) error {
	var buf bytes.Buffer
	if err := WriteDump(&buf, s.List()); err != nil {
		return err
	}
	return writeFileAtomic(fs, path, buf.Bytes())
}

// writeFileAtomic writes to a temporary sibling and renames it into place.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tempFilePath := path + ".tmp"
	defer func() { _ = fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(fs, tempFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file %s: %w", tempFilePath, err)
	}
	if err := fs.Rename(tempFilePath, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tempFilePath, path, err)
	}
	return nil
}
