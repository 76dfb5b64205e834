package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/taskdeck/models"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Snapshot is the document written by Export.
type Snapshot struct {
	ExportedAt time.Time     `json:"exportedAt" yaml:"exportedAt" toml:"exportedAt"`
	TotalCount int           `json:"totalCount" yaml:"totalCount" toml:"totalCount"`
	Tasks      []models.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// NormalizeFormat validates an export format name. "yml" is accepted for yaml.
func NormalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", types.NewInvalidInput("unsupported export format %q (supported: json, yaml, toml)", format)
	}
}

// FormatFromPath infers an export format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", types.NewInvalidInput("cannot infer export format from %q", path)
	}
	return NormalizeFormat(ext)
}

// Export writes a snapshot of tasks in the given format.
func Export(w io.Writer, tasks []models.Task, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}

	snapshot := Snapshot{
		ExportedAt: now(),
		TotalCount: len(tasks),
		Tasks:      tasks,
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(snapshot)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(snapshot); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(snapshot)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", format, err)
	}
	return nil
}

// SaveExport writes a snapshot of the store to path. An empty format is
// inferred from the file extension.
func SaveExport(fs afero.Fs, path, format string, s TaskStore) error {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := Export(&buf, s.List(), format); err != nil {
		return err
	}
	return writeFileAtomic(fs, path, buf.Bytes())
}
