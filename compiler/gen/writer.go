package gen

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// Action is what the writer did with a file.
type Action int

const (
	// ActionCreated means the file did not exist and was written.
	ActionCreated Action = iota
	// ActionOverwritten means an existing file was replaced.
	ActionOverwritten
	// ActionSkipped means an existing file was kept.
	ActionSkipped
	// ActionDryRun means the file was rendered but not written.
	ActionDryRun
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionOverwritten:
		return "overwritten"
	case ActionSkipped:
		return "skipped"
	case ActionDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// Prompter asks whether an existing file may be overwritten.
type Prompter interface {
	ConfirmOverwrite(path string) (bool, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(path string) (bool, error)

// ConfirmOverwrite implements Prompter.
func (f PrompterFunc) ConfirmOverwrite(path string) (bool, error) { return f(path) }

// WriteResult reports the outcome of one file write.
type WriteResult struct {
	Path   string
	Action Action
	// Exists reports if the file was already on disk.
	Exists bool
	Size   int
}

// FileWriter writes generated files. Existing files are only replaced with
// force, or after the prompter agrees. Without a prompter they are skipped.
type FileWriter struct {
	fs     afero.Fs
	dryRun bool
	force  bool
	prompt Prompter
	logger *slog.Logger
}

// NewFileWriter creates a writer from the config.
func NewFileWriter(c *Config) *FileWriter {
	return &FileWriter{
		fs:     c.Fs,
		dryRun: c.DryRun,
		force:  c.Force,
		logger: c.Log(),
	}
}

// WithPrompter sets the prompter used for existing files.
func (w *FileWriter) WithPrompter(p Prompter) *FileWriter {
	w.prompt = p
	return w
}

// Write writes content to path.
func (w *FileWriter) Write(path string, content []byte) (*WriteResult, error) {
	res := &WriteResult{Path: path, Size: len(content)}
	exists, err := afero.Exists(w.fs, path)
	if err != nil {
		return nil, NewGenerationError("write", path, "stat file", err)
	}
	res.Exists = exists
	if w.dryRun {
		res.Action = ActionDryRun
		w.logger.Debug("dry run", "path", path, "bytes", len(content), "exists", exists)
		return res, nil
	}
	if exists && !w.force {
		ok, err := w.confirm(path)
		if err != nil {
			return nil, NewGenerationError("write", path, "confirm overwrite", err)
		}
		if !ok {
			res.Action = ActionSkipped
			w.logger.Warn("file exists, skipped", "path", path)
			return res, nil
		}
	}
	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, NewGenerationError("write", path, "create directory", err)
	}
	if err := afero.WriteFile(w.fs, path, content, 0o644); err != nil {
		return nil, NewGenerationError("write", path, "write file", err)
	}
	res.Action = ActionCreated
	if exists {
		res.Action = ActionOverwritten
	}
	w.logger.Debug(fmt.Sprintf("file %s", res.Action), "path", path, "bytes", len(content))
	return res, nil
}

func (w *FileWriter) confirm(path string) (bool, error) {
	if w.prompt == nil {
		return false, nil
	}
	return w.prompt.ConfirmOverwrite(path)
}
