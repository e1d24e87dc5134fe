// Package sink provides destinations for generated builder files.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// OutputSink receives generated files. Implementations must be safe for
// concurrent calls, since packages are emitted in parallel.
type OutputSink interface {
	// WriteFile stores content at path, which is relative and slash separated.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes files beneath Root.
type FilesystemSink struct {
	Root string

	// Mode is the permission of written files (default 0644).
	Mode os.FileMode
}

// NewFilesystemSink returns a FilesystemSink writing beneath root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644}
}

// WriteFile replaces path atomically through a temporary file in the same
// directory. A file whose content is already identical is left untouched
// so that its modification time survives regeneration.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if existing, err := os.ReadFile(full); err == nil && bytes.Equal(existing, content) {
		return nil
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(dir, ".zosmfgen-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, full); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// MemorySink keeps generated files in memory.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = bytes.Clone(content)
	return nil
}

// Paths returns the written paths in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Get returns a copy of the content written to path, or nil.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.files[path])
}

// Stale compares every written file with its counterpart beneath root and
// returns the paths whose content differs or that do not exist there.
func (s *MemorySink) Stale(root string) ([]string, error) {
	var stale []string
	for _, p := range s.Paths() {
		existing, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		switch {
		case errors.Is(err, os.ErrNotExist):
			stale = append(stale, p)
		case err != nil:
			return nil, err
		case !bytes.Equal(existing, s.Get(p)):
			stale = append(stale, p)
		}
	}
	return stale, nil
}

// ValidatePath checks that path is relative, clean and slash separated,
// and stays inside the sink root.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return errors.New("absolute paths not allowed")
	}
	if len(path) >= 2 && path[1] == ':' {
		return errors.New("absolute paths not allowed")
	}
	if strings.Contains(path, `\`) {
		return errors.New("path must use / as separator")
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := filepath.ToSlash(filepath.Clean(path)); cleaned != path {
		return fmt.Errorf("path is not clean (expected %q)", cleaned)
	}
	return nil
}
