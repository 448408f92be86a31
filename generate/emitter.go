package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Emitter persists planned documents. The generator only produces the
// path-to-content mapping; directory creation and writes are the
// emitter's concern.
type Emitter interface {
	Emit(documents map[string]string) error
}

// DirEmitter writes documents beneath a root directory, creating
// intermediate directories as needed.
type DirEmitter struct {
	root string
}

// NewDirEmitter creates an emitter rooted at dir.
func NewDirEmitter(dir string) *DirEmitter {
	return &DirEmitter{root: dir}
}

// Emit writes every document. Paths are written in sorted order so
// repeated runs touch files in the same sequence.
func (e *DirEmitter) Emit(documents map[string]string) error {
	paths := make([]string, 0, len(documents))
	for path := range documents {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		target := filepath.Join(e.root, filepath.FromSlash(path))

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("create output directory for %s: %w", path, err)
		}
		if err := os.WriteFile(target, []byte(documents[path]), 0644); err != nil {
			return fmt.Errorf("write document %s: %w", path, err)
		}
	}

	return nil
}

// MemoryEmitter collects documents in memory.
type MemoryEmitter struct {
	Documents map[string]string
}

// NewMemoryEmitter creates an in-memory emitter.
func NewMemoryEmitter() *MemoryEmitter {
	return &MemoryEmitter{Documents: make(map[string]string)}
}

// Emit stores the documents.
func (e *MemoryEmitter) Emit(documents map[string]string) error {
	for path, content := range documents {
		e.Documents[path] = content
	}
	return nil
}
