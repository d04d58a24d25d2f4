// Package histstore provides read-only access to simulator history
// recordings wherever they live: a local directory, memory, or an
// S3-compatible object store.
//
// The analysis core only ever consumes whole recordings sequentially, so the
// store surface is a single Open returning an io.ReadCloser. Transparent
// decompression and concurrent multi-recording loading sit on top.
package histstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a recording does not exist.
//
// Implementations return errors satisfying errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// Store is an abstraction over locations holding history recordings.
type Store interface {
	// Open opens the named recording for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Dir is a Store over a local directory.
type Dir struct {
	root string
}

// NewDir creates a store rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Open opens the named file under the store root.
func (d *Dir) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(d.root, name))
}

// Mem is an in-memory Store, primarily for tests.
type Mem struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{blobs: make(map[string][]byte)}
}

// Put stores a recording under the given name, replacing any previous one.
func (m *Mem) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = append([]byte(nil), data...)
}

// Open opens the named recording.
func (m *Mem) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	data, ok := m.blobs[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("histstore: %q: %w", name, ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
