package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no reference document exists.
var ErrNotFound = errors.New("snapshot not found")

// Store loads reference documents and saves regenerated ones.
type Store interface {
	// Load returns the reference document called name. A missing
	// document yields ErrNotFound, an unparseable one ErrInvalid and an
	// outdated one ErrOutdated. Any other error is a storage failure.
	Load(name string) (Document, error)
	// Save writes doc and returns where it went.
	Save(doc Document) (string, error)
}

// FileStore keeps references in ReferenceDir and writes regenerated
// documents to OutputDir, so a new baseline never silently replaces
// the reviewed one.
type FileStore struct {
	ReferenceDir string
	OutputDir    string
}

// Load reads and decodes ReferenceDir/name.
func (s FileStore) Load(name string) (Document, error) {
	data, err := os.ReadFile(filepath.Join(s.ReferenceDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("load snapshot %s: %w", name, ErrNotFound)
		}
		return Document{}, fmt.Errorf("load snapshot: %w", err)
	}
	return Decode(data)
}

// Save encodes doc to OutputDir/doc.Filename.
func (s FileStore) Save(doc Document) (string, error) {
	if doc.Filename == "" {
		return "", fmt.Errorf("save snapshot: empty filename")
	}
	data, err := Encode(doc)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(s.OutputDir, doc.Filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// Clean removes generated documents in OutputDir older than maxAge and
// returns how many were removed.
func (s FileStore) Clean(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.OutputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read snapshot dir: %w", err)
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.OutputDir, entry.Name())); err != nil {
				return removed, fmt.Errorf("remove snapshot: %w", err)
			}
			removed++
		}
	}
	return removed, nil
}

// MemoryStore is an in-process Store. References are seeded with Put;
// saved documents are kept separately and do not become references.
type MemoryStore struct {
	mu         sync.Mutex
	references map[string]Document
	saved      map[string]Document
	SaveErr    error // returned by Save when set
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		references: make(map[string]Document),
		saved:      make(map[string]Document),
	}
}

// Put installs doc as the reference for its filename.
func (m *MemoryStore) Put(doc Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.references[doc.Filename] = doc
}

// Load returns the reference for name.
func (m *MemoryStore) Load(name string) (Document, error) {
	m.mu.Lock()
	doc, ok := m.references[name]
	m.mu.Unlock()
	if !ok {
		return Document{}, fmt.Errorf("load snapshot %s: %w", name, ErrNotFound)
	}
	outdated, err := IsOutdated(doc.Version)
	if err != nil {
		return Document{}, fmt.Errorf("load snapshot: %w: %v", ErrInvalid, err)
	}
	if outdated {
		return doc, ErrOutdated
	}
	return doc, nil
}

// Save records doc.
func (m *MemoryStore) Save(doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	m.saved[doc.Filename] = doc
	return "memory:" + doc.Filename, nil
}

// Saved returns a document written by Save.
func (m *MemoryStore) Saved(name string) (Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.saved[name]
	return doc, ok
}
