package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/nikbrunner/zennav/internal/model"
)

// Logical keys, one JSON document each.
const (
	SettingsKey  = "zennav_settings"
	BookmarksKey = "zennav_bookmarks"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

var (
	// ErrNotFound is returned by KV.Get for a key that was never written.
	ErrNotFound = errors.New("key not found")
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Storage defines the interface for persisting settings and bookmarks.
type Storage interface {
	Load() (model.Settings, model.Tree, error)
	Save(settings model.Settings, tree model.Tree) error
}

// Entry is one key/value pair written by KV.Put.
type Entry struct {
	Key   string
	Value []byte
}

// KV is a small string-keyed blob store.
type KV interface {
	Get(key string) ([]byte, error)
	// Put writes all entries. Backends with transactions write all or nothing.
	Put(entries ...Entry) error
	Close() error
}

// Store implements Storage on top of a KV.
type Store struct {
	kv  KV
	log *log.Logger
}

// NewStore wraps kv. A nil logger discards messages.
func NewStore(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{kv: kv, log: logger}
}

// Load reads settings and bookmarks. Missing or corrupt documents are
// replaced by model.DefaultSettings and model.DefaultTree; corruption is
// logged, not returned. Only backend failures are errors.
func (s *Store) Load() (model.Settings, model.Tree, error) {
	settings, err := s.loadSettings()
	if err != nil {
		return model.Settings{}, nil, err
	}

	tree, err := s.loadTree()
	if err != nil {
		return model.Settings{}, nil, err
	}

	return settings, tree, nil
}

func (s *Store) loadSettings() (model.Settings, error) {
	data, err := s.kv.Get(SettingsKey)
	if errors.Is(err, ErrNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("read %s: %w", SettingsKey, err)
	}

	// Fields absent from the document keep their default values.
	settings := model.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Printf("corrupt %s, using defaults: %v", SettingsKey, err)
		return model.DefaultSettings(), nil
	}
	return settings.Normalize(), nil
}

func (s *Store) loadTree() (model.Tree, error) {
	data, err := s.kv.Get(BookmarksKey)
	if errors.Is(err, ErrNotFound) {
		return model.DefaultTree(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", BookmarksKey, err)
	}

	var tree model.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		s.log.Printf("corrupt %s, using default bookmarks: %v", BookmarksKey, err)
		return model.DefaultTree(), nil
	}
	if tree == nil {
		return model.DefaultTree(), nil
	}
	return tree, nil
}

// Save writes both documents.
func (s *Store) Save(settings model.Settings, tree model.Tree) error {
	if tree == nil {
		tree = model.Tree{}
	}

	settingsJSON, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	treeJSON, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}

	if err := s.kv.Put(
		Entry{Key: SettingsKey, Value: settingsJSON},
		Entry{Key: BookmarksKey, Value: treeJSON},
	); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Close releases the underlying KV.
func (s *Store) Close() error {
	return s.kv.Close()
}

// DefaultDataDir returns the default data directory: ~/.config/zennav
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "zennav"), nil
}

// Open opens the named backend inside dir. An empty name means BackendJSON.
func Open(backend, dir string, logger *log.Logger) (*Store, error) {
	var (
		kv  KV
		err error
	)
	switch backend {
	case "", BackendJSON:
		kv = NewFileKV(dir)
	case BackendSQLite:
		kv, err = NewSQLiteKV(filepath.Join(dir, "zennav.db"))
	case BackendBolt:
		kv, err = NewBoltKV(filepath.Join(dir, "zennav.bolt"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", backend, err)
	}
	return NewStore(kv, logger), nil
}
