package cart

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quality-detailing/internal/pkg/errs"
)

// FileName is the fixed cart file name inside the state directory.
const FileName = "quality-detailing-cart.json"

type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStore persists the cart as a JSON file. A missing or corrupt file
// loads as an empty cart; it is overwritten on the next save.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, FileName)}
}

func (s *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Item{}, nil
		}
		return nil, errs.Wrap(err, "failed to read cart file")
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}, nil
	}
	return items, nil
}

func (s *FileStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errs.Wrap(err, "failed to write cart file")
	}
	return nil
}

// MemoryStore keeps the cart in process memory, mainly for tests.
type MemoryStore struct {
	items []Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: []Item{}}
}

func (s *MemoryStore) Load() ([]Item, error) {
	result := make([]Item, len(s.items))
	copy(result, s.items)
	return result, nil
}

func (s *MemoryStore) Save(items []Item) error {
	s.items = make([]Item, len(items))
	copy(s.items, items)
	return nil
}
