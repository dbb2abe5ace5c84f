package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/beetlebot/flyguide/internal/core"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("history item not found")

type Item struct {
	ID        string            `json:"id"`
	Label     string            `json:"label"`
	Params    core.SearchParams `json:"params"`
	Timestamp time.Time         `json:"timestamp"`
}

// FileStore keeps the most recent flight searches in a single JSON file,
// newest first.
type FileStore struct {
	path  string
	limit int
	mu    sync.RWMutex
	now   func() time.Time
}

func Open(path string, limit int) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	if limit <= 0 {
		limit = 5
	}
	return &FileStore{path: path, limit: limit, now: time.Now}, nil
}

func (s *FileStore) List() ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *FileStore) Get(id string) (Item, error) {
	items, err := s.List()
	if err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add records params as the newest entry. An older entry for the same
// origin, destination and minimum trip length is replaced, and the list is
// trimmed to the store limit.
func (s *FileStore) Add(params core.SearchParams) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return Item{}, err
	}

	item := Item{
		ID:        uuid.NewString(),
		Label:     Label(params),
		Params:    params,
		Timestamp: s.now().UTC(),
	}
	key := routeKey(params)

	out := []Item{item}
	for _, it := range items {
		if routeKey(it.Params) == key {
			continue
		}
		out = append(out, it)
	}
	if len(out) > s.limit {
		out = out[:s.limit]
	}

	if err := s.save(out); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Label renders "<origin city> -> <destination city> (<min>-<max> days)".
func Label(p core.SearchParams) string {
	return fmt.Sprintf("%s -> %s (%d-%d days)",
		core.CityName(string(p.Departure)), p.Destination.City(), p.MinDays, p.MaxDays)
}

func (s *FileStore) load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *FileStore) save(items []Item) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func routeKey(p core.SearchParams) string {
	h := sha256.New()
	for _, part := range []string{string(p.Departure), string(p.Destination), fmt.Sprint(p.MinDays)} {
		h.Write([]byte(part))
		h.Write([]byte("|"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
