// Package store holds every collection in memory and rewrites the whole
// snapshot file after each mutation. It is the only owner of durable state;
// handlers go through View and Update and never keep references across
// requests.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/example/minimart/pkg/models"
)

// Data is the full snapshot. The JSON layout matches the on-disk file:
// one named array per collection.
type Data struct {
	Users      []models.User     `json:"users"`
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
	Banners    []models.Banner   `json:"banners"`
	Cart       []models.CartItem `json:"cart"`
	Orders     []models.Order    `json:"orders"`
}

type Store struct {
	mu     sync.RWMutex
	path   string
	data   Data
	logger *zap.Logger
}

// Open reads the snapshot at path into memory. A missing or corrupt file is
// an error; the caller is expected to treat it as fatal rather than start
// with an empty store.
func Open(path string, logger *zap.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &Store{path: path, data: data, logger: logger}, nil
}

// View runs fn with read access to the snapshot. fn must not retain
// references to slices or records beyond the call.
func (s *Store) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update runs fn with exclusive access. When fn succeeds the snapshot is
// flushed to disk. A flush failure is logged and swallowed: the in-memory
// mutation stays visible even if durability failed.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.data); err != nil {
		return err
	}
	s.flushLocked()
	return nil
}

func (s *Store) flushLocked() {
	raw, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		s.logger.Error("marshal snapshot failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Error("flush snapshot failed", zap.String("path", s.path), zap.Error(err))
	}
}

// NextID returns max(id)+1 over items, or 1 for an empty collection.
// IDs are never reused after deletion.
func NextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, it := range items {
		if v := id(it); v >= next {
			next = v + 1
		}
	}
	return next
}
