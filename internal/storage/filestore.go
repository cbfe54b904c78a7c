package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkValid runs schema validation on a record or request struct and folds
// the validator output into the package error taxonomy.
func checkValid(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Record is any entity persisted in a collection file.
type Record interface {
	RecordID() int
}

// Collection is a JSON array file acting as the entire state for one entity
// type. Every write rewrites the whole file; every read decodes the whole
// file. The mutex is held for the full load-mutate-save span so concurrent
// requests from this process cannot lose updates or observe a half-written
// file.
type Collection[T Record] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T Record](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load reads and validates the entire collection. A missing backing file is
// an empty collection; a file containing even one invalid record fails the
// whole load.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(c.path), err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}

	for i, item := range items {
		if err := checkValid(item); err != nil {
			return nil, fmt.Errorf("invalid record %d in %s: %w", i, filepath.Base(c.path), err)
		}
	}
	return items, nil
}

func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(c.path), err)
	}

	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(c.path), err)
	}
	return nil
}

// Update runs fn inside the collection lock: load, mutate, save. If fn
// returns an error nothing is written.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(items)
}

// NextID returns max(id)+1 across the collection, or 1 when it is empty.
// Linear scan on every insert; fine at this scale.
func NextID[T Record](items []T) int {
	maxID := 0
	for _, item := range items {
		if id := item.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
