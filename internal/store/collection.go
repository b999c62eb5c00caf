package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Collection is a typed view over one slot. The whole value is encoded as a
// single JSON snapshot and rewritten on every save.
type Collection[T any] struct {
	kv   KV
	key  string
	seed func() T
	mu   sync.Mutex
}

// NewCollection binds a slot key to a value type. seed supplies the initial
// value the first time the slot is read while absent; a nil seed leaves the
// slot absent and yields the zero value.
func NewCollection[T any](kv KV, key string, seed func() T) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, seed: seed}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the stored value, seeding the slot when it has never been written.
func (c *Collection[T]) Load(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Lookup reads the slot without seeding it.
func (c *Collection[T]) Lookup(ctx context.Context) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return zero, false, fmt.Errorf("failed to load %s: %w", c.key, err)
	}
	if !ok {
		return zero, false, nil
	}
	v, err := c.decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Save overwrites the slot with v.
func (c *Collection[T]) Save(ctx context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, v)
}

// Update runs a read-modify-write cycle while holding the collection lock.
// If fn returns an error nothing is written.
func (c *Collection[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, err := c.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	next, err := fn(cur)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := c.save(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	return next, nil
}

// Clear removes the slot.
func (c *Collection[T]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.kv.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) load(ctx context.Context) (T, error) {
	var zero T
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", c.key, err)
	}
	if !ok {
		if c.seed == nil {
			return zero, nil
		}
		v := c.seed()
		if err := c.save(ctx, v); err != nil {
			return zero, err
		}
		return v, nil
	}
	return c.decode(raw)
}

func (c *Collection[T]) decode(raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, c.key, err)
	}
	return v, nil
}

func (c *Collection[T]) save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}
