package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// Index is a named, durably-persisted collection of distinct string ids
// stored under a single key as a JSON array. Enumeration indexes keep
// creation order; membership indexes (likes) treat the sequence as a set.
//
// Add and Remove are read-modify-write against the one index key and go
// through a bounded compare-and-swap loop so that two racing updates never
// lose each other.
type Index struct {
	kv  KV
	key string
}

// NewIndex binds an index name to a backing store. The name is the storage
// key, e.g. "tracks" or "user-likes:<userId>".
func NewIndex(kv KV, name string) *Index {
	return &Index{kv: kv, key: name}
}

// Key returns the storage key of the index.
func (ix *Index) Key() string { return ix.key }

// List returns the current members. An index key that has never been
// written reads as an empty sequence.
func (ix *Index) List(ctx context.Context) ([]string, error) {
	ids, _, err := ix.load(ctx)
	return ids, err
}

// Has reports whether id is a member.
func (ix *Index) Has(ctx context.Context, id string) (bool, error) {
	ids, _, err := ix.load(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Add inserts id if absent. Adding an existing member is a no-op, not an
// error.
func (ix *Index) Add(ctx context.Context, id string) error {
	return ix.update(ctx, func(ids []string) []string {
		if slices.Contains(ids, id) {
			return ids
		}
		return append(slices.Clone(ids), id)
	})
}

// Remove deletes id if present. Removing a non-member is a no-op, not an
// error.
func (ix *Index) Remove(ctx context.Context, id string) error {
	return ix.update(ctx, func(ids []string) []string {
		if !slices.Contains(ids, id) {
			return ids
		}
		out := slices.Clone(ids)
		return slices.DeleteFunc(out, func(member string) bool { return member == id })
	})
}

func (ix *Index) load(ctx context.Context) ([]string, []byte, error) {
	raw, found, err := ix.kv.Get(ctx, ix.key)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return []string{}, nil, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, nil, storageErr("decode", ix.key, err)
	}
	return ids, raw, nil
}

// update applies fn under a bounded CAS loop. fn must be pure: it can run
// once per attempt.
func (ix *Index) update(ctx context.Context, fn func([]string) []string) error {
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		ids, raw, err := ix.load(ctx)
		if err != nil {
			return err
		}

		next := fn(ids)
		if slices.Equal(next, ids) {
			return nil // membership already as requested
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return storageErr("encode", ix.key, err)
		}

		var swapped bool
		if raw == nil {
			swapped, err = ix.kv.PutIfAbsent(ctx, ix.key, encoded)
		} else {
			swapped, err = ix.kv.CompareAndSwap(ctx, ix.key, raw, encoded)
		}
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
	}
	return fmt.Errorf("index %q: retries exhausted: %w", ix.key, ErrConflict)
}
