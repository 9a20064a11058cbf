package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"echofm/logger"
)

// Record is implemented by every persisted value type. RecordID must equal
// the id the record is addressed under.
type Record interface {
	RecordID() string
}

// Definition describes one entity type: the key namespace its records live
// in, the companion index that enumerates them, and the static dataset an
// empty store is seeded with. Definitions are immutable package-level
// values shared by all requests.
type Definition[T Record] struct {
	Name      string // key namespace, e.g. "track"
	IndexName string // companion index key, e.g. "tracks"
	Seed      []T
}

// Key returns the storage key for one record id.
func (d *Definition[T]) Key(id string) string {
	return d.Name + ":" + id
}

// Index returns the companion index on the given store.
func (d *Definition[T]) Index(kv KV) *Index {
	return NewIndex(kv, d.IndexName)
}

// Entity binds the definition to a single record slot.
func (d *Definition[T]) Entity(kv KV, id string) *Entity[T] {
	return &Entity[T]{def: d, kv: kv, id: id}
}

// Create writes a new record and registers its id in the companion index
// in one logical step (entity first, index second, fixed order). It fails
// with ErrConflict when the id already exists; callers supply fresh ids so
// a conflict means a real collision or a seed race.
func (d *Definition[T]) Create(ctx context.Context, kv KV, value T) error {
	id := value.RecordID()
	if id == "" {
		return fmt.Errorf("%s: empty id: %w", d.Name, ErrValidation)
	}

	encoded, err := d.encode(id, value)
	if err != nil {
		return err
	}

	written, err := kv.PutIfAbsent(ctx, d.Key(id), encoded)
	if err != nil {
		return err
	}
	if !written {
		return fmt.Errorf("%s %q already exists: %w", d.Name, id, ErrConflict)
	}

	return d.Index(kv).Add(ctx, id)
}

// List reads the index, then every referenced record, in index order.
// Records that no longer resolve are skipped: the index and the entity are
// written together, so a gap only appears under corrupted state, and list
// stays best-effort rather than failing the whole enumeration. Storage
// faults still propagate.
func (d *Definition[T]) List(ctx context.Context, kv KV) ([]T, error) {
	ids, err := d.Index(kv).List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(ids))
	for _, id := range ids {
		raw, found, err := kv.Get(ctx, d.Key(id))
		if err != nil {
			return nil, err
		}
		if !found {
			logger.Warn("indexed record missing, skipping",
				logger.String("entity", d.Name),
				logger.String("id", id),
			)
			continue
		}
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			logger.Warn("indexed record undecodable, skipping",
				logger.String("entity", d.Name),
				logger.String("id", id),
				logger.ErrorField(err),
			)
			continue
		}
		items = append(items, value)
	}
	return items, nil
}

// EnsureSeed populates an empty store with the definition's seed dataset.
// The guard is the index itself: a non-empty index means seeding already
// happened. Two callers racing on a cold store are both safe — the loser
// of each per-record create observes ErrConflict and moves on, so the seed
// set ends up present exactly once and no error surfaces to either caller.
func (d *Definition[T]) EnsureSeed(ctx context.Context, kv KV) error {
	ids, err := d.Index(kv).List(ctx)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		return nil
	}

	for _, value := range d.Seed {
		if err := d.Create(ctx, kv, value); err != nil {
			if errors.Is(err, ErrConflict) {
				continue // another caller seeded this record first
			}
			return err
		}
	}
	logger.Info("seeded entity store",
		logger.String("entity", d.Name),
		logger.Int("records", len(d.Seed)),
	)
	return nil
}

func (d *Definition[T]) encode(id string, value T) ([]byte, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, storageErr("encode", d.Key(id), err)
	}
	return encoded, nil
}

// Entity is raw access to one (entityName, id) slot.
type Entity[T Record] struct {
	def *Definition[T]
	kv  KV
	id  string
}

// ID returns the addressing id of the slot.
func (e *Entity[T]) ID() string { return e.id }

// Exists reports whether the slot has ever been written.
func (e *Entity[T]) Exists(ctx context.Context) (bool, error) {
	_, found, err := e.kv.Get(ctx, e.def.Key(e.id))
	return found, err
}

// State returns the current value, failing with ErrNotFound on a slot that
// has never been created. Callers check Exists first where the distinction
// matters.
func (e *Entity[T]) State(ctx context.Context) (T, error) {
	value, _, err := e.load(ctx)
	return value, err
}

// Put unconditionally overwrites the slot. The value's id must match the
// addressing id.
func (e *Entity[T]) Put(ctx context.Context, value T) error {
	if value.RecordID() != e.id {
		return fmt.Errorf("%s: value id %q does not match slot id %q: %w",
			e.def.Name, value.RecordID(), e.id, ErrValidation)
	}
	encoded, err := e.def.encode(e.id, value)
	if err != nil {
		return err
	}
	return e.kv.Put(ctx, e.def.Key(e.id), encoded)
}

// Delete removes the slot. The companion index is untouched; only likes
// and playlist membership are deletable in this design.
func (e *Entity[T]) Delete(ctx context.Context) error {
	return e.kv.Delete(ctx, e.def.Key(e.id))
}

// Mutate atomically applies fn to the current value and writes the result
// back, returning the new value. fn must be a pure function of its input:
// a lost optimistic race re-reads and re-applies it, up to maxCASRetries
// attempts, after which the call fails with ErrConflict. A mutation that
// leaves the serialized value unchanged performs no write.
func (e *Entity[T]) Mutate(ctx context.Context, fn func(T) T) (T, error) {
	var zero T
	key := e.def.Key(e.id)

	for attempt := 0; attempt < maxCASRetries; attempt++ {
		current, raw, err := e.load(ctx)
		if err != nil {
			return zero, err
		}

		next := fn(current)
		if next.RecordID() != e.id {
			return zero, fmt.Errorf("%s: mutation changed id %q to %q: %w",
				e.def.Name, e.id, next.RecordID(), ErrValidation)
		}

		encoded, err := e.def.encode(e.id, next)
		if err != nil {
			return zero, err
		}
		if bytes.Equal(encoded, raw) {
			return next, nil
		}

		swapped, err := e.kv.CompareAndSwap(ctx, key, raw, encoded)
		if err != nil {
			return zero, err
		}
		if swapped {
			return next, nil
		}
	}
	return zero, fmt.Errorf("%s %q: mutate retries exhausted: %w", e.def.Name, e.id, ErrConflict)
}

func (e *Entity[T]) load(ctx context.Context) (T, []byte, error) {
	var value T
	key := e.def.Key(e.id)

	raw, found, err := e.kv.Get(ctx, key)
	if err != nil {
		return value, nil, err
	}
	if !found {
		return value, nil, fmt.Errorf("%s %q: %w", e.def.Name, e.id, ErrNotFound)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, nil, storageErr("decode", key, err)
	}
	return value, raw, nil
}
