// Package store implements the entity-and-index persistence core: a small
// generic record store over an opaque key-value capability, with idempotent
// index membership, conflict-checked creation, idempotent bulk seeding and
// optimistic read-modify-write mutation.
//
// The backing store is assumed single-key-atomic but offers no cross-key
// transactions; all read-modify-write paths serialize per key through the
// compare-and-swap primitives below.
package store

import "context"

// KV is the backing key-value capability the store is written against.
// Values are opaque blobs; keys live in a single logical keyspace.
//
// PutIfAbsent and CompareAndSwap are the per-key serialization primitives:
// both are atomic with respect to concurrent writers of the same key and
// report false, without error, when they lose the race. Operations on
// different keys are fully independent.
type KV interface {
	// Get returns the value stored at key and whether the key exists.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put unconditionally overwrites the value at key.
	Put(ctx context.Context, key string, value []byte) error

	// PutIfAbsent writes value only when the key does not exist yet.
	PutIfAbsent(ctx context.Context, key string, value []byte) (written bool, err error)

	// CompareAndSwap writes value only when the current value at key equals
	// expected byte-for-byte.
	CompareAndSwap(ctx context.Context, key string, expected, value []byte) (swapped bool, err error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// ListKeys returns every key starting with prefix, in no particular
	// order.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// maxCASRetries bounds every optimistic read-modify-write loop in the
// store. Exhaustion surfaces as ErrConflict rather than retrying forever.
// A CAS loser only loses because another writer of the same key won, so
// the bound also caps how many concurrent same-key writers are guaranteed
// to all make progress.
const maxCASRetries = 32
