package store

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on a Redis connection. Every key is stored under a
// configurable prefix so one Redis database can host several deployments.
//
// CompareAndSwap uses an optimistic WATCH transaction: the write is
// discarded by Redis if any other client touches the key between the read
// and the EXEC, which is exactly the lost-update detection the entity
// mutate loop needs.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV wraps an already-connected Redis client.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) key(key string) string { return r.prefix + key }

// Get returns the value stored at key; redis.Nil maps to "not found".
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, storageErr("get", key, err)
	}
	return value, true, nil
}

// Put unconditionally overwrites the value at key. Catalog data has no
// expiry; it lives until deleted.
func (r *RedisKV) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return storageErr("put", key, err)
	}
	return nil
}

// PutIfAbsent maps directly onto SETNX.
func (r *RedisKV) PutIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	written, err := r.client.SetNX(ctx, r.key(key), value, 0).Result()
	if err != nil {
		return false, storageErr("setnx", key, err)
	}
	return written, nil
}

// CompareAndSwap swaps the value only if the key still holds expected.
func (r *RedisKV) CompareAndSwap(ctx context.Context, key string, expected, value []byte) (bool, error) {
	full := r.key(key)
	mismatch := errors.New("cas mismatch")

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, full).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return mismatch
			}
			return err
		}
		if !bytes.Equal(current, expected) {
			return mismatch
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, full, value, 0)
			return nil
		})
		return err
	}, full)

	if err != nil {
		// A concurrent write between WATCH and EXEC aborts the
		// transaction; report it as a lost race, not a fault.
		if errors.Is(err, mismatch) || errors.Is(err, redis.TxFailedErr) {
			return false, nil
		}
		return false, storageErr("cas", key, err)
	}
	return true, nil
}

// Delete removes the key; absent keys are a no-op.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return storageErr("delete", key, err)
	}
	return nil
}

// ListKeys scans for keys under prefix, stripping the deployment prefix
// from the result.
func (r *RedisKV) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.key(prefix)+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, storageErr("scan", prefix, err)
	}
	return keys, nil
}
