package catalogkv

import (
	"context"
	"errors"

	"github.com/kailas-cloud/shopsearch/internal/db"
)

// memStore is an in-memory store with list support.
type memStore struct {
	kv    map[string][]byte
	lists map[string][]string

	pingErr   error
	lrangeErr error
	mgetErr   error
	setErr    error
}

func newMemStore() *memStore {
	return &memStore{kv: map[string][]byte{}, lists: map[string][]string{}}
}

func (m *memStore) Ping(_ context.Context) error { return m.pingErr }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.kv[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	if m.mgetErr != nil {
		return nil, m.mgetErr
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.kv[k]
	}
	return out, nil
}

func (m *memStore) SetMulti(_ context.Context, items []db.KVItem) error {
	if m.setErr != nil {
		return m.setErr
	}
	for _, it := range items {
		m.kv[it.Key] = it.Value
	}
	return nil
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.kv, k)
		delete(m.lists, k)
	}
	return nil
}

func (m *memStore) RPush(_ context.Context, key string, values ...string) error {
	m.lists[key] = append(m.lists[key], values...)
	return nil
}

func (m *memStore) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	if m.lrangeErr != nil {
		return nil, m.lrangeErr
	}
	if start != 0 || stop != -1 {
		return nil, errors.New("memStore supports full ranges only")
	}
	return append([]string(nil), m.lists[key]...), nil
}
