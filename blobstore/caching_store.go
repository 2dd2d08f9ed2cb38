package blobstore

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
)

// CachingStore wraps a Store and keeps recently read blobs in memory.
//
// Reads are served from an LRU cache bounded by a byte budget. Put and
// Delete invalidate the cached entry before reaching the inner store, so
// readers never observe stale data after a successful write.
//
// Cached data is shared between callers and must be treated as read-only.
type CachingStore struct {
	inner    Store
	capacity int64

	mu        sync.Mutex
	size      int64
	items     map[string]*list.Element
	evictList *list.List

	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	name string
	data []byte
}

// NewCachingStore creates a new CachingStore.
// capacity is the cache budget in bytes and defaults to 32MB if <= 0.
func NewCachingStore(inner Store, capacity int64) *CachingStore {
	if capacity <= 0 {
		capacity = 32 << 20
	}
	return &CachingStore{
		inner:     inner,
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
	}
}

// Put invalidates the cache entry for name before writing through.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Get returns the cached blob when present and reads through otherwise.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.lookup(name); ok {
		return data, nil
	}

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	s.admit(name, data)
	return data, nil
}

// Delete invalidates the cache entry for name before deleting.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List delegates to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Exists reports whether a blob exists. A cached blob exists without
// consulting the inner store.
func (s *CachingStore) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	_, ok := s.items[name]
	s.mu.Unlock()

	if ok {
		return true, nil
	}
	return s.inner.Exists(ctx, name)
}

// Stats returns cache hit and miss counters.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

// Size returns the current size of the cache in bytes.
func (s *CachingStore) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *CachingStore) lookup(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[name]; ok {
		s.hits.Add(1)
		s.evictList.MoveToFront(ent)
		return ent.Value.(*cacheEntry).data, true
	}
	s.misses.Add(1)
	return nil, false
}

func (s *CachingStore) admit(name string, data []byte) {
	size := int64(len(data))

	// Blobs larger than the whole budget are never cached.
	if size > s.capacity {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[name]; ok {
		old := ent.Value.(*cacheEntry)
		s.size += size - int64(len(old.data))
		old.data = data
		s.evictList.MoveToFront(ent)
	} else {
		s.items[name] = s.evictList.PushFront(&cacheEntry{name: name, data: data})
		s.size += size
	}

	for s.size > s.capacity {
		back := s.evictList.Back()
		if back == nil {
			break
		}
		s.removeElement(back)
	}
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[name]; ok {
		s.removeElement(ent)
	}
}

func (s *CachingStore) removeElement(e *list.Element) {
	s.evictList.Remove(e)
	ent := e.Value.(*cacheEntry)
	delete(s.items, ent.name)
	s.size -= int64(len(ent.data))
}
