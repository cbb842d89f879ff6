package internal

import (
	"sync"
	"sync/atomic"
)

type lruItem[V any] struct {
	v V
	n int32
}

// LRUMap wraps a Map with a crude LRU system. It works by tracking a top level
// counter (`n`) that is incremented for every Get and Set, and the new counter
// value stored with each item as well. After a Set, `trim` may be invoked. The
// `trim` operation constrains the map size by computing a threshold value for
// the counter `n` and deleting any entry whose last access is below that
// threshold. The threshold is determined as a `ratio` times the number of map
// items, so items not touched in the last `ratio` passes through the full map
// are pruned.
type LRUMap[K comparable, V any] struct {
	mu    sync.RWMutex
	m     map[K]*lruItem[V]
	ratio int
	n     int32
}

// NewLRUMap creates a new LRUMap with the given initial map allocation size and
// trim ratio
func NewLRUMap[K comparable, V any](size, ratio int) *LRUMap[K, V] {
	return &LRUMap[K, V]{m: make(map[K]*lruItem[V], size), ratio: ratio}
}

// trim removes excess items from the map based on LRU data. It must be called
// with mu Lock()ed.
//
// The threshold is n - len*ratio. If it is negative, trim does nothing.
// Otherwise any item whose last n value is below the threshold is deleted, and
// the n value of the survivors and of the map are shifted down by it.
func (m *LRUMap[K, V]) trim() {
	t := atomic.LoadInt32(&m.n) - int32(len(m.m)*m.ratio)
	if t < 0 {
		return
	}
	for k, v := range m.m {
		if vn := atomic.LoadInt32(&v.n); vn < t {
			delete(m.m, k)
		} else {
			atomic.AddInt32(&v.n, -t)
		}
	}
	atomic.AddInt32(&m.n, -t)
}

// Get fetches the value for k, marking it as recently used
func (m *LRUMap[K, V]) Get(k K) (v V, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.m[k]
	if i == nil {
		return
	}
	atomic.StoreInt32(&i.n, atomic.AddInt32(&m.n, 1))
	return i.v, true
}

// Set stores v for k, possibly trimming stale entries
func (m *LRUMap[K, V]) Set(k K, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nn := atomic.AddInt32(&m.n, 1)
	var i *lruItem[V]
	if i = m.m[k]; i != nil {
		i.v = v
		atomic.StoreInt32(&i.n, nn)
	} else {
		i = &lruItem[V]{v, nn}
		m.m[k] = i
	}
	if int(nn) > len(m.m)*m.ratio {
		m.trim()
	}
}

// Len returns the number of items currently held
func (m *LRUMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}

type result[V any] struct {
	v   V
	err error
}

// MemoizeResult uses an LRUMap to memoize a fallible function. Failures are
// cached the same as successes, so a bad input is only evaluated once.
func MemoizeResult[K comparable, V any](size, ratio int, f func(K) (V, error)) func(K) (V, error) {
	m := NewLRUMap[K, result[V]](size, ratio)
	return func(k K) (V, error) {
		if r, ok := m.Get(k); ok {
			return r.v, r.err
		}
		v, err := f(k)
		m.Set(k, result[V]{v, err})
		return v, err
	}
}
