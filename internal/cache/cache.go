// Package cache provides the TTL-bounded, capacity-bounded store backing
// component and token extraction. The Store interface is the seam for a
// future distributed backing store; Memory is the only implementation today.
package cache

import (
	"container/list"
	"regexp"
	"sync"
	"time"
)

// Store is the pluggable cache contract. Get never returns a value for an
// expired or evicted entry.
type Store interface {
	// Get returns the value for key, or false when absent or expired.
	Get(key string) (any, bool)

	// Set stores value under key. A zero ttl uses the store default.
	Set(key string, value any, ttl time.Duration)

	// Has reports whether key holds a live entry.
	Has(key string) bool

	// Delete removes key. Removing an absent key is a no-op.
	Delete(key string)

	// Clear removes every entry.
	Clear()

	// InvalidatePattern deletes every key matching re and returns how many
	// entries were removed.
	InvalidatePattern(re *regexp.Regexp) int

	// Len returns the number of physically present entries, expired or not.
	Len() int
}

type entry struct {
	key       string
	data      any
	timestamp time.Time
	ttl       time.Duration
}

// Memory is an in-process Store with least-recently-used eviction past
// MaxEntries and lazy TTL expiry on read. All methods are safe for
// concurrent use behind a single mutex.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List // front = most recently used
	maxEntries int
	defaultTTL time.Duration
	now        func() time.Time
}

// NewMemory returns a Memory store holding at most maxEntries values, each
// living for defaultTTL unless Set overrides it.
func NewMemory(maxEntries int, defaultTTL time.Duration) *Memory {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &Memory{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (m *Memory) expired(e *entry) bool {
	return m.now().Sub(e.timestamp) > e.ttl
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if m.expired(e) {
		m.order.Remove(el)
		delete(m.entries, key)
		return nil, false
	}
	m.order.MoveToFront(el)
	return e.data, true
}

func (m *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[key]; ok {
		e := el.Value.(*entry)
		e.data = value
		e.timestamp = m.now()
		e.ttl = ttl
		m.order.MoveToFront(el)
		return
	}

	m.entries[key] = m.order.PushFront(&entry{
		key:       key,
		data:      value,
		timestamp: m.now(),
		ttl:       ttl,
	})

	for len(m.entries) > m.maxEntries {
		oldest := m.order.Back()
		if oldest == nil {
			break
		}
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*entry).key)
	}
}

func (m *Memory) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[key]; ok {
		m.order.Remove(el)
		delete(m.entries, key)
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*list.Element)
	m.order.Init()
}

func (m *Memory) InvalidatePattern(re *regexp.Regexp) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, el := range m.entries {
		if re.MatchString(key) {
			m.order.Remove(el)
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Typed fetches key from s and asserts it to T. The second return is false
// when the key is absent or holds a different type.
func Typed[T any](s Store, key string) (T, bool) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
