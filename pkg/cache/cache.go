package cache

import "sync"

// Cache is a small concurrency safe memo map.
type Cache[Key comparable, Value any] struct {
  mu     sync.Mutex
  values map[Key]Value
}

func NewCache[K comparable, V any]() *Cache[K, V] {
  return &Cache[K, V]{
    values: make(map[K]V),
  }
}

func (c *Cache[K, V]) Set(key K, value V) {
  c.mu.Lock()
  defer c.mu.Unlock()

  c.values[key] = value
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
  c.mu.Lock()
  defer c.mu.Unlock()

  value, ok = c.values[key]

  return value, ok
}

func (c *Cache[K, V]) Delete(key K) {
  c.mu.Lock()
  defer c.mu.Unlock()

  delete(c.values, key)
}

func (c *Cache[K, V]) Clear() {
  c.mu.Lock()
  defer c.mu.Unlock()

  clear(c.values)
}
