package cache

import "github.com/segmentio/intrusive/container/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// Entries are linked in an intrusive queue ordered from the most to the least
// recently used, so promoting an entry on lookup and evicting the oldest one
// are constant time and allocate no list elements.
type LRU[K comparable, V any] struct {
	index map[K]*entry[K, V]
	queue list.Intrusive[*entry[K, V]]
}

type entry[K comparable, V any] struct {
	list.Link[*entry[K, V]]
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return len(lru.index)
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]*entry[K, V])
	}
	e, ok := lru.index[key]
	if ok {
		previous, replaced = e.value, true
		e.value = value
		lru.promote(e)
	} else {
		e = &entry[K, V]{key: key, value: value}
		lru.index[key] = e
		lru.queue.PushFront(e)
	}
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	e, ok := lru.index[key]
	if ok {
		lru.promote(e)
		value, found = e.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	e, ok := lru.index[key]
	if ok {
		delete(lru.index, key)
		e.Unlink()
		value, deleted = e.value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if e, ok := lru.queue.PopBack(); ok {
		delete(lru.index, e.key)
		key, value, evicted = e.key, e.value, true
	}
	return key, value, evicted
}

// Range calls f for each entry of the cache, from the most to the least
// recently used. Ranging does not change the order of entries.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	for e := range lru.queue.All() {
		if !f(e.key, e.value) {
			break
		}
	}
}

func (lru *LRU[K, V]) promote(e *entry[K, V]) {
	if lru.queue.Front() != e {
		e.Unlink()
		lru.queue.PushFront(e)
	}
}
