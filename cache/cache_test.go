package cache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCache(t *testing.T) {
	testCache(t, func() Interface[int, int] { return new(Cache[int, int]) })
}

func TestCacheWithCapacity(t *testing.T) {
	testCache(t, func() Interface[int, int] { return New[int, int](Capacity(10)) })
}

func TestLRU(t *testing.T) {
	testCache(t, func() Interface[int, int] { return new(LRU[int, int]) })
}

func testCache(t *testing.T, newCache func() Interface[int, int]) {
	tests := []struct {
		scenario string
		function func(*testing.T, Interface[int, int])
	}{
		{
			scenario: "a newly created cache contains no entries",
			function: testCacheNewHasNoEntries,
		},

		{
			scenario: "entries inserted in the cache can be found when looking up their keys",
			function: testCacheInsertAndLookup,
		},

		{
			scenario: "entries deleted from the cache are not returned anymore when looking up keys",
			function: testCacheInsertAndDeleteAndLookup,
		},

		{
			scenario: "deleting entries that did not exist is a no-op",
			function: testCacheDeleteNotExist,
		},

		{
			scenario: "cache evictions returns entries that were previously inserted",
			function: testCacheInsertAndEvict,
		},

		{
			scenario: "inserting entries for existing keys replaces the previous values",
			function: testCacheInsertAndReplace,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			test.function(t, newCache())
		})
	}
}

func testCacheNewHasNoEntries(t *testing.T, cache Interface[int, int]) {
	if n := cache.Len(); n != 0 {
		t.Errorf("wrong number of cache entries: got=%d want=0", n)
	}
}

func testCacheInsertAndLookup(t *testing.T, cache Interface[int, int]) {
	cache.Insert(1, 10)
	cache.Insert(2, 11)
	cache.Insert(3, 12)

	if n := cache.Len(); n != 3 {
		t.Errorf("wrong number of cache entries: got=%d want=3", n)
	}

	assertCacheLookup(t, cache, 1, 10, true)
	assertCacheLookup(t, cache, 2, 11, true)
	assertCacheLookup(t, cache, 3, 12, true)
}

func testCacheInsertAndDeleteAndLookup(t *testing.T, cache Interface[int, int]) {
	cache.Insert(1, 10)
	cache.Insert(2, 11)
	cache.Insert(3, 12)

	if v, deleted := cache.Delete(3); !deleted {
		t.Error("deleting key=3 was not found in the cache")
	} else if v != 12 {
		t.Errorf("deleting key=3 returned the wrong value: got=%v want=12", v)
	}

	assertCacheLookup(t, cache, 1, 10, true)
	assertCacheLookup(t, cache, 2, 11, true)
	assertCacheLookup(t, cache, 3, 0, false)
}

func testCacheDeleteNotExist(t *testing.T, cache Interface[int, int]) {
	if v, deleted := cache.Delete(42); deleted {
		t.Error("cache successfully deleted non-existing key")
	} else if v != 0 {
		t.Errorf("deletion of non-existing key returned non-zero value: %v", v)
	}
}

func testCacheInsertAndEvict(t *testing.T, cache Interface[int, int]) {
	cache.Insert(1, 10)
	cache.Insert(2, 11)
	cache.Insert(3, 12)

	if k, v, evicted := cache.Evict(); !evicted {
		t.Error("non-empty cache failed to evict anything")
	} else {
		switch k {
		case 1:
			if v != 10 {
				t.Errorf("wrong value returned for key=1: got=%v want=10", v)
			}
		case 2:
			if v != 11 {
				t.Errorf("wrong value returned for key=2: got=%v want=11", v)
			}
		case 3:
			if v != 12 {
				t.Errorf("wrong value returned for key=3: got=%v want=12", v)
			}
		}
	}
}

func testCacheInsertAndReplace(t *testing.T, cache Interface[int, int]) {
	cache.Insert(1, 10)

	if v, replaced := cache.Insert(1, 11); !replaced {
		t.Error("inserting existing key did not replace the previous entry")
	} else if v != 10 {
		t.Errorf("wrong replaced value returned: got=%v want=10", v)
	}

	assertCacheLookup(t, cache, 1, 11, true)
}

func assertCacheLookup(t *testing.T, cache Interface[int, int], key, value int, ok bool) {
	t.Helper()
	v, found := cache.Lookup(key)
	if found != ok {
		t.Errorf("wrong result to cache lookup: got=%t want=%t", found, ok)
	}
	if value != v {
		t.Errorf("wrong value returned by cache lookup: got=%v want=%v", value, v)
	}
	keyFoundInRange, valueFoundInRange := false, false
	cache.Range(func(k, v int) bool {
		if k == key {
			keyFoundInRange = true
			valueFoundInRange = v == value
			return false
		}
		return true
	})
	if keyFoundInRange != ok {
		t.Errorf("the key was not found when ranging over cache entries: %v", key)
	}
	if valueFoundInRange != ok {
		t.Errorf("the value was not found when ranging over cache entries: %v", value)
	}
}

func TestLRURangeOrder(t *testing.T) {
	lru := new(LRU[int, int])
	lru.Insert(1, 10)
	lru.Insert(2, 20)
	lru.Insert(3, 30)
	lru.Lookup(1)
	lru.Insert(2, 21)

	keys := []int{}
	lru.Range(func(k, _ int) bool {
		keys = append(keys, k)
		return true
	})
	if diff := cmp.Diff([]int{2, 1, 3}, keys); diff != "" {
		t.Errorf("entries not ranged from most to least recently used (-want +got):\n%s", diff)
	}

	for _, want := range []int{3, 1, 2} {
		if k, _, evicted := lru.Evict(); !evicted || k != want {
			t.Errorf("wrong key evicted: got=%d want=%d", k, want)
		}
	}
	if _, _, evicted := lru.Evict(); evicted {
		t.Error("empty cache evicted an entry")
	}
}

type handle struct {
	id       int
	released *[]int
}

func (h handle) Release() { *h.released = append(*h.released, h.id) }

func TestCacheCapacity(t *testing.T) {
	var released []int
	c := New[int, handle](Capacity(2), ReleaseEvicted(true))

	for i := 1; i <= 3; i++ {
		c.Insert(i, handle{id: i, released: &released})
	}
	c.Lookup(2)
	c.Lookup(4)
	c.Insert(4, handle{id: 4, released: &released})
	c.Delete(2)

	if n := c.Len(); n != 1 {
		t.Errorf("wrong number of cache entries: got=%d want=1", n)
	}
	if diff := cmp.Diff([]int{1, 3}, released); diff != "" {
		t.Errorf("wrong values released on eviction (-want +got):\n%s", diff)
	}

	want := Stats{Inserts: 4, Deletes: 1, Lookups: 2, Hits: 1, Evictions: 2}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}
