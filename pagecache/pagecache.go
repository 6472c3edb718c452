// Package pagecache provides the implementation of a caching layer for files
// implementing the io.ReaderAt interface.
//
// Pages are preallocated frames linked in intrusive lists: a free list and a
// least recently used queue per bucket. Caching, promoting and evicting a page
// only relink its frame, the cache allocates nothing after construction except
// for its index.
package pagecache

import (
	"encoding/binary"
	"hash/maphash"
	"io"
	"math/bits"
	"sync"

	"github.com/pkg/errors"
	"github.com/segmentio/intrusive/container/list"
	"github.com/segmentio/intrusive/container/slist"
)

// Defaults of the cache configuration.
const (
	DefaultPageSize  = 4096
	DefaultPageCount = 16384
)

// Pages are spread over a fixed number of buckets, each with its own lock,
// frames and queues. A power of two keeps the bucket selection a mask.
const numBuckets = 64

// ErrNoPages is returned when every frame of a bucket is being filled by
// concurrent readers, leaving none to cache the page being read.
var ErrNoPages = errors.New("there are no free pages left in the cache")

// Config carries the configuration of page caches.
type Config struct {
	// Size of the pages, rounded up to a power of two. Zero selects the
	// default.
	PageSize int64
	// Number of pages of the cache, rounded up to a multiple of the number
	// of buckets.
	PageCount int64
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{PageSize: DefaultPageSize, PageCount: DefaultPageCount}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Cache instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// PageSize is a configuration option setting the size of pages.
//
// Default: 4 KiB
func PageSize(size int64) Option {
	return option(func(config *Config) { config.PageSize = size })
}

// PageCount is a configuration option setting the number of pages.
//
// Default: 16384
func PageCount(count int64) Option {
	return option(func(config *Config) { config.PageCount = count })
}

// Cache is a page cache shared by the files it wraps.
type Cache struct {
	seed    maphash.Seed
	shift   uint
	buckets [numBuckets]bucket
}

// New constructs a new Cache instance, using the list of options passed as
// arguments to configure it.
func New(options ...Option) *Cache {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the cache
// configuration instead of a list of options.
func NewWithConfig(config *Config) *Cache {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageCount := max(config.PageCount, 1)
	pageCount = (pageCount + numBuckets - 1) / numBuckets * numBuckets

	shift := uint(bits.Len64(uint64(pageSize - 1)))
	perBucket := (pageCount / numBuckets) << shift
	data := make([]byte, perBucket*numBuckets)

	c := &Cache{seed: maphash.MakeSeed(), shift: shift}
	for i := range c.buckets {
		c.buckets[i].init(data[int64(i)*perBucket:int64(i+1)*perBucket], int64(1)<<shift)
	}
	return c
}

// PageSize returns the size of the pages of c.
func (c *Cache) PageSize() int64 { return int64(1) << c.shift }

// NewFile wraps file, which has the given size, to read it through the cache.
// Files sharing an id share their cached pages, so distinct files must have
// distinct ids.
func (c *Cache) NewFile(id uint32, file io.ReaderAt, size int64) io.ReaderAt {
	return &cachedFile{cache: c, id: id, file: file, size: size}
}

// bucketOf hashes the whole region so neighboring pages of a file land in
// different buckets.
func (c *Cache) bucketOf(key region) *bucket {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[:4], key.object)
	binary.LittleEndian.PutUint32(b[4:], key.offset)
	return &c.buckets[maphash.Bytes(c.seed, b[:])%numBuckets]
}

// Stats carries counters accumulated since the cache was created.
type Stats struct {
	Lookups   int64 // page lookups
	Hits      int64 // lookups which found the page
	Inserts   int64 // pages cached after being read from a file
	Evictions int64 // cached pages evicted to read another page
	Allocs    int64 // frames taken from the free lists
	Frees     int64 // frames returned to the free lists
}

// HitRate returns the ratio of lookups which found their page, zero if there
// were no lookups.
func (s *Stats) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups)
}

// Stats returns the counters of c.
func (c *Cache) Stats() (stats Stats) {
	for i := range c.buckets {
		s := c.buckets[i].stats()
		stats.Lookups += s.lookups
		stats.Hits += s.hits
		stats.Inserts += s.inserts
		stats.Evictions += s.evictions
		stats.Allocs += s.allocs
		stats.Frees += s.frees
	}
	return stats
}

type cachedFile struct {
	cache *Cache
	id    uint32
	file  io.ReaderAt
	size  int64
}

func (f *cachedFile) ReadAt(b []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, errors.Errorf("offset out of range: %d/%d", off, f.size)
	}
	if off >= f.size {
		return 0, io.EOF
	}
	// Short reads at the end of the file must report io.EOF.
	var eof error
	if limit := f.size - off; limit < int64(len(b)) {
		b, eof = b[:limit], io.EOF
	}
	if len(b) == 0 {
		return 0, nil
	}

	cache := f.cache
	shift := cache.shift
	pageSize := int64(1) << shift

	for {
		key := region{
			object: f.id,
			offset: uint32(off >> shift),
		}

		pageOffset := int64(key.offset) << shift
		readOffset := off - pageOffset

		if bucket := cache.bucketOf(key); !bucket.read(b[n:], key, shift, readOffset) {
			page, data, ok := bucket.get(shift)
			if !ok {
				return n, ErrNoPages
			}

			rn, err := f.file.ReadAt(data, pageOffset)
			if rn < len(data) && !errors.Is(err, io.EOF) {
				if err == nil {
					err = io.ErrNoProgress
				}
				bucket.release(page)
				return n, errors.Wrapf(err, "reading page at offset %d", pageOffset)
			}

			copy(b[n:], data[readOffset:rn])
			bucket.put(key, page)
		}

		readBytes := pageSize - readOffset
		if n += int(readBytes); n >= len(b) {
			return len(b), eof
		}
		if off += readBytes; off >= f.size {
			return n, io.EOF
		}
	}
}

type region struct {
	object uint32
	offset uint32
}

type (
	queueLink = list.Link[*frame]
	freeLink  = slist.Link[*frame]
)

// frame holds one page of a bucket. Frames are linked in the LRU queue of the
// bucket while they cache a region, in its free list while they are unused,
// and in neither while a reader fills them.
type frame struct {
	queue queueLink
	free  freeLink
	key   region
	index uint32
}

func (f *frame) ListLink() *queueLink { return &f.queue }

func (f *frame) SListLink() *freeLink { return &f.free }

type bucket struct {
	mutex  sync.Mutex
	index  map[region]*frame
	queue  list.Intrusive[*frame]
	free   slist.Intrusive[*frame]
	frames []frame
	pages  []byte
	bucketStats
}

type bucketStats struct {
	lookups   int64
	hits      int64
	inserts   int64
	evictions int64
	allocs    int64
	frees     int64
}

func (b *bucket) init(data []byte, pageSize int64) {
	b.pages = data
	b.index = make(map[region]*frame)
	b.frames = make([]frame, int64(len(data))/pageSize)
	for i := len(b.frames) - 1; i >= 0; i-- {
		f := &b.frames[i]
		f.index = uint32(i)
		b.free.PushFront(f)
	}
}

func (b *bucket) bytes(f *frame, shift uint) []byte {
	offset := int64(f.index) << shift
	length := int64(1) << shift
	return b.pages[offset : offset+length]
}

func (b *bucket) read(data []byte, key region, shift uint, off int64) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	f, ok := b.index[key]
	if ok {
		b.hits++
		if b.queue.Front() != f {
			f.queue.Unlink()
			b.queue.PushFront(f)
		}
		copy(data, b.bytes(f, shift)[off:])
	}
	b.lookups++
	return ok
}

func (b *bucket) get(shift uint) (*frame, []byte, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if f, ok := b.free.PopFront(); ok {
		b.allocs++
		return f, b.bytes(f, shift), true
	}

	if f, ok := b.queue.PopBack(); ok {
		delete(b.index, f.key)
		b.evictions++
		return f, b.bytes(f, shift), true
	}

	return nil, nil, false
}

func (b *bucket) put(key region, f *frame) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, exists := b.index[key]; exists {
		// Another reader cached the region while f was being filled.
		b.free.PushFront(f)
		b.frees++
		return
	}

	f.key = key
	b.index[key] = f
	b.queue.PushFront(f)
	b.inserts++
}

func (b *bucket) release(f *frame) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.free.PushFront(f)
	b.frees++
}

func (b *bucket) stats() (stats bucketStats) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bucketStats
}
