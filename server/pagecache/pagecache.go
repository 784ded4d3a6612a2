// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pagecache provides a thread-safe, fixed-capacity least-recently-used (LRU)
cache of rendered pages.

Keys are strings, usually the locale a page was rendered in. The cache evicts
the least recently used page when it reaches capacity. When created with
compression enabled via [New], page bodies are stored zstd-compressed and
transparently decompressed by [Cache.Get].

A nil *Cache is valid and caches nothing, which is how a disabled cache is
represented.
*/
package pagecache

import (
	"container/list"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidSize = errors.New("must provide a positive size")

// Page is a rendered page.
type Page struct {
	Body []byte

	// ETag is a strong validator derived from Body.
	ETag string
}

// NewPage returns a Page for body with its ETag computed.
func NewPage(body []byte) Page {
	h := fnv.New64a()
	_, _ = h.Write(body)

	return Page{
		Body: body,
		ETag: `"` + strconv.FormatUint(h.Sum64(), 16) + `"`,
	}
}

// Cache is a fixed-capacity, least-recently-used cache of pages that is safe for concurrent use.
// Instances must be constructed with [New].
type Cache struct {
	size      int                      // Maximum number of pages
	evictList *list.List               // Front is the most recently used page
	items     map[string]*list.Element // Maps keys to their linked-list elements
	lock      sync.Mutex

	compress bool
	zstdEnc  *zstd.Encoder // Reusable encoder for block operations
	zstdDec  *zstd.Decoder // Reusable decoder for block operations

	renders singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
}

// cacheEntry holds the key/page pair stored in each linked-list element.
type cacheEntry struct {
	key        string
	body       []byte
	etag       string
	compressed bool
}

// New creates a cache holding at most size pages.
//
// If compress is true, bodies are stored compressed whenever that makes them smaller.
//
// It returns an error if size is not a positive integer.
func New(size int, compress bool) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Cache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
		compress:  compress,
	}

	if compress {
		// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("creating zstd encoder: %w", err)
		}

		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("creating zstd decoder: %w", err)
		}

		c.zstdEnc = enc
		c.zstdDec = dec
	}

	return c, nil
}

// Add stores page under key, making it the most recently used.
//
// If the cache is at capacity, the least recently used page is evicted.
// Add reports whether an eviction occurred.
func (c *Cache) Add(key string, page Page) bool {
	if c == nil {
		return false
	}

	// Compress before acquiring the lock; EncodeAll is safe for concurrent use.
	body, compressed := c.pack(page.Body)

	c.lock.Lock()
	defer c.lock.Unlock()

	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)

		if cacheEnt, ok := ent.Value.(*cacheEntry); ok {
			cacheEnt.body = body
			cacheEnt.etag = page.ETag
			cacheEnt.compressed = compressed
		}

		return false
	}

	c.items[key] = c.evictList.PushFront(&cacheEntry{
		key:        key,
		body:       body,
		etag:       page.ETag,
		compressed: compressed,
	})

	evicted := c.evictList.Len() > c.size
	if evicted {
		c.removeElement(c.evictList.Back())
	}

	return evicted
}

// Get retrieves the page for key and marks it as most recently used.
//
// The returned body is a copy and may be modified by the caller.
func (c *Cache) Get(key string) (Page, bool) {
	if c == nil {
		return Page{}, false
	}

	c.lock.Lock()

	ent, ok := c.items[key]
	if !ok {
		c.lock.Unlock()
		c.misses.Add(1)

		return Page{}, false
	}

	c.evictList.MoveToFront(ent)

	cacheEnt, _ := ent.Value.(*cacheEntry)
	body, etag, compressed := cacheEnt.body, cacheEnt.etag, cacheEnt.compressed

	c.lock.Unlock()

	out, err := c.unpack(body, compressed)
	if err != nil {
		c.misses.Add(1)

		return Page{}, false
	}

	c.hits.Add(1)

	return Page{Body: out, ETag: etag}, true
}

// GetOrRender returns the cached page for key, or calls render and caches
// its result. Concurrent calls for the same missing key share one render.
//
// The second result reports whether the page came from the cache.
// Render errors are returned and nothing is cached.
func (c *Cache) GetOrRender(key string, render func() ([]byte, error)) (Page, bool, error) {
	if c == nil {
		body, err := render()
		if err != nil {
			return Page{}, false, err
		}

		return NewPage(body), false, nil
	}

	if page, ok := c.Get(key); ok {
		return page, true, nil
	}

	v, err, _ := c.renders.Do(key, func() (any, error) {
		body, err := render()
		if err != nil {
			return nil, err
		}

		page := NewPage(body)
		c.Add(key, page)

		return page, nil
	})
	if err != nil {
		return Page{}, false, err
	}

	page, _ := v.(Page)

	// Shared results alias one body; hand every caller its own copy.
	page.Body = append([]byte(nil), page.Body...)

	return page, false, nil
}

// Remove deletes the page for key and reports whether it was present.
func (c *Cache) Remove(key string) bool {
	if c == nil {
		return false
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)

		return true
	}

	return false
}

// Purge removes every page.
func (c *Cache) Purge() {
	if c == nil {
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.evictList.Init()
	clear(c.items)
}

// Keys returns all keys in the cache, from the oldest to the newest.
func (c *Cache) Keys() []string {
	if c == nil {
		return nil
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	keys := make([]string, 0, len(c.items))

	for ent := c.evictList.Back(); ent != nil; ent = ent.Prev() {
		if cacheEnt, ok := ent.Value.(*cacheEntry); ok {
			keys = append(keys, cacheEnt.key)
		}
	}

	return keys
}

// Len returns the current number of pages in the cache.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	return c.evictList.Len()
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}

	return c.hits.Load(), c.misses.Load()
}

// removeElement removes e from both the eviction list and the map.
func (c *Cache) removeElement(e *list.Element) {
	c.evictList.Remove(e)

	if kv, ok := e.Value.(*cacheEntry); ok {
		delete(c.items, kv.key)
	}
}

// pack returns the representation of body to store.
// Compression is only kept if it reduces size; uncompressed bodies are copied
// so callers cannot mutate the cache.
func (c *Cache) pack(body []byte) ([]byte, bool) {
	if c.compress && len(body) > 0 {
		if compressed := c.zstdEnc.EncodeAll(body, nil); len(compressed) < len(body) {
			return compressed, true
		}
	}

	return append([]byte(nil), body...), false
}

// unpack reverses pack, always returning a fresh slice.
func (c *Cache) unpack(stored []byte, compressed bool) ([]byte, error) {
	if !compressed {
		return append([]byte(nil), stored...), nil
	}

	return c.zstdDec.DecodeAll(stored, nil)
}
