// Package cache holds parsed results per document URI. Staleness is handled
// by one discipline only: the owner calls Invalidate on every change
// notification. The cache never invalidates implicitly.
package cache

import (
	"fmt"

	"github.com/maypok86/otter"

	"github.com/zen-lang/zenls/pkg/schema"
)

// DefaultCapacity bounds the number of cached documents.
const DefaultCapacity = 256

// ResultCache maps document URIs to their latest parse result.
type ResultCache struct {
	inner otter.Cache[string, *schema.ParseResult]
}

// NewResultCache builds a cache. Non-positive capacity selects the default.
func NewResultCache(capacity int) (*ResultCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	inner, err := otter.MustBuilder[string, *schema.ParseResult](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build result cache: %w", err)
	}
	return &ResultCache{inner: inner}, nil
}

// Get returns the cached result for a URI.
func (c *ResultCache) Get(uri string) (*schema.ParseResult, bool) {
	return c.inner.Get(uri)
}

// Put stores the result for a URI, replacing any previous entry.
func (c *ResultCache) Put(uri string, res *schema.ParseResult) {
	c.inner.Set(uri, res)
}

// Invalidate drops the entry for a URI. Call on every change notification.
func (c *ResultCache) Invalidate(uri string) {
	c.inner.Delete(uri)
}

// Clear drops every entry.
func (c *ResultCache) Clear() {
	c.inner.Clear()
}

// Size returns the number of cached documents.
func (c *ResultCache) Size() int {
	return c.inner.Size()
}

// Close releases the cache's background resources.
func (c *ResultCache) Close() {
	c.inner.Close()
}
