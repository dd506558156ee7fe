// Package cache provides a small generic LRU cache.
//
// The sampler keeps per-width trigonometry tables here so repeated calls
// with the same grid width skip recomputing them.
//
//	c := cache.New[int, *Table](16)
//	t := c.GetOrCreate(width, func() *Table { return build(width) })
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
