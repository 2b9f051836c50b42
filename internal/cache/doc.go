// Package cache provides a generic LRU cache for rendered regions.
//
//	c := cache.New[regionKey, *image.Alpha](64)
//	c.Set(key, mask)
//	mask, ok := c.Get(key)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
