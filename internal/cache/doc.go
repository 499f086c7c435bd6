// Package cache provides a generic, size-budgeted LRU cache.
//
// Values are weighed by a caller supplied function, so the budget can be
// expressed in bytes rather than entries:
//
//	c := cache.New[uint64, []byte](1<<20, func(b []byte) int64 { return int64(len(b)) })
//	c.Set(42, buf)
//	value, ok := c.Get(42)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
