// Package cache provides a small generic LRU cache with a soft limit.
//
//	c := cache.New[string, int](100)
//	v := c.GetOrCreate("key", func() int { return 42 })
package cache
