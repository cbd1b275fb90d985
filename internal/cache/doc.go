// Package cache provides a small generic LRU cache.
//
// It backs the shared font cache of package text: parsed fonts are loaded once
// per key and then handed out read-only to any number of pipelines.
//
//	c := cache.New[string, *Font](16)
//	f, err := c.GetOrLoad(path, func() (*Font, error) { return load(path) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
