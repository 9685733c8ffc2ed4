// Package cache provides a small generic LRU cache with a soft limit.
//
// gizmo uses it to share tessellation tables between draw calls:
//
//	dirs := cache.New[arcKey, []Point](256)
//	unit := dirs.GetOrCreate(key, func() []Point { return sample(key) })
//
// Values handed out by the cache are shared and must be treated as
// read-only.
package cache
