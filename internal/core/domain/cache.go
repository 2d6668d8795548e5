// Package domain contains the core types of the content cache.
package domain

import "time"

// CacheEntry is the last observed state of one document.
type CacheEntry struct {
	// Hash is the hex digest of the document body, header excluded.
	Hash string `json:"hash"`
	// ModifiedAt is the file modification time in fractional milliseconds since the Unix epoch.
	ModifiedAt float64 `json:"mtime"`
}

// Cache maps a document identity to its last observed state.
type Cache map[string]CacheEntry

// NewCache returns an empty cache.
func NewCache() Cache {
	return make(Cache)
}

// Lookup returns the entry stored for id and whether one exists.
func (c Cache) Lookup(id string) (CacheEntry, bool) {
	entry, ok := c[id]
	return entry, ok
}

// MillisFromTime converts t to fractional milliseconds since the Unix epoch.
// Seconds and nanoseconds are combined separately so the value matches what
// other tools record for the same timestamp.
func MillisFromTime(t time.Time) float64 {
	return float64(t.Unix())*1e3 + float64(t.Nanosecond())/1e6
}
