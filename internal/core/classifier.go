package core

import (
	"strings"
	"time"

	"bilancio/internal/cache"
)

// Classifier memoizes Classify results per normalized description.
// Bank exports repeat the same merchant strings many times, so the lookup
// table pays for itself on anything beyond a trivial file.
type Classifier struct {
	cache *cache.LRUCache[string]
}

// NewClassifier returns a classifier with a bounded memoization cache.
func NewClassifier() *Classifier {
	return &Classifier{
		cache: cache.NewLRUCache[string](4096, time.Hour),
	}
}

// Classify returns the category for a description, consulting the cache
// first. Results are identical to the package-level Classify.
func (c *Classifier) Classify(description string) string {
	key := strings.ToLower(strings.TrimSpace(description))
	if cat, ok := c.cache.Get(key); ok {
		return cat
	}
	cat := Classify(description)
	c.cache.Set(key, cat)
	return cat
}
