package track

import (
	"image"
	"sync"
	"time"

	"github.com/subtrack/subtrack/internal/subtitle"
)

// Artifact is a rendered cue, queryable by time for pixel data.
type Artifact interface {
	FrameAt(t time.Duration) image.Image
}

// Masker is the optional alpha-mask capability of an Artifact.
type Masker interface {
	MaskAt(t time.Duration) image.Image
}

// Cache memoizes rendered artifacts per cue for the lifetime of a session.
// Entries are never evicted or replaced, so a cue renders at most once and
// repeat lookups return the identical artifact.
type Cache struct {
	mu      sync.Mutex
	entries map[subtitle.Cue]Artifact
}

func NewCache() *Cache {
	return &Cache{entries: make(map[subtitle.Cue]Artifact)}
}

// GetOrRender returns the cached artifact for cue, rendering and storing it
// first if absent. The lock is held across the render call so concurrent
// queries cannot render the same cue twice. A failed render leaves the cue
// uncached and a later call may retry.
func (c *Cache) GetOrRender(cue subtitle.Cue, render func() (Artifact, error)) (Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.entries[cue]; ok {
		return a, nil
	}

	a, err := render()
	if err != nil {
		return nil, err
	}
	c.entries[cue] = a
	return a, nil
}

// Rendered reports whether cue already has a cached artifact.
func (c *Cache) Rendered(cue subtitle.Cue) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[cue]
	return ok
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
