package site

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/olatundun-care/sitecms/internal/roster"
)

// Source records where the cached record came from.
type Source int

const (
	// SourceNone means no load has completed yet.
	SourceNone Source = iota
	// SourceStore means the cache holds the record fetched from the store.
	SourceStore
	// SourceDefaults means the last fetch failed and the cache holds the
	// hardcoded default record.
	SourceDefaults
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceStore:
		return "store"
	case SourceDefaults:
		return "defaults"
	default:
		return "none"
	}
}

// ErrNotSaved is returned when a save could not be pushed through the
// service; the cache is left unchanged.
var ErrNotSaved = errors.New("settings were not saved")

// Client owns the process-wide cached settings record. Rendering consumers
// read only from the cache; admin edits form a draft that is merged over the
// cache and flushed through the service in a single save.
//
// Overlapping saves are pushed outside the lock and committed in completion
// order, so with two in-flight saves the cache ends up reflecting whichever
// push resolved last. The wire contract carries no sequencing token; the race
// is accepted and matches the service's last-write-wins semantics.
type Client struct {
	fetcher Fetcher

	mu     sync.RWMutex
	record Record
	source Source
}

// NewClient creates a client over the given fetcher. The cache starts empty;
// call Load before serving renders.
func NewClient(fetcher Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

// Load fetches the full record and replaces the cache. Any failure (network,
// non-2xx, malformed body) silently degrades to the default record: the
// client always ends up Ready, and the cause is only logged. The returned
// Source tells a caller which of the two happened.
func (c *Client) Load(ctx context.Context) Source {
	rec, err := c.fetcher.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("settings fetch failed, falling back to defaults")

		c.record = DefaultRecord()
		c.source = SourceDefaults

		return c.source
	}

	c.record = rec.Clone()
	c.source = SourceStore

	return c.source
}

// Refresh re-runs Load unconditionally, discarding any uncommitted draft.
func (c *Client) Refresh(ctx context.Context) Source {
	return c.Load(ctx)
}

// Save merges partial over the cached record, pushes the candidate through
// the service and, on success, commits the candidate to the cache without a
// re-fetch. On failure the cache is left unchanged and the error is returned
// for the caller to surface; there is no automatic retry.
func (c *Client) Save(ctx context.Context, partial Record) error {
	c.mu.RLock()
	base := c.record
	source := c.source
	c.mu.RUnlock()

	if base == nil {
		base = DefaultRecord()
	}

	if source == SourceDefaults {
		// The store was unreachable at load time; this save will persist
		// the fallback defaults for every field the admin did not touch.
		log.Warn().Msg("saving while running on fallback defaults")
	}

	candidate := base.Merge(partial)

	if err := c.fetcher.Push(ctx, candidate); err != nil {
		log.Error().Err(err).Msg("settings save failed")
		return errors.Wrap(ErrNotSaved, err.Error())
	}

	c.mu.Lock()
	c.record = candidate
	c.source = SourceStore
	c.mu.Unlock()

	return nil
}

// Record returns a copy of the cached record. Before the first Load it
// returns the default record so renderers always have a complete field set.
func (c *Client) Record() Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.record == nil {
		return DefaultRecord()
	}

	return c.record.Clone()
}

// Get returns a single cached field value.
func (c *Client) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.record == nil {
		return DefaultRecord()[key]
	}

	return c.record[key]
}

// Source reports where the cached record came from.
func (c *Client) Source() Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.source
}

// Roster returns the cached team roster decoded into structured form. A
// malformed stored roster decodes to an empty list.
func (c *Client) Roster() []roster.Member {
	return roster.Decode(c.Get(KeyTeamMembers))
}
