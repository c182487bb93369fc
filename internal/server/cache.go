package server

import (
	"github.com/bokysan/base2n/internal/util/enc"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// tableCache keeps the most recently used encoders, keyed by the selection that built them.
// The underlying LRU is safe for concurrent use; the built tables are immutable.
type tableCache struct {
	cache   *lru.Cache[string, *enc.Base2nEncoder]
	metrics *Metrics
}

func newTableCache(size int, metrics *Metrics) (*tableCache, error) {
	cache, err := lru.New[string, *enc.Base2nEncoder](size)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create table cache of size %v", size)
	}
	return &tableCache{
		cache:   cache,
		metrics: metrics,
	}, nil
}

// Get returns the encoder for the selection, building it on a cache miss. Two concurrent misses for
// the same key may both build the table; the later one wins.
func (c *tableCache) Get(s enc.Selection) (*enc.Base2nEncoder, error) {
	key := s.Key()
	if e, ok := c.cache.Get(key); ok {
		c.metrics.RecordCache(true)
		return e, nil
	}
	c.metrics.RecordCache(false)

	e, err := s.Build()
	if err != nil {
		return nil, err
	}
	if evicted := c.cache.Add(key, e); evicted {
		log.Debugf("Table cache full, evicted the oldest table")
	}
	log.Tracef("Cached table %v", key)
	return e, nil
}

func (c *tableCache) Len() int {
	return c.cache.Len()
}
