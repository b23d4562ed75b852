package purefn

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/on-the-ground/callargs/args"
	"go.uber.org/zap"
)

// RistrettoStore is a Store backed by a ristretto cache.
//
// The cache is keyed by the bundle hash alone. A hit is only returned when the
// stored bundle is equal to the requested one, so a hash collision reads as a
// miss and the later Store replaces the earlier entry.
type RistrettoStore[O any] struct {
	cache  *ristretto.Cache[uint64, entry[O]]
	hash   func(*args.Arguments) uint64
	equal  func(a, b *args.Arguments) bool
	logger *zap.Logger
}

// NewRistrettoStore creates a cache holding up to maxEntries bundles.
func NewRistrettoStore[O any](maxEntries int64, opts ...TableOption) (*RistrettoStore[O], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries should be greater than 0, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, entry[O]]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	c := newTableConfig(opts)
	return &RistrettoStore[O]{
		cache:  cache,
		hash:   c.hash,
		equal:  c.equal,
		logger: c.logger,
	}, nil
}

func (r *RistrettoStore[O]) Load(key *args.Arguments) (O, bool) {
	h := r.hash(key)
	e, ok := r.cache.Get(h)
	if !ok {
		var zero O
		return zero, false
	}
	if !r.equal(e.key, key) {
		r.logger.Debug("hash collision", zap.Uint64("hash", h), zap.Object("key", key))
		var zero O
		return zero, false
	}
	return e.value, true
}

// Store writes through to the cache and waits for the write to be applied,
// so a Load right after Store observes it unless ristretto rejected the item.
func (r *RistrettoStore[O]) Store(key *args.Arguments, value O) {
	h := r.hash(key)
	if !r.cache.Set(h, entry[O]{key: key, value: value}, 1) {
		r.logger.Debug("cache set dropped", zap.Uint64("hash", h))
		return
	}
	r.cache.Wait()
}

func (r *RistrettoStore[O]) Close() {
	r.cache.Close()
}
