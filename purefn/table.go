package purefn

import (
	"sync"

	"github.com/on-the-ground/callargs/args"
	"go.uber.org/zap"
)

// Store is a memo table keyed by argument bundles.
type Store[O any] interface {
	Load(key *args.Arguments) (O, bool)
	Store(key *args.Arguments, value O)
}

type entry[O any] struct {
	key   *args.Arguments
	value O
}

type generation[O any] map[uint64][]entry[O]

// Table is a bounded, concurrency-safe Store.
//
// Keys are bucketed by their hash, and equality is only checked between keys
// that land in the same bucket. The table keeps two generations: once the
// head generation holds maxSize entries the older one is dropped and
// becomes the new, empty head.
type Table[O any] struct {
	mu      sync.Mutex
	gens    [2]generation[O]
	headIdx int
	size    uint32
	maxSize uint32

	hash   func(*args.Arguments) uint64
	equal  func(a, b *args.Arguments) bool
	logger *zap.Logger
}

type tableConfig struct {
	hash   func(*args.Arguments) uint64
	equal  func(a, b *args.Arguments) bool
	logger *zap.Logger
}

// TableOption configures a Table or a RistrettoStore.
type TableOption func(*tableConfig)

// WithHasher replaces (*args.Arguments).Hash as the bucketing function.
func WithHasher(hash func(*args.Arguments) uint64) TableOption {
	return func(c *tableConfig) {
		c.hash = hash
	}
}

// WithEqualer replaces (*args.Arguments).StrictEqual for collision resolution.
func WithEqualer(equal func(a, b *args.Arguments) bool) TableOption {
	return func(c *tableConfig) {
		c.equal = equal
	}
}

// WithLogger sets the logger used for debug output about collisions and rotations.
func WithLogger(logger *zap.Logger) TableOption {
	return func(c *tableConfig) {
		c.logger = logger
	}
}

func newTableConfig(opts []TableOption) tableConfig {
	c := tableConfig{
		hash: func(a *args.Arguments) uint64 {
			return a.Hash()
		},
		equal: func(a, b *args.Arguments) bool {
			return a.StrictEqual(b)
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func NewTable[O any](maxSize uint32, opts ...TableOption) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	c := newTableConfig(opts)
	return &Table[O]{
		gens:    [2]generation[O]{{}, {}},
		maxSize: maxSize,
		hash:    c.hash,
		equal:   c.equal,
		logger:  c.logger,
	}
}

func (t *Table[O]) Load(key *args.Arguments) (O, bool) {
	h := t.hash(key)

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, gen := range []generation[O]{t.gens[t.headIdx], t.gens[1-t.headIdx]} {
		if i := t.find(gen[h], key); i >= 0 {
			return gen[h][i].value, true
		}
	}
	var zero O
	return zero, false
}

func (t *Table[O]) Store(key *args.Arguments, value O) {
	h := t.hash(key)

	t.mu.Lock()
	defer t.mu.Unlock()

	head := t.gens[t.headIdx]
	if i := t.find(head[h], key); i >= 0 {
		head[h][i].value = value
		return
	}

	if t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.gens[t.headIdx] = generation[O]{}
		t.size = 0
		head = t.gens[t.headIdx]
		t.logger.Debug("table generation rotated", zap.Uint32("max_size", t.maxSize))
	}

	tail := t.gens[1-t.headIdx]
	if i := t.find(tail[h], key); i >= 0 {
		tail[h] = append(tail[h][:i], tail[h][i+1:]...)
		if len(tail[h]) == 0 {
			delete(tail, h)
		}
	}

	if len(head[h]) > 0 {
		t.logger.Debug("hash collision",
			zap.Uint64("hash", h),
			zap.Int("bucket_size", len(head[h])),
			zap.Object("key", key),
		)
	}
	head[h] = append(head[h], entry[O]{key: key, value: value})
	t.size++
}

// Len returns the number of live entries across both generations.
func (t *Table[O]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, gen := range t.gens {
		for _, bucket := range gen {
			n += len(bucket)
		}
	}
	return n
}

func (t *Table[O]) find(bucket []entry[O], key *args.Arguments) int {
	for i, e := range bucket {
		if t.equal(e.key, key) {
			return i
		}
	}
	return -1
}
