package args_test

import (
	"math"
	"testing"
	"time"

	"github.com/on-the-ground/callargs/args"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y  float64
	label string
}

type node struct {
	Value int
	Next  *node
}

type graph struct {
	Edges []*graph
}

func selfLoopGraph(fanOut int) *graph {
	g := &graph{}
	for i := 0; i < fanOut; i++ {
		g.Edges = append(g.Edges, g)
	}
	return g
}

// hashWithin fails the test instead of hanging when Hash does not return.
func hashWithin(t *testing.T, a *args.Arguments, limit time.Duration) uint64 {
	t.Helper()
	done := make(chan uint64, 1)
	go func() { done <- a.Hash() }()
	select {
	case h := <-done:
		return h
	case <-time.After(limit):
		t.Fatalf("Hash did not return within %v", limit)
		return 0
	}
}

func TestHash_EqualBundlesHashEqually(t *testing.T) {
	p, k, b := fixture()

	pairs := [][2]*args.Arguments{
		{args.New(p, k, b), args.New(p, k, b)},
		{args.New(nil, nil, nil), args.New([]any{}, map[args.Key]any{}, nil)},
		{
			args.New([]any{point{1, 2, "a"}, &point{3, 4, "b"}}, nil, nil),
			args.New([]any{point{1, 2, "a"}, &point{3, 4, "b"}}, nil, nil),
		},
		{
			args.New([]any{map[string]int{"a": 1, "b": 2, "c": 3}}, nil, nil),
			args.New([]any{map[string]int{"c": 3, "b": 2, "a": 1}}, nil, nil),
		},
		{args.New([]any{0.0}, nil, nil), args.New([]any{math.Copysign(0, -1)}, nil, nil)},
		{
			args.New([]any{[2]any{"x", []byte("y")}}, nil, nil),
			args.New([]any{[2]any{"x", []byte("y")}}, nil, nil),
		},
		{args.Null(), args.Null()},
	}
	for i, pair := range pairs {
		assert.True(t, pair[0].Equal(pair[1]), "pair %d should be equal", i)
		assert.Equal(t, pair[0].Hash(), pair[1].Hash(), "pair %d", i)
	}
}

func TestHash_IsDeterministic(t *testing.T) {
	p, k, b := fixture()
	a := args.New(p, k, b)
	assert.Equal(t, a.Hash(), a.Hash())
}

func TestHash_DistinguishesFields(t *testing.T) {
	p, k, b := fixture()
	base := args.New(p, k, b)

	others := []*args.Arguments{
		args.New([]any{"bar"}, k, b),
		args.New(p, map[args.Key]any{"foo": "baz"}, b),
		args.New(p, k, nil),
		args.New([]any{1}, nil, nil),
		args.New([]any{int64(1)}, nil, nil),
	}
	for i, o := range others {
		assert.NotEqual(t, base.Hash(), o.Hash(), "bundle %d", i)
	}
	assert.NotEqual(t, others[3].Hash(), others[4].Hash())
}

func TestHash_CyclicValue(t *testing.T) {
	n := &node{Value: 1}
	n.Next = n
	m := &node{Value: 1}
	m.Next = m

	a := args.New([]any{n}, nil, nil)
	b := args.New([]any{m}, nil, nil)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHash_CyclicValueWithFanOut(t *testing.T) {
	a := args.New([]any{selfLoopGraph(64)}, nil, nil)
	b := args.New([]any{selfLoopGraph(64)}, nil, nil)

	assert.True(t, a.Equal(b))
	assert.Equal(t, hashWithin(t, a, 5*time.Second), hashWithin(t, b, 5*time.Second))
}

func TestHash_UnrolledCycleHashesLikeSelfLoop(t *testing.T) {
	self := &node{Value: 1}
	self.Next = self
	first := &node{Value: 1}
	second := &node{Value: 1, Next: first}
	first.Next = second

	a := args.New([]any{self}, nil, nil)
	b := args.New([]any{first}, nil, nil)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func mutuallyCyclicMaps() map[string]any {
	left := map[string]any{}
	right := map[string]any{"left": left, "n": 1}
	for i := 0; i < 32; i++ {
		left[string(rune('a'+i))] = right
	}
	return left
}

func TestHash_MutuallyCyclicMaps(t *testing.T) {
	a := args.New(nil, map[args.Key]any{"m": mutuallyCyclicMaps()}, nil)
	b := args.New(nil, map[args.Key]any{"m": mutuallyCyclicMaps()}, nil)

	assert.True(t, a.Equal(b))
	assert.Equal(t, hashWithin(t, a, 5*time.Second), hashWithin(t, b, 5*time.Second))
}

func TestHash_SelfContainingSlice(t *testing.T) {
	build := func() []any {
		s := make([]any, 8)
		for i := range s {
			s[i] = s
		}
		return s
	}
	a := args.New([]any{build()}, nil, nil)
	b := args.New([]any{build()}, nil, nil)

	assert.True(t, a.Equal(b))
	assert.Equal(t, hashWithin(t, a, 5*time.Second), hashWithin(t, b, 5*time.Second))
}

func TestHash_UsableAsMapKey(t *testing.T) {
	index := map[uint64][]*args.Arguments{}
	for _, a := range []*args.Arguments{
		args.New([]any{"foo"}, nil, nil),
		args.New([]any{"foo"}, nil, nil),
		args.New([]any{"bar"}, nil, nil),
	} {
		h := a.Hash()
		found := false
		for _, existing := range index[h] {
			if existing.StrictEqual(a) {
				found = true
			}
		}
		if !found {
			index[h] = append(index[h], a)
		}
	}
	assert.Len(t, index, 2)
}
