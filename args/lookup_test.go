package args_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/callargs/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_IntegerKey(t *testing.T) {
	a := args.New([]any{"foo", "bar"}, nil, nil)

	v, err := a.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "foo", v)

	v, err = a.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, "bar", v)

	v, err = a.Get(int64(1))
	require.NoError(t, err)
	assert.Equal(t, "bar", v)

	v, err = a.Get(uint8(0))
	require.NoError(t, err)
	assert.Equal(t, "foo", v)
}

func TestGet_IndexOutOfRange(t *testing.T) {
	a := args.New([]any{"foo"}, nil, nil)

	for _, key := range []any{1, -2, uint64(1 << 63), int64(-1 << 62)} {
		v, err := a.Get(key)
		assert.NoError(t, err, "key %v", key)
		assert.Nil(t, v, "key %v", key)
	}
}

func TestGet_Key(t *testing.T) {
	a := args.New(nil, map[args.Key]any{"foo": "bar"}, nil)

	v, err := a.Get(args.Key("foo"))
	require.NoError(t, err)
	assert.Equal(t, "bar", v)

	v, err = a.Get(args.Key("missing"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGet_InvalidKeyType(t *testing.T) {
	a := args.New([]any{"foo"}, map[args.Key]any{"abc": 1}, nil)

	for _, key := range []any{"abc", 1.5, []int{1}, nil} {
		_, err := a.Get(key)
		require.Error(t, err)
		assert.ErrorIs(t, err, args.ErrInvalidKeyType)
		assert.ErrorIs(t, err, args.ErrArguments)

		var keyErr *args.InvalidKeyTypeError
		require.True(t, errors.As(err, &keyErr))
		assert.Equal(t, key, keyErr.Key)
	}
}

func TestInvalidKeyTypeError_Message(t *testing.T) {
	err := args.NewInvalidKeyTypeError("abc")
	assert.Equal(t,
		`Get accepts only integer and args.Key keys: key "abc" has type string`,
		err.Error(),
	)
	assert.Contains(t, args.NewInvalidKeyTypeError(1.5).Error(), "float64")
}

func TestArgAndKwarg(t *testing.T) {
	a := args.New([]any{nil}, map[args.Key]any{"nil": nil}, nil)

	v, ok := a.Arg(0)
	assert.True(t, ok)
	assert.Nil(t, v)
	_, ok = a.Arg(1)
	assert.False(t, ok)

	v, ok = a.Kwarg("nil")
	assert.True(t, ok)
	assert.Nil(t, v)
	_, ok = a.Kwarg("missing")
	assert.False(t, ok)
}

func TestTypedGetters(t *testing.T) {
	a := args.New([]any{42, "s"}, map[args.Key]any{"limit": 10}, nil)

	n, err := args.GetAs[int](a, 0)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = args.GetAs[string](a, 0)
	assert.Error(t, err)

	_, err = args.GetAs[int](a, "limit")
	assert.ErrorIs(t, err, args.ErrInvalidKeyType)

	assert.Equal(t, 10, args.MustGetAs[int](a, args.Key("limit")))
	assert.Panics(t, func() { args.MustGetAs[int](a, 1) })

	s, ok := args.ArgAs[string](a, 1)
	assert.True(t, ok)
	assert.Equal(t, "s", s)
	_, ok = args.ArgAs[string](a, 0)
	assert.False(t, ok)

	limit, ok := args.KwargAs[int](a, "limit")
	assert.True(t, ok)
	assert.Equal(t, 10, limit)
	_, ok = args.KwargAs[int](a, "missing")
	assert.False(t, ok)
}
