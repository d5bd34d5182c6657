package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	got[0] = 'x'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte("v"), again)

	now = now.Add(time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "forever", []byte("1"), 0))
	now = now.Add(24 * time.Hour)
	_, err = m.Get(ctx, "forever")
	assert.NoError(t, err)

	require.NoError(t, m.Delete(ctx, "forever"))
	_, err = m.Get(ctx, "forever")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	type payload struct {
		Users []string `json:"users"`
	}
	require.NoError(t, SetJSON(ctx, m, "p", payload{Users: []string{"a", "b"}}, time.Minute))

	var out payload
	require.NoError(t, GetJSON(ctx, m, "p", &out))
	assert.Equal(t, []string{"a", "b"}, out.Users)

	assert.ErrorIs(t, GetJSON(ctx, m, "missing", &out), ErrMiss)
}

func TestKey(t *testing.T) {
	k := Key("GET", "https://host/hashtag/fitness")
	assert.True(t, strings.HasPrefix(k, keyPrefix))
	assert.LessOrEqual(t, len(k), 250)
	assert.NotContains(t, k, " ")
	assert.Equal(t, k, Key("GET", "https://host/hashtag/fitness"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, c)

	c, err = Open(ctx, Options{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)

	_, err = Open(ctx, Options{Backend: "disk"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, c.Close())
}
