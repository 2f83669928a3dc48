package storage_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcucsya/portal/pkg/storage"
)

type contact struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// storeContract runs the behaviour every backend must share.
func storeContract(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("set and get copy", func(t *testing.T) {
		in := contact{Name: "Jane", Tags: []string{"youth"}}
		require.NoError(t, s.Set(ctx, "contact", in))

		in.Tags[0] = "mutated"

		var out contact
		found, err := s.Get(ctx, "contact", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, contact{Name: "Jane", Tags: []string{"youth"}}, out)

		out.Name = "changed"
		var again contact
		_, err = s.Get(ctx, "contact", &again)
		require.NoError(t, err)
		assert.Equal(t, "Jane", again.Name)
	})

	t.Run("missing key", func(t *testing.T) {
		var out contact
		found, err := s.Get(ctx, "missing", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "gone", 1))
		require.NoError(t, s.Remove(ctx, "gone"))
		var n int
		found, err := s.Get(ctx, "gone", &n)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("update appends", func(t *testing.T) {
		var list []contact
		for _, name := range []string{"a", "b"} {
			err := s.Update(ctx, "list", &list, func(bool) error {
				list = append(list, contact{Name: name})
				return nil
			})
			require.NoError(t, err)
		}

		var out []contact
		_, err := s.Get(ctx, "list", &out)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("update aborts on error", func(t *testing.T) {
		var n int
		boom := errors.New("boom")
		err := s.Update(ctx, "counter", &n, func(found bool) error {
			assert.False(t, found)
			n = 5
			return boom
		})
		require.ErrorIs(t, err, boom)

		found, err := s.Get(ctx, "counter", &n)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "k1", "v"))
		require.NoError(t, s.Clear(ctx))
		var v string
		found, err := s.Get(ctx, "k1", &v)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("invalid input", func(t *testing.T) {
		assert.ErrorIs(t, s.Set(ctx, "", 1), storage.ErrEmptyKey)
		var n int
		_, err := s.Get(ctx, "k", n)
		assert.ErrorIs(t, err, storage.ErrInvalidValue)
		assert.ErrorIs(t, s.Set(ctx, "bad", make(chan int)), storage.ErrEncode)
	})

	assert.True(t, s.Available(ctx))
}

func TestMemory(t *testing.T) {
	t.Parallel()
	storeContract(t, storage.NewMemory())
}

func TestMemory_ConcurrentUpdate(t *testing.T) {
	t.Parallel()
	s := storage.NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var n int
			assert.NoError(t, s.Update(ctx, "counter", &n, func(bool) error {
				n++
				return nil
			}))
		}()
	}
	wg.Wait()

	var n int
	_, err := s.Get(ctx, "counter", &n)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	assert.Equal(t, []string{"counter"}, s.Keys())
}
