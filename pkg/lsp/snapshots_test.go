package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/semhl/pkg/highlight"
	"github.com/walteh/semhl/pkg/position"
)

func snapTok(line, start, end int, k highlight.Kind) highlight.Token {
	return highlight.Token{
		Kind: k,
		R:    position.NewRange(line, start, line, end),
	}
}

func TestSnapshotStore(t *testing.T) {
	t.Run("test_first_update_has_no_previous", func(t *testing.T) {
		store := NewSnapshotStore()

		prev, ok := store.Update("file:///a.cpp", 1, []highlight.Token{snapTok(0, 0, 3, highlight.Function)})
		require.True(t, ok)
		assert.Nil(t, prev)
	})

	t.Run("test_second_update_returns_previous_tokens", func(t *testing.T) {
		store := NewSnapshotStore()

		first := []highlight.Token{snapTok(0, 0, 3, highlight.Function)}
		second := []highlight.Token{snapTok(1, 0, 3, highlight.Variable)}

		_, ok := store.Update("file:///a.cpp", 1, first)
		require.True(t, ok)

		prev, ok := store.Update("file:///a.cpp", 2, second)
		require.True(t, ok)
		assert.Equal(t, first, prev)
	})

	t.Run("test_stale_version_is_rejected", func(t *testing.T) {
		store := NewSnapshotStore()

		committed := []highlight.Token{snapTok(0, 0, 3, highlight.Function)}
		_, ok := store.Update("file:///a.cpp", 5, committed)
		require.True(t, ok)

		prev, ok := store.Update("file:///a.cpp", 4, []highlight.Token{snapTok(9, 0, 1, highlight.Macro)})
		require.False(t, ok)
		assert.Nil(t, prev)

		// The committed snapshot survives the stale attempt.
		prev, ok = store.Update("file:///a.cpp", 6, nil)
		require.True(t, ok)
		assert.Equal(t, committed, prev)
	})

	t.Run("test_equal_version_replaces_snapshot", func(t *testing.T) {
		store := NewSnapshotStore()

		first := []highlight.Token{snapTok(0, 0, 3, highlight.Function)}
		_, ok := store.Update("file:///a.cpp", 1, first)
		require.True(t, ok)

		prev, ok := store.Update("file:///a.cpp", 1, nil)
		require.True(t, ok)
		assert.Equal(t, first, prev)
	})

	t.Run("test_drop_forgets_snapshot", func(t *testing.T) {
		store := NewSnapshotStore()

		_, ok := store.Update("file:///a.cpp", 1, []highlight.Token{snapTok(0, 0, 3, highlight.Function)})
		require.True(t, ok)

		store.Drop("file:///a.cpp")

		prev, ok := store.Update("file:///a.cpp", 2, nil)
		require.True(t, ok)
		assert.Nil(t, prev)
	})

	t.Run("test_uri_and_plain_path_share_a_key", func(t *testing.T) {
		store := NewSnapshotStore()

		first := []highlight.Token{snapTok(0, 0, 3, highlight.Function)}
		_, ok := store.Update("file:///a.cpp", 1, first)
		require.True(t, ok)

		prev, ok := store.Update("/a.cpp", 2, nil)
		require.True(t, ok)
		assert.Equal(t, first, prev)
	})

	t.Run("test_documents_are_independent", func(t *testing.T) {
		store := NewSnapshotStore()

		_, ok := store.Update("file:///a.cpp", 1, []highlight.Token{snapTok(0, 0, 3, highlight.Function)})
		require.True(t, ok)

		prev, ok := store.Update("file:///b.cpp", 1, nil)
		require.True(t, ok)
		assert.Nil(t, prev)
	})
}
