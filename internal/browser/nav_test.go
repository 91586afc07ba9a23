package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudvault/cli/internal/api"
)

func TestNavigator(t *testing.T) {
	docs := api.Entry{ID: "d1", Name: "Docs"}
	reports := api.Entry{ID: "d2", Name: "Reports"}
	q1 := api.Entry{ID: "d3", Name: "Q1"}

	t.Run("starts at root", func(t *testing.T) {
		n := NewNavigator()
		_, ok := n.Current()
		assert.False(t, ok)
		assert.Equal(t, "", n.CurrentFolderID())
		assert.Empty(t, n.Path())
	})

	t.Run("navigate into appends and becomes current", func(t *testing.T) {
		n := NewNavigator()
		n.NavigateInto(docs)
		n.NavigateInto(reports)

		cur, ok := n.Current()
		require.True(t, ok)
		assert.Equal(t, "d2", cur.ID)
		assert.Equal(t, "d2", n.CurrentFolderID())
		require.Len(t, n.Path(), 2)
		assert.Equal(t, 2, n.Depth())
	})

	t.Run("jump truncates to index", func(t *testing.T) {
		n := NewNavigator()
		n.NavigateInto(docs)
		n.NavigateInto(reports)
		n.NavigateInto(q1)

		assert.True(t, n.JumpTo(0))
		require.Len(t, n.Path(), 1)
		assert.Equal(t, "d1", n.CurrentFolderID())
	})

	t.Run("jump to current is a no-op", func(t *testing.T) {
		n := NewNavigator()
		n.NavigateInto(docs)
		n.NavigateInto(reports)

		assert.False(t, n.JumpTo(1))
		assert.Equal(t, "d2", n.CurrentFolderID())
		assert.False(t, n.JumpTo(5))
		assert.False(t, n.JumpTo(-1))
		assert.Len(t, n.Path(), 2)
	})

	t.Run("reset returns to root", func(t *testing.T) {
		n := NewNavigator()
		n.NavigateInto(docs)
		n.Reset()
		assert.Equal(t, "", n.CurrentFolderID())
		assert.Empty(t, n.Path())
	})

	t.Run("current always equals last path element", func(t *testing.T) {
		n := NewNavigator()
		check := func() {
			path := n.Path()
			cur, ok := n.Current()
			if len(path) == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, path[len(path)-1].ID, cur.ID)
		}
		check()
		n.NavigateInto(docs)
		check()
		n.NavigateInto(reports)
		check()
		n.JumpTo(0)
		check()
		n.Reset()
		check()
	})

	t.Run("path is a copy", func(t *testing.T) {
		n := NewNavigator()
		n.NavigateInto(docs)
		p := n.Path()
		p[0].ID = "mutated"
		assert.Equal(t, "d1", n.CurrentFolderID())
	})
}
