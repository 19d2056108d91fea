// Package storetest provides a conformance suite for store.Collection
// implementations.
package storetest

import (
	"context"
	"testing"

	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Harness describes the backend under test.
type Harness struct {
	// New returns an empty games collection.
	New func(t *testing.T) store.Collection[domain.Game]
	// MissingID is well-formed for the backend but never assigned.
	MissingID string
	// InvalidID is malformed for the backend.
	InvalidID string
}

// Catan returns the canonical example game.
func Catan() *domain.Game {
	return &domain.Game{
		Title:         "Catan",
		Description:   "Trade, build, settle.",
		MinPlayers:    3,
		MaxPlayers:    4,
		PlayTime:      float64(90),
		AgeRange:      "10+",
		Difficulty:    "Medium",
		Publisher:     "Kosmos",
		YearPublished: float64(1995),
		Category:      "Strategy",
		Price:         44.99,
	}
}

// Run executes the conformance suite against h.
func Run(t *testing.T, h Harness) {
	t.Helper()
	ctx := context.Background()

	t.Run("FindAll on empty collection", func(t *testing.T) {
		c := h.New(t)
		games, err := c.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})

	t.Run("Insert then FindByID", func(t *testing.T) {
		c := h.New(t)
		id, err := c.Insert(ctx, Catan())
		require.NoError(t, err)
		require.NotEmpty(t, id)

		got, err := c.FindByID(ctx, id)
		require.NoError(t, err)
		want := Catan()
		want.ID = id
		assert.Equal(t, want, got)
	})

	t.Run("Insert ignores caller identifier", func(t *testing.T) {
		c := h.New(t)
		game := Catan()
		game.ID = h.MissingID
		id, err := c.Insert(ctx, game)
		require.NoError(t, err)
		assert.NotEqual(t, h.MissingID, id)
	})

	t.Run("FindAll returns every document", func(t *testing.T) {
		c := h.New(t)
		first, err := c.Insert(ctx, Catan())
		require.NoError(t, err)
		second := Catan()
		second.Title = "Carcassonne"
		secondID, err := c.Insert(ctx, second)
		require.NoError(t, err)

		games, err := c.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, games, 2)

		ids := []string{games[0].ID, games[1].ID}
		assert.ElementsMatch(t, []string{first, secondID}, ids)
	})

	t.Run("FindByID missing", func(t *testing.T) {
		c := h.New(t)
		_, err := c.FindByID(ctx, h.MissingID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("malformed identifiers", func(t *testing.T) {
		c := h.New(t)
		_, err := c.FindByID(ctx, h.InvalidID)
		assert.ErrorIs(t, err, store.ErrInvalidID)

		_, err = c.UpdateByID(ctx, h.InvalidID, Catan())
		assert.ErrorIs(t, err, store.ErrInvalidID)

		_, err = c.DeleteByID(ctx, h.InvalidID)
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})

	t.Run("UpdateByID merges and counts modifications", func(t *testing.T) {
		c := h.New(t)
		id, err := c.Insert(ctx, Catan())
		require.NoError(t, err)

		changed := Catan()
		changed.Price = 39.99
		res, err := c.UpdateByID(ctx, id, changed)
		require.NoError(t, err)
		assert.Equal(t, store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

		got, err := c.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 39.99, got.Price)
		assert.Equal(t, "Catan", got.Title)
		assert.Equal(t, id, got.ID)

		res, err = c.UpdateByID(ctx, id, changed)
		require.NoError(t, err)
		assert.Equal(t, store.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, res)
	})

	t.Run("UpdateByID missing", func(t *testing.T) {
		c := h.New(t)
		res, err := c.UpdateByID(ctx, h.MissingID, Catan())
		require.NoError(t, err)
		assert.Equal(t, store.UpdateResult{}, res)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		c := h.New(t)
		id, err := c.Insert(ctx, Catan())
		require.NoError(t, err)

		n, err := c.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = c.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		_, err = c.FindByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
