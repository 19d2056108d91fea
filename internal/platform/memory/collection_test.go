package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/platform/memory"
	"github.com/phrazzld/boardgame-api/internal/store"
	"github.com/phrazzld/boardgame-api/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Conformance(t *testing.T) {
	storetest.Run(t, storetest.Harness{
		New: func(t *testing.T) store.Collection[domain.Game] {
			return memory.NewCollection[domain.Game](domain.GamesCollection, nil)
		},
		MissingID: uuid.NewString(),
		InvalidID: "not-a-uuid",
	})
}

func TestCollection_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := memory.NewCollection[domain.Game](domain.GamesCollection, nil)

	titles := []string{"Azul", "Catan", "Brass"}
	for _, title := range titles {
		g := storetest.Catan()
		g.Title = title
		_, err := c.Insert(ctx, g)
		require.NoError(t, err)
	}

	games, err := c.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)
	for i, title := range titles {
		assert.Equal(t, title, games[i].Title)
	}
}

func TestCollection_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := memory.NewCollection[domain.User](domain.UsersCollection, nil)

	id, err := c.Insert(ctx, &domain.User{Username: "ana", FavoriteGameCategories: []string{"Strategy"}})
	require.NoError(t, err)

	got, err := c.FindByID(ctx, id)
	require.NoError(t, err)
	got.FavoriteGameCategories[0] = "Party"

	again, err := c.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Strategy"}, again.FavoriteGameCategories)
}

func TestCollection_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	c := memory.NewCollection[domain.Game](domain.GamesCollection, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Insert(ctx, storetest.Catan())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	games, err := c.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 20)
}
