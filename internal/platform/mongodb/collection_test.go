package mongodb

import (
	"context"
	"testing"

	"github.com/phrazzld/boardgame-api/internal/domain"
	"github.com/phrazzld/boardgame-api/internal/store"
	"github.com/phrazzld/boardgame-api/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func gameDocument(id primitive.ObjectID, title string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "description", Value: "Trade, build, settle."},
		{Key: "minPlayers", Value: int32(3)},
		{Key: "maxPlayers", Value: int32(4)},
		{Key: "playTime", Value: int32(90)},
		{Key: "ageRange", Value: "10+"},
		{Key: "difficulty", Value: "Medium"},
		{Key: "publisher", Value: "Kosmos"},
		{Key: "yearPublished", Value: int32(1995)},
		{Key: "category", Value: "Strategy"},
		{Key: "price", Value: 44.99},
	}
}

func newGames(mt *mtest.T) *Collection[domain.Game] {
	return NewCollection[domain.Game](mt.DB, domain.GamesCollection, nil)
}

func TestCollection_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns decoded documents with hex ids", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		ns := mt.DB.Name() + "." + domain.GamesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			gameDocument(first, "Catan"),
			gameDocument(second, "Azul"),
		))

		games, err := newGames(mt).FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, games, 2)

		assert.Equal(t, first.Hex(), games[0].ID)
		assert.Equal(t, "Catan", games[0].Title)
		assert.Equal(t, 3, games[0].MinPlayers)
		assert.Equal(t, 44.99, games[0].Price)
		assert.Equal(t, second.Hex(), games[1].ID)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + domain.GamesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		games, err := newGames(mt).FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})

	mt.Run("command error is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "unauthorized",
		}))

		_, err := newGames(mt).FindAll(context.Background())
		require.Error(t, err)
		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "find", storeErr.Operation)
	})
}

func TestCollection_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + domain.GamesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, gameDocument(id, "Catan")))

		game, err := newGames(mt).FindByID(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), game.ID)
		assert.EqualValues(t, 1995, game.YearPublished)
		assert.Equal(t, "10+", game.AgeRange)
	})

	mt.Run("not found", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + domain.GamesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := newGames(mt).FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := newGames(mt).FindByID(context.Background(), "123")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}

func TestCollection_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		game := storetest.Catan()
		game.ID = "client-supplied"
		id, err := newGames(mt).Insert(context.Background(), game)
		require.NoError(t, err)
		assert.True(t, primitive.IsValidObjectID(id))
	})

	mt.Run("write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := newGames(mt).Insert(context.Background(), storetest.Catan())
		require.Error(t, err)
		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "insert", storeErr.Operation)
	})
}

func TestCollection_UpdateByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports matched and modified counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := newGames(mt).UpdateByID(context.Background(), primitive.NewObjectID().Hex(), storetest.Catan())
		require.NoError(t, err)
		assert.Equal(t, store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)
	})

	mt.Run("unchanged document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := newGames(mt).UpdateByID(context.Background(), primitive.NewObjectID().Hex(), storetest.Catan())
		require.NoError(t, err)
		assert.Equal(t, store.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, res)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := newGames(mt).UpdateByID(context.Background(), "zzz", storetest.Catan())
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}

func TestCollection_DeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		n, err := newGames(mt).DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	mt.Run("nothing to delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		n, err := newGames(mt).DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := newGames(mt).DeleteByID(context.Background(), "")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}

func TestDocumentConversion(t *testing.T) {
	user := &domain.User{ID: "ignored", Username: "ana", FavoriteGameCategories: []string{"Strategy"}}

	fields, err := toDocument(user)
	require.NoError(t, err)
	assert.NotContains(t, fields, store.IDField)
	assert.NotContains(t, fields, "dateJoined")

	id := primitive.NewObjectID()
	fields[store.IDField] = id
	decoded, err := fromDocument[domain.User](fields)
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), decoded.ID)
	assert.Equal(t, []string{"Strategy"}, decoded.FavoriteGameCategories)
}
