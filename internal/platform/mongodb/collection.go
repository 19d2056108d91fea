package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is a store.Collection backed by a MongoDB collection.
type Collection[T any] struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection returns a typed view of the named collection in db.
func NewCollection[T any](db *mongo.Database, name string, logger *slog.Logger) *Collection[T] {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection[T]{
		collection: db.Collection(name),
		logger: logger.With(
			slog.String("component", "mongodb_store"),
			slog.String("collection", name),
		),
	}
}

// FindAll returns every document in natural order.
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := c.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, c.wrap("find", "failed to query documents", err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, c.wrap("find", "failed to read documents", err)
	}

	out := make([]T, 0, len(raw))
	for _, doc := range raw {
		decoded, err := fromDocument[T](doc)
		if err != nil {
			return nil, c.wrap("find", "failed to decode document", err)
		}
		out = append(out, *decoded)
	}
	return out, nil
}

// FindByID returns the document with the given hex ObjectID.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	var raw bson.M
	err = c.collection.FindOne(ctx, bson.M{store.IDField: oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, c.wrap("find", "failed to query document", err)
	}

	doc, err := fromDocument[T](raw)
	if err != nil {
		return nil, c.wrap("find", "failed to decode document", err)
	}
	return doc, nil
}

// Insert stores doc and returns the generated ObjectID as hex.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	fields, err := toDocument(doc)
	if err != nil {
		return "", c.wrap("insert", "failed to encode document", err)
	}

	res, err := c.collection.InsertOne(ctx, fields)
	if err != nil {
		return "", c.wrap("insert", "failed to insert document", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", c.wrap("insert", "unexpected identifier type", fmt.Errorf("%T", res.InsertedID))
	}

	logger.FromContextOrDefault(ctx, c.logger).Debug("document inserted", slog.String("id", oid.Hex()))
	return oid.Hex(), nil
}

// UpdateByID applies the fields of doc with $set.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, doc *T) (store.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.UpdateResult{}, store.ErrInvalidID
	}

	fields, err := toDocument(doc)
	if err != nil {
		return store.UpdateResult{}, c.wrap("update", "failed to encode document", err)
	}

	res, err := c.collection.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return store.UpdateResult{}, c.wrap("update", "failed to update document", err)
	}
	return store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// DeleteByID removes the document with the given hex ObjectID.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, store.ErrInvalidID
	}

	res, err := c.collection.DeleteOne(ctx, bson.M{store.IDField: oid})
	if err != nil {
		return 0, c.wrap("delete", "failed to delete document", err)
	}
	return res.DeletedCount, nil
}

func (c *Collection[T]) wrap(operation, message string, err error) error {
	return store.NewStoreError(c.collection.Name(), operation, message, err)
}

// toDocument encodes a record without its identifier.
func toDocument[T any](doc *T) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	delete(fields, store.IDField)
	return fields, nil
}

// fromDocument decodes a stored document, exposing its ObjectID as hex.
func fromDocument[T any](raw bson.M) (*T, error) {
	if oid, ok := raw[store.IDField].(primitive.ObjectID); ok {
		raw[store.IDField] = oid.Hex()
	}
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
