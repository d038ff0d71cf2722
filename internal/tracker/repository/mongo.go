package repository

import (
	"context"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements Repo backed by a MongoDB collection. alloc produces
// a fresh record for cursor decoding.
type MongoRepo[T tracker.Record] struct {
	col   *mongo.Collection
	alloc func() T
}

func NewMongoRepo[T tracker.Record](col *mongo.Collection, alloc func() T) *MongoRepo[T] {
	return &MongoRepo[T]{col: col, alloc: alloc}
}

func (m *MongoRepo[T]) Create(ctx context.Context, rec T) error {
	if rec.RecordID() == "" {
		rec.SetRecordID(uuid.NewString())
	}
	_, err := m.col.InsertOne(ctx, rec)
	return err
}

func (m *MongoRepo[T]) ListOwned(ctx context.Context, owner string) ([]T, error) {
	cur, err := m.col.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := make([]T, 0)
	for cur.Next(ctx) {
		rec := m.alloc()
		if err := cur.Decode(rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}

func (m *MongoRepo[T]) GetOwned(ctx context.Context, owner, id string) (T, error) {
	var zero T
	rec := m.alloc()
	err := m.col.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}

// UpdateOwned replaces the record in a single call filtered on (id, owner)
// so a foreign record can never be touched, not even transiently.
func (m *MongoRepo[T]) UpdateOwned(ctx context.Context, owner, id string, rec T) error {
	rec.SetRecordID(id)
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": id, "owner": owner}, rec)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
