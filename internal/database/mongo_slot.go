package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// slotRecord is the Mongo document holding a slot value.
type slotRecord struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoSlot keeps the slot value in one document of a collection, keyed by _id.
type MongoSlot struct {
	coll *mongo.Collection
	key  string
}

// NewMongoSlot creates a MongoSlot on the given collection.
func NewMongoSlot(coll *mongo.Collection, key string) *MongoSlot {
	return &MongoSlot{coll: coll, key: key}
}

func (s *MongoSlot) Key() string { return s.key }

func (s *MongoSlot) Read(ctx context.Context) ([]byte, error) {
	var rec slotRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %q: %w", s.key, err)
	}
	return []byte(rec.Value), nil
}

func (s *MongoSlot) Write(ctx context.Context, value []byte) error {
	rec := slotRecord{Key: s.key, Value: string(value), UpdatedAt: time.Now()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", s.key, err)
	}
	return nil
}

func (s *MongoSlot) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.key}); err != nil {
		return fmt.Errorf("clearing slot %q: %w", s.key, err)
	}
	return nil
}
