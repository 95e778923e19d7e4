package note

import (
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
)

// Collection is where the mongo store keeps its documents
const Collection = "notes"

// Mongo stores each note as a document of the notes collection
type Mongo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongo(db *mongo.Database, operationTimeout time.Duration) *Mongo {
	return &Mongo{coll: db.Collection(Collection), timeout: operationTimeout}
}

func (m *Mongo) List(ctx context.Context) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, m.timeout)
	defer dbCancel()

	cur, err := m.coll.Find(dbCtx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find notes: %w", err)
	}
	notes := make([]Note, 0)
	if err := cur.All(dbCtx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

func (m *Mongo) Insert(ctx context.Context, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, m.timeout)
	defer dbCancel()

	if _, err := m.coll.InsertOne(dbCtx, n); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (m *Mongo) Find(ctx context.Context, id string) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, m.timeout)
	defer dbCancel()

	var n Note
	err := m.coll.FindOne(dbCtx, bson.D{{Key: "_id", Value: id}}).Decode(&n)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to find note %s: %w", id, err)
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return n, nil
}

func (m *Mongo) Update(ctx context.Context, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, m.timeout)
	defer dbCancel()

	res, err := m.coll.UpdateOne(dbCtx, bson.D{{Key: "_id", Value: n.Id}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: n.Title},
		{Key: "content", Value: n.Content},
		{Key: "updatedAt", Value: n.UpdatedAt},
	}}})
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", n.Id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, id string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, m.timeout)
	defer dbCancel()

	res, err := m.coll.DeleteOne(dbCtx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
