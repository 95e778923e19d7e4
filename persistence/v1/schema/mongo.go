package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notes/persistence/v1/note"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// noteValidator rejects documents missing a field or holding an empty title or content
var noteValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"_id", "title", "content", "createdAt", "updatedAt"},
		"properties": bson.M{
			"_id":       bson.M{"bsonType": "string"},
			"title":     bson.M{"bsonType": "string", "minLength": 1},
			"content":   bson.M{"bsonType": "string", "minLength": 1},
			"createdAt": bson.M{"bsonType": "date"},
			"updatedAt": bson.M{"bsonType": "date"},
		},
	},
}

// CreateMongo creates the notes collection with a validator enforcing the note invariants
func CreateMongo(ctx context.Context, db *mongo.Database) error {
	opts := options.CreateCollection().SetValidator(noteValidator)
	if err := db.CreateCollection(ctx, note.Collection, opts); err != nil {
		return fmt.Errorf("create collection %s: %w", note.Collection, err)
	}
	return nil
}

// DropMongo drops the notes collection and every document in it
func DropMongo(ctx context.Context, db *mongo.Database) error {
	if err := db.Collection(note.Collection).Drop(ctx); err != nil {
		return fmt.Errorf("drop collection %s: %w", note.Collection, err)
	}
	return nil
}
