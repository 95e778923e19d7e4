package note_test

import (
	"context"
	"testing"
	"time"

	"github.com/ribgsilva/notes/persistence/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func noteDoc(id, title, content string, at time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "content", Value: content},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(at)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(at)},
	}
}

func TestMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	ns := "notes.notes"

	mt.Run("list", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			noteDoc("01A", "Groceries", "Milk, eggs", at),
			noteDoc("01B", "Chores", "Laundry", at),
		))

		notes, err := store.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, notes, 2)
		assert.Equal(mt, "01A", notes[0].Id)
		assert.Equal(mt, "Chores", notes[1].Title)
		assert.True(mt, at.Equal(notes[1].CreatedAt))
	})

	mt.Run("list empty", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		notes, err := store.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, notes)
		assert.Empty(mt, notes)
	})

	mt.Run("insert", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.Insert(ctx, note.Note{Id: "01A", Title: "Groceries", Content: "Milk", CreatedAt: at, UpdatedAt: at})
		require.NoError(mt, err)
	})

	mt.Run("insert duplicate", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := store.Insert(ctx, note.Note{Id: "01A", Title: "Groceries", Content: "Milk", CreatedAt: at, UpdatedAt: at})
		assert.Error(mt, err)
	})

	mt.Run("find", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, noteDoc("01A", "Groceries", "Milk, eggs", at)))

		n, err := store.Find(ctx, "01A")
		require.NoError(mt, err)
		assert.Equal(mt, "Groceries", n.Title)
		assert.Equal(mt, "Milk, eggs", n.Content)
		assert.Equal(mt, time.UTC, n.CreatedAt.Location())
	})

	mt.Run("find missing", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := store.Find(ctx, "01Z")
		assert.ErrorIs(mt, err, note.ErrNotFound)
	})

	mt.Run("find failure", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not allowed"}))

		_, err := store.Find(ctx, "01A")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, note.ErrNotFound)
	})

	mt.Run("update", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, store.Update(ctx, note.Note{Id: "01A", Title: "Groceries v2", Content: "Milk", UpdatedAt: at}))
	})

	mt.Run("update missing", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		assert.ErrorIs(mt, store.Update(ctx, note.Note{Id: "01Z", Title: "x", Content: "y", UpdatedAt: at}), note.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, store.Delete(ctx, "01A"))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		store := note.NewMongo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, store.Delete(ctx, "01Z"), note.ErrNotFound)
	})
}
