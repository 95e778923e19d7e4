package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	stored := note.Note{Id: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Title: "t", Content: "c"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/notes":
			_ = json.NewEncoder(w).Encode([]note.Note{stored})
		case r.Method == http.MethodPost && r.URL.Path == "/api/notes":
			var in note.NewNote
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Title == "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"message":"Title and content are required"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(note.Note{Id: "new", Title: in.Title, Content: in.Content})
		case r.URL.Path == "/api/notes/"+stored.Id && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(stored)
		case r.URL.Path == "/api/notes/"+stored.Id && r.Method == http.MethodPut:
			var in note.UpdateNote
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(note.Note{Id: stored.Id, Title: in.Title, Content: in.Content})
		case r.URL.Path == "/api/notes/"+stored.Id && r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"message":"Note deleted"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Note not found"}`))
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL+"/", time.Second)

	notes, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []note.Note{stored}, notes)

	got, err := c.Get(ctx, stored.Id)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	created, err := c.Create(ctx, note.NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, "new", created.Id)

	_, err = c.Create(ctx, note.NewNote{})
	assert.Equal(t, "Title and content are required", Message(err, "fallback"))

	updated, err := c.Update(ctx, stored.Id, note.UpdateNote{Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, "x", updated.Title)

	require.NoError(t, c.Delete(ctx, stored.Id))

	_, err = c.Get(ctx, "missing")
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "api answered 404: Note not found")
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := New(srv.URL, time.Second).List(context.Background())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "fallback", Message(err, "fallback"))
}

func TestClientForwardsClientIP(t *testing.T) {
	forwarded := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded <- r.Header.Get("X-Forwarded-For")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	c := New(srv.URL, time.Second)

	_, err := c.List(WithClientIP(context.Background(), "203.0.113.7"))
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", <-forwarded)

	_, err = c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, <-forwarded)
}
