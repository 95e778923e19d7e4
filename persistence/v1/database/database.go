// Package database opens the connection behind the configured url and hands out the note store for it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes/persistence/v1/note"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

type Kind string

const (
	Mongo  Kind = "mongodb"
	MySQL  Kind = "mysql"
	Memory Kind = "memory"
)

// KindOf tells which backend a connection url points to. Anything that is not a mongodb or memory url is handed to
// the mysql driver as a dsn.
func KindOf(url string) Kind {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return Mongo
	case strings.HasPrefix(url, "memory://"):
		return Memory
	default:
		return MySQL
	}
}

// Conn is the process wide database connection
type Conn struct {
	Kind  Kind
	SQL   *sql.DB
	Mongo *mongo.Database

	memory *note.Memory
}

// Open connects to the database behind url and pings it. name is the mongo database name.
func Open(ctx context.Context, url, name string, pingTimeout time.Duration) (*Conn, error) {
	switch KindOf(url) {
	case Mongo:
		client, err := mongo.NewClient(options.Client().ApplyURI(url))
		if err != nil {
			return nil, fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(ctx, pingTimeout)
		defer dbCancel()
		if err := client.Connect(dbCtx); err != nil {
			return nil, fmt.Errorf("error to connect to database: %w", err)
		}
		if err := client.Ping(dbCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("could not connect to database: %w", err)
		}
		return FromMongo(client.Database(name)), nil
	case Memory:
		return &Conn{Kind: Memory, memory: note.NewMemory()}, nil
	default:
		db, err := sql.Open("mysql", url)
		if err != nil {
			return nil, fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(ctx, pingTimeout)
		defer dbCancel()
		if err := db.PingContext(dbCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("could not connect to database: %w", err)
		}
		return FromSQL(db), nil
	}
}

// FromSQL wraps an already open sql database
func FromSQL(db *sql.DB) *Conn {
	return &Conn{Kind: MySQL, SQL: db}
}

// FromMongo wraps an already connected mongo database
func FromMongo(db *mongo.Database) *Conn {
	return &Conn{Kind: Mongo, Mongo: db}
}

// Notes returns the note store backed by this connection
func (c *Conn) Notes(operationTimeout time.Duration) note.Store {
	switch c.Kind {
	case Mongo:
		return note.NewMongo(c.Mongo, operationTimeout)
	case Memory:
		return c.memory
	default:
		return note.NewSQL(c.SQL, operationTimeout)
	}
}

// Ping checks the database is still reachable
func (c *Conn) Ping(ctx context.Context) error {
	switch c.Kind {
	case Mongo:
		return c.Mongo.Client().Ping(ctx, readpref.Primary())
	case Memory:
		return nil
	default:
		return c.SQL.PingContext(ctx)
	}
}

// Close releases the connection
func (c *Conn) Close(ctx context.Context) error {
	switch c.Kind {
	case Mongo:
		return c.Mongo.Client().Disconnect(ctx)
	case Memory:
		return nil
	default:
		return c.SQL.Close()
	}
}
