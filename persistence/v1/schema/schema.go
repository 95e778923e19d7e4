// Package schema creates and drops the storage structures used by the note stores.
package schema

const schema = `CREATE TABLE notes (id VARCHAR(26) PRIMARY KEY, title TEXT NOT NULL, content TEXT NOT NULL, created_at BIGINT NOT NULL, updated_at BIGINT NOT NULL)`

const dropSchema = `DROP TABLE notes`
