package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"
)

const columns = "id, title, content, created_at, updated_at"

// SQL stores notes in the notes table. Timestamps are kept as epoch milliseconds.
type SQL struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQL(db *sql.DB, operationTimeout time.Duration) *SQL {
	return &SQL{db: db, timeout: operationTimeout}
}

func (s *SQL) List(ctx context.Context) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	rows, err := s.db.QueryContext(dbCtx, "SELECT "+columns+" FROM notes")
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list rows: %w", err)
	}

	// ids are ulids, so this is creation order
	sort.Slice(notes, func(i, j int) bool { return notes[i].Id < notes[j].Id })
	return notes, nil
}

func (s *SQL) Insert(ctx context.Context, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	stmt, err := s.db.PrepareContext(dbCtx, "INSERT INTO notes ("+columns+") VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()
	_, err = stmt.ExecContext(dbCtx, n.Id, n.Title, n.Content, n.CreatedAt.UnixMilli(), n.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}

func (s *SQL) Find(ctx context.Context, id string) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	return s.find(dbCtx, id)
}

func (s *SQL) Update(ctx context.Context, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.find(dbCtx, n.Id); err != nil {
		return err
	}

	stmt, err := s.db.PrepareContext(dbCtx, "UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()
	if _, err := stmt.ExecContext(dbCtx, n.Title, n.Content, n.UpdatedAt.UnixMilli(), n.Id); err != nil {
		return fmt.Errorf("failed to exec update stmt: %w", err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.find(dbCtx, id); err != nil {
		return err
	}

	stmt, err := s.db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()
	if _, err := stmt.ExecContext(dbCtx, id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}

func (s *SQL) find(ctx context.Context, id string) (Note, error) {
	stmt, err := s.db.PrepareContext(ctx, "SELECT "+columns+" FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	n, err := scan(stmt.QueryRowContext(ctx, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, err
	default:
		return n, nil
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Note, error) {
	var n Note
	var createdAt, updatedAt int64
	if err := row.Scan(&n.Id, &n.Title, &n.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, err
		}
		return Note{}, fmt.Errorf("error parsing db data: %w", err)
	}
	n.CreatedAt = time.UnixMilli(createdAt).UTC()
	n.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return n, nil
}
