package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (db *DB) CreateNote(ctx context.Context, n *Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := db.connection.ExecContext(ctx,
		`INSERT INTO notes (id, candidate_id, author_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.CandidateID, n.AuthorID, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// ListNotes returns a candidate's notes with their authors, newest first.
func (db *DB) ListNotes(ctx context.Context, candidateID string) ([]*Note, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT n.id, n.candidate_id, n.author_id, n.content, n.created_at, n.updated_at, u.name
		 FROM notes n JOIN users u ON u.id = n.author_id
		 WHERE n.candidate_id = $1
		 ORDER BY n.created_at DESC`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var res []*Note
	for rows.Next() {
		n := &Note{}
		var authorName string
		if err := rows.Scan(&n.ID, &n.CandidateID, &n.AuthorID, &n.Content,
			&n.CreatedAt, &n.UpdatedAt, &authorName); err != nil {
			return nil, err
		}
		n.Author = &User{ID: n.AuthorID, Name: authorName}
		res = append(res, n)
	}
	return res, rows.Err()
}
