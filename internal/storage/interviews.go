package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const interviewColumns = `i.id, i.candidate_id, i.scheduled_by_id, i.scheduled_at, i.type,
	i.round, i.duration, i.location, i.notes, i.feedback, i.rating, i.result, i.created_at, i.updated_at`

func scanInterview(row rowScanner) (*Interview, error) {
	iv := &Interview{}
	var location, notes, feedback sql.NullString
	var rating sql.NullInt64
	var candName, candEmail, candPosition sql.NullString
	var byName sql.NullString

	err := row.Scan(
		&iv.ID, &iv.CandidateID, &iv.ScheduledByID, &iv.ScheduledAt, &iv.Type,
		&iv.Round, &iv.Duration, &location, &notes, &feedback, &rating, &iv.Result,
		&iv.CreatedAt, &iv.UpdatedAt,
		&candName, &candEmail, &candPosition, &byName,
	)
	if err != nil {
		return nil, err
	}

	iv.Location = fromNull(location)
	iv.Notes = fromNull(notes)
	iv.Feedback = fromNull(feedback)
	iv.Rating = fromNullInt(rating)
	iv.Candidate = &Candidate{
		ID:       iv.CandidateID,
		Name:     fromNull(candName),
		Email:    fromNull(candEmail),
		Position: fromNull(candPosition),
	}
	iv.ScheduledBy = &User{ID: iv.ScheduledByID, Name: fromNull(byName)}
	return iv, nil
}

func (db *DB) CreateInterview(ctx context.Context, iv *Interview) error {
	if iv.ID == "" {
		iv.ID = uuid.NewString()
	}
	if iv.Type == "" {
		iv.Type = InterviewOnlineTest
	}
	if iv.Round == 0 {
		iv.Round = 1
	}
	if iv.Duration == 0 {
		iv.Duration = 60
	}
	if iv.Result == "" {
		iv.Result = ResultPending
	}
	now := time.Now().UTC()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	var rating interface{}
	if iv.Rating != nil {
		rating = *iv.Rating
	}

	_, err := db.connection.ExecContext(ctx,
		`INSERT INTO interviews
		 (id, candidate_id, scheduled_by_id, scheduled_at, type, round, duration, location, notes, feedback, rating, result, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		iv.ID, iv.CandidateID, iv.ScheduledByID, iv.ScheduledAt, iv.Type, iv.Round, iv.Duration,
		nullable(iv.Location), nullable(iv.Notes), nullable(iv.Feedback), rating, iv.Result,
		iv.CreatedAt, iv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (db *DB) GetInterview(ctx context.Context, id string) (*Interview, error) {
	query := `SELECT ` + interviewColumns + `, c.name, c.email, c.position, u.name
		FROM interviews i
		JOIN candidates c ON c.id = i.candidate_id
		JOIN users u ON u.id = i.scheduled_by_id
		WHERE i.id = $1`
	iv, err := scanInterview(db.connection.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	return iv, nil
}

// ListInterviews returns interviews soonest first, optionally narrowed by
// scheduler and candidate.
func (db *DB) ListInterviews(ctx context.Context, filter InterviewFilter) ([]*Interview, error) {
	query := `SELECT ` + interviewColumns + `, c.name, c.email, c.position, u.name
		FROM interviews i
		JOIN candidates c ON c.id = i.candidate_id
		JOIN users u ON u.id = i.scheduled_by_id`

	var where []string
	var args []interface{}
	i := 1

	if filter.ScheduledByID != "" {
		where = append(where, fmt.Sprintf("i.scheduled_by_id = $%d", i))
		args = append(args, filter.ScheduledByID)
		i++
	}
	if filter.CandidateID != "" {
		where = append(where, fmt.Sprintf("i.candidate_id = $%d", i))
		args = append(args, filter.CandidateID)
		i++
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY i.scheduled_at ASC"

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	var res []*Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, iv)
	}
	return res, rows.Err()
}

func (db *DB) UpdateInterview(ctx context.Context, iv *Interview) error {
	iv.UpdatedAt = time.Now().UTC()

	var rating interface{}
	if iv.Rating != nil {
		rating = *iv.Rating
	}

	res, err := db.connection.ExecContext(ctx,
		`UPDATE interviews SET
		 scheduled_at = $1, type = $2, round = $3, duration = $4, location = $5,
		 notes = $6, feedback = $7, rating = $8, result = $9, updated_at = $10
		 WHERE id = $11`,
		iv.ScheduledAt, iv.Type, iv.Round, iv.Duration, nullable(iv.Location),
		nullable(iv.Notes), nullable(iv.Feedback), rating, iv.Result, iv.UpdatedAt, iv.ID)
	if err != nil {
		return fmt.Errorf("update interview: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountInterviewsBetween counts interviews scheduled in [from, to),
// restricted to one scheduler when scheduledByID is non-empty.
func (db *DB) CountInterviewsBetween(ctx context.Context, scheduledByID string, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM interviews WHERE scheduled_at >= $1 AND scheduled_at < $2`
	args := []interface{}{from, to}
	if scheduledByID != "" {
		query += ` AND scheduled_by_id = $3`
		args = append(args, scheduledByID)
	}
	var n int
	err := db.connection.QueryRowContext(ctx, query, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count interviews: %w", err)
	}
	return n, nil
}
