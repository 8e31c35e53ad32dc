package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (db *DB) InsertActivity(ctx context.Context, a *Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := db.connection.ExecContext(ctx,
		`INSERT INTO activities (id, user_id, action, details, entity_type, entity_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.Action, nullable(a.Details), nullable(a.EntityType),
		nullable(a.EntityID), a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// RecentActivities returns the latest activity entries with the acting
// user's name, restricted to one user when userID is non-empty.
func (db *DB) RecentActivities(ctx context.Context, userID string, limit int) ([]*Activity, error) {
	query := `SELECT a.id, a.user_id, a.action, a.details, a.entity_type, a.entity_id, a.created_at, u.name
		FROM activities a JOIN users u ON u.id = a.user_id`
	var args []interface{}
	i := 1
	if userID != "" {
		query += fmt.Sprintf(" WHERE a.user_id = $%d", i)
		args = append(args, userID)
		i++
	}
	query += fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d", i)
	args = append(args, limit)

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	defer rows.Close()

	var res []*Activity
	for rows.Next() {
		a := &Activity{}
		var details, entityType, entityID sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &details, &entityType, &entityID, &a.CreatedAt, &a.UserName); err != nil {
			return nil, err
		}
		a.Details = fromNull(details)
		a.EntityType = fromNull(entityType)
		a.EntityID = fromNull(entityID)
		res = append(res, a)
	}
	return res, rows.Err()
}
