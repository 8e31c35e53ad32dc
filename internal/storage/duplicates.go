package storage

import (
	"context"
	"fmt"
	"strings"
)

// LookupClause is one alternative in the duplicate-lookup disjunction.
// The duplicate matcher builds a list of these and the storage layer
// translates them into a single OR query.
type LookupClause interface {
	isLookupClause()
}

// EmailEquals matches candidates whose email equals the given address,
// case-insensitively.
type EmailEquals struct {
	Email string
}

// PhoneContains matches candidates whose stored phone contains the given
// normalized digit string (last 10 digits).
type PhoneContains struct {
	Digits string
}

// FingerprintEquals matches candidates with an identical fingerprint.
type FingerprintEquals struct {
	Fingerprint string
}

func (EmailEquals) isLookupClause()       {}
func (PhoneContains) isLookupClause()     {}
func (FingerprintEquals) isLookupClause() {}

// buildLookupWhere translates a clause list into an OR'd WHERE fragment
// with positional args starting at $1, plus an optional id exclusion.
func buildLookupWhere(clauses []LookupClause, excludeID string) (string, []interface{}) {
	var conds []string
	var args []interface{}
	i := 1

	for _, clause := range clauses {
		switch c := clause.(type) {
		case EmailEquals:
			conds = append(conds, fmt.Sprintf("LOWER(c.email) = LOWER($%d)", i))
			args = append(args, c.Email)
			i++
		case PhoneContains:
			conds = append(conds, fmt.Sprintf("c.phone LIKE '%%' || $%d || '%%'", i))
			args = append(args, c.Digits)
			i++
		case FingerprintEquals:
			conds = append(conds, fmt.Sprintf("c.fingerprint = $%d", i))
			args = append(args, c.Fingerprint)
			i++
		}
	}

	where := "(" + strings.Join(conds, " OR ") + ")"
	if excludeID != "" {
		where += fmt.Sprintf(" AND c.id <> $%d", i)
		args = append(args, excludeID)
	}
	return where, args
}

// FindCandidatesByClauses retrieves every candidate satisfying any of the
// lookup clauses, excluding excludeID when non-empty. Each result carries
// its owning recruiter for display. An empty clause list returns nil
// without touching the database.
func (db *DB) FindCandidatesByClauses(ctx context.Context, clauses []LookupClause, excludeID string) ([]*Candidate, error) {
	if len(clauses) == 0 {
		return nil, nil
	}

	where, args := buildLookupWhere(clauses, excludeID)
	query := `SELECT ` + candidateColumns + `, ` + recruiterColumns + `
		FROM candidates c JOIN users u ON u.id = c.recruiter_id
		WHERE ` + where

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("duplicate lookup: %w", err)
	}
	defer rows.Close()

	var res []*Candidate
	for rows.Next() {
		c, err := scanCandidateWithRecruiter(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
