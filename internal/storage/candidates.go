package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const candidateColumns = `c.id, c.name, c.email, c.phone, c.position, c.experience,
	c.current_company, c.expected_salary, c.resume_url, c.resume_text, c.skills,
	c.status, c.source, c.fingerprint, c.recruiter_id, c.created_at, c.updated_at`

const recruiterColumns = `u.id, u.name, u.email, u.role`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCandidateWithRecruiter scans candidateColumns followed by recruiterColumns.
func scanCandidateWithRecruiter(row rowScanner) (*Candidate, error) {
	c := &Candidate{}
	r := &User{}
	var phone, position, company, salary, resumeURL, resumeText, skills, source, fingerprint sql.NullString
	var experience sql.NullInt64

	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &phone, &position, &experience,
		&company, &salary, &resumeURL, &resumeText, &skills,
		&c.Status, &source, &fingerprint, &c.RecruiterID, &c.CreatedAt, &c.UpdatedAt,
		&r.ID, &r.Name, &r.Email, &r.Role,
	)
	if err != nil {
		return nil, err
	}

	c.Phone = fromNull(phone)
	c.Position = fromNull(position)
	c.Experience = fromNullInt(experience)
	c.CurrentCompany = fromNull(company)
	c.ExpectedSalary = fromNull(salary)
	c.ResumeURL = fromNull(resumeURL)
	c.ResumeText = fromNull(resumeText)
	c.Source = fromNull(source)
	c.Fingerprint = fromNull(fingerprint)
	if s := fromNull(skills); s != "" {
		c.Skills = splitAndTrim(s)
	}
	c.Recruiter = r
	return c, nil
}

func (db *DB) CreateCandidate(ctx context.Context, c *Candidate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = StatusApplied
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO candidates
		(id, name, email, phone, position, experience, current_company, expected_salary,
		 resume_url, resume_text, skills, status, source, fingerprint, recruiter_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	var experience interface{}
	if c.Experience != nil {
		experience = *c.Experience
	}

	_, err := db.connection.ExecContext(ctx, query,
		c.ID, c.Name, strings.ToLower(c.Email), nullable(c.Phone), nullable(c.Position), experience,
		nullable(c.CurrentCompany), nullable(c.ExpectedSalary), nullable(c.ResumeURL),
		nullable(c.ResumeText), nullable(joinSkills(c.Skills)), c.Status, nullable(c.Source),
		nullable(c.Fingerprint), c.RecruiterID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (db *DB) GetCandidate(ctx context.Context, id string) (*Candidate, error) {
	query := `SELECT ` + candidateColumns + `, ` + recruiterColumns + `
		FROM candidates c JOIN users u ON u.id = c.recruiter_id
		WHERE c.id = $1`
	c, err := scanCandidateWithRecruiter(db.connection.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

// ListCandidates returns candidates newest first, optionally narrowed by
// recruiter, status, and a substring search over name/email/position.
func (db *DB) ListCandidates(ctx context.Context, filter CandidateFilter) ([]*Candidate, error) {
	query := `SELECT ` + candidateColumns + `, ` + recruiterColumns + `
		FROM candidates c JOIN users u ON u.id = c.recruiter_id`

	var where []string
	var args []interface{}
	i := 1

	if filter.RecruiterID != "" {
		where = append(where, fmt.Sprintf("c.recruiter_id = $%d", i))
		args = append(args, filter.RecruiterID)
		i++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("c.status = $%d", i))
		args = append(args, filter.Status)
		i++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(c.name ILIKE $%d OR c.email ILIKE $%d OR c.position ILIKE $%d)", i, i+1, i+2))
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
		i += 3
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
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

func (db *DB) UpdateCandidate(ctx context.Context, c *Candidate) error {
	c.UpdatedAt = time.Now().UTC()

	query := `UPDATE candidates SET
		name = $1, email = $2, phone = $3, position = $4, experience = $5,
		current_company = $6, expected_salary = $7, skills = $8, source = $9,
		status = $10, fingerprint = $11, recruiter_id = $12, updated_at = $13
		WHERE id = $14`

	var experience interface{}
	if c.Experience != nil {
		experience = *c.Experience
	}

	res, err := db.connection.ExecContext(ctx, query,
		c.Name, strings.ToLower(c.Email), nullable(c.Phone), nullable(c.Position), experience,
		nullable(c.CurrentCompany), nullable(c.ExpectedSalary), nullable(joinSkills(c.Skills)),
		nullable(c.Source), c.Status, nullable(c.Fingerprint), c.RecruiterID, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) UpdateCandidateStatus(ctx context.Context, id string, status CandidateStatus) error {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE candidates SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update candidate status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) DeleteCandidate(ctx context.Context, id string) error {
	res, err := db.connection.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCandidatesByStatus returns pipeline counts, restricted to one
// recruiter when recruiterID is non-empty (admins pass "").
func (db *DB) CountCandidatesByStatus(ctx context.Context, recruiterID string) (map[CandidateStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM candidates`
	var args []interface{}
	if recruiterID != "" {
		query += ` WHERE recruiter_id = $1`
		args = append(args, recruiterID)
	}
	query += ` GROUP BY status`

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count candidates: %w", err)
	}
	defer rows.Close()

	counts := make(map[CandidateStatus]int)
	for rows.Next() {
		var status CandidateStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (db *DB) RecentCandidates(ctx context.Context, recruiterID string, limit int) ([]*Candidate, error) {
	query := `SELECT ` + candidateColumns + `, ` + recruiterColumns + `
		FROM candidates c JOIN users u ON u.id = c.recruiter_id`
	var args []interface{}
	i := 1
	if recruiterID != "" {
		query += fmt.Sprintf(" WHERE c.recruiter_id = $%d", i)
		args = append(args, recruiterID)
		i++
	}
	query += fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d", i)
	args = append(args, limit)

	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent candidates: %w", err)
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

// CandidatesMissingFingerprint returns candidates whose fingerprint column
// is NULL or empty, oldest first. Used by the backfill tool.
func (db *DB) CandidatesMissingFingerprint(ctx context.Context, limit int) ([]*Candidate, error) {
	query := `SELECT ` + candidateColumns + `, ` + recruiterColumns + `
		FROM candidates c JOIN users u ON u.id = c.recruiter_id
		WHERE c.fingerprint IS NULL OR c.fingerprint = ''
		ORDER BY c.created_at ASC LIMIT $1`

	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("candidates missing fingerprint: %w", err)
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

func (db *DB) SetCandidateFingerprint(ctx context.Context, id, fingerprint string) error {
	_, err := db.connection.ExecContext(ctx,
		`UPDATE candidates SET fingerprint = $1, updated_at = NOW() WHERE id = $2`, fingerprint, id)
	return err
}
