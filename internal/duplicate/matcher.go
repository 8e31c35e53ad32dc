// Package duplicate finds existing candidates that plausibly represent the
// same person as a newly submitted one. Results are advisory: callers
// decide whether to warn, block, or ignore.
package duplicate

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"recruitdesk/internal/resume"
	"recruitdesk/internal/storage"
)

// Component scores. A candidate's total is the sum of every
// independently matching component.
const (
	scoreEmail       = 50
	scorePhone       = 30
	scoreNameExact   = 20
	scoreNamePartial = 10
)

// Input carries the identifying fields of the candidate being checked.
// All fields are optional. ExcludeCandidateID is set when re-checking an
// existing record after edits so it does not match itself.
type Input struct {
	Email              string
	Phone              string
	Name               string
	Fingerprint        string
	ExcludeCandidateID string
}

// Match is one scored duplicate hit. Higher scores mean higher
// confidence. MatchedFields uses the labels "email", "phone", "name",
// and "name (partial)".
type Match struct {
	Candidate     *storage.Candidate `json:"candidate"`
	MatchScore    int                `json:"matchScore"`
	MatchedFields []string           `json:"matchedFields"`
}

// Store is the read-only candidate lookup the checker needs.
type Store interface {
	FindCandidatesByClauses(ctx context.Context, clauses []storage.LookupClause, excludeID string) ([]*storage.Candidate, error)
}

type Checker struct {
	store Store
}

func NewChecker(store Store) *Checker {
	return &Checker{store: store}
}

// Check retrieves stored candidates overlapping the input on email, phone,
// or fingerprint, scores each by weighted field agreement, and returns
// them ordered by descending score. An input with no usable lookup field
// returns an empty result without querying storage. Storage errors
// propagate unchanged.
func (c *Checker) Check(ctx context.Context, in Input) ([]Match, error) {
	var clauses []storage.LookupClause

	if email := strings.TrimSpace(in.Email); email != "" {
		clauses = append(clauses, storage.EmailEquals{Email: strings.ToLower(email)})
	}
	// A phone shorter than 10 digits never participates in lookup or scoring.
	if digits := resume.NormalizePhone(in.Phone); digits != "" {
		clauses = append(clauses, storage.PhoneContains{Digits: digits})
	}
	if in.Fingerprint != "" {
		clauses = append(clauses, storage.FingerprintEquals{Fingerprint: in.Fingerprint})
	}

	if len(clauses) == 0 {
		return nil, nil
	}

	candidates, err := c.store.FindCandidatesByClauses(ctx, clauses, in.ExcludeCandidateID)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, cand := range candidates {
		score, fields := scoreCandidate(in, cand)
		// A fingerprint collision can retrieve a candidate none of whose
		// decomposed fields actually agree; drop it.
		if len(fields) == 0 {
			continue
		}
		matches = append(matches, Match{
			Candidate:     cand,
			MatchScore:    score,
			MatchedFields: fields,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches, nil
}

func scoreCandidate(in Input, cand *storage.Candidate) (int, []string) {
	score := 0
	var fields []string

	if in.Email != "" &&
		strings.EqualFold(strings.TrimSpace(in.Email), strings.TrimSpace(cand.Email)) {
		score += scoreEmail
		fields = append(fields, "email")
	}

	if inPhone := resume.NormalizePhone(in.Phone); inPhone != "" && cand.Phone != "" {
		if inPhone == resume.NormalizePhone(cand.Phone) {
			score += scorePhone
			fields = append(fields, "phone")
		}
	}

	if in.Name != "" && cand.Name != "" {
		inName := resume.NormalizeName(in.Name)
		candName := resume.NormalizeName(cand.Name)
		// Two empty normalized names must not count as a match; a bare
		// substring test would be vacuously true for "" vs "".
		switch {
		case inName == "" || candName == "":
		case inName == candName:
			score += scoreNameExact
			fields = append(fields, "name")
		case strings.Contains(inName, candName) || strings.Contains(candName, inName):
			score += scoreNamePartial
			fields = append(fields, "name (partial)")
		}
	}

	return score, fields
}

// FormatAlert renders the advisory banner shown when duplicates exist.
// Empty input yields an empty string.
func FormatAlert(matches []Match) string {
	if len(matches) == 0 {
		return ""
	}

	top := matches[0]
	recruiterName := "Unknown"
	if top.Candidate.Recruiter != nil && top.Candidate.Recruiter.Name != "" {
		recruiterName = top.Candidate.Recruiter.Name
	}

	return fmt.Sprintf(
		"Potential duplicate found! This candidate matches %q (%s) currently being handled by %s.",
		top.Candidate.Name, strings.Join(top.MatchedFields, ", "), recruiterName)
}
