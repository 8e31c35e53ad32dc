package duplicate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/resume"
	"recruitdesk/internal/storage"
)

// fakeStore records the clauses it was queried with and returns a canned
// candidate list.
type fakeStore struct {
	candidates []*storage.Candidate
	err        error

	clauses   []storage.LookupClause
	excludeID string
	called    bool
}

func (f *fakeStore) FindCandidatesByClauses(_ context.Context, clauses []storage.LookupClause, excludeID string) ([]*storage.Candidate, error) {
	f.called = true
	f.clauses = clauses
	f.excludeID = excludeID
	return f.candidates, f.err
}

func candidate(id, name, email, phone string) *storage.Candidate {
	return &storage.Candidate{ID: id, Name: name, Email: email, Phone: phone}
}

func TestCheck_EmailMatchIsCaseInsensitive(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "Robert Smith", "bob@example.com", ""),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email: "BOB@EXAMPLE.COM",
		Name:  "Bobby",
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, 50, matches[0].MatchScore)
	assert.Equal(t, []string{"email"}, matches[0].MatchedFields)
}

func TestCheck_PartialNameMatch(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "Alice Johnson", "alice.j@example.com", ""),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email: "alice@other.com",
		Name:  "Alice",
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, 10, matches[0].MatchScore)
	assert.Equal(t, []string{"name (partial)"}, matches[0].MatchedFields)
}

func TestCheck_ExactNameBeatsPartial(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "alice  johnson", "a@x.com", ""),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email: "other@y.com",
		Name:  "Alice Johnson",
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	// Exact and partial are mutually exclusive.
	assert.Equal(t, 20, matches[0].MatchScore)
	assert.Equal(t, []string{"name"}, matches[0].MatchedFields)
}

func TestCheck_PhoneMatchesOnLastTenDigits(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "Carol Davis", "carol@x.com", "+1 (415) 555-0100"),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Phone: "415.555.0100",
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, 30, matches[0].MatchScore)
	assert.Equal(t, []string{"phone"}, matches[0].MatchedFields)
}

func TestCheck_ShortPhoneExcludedFromLookupAndScoring(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "Carol Davis", "carol@x.com", "555-0100"),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email: "carol@x.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)

	// Only the email clause reaches the store.
	require.Len(t, store.clauses, 1)
	assert.IsType(t, storage.EmailEquals{}, store.clauses[0])

	require.Len(t, matches, 1)
	assert.Equal(t, 50, matches[0].MatchScore)
	assert.Equal(t, []string{"email"}, matches[0].MatchedFields)
}

func TestCheck_EmptyInputSkipsStore(t *testing.T) {
	store := &fakeStore{}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{})
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.False(t, store.called)
}

func TestCheck_EmptyNamesNeverMatchEachOther(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "   ", "x@y.com", ""),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email: "x@y.com",
		Name:  "  ",
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, []string{"email"}, matches[0].MatchedFields)
	assert.Equal(t, 50, matches[0].MatchScore)
}

func TestCheck_DiscardsCandidateWithNoAgreeingField(t *testing.T) {
	// A fingerprint collision can pull back a candidate that shares
	// nothing field-by-field with the input.
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("c1", "Totally Different", "other@z.com", "+1 212-555-0199"),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email:       "jane@example.com",
		Name:        "Jane Doe",
		Fingerprint: resume.Fingerprint("jane@example.com", "", "Jane Doe"),
	})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCheck_SortsByDescendingScore(t *testing.T) {
	store := &fakeStore{candidates: []*storage.Candidate{
		candidate("weak", "Jane", "other1@x.com", ""),
		candidate("strong", "Jane Doe", "jane@example.com", "+1 415-555-0100"),
		candidate("medium", "Someone Else", "jane@example.com", ""),
	}}
	checker := NewChecker(store)

	matches, err := checker.Check(context.Background(), Input{
		Email: "jane@example.com",
		Phone: "4155550100",
		Name:  "Jane Doe",
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "strong", matches[0].Candidate.ID)
	assert.Equal(t, 100, matches[0].MatchScore)
	assert.Equal(t, []string{"email", "phone", "name"}, matches[0].MatchedFields)

	assert.Equal(t, "medium", matches[1].Candidate.ID)
	assert.Equal(t, 50, matches[1].MatchScore)

	assert.Equal(t, "weak", matches[2].Candidate.ID)
	assert.Equal(t, 10, matches[2].MatchScore)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
}

func TestCheck_BuildsAllClausesAndPassesExcludeID(t *testing.T) {
	store := &fakeStore{}
	checker := NewChecker(store)

	fp := resume.Fingerprint("jane@example.com", "+1 415-555-0100", "Jane Doe")
	_, err := checker.Check(context.Background(), Input{
		Email:              "  Jane@Example.com ",
		Phone:              "+1 415-555-0100",
		Name:               "Jane Doe",
		Fingerprint:        fp,
		ExcludeCandidateID: "self-id",
	})
	require.NoError(t, err)

	require.Len(t, store.clauses, 3)
	assert.Equal(t, storage.EmailEquals{Email: "jane@example.com"}, store.clauses[0])
	assert.Equal(t, storage.PhoneContains{Digits: "4155550100"}, store.clauses[1])
	assert.Equal(t, storage.FingerprintEquals{Fingerprint: fp}, store.clauses[2])
	assert.Equal(t, "self-id", store.excludeID)
}

func TestCheck_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeStore{err: boom}
	checker := NewChecker(store)

	_, err := checker.Check(context.Background(), Input{Email: "jane@example.com"})
	assert.ErrorIs(t, err, boom)
}

func TestFormatAlert(t *testing.T) {
	assert.Empty(t, FormatAlert(nil))

	c := candidate("c1", "Jane Doe", "jane@example.com", "")
	c.Recruiter = &storage.User{Name: "John Smith"}
	alert := FormatAlert([]Match{{
		Candidate:     c,
		MatchScore:    60,
		MatchedFields: []string{"email", "name (partial)"},
	}})
	assert.Equal(t,
		`Potential duplicate found! This candidate matches "Jane Doe" (email, name (partial)) currently being handled by John Smith.`,
		alert)

	c.Recruiter = nil
	alert = FormatAlert([]Match{{Candidate: c, MatchScore: 50, MatchedFields: []string{"email"}}})
	assert.Contains(t, alert, "handled by Unknown")
}
