package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLookupWhere_SingleClause(t *testing.T) {
	where, args := buildLookupWhere([]LookupClause{
		EmailEquals{Email: "jane@example.com"},
	}, "")

	assert.Equal(t, "(LOWER(c.email) = LOWER($1))", where)
	assert.Equal(t, []interface{}{"jane@example.com"}, args)
}

func TestBuildLookupWhere_AllClauseKinds(t *testing.T) {
	where, args := buildLookupWhere([]LookupClause{
		EmailEquals{Email: "jane@example.com"},
		PhoneContains{Digits: "4155550100"},
		FingerprintEquals{Fingerprint: "email:jane@example.com|name:jane doe"},
	}, "")

	assert.Equal(t,
		"(LOWER(c.email) = LOWER($1) OR c.phone LIKE '%' || $2 || '%' OR c.fingerprint = $3)",
		where)
	assert.Equal(t, []interface{}{
		"jane@example.com",
		"4155550100",
		"email:jane@example.com|name:jane doe",
	}, args)
}

func TestBuildLookupWhere_ExcludeID(t *testing.T) {
	where, args := buildLookupWhere([]LookupClause{
		EmailEquals{Email: "jane@example.com"},
		PhoneContains{Digits: "4155550100"},
	}, "abc-123")

	assert.Equal(t,
		"(LOWER(c.email) = LOWER($1) OR c.phone LIKE '%' || $2 || '%') AND c.id <> $3",
		where)
	assert.Equal(t, []interface{}{"jane@example.com", "4155550100", "abc-123"}, args)
}
