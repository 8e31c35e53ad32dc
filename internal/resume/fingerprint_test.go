package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"plain ten digits", "4155550100", "4155550100"},
		{"formatted", "(415) 555-0100", "4155550100"},
		{"country code dropped", "+1 415-555-0100", "4155550100"},
		{"keeps last ten digits", "+44 20 7946 0958 99", "7946095899"},
		{"too short", "555-0100", ""},
		{"empty", "", ""},
		{"no digits", "call me", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once := NormalizePhone("+1 (415) 555-0100")
	assert.Equal(t, once, NormalizePhone(once))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Jane Doe", "jane doe"},
		{"trims", "  Jane Doe  ", "jane doe"},
		{"collapses whitespace", "Jane \t  Doe", "jane doe"},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
		full  string
		want  string
	}{
		{
			"all fields",
			"Jane.Doe@Example.com", "+1 415-555-0100", "Jane  Doe",
			"email:jane.doe@example.com|phone:4155550100|name:jane doe",
		},
		{
			"email only",
			"jane@example.com", "", "",
			"email:jane@example.com",
		},
		{
			"short phone omitted",
			"jane@example.com", "555-0100", "Jane Doe",
			"email:jane@example.com|name:jane doe",
		},
		{
			"phone and name",
			"", "4155550100", "Jane Doe",
			"phone:4155550100|name:jane doe",
		},
		{
			"all empty",
			"", "", "",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint(tt.email, tt.phone, tt.full))
		})
	}
}

// Equivalent raw inputs must collapse to one fingerprint, and changing any
// identifying field must change it.
func TestFingerprint_Stability(t *testing.T) {
	a := Fingerprint("jane@example.com", "+1 (415) 555-0100", "Jane Doe")
	b := Fingerprint("  JANE@EXAMPLE.COM ", "415.555.0100", " jane   doe ")
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, Fingerprint("john@example.com", "+1 (415) 555-0100", "Jane Doe"))
	assert.NotEqual(t, a, Fingerprint("jane@example.com", "+1 (415) 555-0199", "Jane Doe"))
	assert.NotEqual(t, a, Fingerprint("jane@example.com", "+1 (415) 555-0100", "Jane Smith"))
}
