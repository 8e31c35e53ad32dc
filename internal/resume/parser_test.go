package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Contact: Jane.Doe@Example.COM for details", "jane.doe@example.com"},
		{"first of several", "a@x.com then b@y.org", "a@x.com"},
		{"plus and dots", "reach me at first.last+tag@sub.domain.io", "first.last+tag@sub.domain.io"},
		{"no match", "no email here", ""},
		{"tld too short", "broken@host.c only", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"us with country code", "Phone: +1 415-555-0100", "+14155550100"},
		{"parentheses", "(415) 555-0100 office", "4155550100"},
		{"dots", "415.555.0100", "4155550100"},
		{"too short", "call 555-0100", ""},
		{"no digits", "no phone", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"name on first line",
			"Jane Doe\njane@example.com\n+1 415-555-0100",
			"Jane Doe",
		},
		{
			"skips resume header",
			"Curriculum Vitae\nJohn A. Smith\njohn@x.com",
			"John A. Smith",
		},
		{
			"skips contact lines",
			"jane@example.com\n+1 415-555-0100\nJane Doe",
			"Jane Doe",
		},
		{
			"hyphenated surname",
			"Mary Watson-Jones\nSoftware things follow",
			"Mary Watson-Jones",
		},
		{
			"too many words",
			"One Two Three Four Five\nbody",
			"",
		},
		{
			"single word rejected",
			"Jane\n5 years of backend experience",
			"",
		},
		{
			"name beyond first five lines",
			"a b c 1\nd e f 2\ng h i 3\nj k l 4\nm n o 5\nJane Doe",
			"",
		},
		{
			"long line skipped",
			"This introductory line is definitely much longer than fifty characters total\nJane Doe",
			"Jane Doe",
		},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractSkills(t *testing.T) {
	text := "Built SPAs with React and node.js; CI/CD pipelines on AWS using Docker. Strong Leadership."
	skills := ExtractSkills(text)

	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Node.js")
	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "CI/CD")
	assert.Contains(t, skills, "Leadership")
	assert.NotContains(t, skills, "Python")

	// Vocabulary order, no duplicates.
	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "skill %q reported more than once", s)
	}
}

func TestExtractSkills_UnknownSkillNotDetected(t *testing.T) {
	assert.Empty(t, ExtractSkills("expert in COBOL and Fortran"))
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"years of experience", "5 years of experience in backend work", 5, true},
		{"plus years", "10+ years experience shipping software", 10, true},
		{"experience colon", "Experience: 7 years", 7, true},
		{"years in software", "3 years in software", 3, true},
		{"yrs abbreviation", "12 yrs exp", 12, true},
		{"nothing", "worked a long time", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractExperience(tt.text)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseText_FullResume(t *testing.T) {
	text := `Jane Doe
jane.doe@example.com
+1 415-555-0100

Senior frontend engineer with 5 years of experience.
Skills: React, Node.js, GraphQL.
`
	parsed := ParseText(text)

	assert.Equal(t, "Jane Doe", parsed.Name)
	assert.Equal(t, "jane.doe@example.com", parsed.Email)
	assert.Equal(t, "+14155550100", parsed.Phone)
	assert.True(t, len(parsed.Phone) >= 10)
	require.NotNil(t, parsed.Experience)
	assert.Equal(t, 5, *parsed.Experience)
	assert.Contains(t, parsed.Skills, "React")
	assert.Contains(t, parsed.Skills, "Node.js")

	// The normalized phone keeps the last 10 digits.
	assert.Equal(t, "4155550100", NormalizePhone(parsed.Phone))
}

func TestParseText_GarbageDegradesGracefully(t *testing.T) {
	for _, text := range []string{"", "   \n\n  ", "%%%###@@@", "\x00\x01\x02"} {
		parsed := ParseText(text)
		assert.Empty(t, parsed.Name)
		assert.Empty(t, parsed.Email)
		assert.Empty(t, parsed.Phone)
		assert.Empty(t, parsed.Skills)
		assert.Nil(t, parsed.Experience)
	}
}
