package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedResume holds the best-effort fields extracted from raw resume text.
// Every field is optional; absence is an empty value, never an error.
type ParsedResume struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience *int     `json:"experience,omitempty"`
}

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Handles common phone formats: optional country code, parentheses, separators.
	phoneRegex = regexp.MustCompile(`(?:\+?\d{1,3})?[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)

	headerRegex    = regexp.MustCompile(`(?i)resume|curriculum vitae|cv|profile`)
	nameTokenRegex = regexp.MustCompile(`^[A-Za-z.-]+$`)

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience|exp)`),
		regexp.MustCompile(`(?i)experience[:\s]*(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:in\s+)?(?:software|development|engineering)`),
	}
)

// skillVocabulary is the closed list of skills the extractor can detect.
// Unknown skills are never reported; that precision/recall tradeoff keeps
// auto-fill suggestions clean.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "Go", "Rust", "PHP",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis", "GraphQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git",
	"HTML", "CSS", "Sass", "Tailwind", "Bootstrap",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"Agile", "Scrum", "Jira", "Confluence",
	"REST API", "Microservices", "CI/CD", "DevOps",
	"Linux", "Unix", "Windows", "macOS",
	"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator",
	"Communication", "Leadership", "Problem Solving", "Team Management",
}

// ExtractEmail returns the first email address found in text, lowercased.
// Empty string when nothing matches.
func ExtractEmail(text string) string {
	return strings.ToLower(emailRegex.FindString(text))
}

// ExtractPhone returns the first phone-looking sequence with everything but
// digits and a leading "+" stripped. The match is accepted only when at
// least 10 digits remain.
func ExtractPhone(text string) string {
	match := phoneRegex.FindString(text)
	if match == "" {
		return ""
	}

	var b strings.Builder
	digits := 0
	for _, r := range match {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	if digits < 10 {
		return ""
	}
	return b.String()
}

// ExtractName scans the first 5 non-blank lines, where resumes
// conventionally put the candidate's name. A line qualifies when it is at
// most 50 characters, contains no email or phone, is not a
// resume/CV/profile header, and splits into 2-4 tokens made of letters,
// periods, or hyphens only. The first qualifying line is returned verbatim
// (trimmed). Empty string when none qualify.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])

		if len(line) > 50 {
			continue
		}
		if emailRegex.MatchString(line) {
			continue
		}
		if phoneRegex.MatchString(line) {
			continue
		}
		if headerRegex.MatchString(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		isName := true
		for _, w := range words {
			if !nameTokenRegex.MatchString(w) {
				isName = false
				break
			}
		}
		if isName {
			return line
		}
	}

	return ""
}

// ExtractSkills performs a case-insensitive substring scan of text against
// the skill vocabulary. Matches keep the vocabulary's order and casing,
// deduplicated.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]bool)
	for _, skill := range skillVocabulary {
		if seen[skill] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			seen[skill] = true
		}
	}
	return found
}

// ExtractExperience looks for "N years of experience" style statements and
// returns the first integer found. The bool reports whether any pattern
// matched.
func ExtractExperience(text string) (int, bool) {
	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return years, true
	}
	return 0, false
}

// ParseText runs every extractor over the input and assembles the result.
// It never fails: garbage input degrades to a record with every field
// absent, so a bad upload can still fall through to manual entry.
func ParseText(text string) *ParsedResume {
	parsed := &ParsedResume{
		Name:   ExtractName(text),
		Email:  ExtractEmail(text),
		Phone:  ExtractPhone(text),
		Skills: ExtractSkills(text),
	}
	if years, ok := ExtractExperience(text); ok {
		parsed.Experience = &years
	}
	return parsed
}
