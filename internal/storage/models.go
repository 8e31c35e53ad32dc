package storage

import "time"

type Role string

const (
	RoleRecruiter Role = "RECRUITER"
	RoleSuperUser Role = "SUPER_USER"
)

type CandidateStatus string

const (
	StatusApplied   CandidateStatus = "APPLIED"
	StatusScreening CandidateStatus = "SCREENING"
	StatusInterview CandidateStatus = "INTERVIEW"
	StatusOffer     CandidateStatus = "OFFER"
	StatusHired     CandidateStatus = "HIRED"
	StatusRejected  CandidateStatus = "REJECTED"
	StatusOnHold    CandidateStatus = "ON_HOLD"
)

// CandidateStatuses lists every pipeline stage in display order.
var CandidateStatuses = []CandidateStatus{
	StatusApplied, StatusScreening, StatusInterview, StatusOffer,
	StatusHired, StatusRejected, StatusOnHold,
}

func (s CandidateStatus) Valid() bool {
	for _, known := range CandidateStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type InterviewType string

const (
	InterviewOnlineTest InterviewType = "ONLINE_TEST"
	InterviewTechnical  InterviewType = "TECHNICAL"
	InterviewHR         InterviewType = "HR"
	InterviewManagerial InterviewType = "MANAGERIAL"
)

type InterviewResult string

const (
	ResultPending InterviewResult = "PENDING"
	ResultPassed  InterviewResult = "PASSED"
	ResultFailed  InterviewResult = "FAILED"
	ResultNoShow  InterviewResult = "NO_SHOW"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Department   string    `json:"department,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Candidate is a tracked applicant. Skills are persisted as a single
// comma-joined column and split on read.
type Candidate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Position       string          `json:"position,omitempty"`
	Experience     *int            `json:"experience,omitempty"`
	CurrentCompany string          `json:"currentCompany,omitempty"`
	ExpectedSalary string          `json:"expectedSalary,omitempty"`
	ResumeURL      string          `json:"resumeUrl,omitempty"`
	ResumeText     string          `json:"resumeText,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Status         CandidateStatus `json:"status"`
	Source         string          `json:"source,omitempty"`
	Fingerprint    string          `json:"fingerprint,omitempty"`
	RecruiterID    string          `json:"recruiterId"`
	Recruiter      *User           `json:"recruiter,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type Interview struct {
	ID            string          `json:"id"`
	CandidateID   string          `json:"candidateId"`
	Candidate     *Candidate      `json:"candidate,omitempty"`
	ScheduledByID string          `json:"scheduledById"`
	ScheduledBy   *User           `json:"scheduledBy,omitempty"`
	ScheduledAt   time.Time       `json:"scheduledAt"`
	Type          InterviewType   `json:"type"`
	Round         int             `json:"round"`
	Duration      int             `json:"duration"` // minutes
	Location      string          `json:"location,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Feedback      string          `json:"feedback,omitempty"`
	Rating        *int            `json:"rating,omitempty"`
	Result        InterviewResult `json:"result"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type Note struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	AuthorID    string    `json:"authorId"`
	Author      *User     `json:"author,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Activity struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	Action     string    `json:"action"`
	Details    string    `json:"details,omitempty"`
	EntityType string    `json:"entityType,omitempty"`
	EntityID   string    `json:"entityId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CandidateFilter narrows ListCandidates. Empty fields are ignored.
type CandidateFilter struct {
	RecruiterID string          // restrict to one recruiter's candidates
	Status      CandidateStatus // restrict to one pipeline stage
	Search      string          // substring match on name/email/position
}

// InterviewFilter narrows ListInterviews. Empty fields are ignored.
type InterviewFilter struct {
	ScheduledByID string
	CandidateID   string
}
