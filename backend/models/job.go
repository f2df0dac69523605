package models

import "time"

// Job types.
const (
	JobTypeFullTime = "FULL_TIME"
	JobTypePartTime = "PART_TIME"
	JobTypeContract = "CONTRACT"
	JobTypeRemote   = "REMOTE"
)

// Experience levels.
const (
	ExperienceEntry  = "ENTRY"
	ExperienceMid    = "MID"
	ExperienceSenior = "SENIOR"
	ExperienceLead   = "LEAD"
)

// Job categories.
const (
	CategoryKubernetes = "KUBERNETES"
	CategoryDevOps     = "DEVOPS"
	CategoryCloud      = "CLOUD"
	CategoryBackend    = "BACKEND"
	CategoryFrontend   = "FRONTEND"
	CategoryFullstack  = "FULLSTACK"
)

type CompanyInfo struct {
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Size        string   `json:"size"`
	Founded     string   `json:"founded"`
	TechStack   []string `json:"techStack"`
	Culture     []string `json:"culture"`
}

type Job struct {
	ID                 string       `gorm:"primaryKey" json:"id"`
	Title              string       `gorm:"not null" json:"title"`
	Company            string       `json:"company"`
	Location           string       `json:"location"`
	Type               string       `json:"type"`
	Salary             string       `json:"salary,omitempty"`
	Description        string       `gorm:"type:text" json:"description"`
	FullDescription    string       `gorm:"type:text" json:"fullDescription,omitempty"`
	Requirements       []string     `gorm:"serializer:json" json:"requirements"`
	Benefits           []string     `gorm:"serializer:json" json:"benefits"`
	Skills             []string     `gorm:"serializer:json" json:"skills"`
	Responsibilities   []string     `gorm:"serializer:json" json:"responsibilities"`
	Qualifications     []string     `gorm:"serializer:json" json:"qualifications"`
	ApplicationProcess []string     `gorm:"serializer:json" json:"applicationProcess"`
	PostedAt           string       `json:"postedAt"`
	Experience         string       `json:"experience"`
	Category           string       `json:"category"`
	CompanyLogo        string       `json:"companyLogo,omitempty"`
	Featured           bool         `json:"featured"`
	AfricanCompany     bool         `json:"africanCompany"`
	Remote             bool         `json:"remote"`
	CompanyInfo        *CompanyInfo `gorm:"serializer:json" json:"companyInfo,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// Application statuses. The workflow is linear with REJECTED reachable
// from any non-terminal state.
const (
	StatusSubmitted          = "SUBMITTED"
	StatusReviewed           = "REVIEWED"
	StatusInterviewScheduled = "INTERVIEW_SCHEDULED"
	StatusInterviewed        = "INTERVIEWED"
	StatusRejected           = "REJECTED"
	StatusAccepted           = "ACCEPTED"
)

// Application is a candidate's submission against a job posting. JobID is
// a weak reference: deleting the job does not cascade to applications.
type Application struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	JobID        string    `gorm:"index" json:"jobId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location"`
	Experience   string    `json:"experience"`
	CoverLetter  string    `gorm:"type:text" json:"coverLetter"`
	ResumeURL    string    `json:"resumeUrl,omitempty"`
	PortfolioURL string    `json:"portfolioUrl,omitempty"`
	Status       string    `gorm:"default:SUBMITTED" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

var statusTransitions = map[string][]string{
	StatusSubmitted:          {StatusReviewed, StatusRejected},
	StatusReviewed:           {StatusInterviewScheduled, StatusRejected},
	StatusInterviewScheduled: {StatusInterviewed, StatusRejected},
	StatusInterviewed:        {StatusAccepted, StatusRejected},
}

// CanTransition reports whether an application may move from one status
// to another. Terminal statuses have no outgoing transitions.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusReviewed, StatusInterviewScheduled,
		StatusInterviewed, StatusRejected, StatusAccepted:
		return true
	}
	return false
}
