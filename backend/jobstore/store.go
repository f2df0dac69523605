package jobstore

import (
	"errors"
	"strings"

	"kubeafrika/backend/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("illegal status transition")
)

// Filters narrows a job listing. Empty or "all" values are not applied;
// the remaining predicates are combined with AND.
type Filters struct {
	Type        string
	Experience  string
	Category    string
	AfricanOnly bool
	Search      string
	Page        int
	Limit       int
}

// Pagination describes the slice of the filtered set returned by ListJobs.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ApplicationWithJob joins an application with its referenced job. Job is
// nil when the posting has since been deleted.
type ApplicationWithJob struct {
	models.Application
	Job *models.Job `json:"job"`
}

// Store is the persistence boundary for the job board. The memory
// implementation backs the mock deployment; the GORM implementation backs
// a database deployment behind the same contract.
type Store interface {
	ListJobs(f Filters) ([]models.Job, Pagination, error)
	GetJob(id string) (*models.Job, error)
	CreateJob(job *models.Job) error
	UpdateJob(job *models.Job) error
	DeleteJob(id string) error
	SimilarJobs(job *models.Job, limit int) ([]models.Job, error)
	CreateApplication(app *models.Application) error
	ListApplications(status string) ([]ApplicationWithJob, error)
	GetApplication(id string) (*models.Application, error)
	UpdateApplicationStatus(id, status string) (*models.Application, error)
}

func matches(job *models.Job, f Filters) bool {
	if f.Type != "" && f.Type != "all" && job.Type != f.Type {
		return false
	}
	if f.Experience != "" && f.Experience != "all" && job.Experience != f.Experience {
		return false
	}
	if f.Category != "" && f.Category != "all" && job.Category != f.Category {
		return false
	}
	if f.AfricanOnly && !job.AfricanCompany {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), term) &&
			!strings.Contains(strings.ToLower(job.Company), term) &&
			!strings.Contains(strings.ToLower(job.Location), term) &&
			!strings.Contains(strings.ToLower(job.Description), term) {
			return false
		}
	}
	return true
}

// paginate computes the descriptor and slice bounds for a filtered set.
func paginate(total, page, limit int) (Pagination, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}, start, end
}
