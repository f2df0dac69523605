package jobstore

import (
	"sync"

	"github.com/google/uuid"

	"kubeafrika/backend/models"
)

// MemoryStore holds jobs and applications in process-local slices. The
// RWMutex keeps it safe under concurrent handlers.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         []models.Job
	applications []models.Application
}

func NewMemoryStore(seed []models.Job) *MemoryStore {
	s := &MemoryStore{}
	for _, job := range seed {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		s.jobs = append(s.jobs, job)
	}
	return s
}

func (s *MemoryStore) ListJobs(f Filters) ([]models.Job, Pagination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []models.Job
	for i := range s.jobs {
		if matches(&s.jobs[i], f) {
			filtered = append(filtered, s.jobs[i])
		}
	}

	pagination, start, end := paginate(len(filtered), f.Page, f.Limit)
	return filtered[start:end], pagination, nil
}

func (s *MemoryStore) GetJob(id string) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateJob(job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.PostedAt == "" {
		job.PostedAt = "Just now"
	}
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *MemoryStore) UpdateJob(job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == job.ID {
			s.jobs[i] = *job
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) SimilarJobs(job *models.Job, limit int) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var similar []models.Job
	for i := range s.jobs {
		if len(similar) == limit {
			break
		}
		if s.jobs[i].Category == job.Category && s.jobs[i].ID != job.ID {
			similar = append(similar, s.jobs[i])
		}
	}
	return similar, nil
}

func (s *MemoryStore) CreateApplication(app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.jobs {
		if s.jobs[i].ID == app.JobID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.Status = models.StatusSubmitted
	s.applications = append(s.applications, *app)
	return nil
}

func (s *MemoryStore) ListApplications(status string) ([]ApplicationWithJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []ApplicationWithJob{}
	for i := range s.applications {
		app := s.applications[i]
		if status != "" && status != "all" && app.Status != status {
			continue
		}

		entry := ApplicationWithJob{Application: app}
		for j := range s.jobs {
			if s.jobs[j].ID == app.JobID {
				job := s.jobs[j]
				entry.Job = &job
				break
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *MemoryStore) GetApplication(id string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.applications {
		if s.applications[i].ID == id {
			app := s.applications[i]
			return &app, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateApplicationStatus(id, status string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.applications {
		if s.applications[i].ID == id {
			if !models.CanTransition(s.applications[i].Status, status) {
				return nil, ErrInvalidTransition
			}
			s.applications[i].Status = status
			app := s.applications[i]
			return &app, nil
		}
	}
	return nil, ErrNotFound
}
