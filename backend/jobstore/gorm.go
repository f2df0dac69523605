package jobstore

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kubeafrika/backend/models"
)

// GormStore serves the same contract from database rows. Filtering runs
// over the loaded set so the predicate logic stays identical to the
// memory store; the collection is a job board, not a warehouse.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListJobs(f Filters) ([]models.Job, Pagination, error) {
	var jobs []models.Job
	if err := s.db.Order("created_at").Find(&jobs).Error; err != nil {
		return nil, Pagination{}, err
	}

	var filtered []models.Job
	for i := range jobs {
		if matches(&jobs[i], f) {
			filtered = append(filtered, jobs[i])
		}
	}

	pagination, start, end := paginate(len(filtered), f.Page, f.Limit)
	return filtered[start:end], pagination, nil
}

func (s *GormStore) GetJob(id string) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *GormStore) CreateJob(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.PostedAt == "" {
		job.PostedAt = "Just now"
	}
	return s.db.Create(job).Error
}

func (s *GormStore) UpdateJob(job *models.Job) error {
	result := s.db.Model(&models.Job{}).Where("id = ?", job.ID).Select("*").Updates(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteJob(id string) error {
	result := s.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SimilarJobs(job *models.Job, limit int) ([]models.Job, error) {
	var similar []models.Job
	err := s.db.Where("category = ? AND id <> ?", job.Category, job.ID).
		Limit(limit).
		Find(&similar).Error
	return similar, err
}

func (s *GormStore) CreateApplication(app *models.Application) error {
	if _, err := s.GetJob(app.JobID); err != nil {
		return err
	}

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.Status = models.StatusSubmitted
	return s.db.Create(app).Error
}

func (s *GormStore) ListApplications(status string) ([]ApplicationWithJob, error) {
	query := s.db.Order("created_at")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, err
	}

	result := []ApplicationWithJob{}
	for _, app := range apps {
		entry := ApplicationWithJob{Application: app}
		if job, err := s.GetJob(app.JobID); err == nil {
			entry.Job = job
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *GormStore) GetApplication(id string) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (s *GormStore) UpdateApplicationStatus(id, status string) (*models.Application, error) {
	app, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(app.Status, status) {
		return nil, ErrInvalidTransition
	}

	app.Status = status
	if err := s.db.Model(app).Update("status", status).Error; err != nil {
		return nil, err
	}
	return app, nil
}
