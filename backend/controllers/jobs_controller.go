package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"kubeafrika/backend/jobstore"
	"kubeafrika/backend/models"
	"kubeafrika/backend/utils"
)

type JobsController struct {
	Store jobstore.Store
}

func NewJobsController(store jobstore.Store) *JobsController {
	return &JobsController{Store: store}
}

// ListJobs godoc
// @Summary List job postings
// @Description Filters are conjunctive; search matches title, company, location and description
// @Tags jobs
// @Produce json
// @Router /jobs [get]
func (jc *JobsController) ListJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	filters := jobstore.Filters{
		Type:        c.Query("type", "all"),
		Experience:  c.Query("experience", "all"),
		Category:    c.Query("category", "all"),
		AfricanOnly: c.Query("africanOnly") == "true",
		Search:      c.Query("search"),
		Page:        page,
		Limit:       limit,
	}

	jobs, pagination, err := jc.Store.ListJobs(filters)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch jobs")
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	return c.JSON(fiber.Map{
		"jobs":       jobs,
		"pagination": pagination,
	})
}

func (jc *JobsController) GetJob(c *fiber.Ctx) error {
	job, err := jc.Store.GetJob(c.Params("id"))
	if err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			return utils.NotFound(c, "Job not found")
		}
		return utils.InternalError(c, "Failed to fetch job")
	}

	similar, err := jc.Store.SimilarJobs(job, 3)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch job")
	}
	if similar == nil {
		similar = []models.Job{}
	}

	return c.JSON(fiber.Map{
		"job":         job,
		"similarJobs": similar,
	})
}

func (jc *JobsController) CreateJob(c *fiber.Ctx) error {
	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if job.Title == "" || job.Company == "" {
		return utils.BadRequest(c, "Title and company are required")
	}

	if err := jc.Store.CreateJob(&job); err != nil {
		return utils.InternalError(c, "Failed to create job")
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob applies partial field updates over the stored posting.
func (jc *JobsController) UpdateJob(c *fiber.Ctx) error {
	job, err := jc.Store.GetJob(c.Params("id"))
	if err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			return utils.NotFound(c, "Job not found")
		}
		return utils.InternalError(c, "Failed to update job")
	}

	var input struct {
		Title          string   `json:"title"`
		Company        string   `json:"company"`
		Location       string   `json:"location"`
		Type           string   `json:"type"`
		Salary         string   `json:"salary"`
		Description    string   `json:"description"`
		Experience     string   `json:"experience"`
		Category       string   `json:"category"`
		Requirements   []string `json:"requirements"`
		Benefits       []string `json:"benefits"`
		Skills         []string `json:"skills"`
		Featured       *bool    `json:"featured"`
		AfricanCompany *bool    `json:"africanCompany"`
		Remote         *bool    `json:"remote"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Company != "" {
		job.Company = input.Company
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.Type != "" {
		job.Type = input.Type
	}
	if input.Salary != "" {
		job.Salary = input.Salary
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Experience != "" {
		job.Experience = input.Experience
	}
	if input.Category != "" {
		job.Category = input.Category
	}
	if input.Requirements != nil {
		job.Requirements = input.Requirements
	}
	if input.Benefits != nil {
		job.Benefits = input.Benefits
	}
	if input.Skills != nil {
		job.Skills = input.Skills
	}
	if input.Featured != nil {
		job.Featured = *input.Featured
	}
	if input.AfricanCompany != nil {
		job.AfricanCompany = *input.AfricanCompany
	}
	if input.Remote != nil {
		job.Remote = *input.Remote
	}

	if err := jc.Store.UpdateJob(job); err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			return utils.NotFound(c, "Job not found")
		}
		return utils.InternalError(c, "Failed to update job")
	}

	return c.JSON(job)
}

func (jc *JobsController) DeleteJob(c *fiber.Ctx) error {
	if err := jc.Store.DeleteJob(c.Params("id")); err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			return utils.NotFound(c, "Job not found")
		}
		return utils.InternalError(c, "Failed to delete job")
	}

	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// ApplyToJob creates an application against the posting. New applications
// always enter the workflow as SUBMITTED.
func (jc *JobsController) ApplyToJob(c *fiber.Ctx) error {
	var app models.Application
	if err := c.BodyParser(&app); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if app.FirstName == "" || app.LastName == "" || app.Email == "" {
		return utils.BadRequest(c, "First name, last name and email are required")
	}

	app.ID = ""
	app.JobID = c.Params("id")

	if err := jc.Store.CreateApplication(&app); err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			return utils.NotFound(c, "Job not found")
		}
		return utils.InternalError(c, "Failed to submit application")
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}
