package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kubeafrika/backend/jobstore"
	"kubeafrika/backend/models"
	"kubeafrika/backend/utils"
)

type ApplicationsController struct {
	Store jobstore.Store
}

func NewApplicationsController(store jobstore.Store) *ApplicationsController {
	return &ApplicationsController{Store: store}
}

// ListApplications returns applications joined with their referenced job.
// The job is null when the posting has since been deleted.
func (ac *ApplicationsController) ListApplications(c *fiber.Ctx) error {
	status := c.Query("status", "all")
	if status != "all" && !models.ValidStatus(status) {
		return utils.BadRequest(c, "Unknown application status")
	}

	applications, err := ac.Store.ListApplications(status)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch applications")
	}

	return c.JSON(applications)
}

// UpdateStatus moves an application through the workflow. Transitions
// outside the table (SUBMITTED -> REVIEWED -> INTERVIEW_SCHEDULED ->
// INTERVIEWED -> ACCEPTED, REJECTED from any non-terminal state) are
// rejected.
func (ac *ApplicationsController) UpdateStatus(c *fiber.Ctx) error {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !models.ValidStatus(input.Status) {
		return utils.BadRequest(c, "Unknown application status")
	}

	app, err := ac.Store.UpdateApplicationStatus(c.Params("id"), input.Status)
	if err != nil {
		if errors.Is(err, jobstore.ErrNotFound) {
			return utils.NotFound(c, "Application not found")
		}
		if errors.Is(err, jobstore.ErrInvalidTransition) {
			return utils.BadRequest(c, "Illegal status transition")
		}
		return utils.InternalError(c, "Failed to update application")
	}

	return c.JSON(fiber.Map{
		"message":     "Application status updated",
		"application": app,
	})
}
