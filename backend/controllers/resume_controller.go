package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kubeafrika/backend/config"
	"kubeafrika/backend/models"
	"kubeafrika/backend/utils"
)

type ResumeController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewResumeController(db *gorm.DB, cfg *config.Config) *ResumeController {
	return &ResumeController{DB: db, Cfg: cfg}
}

func (rc *ResumeController) GetResume(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var resume models.Resume
	query := rc.DB.Preload("Experience").Preload("Education").Where("user_id = ?", userID)
	if err := query.First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Resume not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	return c.JSON(resume)
}

// SaveResume upserts the caller's resume as one document: the previous
// version and its section rows are replaced wholesale.
func (rc *ResumeController) SaveResume(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var resume models.Resume
	if err := c.BodyParser(&resume); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if resume.FirstName == "" || resume.LastName == "" || resume.Email == "" {
		return utils.BadRequest(c, "First name, last name and email are required")
	}

	resume.ID = 0
	resume.UserID = userID
	for i := range resume.Experience {
		resume.Experience[i].ID = 0
	}
	for i := range resume.Education {
		resume.Education[i].ID = 0
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Resume
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			if err := tx.Where("resume_id = ?", existing.ID).Delete(&models.ResumeExperience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("resume_id = ?", existing.ID).Delete(&models.ResumeEducation{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&resume).Error
	})
	if err != nil {
		return utils.InternalError(c, "Could not save resume")
	}

	return c.JSON(fiber.Map{
		"message": "Resume saved",
		"resume":  resume,
	})
}
