package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kubeafrika/backend/config"
	"kubeafrika/backend/models"
	"kubeafrika/backend/utils"
)

type TutorialsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTutorialsController(db *gorm.DB, cfg *config.Config) *TutorialsController {
	return &TutorialsController{DB: db, Cfg: cfg}
}

// findBySlug resolves a tutorial or reports an explicit absent result.
// Callers render a 404 body; a missing slug is never a fault.
func (tc *TutorialsController) findBySlug(slug string, preloadLessons bool) (*models.Tutorial, error) {
	query := tc.DB
	if preloadLessons {
		query = query.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order, id")
		})
	}

	var tutorial models.Tutorial
	if err := query.Where("slug = ?", slug).First(&tutorial).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

// ListTutorials godoc
// @Summary List tutorials
// @Description Returns all tutorials sorted by display order, optionally filtered
// @Tags tutorials
// @Produce json
// @Router /tutorials [get]
func (tc *TutorialsController) ListTutorials(c *fiber.Ctx) error {
	query := tc.DB.Model(&models.Tutorial{}).Order("display_order, id")

	if difficulty := c.Query("difficulty"); difficulty != "" && difficulty != "all" {
		query = query.Where("difficulty = ?", models.NormalizeDifficulty(difficulty))
	}
	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var tutorials []models.Tutorial
	if err := query.Find(&tutorials).Error; err != nil {
		return utils.InternalError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{"tutorials": tutorials})
}

// CreateTutorial godoc
// @Summary Create tutorial
// @Tags tutorials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Router /tutorials [post]
func (tc *TutorialsController) CreateTutorial(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		Order       int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.Slug == "" {
		return utils.BadRequest(c, "Title and slug are required")
	}

	tutorial := models.Tutorial{
		Title:        input.Title,
		Slug:         input.Slug,
		Description:  input.Description,
		Difficulty:   input.Difficulty,
		DisplayOrder: input.Order,
	}
	if err := tc.DB.Create(&tutorial).Error; err != nil {
		return utils.InternalError(c, "Could not create tutorial")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Tutorial created",
		"tutorial": tutorial,
	})
}

// GetTutorial godoc
// @Summary Get tutorial by slug
// @Tags tutorials
// @Produce json
// @Router /tutorials/{slug} [get]
func (tc *TutorialsController) GetTutorial(c *fiber.Ctx) error {
	tutorial, err := tc.findBySlug(c.Params("slug"), true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Tutorial not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	return c.JSON(tutorial)
}

// UpdateTutorial accepts partial field updates; empty fields keep their
// current value.
func (tc *TutorialsController) UpdateTutorial(c *fiber.Ctx) error {
	tutorial, err := tc.findBySlug(c.Params("slug"), false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Tutorial not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		Order       *int   `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title != "" {
		tutorial.Title = input.Title
	}
	if input.Description != "" {
		tutorial.Description = input.Description
	}
	if input.Difficulty != "" {
		tutorial.Difficulty = input.Difficulty
	}
	if input.Order != nil {
		tutorial.DisplayOrder = *input.Order
	}

	if err := tc.DB.Save(tutorial).Error; err != nil {
		return utils.InternalError(c, "Could not update tutorial")
	}

	return c.JSON(fiber.Map{
		"message":  "Tutorial updated",
		"tutorial": tutorial,
	})
}

// DeleteTutorial removes the tutorial and its lessons (composition: the
// lessons have no lifecycle of their own).
func (tc *TutorialsController) DeleteTutorial(c *fiber.Ctx) error {
	tutorial, err := tc.findBySlug(c.Params("slug"), false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Tutorial not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	if err := tc.DB.Where("tutorial_id = ?", tutorial.ID).Delete(&models.Lesson{}).Error; err != nil {
		return utils.InternalError(c, "Could not delete lessons")
	}
	if err := tc.DB.Delete(tutorial).Error; err != nil {
		return utils.InternalError(c, "Could not delete tutorial")
	}

	return c.JSON(fiber.Map{"message": "Tutorial deleted successfully"})
}

// GetLessons godoc
// @Summary List lessons of a tutorial
// @Description Returns lessons sorted ascending by order
// @Tags lessons
// @Produce json
// @Router /tutorials/{slug}/lessons [get]
func (tc *TutorialsController) GetLessons(c *fiber.Ctx) error {
	tutorial, err := tc.findBySlug(c.Params("slug"), true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Tutorial not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	lessons := tutorial.Lessons
	if lessons == nil {
		lessons = []models.Lesson{}
	}

	return c.JSON(fiber.Map{
		"tutorial": fiber.Map{
			"id":         tutorial.ID,
			"title":      tutorial.Title,
			"slug":       tutorial.Slug,
			"difficulty": tutorial.Difficulty,
			"order":      tutorial.DisplayOrder,
		},
		"lessons": lessons,
	})
}

// AddLesson appends a lesson to the tutorial's sequence. Order defaults
// to the current lesson count + 1; an explicit order is taken as-is
// since order is a display key, not a uniqueness key.
func (tc *TutorialsController) AddLesson(c *fiber.Ctx) error {
	tutorial, err := tc.findBySlug(c.Params("slug"), false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Tutorial not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	var input struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Type     string `json:"type"`
		Order    int    `json:"order"`
		Duration int    `json:"duration"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	var lessonCount int64
	tc.DB.Model(&models.Lesson{}).Where("tutorial_id = ?", tutorial.ID).Count(&lessonCount)

	order := input.Order
	if order == 0 {
		order = int(lessonCount) + 1
	}
	duration := input.Duration
	if duration == 0 {
		duration = 10
	}

	lesson := models.Lesson{
		TutorialID:    tutorial.ID,
		Title:         input.Title,
		Content:       input.Content,
		Type:          models.NormalizeLessonType(input.Type),
		SequenceOrder: order,
		Duration:      duration,
		Completed:     false,
	}
	if err := tc.DB.Create(&lesson).Error; err != nil {
		return utils.InternalError(c, "Could not create lesson")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Lesson added successfully",
		"lesson":   lesson,
		"tutorial": tutorial,
	})
}

// CompleteLesson marks a lesson done. Marking an already-complete lesson
// is a no-op, not an error.
func (tc *TutorialsController) CompleteLesson(c *fiber.Ctx) error {
	tutorial, err := tc.findBySlug(c.Params("slug"), false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Tutorial not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var lesson models.Lesson
	if err := tc.DB.Where("id = ? AND tutorial_id = ?", lessonID, tutorial.ID).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	if !lesson.Completed {
		lesson.Completed = true
		if err := tc.DB.Save(&lesson).Error; err != nil {
			return utils.InternalError(c, "Could not update lesson")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Lesson completed",
		"lesson":  lesson,
	})
}
