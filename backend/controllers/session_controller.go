package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kubeafrika/backend/config"
	"kubeafrika/backend/models"
	"kubeafrika/backend/session"
	"kubeafrika/backend/utils"
)

// SessionController exposes the learner's position within a tutorial and
// the sequential navigation over its lessons.
type SessionController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Tracker *session.Tracker
}

func NewSessionController(db *gorm.DB, cfg *config.Config, tracker *session.Tracker) *SessionController {
	return &SessionController{DB: db, Cfg: cfg, Tracker: tracker}
}

type sessionState struct {
	tutorial  *models.Tutorial
	userID    uint
	completed int
	total     int
}

// load resolves the caller and tutorial. A nil state means the response
// has already been written.
func (sc *SessionController) load(c *fiber.Ctx) (*sessionState, error) {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return nil, utils.Unauthorized(c, "Unauthorized")
	}

	var tutorial models.Tutorial
	if err := sc.DB.Where("slug = ?", c.Params("slug")).First(&tutorial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound(c, "Tutorial not found")
		}
		return nil, utils.InternalError(c, "Could not query database")
	}

	var total, completed int64
	sc.DB.Model(&models.Lesson{}).Where("tutorial_id = ?", tutorial.ID).Count(&total)
	sc.DB.Model(&models.Lesson{}).Where("tutorial_id = ? AND completed = ?", tutorial.ID, true).Count(&completed)

	return &sessionState{
		tutorial:  &tutorial,
		userID:    userID,
		completed: int(completed),
		total:     int(total),
	}, nil
}

func (sc *SessionController) respond(c *fiber.Ctx, state *sessionState, position int) error {
	return c.JSON(fiber.Map{
		"tutorial":          state.tutorial.Slug,
		"current_lesson":    position,
		"lesson_count":      state.total,
		"completed_lessons": state.completed,
		// Recomputed on every read, never cached.
		"progress": session.Progress(state.completed, state.total),
	})
}

func (sc *SessionController) GetSession(c *fiber.Ctx) error {
	state, err := sc.load(c)
	if state == nil {
		return err
	}
	position := sc.Tracker.Position(state.userID, state.tutorial.Slug, state.total)
	return sc.respond(c, state, position)
}

func (sc *SessionController) NextLesson(c *fiber.Ctx) error {
	state, err := sc.load(c)
	if state == nil {
		return err
	}
	position := sc.Tracker.Next(state.userID, state.tutorial.Slug, state.total)
	return sc.respond(c, state, position)
}

func (sc *SessionController) PreviousLesson(c *fiber.Ctx) error {
	state, err := sc.load(c)
	if state == nil {
		return err
	}
	position := sc.Tracker.Previous(state.userID, state.tutorial.Slug, state.total)
	return sc.respond(c, state, position)
}

// GoToLesson jumps to a sidebar-selected index. Out-of-range input is
// clamped, not rejected.
func (sc *SessionController) GoToLesson(c *fiber.Ctx) error {
	state, err := sc.load(c)
	if state == nil {
		return err
	}

	var input struct {
		Index int `json:"index"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	position := sc.Tracker.GoTo(state.userID, state.tutorial.Slug, state.total, input.Index)
	return sc.respond(c, state, position)
}
