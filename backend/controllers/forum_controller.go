package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kubeafrika/backend/config"
	"kubeafrika/backend/models"
	"kubeafrika/backend/utils"
)

type ForumController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewForumController(db *gorm.DB, cfg *config.Config) *ForumController {
	return &ForumController{DB: db, Cfg: cfg}
}

func (fc *ForumController) ListPosts(c *fiber.Ctx) error {
	query := fc.DB.Preload("Replies").Order("created_at DESC")

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var posts []models.ForumPost
	if err := query.Find(&posts).Error; err != nil {
		return utils.InternalError(c, "Could not query database")
	}
	if posts == nil {
		posts = []models.ForumPost{}
	}

	return c.JSON(fiber.Map{"posts": posts})
}

func (fc *ForumController) GetPost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var post models.ForumPost
	if err := fc.DB.Preload("Replies").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	return c.JSON(post)
}

func (fc *ForumController) CreatePost(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, fc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.Content == "" {
		return utils.BadRequest(c, "Title and content are required")
	}

	var user models.User
	if err := fc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	post := models.ForumPost{
		UserID:   userID,
		UserName: user.Username,
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	}
	if err := fc.DB.Create(&post).Error; err != nil {
		return utils.InternalError(c, "Could not create post")
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (fc *ForumController) AddReply(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, fc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Content == "" {
		return utils.BadRequest(c, "Content is required")
	}

	var post models.ForumPost
	if err := fc.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.InternalError(c, "Could not query database")
	}

	var user models.User
	if err := fc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	reply := models.ForumReply{
		PostID:   post.ID,
		UserID:   userID,
		UserName: user.Username,
		Content:  input.Content,
	}
	if err := fc.DB.Create(&reply).Error; err != nil {
		return utils.InternalError(c, "Could not create reply")
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}
