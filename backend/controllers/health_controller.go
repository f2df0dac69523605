package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"kubeafrika/backend/config"
)

type HealthController struct {
	Cfg       *config.Config
	StartTime time.Time
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{Cfg: cfg, StartTime: time.Now()}
}

func (hc *HealthController) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(hc.StartTime).Seconds(),
		"environment": hc.Cfg.Environment,
	})
}
