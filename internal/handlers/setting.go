package handlers

import (
	"github.com/gofiber/fiber/v2"

	"standsreg/internal/services/setting"
	"standsreg/internal/utils"
)

type SettingHandler struct {
	settingService setting.Service
}

func NewSettingHandler(settingService setting.Service) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// All returns every setting as a flat key/value map.
func (h *SettingHandler) All(c *fiber.Ctx) error {
	settings, err := h.settingService.All()
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, settings)
}

type settingUpdateRequest struct {
	Value string `json:"value"`
}

// Set creates or overwrites one setting.
func (h *SettingHandler) Set(c *fiber.Ctx) error {
	key := c.Params("key")

	var req settingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	if err := h.settingService.Set(key, req.Value); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"key": key, "value": req.Value})
}
