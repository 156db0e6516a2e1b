package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crescerhub/diagnostico-api/internal/application/usecases"
)

type SettingsHandler struct {
	settingsUseCase usecases.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecases.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settingsUseCase}
}

type updateSettingsRequest struct {
	Logo       *string `json:"logo"`
	NavbarLogo *string `json:"navbar_logo"`
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsUseCase.GetSettings(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	settings, err := h.settingsUseCase.UpdateSettings(c.UserContext(), req.Logo, req.NavbarLogo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(settings)
}

// UploadLogo recebe o arquivo multipart, grava no bucket e atualiza a URL
// do tipo informado (logo ou navbar_logo).
func (h *SettingsHandler) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "arquivo não enviado",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer file.Close()

	publicURL, err := h.settingsUseCase.UploadLogo(
		c.UserContext(),
		c.Params("type"),
		fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType),
		file,
	)
	if errors.Is(err, usecases.ErrInvalidLogoKind) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": publicURL,
	})
}

func (h *SettingsHandler) RemoveLogo(c *fiber.Ctx) error {
	err := h.settingsUseCase.RemoveLogo(c.UserContext(), c.Params("type"))
	if errors.Is(err, usecases.ErrInvalidLogoKind) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "logo removido",
	})
}
