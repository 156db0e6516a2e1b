package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/crescerhub/diagnostico-api/internal/application/usecases"
	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
)

type PillarHandler struct {
	pillarUseCase usecases.PillarUseCase
}

func NewPillarHandler(pillarUseCase usecases.PillarUseCase) *PillarHandler {
	return &PillarHandler{pillarUseCase}
}

type pillarRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type questionRequest struct {
	Text           string `json:"text"`
	Points         int    `json:"points"`
	PositiveAnswer string `json:"positive_answer"`
	AnswerType     string `json:"answer_type"`
	Order          int    `json:"order"`
}

// GetPillars devolve os pilares com as perguntas na ordem de exibição.
func (h *PillarHandler) GetPillars(c *fiber.Ctx) error {
	pillars, err := h.pillarUseCase.GetPillars(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": pillars,
		"meta": fiber.Map{
			"total": len(pillars),
		},
	})
}

func (h *PillarHandler) CreatePillar(c *fiber.Ctx) error {
	var req pillarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	pillar, err := h.pillarUseCase.CreatePillar(c.UserContext(), req.Name, req.Order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(pillar)
}

func (h *PillarHandler) UpdatePillar(c *fiber.Ctx) error {
	var req pillarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	if err := h.pillarUseCase.UpdatePillar(c.UserContext(), c.Params("id"), req.Name, req.Order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "pilar atualizado",
	})
}

func (h *PillarHandler) DeletePillar(c *fiber.Ctx) error {
	if err := h.pillarUseCase.DeletePillar(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "pilar excluído",
	})
}

func (h *PillarHandler) AddQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	question, err := h.pillarUseCase.AddQuestion(c.UserContext(), c.Params("id"), entities.Question{
		Text:           req.Text,
		Points:         req.Points,
		PositiveAnswer: req.PositiveAnswer,
		AnswerType:     req.AnswerType,
		Order:          req.Order,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "pilar não encontrado",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func (h *PillarHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	err := h.pillarUseCase.UpdateQuestion(c.UserContext(), c.Params("id"), entities.Question{
		Text:           req.Text,
		Points:         req.Points,
		PositiveAnswer: req.PositiveAnswer,
		AnswerType:     req.AnswerType,
		Order:          req.Order,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "pergunta atualizada",
	})
}

func (h *PillarHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.pillarUseCase.DeleteQuestion(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "pergunta excluída",
	})
}
