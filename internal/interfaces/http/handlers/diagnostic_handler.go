package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crescerhub/diagnostico-api/internal/application/classification"
	"github.com/crescerhub/diagnostico-api/internal/application/usecases"
	"github.com/crescerhub/diagnostico-api/internal/domain/entities"
	"github.com/crescerhub/diagnostico-api/internal/interfaces/http/middleware"
)

type DiagnosticHandler struct {
	diagnosticUseCase usecases.DiagnosticUseCase
}

func NewDiagnosticHandler(diagnosticUseCase usecases.DiagnosticUseCase) *DiagnosticHandler {
	return &DiagnosticHandler{diagnosticUseCase}
}

type saveDiagnosticRequest struct {
	CompanyData entities.CompanyData `json:"company_data"`
	Answers     entities.AnswerMap   `json:"answers"`
}

// SaveDiagnostic calcula e persiste um novo diagnóstico do usuário autenticado.
func (h *DiagnosticHandler) SaveDiagnostic(c *fiber.Ctx) error {
	var req saveDiagnosticRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "corpo da requisição inválido",
		})
	}

	result, err := h.diagnosticUseCase.Save(c.UserContext(), middleware.UserID(c), req.CompanyData, req.Answers)
	if errors.Is(err, usecases.ErrUnauthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetDiagnostics lista os diagnósticos do usuário, mais recentes primeiro.
func (h *DiagnosticHandler) GetDiagnostics(c *fiber.Ctx) error {
	results, err := h.diagnosticUseCase.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": results,
		"meta": fiber.Map{
			"total": len(results),
		},
	})
}

func (h *DiagnosticHandler) GetDiagnostic(c *fiber.Ctx) error {
	result, err := h.diagnosticUseCase.Get(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if errors.Is(err, usecases.ErrResultNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

func (h *DiagnosticHandler) DeleteDiagnostic(c *fiber.Ctx) error {
	err := h.diagnosticUseCase.Delete(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if errors.Is(err, usecases.ErrResultNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "resultado excluído",
	})
}

// GetReport devolve a projeção pronta para exibição/exportação de um
// diagnóstico: valores arredondados, moeda formatada, pilares ranqueados.
func (h *DiagnosticHandler) GetReport(c *fiber.Ctx) error {
	rep, err := h.diagnosticUseCase.Report(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if errors.Is(err, usecases.ErrResultNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if errors.Is(err, classification.ErrNoPillarScores) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rep)
}
