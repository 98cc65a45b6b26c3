package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/application/usecase"
	"github.com/flipcam/flipcam-api/internal/domain"
)

// InventarioHandler maneja las peticiones HTTP para items de inventario (protegido).
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// List devuelve todos los items ordenados por fecha de ingreso descendente.
// GET /api/inventario
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create da de alta un item; titulo y costo son requeridos.
// POST /api/inventario
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// Update aplica una actualización parcial; el identificador viaja en el cuerpo.
// La transición a vendido estampa fecha_venta y registra el movimiento de venta.
// PUT /api/inventario
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Item no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete borra un item físicamente; "ya no existía" también es éxito.
// DELETE /api/inventario
func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteInventarioRequest
	_ = c.BodyParser(&in)
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if _, err := h.uc.Delete(c.Context(), in.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.OKResponse{OK: true})
}
