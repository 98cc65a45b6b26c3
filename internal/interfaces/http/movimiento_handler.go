package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/application/usecase"
	"github.com/flipcam/flipcam-api/internal/domain"
)

// MovimientoHandler maneja las peticiones HTTP para movimientos de caja (protegido).
type MovimientoHandler struct {
	uc *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// List devuelve hasta 100 movimientos, los más recientes primero.
// GET /api/movimientos
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create registra un movimiento nuevo. Solo acepta los campos de la whitelist;
// el resto se descarta en el parseo. El dueño se estampa desde la sesión.
// POST /api/movimientos
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		// Rechazo del almacén en el alta también responde 400
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: out})
}

// Update aplica una actualización parcial; el identificador viaja en el cuerpo.
// PUT /api/movimientos
func (h *MovimientoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Movimiento no encontrado"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Delete borra un movimiento; "ya no existía" se responde como éxito con
// {ok:true} para tolerar el doble submit de la UI.
// DELETE /api/movimientos
func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteMovimientoRequest
	// Cuerpo vacío o JSON inválido cae al chequeo de id
	_ = c.BodyParser(&in)
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id de movimiento requerido"})
	}
	// found=false significa "ya estaba borrado": también es éxito
	if _, err := h.uc.Delete(c.Context(), in.ID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.OKResponse{OK: true})
}
