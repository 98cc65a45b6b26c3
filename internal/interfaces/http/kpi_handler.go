package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flipcam/flipcam-api/internal/application/dto"
	"github.com/flipcam/flipcam-api/internal/application/finanzas"
)

// KPIHandler maneja el endpoint de resumen financiero (protegido).
type KPIHandler struct {
	uc *finanzas.KPIUseCase
}

// NewKPIHandler construye el handler.
func NewKPIHandler(uc *finanzas.KPIUseCase) *KPIHandler {
	return &KPIHandler{uc: uc}
}

// Get devuelve el agregado almacenado fusionado con las proyecciones derivadas.
// GET /api/kpis
func (h *KPIHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetResumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.DataResponse{Data: out})
}
