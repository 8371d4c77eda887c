package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/domain/inventory"
	"github.com/stokos/stokos-api/internal/infrastructure/memory"
)

// SnapshotSaver guarda el agregado completo. Lo implementa la capa de
// persistencia; el handler no conoce el formato.
type SnapshotSaver interface {
	Save(data *inventory.SystemData) error
}

// AdminHandler operaciones administrativas (protegido, solo CEO).
type AdminHandler struct {
	store *memory.Store
	saver SnapshotSaver
}

// NewAdminHandler construye el handler.
func NewAdminHandler(store *memory.Store, saver SnapshotSaver) *AdminHandler {
	return &AdminHandler{store: store, saver: saver}
}

// SaveSnapshot godoc
// @Summary      Guardar el estado completo a disco (solo CEO)
// @Tags         admin
// @Security     Bearer
// @Success      204  "Sin contenido"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/snapshot [post]
func (h *AdminHandler) SaveSnapshot(c *fiber.Ctx) error {
	err := h.store.View(func(data *inventory.SystemData) error {
		return h.saver.Save(data)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SNAPSHOT", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
