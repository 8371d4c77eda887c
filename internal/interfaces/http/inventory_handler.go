package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP del ledger (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddBatch godoc
// @Summary      Recibir un lote
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/batches [post]
func (h *InventoryHandler) AddBatch(c *fiber.Ctx) error {
	var in dto.AddBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode es requerido"})
	}
	out, err := h.uc.AddBatch(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBatches godoc
// @Summary      Listar lotes vivos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/inventory/batches [get]
func (h *InventoryHandler) ListBatches(c *fiber.Ctx) error {
	out, err := h.uc.ListBatches()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Cantidad disponible de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{barcode} [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	out, err := h.uc.StockFor(barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SettleSale godoc
// @Summary      Liquidar una venta (todo o nada)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/sales [post]
func (h *InventoryHandler) SettleSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SettleSale(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterDiscard godoc
// @Summary      Registrar descarte de mercadería
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.DiscardRequest  true  "Descarte"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/discards [post]
func (h *InventoryHandler) RegisterDiscard(c *fiber.Ctx) error {
	var in dto.DiscardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterDiscard(in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Prune godoc
// @Summary      Podar lotes vacíos
// @Tags         inventory
// @Security     Bearer
// @Success      204  "Sin contenido"
// @Router       /api/inventory/prune [post]
func (h *InventoryHandler) Prune(c *fiber.Ctx) error {
	if err := h.uc.Prune(); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
