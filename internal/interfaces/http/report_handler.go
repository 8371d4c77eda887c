package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stokos/stokos-api/internal/application/dto"
	"github.com/stokos/stokos-api/internal/application/usecase"
	"github.com/stokos/stokos-api/internal/infrastructure/export"
)

// ReportHandler maneja alertas, reportes y export CSV (protegido).
type ReportHandler struct {
	alerts  *usecase.AlertsUseCase
	reports *usecase.ReportUseCase
	csvSep  rune
}

// NewReportHandler construye el handler.
func NewReportHandler(alerts *usecase.AlertsUseCase, reports *usecase.ReportUseCase, csvSep rune) *ReportHandler {
	return &ReportHandler{alerts: alerts, reports: reports, csvSep: csvSep}
}

// Alerts godoc
// @Summary      Avisos de stock y vencimiento
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/reports/alerts [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.alerts.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductReport godoc
// @Summary      Reporte por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductReportRow
// @Router       /api/reports/products [get]
func (h *ReportHandler) ProductReport(c *fiber.Ctx) error {
	rows, err := h.reports.ProductReport()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// ProductReportCSV godoc
// @Summary      Reporte por producto en CSV (solo CEO)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/products/csv [get]
func (h *ReportHandler) ProductReportCSV(c *fiber.Ctx) error {
	rows, err := h.reports.ProductReport()
	if err != nil {
		return respondError(c, err)
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, usecase.ReportRowValues(r))
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report_stokos.csv"`)
	if err := export.WriteTable(c.Response().BodyWriter(), h.csvSep, usecase.ReportHeader(), table); err != nil {
		return respondError(c, err)
	}
	return nil
}

// SalesTotals godoc
// @Summary      Totales vendidos y ganancia de un producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.SalesTotalsResponse
// @Router       /api/reports/sales/{barcode} [get]
func (h *ReportHandler) SalesTotals(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BARCODE", Message: "barcode es requerido"})
	}
	out, err := h.reports.SalesTotals(barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
