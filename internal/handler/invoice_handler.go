package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"telebill/internal/csvexport"
	"telebill/internal/export"
	"telebill/internal/port"
	"telebill/internal/service"
)

// InvoiceHandler handles invoice import and retrieval endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Import handles POST /api/v1/invoices/import
// @Summary Import an invoice PDF
// @Description Upload a Vodafone or Three invoice PDF (max 50MB); the carrier is detected from the first page
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice PDF"
// @Param replace query bool false "Replace an already-imported invoice with the same number" default(false)
// @Success 201 {object} APIResponse "Invoice imported"
// @Failure 400 {object} APIResponse "Missing file, unknown carrier, or extraction failure"
// @Failure 409 {object} APIResponse "Invoice already imported"
// @Failure 413 {object} APIResponse "File too large"
// @Router /invoices/import [post]
func (h *InvoiceHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	replace, _ := strconv.ParseBool(c.DefaultQuery("replace", "false"))

	result, err := h.invoiceService.ImportUpload(c.Request.Context(), service.ImportUploadInput{
		File:    file,
		Header:  header,
		Replace: replace,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/invoices
// @Summary List imported invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} APIResponse "Invoices, newest first"
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get an invoice with its mobile lines and cost centres
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} APIResponse "Invoice detail"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	detail, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, detail)
}

// Export handles GET /api/v1/invoices/:id/export
// @Summary Export an invoice as a spreadsheet
// @Description Exports an Excel workbook by default; format=csv exports one CSV row per mobile line
// @Tags invoices
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param id path int true "Invoice ID"
// @Param format query string false "Export format" Enums(xlsx, csv) default(xlsx)
// @Success 200 {file} binary "Workbook with Summary, Mobile Lines, and Cost Centres sheets, or CSV"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id}/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	detail, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	if c.DefaultQuery("format", "xlsx") == "csv" {
		h.exportCSV(c, detail)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, detail); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.WorkbookFilename(detail.Invoice.InvoiceNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *InvoiceHandler) exportCSV(c *gin.Context, detail *port.InvoiceDetail) {
	filename := csvexport.BuildFilename(detail.Invoice.InvoiceNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteInvoice(detail); err != nil {
		return
	}
	w.Flush()
}

// DocumentURL handles GET /api/v1/invoices/:id/document
// @Summary Get a presigned link to the archived source PDF
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} APIResponse "Time-limited document URL"
// @Failure 404 {object} APIResponse "Invoice not found or not archived"
// @Router /invoices/{id}/document [get]
func (h *InvoiceHandler) DocumentURL(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	url, err := h.invoiceService.DocumentURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}

// Delete handles DELETE /api/v1/invoices/:id
// @Summary Delete an invoice and its dependent rows
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} APIResponse "Invoice deleted"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "invoice deleted"})
}
