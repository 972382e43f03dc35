package handler

import (
	"net/http"

	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/pagination"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	group := api.Group("/invoices", auth.RequireAuth())
	{
		group.POST("", h.SubmitInvoice)
		group.POST("/production", h.SubmitProductionInvoice)
		group.POST("/validate", h.ValidateInvoice)
		group.GET("", h.ListInvoices)
		group.GET("/:id", h.GetInvoice)
		group.GET("/:id/pdf", h.DownloadPDF)
		group.DELETE("/:id", h.DeleteInvoice)
	}
}

// SubmitInvoice handles POST /invoices
// @Summary      Submit invoice
// @Description  Posts the invoice to the FBR gateway (sandbox unless isTestEnvironment=false) and stores it once accepted
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitInvoiceRequest  true  "Invoice with scenario"
// @Success      201      {object}  response.Response{data=service.SubmitInvoiceResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /invoices [post]
func (h *InvoiceHandler) SubmitInvoice(c *gin.Context) {
	var req service.SubmitInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.invoiceService.SubmitInvoice(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(res))
}

// SubmitProductionInvoice handles POST /invoices/production
// @Summary      Submit production invoice
// @Description  Posts to the production gateway without a scenario; each item carries its saleType
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ProductionInvoiceRequest  true  "Invoice"
// @Success      201      {object}  response.Response{data=service.SubmitInvoiceResponse}
// @Failure      400      {object}  response.Response
// @Router       /invoices/production [post]
func (h *InvoiceHandler) SubmitProductionInvoice(c *gin.Context) {
	var req service.ProductionInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.invoiceService.SubmitProductionInvoice(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(res))
}

// ValidateInvoice handles POST /invoices/validate
// @Summary      Validate invoice number
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ValidateInvoiceRequest  true  "Invoice number"
// @Success      200      {object}  response.Response{data=service.ValidateInvoiceResponse}
// @Failure      400      {object}  response.Response
// @Router       /invoices/validate [post]
func (h *InvoiceHandler) ValidateInvoice(c *gin.Context) {
	var req service.ValidateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.invoiceService.ValidateInvoice(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(res))
}

// ListInvoices handles GET /invoices
// @Summary      List invoices
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        invoiceType        query     string  false  "Exact invoice type"
// @Param        isTestEnvironment  query     bool    false  "Sandbox (true) or production (false)"
// @Param        startDate          query     string  false  "yyyy-MM-dd, requires endDate"
// @Param        endDate            query     string  false  "yyyy-MM-dd, inclusive"
// @Param        page               query     int     false  "Page number (default 1)"
// @Param        limit              query     int     false  "Items per page (default 10)"
// @Success      200                {object}  response.Response{data=object}
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	p := pagination.Parse(c, pagination.DefaultLimit)
	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), middleware.CurrentUserID(c), service.InvoiceListQuery{
		InvoiceType:       c.Query("invoiceType"),
		IsTestEnvironment: queryBool(c, "isTestEnvironment"),
		StartDate:         c.Query("startDate"),
		EndDate:           c.Query("endDate"),
		Page:              p.Page,
		Limit:             p.Limit,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated("invoices", invoices, pagination.NewMeta(total, p)))
}

// GetInvoice handles GET /invoices/:id
// @Summary      Get invoice
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  response.Response{data=service.InvoiceResponse}
// @Failure      404  {object}  response.Response
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"invoice": invoice}))
}

// DownloadPDF handles GET /invoices/:id/pdf
// @Summary      Download invoice PDF
// @Description  Rendered with the caller's print settings, or the defaults
// @Tags         invoices
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path  string  true  "Invoice ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  response.Response
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	doc, name, err := h.invoiceService.RenderInvoicePDF(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// DeleteInvoice handles DELETE /invoices/:id
// @Summary      Delete invoice
// @Tags         invoices
// @Security     BearerAuth
// @Param        id   path  string  true  "Invoice ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
