package handler

import (
	"net/http"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/pagination"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type HSCodeHandler struct {
	hsCodeService service.HSCodeService
}

func NewHSCodeHandler(hsCodeService service.HSCodeService) *HSCodeHandler {
	return &HSCodeHandler{hsCodeService: hsCodeService}
}

func (h *HSCodeHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	group := api.Group("/hs-codes", auth.RequireAuth())
	{
		group.POST("", h.CreateHSCode)
		group.GET("", h.ListHSCodes)
		group.GET("/:id", h.GetHSCode)
		group.PUT("/:id", h.UpdateHSCode)
		group.DELETE("/:id", h.DeleteHSCode)
	}
}

// CreateHSCode handles POST /hs-codes for one code or a bulk list
// @Summary      Create HS code(s)
// @Description  Send either {hsCode, description} or {hsCodes: [...]}. Bulk entries succeed or fail independently.
// @Tags         hs-codes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateHSCodeRequest  true  "Single or bulk payload"
// @Success      201      {object}  response.Response{data=service.BulkHSCodeResponse}
// @Failure      400      {object}  response.Response
// @Router       /hs-codes [post]
func (h *HSCodeHandler) CreateHSCode(c *gin.Context) {
	var req service.CreateHSCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)

	switch {
	case req.HSCode != nil && req.HSCodes != nil:
		_ = c.Error(apperr.BadRequest("Provide either hsCode or hsCodes, not both"))
	case req.HSCodes != nil:
		if len(req.HSCodes) == 0 {
			_ = c.Error(apperr.Validation("Validation failed", apperr.FieldError{Field: "hsCodes", Message: "hsCodes must contain at least one entry"}))
			return
		}
		res, err := h.hsCodeService.BulkCreateHSCodes(ctx, userID, req.HSCodes)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, response.Success(res))
	case req.HSCode != nil:
		input := service.HSCodeInput{HSCode: *req.HSCode}
		if req.Description != nil {
			input.Description = *req.Description
		}
		code, err := h.hsCodeService.CreateHSCode(ctx, userID, input)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, response.Success(gin.H{"hsCode": code}))
	default:
		_ = c.Error(apperr.Validation("Validation failed", apperr.FieldError{Field: "hsCode", Message: "hsCode is required"}))
	}
}

// ListHSCodes handles GET /hs-codes
// @Summary      List HS codes
// @Tags         hs-codes
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Code or description, case-insensitive"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 10)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /hs-codes [get]
func (h *HSCodeHandler) ListHSCodes(c *gin.Context) {
	p := pagination.Parse(c, pagination.DefaultLimit)
	codes, total, err := h.hsCodeService.ListHSCodes(c.Request.Context(), middleware.CurrentUserID(c), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated("hsCodes", codes, pagination.NewMeta(total, p)))
}

// GetHSCode handles GET /hs-codes/:id
// @Summary      Get HS code
// @Tags         hs-codes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "HS code ID"
// @Success      200  {object}  response.Response{data=service.HSCodeResponse}
// @Failure      404  {object}  response.Response
// @Router       /hs-codes/{id} [get]
func (h *HSCodeHandler) GetHSCode(c *gin.Context) {
	code, err := h.hsCodeService.GetHSCode(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"hsCode": code}))
}

// UpdateHSCode handles PUT /hs-codes/:id
// @Summary      Update HS code
// @Tags         hs-codes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "HS code ID"
// @Param        payload  body      service.UpdateHSCodeRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.HSCodeResponse}
// @Failure      400      {object}  response.Response
// @Router       /hs-codes/{id} [put]
func (h *HSCodeHandler) UpdateHSCode(c *gin.Context) {
	var req service.UpdateHSCodeRequest
	if !bindJSON(c, &req) {
		return
	}
	code, err := h.hsCodeService.UpdateHSCode(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"hsCode": code}))
}

// DeleteHSCode handles DELETE /hs-codes/:id
// @Summary      Delete HS code
// @Tags         hs-codes
// @Security     BearerAuth
// @Param        id   path  string  true  "HS code ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Router       /hs-codes/{id} [delete]
func (h *HSCodeHandler) DeleteHSCode(c *gin.Context) {
	if err := h.hsCodeService.DeleteHSCode(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
