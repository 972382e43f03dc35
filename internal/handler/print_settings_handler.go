package handler

import (
	"net/http"

	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PrintSettingsHandler struct {
	printSettingsService service.PrintSettingsService
}

func NewPrintSettingsHandler(printSettingsService service.PrintSettingsService) *PrintSettingsHandler {
	return &PrintSettingsHandler{printSettingsService: printSettingsService}
}

func (h *PrintSettingsHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	group := api.Group("/invoice-print-settings", auth.RequireAuth())
	{
		group.GET("", h.GetPrintSettings)
		group.POST("", h.SavePrintSettings)
		group.DELETE("", h.ResetPrintSettings)
		group.GET("/available-fields", h.AvailableFields)
	}
}

// GetPrintSettings handles GET /invoice-print-settings
// @Summary      Get print settings
// @Description  printSettings is null and defaultSettings is set when nothing has been saved
// @Tags         print-settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.GetPrintSettingsResponse}
// @Router       /invoice-print-settings [get]
func (h *PrintSettingsHandler) GetPrintSettings(c *gin.Context) {
	res, err := h.printSettingsService.GetPrintSettings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(res))
}

// SavePrintSettings handles POST /invoice-print-settings
// @Summary      Save print settings
// @Description  Upserts the caller's layout; a total width outside 95-105 adds a warning
// @Tags         print-settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SavePrintSettingsRequest  true  "Layout"
// @Success      200      {object}  response.Response{data=service.PrintSettingsResponse}
// @Failure      400      {object}  response.Response
// @Router       /invoice-print-settings [post]
func (h *PrintSettingsHandler) SavePrintSettings(c *gin.Context) {
	var req service.SavePrintSettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	settings, warning, err := h.printSettingsService.SavePrintSettings(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	res := response.Message("Print settings saved successfully", gin.H{"printSettings": settings})
	res.Warning = warning
	c.JSON(http.StatusOK, res)
}

// ResetPrintSettings handles DELETE /invoice-print-settings
// @Summary      Reset print settings
// @Tags         print-settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /invoice-print-settings [delete]
func (h *PrintSettingsHandler) ResetPrintSettings(c *gin.Context) {
	if err := h.printSettingsService.ResetPrintSettings(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Print settings reset to defaults", nil))
}

// AvailableFields handles GET /invoice-print-settings/available-fields
// @Summary      Printable fields
// @Description  Built-in columns, the caller's active custom fields and the category list
// @Tags         print-settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.AvailableFieldsResponse}
// @Router       /invoice-print-settings/available-fields [get]
func (h *PrintSettingsHandler) AvailableFields(c *gin.Context) {
	res, err := h.printSettingsService.AvailableFields(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(res))
}
