package handler

import (
	"net/http"

	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CustomFieldHandler struct {
	customFieldService service.CustomFieldService
}

func NewCustomFieldHandler(customFieldService service.CustomFieldService) *CustomFieldHandler {
	return &CustomFieldHandler{customFieldService: customFieldService}
}

func (h *CustomFieldHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	group := api.Group("/custom-fields", auth.RequireAuth())
	{
		group.POST("", h.CreateCustomField)
		group.GET("", h.ListCustomFields)
		group.GET("/:id", h.GetCustomField)
		group.PUT("/:id", h.UpdateCustomField)
		group.DELETE("/:id", h.DeleteCustomField)
	}
}

// CreateCustomField handles POST /custom-fields
// @Summary      Create custom field
// @Description  fieldType "multiline" is stored as textarea
// @Tags         custom-fields
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCustomFieldRequest  true  "Field definition"
// @Success      201      {object}  response.Response{data=service.CustomFieldResponse}
// @Failure      400      {object}  response.Response
// @Router       /custom-fields [post]
func (h *CustomFieldHandler) CreateCustomField(c *gin.Context) {
	var req service.CreateCustomFieldRequest
	if !bindJSON(c, &req) {
		return
	}
	field, err := h.customFieldService.CreateCustomField(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"customField": field}))
}

// ListCustomFields handles GET /custom-fields
// @Summary      List custom fields
// @Tags         custom-fields
// @Security     BearerAuth
// @Produce      json
// @Param        includeInactive  query     bool  false  "Include deactivated fields"
// @Success      200              {object}  response.Response{data=[]service.CustomFieldResponse}
// @Router       /custom-fields [get]
func (h *CustomFieldHandler) ListCustomFields(c *gin.Context) {
	include := queryBool(c, "includeInactive")
	fields, err := h.customFieldService.ListCustomFields(c.Request.Context(), middleware.CurrentUserID(c), include != nil && *include)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"customFields": fields}))
}

// GetCustomField handles GET /custom-fields/:id
// @Summary      Get custom field
// @Tags         custom-fields
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Custom field ID"
// @Success      200  {object}  response.Response{data=service.CustomFieldResponse}
// @Failure      404  {object}  response.Response
// @Router       /custom-fields/{id} [get]
func (h *CustomFieldHandler) GetCustomField(c *gin.Context) {
	field, err := h.customFieldService.GetCustomField(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"customField": field}))
}

// UpdateCustomField handles PUT /custom-fields/:id
// @Summary      Update custom field
// @Tags         custom-fields
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Custom field ID"
// @Param        payload  body      service.UpdateCustomFieldRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.CustomFieldResponse}
// @Failure      400      {object}  response.Response
// @Router       /custom-fields/{id} [put]
func (h *CustomFieldHandler) UpdateCustomField(c *gin.Context) {
	var req service.UpdateCustomFieldRequest
	if !bindJSON(c, &req) {
		return
	}
	field, err := h.customFieldService.UpdateCustomField(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"customField": field}))
}

// DeleteCustomField handles DELETE /custom-fields/:id
// @Summary      Delete custom field
// @Description  Deactivates by default; hardDelete=true removes it when no invoice line uses it
// @Tags         custom-fields
// @Security     BearerAuth
// @Produce      json
// @Param        id          path      string  true   "Custom field ID"
// @Param        hardDelete  query     bool    false  "Remove permanently"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /custom-fields/{id} [delete]
func (h *CustomFieldHandler) DeleteCustomField(c *gin.Context) {
	hard := queryBool(c, "hardDelete")
	msg, err := h.customFieldService.DeleteCustomField(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), hard != nil && *hard)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Message(msg, nil))
}
