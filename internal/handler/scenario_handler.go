package handler

import (
	"net/http"

	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/pagination"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const globalScenarioPageSize = 50

type ScenarioHandler struct {
	scenarioService service.ScenarioService
}

func NewScenarioHandler(scenarioService service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService}
}

func (h *ScenarioHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	api.GET("/scenarios", auth.RequireAuth(), h.ListMyScenarios)

	admin := api.Group("/admin", auth.RequireAuth(), auth.RequireRole(model.RoleAdmin))
	{
		global := admin.Group("/global-scenarios")
		global.POST("", h.CreateGlobalScenario)
		global.GET("", h.ListGlobalScenarios)
		global.GET("/:id", h.GetGlobalScenario)
		global.PUT("/:id", h.UpdateGlobalScenario)
		global.DELETE("/:id", h.DeleteGlobalScenario)

		assign := admin.Group("/scenarios")
		assign.POST("/assign", h.AssignScenario)
		assign.POST("/unassign", h.UnassignScenario)
		assign.POST("/bulk-assign", h.BulkAssignScenarios)

		admin.GET("/users/:id/scenarios", h.ListUserScenarios)
	}
}

// ListMyScenarios handles GET /scenarios
// @Summary      List my scenarios
// @Description  Scenarios assigned to the caller, ordered by code
// @Tags         scenarios
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.ScenarioResponse}
// @Router       /scenarios [get]
func (h *ScenarioHandler) ListMyScenarios(c *gin.Context) {
	scenarios, err := h.scenarioService.ListUserScenarios(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"scenarios": scenarios}))
}

// CreateGlobalScenario handles POST /admin/global-scenarios
// @Summary      Create global scenario
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateGlobalScenarioRequest  true  "Scenario payload"
// @Success      201      {object}  response.Response{data=service.GlobalScenarioResponse}
// @Failure      400      {object}  response.Response
// @Router       /admin/global-scenarios [post]
func (h *ScenarioHandler) CreateGlobalScenario(c *gin.Context) {
	var req service.CreateGlobalScenarioRequest
	if !bindJSON(c, &req) {
		return
	}
	scenario, err := h.scenarioService.CreateGlobalScenario(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"scenario": scenario}))
}

// ListGlobalScenarios handles GET /admin/global-scenarios
// @Summary      List global scenarios
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Code or description"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 50)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /admin/global-scenarios [get]
func (h *ScenarioHandler) ListGlobalScenarios(c *gin.Context) {
	p := pagination.Parse(c, globalScenarioPageSize)
	scenarios, total, err := h.scenarioService.ListGlobalScenarios(c.Request.Context(), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated("scenarios", scenarios, pagination.NewMeta(total, p)))
}

// GetGlobalScenario handles GET /admin/global-scenarios/:id
// @Summary      Get global scenario
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Global scenario ID"
// @Success      200  {object}  response.Response{data=service.GlobalScenarioResponse}
// @Failure      404  {object}  response.Response
// @Router       /admin/global-scenarios/{id} [get]
func (h *ScenarioHandler) GetGlobalScenario(c *gin.Context) {
	scenario, err := h.scenarioService.GetGlobalScenario(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"scenario": scenario}))
}

// UpdateGlobalScenario handles PUT /admin/global-scenarios/:id
// @Summary      Update global scenario
// @Description  Existing assignments keep the values copied when they were made
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                               true  "Global scenario ID"
// @Param        payload  body      service.UpdateGlobalScenarioRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.GlobalScenarioResponse}
// @Failure      400      {object}  response.Response
// @Router       /admin/global-scenarios/{id} [put]
func (h *ScenarioHandler) UpdateGlobalScenario(c *gin.Context) {
	var req service.UpdateGlobalScenarioRequest
	if !bindJSON(c, &req) {
		return
	}
	scenario, err := h.scenarioService.UpdateGlobalScenario(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"scenario": scenario}))
}

// DeleteGlobalScenario handles DELETE /admin/global-scenarios/:id
// @Summary      Delete global scenario
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Global scenario ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Router       /admin/global-scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteGlobalScenario(c *gin.Context) {
	if err := h.scenarioService.DeleteGlobalScenario(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignScenario handles POST /admin/scenarios/assign
// @Summary      Assign scenario to user
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AssignScenarioRequest  true  "User and global scenario"
// @Success      201      {object}  response.Response{data=service.ScenarioResponse}
// @Failure      404      {object}  response.Response
// @Router       /admin/scenarios/assign [post]
func (h *ScenarioHandler) AssignScenario(c *gin.Context) {
	var req service.AssignScenarioRequest
	if !bindJSON(c, &req) {
		return
	}
	scenario, err := h.scenarioService.AssignScenario(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"scenario": scenario}))
}

// UnassignScenario handles POST /admin/scenarios/unassign
// @Summary      Unassign scenario from user
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Param        payload  body  service.AssignScenarioRequest  true  "User and global scenario"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/scenarios/unassign [post]
func (h *ScenarioHandler) UnassignScenario(c *gin.Context) {
	var req service.AssignScenarioRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.scenarioService.UnassignScenario(c.Request.Context(), middleware.CurrentUserID(c), req); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkAssignScenarios handles POST /admin/scenarios/bulk-assign
// @Summary      Bulk assign scenarios
// @Description  scenarioIds take precedence over scenarioCodes
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.BulkAssignScenariosRequest  true  "User and scenario ids or codes"
// @Success      201      {object}  response.Response{data=service.BulkAssignResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /admin/scenarios/bulk-assign [post]
func (h *ScenarioHandler) BulkAssignScenarios(c *gin.Context) {
	var req service.BulkAssignScenariosRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.scenarioService.BulkAssignScenarios(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(res))
}

// ListUserScenarios handles GET /admin/users/:id/scenarios
// @Summary      List a user's scenarios
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]service.ScenarioResponse}
// @Router       /admin/users/{id}/scenarios [get]
func (h *ScenarioHandler) ListUserScenarios(c *gin.Context) {
	scenarios, err := h.scenarioService.ListUserScenarios(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"scenarios": scenarios}))
}
