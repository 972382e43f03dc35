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

const auditPageSize = 20

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	api.GET("/admin/audit-logs", auth.RequireAuth(), auth.RequireRole(model.RoleAdmin), h.GetAuditLogs)
}

// GetAuditLogs returns recorded submissions, deletions and scenario grants
// @Summary      Get audit logs
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        action  query     string  false  "Exact action, e.g. SUBMIT_INVOICE"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c, auditPageSize)
	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), c.Query("action"), p.Page, p.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated("logs", logs, pagination.NewMeta(total, p)))
}
