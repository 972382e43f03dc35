package handler

import (
	"net/http"

	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/pagination"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BuyerHandler struct {
	buyerService service.BuyerService
}

func NewBuyerHandler(buyerService service.BuyerService) *BuyerHandler {
	return &BuyerHandler{buyerService: buyerService}
}

func (h *BuyerHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	group := api.Group("/buyers", auth.RequireAuth())
	{
		group.POST("", h.CreateBuyer)
		group.GET("", h.ListBuyers)
		group.GET("/:id", h.GetBuyer)
		group.PUT("/:id", h.UpdateBuyer)
		group.DELETE("/:id", h.DeleteBuyer)
	}
}

// CreateBuyer handles POST /buyers
// @Summary      Create buyer
// @Tags         buyers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBuyerRequest  true  "Buyer payload"
// @Success      201      {object}  response.Response{data=service.BuyerResponse}
// @Failure      400      {object}  response.Response
// @Router       /buyers [post]
func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	var req service.CreateBuyerRequest
	if !bindJSON(c, &req) {
		return
	}
	buyer, err := h.buyerService.CreateBuyer(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"buyer": buyer}))
}

// ListBuyers handles GET /buyers
// @Summary      List buyers
// @Tags         buyers
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Business name or NTN/CNIC"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 10)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /buyers [get]
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	p := pagination.Parse(c, pagination.DefaultLimit)
	buyers, total, err := h.buyerService.ListBuyers(c.Request.Context(), middleware.CurrentUserID(c), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated("buyers", buyers, pagination.NewMeta(total, p)))
}

// GetBuyer handles GET /buyers/:id
// @Summary      Get buyer
// @Tags         buyers
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Buyer ID"
// @Success      200  {object}  response.Response{data=service.BuyerResponse}
// @Failure      404  {object}  response.Response
// @Router       /buyers/{id} [get]
func (h *BuyerHandler) GetBuyer(c *gin.Context) {
	buyer, err := h.buyerService.GetBuyer(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"buyer": buyer}))
}

// UpdateBuyer handles PUT /buyers/:id
// @Summary      Update buyer
// @Tags         buyers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Buyer ID"
// @Param        payload  body      service.UpdateBuyerRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=service.BuyerResponse}
// @Failure      404      {object}  response.Response
// @Router       /buyers/{id} [put]
func (h *BuyerHandler) UpdateBuyer(c *gin.Context) {
	var req service.UpdateBuyerRequest
	if !bindJSON(c, &req) {
		return
	}
	buyer, err := h.buyerService.UpdateBuyer(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"buyer": buyer}))
}

// DeleteBuyer handles DELETE /buyers/:id
// @Summary      Delete buyer
// @Tags         buyers
// @Security     BearerAuth
// @Param        id   path  string  true  "Buyer ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Router       /buyers/{id} [delete]
func (h *BuyerHandler) DeleteBuyer(c *gin.Context) {
	if err := h.buyerService.DeleteBuyer(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
