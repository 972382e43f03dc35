package handler

import (
	"net/http"
	"time"

	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/pkg/pagination"
	"fbr-invoice-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieConfig controls the access_token cookie set on login.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

type UserHandler struct {
	userService service.UserService
	cookie      CookieConfig
}

func NewUserHandler(userService service.UserService, cookie CookieConfig) *UserHandler {
	return &UserHandler{userService: userService, cookie: cookie}
}

func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, auth *middleware.Auth) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}

	me := api.Group("/users/me", auth.RequireAuth())
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateMe)
		me.PUT("/password", h.ChangePassword)
		me.PUT("/fbr-tokens", h.UpdateFBRTokens)
	}

	admin := api.Group("/admin/users", auth.RequireAuth(), auth.RequireRole(model.RoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.POST("", h.CreateUser)
		admin.GET("/:id", h.GetUser)
		admin.DELETE("/:id", h.DeleteUser)
	}
}

// Register creates a seller account
// @Summary      Register
// @Description  Creates a USER account and returns it with a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterRequest  true  "Registration payload"
// @Success      201      {object}  response.Response{data=service.AuthResponse}
// @Failure      400      {object}  response.Response
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.setTokenCookie(c, res.Token)
	c.JSON(http.StatusCreated, response.Success(res))
}

// Login authenticates by email and password
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=service.AuthResponse}
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.setTokenCookie(c, res.Token)
	c.JSON(http.StatusOK, response.Success(res))
}

// Logout clears the access_token cookie
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "")
	c.JSON(http.StatusOK, response.Message("Logged out successfully", nil))
}

// GetMe returns the caller's profile
// @Summary      Get my profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.UserResponse}
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"user": user}))
}

// UpdateMe edits the caller's profile
// @Summary      Update my profile
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  response.Response{data=service.UserResponse}
// @Failure      400      {object}  response.Response
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req service.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"user": user}))
}

// ChangePassword replaces the caller's password
// @Summary      Change password
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ChangePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /users/me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.userService.ChangePassword(c.Request.Context(), middleware.CurrentUserID(c), req); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Message("Password updated successfully", nil))
}

// UpdateFBRTokens sets or clears the caller's gateway tokens
// @Summary      Update FBR tokens
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateFBRTokensRequest  true  "Tokens; empty string clears"
// @Success      200      {object}  response.Response{data=service.UserResponse}
// @Router       /users/me/fbr-tokens [put]
func (h *UserHandler) UpdateFBRTokens(c *gin.Context) {
	var req service.UpdateFBRTokensRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateFBRTokens(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Message("FBR tokens updated successfully", gin.H{"user": user}))
}

// ListUsers handles GET /admin/users
// @Summary      List users
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Name, email or business name"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 10)"
// @Success      200     {object}  response.Response{data=object}
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := pagination.Parse(c, pagination.DefaultLimit)
	users, total, err := h.userService.ListUsers(c.Request.Context(), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated("users", users, pagination.NewMeta(total, p)))
}

// CreateUser handles POST /admin/users
// @Summary      Create user
// @Description  Creates a user with an explicit role
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateUserRequest  true  "User payload"
// @Success      201      {object}  response.Response{data=service.UserResponse}
// @Failure      400      {object}  response.Response
// @Router       /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"user": user}))
}

// GetUser handles GET /admin/users/:id
// @Summary      Get user
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=service.UserResponse}
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"user": user}))
}

// DeleteUser handles DELETE /admin/users/:id
// @Summary      Delete user
// @Description  Removes the user and everything they own
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) setTokenCookie(c *gin.Context, token string) {
	maxAge := int(h.cookie.MaxAge.Seconds())
	if token == "" {
		maxAge = -1
	}
	sameSite := http.SameSiteLaxMode
	if h.cookie.Secure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie("access_token", token, maxAge, "/", "", h.cookie.Secure, true)
}
