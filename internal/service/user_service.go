package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/config"
	"fbr-invoice-backend/internal/logger"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// --- DTOs ---

type RegisterRequest struct {
	Name         string `json:"name" binding:"required,notblank,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	BusinessName string `json:"businessName" binding:"required,notblank,min=2,max=200"`
	Province     string `json:"province" binding:"required,notblank"`
	Address      string `json:"address" binding:"required,notblank,min=5,max=500"`
	NTNCNIC      string `json:"ntncnic" binding:"required,notblank"`
	Password     string `json:"password" binding:"required,min=8,password"`
}

// CreateUserRequest is the admin variant of RegisterRequest; Role defaults to USER.
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required,notblank,min=2,max=100"`
	Email        string `json:"email" binding:"required,email"`
	BusinessName string `json:"businessName" binding:"required,notblank,min=2,max=200"`
	Province     string `json:"province" binding:"required,notblank"`
	Address      string `json:"address" binding:"required,notblank,min=5,max=500"`
	NTNCNIC      string `json:"ntncnic" binding:"required,notblank"`
	Password     string `json:"password" binding:"required,min=8,password"`
	Role         string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,notblank,min=2,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	BusinessName *string `json:"businessName" binding:"omitempty,notblank,min=2,max=200"`
	Province     *string `json:"province" binding:"omitempty,notblank"`
	Address      *string `json:"address" binding:"omitempty,notblank,min=5,max=500"`
	NTNCNIC      *string `json:"ntncnic" binding:"omitempty,notblank"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,password"`
}

// UpdateFBRTokensRequest sets any of the four gateway tokens; an empty string clears one.
type UpdateFBRTokensRequest struct {
	PostInvoiceTokenTest     *string `json:"postInvoiceTokenTest"`
	PostInvoiceToken         *string `json:"postInvoiceToken"`
	ValidateInvoiceTokenTest *string `json:"validateInvoiceTokenTest"`
	ValidateInvoiceToken     *string `json:"validateInvoiceToken"`
}

type UserResponse struct {
	ID                          string    `json:"id"`
	Name                        string    `json:"name"`
	Email                       string    `json:"email"`
	BusinessName                string    `json:"businessName"`
	Province                    string    `json:"province"`
	Address                     string    `json:"address"`
	NTNCNIC                     string    `json:"ntncnic"`
	Role                        string    `json:"role"`
	HasPostInvoiceTokenTest     bool      `json:"hasPostInvoiceTokenTest"`
	HasPostInvoiceToken         bool      `json:"hasPostInvoiceToken"`
	HasValidateInvoiceTokenTest bool      `json:"hasValidateInvoiceTokenTest"`
	HasValidateInvoiceToken     bool      `json:"hasValidateInvoiceToken"`
	CreatedAt                   time.Time `json:"createdAt"`
	UpdatedAt                   time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// --- Interface ---

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	UpdateFBRTokens(ctx context.Context, userID string, req UpdateFBRTokensRequest) (UserResponse, error)

	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context, search string, page, limit int) ([]UserResponse, int64, error)
	DeleteUser(ctx context.Context, actorID, id string) error

	// EnsureAdmin creates the configured administrator when no user holds that email.
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type userService struct {
	repo      repository.UserRepository
	txManager repository.TransactionManager
	jwt       config.JWTConfig
}

func NewUserService(repo repository.UserRepository, txManager repository.TransactionManager, jwtCfg config.JWTConfig) UserService {
	return &userService{repo: repo, txManager: txManager, jwt: jwtCfg}
}

const errInvalidCredentials = "Invalid email or password"

// --- Implementation ---

func (s *userService) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	user, err := s.createUser(ctx, req, model.RoleUser)
	if err != nil {
		return AuthResponse{}, err
	}
	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return AuthResponse{}, apperr.Unauthorized(errInvalidCredentials)
		}
		return AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return AuthResponse{}, apperr.Unauthorized(errInvalidCredentials)
	}
	return s.authResponse(user)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	return s.GetUser(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			if _, err := s.repo.GetByEmail(ctx, email); err == nil {
				return UserResponse{}, apperr.Conflict("Email already in use")
			} else if !isNotFound(err) {
				return UserResponse{}, err
			}
			user.Email = email
		}
	}
	if v := trimPtr(req.Name); v != nil {
		user.Name = *v
	}
	if v := trimPtr(req.BusinessName); v != nil {
		user.BusinessName = *v
	}
	if v := trimPtr(req.Province); v != nil {
		user.Province = *v
	}
	if v := trimPtr(req.Address); v != nil {
		user.Address = *v
	}
	if v := trimPtr(req.NTNCNIC); v != nil {
		user.NTNCNIC = *v
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isDuplicate(err) {
			return UserResponse{}, apperr.Conflict("Email already in use")
		}
		return UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return apperr.Unauthorized("Current password is incorrect")
	}
	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.repo.Update(ctx, user)
}

func (s *userService) UpdateFBRTokens(ctx context.Context, userID string, req UpdateFBRTokensRequest) (UserResponse, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}
	setToken(&user.PostInvoiceTokenTest, req.PostInvoiceTokenTest)
	setToken(&user.PostInvoiceToken, req.PostInvoiceToken)
	setToken(&user.ValidateInvoiceTokenTest, req.ValidateInvoiceTokenTest)
	setToken(&user.ValidateInvoiceToken, req.ValidateInvoiceToken)

	if err := s.repo.Update(ctx, user); err != nil {
		return UserResponse{}, fmt.Errorf("failed to update tokens: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	user, err := s.createUser(ctx, RegisterRequest{
		Name:         req.Name,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		Province:     req.Province,
		Address:      req.Address,
		NTNCNIC:      req.NTNCNIC,
		Password:     req.Password,
	}, role)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (UserResponse, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context, search string, page, limit int) ([]UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, toUserResponse(&users[i]))
	}
	return res, total, nil
}

func (s *userService) DeleteUser(ctx context.Context, actorID, id string) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if user.ID.String() == actorID {
		return apperr.BadRequest("You cannot delete your own account")
	}
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, user.ID)
	})
}

func (s *userService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" {
		return nil
	}
	if _, err := s.repo.GetByEmail(ctx, normalizeEmail(cfg.Email)); err == nil {
		return nil
	} else if !isNotFound(err) {
		return err
	}

	hashed, err := hashPassword(cfg.Password)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:         cfg.Name,
		Email:        normalizeEmail(cfg.Email),
		Password:     hashed,
		BusinessName: cfg.Name,
		Province:     "N/A",
		Address:      "N/A",
		NTNCNIC:      "N/A",
		Role:         model.RoleAdmin,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if isDuplicate(err) {
			return nil
		}
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	logger.FromContext(ctx).Info("admin user seeded", zap.String("email", admin.Email))
	return nil
}

// --- Helpers ---

func (s *userService) load(ctx context.Context, id string) (*model.User, error) {
	uid, err := parseID(id, "user")
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return user, nil
}

func (s *userService) createUser(ctx context.Context, req RegisterRequest, role string) (*model.User, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("User with this email already exists")
	} else if !isNotFound(err) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     hashed,
		BusinessName: strings.TrimSpace(req.BusinessName),
		Province:     strings.TrimSpace(req.Province),
		Address:      strings.TrimSpace(req.Address),
		NTNCNIC:      strings.TrimSpace(req.NTNCNIC),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperr.Conflict("User with this email already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) authResponse(user *model.User) (AuthResponse, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{User: toUserResponse(user), Token: token}, nil
}

func (s *userService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.jwt.ExpiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func setToken(dst **string, v *string) {
	if v == nil {
		return
	}
	token := strings.TrimSpace(*v)
	if token == "" {
		*dst = nil
		return
	}
	*dst = &token
}

// --- Response mappers ---

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:                          u.ID.String(),
		Name:                        u.Name,
		Email:                       u.Email,
		BusinessName:                u.BusinessName,
		Province:                    u.Province,
		Address:                     u.Address,
		NTNCNIC:                     u.NTNCNIC,
		Role:                        u.Role,
		HasPostInvoiceTokenTest:     u.PostToken(true) != "",
		HasPostInvoiceToken:         u.PostToken(false) != "",
		HasValidateInvoiceTokenTest: u.ValidateToken(true) != "",
		HasValidateInvoiceToken:     u.ValidateToken(false) != "",
		CreatedAt:                   u.CreatedAt,
		UpdatedAt:                   u.UpdatedAt,
	}
}
