package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/repository"
)

// --- DTOs ---

type HSCodeInput struct {
	HSCode      string `json:"hsCode" binding:"required,notblank"`
	Description string `json:"description" binding:"max=500"`
}

// CreateHSCodeRequest carries either a single code or a bulk list, never both.
type CreateHSCodeRequest struct {
	HSCode      *string       `json:"hsCode"`
	Description *string       `json:"description" binding:"omitempty,max=500"`
	HSCodes     []HSCodeInput `json:"hsCodes" binding:"omitempty,dive"`
}

type UpdateHSCodeRequest struct {
	HSCode      *string `json:"hsCode" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type HSCodeResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	HSCode      string    `json:"hsCode"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type HSCodeFailure struct {
	HSCode string `json:"hsCode"`
	Reason string `json:"reason"`
}

type BulkSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Failed  int `json:"failed"`
}

type BulkHSCodeResponse struct {
	Summary BulkSummary      `json:"summary"`
	Created []HSCodeResponse `json:"created"`
	Failed  []HSCodeFailure  `json:"failed"`
}

// --- Interface ---

type HSCodeService interface {
	CreateHSCode(ctx context.Context, userID string, req HSCodeInput) (HSCodeResponse, error)
	BulkCreateHSCodes(ctx context.Context, userID string, items []HSCodeInput) (BulkHSCodeResponse, error)
	GetHSCode(ctx context.Context, userID, id string) (HSCodeResponse, error)
	ListHSCodes(ctx context.Context, userID, search string, page, limit int) ([]HSCodeResponse, int64, error)
	UpdateHSCode(ctx context.Context, userID, id string, req UpdateHSCodeRequest) (HSCodeResponse, error)
	DeleteHSCode(ctx context.Context, userID, id string) error
}

// --- Implementation ---

type hsCodeService struct {
	hsCodeRepo repository.HSCodeRepository
}

func NewHSCodeService(hsCodeRepo repository.HSCodeRepository) HSCodeService {
	return &hsCodeService{hsCodeRepo: hsCodeRepo}
}

const (
	errHSCodeExists   = "HS Code already exists"
	errHSCodeNotFound = "HS Code not found"
)

func (s *hsCodeService) CreateHSCode(ctx context.Context, userID string, req HSCodeInput) (HSCodeResponse, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return HSCodeResponse{}, err
	}
	code, err := s.create(ctx, model.HSCode{
		UserID:      owner,
		HSCode:      strings.TrimSpace(req.HSCode),
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return HSCodeResponse{}, err
	}
	return toHSCodeResponse(code), nil
}

// BulkCreateHSCodes attempts every entry independently and reports both outcomes.
func (s *hsCodeService) BulkCreateHSCodes(ctx context.Context, userID string, items []HSCodeInput) (BulkHSCodeResponse, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return BulkHSCodeResponse{}, err
	}

	res := BulkHSCodeResponse{
		Created: make([]HSCodeResponse, 0, len(items)),
		Failed:  make([]HSCodeFailure, 0),
	}
	for _, item := range items {
		hsCode := strings.TrimSpace(item.HSCode)
		code, err := s.create(ctx, model.HSCode{
			UserID:      owner,
			HSCode:      hsCode,
			Description: strings.TrimSpace(item.Description),
		})
		if err != nil {
			res.Failed = append(res.Failed, HSCodeFailure{HSCode: hsCode, Reason: failureReason(err)})
			continue
		}
		res.Created = append(res.Created, toHSCodeResponse(code))
	}
	res.Summary = BulkSummary{Total: len(items), Created: len(res.Created), Failed: len(res.Failed)}
	return res, nil
}

func (s *hsCodeService) GetHSCode(ctx context.Context, userID, id string) (HSCodeResponse, error) {
	code, err := s.load(ctx, userID, id)
	if err != nil {
		return HSCodeResponse{}, err
	}
	return toHSCodeResponse(code), nil
}

func (s *hsCodeService) ListHSCodes(ctx context.Context, userID, search string, page, limit int) ([]HSCodeResponse, int64, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, 0, err
	}
	codes, total, err := s.hsCodeRepo.List(ctx, owner, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch hs codes: %w", err)
	}
	res := make([]HSCodeResponse, 0, len(codes))
	for i := range codes {
		res = append(res, toHSCodeResponse(&codes[i]))
	}
	return res, total, nil
}

func (s *hsCodeService) UpdateHSCode(ctx context.Context, userID, id string, req UpdateHSCodeRequest) (HSCodeResponse, error) {
	code, err := s.load(ctx, userID, id)
	if err != nil {
		return HSCodeResponse{}, err
	}

	if v := trimPtr(req.HSCode); v != nil && *v != code.HSCode {
		if _, err := s.hsCodeRepo.FindByCode(ctx, code.UserID, *v); err == nil {
			return HSCodeResponse{}, apperr.Conflict(errHSCodeExists)
		} else if !isNotFound(err) {
			return HSCodeResponse{}, err
		}
		code.HSCode = *v
	}
	if v := trimPtr(req.Description); v != nil {
		code.Description = *v
	}

	if err := s.hsCodeRepo.Update(ctx, code); err != nil {
		if isDuplicate(err) {
			return HSCodeResponse{}, apperr.Conflict(errHSCodeExists)
		}
		return HSCodeResponse{}, fmt.Errorf("failed to update hs code: %w", err)
	}
	return toHSCodeResponse(code), nil
}

func (s *hsCodeService) DeleteHSCode(ctx context.Context, userID, id string) error {
	code, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}
	used, err := s.hsCodeRepo.CountInvoiceItems(ctx, code.ID)
	if err != nil {
		return err
	}
	if used > 0 {
		return apperr.Conflict("Cannot delete HS Code that is used in invoices")
	}
	return s.hsCodeRepo.Delete(ctx, code.UserID, code.ID)
}

func (s *hsCodeService) create(ctx context.Context, code model.HSCode) (*model.HSCode, error) {
	if code.HSCode == "" {
		return nil, apperr.Validation("Validation failed", apperr.FieldError{Field: "hsCode", Message: "HS Code is required"})
	}
	if _, err := s.hsCodeRepo.FindByCode(ctx, code.UserID, code.HSCode); err == nil {
		return nil, apperr.Conflict(errHSCodeExists)
	} else if !isNotFound(err) {
		return nil, err
	}
	if err := s.hsCodeRepo.Create(ctx, &code); err != nil {
		if isDuplicate(err) {
			return nil, apperr.Conflict(errHSCodeExists)
		}
		return nil, fmt.Errorf("failed to create hs code: %w", err)
	}
	return &code, nil
}

func (s *hsCodeService) load(ctx context.Context, userID, id string) (*model.HSCode, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	cid, err := parseID(id, "HS Code")
	if err != nil {
		return nil, err
	}
	code, err := s.hsCodeRepo.FindByID(ctx, owner, cid)
	if err != nil {
		return nil, notFound(err, errHSCodeNotFound)
	}
	return code, nil
}

// failureReason exposes client messages verbatim and hides internal detail.
func failureReason(err error) string {
	if appErr, ok := apperr.As(err); ok && appErr.Kind != apperr.KindInternal {
		return appErr.Message
	}
	return "Failed to create"
}

// --- Response mappers ---

func toHSCodeResponse(c *model.HSCode) HSCodeResponse {
	return HSCodeResponse{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		HSCode:      c.HSCode,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
