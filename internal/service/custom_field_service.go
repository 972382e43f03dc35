package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateCustomFieldRequest struct {
	FieldName string `json:"fieldName" binding:"required,notblank,max=50,fieldname"`
	FieldType string `json:"fieldType" binding:"required,oneof=text number date textarea multiline"`
}

type UpdateCustomFieldRequest struct {
	FieldName *string `json:"fieldName" binding:"omitempty,notblank,max=50,fieldname"`
	FieldType *string `json:"fieldType" binding:"omitempty,oneof=text number date textarea multiline"`
	IsActive  *bool   `json:"isActive"`
}

type CustomFieldResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FieldName string    `json:"fieldName"`
	FieldType string    `json:"fieldType"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// --- Interface ---

type CustomFieldService interface {
	CreateCustomField(ctx context.Context, userID string, req CreateCustomFieldRequest) (CustomFieldResponse, error)
	ListCustomFields(ctx context.Context, userID string, includeInactive bool) ([]CustomFieldResponse, error)
	GetCustomField(ctx context.Context, userID, id string) (CustomFieldResponse, error)
	UpdateCustomField(ctx context.Context, userID, id string, req UpdateCustomFieldRequest) (CustomFieldResponse, error)
	// DeleteCustomField deactivates the field, or removes it when hard is set and no invoice line uses it.
	DeleteCustomField(ctx context.Context, userID, id string, hard bool) (string, error)
}

// --- Implementation ---

type customFieldService struct {
	repo      repository.CustomFieldRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewCustomFieldService(repo repository.CustomFieldRepository, auditRepo repository.AuditRepository, txManager repository.TransactionManager) CustomFieldService {
	return &customFieldService{repo: repo, auditRepo: auditRepo, txManager: txManager}
}

const (
	errCustomFieldNotFound = "Custom field not found"
	errCustomFieldExists   = "A custom field with this name already exists"
)

// normalizeFieldType folds the multiline alias into textarea.
func normalizeFieldType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "multiline" {
		return model.FieldTypeTextarea
	}
	return t
}

func (s *customFieldService) CreateCustomField(ctx context.Context, userID string, req CreateCustomFieldRequest) (CustomFieldResponse, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return CustomFieldResponse{}, err
	}
	field := &model.CustomField{
		UserID:    uid,
		FieldName: strings.TrimSpace(req.FieldName),
		FieldType: normalizeFieldType(req.FieldType),
		IsActive:  true,
	}
	if err := s.ensureNameFree(ctx, uid, field.FieldName, uuid.Nil); err != nil {
		return CustomFieldResponse{}, err
	}
	if err := s.repo.Create(ctx, field); err != nil {
		if isDuplicate(err) {
			return CustomFieldResponse{}, apperr.Conflict(errCustomFieldExists)
		}
		return CustomFieldResponse{}, fmt.Errorf("failed to create custom field: %w", err)
	}
	return toCustomFieldResponse(field), nil
}

func (s *customFieldService) ListCustomFields(ctx context.Context, userID string, includeInactive bool) ([]CustomFieldResponse, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	fields, err := s.repo.List(ctx, uid, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom fields: %w", err)
	}
	res := make([]CustomFieldResponse, 0, len(fields))
	for i := range fields {
		res = append(res, toCustomFieldResponse(&fields[i]))
	}
	return res, nil
}

func (s *customFieldService) GetCustomField(ctx context.Context, userID, id string) (CustomFieldResponse, error) {
	field, err := s.load(ctx, userID, id)
	if err != nil {
		return CustomFieldResponse{}, err
	}
	return toCustomFieldResponse(field), nil
}

func (s *customFieldService) UpdateCustomField(ctx context.Context, userID, id string, req UpdateCustomFieldRequest) (CustomFieldResponse, error) {
	field, err := s.load(ctx, userID, id)
	if err != nil {
		return CustomFieldResponse{}, err
	}

	if v := trimPtr(req.FieldName); v != nil && *v != field.FieldName {
		if err := s.ensureNameFree(ctx, field.UserID, *v, field.ID); err != nil {
			return CustomFieldResponse{}, err
		}
		field.FieldName = *v
	}
	if req.FieldType != nil {
		field.FieldType = normalizeFieldType(*req.FieldType)
	}
	if req.IsActive != nil {
		field.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, field); err != nil {
		if isDuplicate(err) {
			return CustomFieldResponse{}, apperr.Conflict(errCustomFieldExists)
		}
		return CustomFieldResponse{}, fmt.Errorf("failed to update custom field: %w", err)
	}
	return toCustomFieldResponse(field), nil
}

func (s *customFieldService) DeleteCustomField(ctx context.Context, userID, id string, hard bool) (string, error) {
	field, err := s.load(ctx, userID, id)
	if err != nil {
		return "", err
	}

	if !hard {
		field.IsActive = false
		if err := s.repo.Update(ctx, field); err != nil {
			return "", fmt.Errorf("failed to deactivate custom field: %w", err)
		}
		return "Custom field deactivated successfully", nil
	}

	used, err := s.repo.CountInvoiceItems(ctx, field.ID)
	if err != nil {
		return "", err
	}
	if used > 0 {
		return "", apperr.Conflict("Cannot delete custom field that is used in invoices. Deactivate it instead.")
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, field.UserID, field.ID); err != nil {
			return fmt.Errorf("failed to delete custom field: %w", err)
		}
		return recordAudit(txCtx, s.auditRepo, field.UserID, model.ActionDeleteCustomField,
			field.ID.String(), field.FieldName, map[string]interface{}{"fieldType": field.FieldType})
	})
	if err != nil {
		return "", err
	}
	return "Custom field deleted successfully", nil
}

func (s *customFieldService) load(ctx context.Context, userID, id string) (*model.CustomField, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	fid, err := parseID(id, "custom field")
	if err != nil {
		return nil, err
	}
	field, err := s.repo.FindByID(ctx, uid, fid)
	if err != nil {
		return nil, notFound(err, errCustomFieldNotFound)
	}
	return field, nil
}

func (s *customFieldService) ensureNameFree(ctx context.Context, userID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.repo.FindByName(ctx, userID, name)
	switch {
	case err == nil && existing.ID != self:
		return apperr.Conflict(errCustomFieldExists)
	case err != nil && !isNotFound(err):
		return err
	}
	return nil
}

// --- Response mappers ---

func toCustomFieldResponse(f *model.CustomField) CustomFieldResponse {
	return CustomFieldResponse{
		ID:        f.ID.String(),
		UserID:    f.UserID.String(),
		FieldName: f.FieldName,
		FieldType: f.FieldType,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
