package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	UserName   string          `json:"userName"`
	Action     string          `json:"action"`
	EntityID   string          `json:"entityId"`
	EntityName string          `json:"entityName"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// GetAuditLogs returns one page of entries, newest first, with the acting user attached.
func (s *auditService) GetAuditLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.List(ctx, action, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		userName := "System"
		userID := ""
		if l.User != nil {
			userName = l.User.Name
		}
		if l.UserID != nil {
			userID = l.UserID.String()
		}
		details := json.RawMessage(l.Details)
		if len(details) == 0 {
			details = json.RawMessage("null")
		}
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			UserName:   userName,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    details,
			CreatedAt:  l.CreatedAt,
		})
	}
	return res, total, nil
}

// recordAudit writes one entry through ctx's transaction when there is one.
func recordAudit(ctx context.Context, repo repository.AuditRepository, actor uuid.UUID, action, entityID, entityName string, details map[string]interface{}) error {
	entry := &model.AuditLog{
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
	}
	if actor != uuid.Nil {
		entry.UserID = &actor
	}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("encode audit details: %w", err)
		}
		entry.Details = datatypes.JSON(raw)
	}
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
