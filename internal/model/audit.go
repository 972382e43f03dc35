package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionSubmitInvoice     = "SUBMIT_INVOICE"
	ActionDeleteInvoice     = "DELETE_INVOICE"
	ActionAssignScenario    = "ASSIGN_SCENARIO"
	ActionUnassignScenario  = "UNASSIGN_SCENARIO"
	ActionDeleteCustomField = "DELETE_CUSTOM_FIELD"
)

// AuditLog tracks who changed what and when for submissions and scenario grants.
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"userId"`
	User       *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string         `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string         `gorm:"type:varchar(50);index" json:"entityId"`
	EntityName string         `gorm:"type:varchar(255)" json:"entityName,omitempty"`
	Details    datatypes.JSON `json:"details"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
