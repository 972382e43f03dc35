package model

import "github.com/google/uuid"

// CustomField types.
const (
	FieldTypeText     = "text"
	FieldTypeNumber   = "number"
	FieldTypeDate     = "date"
	FieldTypeTextarea = "textarea"
)

// CustomField is a user-defined extra attribute on invoice lines.
type CustomField struct {
	Base
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_custom_fields_user_name" json:"userId"`
	FieldName string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_custom_fields_user_name" json:"fieldName"`
	FieldType string    `gorm:"type:varchar(20);not null" json:"fieldType"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
}
