package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Font sizes accepted by PrintSettings.FontSize.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// PrintSettings is the per-user invoice layout. VisibleFields is ordered; ColumnWidths is
// keyed by the same field keys and holds percentages.
type PrintSettings struct {
	Base
	UserID          uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	VisibleFields   datatypes.JSONType[[]string]       `gorm:"column:visible_fields;not null" json:"visibleFields"`
	ColumnWidths    datatypes.JSONType[map[string]int] `gorm:"column:column_widths;not null" json:"columnWidths"`
	FontSize        string                             `gorm:"type:varchar(10);not null" json:"fontSize"`
	TableBorders    bool                               `gorm:"not null" json:"tableBorders"`
	ShowItemNumbers bool                               `gorm:"not null" json:"showItemNumbers"`
}

func (PrintSettings) TableName() string { return "invoice_print_settings" }
