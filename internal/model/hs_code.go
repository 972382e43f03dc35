package model

import "github.com/google/uuid"

// HSCode is a tariff classification code registered by a seller.
type HSCode struct {
	Base
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hs_codes_user_code" json:"userId"`
	HSCode      string    `gorm:"column:hs_code;type:varchar(50);not null;uniqueIndex:idx_hs_codes_user_code" json:"hsCode"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
}

func (HSCode) TableName() string { return "hs_codes" }
