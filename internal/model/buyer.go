package model

import "github.com/google/uuid"

// RegistrationType values for Buyer.RegistrationType.
const (
	RegistrationRegistered   = "Registered"
	RegistrationUnregistered = "Unregistered"
)

// Buyer is a counterparty owned by one seller.
type Buyer struct {
	Base
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	NTNCNIC          string    `gorm:"column:ntncnic;type:varchar(50);not null" json:"ntncnic"`
	BusinessName     string    `gorm:"type:varchar(255);not null" json:"businessName"`
	Province         string    `gorm:"type:varchar(100);not null" json:"province"`
	Address          string    `gorm:"type:text;not null" json:"address"`
	RegistrationType string    `gorm:"type:varchar(20);not null" json:"registrationType"`
}
