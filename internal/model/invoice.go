package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is one accepted submission to the FBR gateway.
// ScenarioID is nil for production submissions, which carry a sale type per item instead.
type Invoice struct {
	Base
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User              *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BuyerID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"buyerId"`
	Buyer             *Buyer         `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	ScenarioID        *uuid.UUID     `gorm:"type:uuid;index" json:"scenarioId"`
	Scenario          *Scenario      `gorm:"foreignKey:ScenarioID" json:"scenario,omitempty"`
	InvoiceType       string         `gorm:"type:varchar(50);not null;index" json:"invoiceType"`
	InvoiceDate       time.Time      `gorm:"type:date;not null;index" json:"invoiceDate"`
	InvoiceRefNo      string         `gorm:"type:varchar(100)" json:"invoiceRefNo"`
	FBRInvoiceNumber  *string        `gorm:"column:fbr_invoice_number;type:varchar(100);index" json:"fbrInvoiceNumber"`
	FBRResponse       datatypes.JSON `gorm:"column:fbr_response" json:"fbrResponse"`
	IsTestEnvironment bool           `gorm:"not null;index" json:"isTestEnvironment"`
	Items             []InvoiceItem  `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// ItemCustomField is a custom field value captured on an invoice line.
type ItemCustomField struct {
	CustomFieldID uuid.UUID `json:"customFieldId"`
	FieldName     string    `json:"fieldName"`
	Value         string    `json:"value"`
}

// InvoiceItem is one taxed line. HSCode holds the code string so production lines stay
// readable without the reference row.
type InvoiceItem struct {
	Base
	InvoiceID                       uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoiceId"`
	LineNo                          int             `gorm:"not null" json:"lineNo"`
	HSCodeID                        *uuid.UUID      `gorm:"column:hs_code_id;type:uuid;index" json:"hsCodeId"`
	HSCodeRef                       *HSCode         `gorm:"foreignKey:HSCodeID" json:"hsCodeRef,omitempty"`
	HSCode                          string          `gorm:"column:hs_code;type:varchar(50);not null" json:"hsCode"`
	ProductDescription              string          `gorm:"type:text;not null" json:"productDescription"`
	Rate                            string          `gorm:"type:varchar(50);not null" json:"rate"`
	UoM                             string          `gorm:"column:uom;type:varchar(100);not null" json:"uoM"`
	Quantity                        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	TotalValues                     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"totalValues"`
	ValueSalesExcludingST           decimal.Decimal `gorm:"column:value_sales_excluding_st;type:decimal(18,2);not null" json:"valueSalesExcludingST"`
	FixedNotifiedValueOrRetailPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"fixedNotifiedValueOrRetailPrice"`
	SalesTaxApplicable              decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"salesTaxApplicable"`
	SalesTaxWithheldAtSource        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"salesTaxWithheldAtSource"`
	ExtraTax                        string          `gorm:"type:varchar(50)" json:"extraTax"`
	FurtherTax                      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"furtherTax"`
	SroScheduleNo                   string          `gorm:"type:varchar(100)" json:"sroScheduleNo"`
	FedPayable                      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"fedPayable"`
	Discount                        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"discount"`
	SaleType                        string          `gorm:"type:varchar(255)" json:"saleType"`
	SroItemSerialNo                 string          `gorm:"type:varchar(100)" json:"sroItemSerialNo"`

	CustomFields datatypes.JSONType[[]ItemCustomField] `gorm:"column:custom_fields" json:"customFields"`
}
