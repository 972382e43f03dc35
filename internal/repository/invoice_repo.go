package repository

import (
	"context"
	"time"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceListFilter narrows GET /invoices. StartDate and EndDate apply only as a pair.
type InvoiceListFilter struct {
	UserID            uuid.UUID
	InvoiceType       string
	IsTestEnvironment *bool
	StartDate         *time.Time
	EndDate           *time.Time
	Page              int
	Limit             int
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Invoice, error)
	FindByIDWithRelations(ctx context.Context, userID, id uuid.UUID, withSeller bool) (*model.Invoice, error)
	List(ctx context.Context, filter InvoiceListFilter) ([]model.Invoice, int64, error)
	Delete(ctx context.Context, invoice *model.Invoice) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts the header and its Items in one statement group.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Omit("User", "Buyer", "Scenario").Create(invoice).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).First(&invoice, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindByIDWithRelations(ctx context.Context, userID, id uuid.UUID, withSeller bool) (*model.Invoice, error) {
	var invoice model.Invoice
	query := withRelations(GetDB(ctx, r.db))
	if withSeller {
		query = query.Preload("User")
	}
	if err := query.First(&invoice, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter InvoiceListFilter) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Invoice{}).Where("user_id = ?", filter.UserID)
	if filter.InvoiceType != "" {
		query = query.Where("invoice_type = ?", filter.InvoiceType)
	}
	if filter.IsTestEnvironment != nil {
		query = query.Where("is_test_environment = ?", *filter.IsTestEnvironment)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("invoice_date >= ? AND invoice_date <= ?", *filter.StartDate, *filter.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := withRelations(query).
		Order("created_at desc").
		Offset(offset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// Delete removes the invoice and its items.
func (r *invoiceRepository) Delete(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Select("Items").Delete(invoice).Error
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("line_no asc") }).
		Preload("Items.HSCodeRef").
		Preload("Buyer").
		Preload("Scenario")
}
