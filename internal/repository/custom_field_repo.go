package repository

import (
	"context"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomFieldRepository interface {
	Create(ctx context.Context, field *model.CustomField) error
	Update(ctx context.Context, field *model.CustomField) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.CustomField, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*model.CustomField, error)
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]model.CustomField, error)
	List(ctx context.Context, userID uuid.UUID, includeInactive bool) ([]model.CustomField, error)
	CountInvoiceItems(ctx context.Context, id uuid.UUID) (int64, error)
}

type customFieldRepository struct {
	db *gorm.DB
}

func NewCustomFieldRepository(db *gorm.DB) CustomFieldRepository {
	return &customFieldRepository{db: db}
}

func (r *customFieldRepository) Create(ctx context.Context, field *model.CustomField) error {
	return translate(GetDB(ctx, r.db).Create(field).Error)
}

func (r *customFieldRepository) Update(ctx context.Context, field *model.CustomField) error {
	return translate(GetDB(ctx, r.db).Save(field).Error)
}

func (r *customFieldRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.CustomField{}).Error
}

func (r *customFieldRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.CustomField, error) {
	var field model.CustomField
	if err := GetDB(ctx, r.db).First(&field, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &field, nil
}

func (r *customFieldRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*model.CustomField, error) {
	var field model.CustomField
	if err := GetDB(ctx, r.db).First(&field, "user_id = ? AND field_name = ?", userID, name).Error; err != nil {
		return nil, translate(err)
	}
	return &field, nil
}

// FindByIDs returns the owned rows among ids regardless of their active flag.
func (r *customFieldRepository) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]model.CustomField, error) {
	var fields []model.CustomField
	if len(ids) == 0 {
		return fields, nil
	}
	err := GetDB(ctx, r.db).Where("id IN ? AND user_id = ?", ids, userID).Find(&fields).Error
	return fields, err
}

func (r *customFieldRepository) List(ctx context.Context, userID uuid.UUID, includeInactive bool) ([]model.CustomField, error) {
	var fields []model.CustomField
	query := GetDB(ctx, r.db).Where("user_id = ?", userID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("created_at asc").Find(&fields).Error
	return fields, err
}

// CountInvoiceItems counts lines whose stored custom values mention the field id.
func (r *customFieldRepository) CountInvoiceItems(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.InvoiceItem{}).
		Where("CAST(custom_fields AS TEXT) LIKE ?", "%"+id.String()+"%").
		Count(&count).Error
	return count, err
}
