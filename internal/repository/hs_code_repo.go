package repository

import (
	"context"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HSCodeRepository interface {
	Create(ctx context.Context, code *model.HSCode) error
	Update(ctx context.Context, code *model.HSCode) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.HSCode, error)
	FindByCode(ctx context.Context, userID uuid.UUID, code string) (*model.HSCode, error)
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]model.HSCode, error)
	List(ctx context.Context, userID uuid.UUID, search string, page, limit int) ([]model.HSCode, int64, error)
	CountInvoiceItems(ctx context.Context, id uuid.UUID) (int64, error)
}

type hsCodeRepository struct {
	db *gorm.DB
}

func NewHSCodeRepository(db *gorm.DB) HSCodeRepository {
	return &hsCodeRepository{db: db}
}

func (r *hsCodeRepository) Create(ctx context.Context, code *model.HSCode) error {
	return translate(GetDB(ctx, r.db).Create(code).Error)
}

func (r *hsCodeRepository) Update(ctx context.Context, code *model.HSCode) error {
	return translate(GetDB(ctx, r.db).Save(code).Error)
}

func (r *hsCodeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.HSCode{}).Error
}

func (r *hsCodeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.HSCode, error) {
	var code model.HSCode
	if err := GetDB(ctx, r.db).First(&code, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &code, nil
}

func (r *hsCodeRepository) FindByCode(ctx context.Context, userID uuid.UUID, code string) (*model.HSCode, error) {
	var hs model.HSCode
	if err := GetDB(ctx, r.db).First(&hs, "user_id = ? AND hs_code = ?", userID, code).Error; err != nil {
		return nil, translate(err)
	}
	return &hs, nil
}

// FindByIDs resolves a batch in one query; ids not owned by userID are simply absent.
func (r *hsCodeRepository) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]model.HSCode, error) {
	var codes []model.HSCode
	if len(ids) == 0 {
		return codes, nil
	}
	err := GetDB(ctx, r.db).Where("id IN ? AND user_id = ?", ids, userID).Find(&codes).Error
	return codes, err
}

func (r *hsCodeRepository) List(ctx context.Context, userID uuid.UUID, search string, page, limit int) ([]model.HSCode, int64, error) {
	var codes []model.HSCode
	var total int64

	query := GetDB(ctx, r.db).Model(&model.HSCode{}).Where("user_id = ?", userID)
	if search != "" {
		p := likePattern(search)
		query = query.Where("LOWER(hs_code) LIKE ? OR LOWER(description) LIKE ?", p, p)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Offset(offset(page, limit)).Limit(limit).Find(&codes).Error; err != nil {
		return nil, 0, err
	}
	return codes, total, nil
}

func (r *hsCodeRepository) CountInvoiceItems(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.InvoiceItem{}).Where("hs_code_id = ?", id).Count(&count).Error
	return count, err
}
