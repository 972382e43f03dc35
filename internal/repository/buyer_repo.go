package repository

import (
	"context"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuyerRepository interface {
	Create(ctx context.Context, buyer *model.Buyer) error
	Update(ctx context.Context, buyer *model.Buyer) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Buyer, error)
	List(ctx context.Context, userID uuid.UUID, search string, page, limit int) ([]model.Buyer, int64, error)
	CountInvoices(ctx context.Context, buyerID uuid.UUID) (int64, error)
}

type buyerRepository struct {
	db *gorm.DB
}

func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, buyer *model.Buyer) error {
	return GetDB(ctx, r.db).Create(buyer).Error
}

func (r *buyerRepository) Update(ctx context.Context, buyer *model.Buyer) error {
	return GetDB(ctx, r.db).Save(buyer).Error
}

func (r *buyerRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Buyer{}).Error
}

// FindByID only returns buyers owned by userID.
func (r *buyerRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := GetDB(ctx, r.db).First(&buyer, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &buyer, nil
}

func (r *buyerRepository) List(ctx context.Context, userID uuid.UUID, search string, page, limit int) ([]model.Buyer, int64, error) {
	var buyers []model.Buyer
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Buyer{}).Where("user_id = ?", userID)
	if search != "" {
		p := likePattern(search)
		query = query.Where("LOWER(business_name) LIKE ? OR LOWER(ntncnic) LIKE ?", p, p)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Offset(offset(page, limit)).Limit(limit).Find(&buyers).Error; err != nil {
		return nil, 0, err
	}
	return buyers, total, nil
}

func (r *buyerRepository) CountInvoices(ctx context.Context, buyerID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).Where("buyer_id = ?", buyerID).Count(&count).Error
	return count, err
}
