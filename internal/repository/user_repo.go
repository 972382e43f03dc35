package repository

import (
	"context"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines the interface for data access of User entities
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, search string, page, limit int) ([]model.User, int64, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(GetDB(ctx, r.db).Create(user).Error)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, search string, page, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := GetDB(ctx, r.db).Model(&model.User{})
	if search != "" {
		p := likePattern(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(business_name) LIKE ?", p, p, p)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at desc").Offset(offset(page, limit)).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return translate(GetDB(ctx, r.db).Save(user).Error)
}

// Delete removes the user together with every row they own. Callers run it inside a transaction.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	invoiceIDs := db.Model(&model.Invoice{}).Select("id").Where("user_id = ?", id)
	if err := db.Where("invoice_id IN (?)", invoiceIDs).Delete(&model.InvoiceItem{}).Error; err != nil {
		return err
	}
	if err := db.Model(&model.AuditLog{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
		return err
	}
	owned := []interface{}{
		&model.Invoice{}, &model.Buyer{}, &model.HSCode{}, &model.Scenario{},
		&model.CustomField{}, &model.PrintSettings{},
	}
	for _, m := range owned {
		if err := db.Where("user_id = ?", id).Delete(m).Error; err != nil {
			return err
		}
	}
	return db.Where("id = ?", id).Delete(&model.User{}).Error
}
