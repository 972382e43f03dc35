package repository

import (
	"context"
	"time"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrintSettingsRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.PrintSettings, error)
	Upsert(ctx context.Context, settings *model.PrintSettings) (*model.PrintSettings, error)
	UpdateLayout(ctx context.Context, settings *model.PrintSettings) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

type printSettingsRepository struct {
	db *gorm.DB
}

func NewPrintSettingsRepository(db *gorm.DB) PrintSettingsRepository {
	return &printSettingsRepository{db: db}
}

func (r *printSettingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.PrintSettings, error) {
	var settings model.PrintSettings
	if err := GetDB(ctx, r.db).First(&settings, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

// Upsert keeps one row per user; concurrent saves resolve as last write wins.
func (r *printSettingsRepository) Upsert(ctx context.Context, settings *model.PrintSettings) (*model.PrintSettings, error) {
	err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"visible_fields":    settings.VisibleFields,
			"column_widths":     settings.ColumnWidths,
			"font_size":         settings.FontSize,
			"table_borders":     settings.TableBorders,
			"show_item_numbers": settings.ShowItemNumbers,
			"updated_at":        time.Now(),
		}),
	}).Create(settings).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUser(ctx, settings.UserID)
}

// UpdateLayout writes back the visible fields and widths only.
func (r *printSettingsRepository) UpdateLayout(ctx context.Context, settings *model.PrintSettings) error {
	return GetDB(ctx, r.db).Model(settings).Updates(map[string]interface{}{
		"visible_fields": settings.VisibleFields,
		"column_widths":  settings.ColumnWidths,
	}).Error
}

func (r *printSettingsRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	res := GetDB(ctx, r.db).Where("user_id = ?", userID).Delete(&model.PrintSettings{})
	return res.RowsAffected > 0, res.Error
}
