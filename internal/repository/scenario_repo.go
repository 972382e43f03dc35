package repository

import (
	"context"
	"time"

	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GlobalScenarioRepository stores the admin-curated scenario catalog.
type GlobalScenarioRepository interface {
	Create(ctx context.Context, scenario *model.GlobalScenario) error
	Update(ctx context.Context, scenario *model.GlobalScenario) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GlobalScenario, error)
	FindByCode(ctx context.Context, code string) (*model.GlobalScenario, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.GlobalScenario, error)
	FindByCodes(ctx context.Context, codes []string) ([]model.GlobalScenario, error)
	List(ctx context.Context, search string, page, limit int) ([]model.GlobalScenario, int64, error)
}

type globalScenarioRepository struct {
	db *gorm.DB
}

func NewGlobalScenarioRepository(db *gorm.DB) GlobalScenarioRepository {
	return &globalScenarioRepository{db: db}
}

func (r *globalScenarioRepository) Create(ctx context.Context, scenario *model.GlobalScenario) error {
	return translate(GetDB(ctx, r.db).Create(scenario).Error)
}

func (r *globalScenarioRepository) Update(ctx context.Context, scenario *model.GlobalScenario) error {
	return translate(GetDB(ctx, r.db).Save(scenario).Error)
}

func (r *globalScenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.GlobalScenario{}).Error
}

func (r *globalScenarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GlobalScenario, error) {
	var scenario model.GlobalScenario
	if err := GetDB(ctx, r.db).First(&scenario, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &scenario, nil
}

func (r *globalScenarioRepository) FindByCode(ctx context.Context, code string) (*model.GlobalScenario, error) {
	var scenario model.GlobalScenario
	if err := GetDB(ctx, r.db).First(&scenario, "scenario_code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &scenario, nil
}

func (r *globalScenarioRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.GlobalScenario, error) {
	var scenarios []model.GlobalScenario
	if len(ids) == 0 {
		return scenarios, nil
	}
	err := GetDB(ctx, r.db).Where("id IN ?", ids).Order("scenario_code asc").Find(&scenarios).Error
	return scenarios, err
}

func (r *globalScenarioRepository) FindByCodes(ctx context.Context, codes []string) ([]model.GlobalScenario, error) {
	var scenarios []model.GlobalScenario
	if len(codes) == 0 {
		return scenarios, nil
	}
	err := GetDB(ctx, r.db).Where("scenario_code IN ?", codes).Order("scenario_code asc").Find(&scenarios).Error
	return scenarios, err
}

func (r *globalScenarioRepository) List(ctx context.Context, search string, page, limit int) ([]model.GlobalScenario, int64, error) {
	var scenarios []model.GlobalScenario
	var total int64

	query := GetDB(ctx, r.db).Model(&model.GlobalScenario{})
	if search != "" {
		p := likePattern(search)
		query = query.Where("LOWER(scenario_code) LIKE ? OR LOWER(scenario_description) LIKE ?", p, p)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("scenario_code asc").Offset(offset(page, limit)).Limit(limit).Find(&scenarios).Error; err != nil {
		return nil, 0, err
	}
	return scenarios, total, nil
}

// ScenarioRepository stores per-user scenario assignments.
type ScenarioRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, global *model.GlobalScenario) (*model.Scenario, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Scenario, error)
	FindByCode(ctx context.Context, userID uuid.UUID, code string) (*model.Scenario, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCode(ctx context.Context, code string) (int64, error)
	CountInvoices(ctx context.Context, userID, scenarioID uuid.UUID) (int64, error)
}

type scenarioRepository struct {
	db *gorm.DB
}

func NewScenarioRepository(db *gorm.DB) ScenarioRepository {
	return &scenarioRepository{db: db}
}

// Upsert grants global to userID keyed on (user_id, scenario_code), refreshing the copied
// description and sales type when the grant already exists.
func (r *scenarioRepository) Upsert(ctx context.Context, userID uuid.UUID, global *model.GlobalScenario) (*model.Scenario, error) {
	row := model.Scenario{
		UserID:              userID,
		ScenarioCode:        global.ScenarioCode,
		ScenarioDescription: global.ScenarioDescription,
		SalesType:           global.SalesType,
	}
	err := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "scenario_code"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"scenario_description": global.ScenarioDescription,
			"sales_type":           global.SalesType,
			"updated_at":           time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return r.FindByCode(ctx, userID, global.ScenarioCode)
}

func (r *scenarioRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Scenario, error) {
	var scenario model.Scenario
	if err := GetDB(ctx, r.db).First(&scenario, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err)
	}
	return &scenario, nil
}

func (r *scenarioRepository) FindByCode(ctx context.Context, userID uuid.UUID, code string) (*model.Scenario, error) {
	var scenario model.Scenario
	if err := GetDB(ctx, r.db).First(&scenario, "user_id = ? AND scenario_code = ?", userID, code).Error; err != nil {
		return nil, translate(err)
	}
	return &scenario, nil
}

func (r *scenarioRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Scenario, error) {
	var scenarios []model.Scenario
	err := GetDB(ctx, r.db).Where("user_id = ?", userID).Order("scenario_code asc").Find(&scenarios).Error
	return scenarios, err
}

func (r *scenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Scenario{}).Error
}

func (r *scenarioRepository) CountByCode(ctx context.Context, code string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Scenario{}).Where("scenario_code = ?", code).Count(&count).Error
	return count, err
}

func (r *scenarioRepository) CountInvoices(ctx context.Context, userID, scenarioID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).
		Where("user_id = ? AND scenario_id = ?", userID, scenarioID).
		Count(&count).Error
	return count, err
}
