package service

import (
	"context"
	"fmt"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/printlayout"
	"fbr-invoice-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- DTOs ---

type SavePrintSettingsRequest struct {
	VisibleFields   []string       `json:"visibleFields" binding:"required"`
	ColumnWidths    map[string]int `json:"columnWidths" binding:"required"`
	FontSize        string         `json:"fontSize" binding:"omitempty,oneof=small medium large"`
	TableBorders    *bool          `json:"tableBorders"`
	ShowItemNumbers *bool          `json:"showItemNumbers"`
}

type PrintSettingsResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	VisibleFields   []string       `json:"visibleFields"`
	ColumnWidths    map[string]int `json:"columnWidths"`
	FontSize        string         `json:"fontSize"`
	TableBorders    bool           `json:"tableBorders"`
	ShowItemNumbers bool           `json:"showItemNumbers"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// GetPrintSettingsResponse carries either the stored settings or, when nothing is stored, the defaults.
type GetPrintSettingsResponse struct {
	PrintSettings   *PrintSettingsResponse `json:"printSettings"`
	DefaultSettings *printlayout.Layout    `json:"defaultSettings,omitempty"`
}

type AvailableFieldsResponse struct {
	Fields       []printlayout.Field    `json:"fields"`
	CustomFields []printlayout.Field    `json:"customFields"`
	Categories   []printlayout.Category `json:"categories"`
}

// --- Interface ---

type PrintSettingsService interface {
	GetPrintSettings(ctx context.Context, userID string) (GetPrintSettingsResponse, error)
	// SavePrintSettings validates and upserts; the returned string is a non-blocking width warning.
	SavePrintSettings(ctx context.Context, userID string, req SavePrintSettingsRequest) (PrintSettingsResponse, string, error)
	ResetPrintSettings(ctx context.Context, userID string) error
	AvailableFields(ctx context.Context, userID string) (AvailableFieldsResponse, error)
	// Layout returns the effective layout for rendering: the pruned stored settings or the defaults.
	Layout(ctx context.Context, userID uuid.UUID) (printlayout.Layout, error)
}

// --- Implementation ---

type printSettingsService struct {
	repo            repository.PrintSettingsRepository
	customFieldRepo repository.CustomFieldRepository
}

func NewPrintSettingsService(repo repository.PrintSettingsRepository, customFieldRepo repository.CustomFieldRepository) PrintSettingsService {
	return &printSettingsService{repo: repo, customFieldRepo: customFieldRepo}
}

func (s *printSettingsService) GetPrintSettings(ctx context.Context, userID string) (GetPrintSettingsResponse, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return GetPrintSettingsResponse{}, err
	}
	settings, err := s.loadPruned(ctx, uid)
	if err != nil {
		return GetPrintSettingsResponse{}, err
	}
	if settings == nil {
		def := printlayout.Default()
		return GetPrintSettingsResponse{DefaultSettings: &def}, nil
	}
	res := toPrintSettingsResponse(settings)
	return GetPrintSettingsResponse{PrintSettings: &res}, nil
}

func (s *printSettingsService) Layout(ctx context.Context, userID uuid.UUID) (printlayout.Layout, error) {
	settings, err := s.loadPruned(ctx, userID)
	if err != nil {
		return printlayout.Layout{}, err
	}
	if settings == nil {
		return printlayout.Default(), nil
	}
	return toLayout(settings), nil
}

// loadPruned returns nil when the user has saved nothing. References to custom fields that are
// gone or inactive are removed and the cleaned row is written back.
func (s *printSettingsService) loadPruned(ctx context.Context, userID uuid.UUID) (*model.PrintSettings, error) {
	settings, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch print settings: %w", err)
	}

	active, err := s.customFieldRepo.List(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom fields: %w", err)
	}
	activeKeys := make(map[string]bool, len(active))
	for _, f := range active {
		activeKeys[printlayout.CustomFieldKey(f.ID)] = true
	}

	layout := toLayout(settings)
	if layout.Prune(func(key string) bool { return activeKeys[key] }) {
		settings.VisibleFields = datatypes.NewJSONType(layout.VisibleFields)
		settings.ColumnWidths = datatypes.NewJSONType(layout.ColumnWidths)
		if err := s.repo.UpdateLayout(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to update print settings: %w", err)
		}
	}
	return settings, nil
}

func (s *printSettingsService) SavePrintSettings(ctx context.Context, userID string, req SavePrintSettingsRequest) (PrintSettingsResponse, string, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return PrintSettingsResponse{}, "", err
	}

	// Keys must be built-in or well-formed custom field references. Custom keys are stored in
	// canonical form so later pruning matches them against CustomFieldKey.
	var (
		invalid   []apperr.FieldError
		customIDs []uuid.UUID
	)
	visible := make([]string, 0, len(req.VisibleFields))
	for _, key := range req.VisibleFields {
		if printlayout.IsCustomFieldKey(key) {
			id, ok := printlayout.ParseCustomFieldKey(key)
			if !ok {
				invalid = append(invalid, apperr.FieldError{Field: key, Message: "Invalid custom field ID format"})
				continue
			}
			customIDs = append(customIDs, id)
			visible = append(visible, printlayout.CustomFieldKey(id))
			continue
		}
		visible = append(visible, key)
		if _, ok := printlayout.Builtin(key); !ok {
			invalid = append(invalid, apperr.FieldError{Field: key, Message: "Unknown field"})
		}
	}
	if len(invalid) > 0 {
		return PrintSettingsResponse{}, "", apperr.Validation(
			fmt.Sprintf("Validation failed: %d field(s) are invalid", len(invalid)), invalid...)
	}

	// Referenced custom fields must be owned and active.
	if len(customIDs) > 0 {
		found, err := s.customFieldRepo.FindByIDs(ctx, uid, customIDs)
		if err != nil {
			return PrintSettingsResponse{}, "", fmt.Errorf("failed to fetch custom fields: %w", err)
		}
		active := make(map[uuid.UUID]bool, len(found))
		for _, f := range found {
			if f.IsActive {
				active[f.ID] = true
			}
		}
		var missing []apperr.FieldError
		for _, id := range customIDs {
			if !active[id] {
				missing = append(missing, apperr.FieldError{
					Field:   printlayout.CustomFieldKey(id),
					Message: "Custom field not found, inactive, or does not belong to your account",
				})
			}
		}
		if len(missing) > 0 {
			return PrintSettingsResponse{}, "", apperr.Validation(
				fmt.Sprintf("Validation failed: %d custom field(s) are invalid", len(missing)), missing...)
		}
	}

	supplied := make(map[string]int, len(req.ColumnWidths))
	for key, w := range req.ColumnWidths {
		if w < printlayout.MinColumnWidth || w > printlayout.MaxColumnWidth {
			return PrintSettingsResponse{}, "", apperr.BadRequest(fmt.Sprintf("Width for %s must be between 1-50%%", key))
		}
		if id, ok := printlayout.ParseCustomFieldKey(key); ok {
			key = printlayout.CustomFieldKey(id)
		}
		supplied[key] = w
	}
	// Only visible fields keep a width.
	widths := make(map[string]int, len(visible))
	for _, key := range visible {
		w, ok := supplied[key]
		if !ok {
			return PrintSettingsResponse{}, "", apperr.BadRequest("Missing width for field: " + key)
		}
		widths[key] = w
	}

	switch n := len(visible); {
	case n < printlayout.MinVisibleFields:
		return PrintSettingsResponse{}, "", apperr.BadRequest("At least 1 field must be visible")
	case n > printlayout.MaxVisibleFields:
		return PrintSettingsResponse{}, "", apperr.BadRequest("Maximum 20 fields allowed (including custom fields)")
	}

	layout := printlayout.Layout{
		VisibleFields:   visible,
		ColumnWidths:    widths,
		FontSize:        req.FontSize,
		TableBorders:    boolOr(req.TableBorders, true),
		ShowItemNumbers: boolOr(req.ShowItemNumbers, true),
	}
	if layout.FontSize == "" {
		layout.FontSize = model.FontSmall
	}

	var warning string
	if total := layout.TotalWidth(); total < printlayout.RecommendedWidthLow || total > printlayout.RecommendedWidthHigh {
		warning = fmt.Sprintf("Total column width is %d%%. Recommended: 100%%", total)
	}

	saved, err := s.repo.Upsert(ctx, &model.PrintSettings{
		UserID:          uid,
		VisibleFields:   datatypes.NewJSONType(layout.VisibleFields),
		ColumnWidths:    datatypes.NewJSONType(layout.ColumnWidths),
		FontSize:        layout.FontSize,
		TableBorders:    layout.TableBorders,
		ShowItemNumbers: layout.ShowItemNumbers,
	})
	if err != nil {
		return PrintSettingsResponse{}, "", fmt.Errorf("failed to save print settings: %w", err)
	}
	return toPrintSettingsResponse(saved), warning, nil
}

func (s *printSettingsService) ResetPrintSettings(ctx context.Context, userID string) error {
	uid, err := parseID(userID, "user")
	if err != nil {
		return err
	}
	if _, err := s.repo.DeleteByUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to reset print settings: %w", err)
	}
	return nil
}

func (s *printSettingsService) AvailableFields(ctx context.Context, userID string) (AvailableFieldsResponse, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return AvailableFieldsResponse{}, err
	}
	active, err := s.customFieldRepo.List(ctx, uid, false)
	if err != nil {
		return AvailableFieldsResponse{}, fmt.Errorf("failed to fetch custom fields: %w", err)
	}
	custom := make([]printlayout.Field, 0, len(active))
	for _, f := range active {
		custom = append(custom, printlayout.CustomField(f.ID, f.FieldName, f.FieldType))
	}
	return AvailableFieldsResponse{
		Fields:       printlayout.BuiltinFields,
		CustomFields: custom,
		Categories:   printlayout.Categories,
	}, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// --- Response mappers ---

func toLayout(p *model.PrintSettings) printlayout.Layout {
	return printlayout.Layout{
		VisibleFields:   p.VisibleFields.Data(),
		ColumnWidths:    p.ColumnWidths.Data(),
		FontSize:        p.FontSize,
		TableBorders:    p.TableBorders,
		ShowItemNumbers: p.ShowItemNumbers,
	}
}

func toPrintSettingsResponse(p *model.PrintSettings) PrintSettingsResponse {
	visible := p.VisibleFields.Data()
	if visible == nil {
		visible = []string{}
	}
	widths := p.ColumnWidths.Data()
	if widths == nil {
		widths = map[string]int{}
	}
	return PrintSettingsResponse{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		VisibleFields:   visible,
		ColumnWidths:    widths,
		FontSize:        p.FontSize,
		TableBorders:    p.TableBorders,
		ShowItemNumbers: p.ShowItemNumbers,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
