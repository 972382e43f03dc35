package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateGlobalScenarioRequest struct {
	ScenarioCode        string `json:"scenarioCode" binding:"required,notblank,max=50"`
	ScenarioDescription string `json:"scenarioDescription" binding:"required,notblank,min=3,max=500"`
	SalesType           string `json:"salesType" binding:"max=255"`
}

type UpdateGlobalScenarioRequest struct {
	ScenarioCode        *string `json:"scenarioCode" binding:"omitempty,notblank,max=50"`
	ScenarioDescription *string `json:"scenarioDescription" binding:"omitempty,min=3,max=500"`
	SalesType           *string `json:"salesType" binding:"omitempty,min=1,max=255"`
}

// AssignScenarioRequest links the global scenario ScenarioID to UserID.
type AssignScenarioRequest struct {
	UserID     string `json:"userId" binding:"required,uuid"`
	ScenarioID string `json:"scenarioId" binding:"required,uuid"`
}

type BulkAssignScenariosRequest struct {
	UserID        string   `json:"userId" binding:"required,uuid"`
	ScenarioIDs   []string `json:"scenarioIds" binding:"omitempty,dive,uuid"`
	ScenarioCodes []string `json:"scenarioCodes" binding:"omitempty,dive,notblank"`
}

type GlobalScenarioResponse struct {
	ID                  string    `json:"id"`
	ScenarioCode        string    `json:"scenarioCode"`
	ScenarioDescription string    `json:"scenarioDescription"`
	SalesType           string    `json:"salesType"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type ScenarioResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	ScenarioCode        string    `json:"scenarioCode"`
	ScenarioDescription string    `json:"scenarioDescription"`
	SalesType           string    `json:"salesType"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type ScenarioFailure struct {
	ScenarioID   string `json:"scenarioId,omitempty"`
	ScenarioCode string `json:"scenarioCode,omitempty"`
	Reason       string `json:"reason"`
}

type BulkAssignResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
	Failed    []ScenarioFailure  `json:"failed"`
}

// --- Interface ---

type ScenarioService interface {
	CreateGlobalScenario(ctx context.Context, req CreateGlobalScenarioRequest) (GlobalScenarioResponse, error)
	GetGlobalScenario(ctx context.Context, id string) (GlobalScenarioResponse, error)
	ListGlobalScenarios(ctx context.Context, search string, page, limit int) ([]GlobalScenarioResponse, int64, error)
	UpdateGlobalScenario(ctx context.Context, id string, req UpdateGlobalScenarioRequest) (GlobalScenarioResponse, error)
	DeleteGlobalScenario(ctx context.Context, id string) error

	AssignScenario(ctx context.Context, actorID string, req AssignScenarioRequest) (ScenarioResponse, error)
	UnassignScenario(ctx context.Context, actorID string, req AssignScenarioRequest) error
	BulkAssignScenarios(ctx context.Context, actorID string, req BulkAssignScenariosRequest) (BulkAssignResponse, error)
	ListUserScenarios(ctx context.Context, userID string) ([]ScenarioResponse, error)
}

// --- Implementation ---

type scenarioService struct {
	globalRepo   repository.GlobalScenarioRepository
	scenarioRepo repository.ScenarioRepository
	userRepo     repository.UserRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
}

func NewScenarioService(
	globalRepo repository.GlobalScenarioRepository,
	scenarioRepo repository.ScenarioRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) ScenarioService {
	return &scenarioService{
		globalRepo:   globalRepo,
		scenarioRepo: scenarioRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
	}
}

const (
	errGlobalScenarioNotFound = "Global scenario not found"
	errGlobalScenarioExists   = "Global scenario with this code already exists"
)

func (s *scenarioService) CreateGlobalScenario(ctx context.Context, req CreateGlobalScenarioRequest) (GlobalScenarioResponse, error) {
	scenario := &model.GlobalScenario{
		ScenarioCode:        strings.TrimSpace(req.ScenarioCode),
		ScenarioDescription: strings.TrimSpace(req.ScenarioDescription),
		SalesType:           req.SalesType,
	}
	if _, err := s.globalRepo.FindByCode(ctx, scenario.ScenarioCode); err == nil {
		return GlobalScenarioResponse{}, apperr.Conflict(errGlobalScenarioExists)
	} else if !isNotFound(err) {
		return GlobalScenarioResponse{}, err
	}
	if err := s.globalRepo.Create(ctx, scenario); err != nil {
		if isDuplicate(err) {
			return GlobalScenarioResponse{}, apperr.Conflict(errGlobalScenarioExists)
		}
		return GlobalScenarioResponse{}, fmt.Errorf("failed to create global scenario: %w", err)
	}
	return toGlobalScenarioResponse(scenario), nil
}

func (s *scenarioService) GetGlobalScenario(ctx context.Context, id string) (GlobalScenarioResponse, error) {
	scenario, err := s.loadGlobal(ctx, id)
	if err != nil {
		return GlobalScenarioResponse{}, err
	}
	return toGlobalScenarioResponse(scenario), nil
}

func (s *scenarioService) ListGlobalScenarios(ctx context.Context, search string, page, limit int) ([]GlobalScenarioResponse, int64, error) {
	scenarios, total, err := s.globalRepo.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch global scenarios: %w", err)
	}
	res := make([]GlobalScenarioResponse, 0, len(scenarios))
	for i := range scenarios {
		res = append(res, toGlobalScenarioResponse(&scenarios[i]))
	}
	return res, total, nil
}

func (s *scenarioService) UpdateGlobalScenario(ctx context.Context, id string, req UpdateGlobalScenarioRequest) (GlobalScenarioResponse, error) {
	scenario, err := s.loadGlobal(ctx, id)
	if err != nil {
		return GlobalScenarioResponse{}, err
	}

	if v := trimPtr(req.ScenarioCode); v != nil && *v != scenario.ScenarioCode {
		if _, err := s.globalRepo.FindByCode(ctx, *v); err == nil {
			return GlobalScenarioResponse{}, apperr.Conflict("Scenario code already in use")
		} else if !isNotFound(err) {
			return GlobalScenarioResponse{}, err
		}
		scenario.ScenarioCode = *v
	}
	if v := trimPtr(req.ScenarioDescription); v != nil {
		scenario.ScenarioDescription = *v
	}
	if req.SalesType != nil {
		scenario.SalesType = *req.SalesType
	}

	if err := s.globalRepo.Update(ctx, scenario); err != nil {
		if isDuplicate(err) {
			return GlobalScenarioResponse{}, apperr.Conflict("Scenario code already in use")
		}
		return GlobalScenarioResponse{}, fmt.Errorf("failed to update global scenario: %w", err)
	}
	return toGlobalScenarioResponse(scenario), nil
}

func (s *scenarioService) DeleteGlobalScenario(ctx context.Context, id string) error {
	scenario, err := s.loadGlobal(ctx, id)
	if err != nil {
		return err
	}
	assigned, err := s.scenarioRepo.CountByCode(ctx, scenario.ScenarioCode)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return apperr.Conflict("Cannot delete global scenario assigned to users")
	}
	return s.globalRepo.Delete(ctx, scenario.ID)
}

// AssignScenario upserts the grant on (user, code), refreshing the copied description and sales type.
func (s *scenarioService) AssignScenario(ctx context.Context, actorID string, req AssignScenarioRequest) (ScenarioResponse, error) {
	global, err := s.loadGlobal(ctx, req.ScenarioID)
	if err != nil {
		return ScenarioResponse{}, err
	}
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return ScenarioResponse{}, err
	}

	var assigned *model.Scenario
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		assigned, err = s.scenarioRepo.Upsert(txCtx, user.ID, global)
		if err != nil {
			return fmt.Errorf("failed to assign scenario: %w", err)
		}
		return s.audit(txCtx, actorID, model.ActionAssignScenario, assigned, user)
	})
	if err != nil {
		return ScenarioResponse{}, err
	}
	return toScenarioResponse(assigned), nil
}

// UnassignScenario removes the grant unless an invoice of that user still references it.
func (s *scenarioService) UnassignScenario(ctx context.Context, actorID string, req AssignScenarioRequest) error {
	global, err := s.loadGlobal(ctx, req.ScenarioID)
	if err != nil {
		return err
	}
	userID, err := parseID(req.UserID, "user")
	if err != nil {
		return err
	}

	existing, err := s.scenarioRepo.FindByCode(ctx, userID, global.ScenarioCode)
	if err != nil {
		return notFound(err, "Scenario not assigned to this user")
	}
	used, err := s.scenarioRepo.CountInvoices(ctx, userID, existing.ID)
	if err != nil {
		return err
	}
	if used > 0 {
		return apperr.Conflict("Cannot unassign scenario that is used in invoices")
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.scenarioRepo.Delete(txCtx, existing.ID); err != nil {
			return fmt.Errorf("failed to unassign scenario: %w", err)
		}
		return s.audit(txCtx, actorID, model.ActionUnassignScenario, existing, nil)
	})
}

// BulkAssignScenarios resolves ids (preferred) or codes, then upserts each match independently.
func (s *scenarioService) BulkAssignScenarios(ctx context.Context, actorID string, req BulkAssignScenariosRequest) (BulkAssignResponse, error) {
	user, err := s.loadUser(ctx, req.UserID)
	if err != nil {
		return BulkAssignResponse{}, err
	}

	var (
		globals []model.GlobalScenario
		failed  = make([]ScenarioFailure, 0)
	)
	switch {
	case len(req.ScenarioIDs) > 0:
		ids := make([]uuid.UUID, 0, len(req.ScenarioIDs))
		for _, raw := range req.ScenarioIDs {
			id, err := parseID(raw, "scenario")
			if err != nil {
				return BulkAssignResponse{}, err
			}
			ids = append(ids, id)
		}
		globals, err = s.globalRepo.FindByIDs(ctx, ids)
		if err != nil {
			return BulkAssignResponse{}, err
		}
		found := make(map[uuid.UUID]bool, len(globals))
		for _, g := range globals {
			found[g.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				failed = append(failed, ScenarioFailure{ScenarioID: id.String(), Reason: errGlobalScenarioNotFound})
			}
		}
	case len(req.ScenarioCodes) > 0:
		codes := make([]string, 0, len(req.ScenarioCodes))
		for _, c := range req.ScenarioCodes {
			codes = append(codes, strings.TrimSpace(c))
		}
		globals, err = s.globalRepo.FindByCodes(ctx, codes)
		if err != nil {
			return BulkAssignResponse{}, err
		}
		found := make(map[string]bool, len(globals))
		for _, g := range globals {
			found[g.ScenarioCode] = true
		}
		for _, c := range codes {
			if !found[c] {
				failed = append(failed, ScenarioFailure{ScenarioCode: c, Reason: errGlobalScenarioNotFound})
			}
		}
	default:
		return BulkAssignResponse{}, apperr.BadRequest("Provide scenarioIds or scenarioCodes array")
	}

	if len(globals) == 0 {
		return BulkAssignResponse{}, apperr.NotFound("No matching global scenarios found")
	}

	res := BulkAssignResponse{Scenarios: make([]ScenarioResponse, 0, len(globals)), Failed: failed}
	for i := range globals {
		g := &globals[i]
		var assigned *model.Scenario
		err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
			row, err := s.scenarioRepo.Upsert(txCtx, user.ID, g)
			if err != nil {
				return err
			}
			if err := s.audit(txCtx, actorID, model.ActionAssignScenario, row, user); err != nil {
				return err
			}
			assigned = row
			return nil
		})
		if err != nil {
			res.Failed = append(res.Failed, ScenarioFailure{
				ScenarioID:   g.ID.String(),
				ScenarioCode: g.ScenarioCode,
				Reason:       "Failed to assign scenario",
			})
			continue
		}
		res.Scenarios = append(res.Scenarios, toScenarioResponse(assigned))
	}
	return res, nil
}

func (s *scenarioService) ListUserScenarios(ctx context.Context, userID string) ([]ScenarioResponse, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	scenarios, err := s.scenarioRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scenarios: %w", err)
	}
	res := make([]ScenarioResponse, 0, len(scenarios))
	for i := range scenarios {
		res = append(res, toScenarioResponse(&scenarios[i]))
	}
	return res, nil
}

func (s *scenarioService) loadGlobal(ctx context.Context, id string) (*model.GlobalScenario, error) {
	gid, err := parseID(id, "scenario")
	if err != nil {
		return nil, err
	}
	scenario, err := s.globalRepo.FindByID(ctx, gid)
	if err != nil {
		return nil, notFound(err, errGlobalScenarioNotFound)
	}
	return scenario, nil
}

func (s *scenarioService) loadUser(ctx context.Context, id string) (*model.User, error) {
	uid, err := parseID(id, "user")
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return user, nil
}

func (s *scenarioService) audit(ctx context.Context, actorID, action string, scenario *model.Scenario, user *model.User) error {
	actor, _ := uuid.Parse(actorID)
	details := map[string]interface{}{
		"userId":       scenario.UserID.String(),
		"scenarioCode": scenario.ScenarioCode,
	}
	if user != nil {
		details["userEmail"] = user.Email
	}
	return recordAudit(ctx, s.auditRepo, actor, action, scenario.ID.String(), scenario.ScenarioCode, details)
}

// --- Response mappers ---

func toGlobalScenarioResponse(g *model.GlobalScenario) GlobalScenarioResponse {
	return GlobalScenarioResponse{
		ID:                  g.ID.String(),
		ScenarioCode:        g.ScenarioCode,
		ScenarioDescription: g.ScenarioDescription,
		SalesType:           g.SalesType,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

func toScenarioResponse(sc *model.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ID:                  sc.ID.String(),
		UserID:              sc.UserID.String(),
		ScenarioCode:        sc.ScenarioCode,
		ScenarioDescription: sc.ScenarioDescription,
		SalesType:           sc.SalesType,
		CreatedAt:           sc.CreatedAt,
		UpdatedAt:           sc.UpdatedAt,
	}
}
