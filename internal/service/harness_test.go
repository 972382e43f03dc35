package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/config"
	"fbr-invoice-backend/internal/database"
	"fbr-invoice-backend/internal/fbr"
	"fbr-invoice-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGateway struct {
	postBody     json.RawMessage
	postErr      error
	validateBody json.RawMessage
	posted       []fbr.Invoice
	envs         []fbr.Environment
	tokens       []string
}

func (g *fakeGateway) PostInvoice(_ context.Context, env fbr.Environment, token string, payload fbr.Invoice) (json.RawMessage, error) {
	g.posted = append(g.posted, payload)
	g.envs = append(g.envs, env)
	g.tokens = append(g.tokens, token)
	if g.postErr != nil {
		return nil, g.postErr
	}
	return g.postBody, nil
}

func (g *fakeGateway) ValidateInvoice(_ context.Context, env fbr.Environment, token, _ string) (json.RawMessage, error) {
	g.envs = append(g.envs, env)
	g.tokens = append(g.tokens, token)
	return g.validateBody, nil
}

type harness struct {
	db            *gorm.DB
	gateway       *fakeGateway
	users         UserService
	buyers        BuyerService
	hsCodes       HSCodeService
	scenarios     ScenarioService
	customFields  CustomFieldService
	printSettings PrintSettingsService
	invoices      InvoiceService
	audit         AuditService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	tx := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	hsCodeRepo := repository.NewHSCodeRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	customFieldRepo := repository.NewCustomFieldRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	gw := &fakeGateway{postBody: json.RawMessage(`{"invoiceNumber":"7000123456","dated":"2025-01-15"}`)}
	printSettings := NewPrintSettingsService(repository.NewPrintSettingsRepository(db), customFieldRepo)

	return &harness{
		db:            db,
		gateway:       gw,
		users:         NewUserService(userRepo, tx, config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour}),
		buyers:        NewBuyerService(buyerRepo),
		hsCodes:       NewHSCodeService(hsCodeRepo),
		scenarios:     NewScenarioService(repository.NewGlobalScenarioRepository(db), scenarioRepo, userRepo, auditRepo, tx),
		customFields:  NewCustomFieldService(customFieldRepo, auditRepo, tx),
		printSettings: printSettings,
		audit:         NewAuditService(auditRepo),
		invoices: NewInvoiceService(InvoiceDeps{
			Invoices:      repository.NewInvoiceRepository(db),
			Users:         userRepo,
			Buyers:        buyerRepo,
			Scenarios:     scenarioRepo,
			HSCodes:       hsCodeRepo,
			CustomFields:  customFieldRepo,
			Audit:         auditRepo,
			PrintSettings: printSettings,
			Gateway:       gw,
			TxManager:     tx,
		}),
	}
}

// seller registers a user with both post tokens configured and returns its id.
func (h *harness) seller(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	res, err := h.users.Register(ctx, RegisterRequest{
		Name:         "Seller",
		Email:        email,
		BusinessName: "Seller Traders",
		Province:     "Punjab",
		Address:      "12 Mall Road, Lahore",
		NTNCNIC:      "1234567",
		Password:     "Passw0rd!",
	})
	require.NoError(t, err)

	testTok, prodTok, valTok := "sandbox-token", "production-token", "validate-token"
	_, err = h.users.UpdateFBRTokens(ctx, res.User.ID, UpdateFBRTokensRequest{
		PostInvoiceTokenTest:     &testTok,
		PostInvoiceToken:         &prodTok,
		ValidateInvoiceTokenTest: &valTok,
	})
	require.NoError(t, err)
	return res.User.ID
}

func (h *harness) buyer(t *testing.T, userID string) string {
	t.Helper()
	b, err := h.buyers.CreateBuyer(context.Background(), userID, CreateBuyerRequest{
		NTNCNIC:          "7654321",
		BusinessName:     "Buyer Enterprises",
		Province:         "Sindh",
		Address:          "44 Clifton Block 5, Karachi",
		RegistrationType: "Registered",
	})
	require.NoError(t, err)
	return b.ID
}

func (h *harness) hsCode(t *testing.T, userID, code string) string {
	t.Helper()
	c, err := h.hsCodes.CreateHSCode(context.Background(), userID, HSCodeInput{HSCode: code, Description: "Test code"})
	require.NoError(t, err)
	return c.ID
}

// assignedScenario creates (or reuses) a global scenario and grants it to userID.
func (h *harness) assignedScenario(t *testing.T, userID, code string) string {
	t.Helper()
	ctx := context.Background()
	global, err := h.scenarios.CreateGlobalScenario(ctx, CreateGlobalScenarioRequest{
		ScenarioCode:        code,
		ScenarioDescription: "Goods at standard rate to registered buyers",
		SalesType:           "Goods at standard rate (default)",
	})
	if err != nil {
		list, _, lerr := h.scenarios.ListGlobalScenarios(ctx, code, 1, 10)
		require.NoError(t, lerr)
		require.NotEmpty(t, list)
		global = list[0]
	}
	sc, err := h.scenarios.AssignScenario(ctx, "", AssignScenarioRequest{UserID: userID, ScenarioID: global.ID})
	require.NoError(t, err)
	return sc.ID
}

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func item(hsCodeID string) InvoiceItemInput {
	return InvoiceItemInput{
		HSCodeID:                        hsCodeID,
		ProductDescription:              "Cotton yarn",
		Rate:                            "18%",
		UoM:                             "KG",
		Quantity:                        d("10"),
		TotalValues:                     d("1180"),
		ValueSalesExcludingST:           d("1000"),
		FixedNotifiedValueOrRetailPrice: d("0"),
		SalesTaxApplicable:              d("180"),
		SalesTaxWithheldAtSource:        d("0"),
		FurtherTax:                      d("0"),
		FedPayable:                      d("0"),
		Discount:                        d("0"),
	}
}

func requireAppErr(t *testing.T, err error, status int, msg string) *apperr.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok, "expected *apperr.Error, got %v", err)
	require.Equal(t, status, appErr.Status)
	if msg != "" {
		require.Equal(t, msg, appErr.Message)
	}
	return appErr
}
