package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"fbr-invoice-backend/internal/config"
	"fbr-invoice-backend/internal/database"
	"fbr-invoice-backend/internal/fbr"
	"fbr-invoice-backend/internal/handler"
	"fbr-invoice-backend/internal/metrics"
	"fbr-invoice-backend/internal/middleware"
	"fbr-invoice-backend/internal/repository"
	"fbr-invoice-backend/internal/router"
	"fbr-invoice-backend/internal/service"
	"fbr-invoice-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "Adm1nPassw0rd!"
)

// gatewayStub records what the FBR client sent.
type gatewayStub struct {
	mu     sync.Mutex
	paths  []string
	auth   []string
	reject bool
}

func (g *gatewayStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	g.paths = append(g.paths, r.URL.Path)
	g.auth = append(g.auth, r.Header.Get("Authorization"))
	reject := g.reject
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if reject {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"Invalid buyer NTN"}`)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/validateinvoicedata") {
		_, _ = io.WriteString(w, `{"statusCode":"00","status":"Valid"}`)
		return
	}
	_, _ = io.WriteString(w, `{"invoiceNumber":"7000999001","dated":"2025-02-01"}`)
}

type testServer struct {
	t       *testing.T
	engine  *gin.Engine
	gateway *gatewayStub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Register()

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	stub := &gatewayStub{}
	fbrServer := httptest.NewServer(stub)
	t.Cleanup(fbrServer.Close)

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry, metrics.Config{ServiceName: "fbr-invoice-backend", Environment: "test"})
	jwtCfg := config.JWTConfig{Secret: "router-test-secret", ExpiresIn: time.Hour}

	tx := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	buyerRepo := repository.NewBuyerRepository(db)
	hsCodeRepo := repository.NewHSCodeRepository(db)
	scenarioRepo := repository.NewScenarioRepository(db)
	customFieldRepo := repository.NewCustomFieldRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	gateway := fbr.NewClient(config.FBRConfig{SandboxBaseURL: fbrServer.URL, ProductionBaseURL: fbrServer.URL},
		fbr.WithHTTPClient(fbrServer.Client()),
		fbr.WithMetrics(appMetrics),
	)

	users := service.NewUserService(userRepo, tx, jwtCfg)
	require.NoError(t, users.EnsureAdmin(context.Background(), config.AdminConfig{
		Email: adminEmail, Password: adminPassword, Name: "Administrator",
	}))
	printSettings := service.NewPrintSettingsService(repository.NewPrintSettingsRepository(db), customFieldRepo)
	invoices := service.NewInvoiceService(service.InvoiceDeps{
		Invoices:      repository.NewInvoiceRepository(db),
		Users:         userRepo,
		Buyers:        buyerRepo,
		Scenarios:     scenarioRepo,
		HSCodes:       hsCodeRepo,
		CustomFields:  customFieldRepo,
		Audit:         auditRepo,
		PrintSettings: printSettings,
		Gateway:       gateway,
		TxManager:     tx,
	})

	engine := router.New(router.Options{
		Metrics:  appMetrics,
		Gatherer: registry,
		Auth:     middleware.NewAuth(jwtCfg.Secret),
		Handlers: []router.RouteRegistrar{
			handler.NewUserHandler(users, handler.CookieConfig{MaxAge: jwtCfg.ExpiresIn}),
			handler.NewBuyerHandler(service.NewBuyerService(buyerRepo)),
			handler.NewHSCodeHandler(service.NewHSCodeService(hsCodeRepo)),
			handler.NewScenarioHandler(service.NewScenarioService(repository.NewGlobalScenarioRepository(db), scenarioRepo, userRepo, auditRepo, tx)),
			handler.NewCustomFieldHandler(service.NewCustomFieldService(customFieldRepo, auditRepo, tx)),
			handler.NewInvoiceHandler(invoices),
			handler.NewPrintSettingsHandler(printSettings),
			handler.NewAuditHandler(service.NewAuditService(auditRepo)),
		},
	})
	return &testServer{t: t, engine: engine, gateway: stub}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

// envelope decodes {status, message, warning, data} with data left raw.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Warning string          `json:"warning"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func dataField(t *testing.T, env envelope, path ...string) json.RawMessage {
	t.Helper()
	raw := env.Data
	for _, key := range path {
		var obj map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &obj))
		next, ok := obj[key]
		require.True(t, ok, "missing key %q in %s", key, string(raw))
		raw = next
	}
	return raw
}

func stringAt(t *testing.T, env envelope, path ...string) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(dataField(t, env, path...), &s))
	return s
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return stringAt(s.t, decode(s.t, rec), "token")
}

// register creates a seller with sandbox tokens and returns its id and bearer token.
func (s *testServer) register(email string) (string, string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":         "Seller",
		"email":        email,
		"businessName": "Seller Traders",
		"province":     "Punjab",
		"address":      "12 Mall Road, Lahore",
		"ntncnic":      "1234567",
		"password":     "Passw0rd!",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(s.t, rec)
	id, token := stringAt(s.t, env, "user", "id"), stringAt(s.t, env, "token")

	rec = s.do(http.MethodPut, "/api/v1/users/me/fbr-tokens", token, gin.H{
		"postInvoiceTokenTest":     "sandbox-token",
		"validateInvoiceTokenTest": "validate-token",
	})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return id, token
}

func TestHealthAndFallbacks(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "success", health["status"])
	assert.Equal(t, "FBR Invoice Backend is running", health["message"])
	_, err := time.Parse(time.RFC3339, health["timestamp"])
	assert.NoError(t, err)

	rec = s.do(http.MethodGet, "/api/v1/nowhere", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "Cannot find /api/v1/nowhere on this server", env.Message)

	rec = s.do(http.MethodGet, "/api/v1/buyers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/buyers", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decode(t, rec).Message)

	rec = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAuthCookieAndRoles(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register("seller@example.com")

	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "seller@example.com", "password": "Passw0rd!"})
	require.Equal(t, http.StatusOK, rec.Code)
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.AddCookie(cookie)
	cookieRec := httptest.NewRecorder()
	s.engine.ServeHTTP(cookieRec, req)
	require.Equal(t, http.StatusOK, cookieRec.Code, cookieRec.Body.String())
	assert.Equal(t, "seller@example.com", stringAt(t, decode(t, cookieRec), "user", "email"))

	rec = s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "seller@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/admin/audit-logs", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to perform this action", decode(t, rec).Message)

	adminToken := s.login(adminEmail, adminPassword)
	rec = s.do(http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var users []json.RawMessage
	require.NoError(t, json.Unmarshal(dataField(t, decode(t, rec), "users"), &users))
	assert.Len(t, users, 2)

	rec = s.do(http.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decode(t, rec).Message)
}

func TestBindingErrorsRenderAsValidationFailures(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "fail", env.Status)
	assert.NotEmpty(t, env.Errors)

	_, token := s.register("seller@example.com")
	rec = s.do(http.MethodPost, "/api/v1/invoices", token, gin.H{
		"invoiceType": "Sale Invoice",
		"invoiceDate": "15/01/2025",
		"buyerId":     "not-a-uuid",
		"items":       []gin.H{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", decode(t, rec).Status)
}

func TestInvoiceLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	sellerID, token := s.register("seller@example.com")
	adminToken := s.login(adminEmail, adminPassword)

	rec := s.do(http.MethodPost, "/api/v1/admin/global-scenarios", adminToken, gin.H{
		"scenarioCode":        "SN001",
		"scenarioDescription": "Goods at standard rate to registered buyers",
		"salesType":           "Goods at standard rate (default)",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	globalID := stringAt(t, decode(t, rec), "scenario", "id")

	rec = s.do(http.MethodPost, "/api/v1/admin/scenarios/assign", adminToken, gin.H{"userId": sellerID, "scenarioId": globalID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	scenarioID := stringAt(t, decode(t, rec), "scenario", "id")

	rec = s.do(http.MethodPost, "/api/v1/buyers", token, gin.H{
		"ntncnic":          "7654321",
		"businessName":     "Buyer Enterprises",
		"province":         "Sindh",
		"address":          "44 Clifton Block 5, Karachi",
		"registrationType": "Registered",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	buyerID := stringAt(t, decode(t, rec), "buyer", "id")

	rec = s.do(http.MethodPost, "/api/v1/hs-codes", token, gin.H{"hsCode": "5205.1100", "description": "Cotton yarn"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	hsCodeID := stringAt(t, decode(t, rec), "hsCode", "id")

	s.gateway.mu.Lock()
	s.gateway.reject = true
	s.gateway.mu.Unlock()
	rec = s.do(http.MethodPost, "/api/v1/invoices", token, invoiceBody(buyerID, scenarioID, hsCodeID))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Contains(t, decode(t, rec).Message, "Invalid buyer NTN")
	rec = s.do(http.MethodGet, "/api/v1/invoices", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(dataField(t, decode(t, rec), "invoices")))

	s.gateway.mu.Lock()
	s.gateway.reject = false
	s.gateway.paths, s.gateway.auth = nil, nil
	s.gateway.mu.Unlock()
	rec = s.do(http.MethodPost, "/api/v1/invoices", token, invoiceBody(buyerID, scenarioID, hsCodeID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, "7000999001", stringAt(t, env, "invoice", "fbrInvoiceNumber"))
	invoiceID := stringAt(t, env, "invoice", "id")

	s.gateway.mu.Lock()
	require.Len(t, s.gateway.paths, 1)
	assert.Equal(t, "/postinvoicedata_sb", s.gateway.paths[0])
	assert.Equal(t, "Bearer sandbox-token", s.gateway.auth[0])
	s.gateway.mu.Unlock()

	rec = s.do(http.MethodGet, "/api/v1/invoices?isTestEnvironment=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env = decode(t, rec)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(dataField(t, env, "invoices"), &listed))
	assert.Len(t, listed, 1)
	var total int
	require.NoError(t, json.Unmarshal(dataField(t, env, "pagination", "total"), &total))
	assert.Equal(t, 1, total)

	rec = s.do(http.MethodGet, "/api/v1/invoices/"+invoiceID+"/pdf", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inline")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = s.do(http.MethodPost, "/api/v1/invoices/validate", token, gin.H{"invoiceNumber": "7000999001"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/v1/buyers/"+buyerID, token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/admin/audit-logs?action=SUBMIT_INVOICE", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var logs []json.RawMessage
	require.NoError(t, json.Unmarshal(dataField(t, decode(t, rec), "logs"), &logs))
	assert.Len(t, logs, 1)

	rec = s.do(http.MethodDelete, "/api/v1/invoices/"+invoiceID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/invoices/"+invoiceID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func invoiceBody(buyerID, scenarioID, hsCodeID string) gin.H {
	return gin.H{
		"invoiceType":  "Sale Invoice",
		"invoiceDate":  "2025-02-01",
		"buyerId":      buyerID,
		"scenarioId":   scenarioID,
		"invoiceRefNo": "REF-100",
		"items": []gin.H{{
			"hsCodeId":                        hsCodeID,
			"productDescription":              "Cotton yarn",
			"rate":                            "18%",
			"uoM":                             "KG",
			"quantity":                        10,
			"totalValues":                     1180,
			"valueSalesExcludingST":           1000,
			"fixedNotifiedValueOrRetailPrice": 0,
			"salesTaxApplicable":              180,
			"salesTaxWithheldAtSource":        0,
			"extraTax":                        "",
			"furtherTax":                      0,
			"fedPayable":                      0,
			"discount":                        0,
		}},
	}
}

func TestPrintSettingsWarningOverHTTP(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register("seller@example.com")

	rec := s.do(http.MethodGet, "/api/v1/invoice-print-settings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "null", string(dataField(t, env, "printSettings")))
	dataField(t, env, "defaultSettings")

	rec = s.do(http.MethodPost, "/api/v1/invoice-print-settings", token, gin.H{
		"visibleFields": []string{"productDescription", "hsCode"},
		"columnWidths":  gin.H{"productDescription": 30, "hsCode": 20},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env = decode(t, rec)
	assert.Equal(t, "Print settings saved successfully", env.Message)
	assert.Equal(t, "Total column width is 50%. Recommended: 100%", env.Warning)

	rec = s.do(http.MethodPost, "/api/v1/invoice-print-settings", token, gin.H{
		"visibleFields": []string{"productDescription"},
		"columnWidths":  gin.H{"productDescription": 80},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Width for productDescription must be between 1-50%", decode(t, rec).Message)

	rec = s.do(http.MethodDelete, "/api/v1/invoice-print-settings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Print settings reset to defaults", decode(t, rec).Message)
}
