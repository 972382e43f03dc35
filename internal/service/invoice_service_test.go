package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/fbr"
	"fbr-invoice-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestSubmitInvoiceStoresAcceptedInvoice(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	buyerID := h.buyer(t, uid)
	hsID := h.hsCode(t, uid, "5205.1100")
	scenarioID := h.assignedScenario(t, uid, "SN001")

	res, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType:  "Sale Invoice",
		InvoiceDate:  "2025-01-15",
		BuyerID:      buyerID,
		ScenarioID:   scenarioID,
		InvoiceRefNo: "REF-1",
		Items:        []InvoiceItemInput{item(hsID)},
	})
	require.NoError(t, err)

	require.NotNil(t, res.Invoice.FBRInvoiceNumber)
	assert.Equal(t, "7000123456", *res.Invoice.FBRInvoiceNumber)
	assert.True(t, res.Invoice.IsTestEnvironment)
	assert.Equal(t, "2025-01-15", res.Invoice.InvoiceDate)
	require.Len(t, res.Invoice.Items, 1)
	assert.Equal(t, "5205.1100", res.Invoice.Items[0].HSCode)
	assert.Equal(t, "Goods at standard rate (default)", res.Invoice.Items[0].SaleType)
	assert.JSONEq(t, `{"invoiceNumber":"7000123456","dated":"2025-01-15"}`, string(res.FBRResponse))

	require.Len(t, h.gateway.posted, 1)
	payload := h.gateway.posted[0]
	assert.Equal(t, fbr.Sandbox, h.gateway.envs[0])
	assert.Equal(t, "sandbox-token", h.gateway.tokens[0])
	assert.Equal(t, "SN001", payload.ScenarioID)
	assert.Equal(t, "1234567", payload.SellerNTNCNIC)
	assert.Equal(t, "7654321", payload.BuyerNTNCNIC)
	assert.Equal(t, 10.0, payload.Items[0].Quantity)
	assert.Equal(t, "Goods at standard rate (default)", payload.Items[0].SaleType)

	logs, total, err := h.audit.GetAuditLogs(ctx, model.ActionSubmitInvoice, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, res.Invoice.ID, logs[0].EntityID)
}

func TestSubmitInvoiceGatewayRejectionPersistsNothing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	buyerID := h.buyer(t, uid)
	hsID := h.hsCode(t, uid, "5205.1100")
	scenarioID := h.assignedScenario(t, uid, "SN001")
	h.gateway.postErr = apperr.Upstream(http.StatusUnprocessableEntity, "FBR API Error: Invalid buyer NTN")

	_, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     buyerID,
		ScenarioID:  scenarioID,
		Items:       []InvoiceItemInput{item(hsID)},
	})
	requireAppErr(t, err, http.StatusUnprocessableEntity, "FBR API Error: Invalid buyer NTN")

	var count int64
	require.NoError(t, h.db.Model(&model.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
	_, total, err := h.audit.GetAuditLogs(ctx, model.ActionSubmitInvoice, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSubmitInvoiceWithoutNumberStillPersists(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	h.gateway.postBody = json.RawMessage(`{"status":"ok"}`)

	res, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{item(h.hsCode(t, uid, "0101.2100"))},
	})
	require.NoError(t, err)
	assert.Nil(t, res.Invoice.FBRInvoiceNumber)
}

func TestSubmitInvoiceRejectsBeforeCallingGateway(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	other := h.seller(t, "other@example.com")
	buyerID := h.buyer(t, uid)
	hsID := h.hsCode(t, uid, "5205.1100")
	scenarioID := h.assignedScenario(t, uid, "SN001")
	foreignScenario := h.assignedScenario(t, other, "SN002")
	foreignHS := h.hsCode(t, other, "9999.0000")

	base := func() SubmitInvoiceRequest {
		return SubmitInvoiceRequest{
			InvoiceType: "Sale Invoice",
			InvoiceDate: "2025-01-15",
			BuyerID:     buyerID,
			ScenarioID:  scenarioID,
			Items:       []InvoiceItemInput{item(hsID)},
		}
	}

	cases := []struct {
		name   string
		mutate func(*SubmitInvoiceRequest)
		status int
		msg    string
	}{
		{"foreign scenario", func(r *SubmitInvoiceRequest) { r.ScenarioID = foreignScenario }, http.StatusNotFound, "Scenario not found or not assigned to you"},
		{"unknown buyer", func(r *SubmitInvoiceRequest) { r.BuyerID = uuid.NewString() }, http.StatusNotFound, "Buyer not found"},
		{"foreign hs code", func(r *SubmitInvoiceRequest) { r.Items = []InvoiceItemInput{item(foreignHS)} }, http.StatusNotFound, "One or more HS codes not found"},
		{"bad date", func(r *SubmitInvoiceRequest) { r.InvoiceDate = "15/01/2025" }, http.StatusBadRequest, ""},
		{"unknown custom field", func(r *SubmitInvoiceRequest) {
			it := item(hsID)
			it.CustomFields = []ItemCustomFieldInput{{CustomFieldID: uuid.NewString(), Value: "x"}}
			r.Items = []InvoiceItemInput{it}
		}, http.StatusNotFound, "One or more custom fields not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(&req)
			_, err := h.invoices.SubmitInvoice(ctx, uid, req)
			requireAppErr(t, err, tc.status, tc.msg)
		})
	}
	assert.Empty(t, h.gateway.posted)
}

func TestSubmitInvoiceRequiresEnvironmentToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	empty := ""
	_, err := h.users.UpdateFBRTokens(ctx, uid, UpdateFBRTokensRequest{PostInvoiceTokenTest: &empty})
	require.NoError(t, err)

	_, err = h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{item(h.hsCode(t, uid, "0101.2100"))},
	})
	requireAppErr(t, err, http.StatusBadRequest, "FBR test token not configured for this user")
	assert.Empty(t, h.gateway.posted)
}

func TestSubmitInvoiceCapturesCustomFieldValues(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	field, err := h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: "batchNo", FieldType: "text"})
	require.NoError(t, err)

	it := item(h.hsCode(t, uid, "0101.2100"))
	it.CustomFields = []ItemCustomFieldInput{{CustomFieldID: field.ID, Value: "B-42"}}
	res, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{it},
	})
	require.NoError(t, err)

	require.Len(t, res.Invoice.Items[0].CustomFields, 1)
	assert.Equal(t, "batchNo", res.Invoice.Items[0].CustomFields[0].FieldName)
	assert.Equal(t, "B-42", res.Invoice.Items[0].CustomFields[0].Value)

	raw, err := json.Marshal(h.gateway.posted[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "B-42")
}

func TestSubmitProductionInvoice(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	buyerID := h.buyer(t, uid)
	hsID := h.hsCode(t, uid, "5205.1100")

	t.Run("requires sale type and numeric extra tax", func(t *testing.T) {
		it := item(hsID)
		it.ExtraTax = "abc"
		_, err := h.invoices.SubmitProductionInvoice(ctx, uid, ProductionInvoiceRequest{
			InvoiceType: "Sale Invoice",
			InvoiceDate: "2025-01-15",
			BuyerID:     buyerID,
			Items:       []InvoiceItemInput{it},
		})
		appErr := requireAppErr(t, err, http.StatusBadRequest, "Validation failed")
		assert.Len(t, appErr.Errors, 2)
		assert.Empty(t, h.gateway.posted)
	})

	t.Run("posts to production", func(t *testing.T) {
		it := item(hsID)
		it.SaleType = "Goods at Reduced Rate"
		it.ExtraTax = "5"
		res, err := h.invoices.SubmitProductionInvoice(ctx, uid, ProductionInvoiceRequest{
			InvoiceType: "Sale Invoice",
			InvoiceDate: "2025-01-15",
			BuyerID:     buyerID,
			Items:       []InvoiceItemInput{it},
		})
		require.NoError(t, err)
		assert.False(t, res.Invoice.IsTestEnvironment)
		assert.Nil(t, res.Invoice.ScenarioID)
		assert.Equal(t, fbr.Production, h.gateway.envs[len(h.gateway.envs)-1])
		assert.Equal(t, "production-token", h.gateway.tokens[len(h.gateway.tokens)-1])
		last := h.gateway.posted[len(h.gateway.posted)-1]
		assert.Empty(t, last.ScenarioID)
		assert.Equal(t, "Goods at Reduced Rate", last.Items[0].SaleType)
		assert.Equal(t, "5", last.Items[0].ExtraTax)
	})
}

func TestValidateInvoiceUsesValidationToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	h.gateway.validateBody = json.RawMessage(`{"statusCode":"00","status":"Valid"}`)

	res, err := h.invoices.ValidateInvoice(ctx, uid, ValidateInvoiceRequest{InvoiceNumber: " 7000123456 "})
	require.NoError(t, err)
	assert.Equal(t, "7000123456", res.InvoiceNumber)
	assert.JSONEq(t, `{"statusCode":"00","status":"Valid"}`, string(res.ValidationResult))
	assert.Equal(t, "validate-token", h.gateway.tokens[0])

	_, err = h.invoices.ValidateInvoice(ctx, uid, ValidateInvoiceRequest{InvoiceNumber: "1", IsTestEnvironment: boolPtr(false)})
	requireAppErr(t, err, http.StatusBadRequest, "FBR production validation token not configured for this user")
}

func TestListGetDeleteInvoices(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	other := h.seller(t, "other@example.com")
	buyerID := h.buyer(t, uid)
	hsID := h.hsCode(t, uid, "5205.1100")
	scenarioID := h.assignedScenario(t, uid, "SN001")

	submitted, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     buyerID,
		ScenarioID:  scenarioID,
		Items:       []InvoiceItemInput{item(hsID), item(hsID)},
	})
	require.NoError(t, err)
	it := item(hsID)
	it.SaleType = "Goods at standard rate (default)"
	_, err = h.invoices.SubmitProductionInvoice(ctx, uid, ProductionInvoiceRequest{
		InvoiceType: "Debit Note",
		InvoiceDate: "2025-02-01",
		BuyerID:     buyerID,
		Items:       []InvoiceItemInput{it},
	})
	require.NoError(t, err)

	all, total, err := h.invoices.ListInvoices(ctx, uid, InvoiceListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	sandbox, total, err := h.invoices.ListInvoices(ctx, uid, InvoiceListQuery{IsTestEnvironment: boolPtr(true), Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, submitted.Invoice.ID, sandbox[0].ID)

	notes, _, err := h.invoices.ListInvoices(ctx, uid, InvoiceListQuery{InvoiceType: "Debit Note", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Debit Note", notes[0].InvoiceType)

	_, _, err = h.invoices.ListInvoices(ctx, uid, InvoiceListQuery{StartDate: "2025-13-01", EndDate: "2025-01-01", Page: 1, Limit: 10})
	requireAppErr(t, err, http.StatusBadRequest, "startDate must be in yyyy-MM-dd format")

	got, err := h.invoices.GetInvoice(ctx, uid, submitted.Invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Seller)
	assert.Equal(t, "Seller Traders", got.Seller.BusinessName)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 1, got.Items[0].LineNo)
	assert.Equal(t, 2, got.Items[1].LineNo)

	_, err = h.invoices.GetInvoice(ctx, other, submitted.Invoice.ID)
	requireAppErr(t, err, http.StatusNotFound, "Invoice not found")

	require.NoError(t, h.invoices.DeleteInvoice(ctx, uid, submitted.Invoice.ID))
	_, err = h.invoices.GetInvoice(ctx, uid, submitted.Invoice.ID)
	requireAppErr(t, err, http.StatusNotFound, "Invoice not found")

	_, total, err = h.audit.GetAuditLogs(ctx, model.ActionDeleteInvoice, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestRenderInvoicePDF(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	res, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{item(h.hsCode(t, uid, "5205.1100"))},
	})
	require.NoError(t, err)

	doc, name, err := h.invoices.RenderInvoicePDF(ctx, uid, res.Invoice.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, "invoice-7000123456.pdf", name)
}

func TestRenderInvoicePDFWithLayoutHidingEveryColumn(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	res, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{item(h.hsCode(t, uid, "5205.1100"))},
	})
	require.NoError(t, err)

	_, warning, err := h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields:   []string{"itemNumber"},
		ColumnWidths:    map[string]int{"itemNumber": 10},
		ShowItemNumbers: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Total column width is 10%. Recommended: 100%", warning)

	doc, _, err := h.invoices.RenderInvoicePDF(ctx, uid, res.Invoice.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestFlexStringAcceptsNumbersAndStrings(t *testing.T) {
	var in struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12.5,"b":" 3 ","c":null}`), &in))
	assert.Equal(t, FlexString("12.5"), in.A)
	assert.Equal(t, FlexString("3"), in.B)
	assert.Equal(t, FlexString(""), in.C)
}
