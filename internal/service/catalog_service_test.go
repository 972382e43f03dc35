package service

import (
	"context"
	"net/http"
	"testing"

	"fbr-invoice-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyerRoundTrip(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	other := h.seller(t, "other@example.com")

	created, err := h.buyers.CreateBuyer(ctx, uid, CreateBuyerRequest{
		NTNCNIC:          " 7654321 ",
		BusinessName:     "Buyer Enterprises",
		Province:         "Sindh",
		Address:          "44 Clifton Block 5",
		RegistrationType: model.RegistrationUnregistered,
	})
	require.NoError(t, err)
	assert.Equal(t, "7654321", created.NTNCNIC)

	got, err := h.buyers.GetBuyer(ctx, uid, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.BusinessName, got.BusinessName)
	assert.Equal(t, model.RegistrationUnregistered, got.RegistrationType)

	_, err = h.buyers.GetBuyer(ctx, other, created.ID)
	requireAppErr(t, err, http.StatusNotFound, "Buyer not found")

	short := "A"
	_, err = h.buyers.UpdateBuyer(ctx, uid, created.ID, UpdateBuyerRequest{BusinessName: &short})
	requireAppErr(t, err, http.StatusBadRequest, "Validation failed")

	province := "Balochistan"
	updated, err := h.buyers.UpdateBuyer(ctx, uid, created.ID, UpdateBuyerRequest{Province: &province})
	require.NoError(t, err)
	assert.Equal(t, "Balochistan", updated.Province)
	assert.Equal(t, "Buyer Enterprises", updated.BusinessName)

	list, total, err := h.buyers.ListBuyers(ctx, uid, "enterprises", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, h.buyers.DeleteBuyer(ctx, uid, created.ID))
	_, err = h.buyers.GetBuyer(ctx, uid, created.ID)
	requireAppErr(t, err, http.StatusNotFound, "Buyer not found")
}

func TestBuyerDeleteBlockedByInvoice(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	buyerID := h.buyer(t, uid)
	_, err := h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     buyerID,
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{item(h.hsCode(t, uid, "0101.2100"))},
	})
	require.NoError(t, err)

	err = h.buyers.DeleteBuyer(ctx, uid, buyerID)
	requireAppErr(t, err, http.StatusBadRequest, "Cannot delete buyer that is used in invoices")
}

func TestHSCodesArePerUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.seller(t, "alice@example.com")
	bob := h.seller(t, "bob@example.com")

	_, err := h.hsCodes.CreateHSCode(ctx, alice, HSCodeInput{HSCode: "0101.2100"})
	require.NoError(t, err)
	_, err = h.hsCodes.CreateHSCode(ctx, bob, HSCodeInput{HSCode: "0101.2100"})
	require.NoError(t, err)

	_, err = h.hsCodes.CreateHSCode(ctx, alice, HSCodeInput{HSCode: " 0101.2100 "})
	requireAppErr(t, err, http.StatusBadRequest, "HS Code already exists")
}

func TestBulkCreateHSCodesReportsPartialFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	h.hsCode(t, uid, "1111")

	res, err := h.hsCodes.BulkCreateHSCodes(ctx, uid, []HSCodeInput{
		{HSCode: "2222", Description: "new"},
		{HSCode: "1111"},
		{HSCode: "3333"},
		{HSCode: "2222"},
	})
	require.NoError(t, err)
	assert.Equal(t, BulkSummary{Total: 4, Created: 2, Failed: 2}, res.Summary)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, HSCodeFailure{HSCode: "1111", Reason: "HS Code already exists"}, res.Failed[0])
	assert.Equal(t, "2222", res.Failed[1].HSCode)

	_, total, err := h.hsCodes.ListHSCodes(ctx, uid, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestHSCodeUpdateAndDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	first := h.hsCode(t, uid, "1111")
	h.hsCode(t, uid, "2222")

	taken := "2222"
	_, err := h.hsCodes.UpdateHSCode(ctx, uid, first, UpdateHSCodeRequest{HSCode: &taken})
	requireAppErr(t, err, http.StatusBadRequest, "HS Code already exists")

	desc := "Live horses"
	updated, err := h.hsCodes.UpdateHSCode(ctx, uid, first, UpdateHSCodeRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Live horses", updated.Description)

	_, err = h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{item(first)},
	})
	require.NoError(t, err)
	err = h.hsCodes.DeleteHSCode(ctx, uid, first)
	requireAppErr(t, err, http.StatusBadRequest, "Cannot delete HS Code that is used in invoices")
}

func TestCustomFieldLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")

	notes, err := h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: "notes", FieldType: "multiline"})
	require.NoError(t, err)
	assert.Equal(t, model.FieldTypeTextarea, notes.FieldType)
	assert.True(t, notes.IsActive)

	_, err = h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: "notes", FieldType: "text"})
	requireAppErr(t, err, http.StatusBadRequest, "A custom field with this name already exists")

	msg, err := h.customFields.DeleteCustomField(ctx, uid, notes.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Custom field deactivated successfully", msg)

	active, err := h.customFields.ListCustomFields(ctx, uid, false)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := h.customFields.ListCustomFields(ctx, uid, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	msg, err = h.customFields.DeleteCustomField(ctx, uid, notes.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Custom field deleted successfully", msg)
	_, err = h.customFields.GetCustomField(ctx, uid, notes.ID)
	requireAppErr(t, err, http.StatusNotFound, "Custom field not found")

	_, total, err := h.audit.GetAuditLogs(ctx, model.ActionDeleteCustomField, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCustomFieldHardDeleteBlockedWhenUsed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	field, err := h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: "batchNo", FieldType: "text"})
	require.NoError(t, err)

	it := item(h.hsCode(t, uid, "0101.2100"))
	it.CustomFields = []ItemCustomFieldInput{{CustomFieldID: field.ID, Value: "B-1"}}
	_, err = h.invoices.SubmitInvoice(ctx, uid, SubmitInvoiceRequest{
		InvoiceType: "Sale Invoice",
		InvoiceDate: "2025-01-15",
		BuyerID:     h.buyer(t, uid),
		ScenarioID:  h.assignedScenario(t, uid, "SN001"),
		Items:       []InvoiceItemInput{it},
	})
	require.NoError(t, err)

	_, err = h.customFields.DeleteCustomField(ctx, uid, field.ID, true)
	requireAppErr(t, err, http.StatusBadRequest, "Cannot delete custom field that is used in invoices. Deactivate it instead.")

	inactive := false
	updated, err := h.customFields.UpdateCustomField(ctx, uid, field.ID, UpdateCustomFieldRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
