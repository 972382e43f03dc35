package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"fbr-invoice-backend/internal/printlayout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widths(keys []string, w int) map[string]int {
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		out[k] = w
	}
	return out
}

func TestGetPrintSettingsFallsBackToDefaults(t *testing.T) {
	h := newHarness(t)
	uid := h.seller(t, "seller@example.com")

	res, err := h.printSettings.GetPrintSettings(context.Background(), uid)
	require.NoError(t, err)
	assert.Nil(t, res.PrintSettings)
	require.NotNil(t, res.DefaultSettings)
	assert.Equal(t, printlayout.Default(), *res.DefaultSettings)
}

func TestSavePrintSettings(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	fields := []string{"productDescription", "hsCode", "quantity", "totalValues"}

	saved, warning, err := h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: fields,
		ColumnWidths:  widths(fields, 25),
		FontSize:      "medium",
	})
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, fields, saved.VisibleFields)
	assert.Equal(t, "medium", saved.FontSize)
	assert.True(t, saved.TableBorders)
	assert.True(t, saved.ShowItemNumbers)

	noBorders := false
	_, warning, err = h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: fields,
		ColumnWidths:  widths(fields, 10),
		TableBorders:  &noBorders,
	})
	require.NoError(t, err)
	assert.Equal(t, "Total column width is 40%. Recommended: 100%", warning)

	res, err := h.printSettings.GetPrintSettings(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, res.PrintSettings)
	assert.Equal(t, saved.ID, res.PrintSettings.ID)
	assert.False(t, res.PrintSettings.TableBorders)
	assert.Equal(t, "small", res.PrintSettings.FontSize)

	require.NoError(t, h.printSettings.ResetPrintSettings(ctx, uid))
	res, err = h.printSettings.GetPrintSettings(ctx, uid)
	require.NoError(t, err)
	assert.Nil(t, res.PrintSettings)
}

func TestSavePrintSettingsRejectsInvalidLayouts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")

	var twentyOne []string
	for _, f := range printlayout.BuiltinFields {
		twentyOne = append(twentyOne, f.Key)
	}
	for i := 0; len(twentyOne) < 21; i++ {
		cf, err := h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: fmt.Sprintf("extra%d", i), FieldType: "text"})
		require.NoError(t, err)
		twentyOne = append(twentyOne, printlayout.CustomFieldPrefix+cf.ID)
	}

	cases := []struct {
		name   string
		req    SavePrintSettingsRequest
		msg    string
		fields int
	}{
		{
			name: "no visible fields",
			req:  SavePrintSettingsRequest{VisibleFields: []string{}, ColumnWidths: map[string]int{}},
			msg:  "At least 1 field must be visible",
		},
		{
			name: "too many fields",
			req:  SavePrintSettingsRequest{VisibleFields: twentyOne, ColumnWidths: widths(twentyOne, 5)},
			msg:  "Maximum 20 fields allowed (including custom fields)",
		},
		{
			name:   "unknown and malformed keys",
			req:    SavePrintSettingsRequest{VisibleFields: []string{"hsCode", "colour", "customField_nope"}, ColumnWidths: widths([]string{"hsCode"}, 50)},
			msg:    "Validation failed: 2 field(s) are invalid",
			fields: 2,
		},
		{
			name:   "foreign custom field",
			req:    SavePrintSettingsRequest{VisibleFields: []string{printlayout.CustomFieldKey(uuid.New())}, ColumnWidths: map[string]int{}},
			msg:    "Validation failed: 1 custom field(s) are invalid",
			fields: 1,
		},
		{
			name: "missing width",
			req:  SavePrintSettingsRequest{VisibleFields: []string{"hsCode", "rate"}, ColumnWidths: map[string]int{"hsCode": 50}},
			msg:  "Missing width for field: rate",
		},
		{
			name: "width out of range",
			req:  SavePrintSettingsRequest{VisibleFields: []string{"hsCode"}, ColumnWidths: map[string]int{"hsCode": 51}},
			msg:  "Width for hsCode must be between 1-50%",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := h.printSettings.SavePrintSettings(ctx, uid, tc.req)
			appErr := requireAppErr(t, err, http.StatusBadRequest, tc.msg)
			assert.Len(t, appErr.Errors, tc.fields)
		})
	}

	res, err := h.printSettings.GetPrintSettings(ctx, uid)
	require.NoError(t, err)
	assert.Nil(t, res.PrintSettings)
}

func TestPrintSettingsPruneInactiveCustomFields(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	cf, err := h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: "batchNo", FieldType: "text"})
	require.NoError(t, err)
	key := printlayout.CustomFieldPrefix + cf.ID

	fields := []string{"productDescription", key}
	_, _, err = h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: fields,
		ColumnWidths:  map[string]int{"productDescription": 50, key: 50},
	})
	require.NoError(t, err)

	available, err := h.printSettings.AvailableFields(ctx, uid)
	require.NoError(t, err)
	require.Len(t, available.CustomFields, 1)
	assert.Equal(t, key, available.CustomFields[0].Key)
	assert.Len(t, available.Fields, len(printlayout.BuiltinFields))

	_, err = h.customFields.DeleteCustomField(ctx, uid, cf.ID, false)
	require.NoError(t, err)

	res, err := h.printSettings.GetPrintSettings(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, res.PrintSettings)
	assert.Equal(t, []string{"productDescription"}, res.PrintSettings.VisibleFields)
	assert.NotContains(t, res.PrintSettings.ColumnWidths, key)

	uidParsed := uuid.MustParse(uid)
	layout, err := h.printSettings.Layout(ctx, uidParsed)
	require.NoError(t, err)
	assert.Equal(t, []string{"productDescription"}, layout.VisibleFields)

	available, err = h.printSettings.AvailableFields(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, available.CustomFields)
}

func TestSavePrintSettingsStoresCanonicalCustomKeys(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")
	cf, err := h.customFields.CreateCustomField(ctx, uid, CreateCustomFieldRequest{FieldName: "lotNumber", FieldType: "text"})
	require.NoError(t, err)
	canonical := printlayout.CustomFieldPrefix + cf.ID
	upper := printlayout.CustomFieldPrefix + strings.ToUpper(cf.ID)

	saved, _, err := h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: []string{"hsCode", upper},
		ColumnWidths:  map[string]int{"hsCode": 50, upper: 50},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hsCode", canonical}, saved.VisibleFields)
	assert.Equal(t, map[string]int{"hsCode": 50, canonical: 50}, saved.ColumnWidths)

	res, err := h.printSettings.GetPrintSettings(ctx, uid)
	require.NoError(t, err)
	require.NotNil(t, res.PrintSettings)
	assert.Equal(t, []string{"hsCode", canonical}, res.PrintSettings.VisibleFields)
	assert.Equal(t, 50, res.PrintSettings.ColumnWidths[canonical])
}

func TestSavePrintSettingsKeepsOnlyVisibleWidths(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	uid := h.seller(t, "seller@example.com")

	_, _, err := h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: []string{"hsCode"},
		ColumnWidths:  map[string]int{"hsCode": 50, "discount": 999},
	})
	requireAppErr(t, err, http.StatusBadRequest, "Width for discount must be between 1-50%")

	_, _, err = h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: []string{"hsCode"},
		ColumnWidths:  map[string]int{"hsCode": 50, "colour": -5},
	})
	requireAppErr(t, err, http.StatusBadRequest, "Width for colour must be between 1-50%")

	saved, _, err := h.printSettings.SavePrintSettings(ctx, uid, SavePrintSettingsRequest{
		VisibleFields: []string{"hsCode"},
		ColumnWidths:  map[string]int{"hsCode": 50, "discount": 20, "colour": 10},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"hsCode": 50}, saved.ColumnWidths)
}
