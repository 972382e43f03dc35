// Package printlayout describes the invoice item columns a user can print and the
// default layout used when no print settings are stored.
package printlayout

import (
	"strings"

	"github.com/google/uuid"
)

// CustomFieldPrefix marks a visible-field key that references a custom field id.
const CustomFieldPrefix = "customField_"

const (
	MinVisibleFields = 1
	MaxVisibleFields = 20
	MinColumnWidth   = 1
	MaxColumnWidth   = 50

	RecommendedWidthLow  = 95
	RecommendedWidthHigh = 105
)

// Category groups fields in the settings UI.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// Field describes one printable column.
type Field struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	DefaultVisible bool   `json:"defaultVisible"`
	MinWidth       int    `json:"minWidth"`
	MaxWidth       int    `json:"maxWidth"`
	Required       bool   `json:"required"`

	// Set only on custom field entries.
	ID        string `json:"id,omitempty"`
	FieldName string `json:"fieldName,omitempty"`
	FieldType string `json:"fieldType,omitempty"`
}

var Categories = []Category{
	{Key: "basic", Label: "Basic Information", Order: 1},
	{Key: "pricing", Label: "Pricing & Values", Order: 2},
	{Key: "tax", Label: "Tax Information", Order: 3},
	{Key: "compliance", Label: "Compliance & SRO", Order: 4},
	{Key: "custom", Label: "Custom Fields", Order: 5},
}

// BuiltinFields is the fixed catalog, in display order.
var BuiltinFields = []Field{
	{Key: "itemNumber", Label: "Item #", Description: "Item serial number", Category: "basic", DefaultVisible: true, MinWidth: 5, MaxWidth: 10},
	{Key: "productDescription", Label: "Product Description", Description: "Description of the product", Category: "basic", DefaultVisible: true, MinWidth: 15, MaxWidth: 40, Required: true},
	{Key: "hsCode", Label: "HS Code", Description: "Harmonized System Code", Category: "basic", DefaultVisible: true, MinWidth: 8, MaxWidth: 15, Required: true},
	{Key: "quantity", Label: "Quantity", Description: "Quantity of items", Category: "basic", DefaultVisible: true, MinWidth: 6, MaxWidth: 12, Required: true},
	{Key: "uoM", Label: "UoM", Description: "Unit of Measurement", Category: "basic", DefaultVisible: true, MinWidth: 5, MaxWidth: 10, Required: true},
	{Key: "rate", Label: "Rate", Description: "Tax rate", Category: "basic", DefaultVisible: true, MinWidth: 6, MaxWidth: 12, Required: true},
	{Key: "totalValues", Label: "Total Value", Description: "Total value including tax", Category: "pricing", DefaultVisible: true, MinWidth: 8, MaxWidth: 15, Required: true},
	{Key: "valueSalesExcludingST", Label: "Value (Excl. ST)", Description: "Value excluding sales tax", Category: "pricing", DefaultVisible: true, MinWidth: 8, MaxWidth: 15, Required: true},
	{Key: "fixedNotifiedValueOrRetailPrice", Label: "Retail Price", Description: "Fixed notified value or retail price", Category: "pricing", MinWidth: 8, MaxWidth: 15},
	{Key: "salesTaxApplicable", Label: "Sales Tax", Description: "Applicable sales tax", Category: "tax", DefaultVisible: true, MinWidth: 8, MaxWidth: 15, Required: true},
	{Key: "salesTaxWithheldAtSource", Label: "Tax Withheld", Description: "Sales tax withheld at source", Category: "tax", MinWidth: 8, MaxWidth: 15},
	{Key: "furtherTax", Label: "Further Tax", Description: "Additional further tax", Category: "tax", MinWidth: 6, MaxWidth: 12},
	{Key: "fedPayable", Label: "FED Payable", Description: "Federal Excise Duty payable", Category: "tax", MinWidth: 6, MaxWidth: 12},
	{Key: "discount", Label: "Discount", Description: "Discount amount", Category: "pricing", MinWidth: 6, MaxWidth: 12},
	{Key: "sroScheduleNo", Label: "SRO Schedule", Description: "SRO schedule number", Category: "compliance", MinWidth: 8, MaxWidth: 15},
	{Key: "sroItemSerialNo", Label: "SRO Item Serial", Description: "SRO item serial number", Category: "compliance", MinWidth: 8, MaxWidth: 15},
}

var builtinIndex = func() map[string]Field {
	idx := make(map[string]Field, len(BuiltinFields))
	for _, f := range BuiltinFields {
		idx[f.Key] = f
	}
	return idx
}()

// Builtin looks up a built-in field by key.
func Builtin(key string) (Field, bool) {
	f, ok := builtinIndex[key]
	return f, ok
}

// CustomFieldKey returns the visible-field key for a custom field id.
func CustomFieldKey(id uuid.UUID) string {
	return CustomFieldPrefix + id.String()
}

// IsCustomFieldKey reports whether key carries the custom field prefix, well-formed or not.
func IsCustomFieldKey(key string) bool {
	return strings.HasPrefix(key, CustomFieldPrefix)
}

// ParseCustomFieldKey extracts the custom field id from key.
func ParseCustomFieldKey(key string) (uuid.UUID, bool) {
	if !IsCustomFieldKey(key) {
		return uuid.Nil, false
	}
	raw := strings.TrimPrefix(key, CustomFieldPrefix)
	// uuid.Parse also accepts braces and urn forms; only the canonical 36-char form is a key.
	if len(raw) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CustomField builds the catalog entry for a user's active custom field.
func CustomField(id uuid.UUID, name, fieldType string) Field {
	maxWidth := 20
	if fieldType == "textarea" {
		maxWidth = 30
	}
	return Field{
		Key:         CustomFieldKey(id),
		ID:          id.String(),
		Label:       name,
		FieldName:   name,
		FieldType:   fieldType,
		Description: "Custom field: " + name,
		Category:    "custom",
		MinWidth:    8,
		MaxWidth:    maxWidth,
	}
}
