// Package pdf renders a stored invoice as an A4 document laid out by the owner's print settings.
package pdf

import (
	"fmt"
	"strconv"

	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/printlayout"

	"github.com/google/uuid"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 104, Blue: 71}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBorder  = &props.Color{Red: 160, Green: 160, Blue: 160}
)

// fontSizes maps the stored font size to points for table text.
var fontSizes = map[string]float64{
	model.FontSmall:  7,
	model.FontMedium: 8.5,
	model.FontLarge:  10,
}

// column is one printable item column after layout resolution.
type column struct {
	key   string
	label string
	width int
}

// Render builds the document for inv. inv must carry Items, Buyer and User. fieldNames maps the
// owner's custom field ids to their current names and labels custom columns.
// A layout that resolves to no columns prints the default columns instead.
func Render(inv *model.Invoice, layout printlayout.Layout, fieldNames map[uuid.UUID]string) ([]byte, error) {
	columns := resolveColumns(inv, layout, fieldNames)
	if len(columns) == 0 {
		fallback := printlayout.Default()
		fallback.ShowItemNumbers = layout.ShowItemNumbers
		columns = resolveColumns(inv, fallback, fieldNames)
	}
	grid := 0
	for _, c := range columns {
		grid += c.width
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(grid).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Tax Invoice", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRows(inv, grid)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(inv, grid))
	m.AddRows(line.NewRow(4))

	size := fontSizes[layout.FontSize]
	if size == 0 {
		size = fontSizes[model.FontSmall]
	}
	m.AddRows(tableHeader(columns, size, layout.TableBorders))
	for i := range inv.Items {
		m.AddRows(tableRow(&inv.Items[i], columns, size, layout.TableBorders))
	}

	if inv.FBRInvoiceNumber != nil && *inv.FBRInvoiceNumber != "" {
		m.AddRows(line.NewRow(6))
		m.AddRows(qrRow(*inv.FBRInvoiceNumber, grid))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// resolveColumns keeps the configured order. Custom keys print the field's current name, else the
// name captured on the first line carrying a value; the item number column honours ShowItemNumbers.
func resolveColumns(inv *model.Invoice, layout printlayout.Layout, fieldNames map[uuid.UUID]string) []column {
	columns := make([]column, 0, len(layout.VisibleFields))
	for _, key := range layout.VisibleFields {
		if key == "itemNumber" && !layout.ShowItemNumbers {
			continue
		}
		width := layout.ColumnWidths[key]
		if width <= 0 {
			width = printlayout.MinColumnWidth
		}
		label := key
		if f, ok := printlayout.Builtin(key); ok {
			label = f.Label
		} else if id, ok := printlayout.ParseCustomFieldKey(key); ok {
			if name, found := fieldNames[id]; found {
				label = name
			} else {
				label = customFieldName(inv, id)
			}
		}
		columns = append(columns, column{key: key, label: label, width: width})
	}
	return columns
}

func customFieldName(inv *model.Invoice, id uuid.UUID) string {
	for _, it := range inv.Items {
		for _, v := range it.CustomFields.Data() {
			if v.CustomFieldID == id {
				return v.FieldName
			}
		}
	}
	return "Custom"
}

func headerRows(inv *model.Invoice, grid int) []core.Row {
	left, right := split(grid, 7, 12)
	number := "Pending"
	if inv.FBRInvoiceNumber != nil && *inv.FBRInvoiceNumber != "" {
		number = *inv.FBRInvoiceNumber
	}
	env := "Production"
	if inv.IsTestEnvironment {
		env = "Sandbox"
	}

	seller := "Seller"
	if inv.User != nil {
		seller = inv.User.BusinessName
	}
	return []core.Row{
		row.New(20).Add(
			col.New(left).Add(
				text.New(seller, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
				text.New(inv.InvoiceType, props.Text{Size: 9, Top: 9, Color: colorGray}),
			),
			col.New(right).Add(
				text.New("FBR Invoice No.", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1}),
				text.New(number, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6}),
				text.New("Date: "+inv.InvoiceDate.Format("2006-01-02")+"  |  "+env,
					props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
			),
		),
	}
}

func partyRow(inv *model.Invoice, grid int) core.Row {
	left, right := split(grid, 1, 2)
	var sellerLines, buyerLines []string
	if u := inv.User; u != nil {
		sellerLines = []string{u.BusinessName, "NTN/CNIC: " + u.NTNCNIC, u.Address, u.Province}
	}
	if b := inv.Buyer; b != nil {
		buyerLines = []string{b.BusinessName, "NTN/CNIC: " + b.NTNCNIC, b.Address, b.Province + " (" + b.RegistrationType + ")"}
	}
	return row.New(26).Add(
		col.New(left).Add(block("SELLER", sellerLines)...),
		col.New(right).Add(block("BUYER", buyerLines)...),
	)
}

func block(title string, lines []string) []core.Component {
	out := []core.Component{text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})}
	for i, l := range lines {
		out = append(out, text.New(l, props.Text{Size: 8, Top: float64(6 + i*5)}))
	}
	return out
}

func tableHeader(columns []column, size float64, borders bool) core.Row {
	r := row.New(8)
	for _, c := range columns {
		r.Add(cell(col.New(c.width).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: size, Top: 1.5, Left: 1, Right: 1,
		})), borders))
	}
	return r
}

func tableRow(it *model.InvoiceItem, columns []column, size float64, borders bool) core.Row {
	r := row.New(7)
	for _, c := range columns {
		a := align.Left
		if isNumeric(c.key) {
			a = align.Right
		}
		r.Add(cell(col.New(c.width).Add(text.New(valueOf(it, c.key), props.Text{
			Size: size, Align: a, Top: 1.5, Left: 1, Right: 1,
		})), borders))
	}
	return r
}

func cell(c core.Col, borders bool) core.Col {
	if !borders {
		return c
	}
	return c.WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorBorder, BorderThickness: 0.2})
}

func qrRow(number string, grid int) core.Row {
	left, right := split(grid, 1, 4)
	return row.New(35).Add(
		col.New(left).Add(code.NewQr(number, props.Rect{Percent: 95, Center: true})),
		col.New(right).Add(
			text.New("Verified e-invoice issued through the FBR digital invoicing gateway.",
				props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New(number, props.Text{Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3}),
		),
	)
}

func valueOf(it *model.InvoiceItem, key string) string {
	switch key {
	case "itemNumber":
		return strconv.Itoa(it.LineNo)
	case "productDescription":
		return it.ProductDescription
	case "hsCode":
		return it.HSCode
	case "quantity":
		return it.Quantity.String()
	case "uoM":
		return it.UoM
	case "rate":
		return it.Rate
	case "totalValues":
		return it.TotalValues.StringFixed(2)
	case "valueSalesExcludingST":
		return it.ValueSalesExcludingST.StringFixed(2)
	case "fixedNotifiedValueOrRetailPrice":
		return it.FixedNotifiedValueOrRetailPrice.StringFixed(2)
	case "salesTaxApplicable":
		return it.SalesTaxApplicable.StringFixed(2)
	case "salesTaxWithheldAtSource":
		return it.SalesTaxWithheldAtSource.StringFixed(2)
	case "furtherTax":
		return it.FurtherTax.StringFixed(2)
	case "fedPayable":
		return it.FedPayable.StringFixed(2)
	case "discount":
		return it.Discount.StringFixed(2)
	case "sroScheduleNo":
		return it.SroScheduleNo
	case "sroItemSerialNo":
		return it.SroItemSerialNo
	}
	if id, ok := printlayout.ParseCustomFieldKey(key); ok {
		for _, v := range it.CustomFields.Data() {
			if v.CustomFieldID == id {
				return v.Value
			}
		}
	}
	return ""
}

func isNumeric(key string) bool {
	f, ok := printlayout.Builtin(key)
	return ok && (f.Category == "pricing" || f.Category == "tax" || key == "quantity")
}

// split divides grid into two spans in the ratio num:den-num, each at least 1.
func split(grid, num, den int) (int, int) {
	left := grid * num / den
	if left < 1 {
		left = 1
	}
	right := grid - left
	if right < 1 {
		right = 1
	}
	return left, right
}
