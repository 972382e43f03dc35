package printlayout

// Layout is a print configuration independent of storage.
type Layout struct {
	VisibleFields   []string       `json:"visibleFields"`
	ColumnWidths    map[string]int `json:"columnWidths"`
	FontSize        string         `json:"fontSize"`
	TableBorders    bool           `json:"tableBorders"`
	ShowItemNumbers bool           `json:"showItemNumbers"`
}

// Default returns a fresh copy of the layout used when a user has saved nothing.
func Default() Layout {
	return Layout{
		VisibleFields: []string{
			"itemNumber",
			"productDescription",
			"hsCode",
			"quantity",
			"uoM",
			"rate",
			"totalValues",
			"valueSalesExcludingST",
			"salesTaxApplicable",
		},
		ColumnWidths: map[string]int{
			"itemNumber":                      5,
			"productDescription":              20,
			"hsCode":                          10,
			"quantity":                        8,
			"uoM":                             6,
			"rate":                            8,
			"totalValues":                     10,
			"valueSalesExcludingST":           10,
			"fixedNotifiedValueOrRetailPrice": 10,
			"salesTaxApplicable":              10,
			"salesTaxWithheldAtSource":        10,
			"furtherTax":                      8,
			"fedPayable":                      8,
			"discount":                        8,
			"sroScheduleNo":                   10,
			"sroItemSerialNo":                 10,
		},
		FontSize:        "small",
		TableBorders:    true,
		ShowItemNumbers: true,
	}
}

// TotalWidth sums the widths of the visible fields.
func (l Layout) TotalWidth() int {
	total := 0
	for _, key := range l.VisibleFields {
		total += l.ColumnWidths[key]
	}
	return total
}

// Prune drops custom field keys for which keep returns false from both the visible
// list and the width map. It reports whether anything was removed.
func (l *Layout) Prune(keep func(key string) bool) bool {
	changed := false
	visible := make([]string, 0, len(l.VisibleFields))
	for _, key := range l.VisibleFields {
		if IsCustomFieldKey(key) && !keep(key) {
			changed = true
			continue
		}
		visible = append(visible, key)
	}
	widths := make(map[string]int, len(l.ColumnWidths))
	for key, w := range l.ColumnWidths {
		if IsCustomFieldKey(key) && !keep(key) {
			changed = true
			continue
		}
		widths[key] = w
	}
	l.VisibleFields = visible
	l.ColumnWidths = widths
	return changed
}
