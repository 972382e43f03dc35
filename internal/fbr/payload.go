package fbr

// Invoice is the body of postinvoicedata. Numeric fields are sent as JSON numbers and
// optional strings as "" rather than being omitted.
type Invoice struct {
	InvoiceType           string `json:"invoiceType"`
	InvoiceDate           string `json:"invoiceDate"`
	SellerNTNCNIC         string `json:"sellerNTNCNIC"`
	SellerBusinessName    string `json:"sellerBusinessName"`
	SellerProvince        string `json:"sellerProvince"`
	SellerAddress         string `json:"sellerAddress"`
	BuyerNTNCNIC          string `json:"buyerNTNCNIC"`
	BuyerBusinessName     string `json:"buyerBusinessName"`
	BuyerProvince         string `json:"buyerProvince"`
	BuyerAddress          string `json:"buyerAddress"`
	BuyerRegistrationType string `json:"buyerRegistrationType"`
	InvoiceRefNo          string `json:"invoiceRefNo"`
	ScenarioID            string `json:"scenarioId,omitempty"`
	Items                 []Item `json:"items"`
}

// Item is one line of Invoice. ExtraTax stays a string because the gateway accepts "" for it.
type Item struct {
	HSCode                          string  `json:"hsCode"`
	ProductDescription              string  `json:"productDescription"`
	Rate                            string  `json:"rate"`
	UoM                             string  `json:"uoM"`
	Quantity                        float64 `json:"quantity"`
	TotalValues                     float64 `json:"totalValues"`
	ValueSalesExcludingST           float64 `json:"valueSalesExcludingST"`
	FixedNotifiedValueOrRetailPrice float64 `json:"fixedNotifiedValueOrRetailPrice"`
	SalesTaxApplicable              float64 `json:"salesTaxApplicable"`
	SalesTaxWithheldAtSource        float64 `json:"salesTaxWithheldAtSource"`
	ExtraTax                        string  `json:"extraTax"`
	FurtherTax                      float64 `json:"furtherTax"`
	SroScheduleNo                   string  `json:"sroScheduleNo"`
	FedPayable                      float64 `json:"fedPayable"`
	Discount                        float64 `json:"discount"`
	SaleType                        string  `json:"saleType"`
	SroItemSerialNo                 string  `json:"sroItemSerialNo"`
}

type validateRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
}
