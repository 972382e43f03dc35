package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/fbr"
	"fbr-invoice-backend/internal/logger"
	"fbr-invoice-backend/internal/model"
	"fbr-invoice-backend/internal/pdf"
	"fbr-invoice-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const invoiceDateLayout = "2006-01-02"

// --- DTOs ---

// FlexString accepts a JSON string or number. Gateway clients send extraTax either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type ItemCustomFieldInput struct {
	CustomFieldID string `json:"customFieldId" binding:"required,uuid"`
	Value         string `json:"value" binding:"required"`
}

type InvoiceItemInput struct {
	HSCodeID                        string                 `json:"hsCodeId" binding:"required,uuid"`
	ProductDescription              string                 `json:"productDescription" binding:"required,notblank"`
	Rate                            string                 `json:"rate" binding:"required,notblank"`
	UoM                             string                 `json:"uoM" binding:"required,notblank"`
	Quantity                        *decimal.Decimal       `json:"quantity" binding:"required,gte=0"`
	TotalValues                     *decimal.Decimal       `json:"totalValues" binding:"required,gte=0"`
	ValueSalesExcludingST           *decimal.Decimal       `json:"valueSalesExcludingST" binding:"required,gte=0"`
	FixedNotifiedValueOrRetailPrice *decimal.Decimal       `json:"fixedNotifiedValueOrRetailPrice" binding:"required,gte=0"`
	SalesTaxApplicable              *decimal.Decimal       `json:"salesTaxApplicable" binding:"required,gte=0"`
	SalesTaxWithheldAtSource        *decimal.Decimal       `json:"salesTaxWithheldAtSource" binding:"required,gte=0"`
	ExtraTax                        FlexString             `json:"extraTax"`
	FurtherTax                      *decimal.Decimal       `json:"furtherTax" binding:"required,gte=0"`
	SroScheduleNo                   string                 `json:"sroScheduleNo"`
	FedPayable                      *decimal.Decimal       `json:"fedPayable" binding:"required,gte=0"`
	Discount                        *decimal.Decimal       `json:"discount" binding:"required,gte=0"`
	SaleType                        string                 `json:"saleType"`
	SroItemSerialNo                 string                 `json:"sroItemSerialNo"`
	CustomFields                    []ItemCustomFieldInput `json:"customFields" binding:"omitempty,dive"`
}

// SubmitInvoiceRequest is the scenario flow. IsTestEnvironment defaults to true.
type SubmitInvoiceRequest struct {
	InvoiceType       string             `json:"invoiceType" binding:"required,notblank"`
	InvoiceDate       string             `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	BuyerID           string             `json:"buyerId" binding:"required,uuid"`
	ScenarioID        string             `json:"scenarioId" binding:"required,uuid"`
	InvoiceRefNo      string             `json:"invoiceRefNo"`
	IsTestEnvironment *bool              `json:"isTestEnvironment"`
	Items             []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
}

// ProductionInvoiceRequest always targets the production gateway. Each item carries its own saleType.
type ProductionInvoiceRequest struct {
	InvoiceType  string             `json:"invoiceType" binding:"required,notblank"`
	InvoiceDate  string             `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	BuyerID      string             `json:"buyerId" binding:"required,uuid"`
	InvoiceRefNo string             `json:"invoiceRefNo"`
	Items        []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
}

type ValidateInvoiceRequest struct {
	InvoiceNumber     string `json:"invoiceNumber" binding:"required,notblank"`
	IsTestEnvironment *bool  `json:"isTestEnvironment"`
}

type ValidateInvoiceResponse struct {
	InvoiceNumber    string          `json:"invoiceNumber"`
	ValidationResult json.RawMessage `json:"validationResult"`
}

// InvoiceListQuery mirrors the GET /invoices query string. StartDate and EndDate apply only together.
type InvoiceListQuery struct {
	InvoiceType       string
	IsTestEnvironment *bool
	StartDate         string
	EndDate           string
	Page              int
	Limit             int
}

type ItemCustomFieldResponse struct {
	CustomFieldID string `json:"customFieldId"`
	FieldName     string `json:"fieldName"`
	Value         string `json:"value"`
}

type InvoiceItemResponse struct {
	ID                              string                    `json:"id"`
	LineNo                          int                       `json:"lineNo"`
	HSCodeID                        *string                   `json:"hsCodeId"`
	HSCode                          string                    `json:"hsCode"`
	HSCodeDescription               string                    `json:"hsCodeDescription,omitempty"`
	ProductDescription              string                    `json:"productDescription"`
	Rate                            string                    `json:"rate"`
	UoM                             string                    `json:"uoM"`
	Quantity                        string                    `json:"quantity"`
	TotalValues                     string                    `json:"totalValues"`
	ValueSalesExcludingST           string                    `json:"valueSalesExcludingST"`
	FixedNotifiedValueOrRetailPrice string                    `json:"fixedNotifiedValueOrRetailPrice"`
	SalesTaxApplicable              string                    `json:"salesTaxApplicable"`
	SalesTaxWithheldAtSource        string                    `json:"salesTaxWithheldAtSource"`
	ExtraTax                        string                    `json:"extraTax"`
	FurtherTax                      string                    `json:"furtherTax"`
	SroScheduleNo                   string                    `json:"sroScheduleNo"`
	FedPayable                      string                    `json:"fedPayable"`
	Discount                        string                    `json:"discount"`
	SaleType                        string                    `json:"saleType"`
	SroItemSerialNo                 string                    `json:"sroItemSerialNo"`
	CustomFields                    []ItemCustomFieldResponse `json:"customFields"`
}

type SellerResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Province     string `json:"province"`
	Address      string `json:"address"`
	NTNCNIC      string `json:"ntncnic"`
}

type InvoiceResponse struct {
	ID                string                `json:"id"`
	UserID            string                `json:"userId"`
	BuyerID           string                `json:"buyerId"`
	ScenarioID        *string               `json:"scenarioId"`
	InvoiceType       string                `json:"invoiceType"`
	InvoiceDate       string                `json:"invoiceDate"`
	InvoiceRefNo      string                `json:"invoiceRefNo"`
	FBRInvoiceNumber  *string               `json:"fbrInvoiceNumber"`
	FBRResponse       json.RawMessage       `json:"fbrResponse"`
	IsTestEnvironment bool                  `json:"isTestEnvironment"`
	Items             []InvoiceItemResponse `json:"items"`
	Buyer             *BuyerResponse        `json:"buyer,omitempty"`
	Scenario          *ScenarioResponse     `json:"scenario,omitempty"`
	Seller            *SellerResponse       `json:"seller,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

type SubmitInvoiceResponse struct {
	Invoice     InvoiceResponse `json:"invoice"`
	FBRResponse json.RawMessage `json:"fbrResponse"`
}

// --- Interface ---

// Gateway is the outbound tax authority API. *fbr.Client satisfies it.
type Gateway interface {
	PostInvoice(ctx context.Context, env fbr.Environment, token string, payload fbr.Invoice) (json.RawMessage, error)
	ValidateInvoice(ctx context.Context, env fbr.Environment, token, invoiceNumber string) (json.RawMessage, error)
}

type InvoiceService interface {
	SubmitInvoice(ctx context.Context, userID string, req SubmitInvoiceRequest) (SubmitInvoiceResponse, error)
	SubmitProductionInvoice(ctx context.Context, userID string, req ProductionInvoiceRequest) (SubmitInvoiceResponse, error)
	ValidateInvoice(ctx context.Context, userID string, req ValidateInvoiceRequest) (ValidateInvoiceResponse, error)
	ListInvoices(ctx context.Context, userID string, query InvoiceListQuery) ([]InvoiceResponse, int64, error)
	GetInvoice(ctx context.Context, userID, id string) (InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, userID, id string) error
	// RenderInvoicePDF returns the document and a suggested file name.
	RenderInvoicePDF(ctx context.Context, userID, id string) ([]byte, string, error)
}

// --- Implementation ---

type invoiceService struct {
	invoiceRepo     repository.InvoiceRepository
	userRepo        repository.UserRepository
	buyerRepo       repository.BuyerRepository
	scenarioRepo    repository.ScenarioRepository
	hsCodeRepo      repository.HSCodeRepository
	customFieldRepo repository.CustomFieldRepository
	auditRepo       repository.AuditRepository
	printSettings   PrintSettingsService
	gateway         Gateway
	txManager       repository.TransactionManager
}

// InvoiceDeps groups the collaborators of NewInvoiceService.
type InvoiceDeps struct {
	Invoices      repository.InvoiceRepository
	Users         repository.UserRepository
	Buyers        repository.BuyerRepository
	Scenarios     repository.ScenarioRepository
	HSCodes       repository.HSCodeRepository
	CustomFields  repository.CustomFieldRepository
	Audit         repository.AuditRepository
	PrintSettings PrintSettingsService
	Gateway       Gateway
	TxManager     repository.TransactionManager
}

func NewInvoiceService(deps InvoiceDeps) InvoiceService {
	return &invoiceService{
		invoiceRepo:     deps.Invoices,
		userRepo:        deps.Users,
		buyerRepo:       deps.Buyers,
		scenarioRepo:    deps.Scenarios,
		hsCodeRepo:      deps.HSCodes,
		customFieldRepo: deps.CustomFields,
		auditRepo:       deps.Audit,
		printSettings:   deps.PrintSettings,
		gateway:         deps.Gateway,
		txManager:       deps.TxManager,
	}
}

const errInvoiceNotFound = "Invoice not found"

// submission is the resolved, ownership-checked form of either request flavour.
type submission struct {
	user        *model.User
	buyer       *model.Buyer
	scenario    *model.Scenario
	isTest      bool
	invoiceType string
	invoiceDate time.Time
	refNo       string
	items       []InvoiceItemInput
	hsCodes     map[uuid.UUID]model.HSCode
	fields      map[uuid.UUID]model.CustomField
}

func (s *invoiceService) SubmitInvoice(ctx context.Context, userID string, req SubmitInvoiceRequest) (SubmitInvoiceResponse, error) {
	isTest := boolOr(req.IsTestEnvironment, true)
	sub, token, err := s.prepare(ctx, userID, isTest, req.InvoiceType, req.InvoiceDate, req.BuyerID, req.InvoiceRefNo, req.Items)
	if err != nil {
		return SubmitInvoiceResponse{}, err
	}

	scenarioID, err := parseID(req.ScenarioID, "scenario")
	if err != nil {
		return SubmitInvoiceResponse{}, err
	}
	sub.scenario, err = s.scenarioRepo.FindByID(ctx, sub.user.ID, scenarioID)
	if err != nil {
		return SubmitInvoiceResponse{}, notFound(err, "Scenario not found or not assigned to you")
	}
	if err := s.resolveLines(ctx, sub); err != nil {
		return SubmitInvoiceResponse{}, err
	}

	return s.submit(ctx, sub, token)
}

func (s *invoiceService) SubmitProductionInvoice(ctx context.Context, userID string, req ProductionInvoiceRequest) (SubmitInvoiceResponse, error) {
	var invalid []apperr.FieldError
	for i, item := range req.Items {
		if strings.TrimSpace(item.SaleType) == "" {
			invalid = append(invalid, apperr.FieldError{
				Field:   fmt.Sprintf("items[%d].saleType", i),
				Message: "Sale type is required for each item",
			})
		}
		if item.ExtraTax != "" {
			if d, err := decimal.NewFromString(string(item.ExtraTax)); err != nil || d.IsNegative() {
				invalid = append(invalid, apperr.FieldError{
					Field:   fmt.Sprintf("items[%d].extraTax", i),
					Message: "Extra tax must be a number",
				})
			}
		}
	}
	if len(invalid) > 0 {
		return SubmitInvoiceResponse{}, apperr.Validation("Validation failed", invalid...)
	}

	sub, token, err := s.prepare(ctx, userID, false, req.InvoiceType, req.InvoiceDate, req.BuyerID, req.InvoiceRefNo, req.Items)
	if err != nil {
		return SubmitInvoiceResponse{}, err
	}
	if err := s.resolveLines(ctx, sub); err != nil {
		return SubmitInvoiceResponse{}, err
	}
	return s.submit(ctx, sub, token)
}

// prepare loads the seller and buyer and picks the post token for the environment.
func (s *invoiceService) prepare(ctx context.Context, userID string, isTest bool, invoiceType, invoiceDate, buyerID, refNo string, items []InvoiceItemInput) (*submission, string, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, "", err
	}
	date, err := time.Parse(invoiceDateLayout, invoiceDate)
	if err != nil {
		return nil, "", apperr.Validation("Validation failed", apperr.FieldError{
			Field: "invoiceDate", Message: "Invoice date must be in yyyy-MM-dd format",
		})
	}

	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, "", notFound(err, "User not found")
	}
	token := user.PostToken(isTest)
	if token == "" {
		return nil, "", apperr.BadRequest(fmt.Sprintf("FBR %s token not configured for this user", envLabel(isTest)))
	}

	bid, err := parseID(buyerID, "buyer")
	if err != nil {
		return nil, "", err
	}
	buyer, err := s.buyerRepo.FindByID(ctx, uid, bid)
	if err != nil {
		return nil, "", notFound(err, "Buyer not found")
	}

	return &submission{
		user:        user,
		buyer:       buyer,
		isTest:      isTest,
		invoiceType: strings.TrimSpace(invoiceType),
		invoiceDate: date,
		refNo:       strings.TrimSpace(refNo),
		items:       items,
	}, token, nil
}

// resolveLines fetches every referenced HS code and custom field in one query each.
func (s *invoiceService) resolveLines(ctx context.Context, sub *submission) error {
	hsIDs := make([]uuid.UUID, 0, len(sub.items))
	fieldIDs := make([]uuid.UUID, 0)
	seenHS := make(map[uuid.UUID]bool)
	seenField := make(map[uuid.UUID]bool)
	for _, item := range sub.items {
		id, err := parseID(item.HSCodeID, "HS Code")
		if err != nil {
			return err
		}
		if !seenHS[id] {
			seenHS[id] = true
			hsIDs = append(hsIDs, id)
		}
		for _, cf := range item.CustomFields {
			fid, err := parseID(cf.CustomFieldID, "custom field")
			if err != nil {
				return err
			}
			if !seenField[fid] {
				seenField[fid] = true
				fieldIDs = append(fieldIDs, fid)
			}
		}
	}

	codes, err := s.hsCodeRepo.FindByIDs(ctx, sub.user.ID, hsIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch hs codes: %w", err)
	}
	if len(codes) != len(hsIDs) {
		return apperr.NotFound("One or more HS codes not found")
	}
	sub.hsCodes = make(map[uuid.UUID]model.HSCode, len(codes))
	for _, c := range codes {
		sub.hsCodes[c.ID] = c
	}

	sub.fields = make(map[uuid.UUID]model.CustomField, len(fieldIDs))
	if len(fieldIDs) == 0 {
		return nil
	}
	fields, err := s.customFieldRepo.FindByIDs(ctx, sub.user.ID, fieldIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch custom fields: %w", err)
	}
	for _, f := range fields {
		if f.IsActive {
			sub.fields[f.ID] = f
		}
	}
	if len(sub.fields) != len(fieldIDs) {
		return apperr.NotFound("One or more custom fields not found")
	}
	return nil
}

// submit makes the single gateway call and persists only after it succeeds.
func (s *invoiceService) submit(ctx context.Context, sub *submission, token string) (SubmitInvoiceResponse, error) {
	log := logger.FromContext(ctx)
	env := fbr.EnvironmentFor(sub.isTest)

	body, err := s.gateway.PostInvoice(ctx, env, token, buildPayload(sub))
	if err != nil {
		return SubmitInvoiceResponse{}, err
	}

	var fbrNumber *string
	number, keys, err := fbr.InvoiceNumber(body)
	if err != nil {
		log.Warn("fbr response carries no invoice number",
			zap.String("environment", string(env)),
			zap.Strings("response_keys", keys),
		)
	} else {
		fbrNumber = &number
	}

	invoice := buildInvoice(sub, fbrNumber, body)
	var saved *model.Invoice
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.invoiceRepo.Create(txCtx, invoice); err != nil {
			return fmt.Errorf("failed to save invoice: %w", err)
		}
		if err := recordAudit(txCtx, s.auditRepo, sub.user.ID, model.ActionSubmitInvoice,
			invoice.ID.String(), invoice.InvoiceType, map[string]interface{}{
				"fbrInvoiceNumber":  fbrNumber,
				"isTestEnvironment": sub.isTest,
				"buyerId":           sub.buyer.ID.String(),
				"itemCount":         len(invoice.Items),
			}); err != nil {
			return err
		}
		var err error
		saved, err = s.invoiceRepo.FindByIDWithRelations(txCtx, sub.user.ID, invoice.ID, false)
		return err
	})
	if err != nil {
		// The gateway has already accepted the invoice; keep enough to reconcile by hand.
		log.Error("accepted invoice could not be persisted",
			zap.String("environment", string(env)),
			zap.Stringp("fbr_invoice_number", fbrNumber),
			zap.Error(err),
		)
		return SubmitInvoiceResponse{}, err
	}

	return SubmitInvoiceResponse{Invoice: toInvoiceResponse(saved), FBRResponse: body}, nil
}

func (s *invoiceService) ValidateInvoice(ctx context.Context, userID string, req ValidateInvoiceRequest) (ValidateInvoiceResponse, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return ValidateInvoiceResponse{}, err
	}
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return ValidateInvoiceResponse{}, notFound(err, "User not found")
	}

	isTest := boolOr(req.IsTestEnvironment, true)
	token := user.ValidateToken(isTest)
	if token == "" {
		return ValidateInvoiceResponse{}, apperr.BadRequest(
			fmt.Sprintf("FBR %s validation token not configured for this user", envLabel(isTest)))
	}

	number := strings.TrimSpace(req.InvoiceNumber)
	result, err := s.gateway.ValidateInvoice(ctx, fbr.EnvironmentFor(isTest), token, number)
	if err != nil {
		return ValidateInvoiceResponse{}, err
	}
	return ValidateInvoiceResponse{InvoiceNumber: number, ValidationResult: result}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, userID string, query InvoiceListQuery) ([]InvoiceResponse, int64, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, 0, err
	}
	filter := repository.InvoiceListFilter{
		UserID:            uid,
		InvoiceType:       strings.TrimSpace(query.InvoiceType),
		IsTestEnvironment: query.IsTestEnvironment,
		Page:              query.Page,
		Limit:             query.Limit,
	}
	if query.StartDate != "" && query.EndDate != "" {
		start, err := time.Parse(invoiceDateLayout, query.StartDate)
		if err != nil {
			return nil, 0, apperr.BadRequest("startDate must be in yyyy-MM-dd format")
		}
		end, err := time.Parse(invoiceDateLayout, query.EndDate)
		if err != nil {
			return nil, 0, apperr.BadRequest("endDate must be in yyyy-MM-dd format")
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.StartDate, filter.EndDate = &start, &end
	}

	invoices, total, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	res := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		res = append(res, toInvoiceResponse(&invoices[i]))
	}
	return res, total, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, userID, id string) (InvoiceResponse, error) {
	invoice, err := s.loadFull(ctx, userID, id)
	if err != nil {
		return InvoiceResponse{}, err
	}
	return toInvoiceResponse(invoice), nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, userID, id string) error {
	uid, err := parseID(userID, "user")
	if err != nil {
		return err
	}
	iid, err := parseID(id, "invoice")
	if err != nil {
		return err
	}
	invoice, err := s.invoiceRepo.FindByID(ctx, uid, iid)
	if err != nil {
		return notFound(err, errInvoiceNotFound)
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.invoiceRepo.Delete(txCtx, invoice); err != nil {
			return fmt.Errorf("failed to delete invoice: %w", err)
		}
		return recordAudit(txCtx, s.auditRepo, uid, model.ActionDeleteInvoice,
			invoice.ID.String(), invoice.InvoiceType, map[string]interface{}{
				"fbrInvoiceNumber":  invoice.FBRInvoiceNumber,
				"isTestEnvironment": invoice.IsTestEnvironment,
			})
	})
}

func (s *invoiceService) RenderInvoicePDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	invoice, err := s.loadFull(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	layout, err := s.printSettings.Layout(ctx, invoice.UserID)
	if err != nil {
		return nil, "", err
	}
	fields, err := s.customFieldRepo.List(ctx, invoice.UserID, true)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch custom fields: %w", err)
	}
	names := make(map[uuid.UUID]string, len(fields))
	for _, f := range fields {
		names[f.ID] = f.FieldName
	}
	doc, err := pdf.Render(invoice, layout, names)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	name := invoice.ID.String()
	if invoice.FBRInvoiceNumber != nil && *invoice.FBRInvoiceNumber != "" {
		name = *invoice.FBRInvoiceNumber
	}
	return doc, "invoice-" + name + ".pdf", nil
}

func (s *invoiceService) loadFull(ctx context.Context, userID, id string) (*model.Invoice, error) {
	uid, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	iid, err := parseID(id, "invoice")
	if err != nil {
		return nil, err
	}
	invoice, err := s.invoiceRepo.FindByIDWithRelations(ctx, uid, iid, true)
	if err != nil {
		return nil, notFound(err, errInvoiceNotFound)
	}
	return invoice, nil
}

func envLabel(isTest bool) string {
	if isTest {
		return "test"
	}
	return "production"
}

// --- Payload and model builders ---

// buildPayload projects the submission onto the gateway schema. In the scenario flow every
// line takes the scenario's sales type; custom field values are never sent.
func buildPayload(sub *submission) fbr.Invoice {
	payload := fbr.Invoice{
		InvoiceType:           sub.invoiceType,
		InvoiceDate:           sub.invoiceDate.Format(invoiceDateLayout),
		SellerNTNCNIC:         sub.user.NTNCNIC,
		SellerBusinessName:    sub.user.BusinessName,
		SellerProvince:        sub.user.Province,
		SellerAddress:         sub.user.Address,
		BuyerNTNCNIC:          sub.buyer.NTNCNIC,
		BuyerBusinessName:     sub.buyer.BusinessName,
		BuyerProvince:         sub.buyer.Province,
		BuyerAddress:          sub.buyer.Address,
		BuyerRegistrationType: sub.buyer.RegistrationType,
		InvoiceRefNo:          sub.refNo,
		Items:                 make([]fbr.Item, 0, len(sub.items)),
	}
	if sub.scenario != nil {
		payload.ScenarioID = sub.scenario.ScenarioCode
	}

	for _, item := range sub.items {
		hsID, _ := uuid.Parse(item.HSCodeID)
		payload.Items = append(payload.Items, fbr.Item{
			HSCode:                          sub.hsCodes[hsID].HSCode,
			ProductDescription:              strings.TrimSpace(item.ProductDescription),
			Rate:                            strings.TrimSpace(item.Rate),
			UoM:                             strings.TrimSpace(item.UoM),
			Quantity:                        num(item.Quantity),
			TotalValues:                     num(item.TotalValues),
			ValueSalesExcludingST:           num(item.ValueSalesExcludingST),
			FixedNotifiedValueOrRetailPrice: num(item.FixedNotifiedValueOrRetailPrice),
			SalesTaxApplicable:              num(item.SalesTaxApplicable),
			SalesTaxWithheldAtSource:        num(item.SalesTaxWithheldAtSource),
			ExtraTax:                        string(item.ExtraTax),
			FurtherTax:                      num(item.FurtherTax),
			SroScheduleNo:                   strings.TrimSpace(item.SroScheduleNo),
			FedPayable:                      num(item.FedPayable),
			Discount:                        num(item.Discount),
			SaleType:                        lineSaleType(sub, item),
			SroItemSerialNo:                 strings.TrimSpace(item.SroItemSerialNo),
		})
	}
	return payload
}

func lineSaleType(sub *submission, item InvoiceItemInput) string {
	if sub.scenario != nil {
		return sub.scenario.SalesType
	}
	return strings.TrimSpace(item.SaleType)
}

func buildInvoice(sub *submission, fbrNumber *string, body json.RawMessage) *model.Invoice {
	invoice := &model.Invoice{
		UserID:            sub.user.ID,
		BuyerID:           sub.buyer.ID,
		InvoiceType:       sub.invoiceType,
		InvoiceDate:       sub.invoiceDate,
		InvoiceRefNo:      sub.refNo,
		FBRInvoiceNumber:  fbrNumber,
		FBRResponse:       datatypes.JSON(body),
		IsTestEnvironment: sub.isTest,
		Items:             make([]model.InvoiceItem, 0, len(sub.items)),
	}
	if sub.scenario != nil {
		invoice.ScenarioID = &sub.scenario.ID
	}

	for i, item := range sub.items {
		hsID, _ := uuid.Parse(item.HSCodeID)
		values := make([]model.ItemCustomField, 0, len(item.CustomFields))
		for _, cf := range item.CustomFields {
			fid, _ := uuid.Parse(cf.CustomFieldID)
			values = append(values, model.ItemCustomField{
				CustomFieldID: fid,
				FieldName:     sub.fields[fid].FieldName,
				Value:         cf.Value,
			})
		}
		invoice.Items = append(invoice.Items, model.InvoiceItem{
			LineNo:                          i + 1,
			HSCodeID:                        &hsID,
			HSCode:                          sub.hsCodes[hsID].HSCode,
			ProductDescription:              strings.TrimSpace(item.ProductDescription),
			Rate:                            strings.TrimSpace(item.Rate),
			UoM:                             strings.TrimSpace(item.UoM),
			Quantity:                        dec(item.Quantity),
			TotalValues:                     dec(item.TotalValues),
			ValueSalesExcludingST:           dec(item.ValueSalesExcludingST),
			FixedNotifiedValueOrRetailPrice: dec(item.FixedNotifiedValueOrRetailPrice),
			SalesTaxApplicable:              dec(item.SalesTaxApplicable),
			SalesTaxWithheldAtSource:        dec(item.SalesTaxWithheldAtSource),
			ExtraTax:                        string(item.ExtraTax),
			FurtherTax:                      dec(item.FurtherTax),
			SroScheduleNo:                   strings.TrimSpace(item.SroScheduleNo),
			FedPayable:                      dec(item.FedPayable),
			Discount:                        dec(item.Discount),
			SaleType:                        lineSaleType(sub, item),
			SroItemSerialNo:                 strings.TrimSpace(item.SroItemSerialNo),
			CustomFields:                    datatypes.NewJSONType(values),
		})
	}
	return invoice
}

func dec(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func num(d *decimal.Decimal) float64 {
	return dec(d).InexactFloat64()
}

// --- Response mappers ---

func toInvoiceResponse(inv *model.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:                inv.ID.String(),
		UserID:            inv.UserID.String(),
		BuyerID:           inv.BuyerID.String(),
		InvoiceType:       inv.InvoiceType,
		InvoiceDate:       inv.InvoiceDate.Format(invoiceDateLayout),
		InvoiceRefNo:      inv.InvoiceRefNo,
		FBRInvoiceNumber:  inv.FBRInvoiceNumber,
		FBRResponse:       json.RawMessage(inv.FBRResponse),
		IsTestEnvironment: inv.IsTestEnvironment,
		Items:             make([]InvoiceItemResponse, 0, len(inv.Items)),
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
	if len(res.FBRResponse) == 0 {
		res.FBRResponse = json.RawMessage("null")
	}
	if inv.ScenarioID != nil {
		id := inv.ScenarioID.String()
		res.ScenarioID = &id
	}
	for i := range inv.Items {
		res.Items = append(res.Items, toInvoiceItemResponse(&inv.Items[i]))
	}
	if inv.Buyer != nil {
		b := toBuyerResponse(inv.Buyer)
		res.Buyer = &b
	}
	if inv.Scenario != nil {
		sc := toScenarioResponse(inv.Scenario)
		res.Scenario = &sc
	}
	if inv.User != nil {
		res.Seller = &SellerResponse{
			Name:         inv.User.Name,
			Email:        inv.User.Email,
			BusinessName: inv.User.BusinessName,
			Province:     inv.User.Province,
			Address:      inv.User.Address,
			NTNCNIC:      inv.User.NTNCNIC,
		}
	}
	return res
}

func toInvoiceItemResponse(it *model.InvoiceItem) InvoiceItemResponse {
	res := InvoiceItemResponse{
		ID:                              it.ID.String(),
		LineNo:                          it.LineNo,
		HSCode:                          it.HSCode,
		ProductDescription:              it.ProductDescription,
		Rate:                            it.Rate,
		UoM:                             it.UoM,
		Quantity:                        it.Quantity.String(),
		TotalValues:                     it.TotalValues.String(),
		ValueSalesExcludingST:           it.ValueSalesExcludingST.String(),
		FixedNotifiedValueOrRetailPrice: it.FixedNotifiedValueOrRetailPrice.String(),
		SalesTaxApplicable:              it.SalesTaxApplicable.String(),
		SalesTaxWithheldAtSource:        it.SalesTaxWithheldAtSource.String(),
		ExtraTax:                        it.ExtraTax,
		FurtherTax:                      it.FurtherTax.String(),
		SroScheduleNo:                   it.SroScheduleNo,
		FedPayable:                      it.FedPayable.String(),
		Discount:                        it.Discount.String(),
		SaleType:                        it.SaleType,
		SroItemSerialNo:                 it.SroItemSerialNo,
	}
	if it.HSCodeID != nil {
		id := it.HSCodeID.String()
		res.HSCodeID = &id
	}
	if it.HSCodeRef != nil {
		res.HSCodeDescription = it.HSCodeRef.Description
	}
	values := it.CustomFields.Data()
	res.CustomFields = make([]ItemCustomFieldResponse, 0, len(values))
	for _, v := range values {
		res.CustomFields = append(res.CustomFields, ItemCustomFieldResponse{
			CustomFieldID: v.CustomFieldID.String(),
			FieldName:     v.FieldName,
			Value:         v.Value,
		})
	}
	return res
}
