package fbr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"fbr-invoice-backend/internal/apperr"
	"fbr-invoice-backend/internal/config"
	"fbr-invoice-backend/internal/logger"
	"fbr-invoice-backend/internal/metrics"

	"go.uber.org/zap"
)

// Environment selects the gateway endpoint family and the user token.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

// EnvironmentFor maps the isTestEnvironment flag onto an Environment.
func EnvironmentFor(isTest bool) Environment {
	if isTest {
		return Sandbox
	}
	return Production
}

const (
	operationPost     = "post"
	operationValidate = "validate"

	maxResponseBytes = 1 << 20
)

// Client talks to the FBR digital invoicing gateway. It does not retry and does not set a
// timeout of its own.
type Client struct {
	httpClient        *http.Client
	sandboxBaseURL    string
	productionBaseURL string
	metrics           *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(cfg config.FBRConfig, opts ...Option) *Client {
	c := &Client{
		httpClient:        http.DefaultClient,
		sandboxBaseURL:    strings.TrimRight(cfg.SandboxBaseURL, "/"),
		productionBaseURL: strings.TrimRight(cfg.ProductionBaseURL, "/"),
	}
	if c.sandboxBaseURL == "" {
		c.sandboxBaseURL = config.DefaultFBRBaseURL
	}
	if c.productionBaseURL == "" {
		c.productionBaseURL = config.DefaultFBRBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostInvoice submits payload and returns the gateway's body verbatim.
func (c *Client) PostInvoice(ctx context.Context, env Environment, token string, payload Invoice) (json.RawMessage, error) {
	return c.do(ctx, operationPost, env, token, payload, "Failed to post invoice")
}

// ValidateInvoice asks the gateway to validate a previously issued invoice number.
func (c *Client) ValidateInvoice(ctx context.Context, env Environment, token, invoiceNumber string) (json.RawMessage, error) {
	return c.do(ctx, operationValidate, env, token, validateRequest{InvoiceNumber: invoiceNumber}, "Failed to validate invoice")
}

func (c *Client) endpoint(operation string, env Environment) string {
	path := "/postinvoicedata"
	if operation == operationValidate {
		path = "/validateinvoicedata"
	}
	if env == Production {
		return c.productionBaseURL + path
	}
	return c.sandboxBaseURL + path + "_sb"
}

func (c *Client) do(ctx context.Context, operation string, env Environment, token string, body any, fallback string) (json.RawMessage, error) {
	// A submission that has started runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContext(ctx)
	url := c.endpoint(operation, env)

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveGateway(operation, string(env), metrics.OutcomeUnreachable, time.Since(start))
		log.Error("fbr gateway unreachable",
			zap.String("operation", operation),
			zap.String("environment", string(env)),
			zap.String("endpoint", url),
			zap.Error(err),
		)
		return nil, apperr.Upstream(http.StatusBadGateway, "FBR API Error: gateway unreachable").Wrap(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveGateway(operation, string(env), metrics.OutcomeUnreachable, elapsed)
		return nil, apperr.Upstream(http.StatusBadGateway, "FBR API Error: gateway unreachable").Wrap(err)
	}
	result := normalizeBody(raw)

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("environment", string(env)),
		zap.String("endpoint", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", elapsed),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.ObserveGateway(operation, string(env), metrics.OutcomeRejected, elapsed)
		msg := messageOf(result)
		if msg == "" {
			msg = fallback
		}
		log.Warn("fbr gateway rejected request", append(fields, zap.String("message", msg))...)
		return nil, apperr.Upstream(resp.StatusCode, "FBR API Error: "+msg)
	}

	c.metrics.ObserveGateway(operation, string(env), metrics.OutcomeSuccess, elapsed)
	log.Info("fbr gateway call succeeded", fields...)
	return result, nil
}

// normalizeBody keeps JSON bodies verbatim and wraps anything else as {"raw": "<text>"}.
func normalizeBody(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	wrapped, _ := json.Marshal(map[string]string{"raw": string(raw)})
	return wrapped
}

func messageOf(body json.RawMessage) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

// ErrNoInvoiceNumber is returned by InvoiceNumber when the body carries no known key.
var ErrNoInvoiceNumber = errors.New("fbr response carries no invoice number")

// InvoiceNumber extracts the gateway-issued number, probing invoiceNumber then InvoiceNumber.
// On ErrNoInvoiceNumber the top-level keys of the body are returned for logging.
func InvoiceNumber(body json.RawMessage) (string, []string, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", nil, ErrNoInvoiceNumber
	}
	for _, key := range []string{"invoiceNumber", "InvoiceNumber"} {
		v, ok := top[key]
		if !ok {
			continue
		}
		if s := scalarString(v); s != "" {
			return s, nil, nil
		}
	}
	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "", keys, ErrNoInvoiceNumber
}

func scalarString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}
