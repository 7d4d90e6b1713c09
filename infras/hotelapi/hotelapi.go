package hotelapi

//go:generate go run go.uber.org/mock/mockgen -source=./hotelapi.go -destination=./mocks/hotelapi_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reception/config"
	"reception/infras/metrics"
	"reception/infras/otel"
	"reception/shared/constant"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Scripts exposed by the hotel backend.
const (
	ScriptBilling     = "comprehensive_billing_api.php"
	ScriptCheckout    = "checkin_checkout_api.php"
	ScriptWalkIn      = "walk_in_payment.php"
	ScriptRazorpay    = "razorpay_payment.php"
	ScriptRoomStatus  = "room_status_api.php"
	ScriptUpdateStaff = "auth/update_profile.php"
)

// Payload keys. Each action answers with exactly one of them.
const (
	PayloadStats    = "stats"
	PayloadPayments = "payments"
	PayloadData     = "data"
	PayloadNone     = ""
)

// System status values that mean the backend is not set up yet.
const (
	SystemStatusTablesMissing = "tables_missing"
	SystemStatusNotConfigured = "not_configured"
)

const maxErrorBody = 512

// Request describes one call to the hotel API.
type Request struct {
	Method  string
	Script  string
	Action  string
	Query   url.Values
	Body    any
	Payload string
}

// Result is the envelope metadata of a successful call.
type Result struct {
	Message      string
	SystemStatus string
}

// NotConfigured reports a backend that is reachable but missing its tables.
func (r Result) NotConfigured() bool {
	return r.SystemStatus == SystemStatusTablesMissing || r.SystemStatus == SystemStatusNotConfigured
}

type envelope struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	SystemStatus string          `json:"system_status"`
	Stats        json.RawMessage `json:"stats"`
	Payments     json.RawMessage `json:"payments"`
	Data         json.RawMessage `json:"data"`
}

func (e envelope) payload(key string) json.RawMessage {
	switch key {
	case PayloadStats:
		return e.Stats
	case PayloadPayments:
		return e.Payments
	case PayloadData:
		return e.Data
	default:
		return nil
	}
}

type Client interface {
	// Do sends req and decodes the pinned payload into out when out is non-nil.
	Do(ctx context.Context, req Request, out any) (Result, error)
}

type clientImpl struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return NewWithHTTPClient(cfg, ot, &http.Client{
		Timeout: time.Duration(cfg.HotelAPI.TimeoutSeconds) * time.Second,
	})
}

func NewWithHTTPClient(cfg *config.Config, ot otel.Otel, httpClient *http.Client) Client {
	limit := rate.Inf
	if cfg.HotelAPI.RatePerSecond > 0 {
		limit = rate.Limit(cfg.HotelAPI.RatePerSecond)
	}

	burst := cfg.HotelAPI.Burst
	if burst <= 0 {
		burst = 1
	}

	return &clientImpl{
		baseURL:    strings.TrimRight(cfg.HotelAPI.BaseURL, "/"),
		userAgent:  cfg.HotelAPI.UserAgent,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		otel:       ot,
	}
}

// WithToken attaches the staff bearer token forwarded to the hotel API.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyToken, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(constant.ContextKeyToken).(string)

	return token
}

func (c *clientImpl) endpoint(req Request) string {
	query := url.Values{}
	for key, values := range req.Query {
		query[key] = values
	}

	if req.Action != "" {
		query.Set("action", req.Action)
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(req.Script, "/"))
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	return endpoint
}

func (c *clientImpl) label(req Request) string {
	if req.Action != "" {
		return req.Action
	}

	return strings.TrimSuffix(req.Script, ".php")
}

func (c *clientImpl) Do(ctx context.Context, req Request, out any) (res Result, err error) {
	action := c.label(req)

	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".hotelapi")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelActionAttributeKey, action)

	started := time.Now()
	defer func() {
		metrics.ObserveUpstream(action, outcome(err), time.Since(started).Seconds())
	}()

	if err = c.limiter.Wait(ctx); err != nil {
		return res, fmt.Errorf("%w: %s: %w", ErrTransport, action, err)
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return res, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("hotel api request failed")

		return res, fmt.Errorf("%w: %s: %w", ErrTransport, action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, fmt.Errorf("%w: %s: read body: %w", ErrTransport, action, err)
	}

	var env envelope
	if err = json.Unmarshal(body, &env); err != nil {
		log.Error().Err(err).Str("action", action).Int("status", resp.StatusCode).Msg("hotel api returned non-json body")

		return res, fmt.Errorf("%w: %s: http %d: %s", ErrTransport, action, resp.StatusCode, truncate(body))
	}

	res = Result{Message: env.Message, SystemStatus: env.SystemStatus}

	if !env.Success {
		log.Warn().Str("action", action).Str("message", env.Message).Str("system_status", env.SystemStatus).Msg("hotel api rejected request")

		return res, &APIError{Action: action, Message: env.Message, SystemStatus: env.SystemStatus}
	}

	if out == nil || req.Payload == PayloadNone {
		return res, nil
	}

	payload := env.payload(req.Payload)
	if len(payload) == 0 || string(payload) == "null" {
		if res.NotConfigured() {
			return res, nil
		}

		return res, fmt.Errorf("%w: %s: missing %q", ErrSchema, action, req.Payload)
	}

	if err = json.Unmarshal(payload, out); err != nil {
		return res, fmt.Errorf("%w: %s: decode %q: %w", ErrSchema, action, req.Payload, err)
	}

	return res, nil
}

func (c *clientImpl) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", c.label(req), err)
		}

		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.endpoint(req), body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	if req.Body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if c.userAgent != "" {
		httpReq.Header.Set(constant.RequestHeaderUserAgent, c.userAgent)
	}

	if token := tokenFrom(ctx); token != "" {
		httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	return httpReq, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsTransport(err):
		return "transport_error"
	default:
		return "rejected"
	}
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}

	return string(body)
}
