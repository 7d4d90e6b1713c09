package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyToken     contextKey = "bearer_token"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleReception  = "reception"
)

const (
	RequestParamID        = "id"
	RequestParamLimit     = "limit"
	RequestParamPath      = "path"
	RequestParamFloor     = "floor"
	RequestParamStatus    = "status"
	RequestParamQuery     = "q"
	RequestParamServerTS  = "server_time"
	RequestParamFormat    = "format"
	RequestParamSeconds   = "seconds"
	RequestParamBookingID = "booking_id"
	RequestParamToken     = "token"
)

const (
	DefaultValueHistoryLimit = 5
	DefaultValueGuestLimit   = 20
	MaxValueHistoryLimit     = 500
)

const (
	DateFormat      = time.RFC3339
	APIDateFormat   = "2006-01-02 15:04:05"
	APIDayFormat    = "2006-01-02"
	DisplayDayFmt   = "Jan 2, 2006"
	MinutesToSecond = 60
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelEventScopeName    = "event"
	OtelExternalScopeName = "external"
	OtelS3ScopeName       = "s3"
	OtelJobScopeName      = "job"

	OtelActionAttributeKey = "hotelapi.action"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderIdempotencyKey     = "Idempotency-Key"
	RequestHeaderContentDisposition = "Content-Disposition"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyPrefix = "reception"
	CacheSeparator = ":"
)

const (
	Asterix = "*"
	Empty   = ""
)

const (
	MinPhoneDigits = 10
)

var (
	PaymentMethods = []string{"cash", "credit_card", "debit_card", "upi", "bank_transfer", "cheque", "online_wallet"}
	RoomStatuses   = []string{"available", "booked", "occupied", "cleaning", "maintenance"}
)
