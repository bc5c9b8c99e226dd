package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamEpoch    = "epoch"
	RequestParamDatetime = "*"
	RequestParamTimezone = "tz"
)

const (
	FormFieldDirection  = "direction"
	FormFieldInputValue = "input_value"
	FormFieldTimezone   = "timezone"
)

const (
	DirectionEpochToHuman = "epoch_to_human"
	DirectionHumanToEpoch = "human_to_epoch"
)

const (
	HealthStatusHealthy = "healthy"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelHTTPScopeName    = "http"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	RequestHeaderUserAgent   = "User-Agent"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeTextPlain = "text/plain; charset=utf-8"
	ContentTypeHTML      = "text/html; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
