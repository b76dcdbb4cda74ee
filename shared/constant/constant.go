package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID       = "id"
	RequestParamCafeID   = "cafe_id"
	RequestParamAPIKey   = "api_key"
	RequestParamLocation = "loc"
	RequestParamNewPrice = "new_price"
	RequestMaxMemory     = 10 << 20 // 10 MB
)

const (
	FormFieldName        = "name"
	FormFieldMapURL      = "map_url"
	FormFieldImgURL      = "img_url"
	FormFieldLocation    = "loc"
	FormFieldSockets     = "sockets"
	FormFieldToilet      = "toilet"
	FormFieldWifi        = "wifi"
	FormFieldCalls       = "calls"
	FormFieldSeats       = "seats"
	FormFieldCoffeePrice = "coffee_price"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeHTML              = "text/html; charset=utf-8"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
