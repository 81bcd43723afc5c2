package constant

// Span names are "<scope>.<operation>"; repositories add the entity name.
const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"
	OtelIdentityScopeName   = "identity"

	OtelQueryAttributeKey = "query"
)
