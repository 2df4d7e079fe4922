package constant

import "time"

const (
	// ContextKeyRequestID is the fiber.Ctx#Locals key the request ID is
	// repopulated into after the logger middleware generated it.
	ContextKeyRequestID = "requestid"

	// RequestIDHeader is the response header carrying the request ID.
	RequestIDHeader = "X-FormSight-Request-ID"
)

const (
	// LiveSubjectPrefix prefixes the NATS subject per-frame score breakdowns
	// are published on. The session ID is appended.
	LiveSubjectPrefix = "formsight.live."

	// ReportSubjectPrefix prefixes the NATS subject final session reports
	// are published on. The session ID is appended.
	ReportSubjectPrefix = "formsight.report."

	// ReportArchiveKeyPrefix prefixes the Redis key a final session report
	// is archived under. The session ID is appended.
	ReportArchiveKeyPrefix = "formsight:report:"

	// ReportArchiveTTL is how long an archived final report stays
	// retrievable after session stop.
	ReportArchiveTTL = 14 * 24 * time.Hour
)

const (
	// SessionIDLength is the length of generated session identifiers.
	SessionIDLength = 20
)
