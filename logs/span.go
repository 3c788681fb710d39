package logs

// Span identifies one unit of work, e.g. a capture session, across log
// records.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
