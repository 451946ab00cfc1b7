package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where handlers find the trace ID; the error
	// envelope echoes it back in its traceId field
	TraceIDContextKey = "trace_id"
)

// RequestID assigns every request a trace ID, honoring one supplied by the
// caller so a client-side report can be matched to server logs
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" outside the middleware chain
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
