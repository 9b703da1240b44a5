package testutil

import (
	"net/http"
	"time"

	"inkwell/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context, simulating the
// requestid middleware for handler tests.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	return req.WithContext(ctx)
}

// WithTime pins the request-scoped time, simulating the requesttime
// middleware for handler tests.
func WithTime(req *http.Request, t time.Time) *http.Request {
	ctx := requestcontext.WithTime(req.Context(), t)
	return req.WithContext(ctx)
}

// WithClientIP sets the client IP, simulating the metadata middleware for
// handler tests.
func WithClientIP(req *http.Request, ip string) *http.Request {
	ctx := requestcontext.WithClientIP(req.Context(), ip)
	return req.WithContext(ctx)
}
