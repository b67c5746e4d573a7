package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
	schoolIDKey  contextKey = "school_id"
	userIDKey    contextKey = "user_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context. Returns a no-op logger when
// none is attached, so callers never have to nil-check.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores the request ID and returns a logger tagged with it
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	enriched := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enriched), enriched
}

// WithSchoolID stores the school ID and returns a logger tagged with it
func WithSchoolID(ctx context.Context, logger *zap.Logger, schoolID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, schoolIDKey, schoolID)
	enriched := logger.With(zap.String("school_id", schoolID))
	return WithContext(ctx, enriched), enriched
}

// WithUserID stores the user ID and returns a logger tagged with it
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, userIDKey, userID)
	enriched := logger.With(zap.String("user_id", userID))
	return WithContext(ctx, enriched), enriched
}

// GetRequestID retrieves the request ID from context, empty when absent
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetSchoolID retrieves the school ID from context, empty when absent
func GetSchoolID(ctx context.Context) string {
	if schoolID, ok := ctx.Value(schoolIDKey).(string); ok {
		return schoolID
	}
	return ""
}

// GetUserID retrieves the user ID from context, empty when absent
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}
