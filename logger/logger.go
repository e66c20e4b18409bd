package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

type requestIDCtxKey struct{}

// New builds the service logger and installs it as the zap global.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

// RequestID takes X-Request-ID from the client or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDCtxKey{}, id))
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// From returns the global logger tagged with the request ID, if any. Both the
// gin context and the request context derived from it carry the ID.
func From(ctx context.Context) *zap.Logger {
	var id string
	if gc, ok := ctx.(*gin.Context); ok {
		id = gc.GetString(RequestIDKey)
	} else if v, ok := ctx.Value(requestIDCtxKey{}).(string); ok {
		id = v
	}
	if id == "" {
		return zap.L()
	}
	return zap.L().With(zap.String(RequestIDKey, id))
}
