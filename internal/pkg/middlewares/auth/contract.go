package auth

import (
	"context"

	"fulfillment/pkg/logger"
)

type Resolver interface {
	Resolve(ctx context.Context, credential string) (string, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
