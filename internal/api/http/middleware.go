package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/KoshiiX/Layanan-1/internal/config"
	"github.com/KoshiiX/Layanan-1/internal/observability"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

// RegisterMiddlewares attaches the shared middleware chain: request
// timeout, request logging, then error normalization with panic
// recovery. The logger sits outside the error handler so it observes
// the status actually written for failed requests.
func RegisterMiddlewares(app *fiber.App, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(requestTimeout(cfg))
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandling(logger, metrics))
}

func requestTimeout(cfg *config.Config) fiber.Handler {
	timeout := cfg.App.RequestTimeout()
	return func(c *fiber.Ctx) error {
		if timeout <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandling converts any returned or panicked error into the
// standard {"error":{code,message,details}} envelope.
func errorHandling(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Path()),
				)
				err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
			}
			if err != nil {
				err = writeError(c, logger, metrics, err)
			}
		}()
		return c.Next()
	}
}

func writeError(c *fiber.Ctx, logger *zap.Logger, metrics *observability.Metrics, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		err = apperrors.NewDomainError("HTTP_ERROR", fiberErr.Message, fiberErr.Code, nil)
	}
	domainErr := apperrors.ToDomainError(err)

	if domainErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("code", domainErr.Code),
			zap.String("path", c.Path()),
			zap.Error(domainErr),
		)
	}
	metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
			"details": domainErr.Details,
		},
	})
}
