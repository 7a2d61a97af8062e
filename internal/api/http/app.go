package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// Options tunes the Fiber app built by NewApp.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog enables the per-request access log middleware.
	AccessLog bool
}

// NewApp builds the Fiber app with middleware, centralized error handling and all routes.
func NewApp(service *weather.Service, log *zap.Logger, opts Options) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 30 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:               "weather-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := StatusFor(err)
			if code >= fiber.StatusInternalServerError {
				log.Error("Request failed",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.Int("status", code),
					zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(recover.New())

	RegisterRoutes(app, service)
	return app
}
