package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/weather-forecast/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		resp := fiber.Map{
			"status":  "ok",
			"service": "weather-forecast",
		}
		if last := service.LastRefresh(); !last.IsZero() {
			resp["lastRefresh"] = last
		}
		return c.JSON(resp)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		f, err := service.Forecast()
		if err != nil {
			return err
		}
		return c.JSON(f)
	})

	v1.Get("/forecast/next24", func(c *fiber.Ctx) error {
		f, err := service.Forecast()
		if err != nil {
			return err
		}

		hours := make([]hourView, 0, len(f.Next24Hours))
		for _, h := range f.Next24Hours {
			hours = append(hours, newHourView(h, service.TimeZone()))
		}
		return c.JSON(fiber.Map{
			"city":  f.City,
			"hours": hours,
		})
	})

	v1.Post("/forecast/refresh", func(c *fiber.Ctx) error {
		f, err := service.Refresh(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(f)
	})

	v1.Get("/preferences", func(c *fiber.Ctx) error {
		s, err := service.Settings(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(s)
	})

	v1.Put("/preferences/unit", func(c *fiber.Ctx) error {
		var req unitRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		unit, err := weather.ParseUnit(req.Unit)
		if err != nil {
			return err
		}
		if err := service.SetUnit(c.UserContext(), unit); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"temperatureUnit": unit})
	})

	v1.Put("/preferences/theme", func(c *fiber.Ctx) error {
		var req themeRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		theme, err := weather.ParseTheme(req.Theme)
		if err != nil {
			return err
		}
		if err := service.SetTheme(c.UserContext(), theme); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"theme": theme})
	})

	v1.Put("/location", func(c *fiber.Ctx) error {
		var req locationRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
		loc := weather.Location{Lat: *req.Lat, Lon: *req.Lon}
		if err := service.SetLocation(c.UserContext(), loc); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"location": loc})
	})
}

type unitRequest struct {
	Unit string `json:"unit" validate:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// locationRequest uses pointers so that a missing coordinate is told apart from 0.
type locationRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

func bindAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, weather.ErrNoForecast):
		return fiber.StatusNotFound
	case errors.Is(err, weather.ErrInvalidUnit),
		errors.Is(err, weather.ErrInvalidTheme),
		errors.Is(err, weather.ErrInvalidLocation):
		return fiber.StatusBadRequest
	case errors.Is(err, weather.ErrNoLocation):
		return fiber.StatusConflict
	case errors.Is(err, weather.ErrInsufficientForecastData):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, weather.ErrProviderFailure):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
