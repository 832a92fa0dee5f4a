package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/spf13/viper"

	"github.com/planxhq/planx/frepple"
	"github.com/planxhq/planx/model"
)

type Router struct {
	registry *model.Registry
	metrics  *Metrics

	// Collaborator factories, replaceable in tests
	NewExporter func(*ExchangeRequest) Exporter
	NewImporter func(*ExchangeRequest) Importer
}

func NewRouter(registry *model.Registry) (*Router, error) {
	r := &Router{
		registry: registry,
		metrics:  NewMetrics(),
	}

	r.NewExporter = func(req *ExchangeRequest) Exporter {
		return frepple.NewExporter(req.DB, req.Company, req.Mode, req.Language)
	}
	r.NewImporter = func(req *ExchangeRequest) Importer {
		return frepple.NewImporter(req.DB, req.Company, req.Mode)
	}

	return r, nil
}

func (r *Router) SetupRoutes(app *fiber.App) {
	if viper.GetBool("rate_limit") {
		app.Use("/frepple/xml", limiter.New(limiter.Config{
			Max:          viper.GetInt("max_requests"),
			Expiration:   time.Duration(viper.GetInt("rate_limit_expire")) * time.Second,
			Storage:      NewStorage(),
			LimitReached: LimitReachedHandler,
		}))
	}

	app.Get("/frepple/xml", r.Export)
	app.Post("/frepple/xml", r.Import)
	// the planning tool only speaks GET and POST
	app.All("/frepple/xml", func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	app.Get("/metrics", r.metrics.Handler)
}
