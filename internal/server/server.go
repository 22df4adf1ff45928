// Package server exposes theme resolution over HTTP.
package server

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/themer/pkg/logger"
	"github.com/alexisbeaulieu97/themer/internal/metrics"
	"github.com/alexisbeaulieu97/themer/internal/query"
	themeerrors "github.com/alexisbeaulieu97/themer/pkg/errors"
	"github.com/alexisbeaulieu97/themer/pkg/loader"
	"github.com/alexisbeaulieu97/themer/pkg/theme"
)

// Options wires the server's collaborators.
type Options struct {
	Registry *loader.Registry
	Logger   *logger.Logger
	// Metrics records request counts when set.
	Metrics *metrics.Metrics
	// Gatherer enables GET /metrics when set.
	Gatherer prometheus.Gatherer
}

// Server serves theme lookups from a loaded registry.
type Server struct {
	app      *fiber.App
	registry *loader.Registry
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// New builds the fiber application and registers every route.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		registry: opts.Registry,
		log:      log,
		metrics:  opts.Metrics,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(otelfiber.Middleware())
	s.app.Use(s.observe)

	if opts.Gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	s.app.Get("/health", s.health)
	s.app.Get("/themes", s.listThemes)
	s.app.Get("/themes/:name/values", s.value)
	s.app.Delete("/themes/:name/caches/:cache", s.clearCache)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until the server is shut down.
func (s *Server) Listen(addr string) error {
	s.log.WithFields(map[string]any{"addr": addr}).Info("theme server listening")
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

type themeSummary struct {
	Name    string `json:"name"`
	Parent  string `json:"parent,omitempty"`
	Default bool   `json:"default"`
}

type themesResponse struct {
	Default string         `json:"default"`
	Themes  []themeSummary `json:"themes"`
}

type valueResponse struct {
	Theme string `json:"theme"`
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type clearResponse struct {
	Theme   string         `json:"theme"`
	Cleared map[string]int `json:"cleared"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (s *Server) listThemes(c *fiber.Ctx) error {
	def := s.registry.Default()
	resp := themesResponse{Default: def.Name()}
	for _, t := range s.registry.Themes() {
		summary := themeSummary{Name: t.Name(), Default: t.Equal(def)}
		if parent := t.Parent(); parent != nil {
			summary.Parent = parent.Name()
		}
		resp.Themes = append(resp.Themes, summary)
	}
	return c.JSON(resp)
}

func (s *Server) value(c *fiber.Ctx) error {
	t, err := s.theme(c)
	if err != nil {
		return err
	}

	req, err := query.Parse(query.Params{
		Key:    c.Query("key"),
		Type:   c.Query("type"),
		Adjust: c.Query("adjust"),
		Screen: c.Query("screen"),
	})
	if err != nil {
		return err
	}

	value, err := query.Resolve(t, req)
	if err != nil {
		return err
	}
	return c.JSON(valueResponse{Theme: t.Name(), Key: req.Key, Type: string(req.Type), Value: value})
}

func (s *Server) clearCache(c *fiber.Ctx) error {
	t, err := s.theme(c)
	if err != nil {
		return err
	}

	cleared, err := query.ClearCache(t, c.Params("cache"))
	if err != nil {
		return err
	}
	s.log.WithFields(map[string]any{"theme": t.Name(), "cache": c.Params("cache")}).Info("cache cleared over http")
	return c.JSON(clearResponse{Theme: t.Name(), Cleared: cleared})
}

func (s *Server) theme(c *fiber.Ctx) (*theme.Theme, error) {
	return s.registry.MustTheme(c.Params("name"))
}

// observe logs and measures every request.
func (s *Server) observe(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		if handleErr := s.handleError(c, err); handleErr != nil {
			return handleErr
		}
	}

	elapsed := time.Since(start)
	status := c.Response().StatusCode()
	route := c.Route().Path

	if s.metrics != nil {
		s.metrics.ObserveRequest(route, strconv.Itoa(status), elapsed.Seconds())
	}
	s.log.WithFields(map[string]any{
		"method":   c.Method(),
		"path":     c.Path(),
		"status":   status,
		"duration": elapsed.String(),
	}).Debug("request served")
	return nil
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		s.log.Error(err, "request failed")
	}
	return c.Status(status).JSON(errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var (
		fiberErr   *fiber.Error
		missingErr *themeerrors.MissingSpecifierError
		colorErr   *themeerrors.ColorError
	)
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, themeerrors.ErrThemeNotFound), errors.As(err, &missingErr):
		return fiber.StatusNotFound
	case errors.As(err, &colorErr):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, query.ErrInvalidRequest):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
