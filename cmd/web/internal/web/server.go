package web

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/api/filter_api"
	"thirdcoast.systems/filtergraph/cmd/web/handlers/api/preset_api"
	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/internal/observability"
	"thirdcoast.systems/filtergraph/pkg/filters"
)

type Webserver struct {
	*echo.Echo
	registry     *filters.Registry
	presets      db.PresetStore
	ffmpegBinary string
	logger       *slog.Logger
}

type Options struct {
	Registry *filters.Registry
	// Presets may be nil, in which case the preset routes answer 503.
	Presets      db.PresetStore
	FFmpegBinary string
	Logger       *slog.Logger
}

func NewWebserver(opts Options) (*Webserver, error) {
	if opts.Registry == nil {
		opts.Registry = filters.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	webserver := &Webserver{
		Echo:         echo.New(),
		registry:     opts.Registry,
		presets:      opts.Presets,
		ffmpegBinary: opts.FFmpegBinary,
		logger:       observability.WithComponent(opts.Logger, "web"),
	}

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err := webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			s.logger.Info("request", fields...)
			return nil
		},
	}))

	// Carry the request-scoped logger and request ID on the request context.
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			ctx := observability.ContextWithRequestID(c.Request().Context(), id)
			ctx = observability.ContextWithLogger(ctx, s.logger.With("request_id", id))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	return nil
}

// requirePresets answers 503 when no preset store is configured.
func (s *Webserver) requirePresets(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.presets == nil {
			return common.ErrUnavailable("preset store disabled")
		}
		return next(c)
	}
}

func (s *Webserver) registerRoutes() error {
	s.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"ok":      true,
			"filters": s.registry.Len(),
			"presets": s.presets != nil,
		})
	})

	apiGroup := s.Group("/api")
	apiGroup.GET("/filters", filter_api.HandleList(s.registry))
	apiGroup.GET("/filters/:name", filter_api.HandleGet(s.registry))
	apiGroup.POST("/compile", filter_api.HandleCompile(s.registry, s.ffmpegBinary))

	presetGroup := apiGroup.Group("/presets", s.requirePresets)
	presetGroup.GET("", preset_api.HandleList(s.presets))
	presetGroup.POST("", preset_api.HandleCreate(s.presets, s.registry))
	presetGroup.GET("/:id", preset_api.HandleGet(s.presets))
	presetGroup.PUT("/:id", preset_api.HandleUpdate(s.presets, s.registry))
	presetGroup.DELETE("/:id", preset_api.HandleDelete(s.presets))
	presetGroup.POST("/:id/compile", preset_api.HandleCompile(s.presets, s.registry, s.ffmpegBinary))

	return nil
}
