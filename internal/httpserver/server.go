package httpserver

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"aureacursos.com.br/combo-web/internal/config"
	"aureacursos.com.br/combo-web/internal/content"
	custommw "aureacursos.com.br/combo-web/internal/middleware"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/observability"
	"aureacursos.com.br/combo-web/public"
)

// AssetPrefix is where the embedded stylesheet and script are mounted.
const AssetPrefix = "/assets"

// Config holds runtime options for the HTTP server.
type Config struct {
	Address           string
	BaseURL           string
	Content           *content.Landing
	Logger            *zap.Logger
	Assets            fs.FS
	AssetMaxAge       time.Duration
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
}

// FromConfig maps the loaded configuration onto server options.
func FromConfig(cfg config.Config, landing *content.Landing, logger *zap.Logger) Config {
	return Config{
		Address:           cfg.Server.Addr,
		BaseURL:           cfg.Site.BaseURL,
		Content:           landing,
		Logger:            logger,
		AssetMaxAge:       cfg.Site.AssetMaxAge,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		RequestTimeout:    cfg.Server.RequestTimeout,
	}
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: durationOr(cfg.ReadHeaderTimeout, 10*time.Second),
		ReadTimeout:       durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 15*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 60*time.Second),
		ErrorLog:          zap.NewStdLog(loggerOrNop(cfg.Logger)),
	}, nil
}

// NewHandler builds the router serving the landing page.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Content == nil {
		landing, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("httpserver: load content: %w", err)
		}
		cfg.Content = landing
	}
	assets := cfg.Assets
	if assets == nil {
		static, err := public.StaticFS()
		if err != nil {
			return nil, fmt.Errorf("httpserver: embed static: %w", err)
		}
		assets = static
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLogger(loggerOrNop(cfg.Logger)))
	router.Use(custommw.HTMX())
	router.Use(observability.RequestLogger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.GetHead)
	router.Use(custommw.SecurityHeaders)
	router.Use(chimw.Compress(5, "text/html", "text/css", "application/javascript", "text/javascript"))
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, 30*time.Second)))

	h := &handlers{
		landing: cfg.Content,
		baseURL: cfg.BaseURL,
	}

	router.Get("/", h.home)
	router.Get("/healthz", h.health)
	RegisterFragment(router, nav.FragmentPath, h.headerFragment)
	router.Handle(AssetPrefix+"/*", custommw.Assets(assets, AssetPrefix, cfg.AssetMaxAge))

	return router, nil
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
