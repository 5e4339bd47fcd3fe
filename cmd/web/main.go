package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"aureacursos.com.br/combo-web/internal/config"
	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/httpserver"
	"aureacursos.com.br/combo-web/internal/observability"
)

func main() {
	configFile := flag.String("config", "", "optional YAML configuration file")
	check := flag.Bool("check", false, "validate the landing content and exit")
	flag.Parse()

	var opts []config.Option
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	if cfg.Log.Development {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer func() { _ = logger.Sync() }()

	landing, err := loadContent(cfg.Site.ContentFile)
	if err != nil {
		logger.Fatal("load content", zap.String("file", cfg.Site.ContentFile), zap.Error(err))
	}

	if *check {
		if err := landing.Validate(); err != nil {
			var ve *content.ValidationError
			if errors.As(err, &ve) {
				logger.Error("content is invalid", zap.Strings("fields", ve.Fields()))
			} else {
				logger.Error("content is invalid", zap.Error(err))
			}
			_ = logger.Sync()
			os.Exit(1)
		}
		logger.Info("content is valid",
			zap.Int("benefits", len(landing.Benefits.Items)),
			zap.Int("tiers", len(landing.Pricing.Tiers)),
			zap.Int("contacts", len(landing.Contacts.Entries)),
		)
		return
	}

	srv, err := httpserver.New(httpserver.FromConfig(cfg, landing, logger))
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("web server listening", zap.String("addr", cfg.Server.Addr), zap.String("base_url", cfg.Site.BaseURL))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		cancel()
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("web server stopped")
}

func loadContent(path string) (*content.Landing, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}
