package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"empdir/docs"
	"empdir/internal/assets"
	"empdir/internal/config"
	"empdir/internal/database"
	"empdir/internal/database/schema"
	"empdir/internal/display"
	handlers "empdir/internal/http/handler"
	"empdir/internal/http/middleware"
	"empdir/internal/logging"
	"empdir/internal/otel"
	"empdir/internal/repository/sqlrepo"
	"empdir/internal/service"
)

// @title Employee Directory
// @version 1.0
// @BasePath /
func main() {
	// Environment first (.env auto-loaded if present), then --color.
	cfg, err := config.LoadWithArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		logging.New(os.Stderr, time.UTC).Fatal().Err(err).Str("event", "config_invalid").Send()
	}
	log := logging.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Str("event", "server_exit").Send()
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) error {
	// An unsupported color override must stop startup before anything is served.
	color, err := display.ResolveColor(cfg.ColorFlag, cfg.Display.Color, nil)
	if err != nil {
		return err
	}
	log.Info().Str("event", "color_selected").Str("color", string(color)).Send()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Str("event", "tracing_shutdown_failed").Send()
		}
	}()

	db, dialect, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("event", "db_connected").Str("driver", string(dialect)).Str("table", cfg.Database.Table).Send()

	if cfg.Database.BootstrapSchema {
		if err := schema.Ensure(ctx, db, cfg.Database.Table, log); err != nil {
			return err
		}
	}

	empRepo, err := sqlrepo.NewEmployeeSQL(db, dialect, cfg.Database.Table)
	if err != nil {
		return err
	}
	empSvc := service.NewEmployeeService(empRepo)

	// Display settings are fixed for the life of the process.
	bg := assets.NewProvisioner(cfg.ObjectStore, logging.Component(log, "assets")).Background(ctx)
	d := display.Config{
		Color:         color,
		BackgroundURL: bg,
		Group:         cfg.Display.Group,
		Slogan:        cfg.Display.Slogan,
	}

	app, err := newApp(cfg, db, empSvc, d, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("event", "server_start").Str("addr", ":"+cfg.Port).Send()
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Str("event", "server_shutdown").Send()
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newApp(cfg *config.AppConfig, db *sql.DB, svc service.EmployeeService, d display.Config, reg prometheus.Registerer) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	// Panics become errors and reach the ErrorHandler as a 500.
	app.Use(recover.New())
	// RequestID adds/propagates X-Request-ID and stores it in context.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static(assets.URLPrefix, cfg.ObjectStore.AssetDir)

	handlers.RegisterRoutes(app, db, svc, d)

	// Empty host and schemes make the UI call back to whichever origin served it.
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = []string{}
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}
