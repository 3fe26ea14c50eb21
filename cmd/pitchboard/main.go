package main

import (
	"context"
	"log/slog"
	"os"

	"pitchboard/config"
	"pitchboard/internal/delivery"
	"pitchboard/internal/delivery/http"
	"pitchboard/internal/delivery/http/middleware"
	"pitchboard/internal/delivery/http/router/handler"
	"pitchboard/internal/infra/auth"
	"pitchboard/internal/infra/auth/github"
	logs "pitchboard/internal/infra/log"
	"pitchboard/internal/infra/persistence/postgres"
	"pitchboard/internal/infra/sanitize"
	"pitchboard/internal/metrics"
	"pitchboard/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newPrometheusRegistry,
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(metrics.Recorder)),
		),
	)
}

// newPrometheusRegistry builds the process-wide metrics registry and exposes
// it under the interfaces the collector and the /metrics route consume.
func newPrometheusRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	registry := prometheus.NewRegistry()

	return registry, registry
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAuthorRepository,
			postgres.NewStartupRepository,
			postgres.NewPlaylistRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			github.NewOAuthService,
			sanitize.NewPitchSanitizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewStartupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStartupHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
