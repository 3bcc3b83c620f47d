package main

import (
	"context"
	"log/slog"
	"os"

	"kasir/config"
	"kasir/internal/delivery"
	"kasir/internal/delivery/http"
	"kasir/internal/delivery/http/middleware"
	"kasir/internal/delivery/http/router/handler"
	"kasir/internal/infra/auth"
	"kasir/internal/infra/idgen"
	logs "kasir/internal/infra/log"
	"kasir/internal/infra/persistence/firestore"
	"kasir/internal/infra/pubsub"
	"kasir/internal/infra/storage"
	"kasir/internal/usecase/impl"

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
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewBusinessRepository,
			firestore.NewProductRepository,
			firestore.NewCartItemRepository,
			firestore.NewTransactionRepository,
			firestore.NewUserRepository,
			firestore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			idgen.NewNanoidAllocator,
			auth.NewJWKSVerifier,
			storage.NewBlobImageStore,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBusinessService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewTransactionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewTransactionHandler,
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
