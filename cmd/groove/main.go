package main

import (
	"context"
	"log/slog"
	"os"

	"groove/config"
	"groove/internal/delivery"
	"groove/internal/delivery/http"
	"groove/internal/delivery/http/middleware"
	"groove/internal/delivery/http/router/handler"
	"groove/internal/infra/auth"
	logs "groove/internal/infra/log"
	"groove/internal/infra/persistence/postgres"
	"groove/internal/usecase/impl"

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
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewLabelService,
			impl.NewArtistService,
			impl.NewPersonService,
			impl.NewBandMemberService,
			impl.NewRecordService,
			impl.NewGenreService,
			impl.NewRecordGenreService,
			impl.NewAlbumService,
			impl.NewShoppingSessionService,
			impl.NewCartItemService,
			impl.NewUserPaymentService,
			impl.NewOrderDetailService,
			impl.NewOrderItemService,
			impl.NewUserAddressService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewLabelHandler,
			handler.NewArtistHandler,
			handler.NewPersonHandler,
			handler.NewBandMemberHandler,
			handler.NewRecordHandler,
			handler.NewGenreHandler,
			handler.NewRecordGenreHandler,
			handler.NewAlbumHandler,
			handler.NewShoppingSessionHandler,
			handler.NewCartItemHandler,
			handler.NewUserPaymentHandler,
			handler.NewOrderDetailHandler,
			handler.NewOrderItemHandler,
			handler.NewUserAddressHandler,
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
