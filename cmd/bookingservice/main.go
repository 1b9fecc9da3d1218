package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/stayhub/backend/internal/booking"
	"github.com/stayhub/backend/internal/payment"
	"github.com/stayhub/backend/pkg/config"
	"github.com/stayhub/backend/pkg/httpserver"
	"github.com/stayhub/backend/pkg/jwt"
	"github.com/stayhub/backend/pkg/logger"
	"github.com/stayhub/backend/pkg/mongo"
)

func main() {
	var (
		logCfg     logger.Config
		mongoCfg   mongo.Config
		jwtCfg     jwt.Config
		serverCfg  httpserver.Config
		paymentCfg payment.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&jwtCfg)
	config.MustLoad(&serverCfg)
	config.MustLoad(&paymentCfg)

	log := logger.NewFromConfig(logCfg, logger.WithAttr(logger.Component("bookingservice")))

	ctx := context.Background()

	mc, err := mongo.Connect(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := mc.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", logger.Error(err))
		}
	}()

	db := mc.Database(mongoCfg.Database)

	storage := booking.NewMongoStorage(db)
	if err := storage.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure booking indexes", logger.Error(err))
		os.Exit(1)
	}

	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		log.Error("failed to init token service", logger.Error(err))
		os.Exit(1)
	}

	stripeAPI := &client.API{}
	stripeAPI.Init(paymentCfg.SecretKey, nil)

	bookingSvc := booking.NewService(storage, booking.WithLogger(log))
	paymentSvc := payment.NewService(stripeAPI.PaymentIntents, paymentCfg.MinAmount, payment.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(log, mongo.Healthcheck(mc)))
	r.Mount("/", booking.NewHandler(bookingSvc, tokens, log).Routes())
	r.Mount("/payments", payment.NewHandler(paymentSvc, tokens, log).Routes())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
