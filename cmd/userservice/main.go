package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stayhub/backend/internal/user"
	"github.com/stayhub/backend/pkg/config"
	"github.com/stayhub/backend/pkg/httpserver"
	"github.com/stayhub/backend/pkg/jwt"
	"github.com/stayhub/backend/pkg/logger"
	"github.com/stayhub/backend/pkg/mongo"
)

func main() {
	var (
		logCfg    logger.Config
		mongoCfg  mongo.Config
		jwtCfg    jwt.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&jwtCfg)
	config.MustLoad(&serverCfg)

	log := logger.NewFromConfig(logCfg, logger.WithAttr(logger.Component("userservice")))

	ctx := context.Background()

	client, err := mongo.Connect(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", logger.Error(err))
		}
	}()

	db := client.Database(mongoCfg.Database)

	storage := user.NewMongoStorage(db)
	if err := storage.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure user indexes", logger.Error(err))
		os.Exit(1)
	}

	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		log.Error("failed to init token service", logger.Error(err))
		os.Exit(1)
	}

	svc := user.NewService(storage, user.NewBcryptHasher(0), user.WithLogger(log))
	handler := user.NewHandler(svc, tokens, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(log, mongo.Healthcheck(client)))
	r.Mount("/", handler.Routes())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
