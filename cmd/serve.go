package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"marwood.io/WhiskeyVault/configs"
	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/integrations"
	"marwood.io/WhiskeyVault/pkg/repository"
	"marwood.io/WhiskeyVault/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".WhiskeyVault.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewManager(conf, repo, logger)
	insight := integrations.GetInsight(conf.Integrations.Insight, conf, logger)

	servers := server.Servers{
		Auth:       server.NewAuthServer(repo, authManager, logger),
		User:       server.NewUserServer(repo, logger),
		Distillery: server.NewDistilleryServer(repo, conf, logger),
		Whiskey:    server.NewWhiskeyServer(repo, logger),
		Collection: server.NewCollectionServer(repo, repo, logger),
		Tasting:    server.NewTastingServer(repo, repo, logger),
		Insight:    server.NewInsightServer(insight, repo, logger),
	}

	router := server.NewRouter(servers, authManager)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(router)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
