package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/dockpanel/dockpanel/internal/adapters/docker"
	"github.com/dockpanel/dockpanel/internal/adapters/http"
	"github.com/dockpanel/dockpanel/internal/adapters/store"
	"github.com/dockpanel/dockpanel/internal/config"
	"github.com/dockpanel/dockpanel/internal/core/ports"
	"github.com/dockpanel/dockpanel/internal/logging"
	"github.com/dockpanel/dockpanel/internal/metrics"
	"github.com/dockpanel/dockpanel/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Get().Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.LogLevel)
	log := logging.Get()

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}
	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	// 1. Infrastructure adapters.
	var source ports.InventorySource
	if cfg.InventorySource == "sdk" {
		sdkSource, err := docker.NewSDKSource()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize docker client")
		}
		defer sdkSource.Close()
		source = sdkSource
	} else {
		source = docker.NewCLISource(cfg.DockerBinary, cfg.InventoryTimeout)
	}

	users, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open user store")
	}
	defer users.Close()

	codec := session.NewCodec(cfg.SessionSecretOrDev(), !cfg.Development())

	// 2. HTTP handlers, with every dependency passed in explicitly.
	containerHandler := http.NewContainerHandler(source, codec)
	authHandler := http.NewAuthHandler(users, codec)
	chatHandler := http.NewChatHandler(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ChatModel)

	// 3. Fiber app and routes. The access gateway runs before everything.
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(http.NewAccessGateway())

	api := app.Group("/api")
	api.Get("/containers", containerHandler.ListContainers)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/account/password", authHandler.ChangePassword)
	api.Post("/chat", chatHandler.Chat)

	if cfg.MetricsEnabled {
		app.Get("/metrics", http.MetricsHandler(metrics.Handler()))
	}
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	// 4. Serve until interrupted, then drain.
	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}()

	log.Info().Str("addr", cfg.ListenAddr).Str("inventory", cfg.InventorySource).Msg("server starting")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
