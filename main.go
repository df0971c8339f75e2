package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/middleware"

	"github.com/menusnap/menusnap/internal/events"
	"github.com/menusnap/menusnap/internal/menu"
	"github.com/menusnap/menusnap/internal/mongo"
	"github.com/menusnap/menusnap/internal/settings"
)

const (
	appNamespace = "MENUSNAP"
	appName      = "menusnap"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	baseRepo := mongo.NewBaseRepo(config, logger)
	if err := baseRepo.Start(ctx); err != nil {
		log.Fatalf("%s(%s) cannot start base repository: %v", appName, appVersion, err)
	}

	db := baseRepo.GetDatabase()
	if db == nil {
		log.Fatalf("%s(%s) cannot initialize repository database: %v", appName, appVersion, errors.New("repository database is nil"))
	}

	itemRepo := mongo.NewMenuItemRepo(db)
	settingsRepo := mongo.NewSettingsRepo(db)

	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("%s(%s) cannot create indexes: %v", appName, appVersion, err)
	}

	// NATS is optional: the board must serve even without a broker.
	var pub *events.NATSPublisher
	natsURL, _ := config.GetString("nats.url")
	if natsURL != "" {
		pub, err = events.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("%s(%s) cannot connect to NATS publisher: %v", appName, appVersion, err)
		}
	} else {
		logger.Info("NATS not configured, change events disabled")
	}

	menuDeps := menu.HandlerDeps{
		ItemRepo:     itemRepo,
		SettingsRepo: settingsRepo,
	}
	settingsDeps := settings.HandlerDeps{
		Repo: settingsRepo,
	}
	if pub != nil {
		menuDeps.Publisher = pub
		settingsDeps.Publisher = pub
	}

	menuHandler := menu.NewHandler(menuDeps, config, logger)
	settingsHandler := settings.NewHandler(settingsDeps, config, logger)

	seedHooks := apt.LifecycleHooks{
		OnStart: menu.SeedingFunc(appName, baseRepo.GetDatabase, logger),
	}

	lifecycles := []interface{}{
		apt.LifecycleHooks{OnStop: baseRepo.Stop},
		seedHooks,
	}
	if pub != nil {
		lifecycles = append(lifecycles, apt.LifecycleHooks{
			OnStop: func(context.Context) error {
				return pub.Close()
			},
		})
	}

	// Public-facing service: CORS stays enabled so the board can be embedded.
	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger:      logger,
		DisableCORS: false,
	})

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", menuHandler, settingsHandler),
		apt.WithLifecycle(lifecycles...),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
