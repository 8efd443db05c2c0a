package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"time"
	_ "time/tzdata"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/events"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/identity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/inventory"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/webevents"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/env"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/router"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/internal/pkg/presentation/api"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

const serviceName string = "asset-inventory"

const defaultTimeZone string = "America/Sao_Paulo"

type appConfig struct {
	Identity       identity.Config `yaml:"identity"`
	TimeZone       string          `yaml:"timeZone"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	events.Config  `yaml:",inline"`
}

type flagValues struct {
	policiesFile      string
	configurationFile string
	seedFile          string
	devmode           bool
}

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init tracing")
	}
	defer cleanup()

	flags := parseFlags(logger)

	cfgFile, err := os.Open(flags.configurationFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not open configuration file")
	}

	cfg, err := loadAppConfig(cfgFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load configuration")
	}

	policies, err := os.Open(flags.policiesFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to open opa policy file")
	}
	defer policies.Close()

	var seed []db.SeedRecord
	if flags.seedFile != "" {
		seed, err = db.LoadSeedFile(logger, flags.seedFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("unable to load inventory seed file")
		}
	}

	var publisher activity.Publisher = &logPublisher{}
	var messenger messaging.MsgContext

	if !flags.devmode {
		messenger, err = messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init messenger")
		}
		defer messenger.Close()
		publisher = messenger
	}

	connect := db.NewSQLiteConnector(logger)
	if !flags.devmode {
		connect = db.NewPostgreSQLConnector(logger, db.LoadConfigFromEnv(logger))
	}

	secret := "devmode-secret"
	if !flags.devmode {
		secret = env.GetVariableOrDie(logger, "JWT_SECRET", "secret used to sign session tokens")
	}

	app, err := initialize(ctx, cfg, connect, publisher, []byte(secret), policies, seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize service")
	}
	defer app.events.Shutdown()

	app.watchdog.Start()
	defer app.watchdog.Stop()

	if messenger != nil {
		messenger.RegisterTopicMessageHandler((&types.LogActivity{}).TopicName(), activity.NewLogActivityHandler(app.activity))
	}

	servicePort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")
	logger.Info().Str("port", servicePort).Msg("starting to listen for connections")

	err = http.ListenAndServe(":"+servicePort, app.router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start request router")
	}
}

type application struct {
	router    *chi.Mux
	events    webevents.WebEvents
	inventory inventory.InventoryService
	activity  activity.Service
	identity  identity.IdentityService
	watchdog  identity.Watchdog
}

func initialize(ctx context.Context, cfg *appConfig, connect db.ConnectorFunc, publisher activity.Publisher, secret []byte, policies io.Reader, seed []db.SeedRecord) (*application, error) {
	logger := logging.GetLoggerFromContext(ctx)

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", cfg.TimeZone, err)
	}

	repo, err := db.NewInventoryRepository(connect)
	if err != nil {
		return nil, fmt.Errorf("could not connect to inventory database: %w", err)
	}

	users, err := db.NewUserRepository(connect)
	if err != nil {
		return nil, fmt.Errorf("could not connect to user database: %w", err)
	}

	app := &application{
		events: webevents.New(logger),
	}

	app.activity = activity.New(repo, app.events, events.New(&cfg.Config), publisher, location)
	app.inventory = inventory.New(repo, app.activity, app.events, publisher)
	app.identity = identity.New(users, secret, cfg.Identity)
	app.watchdog = identity.NewWatchdog(users, logger)

	app.identity.OnAuthStateChanged(func(email string, session *types.Session) {
		if session == nil {
			logger.Info().Str("email", email).Msg("user signed out")
			return
		}
		logger.Info().Str("email", email).Str("role", session.Role).Msg("user signed in")
	})

	if len(seed) > 0 {
		count, err := app.inventory.Seed(ctx, seed)
		if err != nil {
			return nil, fmt.Errorf("failed to seed inventory: %w", err)
		}
		logger.Info().Msgf("seeded inventory with %d assets", count)
	}

	app.router, err = api.RegisterHandlers(ctx, router.New(serviceName, cfg.AllowedOrigins...), policies, repo,
		app.identity, app.inventory, app.activity, app.events, location)
	if err != nil {
		return nil, err
	}

	return app, nil
}

func loadAppConfig(r io.ReadCloser) (*appConfig, error) {
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	if err = yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}

	if cfg.TimeZone == "" {
		cfg.TimeZone = defaultTimeZone
	}

	return cfg, nil
}

func parseFlags(logger zerolog.Logger) flagValues {
	f := flagValues{}

	flag.StringVar(&f.policiesFile, "policies", env.GetVariableOrDefault(logger, "POLICIES_FILE", "/opt/keepinventory/config/authz.rego"), "an authorization policy file")
	flag.StringVar(&f.configurationFile, "config", env.GetVariableOrDefault(logger, "CONFIG_FILE", "/opt/keepinventory/config/config.yaml"), "a service configuration file")
	flag.StringVar(&f.seedFile, "seed", env.GetVariableOrDefault(logger, "INVENTORY_SEED_FILE", ""), "an initial inventory to load into an empty store")
	flag.BoolVar(&f.devmode, "devmode", env.GetVariableOrDefault(logger, "DEVMODE", "false") == "true", "use an in-memory database and no message bus")
	flag.Parse()

	return f
}

// logPublisher stands in for the message bus in devmode.
type logPublisher struct{}

func (p *logPublisher) PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error {
	logger := logging.GetLoggerFromContext(ctx)
	logger.Debug().Str("topic", message.TopicName()).Msg("message bus disabled, dropping message")
	return nil
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
