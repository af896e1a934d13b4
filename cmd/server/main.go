package main

import (
	"context"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/justerika/signup-gateway/modules/landing"
	"github.com/justerika/signup-gateway/modules/signup"
	"github.com/justerika/signup-gateway/pkg/clientip"
	"github.com/justerika/signup-gateway/pkg/config"
	"github.com/justerika/signup-gateway/pkg/email"
	"github.com/justerika/signup-gateway/pkg/httpserver"
	"github.com/justerika/signup-gateway/pkg/logger"
	"github.com/justerika/signup-gateway/pkg/ratelimit"
	"github.com/justerika/signup-gateway/pkg/redis"
	"github.com/justerika/signup-gateway/pkg/requestid"
	"github.com/justerika/signup-gateway/pkg/sheets"
)

const serviceName = "signup-gateway"

type appConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://justerika.com,https://www.justerika.com"`

	RateLimit  int           `env:"RATE_LIMIT" envDefault:"20"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`

	Server httpserver.Config
	Redis  redis.Config
	Email  email.Config
	Sheets sheets.Config
	Brands signup.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	ctx := context.Background()

	sender, sendingEnabled, err := email.New(cfg.Email)
	if err != nil {
		log.Error("failed to init email sender", logger.Error(err))
		os.Exit(1)
	}
	if !sendingEnabled {
		log.Warn("no postmark token configured, email sending is disabled")
	}

	var recorder signup.Recorder = signup.UnavailableRecorder{}
	if cfg.Sheets.Enabled() {
		client, err := sheets.NewClient(ctx, cfg.Sheets)
		if err != nil {
			log.Error("failed to init sheets client", logger.Error(err))
			os.Exit(1)
		}
		recorder = signup.NewSheetsRecorder(client)
	} else {
		log.Warn("google credentials missing, subscriptions cannot be recorded")
	}

	var store ratelimit.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		store = ratelimit.NewRedisStore(client)
		log.Info("rate limiting backed by redis")
	} else {
		memStore := ratelimit.NewMemoryStore()
		defer memStore.Close()
		store = memStore
	}

	limiter, err := ratelimit.NewSlidingWindow(store, cfg.RateLimit, cfg.RateWindow)
	if err != nil {
		log.Error("failed to init rate limiter", logger.Error(err))
		os.Exit(1)
	}

	brands := cfg.Brands.Brands()
	for _, b := range brands {
		if !b.Configured() {
			log.Warn("brand has no sheet configured, its endpoint will reject signups",
				logger.Brand(b.Name))
		}
	}

	svc := signup.NewService(
		recorder,
		signup.NewEmailNotifier(sender, log.With(logger.Component("notifier"))),
		signup.WithLogger(log.With(logger.Component("signup"))),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Group(signup.Routes(signup.RouterConfig{
		Service:   svc,
		Brands:    brands,
		RateLimit: ratelimit.Middleware(limiter, ratelimit.ByClientIP),
		Logger:    log.With(logger.Component("http")),
	}))
	r.Group(landing.Routes())

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	log.Info("starting server", "addr", cfg.Server.ListenAddr())
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
