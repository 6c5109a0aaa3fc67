package main

import (
	"context"
	"log"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/redis/go-redis/v9"

	"github.com/felixkapfer/finalghecko/config"
	"github.com/felixkapfer/finalghecko/modules/activity"
	"github.com/felixkapfer/finalghecko/modules/api"
	"github.com/felixkapfer/finalghecko/modules/auth"
	"github.com/felixkapfer/finalghecko/modules/project"
	"github.com/felixkapfer/finalghecko/modules/ratelimit"
	"github.com/felixkapfer/finalghecko/modules/store"
	"github.com/felixkapfer/finalghecko/modules/task"
	"github.com/felixkapfer/finalghecko/modules/user"
	"github.com/felixkapfer/finalghecko/modules/validation"
)

func main() {
	log.Println("=== finalghecko task tracker ===")

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("HTTP Address: %s", cfg.HTTP.Addr)
	log.Printf("Public Base URL: %s", cfg.HTTP.PublicBaseURL)
	log.Printf("Database Driver: %s", cfg.Database.Driver)
	log.Printf("Rate Limiting: %t", cfg.RateLimit.Enabled())

	db, err := store.Open(store.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		Debug:        cfg.Database.Debug,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	logger := app.Logger()

	var limiter *ratelimit.Middleware
	if cfg.RateLimit.Enabled() {
		rateLimitModule := ratelimit.NewModule(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		}, ratelimit.Config{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			WindowSize:        cfg.RateLimit.Window,
		}, logger)
		if err := app.Register(rateLimitModule); err != nil {
			log.Fatalf("Failed to register rate limit module: %v", err)
		}
		limiter = rateLimitModule.Middleware(api.OwnerContextKey)
	}

	modules := []mono.Module{
		user.NewModule(db, userConfig(cfg), logger),
		project.NewModule(db, cfg.HTTP.PublicBaseURL, logger),
		task.NewModule(db, cfg.HTTP.PublicBaseURL, logger),
		activity.NewModule(db, logger),
		api.NewModule(api.Config{
			Addr:                 cfg.HTTP.Addr,
			ExposeGlobalListings: cfg.HTTP.ExposeGlobalListings,
			AccessLog:            cfg.HTTP.AccessLog,
		}, limiter, logger),
	}
	for _, m := range modules {
		if err := app.Register(m); err != nil {
			log.Fatalf("Failed to register %s module: %v", m.Name(), err)
		}
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	log.Println("Application started successfully")
	log.Printf("REST API listening on %s", cfg.HTTP.Addr)

	shutdownCtx, forceShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer forceShutdown()

	wait := gfshutdown.GracefulShutdown(shutdownCtx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"mono-app": func(ctx context.Context) error {
			if err := app.Stop(ctx); err != nil {
				return err
			}
			return store.Close(db)
		},
	})

	exitCode := <-wait
	if exitCode != 0 {
		log.Printf("Shutdown completed with exit code: %d", exitCode)
		os.Exit(exitCode)
	}
	log.Println("Shutdown completed successfully")
}

func userConfig(cfg *config.Config) user.Config {
	policy := validation.PolicyBannedLiteral
	if cfg.Validation.PasswordIdentityRule {
		policy = validation.PolicyIdentity
	}
	return user.Config{
		JWT: auth.Config{
			SecretKey:            cfg.Auth.SecretKey,
			AccessTokenDuration:  cfg.Auth.AccessTTL,
			RefreshTokenDuration: cfg.Auth.RefreshTTL,
			Issuer:               cfg.Auth.Issuer,
		},
		BcryptCost: cfg.Auth.BcryptCost,
		Rules: user.Rules{
			EmailShape:     cfg.Validation.EmailShape,
			PasswordPolicy: policy,
		},
		BaseURL: cfg.HTTP.PublicBaseURL,
	}
}
