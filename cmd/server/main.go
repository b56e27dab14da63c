// Package main реализует точку входа блог-сервиса.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblognest/internal/blog/adapters/cache"
	httpadapter "goblognest/internal/blog/adapters/http"
	"goblognest/internal/blog/adapters/postgres"
	"goblognest/internal/blog/adapters/repositories"
	"goblognest/internal/blog/adapters/services"
	"goblognest/internal/blog/app"
	"goblognest/internal/blog/config"
	"goblognest/internal/blog/db"
	portscache "goblognest/internal/blog/ports/cache"
	"goblognest/pkg/logger"
	"goblognest/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BLOG_LOGGER_MODE"
	EnvLoggerLevel = "BLOG_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to connect to cache, continuing without it"
	ErrStartHTTP            = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "blog service started"
	LogServiceShutdownDone = "blog service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitDatasources     = "initializing datasources"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)

		database, err := db.New(ctx, &cfg.Postgres, "migrations/blog")
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		var profileCache portscache.Cache
		if cfg.Redis.Enabled {
			profileCache, err = cache.NewRedisCache(ctx, cfg.Redis.GetAddress(), cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				log.Warn(ctx, ErrInitCache, zap.Error(err))
				profileCache = nil
			}
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatasources)
		datasourceFactory := postgres.NewDatasourceFactory(database.Pool(), cfg.Rules.UsernameCooldownDays)

		log.Info(ctx, LogInitRepo)
		userRepo := repositories.NewUserRepository(datasourceFactory.UserDatasource())
		blogRepo := repositories.NewBlogRepository(datasourceFactory.BlogDatasource())
		categoryRepo := repositories.NewCategoryRepository(datasourceFactory.CategoryDatasource())
		commentRepo := repositories.NewCommentRepository(datasourceFactory.CommentDatasource())
		likeRepo := repositories.NewLikeRepository(datasourceFactory.LikeDatasource())

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(
			cfg.JWT.SecretKey,
			cfg.JWT.GetAccessTokenTTL(),
			cfg.JWT.BCryptCost,
		)
		passwordService := serviceFactory.PasswordService()
		tokenService := serviceFactory.TokenService()

		log.Info(ctx, LogInitUseCases)
		useCases := httpadapter.UseCases{
			Users:      app.NewUserUseCase(userRepo, passwordService, tokenService, profileCache),
			Blogs:      app.NewBlogUseCase(blogRepo),
			Categories: app.NewCategoryUseCase(categoryRepo),
			Comments:   app.NewCommentUseCase(commentRepo),
			Likes:      app.NewLikeUseCase(likeRepo),
		}

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New()
		httpadapter.SetupRouter(fiberApp, useCases, tokenService)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTP, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
			func(ctx context.Context) error {
				if profileCache == nil {
					return nil
				}
				log.Info(ctx, LogClosingCache)
				return profileCache.Close()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	os.Exit(exitCode)
}
