// @title         skycast auth API
// @version       1.0
// @description   Authentication backend for the skycast weather dashboard: registration, login, logout and token-based identity lookup.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued at register/login: "Bearer <JWT>".
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/skycast-io/skycast/docs"

	"github.com/skycast-io/skycast/api/http"
	"github.com/skycast-io/skycast/api/http/handlers"
	"github.com/skycast-io/skycast/pkg/auth"
	"github.com/skycast-io/skycast/pkg/config"
	"github.com/skycast-io/skycast/pkg/health"
	"github.com/skycast-io/skycast/pkg/health/checkers"
	"github.com/skycast-io/skycast/pkg/logger"
	mongorepo "github.com/skycast-io/skycast/pkg/repository/mongodb"
	"github.com/skycast-io/skycast/pkg/security/jwt"
	"github.com/skycast-io/skycast/pkg/security/revocation"
	"github.com/skycast-io/skycast/pkg/storage/mongodb"
	redisstore "github.com/skycast-io/skycast/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Signing-key misconfiguration is fatal at startup, not per-request.
	if cfg.JWTSecret == "" {
		zl.Fatal("JWT_SECRET_KEY is not set")
	}
	if cfg.MongoURI == "" {
		zl.Fatal("MONGO_URI is not set", zap.String("example", "mongodb://localhost:27017"))
	}

	// Connect to MongoDB
	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		zl.Fatal("mongo connect", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo, err := mongorepo.NewUserRepository(client.Database(cfg.MongoDatabase))
	if err != nil {
		zl.Fatal("init user repo", zap.Error(err))
	}

	// Token generator with explicit secret and configurable expiry.
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	// Token denylist is opt-in: without Redis, logout only clears the cookie.
	var denylist revocation.Denylist = revocation.Noop{}
	healthCheckers := []health.Checker{checkers.NewMongoChecker(client)}
	if cfg.RedisAddr != "" {
		rdb, err := redisstore.Connect(context.Background(), cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			zl.Fatal("redis connect", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		denylist = revocation.NewRedisDenylist(rdb)
		healthCheckers = append(healthCheckers, checkers.NewRedisChecker(rdb))
		zl.Info("token denylist enabled", zap.String("addr", cfg.RedisAddr))
	}

	authUC := auth.NewAuthService(userRepo, jwtGen)
	authHandler := handlers.NewAuthHandler(authUC, jwtGen, denylist)

	readiness := health.NewService(healthCheckers...)
	healthHandler := handlers.NewHealthHandler(readiness)

	authMW := jwt.NewAuthMiddleware(jwtGen, denylist)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.OriginURL,
		AllowCredentials: cfg.OriginURL != "*",
	}))

	http.Register(app, authHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	zl.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
