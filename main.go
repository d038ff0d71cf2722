package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Gurunath-S/Time-Management-Coach-backend/handlers"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/avatar"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/config"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/database"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/identity"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tokens"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
	trackerhandler "github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker/handler"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker/repository"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker/service"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/users"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/logger"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/metrics"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: google=%v mongo=%v jwt_secret_set=%v", cfg.Google.ClientID != "", cfg.MongoDB.URI != "", cfg.JWT.Secret != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Identity verifier for Google-signed assertions
	ctx := context.Background()
	var verifier identity.Verifier
	if cfg.Google.ClientID != "" {
		ver, err := identity.NewVerifier(ctx, cfg.Google.Issuer, cfg.Google.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize identity verifier: %v", err)
		} else {
			verifier = ver
		}
	}
	// Optional insecure verifier for integration tests: parse claims without signature verification
	if verifier == nil {
		if strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN"))) == "true" {
			logger.Warn("enabling insecure identity verifier (integration mode)")
			verifier = identity.NewInsecureVerifier()
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	userRepo := users.NewMongoUserRepository(db.Collection("users"))
	avatars := avatar.NewFetcher(cfg.Avatar.FetchTimeout, cfg.Avatar.MaxBytes)
	userSvc := users.NewService(userRepo, avatars)

	issuer := tokens.NewIssuer(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)
	authGate := middleware.AuthMiddleware(issuer)

	taskSvc := service.NewTaskService(repository.NewMongoRepo(db.Collection("tasks"), func() *tracker.Task { return &tracker.Task{} }))
	qtaskSvc := service.NewQTaskService(repository.NewMongoRepo(db.Collection("qtasks"), func() *tracker.QTask { return &tracker.QTask{} }))

	if verifier != nil {
		handlers.NewAuthHandler(verifier, userSvc, issuer).Register(r, authGate)
	} else {
		logger.Warnf("login route not registered: no identity verifier configured")
	}
	trackerhandler.RegisterRoutes(r, authGate, taskSvc, qtaskSvc)

	// readiness endpoint — 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"mongo":    client.Ping(c.Request.Context(), nil) == nil,
			"identity": verifier != nil,
		}
		ready := deps["mongo"] && deps["identity"]
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting task tracker service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
