package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/godilite/review-server/api/v1"
	"github.com/godilite/review-server/internal/config"
	handler "github.com/godilite/review-server/internal/grpc"
	"github.com/godilite/review-server/internal/judge"
	"github.com/godilite/review-server/internal/repository"
	"github.com/godilite/review-server/internal/rules"
	"github.com/godilite/review-server/internal/service"
	"github.com/godilite/review-server/pkg/cache"
	dbbuilder "github.com/godilite/review-server/pkg/database"
	grpcsrv "github.com/godilite/review-server/pkg/grpc/server"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("database pool initialized", zap.String("path", cfg.DBPath))

	evalRepo := repository.NewEvaluationRepository(dbPool)
	if err := evalRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("cache client initialized", zap.String("addr", cfg.RedisAddr))

	judgeClient, err := judge.NewHTTPClient(
		judge.WithBaseURL(cfg.JudgeBaseURL),
		judge.WithAPIKey(cfg.JudgeAPIKey),
		judge.WithModel(cfg.JudgeModel),
		judge.WithTemperature(cfg.JudgeTemperature),
		judge.WithMaxTokens(cfg.JudgeMaxTokens),
		judge.WithTimeout(cfg.JudgeTimeout),
		judge.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("judge client init failed: %w", err)
	}

	ruleEngine := rules.NewEngine(rules.DefaultTaxonomy(), logger)
	judgeEvaluator := judge.NewEvaluator(judgeClient, logger)

	reviewService := service.NewEvaluationService(ruleEngine, judgeEvaluator, evalRepo, logger,
		service.WithBatchConcurrency(cfg.BatchConcurrency),
		service.WithUsageReporter(judgeClient),
	)

	grpcHandlers := handler.NewGRPCHandlers(reviewService, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterTicketReviewServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("gRPC shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")
	_ = a.logger.Sync()
	return nil
}
