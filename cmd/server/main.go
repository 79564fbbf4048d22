package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/fairprice-backend/internal/adapter/grpc"
	fairpricev1 "github.com/simaogato/fairprice-backend/internal/adapter/grpc/fairprice/v1"
	"github.com/simaogato/fairprice-backend/internal/adapter/repository/memory"
	"github.com/simaogato/fairprice-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/fairprice-backend/internal/config"
	"github.com/simaogato/fairprice-backend/internal/domain"
	"github.com/simaogato/fairprice-backend/internal/usecase/analysis"
	"github.com/simaogato/fairprice-backend/internal/usecase/folder"
	"github.com/simaogato/fairprice-backend/internal/usecase/report"
	"github.com/simaogato/fairprice-backend/internal/usecase/seeder"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := cfg.Logger()
	ctx := logger.WithContext(context.Background())

	// 1. Setup storage and repositories
	analysisRepo, folderRepo, closeStorage := setupStorage(ctx, cfg, logger)
	defer closeStorage()

	// 2. Initialize Services (Use Cases)
	formatter, err := report.NewMoneyFormatter(cfg.Currency)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to configure currency")
	}

	analysisService := analysis.NewAnalysisService(analysisRepo, folderRepo)
	folderService := folder.NewFolderService(folderRepo, analysisRepo)
	reportService := report.NewReportService(analysisRepo, folderRepo, formatter)

	// Seed default folders for every configured user
	folderSeeder := seeder.NewFolderSeeder(folderRepo, cfg.DefaultFolders)
	for _, userID := range cfg.UserIDs() {
		if err := folderSeeder.Seed(ctx, userID); err != nil {
			logger.Fatal().Err(err).Str("user_id", userID.String()).Msg("Failed to seed default folders")
		}
	}
	logger.Info().Strs("folders", cfg.DefaultFolders).Int("users", len(cfg.UserIDs())).Msg("Default folders seeded")

	// 3. Start gRPC Server
	tokens, err := cfg.Tokens()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse API tokens")
	}

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.RecoveryInterceptor(),
			grpcadapter.AuthInterceptor(tokens),
		),
	)

	grpcAdapter := grpcadapter.NewServer(analysisService, folderService, reportService)
	fairpricev1.RegisterFairPriceServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(fairpricev1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.GRPCAddr).Str("storage", cfg.Storage).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, healthServer, logger)
}

// setupStorage builds the repositories for the configured backend and
// returns a function releasing its resources
func setupStorage(ctx context.Context, cfg config.Config, logger zerolog.Logger) (domain.AnalysisRepository, domain.FolderRepository, func()) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn().Msg("Using in-memory storage; analyses are lost on restart")
		store := memory.NewStore()
		return memory.NewAnalysisRepository(store), memory.NewFolderRepository(store), func() {}
	}

	db, err := connect(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Database schema is up to date")

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}
	return postgres.NewAnalysisRepository(db), postgres.NewFolderRepository(db), closeDB
}

// connect retries until Postgres accepts connections
func connect(connStr string, logger zerolog.Logger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := postgres.NewDB(connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		logger.Warn().Err(err).Int("attempt", attempt).Msg("Database not ready, retrying")
		time.Sleep(connectBackoff)
	}
	return nil, lastErr
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server, logger zerolog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	logger.Info().Msg("gRPC server stopped")
}
