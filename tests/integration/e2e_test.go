//go:build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	fairpricev1 "github.com/simaogato/fairprice-backend/internal/adapter/grpc/fairprice/v1"
	"github.com/simaogato/fairprice-backend/internal/adapter/repository/postgres"
)

var (
	db         *postgres.DB
	grpcClient fairpricev1.FairPriceServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain connects to the database and to a running fairprice server
func TestMain(m *testing.M) {
	var err error

	// 1. Connect to Database
	db, err = postgres.NewDB(getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	// 2. Connect to gRPC Server
	grpcConn, err = grpc.NewClient(getGRPCAddress(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}

	grpcClient = fairpricev1.NewFairPriceServiceClient(grpcConn)

	code := m.Run()

	grpcConn.Close()
	db.Close()
	os.Exit(code)
}

func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": getAPIToken(),
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

func getAPIToken() string {
	if token := os.Getenv("API_TOKEN"); token != "" {
		return token
	}
	return "dev-token"
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_NAME", "fairprice"),
	)
}

func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

func referenceInput(ticker string) *fairpricev1.ValuationInput {
	return &fairpricev1.ValuationInput{
		Ticker:               ticker,
		EarningsPerShareMode: fairpricev1.EPSModeDirect,
		EarningsPerShare:     "2.50",
		BookValuePerShare:    "12.30",
		CurrentProfit:        "1000000000",
		ProfitFiveYearsAgo:   "500000000",
		Dividends:            []string{"0.5", "0.5", "0.5", "0.5", "0.5"},
	}
}

// TestEndToEndFlow tests the complete flow: Compute -> Save -> File -> Export -> Delete
func TestEndToEndFlow(t *testing.T) {
	ctx := getAuthContext()

	// Step A: Compute without persisting
	computed, err := grpcClient.ComputeValuation(context.Background(), &fairpricev1.ComputeValuationRequest{
		Input: referenceInput(""),
	})
	require.NoError(t, err, "ComputeValuation should succeed without a token")
	final, err := decimal.NewFromString(computed.Result.FinalBuyPrice)
	require.NoError(t, err)
	assert.Equal(t, "13.20", final.StringFixed(2))

	// Step B: Create a folder and save the analysis into it
	folderResp, err := grpcClient.CreateFolder(ctx, &fairpricev1.CreateFolderRequest{Name: "E2E " + t.Name()})
	require.NoError(t, err, "CreateFolder should succeed")
	folderID := folderResp.Folder.Id
	t.Cleanup(func() {
		_, _ = grpcClient.DeleteFolder(getAuthContext(), &fairpricev1.DeleteFolderRequest{Id: folderID})
	})

	saved, err := grpcClient.SaveAnalysis(ctx, &fairpricev1.SaveAnalysisRequest{
		Input:    referenceInput("e2e3"),
		Notes:    "end to end",
		FolderId: folderID,
	})
	require.NoError(t, err, "SaveAnalysis should succeed")
	analysisID := saved.Analysis.Id

	// Step C: Verify the row landed in Postgres with the result at full precision
	var ticker, storedFinal string
	var storedFolder sql.NullString
	err = db.QueryRowContext(context.Background(),
		`SELECT ticker, final_buy_price, folder_id FROM stock_analyses WHERE id = $1`, analysisID,
	).Scan(&ticker, &storedFinal, &storedFolder)
	require.NoError(t, err, "Should be able to query the saved analysis")
	assert.Equal(t, "E2E3", ticker)
	assert.Equal(t, folderID, storedFolder.String)

	stored, err := decimal.NewFromString(storedFinal)
	require.NoError(t, err)
	assert.True(t, stored.Round(6).Equal(final.Round(6)), "stored price should match the computed one")

	// Step D: Folder listing counts the analysis
	folders, err := grpcClient.ListFolders(ctx, &fairpricev1.ListFoldersRequest{})
	require.NoError(t, err)
	var count int32 = -1
	for _, f := range folders.Folders {
		if f.Id == folderID {
			count = f.AnalysisCount
		}
	}
	assert.Equal(t, int32(1), count)

	// Step E: Export the folder as Markdown
	exported, err := grpcClient.ExportFolder(ctx, &fairpricev1.ExportFolderRequest{FolderId: folderID})
	require.NoError(t, err)
	assert.Contains(t, string(exported.Body), "E2E3")
	assert.Contains(t, string(exported.Body), "end to end")

	// Step F: Delete and verify it is gone
	_, err = grpcClient.DeleteAnalysis(ctx, &fairpricev1.DeleteAnalysisRequest{Id: analysisID})
	require.NoError(t, err)

	_, err = grpcClient.GetAnalysis(ctx, &fairpricev1.GetAnalysisRequest{Id: analysisID})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

// TestNegativeScenarios tests error handling
func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()

	tests := []struct {
		name string
		call func() error
		code codes.Code
	}{
		{
			name: "Save Without Token",
			call: func() error {
				_, err := grpcClient.SaveAnalysis(context.Background(), &fairpricev1.SaveAnalysisRequest{Input: referenceInput("PETR4")})
				return err
			},
			code: codes.Unauthenticated,
		},
		{
			name: "Missing Dividend",
			call: func() error {
				in := referenceInput("PETR4")
				in.Dividends = in.Dividends[:4]
				_, err := grpcClient.SaveAnalysis(ctx, &fairpricev1.SaveAnalysisRequest{Input: in})
				return err
			},
			code: codes.InvalidArgument,
		},
		{
			name: "Unknown Analysis",
			call: func() error {
				_, err := grpcClient.GetAnalysis(ctx, &fairpricev1.GetAnalysisRequest{Id: "00000000-0000-0000-0000-0000000000ff"})
				return err
			},
			code: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			st, ok := status.FromError(err)
			require.True(t, ok, "error should be a gRPC status")
			assert.Equal(t, tt.code, st.Code())
		})
	}
}
