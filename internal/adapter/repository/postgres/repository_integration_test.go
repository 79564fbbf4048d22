//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/fairprice-backend/internal/domain"
)

var db *DB

// TestMain connects to the database named by DB_CONN_STR or DB_* and applies the schema
func TestMain(m *testing.M) {
	var err error
	db, err = NewDB(getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := db.Migrate(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
	// Migrate must be idempotent
	if err := db.Migrate(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to re-apply schema: %v", err))
	}

	code := m.Run()

	db.Close()
	os.Exit(code)
}

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

// cleanupUser removes everything a test user created
func cleanupUser(t *testing.T, userID uuid.UUID) {
	t.Cleanup(func() {
		ctx := context.Background()
		_, err := db.ExecContext(ctx, `DELETE FROM stock_analyses WHERE user_id = $1`, userID)
		assert.NoError(t, err)
		_, err = db.ExecContext(ctx, `DELETE FROM analysis_folders WHERE user_id = $1`, userID)
		assert.NoError(t, err)
	})
}

func newFolder(userID uuid.UUID, name string, created time.Time) *domain.Folder {
	return &domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func newAnalysis(userID uuid.UUID, ticker string, finalPrice float64, created time.Time) *domain.Analysis {
	return &domain.Analysis{
		ID:     uuid.New(),
		UserID: userID,
		Ticker: ticker,
		Input: domain.ValuationInput{
			Ticker:             ticker,
			EPSMode:            domain.EPSModeFiveYearAverage,
			AnnualProfits:      [domain.Years]*float64{domain.Float(250), domain.Float(260.5), domain.Float(270), domain.Float(280), domain.Float(290)},
			ShareCount:         domain.Float(100),
			BookValuePerShare:  domain.Float(12.3),
			CurrentProfit:      domain.Float(1e9),
			ProfitFiveYearsAgo: domain.Float(5e8),
			Dividends:          [domain.Years]*float64{domain.Float(0.5), domain.Float(0.5), domain.Float(0.5), domain.Float(0.5), domain.Float(0.5)},
		},
		Result: domain.ValuationResult{
			EarningsPerShare:         2.701,
			DerivedGrowthRatePercent: 14.869835499703509,
			GrahamValue:              18.65,
			GrowthProjectedValue:     19.71,
			DividendYieldValue:       8.333333333333334,
			FinalBuyPrice:            finalPrice,
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestAnalysisRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cleanupUser(t, userID)

	repo := NewAnalysisRepository(db)
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	a := newAnalysis(userID, "PETR4", 13.198245, created)
	a.Notes = "first look"

	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, userID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Ticker, got.Ticker)
	assert.Equal(t, a.Notes, got.Notes)
	assert.Nil(t, got.FolderID)
	assert.True(t, a.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, domain.EPSModeFiveYearAverage, got.Input.EPSMode)
	assert.Nil(t, got.Input.EarningsPerShare)
	require.NotNil(t, got.Input.AnnualProfits[1])
	assert.Equal(t, 260.5, *got.Input.AnnualProfits[1])
	assert.Equal(t, 1e9, *got.Input.CurrentProfit)
	assert.InDelta(t, a.Result.DerivedGrowthRatePercent, got.Result.DerivedGrowthRatePercent, 1e-9)
	assert.InDelta(t, a.Result.FinalBuyPrice, got.Result.FinalBuyPrice, 1e-9)

	_, err = repo.GetByID(ctx, uuid.New(), a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisRepository_ListFilterSort(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	cleanupUser(t, userID)
	cleanupUser(t, otherUser)

	folders := NewFolderRepository(db)
	repo := NewAnalysisRepository(db)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	banks := newFolder(userID, "Banks", base)
	require.NoError(t, folders.Create(ctx, banks))

	itub := newAnalysis(userID, "ITUB4", 30, base.Add(1*time.Hour))
	itub.FolderID = &banks.ID
	bbas := newAnalysis(userID, "BBAS3", 45, base.Add(2*time.Hour))
	bbas.FolderID = &banks.ID
	petr := newAnalysis(userID, "PETR4", 13, base.Add(3*time.Hour))
	weird := newAnalysis(userID, "A_B", 5, base.Add(4*time.Hour))
	foreign := newAnalysis(otherUser, "ITUB3", 99, base.Add(5*time.Hour))

	for _, a := range []*domain.Analysis{itub, bbas, petr, weird, foreign} {
		require.NoError(t, repo.Create(ctx, a))
	}

	tickers := func(list []*domain.Analysis) []string {
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a.Ticker)
		}
		return out
	}

	tests := []struct {
		name     string
		filter   domain.AnalysisFilter
		expected []string
		total    int
	}{
		{name: "Newest First", filter: domain.AnalysisFilter{}, expected: []string{"A_B", "PETR4", "BBAS3", "ITUB4"}, total: 4},
		{name: "By Ticker", filter: domain.AnalysisFilter{SortBy: domain.SortByTicker}, expected: []string{"A_B", "BBAS3", "ITUB4", "PETR4"}, total: 4},
		{name: "By Final Price", filter: domain.AnalysisFilter{SortBy: domain.SortByFinalPrice}, expected: []string{"BBAS3", "ITUB4", "PETR4", "A_B"}, total: 4},
		{name: "Folder", filter: domain.AnalysisFilter{FolderID: &banks.ID}, expected: []string{"BBAS3", "ITUB4"}, total: 2},
		{name: "Unfiled", filter: domain.AnalysisFilter{Unfiled: true}, expected: []string{"A_B", "PETR4"}, total: 2},
		{name: "Query", filter: domain.AnalysisFilter{TickerQuery: "itu"}, expected: []string{"ITUB4"}, total: 1},
		{name: "Query Escapes Wildcards", filter: domain.AnalysisFilter{TickerQuery: "_"}, expected: []string{"A_B"}, total: 1},
		{name: "Page", filter: domain.AnalysisFilter{Limit: 2, Offset: 1}, expected: []string{"PETR4", "BBAS3"}, total: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, userID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tickers(list))

			total, err := repo.Count(ctx, userID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
		})
	}

	counts, err := repo.CountByFolder(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{banks.ID: 2}, counts)
}

func TestAnalysisRepository_UpdateDeleteClear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cleanupUser(t, userID)

	folders := NewFolderRepository(db)
	repo := NewAnalysisRepository(db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	watchlist := newFolder(userID, "Watchlist", now)
	require.NoError(t, folders.Create(ctx, watchlist))

	a := newAnalysis(userID, "VALE3", 50, now)
	require.NoError(t, repo.Create(ctx, a))

	a.Notes = "iron ore cycle"
	a.FolderID = &watchlist.ID
	a.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, userID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "iron ore cycle", got.Notes)
	require.NotNil(t, got.FolderID)
	assert.Equal(t, watchlist.ID, *got.FolderID)

	require.NoError(t, folders.Delete(ctx, userID, watchlist.ID))
	got, err = repo.GetByID(ctx, userID, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FolderID)

	require.NoError(t, repo.Delete(ctx, userID, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, userID, a.ID), domain.ErrNotFound)

	missing := newAnalysis(userID, "NOPE3", 1, now)
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrNotFound)
}

func TestFolderRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	cleanupUser(t, userID)
	cleanupUser(t, otherUser)

	repo := NewFolderRepository(db)
	analyses := NewAnalysisRepository(db)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	dividends := newFolder(userID, "Dividends", base)
	growth := newFolder(userID, "Growth", base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, dividends))
	require.NoError(t, repo.Create(ctx, growth))

	t.Run("Unique Name Per User", func(t *testing.T) {
		err := repo.Create(ctx, newFolder(userID, "dividends", base))
		assert.ErrorIs(t, err, domain.ErrConflict)

		require.NoError(t, repo.Create(ctx, newFolder(otherUser, "Dividends", base)))
	})

	t.Run("Get By Name", func(t *testing.T) {
		got, err := repo.GetByName(ctx, userID, "GROWTH")
		require.NoError(t, err)
		assert.Equal(t, growth.ID, got.ID)

		_, err = repo.GetByName(ctx, userID, "Value")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("List Newest First", func(t *testing.T) {
		list, err := repo.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Growth", list[0].Name)
		assert.Equal(t, "Dividends", list[1].Name)
	})

	t.Run("Rename", func(t *testing.T) {
		growth.Name = "Dividends"
		assert.ErrorIs(t, repo.Update(ctx, growth), domain.ErrConflict)

		growth.Name = "Compounders"
		growth.UpdatedAt = base.Add(2 * time.Hour)
		require.NoError(t, repo.Update(ctx, growth))

		got, err := repo.GetByID(ctx, userID, growth.ID)
		require.NoError(t, err)
		assert.Equal(t, "Compounders", got.Name)

		_, err = repo.GetByID(ctx, otherUser, growth.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete Unfiles Analyses", func(t *testing.T) {
		a := newAnalysis(userID, "TAEE11", 35, base)
		a.FolderID = &dividends.ID
		require.NoError(t, analyses.Create(ctx, a))

		require.NoError(t, repo.Delete(ctx, userID, dividends.ID))
		assert.ErrorIs(t, repo.Delete(ctx, userID, dividends.ID), domain.ErrNotFound)

		got, err := analyses.GetByID(ctx, userID, a.ID)
		require.NoError(t, err)
		assert.Nil(t, got.FolderID)
	})
}
