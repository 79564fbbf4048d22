package report

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAnalysisRepository is a mock implementation of AnalysisRepository for testing
type MockAnalysisRepository struct {
	mock.Mock
}

func (m *MockAnalysisRepository) Create(ctx context.Context, analysis *domain.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockAnalysisRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Analysis, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) ([]*domain.Analysis, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) Count(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) (int, error) {
	args := m.Called(ctx, userID, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalysisRepository) Update(ctx context.Context, analysis *domain.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockAnalysisRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockAnalysisRepository) CountByFolder(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

// MockFolderRepository is a mock implementation of FolderRepository for testing
type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, analysisRepo domain.AnalysisRepository, folderRepo domain.FolderRepository) *ReportService {
	formatter, err := NewMoneyFormatter("BRL")
	require.NoError(t, err)

	service := NewReportService(analysisRepo, folderRepo, formatter)
	service.now = func() time.Time { return fixedNow }
	return service
}

func sampleAnalysis(userID uuid.UUID, ticker string, created time.Time, final float64, notes string) *domain.Analysis {
	half := domain.Float(0.5)
	return &domain.Analysis{
		ID:     uuid.New(),
		UserID: userID,
		Ticker: ticker,
		Input: domain.ValuationInput{
			Ticker:             ticker,
			EPSMode:            domain.EPSModeDirect,
			EarningsPerShare:   domain.Float(2.5),
			BookValuePerShare:  domain.Float(12.3),
			CurrentProfit:      domain.Float(1000),
			ProfitFiveYearsAgo: domain.Float(500),
			Dividends:          [domain.Years]*float64{half, half, half, half, half},
		},
		Result: domain.ValuationResult{
			EarningsPerShare:         2.5,
			DerivedGrowthRatePercent: 14.8698,
			GrahamValue:              17.9687,
			GrowthProjectedValue:     18.2435,
			DividendYieldValue:       8.3333,
			FinalBuyPrice:            final,
		},
		Notes:     notes,
		CreatedAt: created,
	}
}

func TestMoneyFormatter(t *testing.T) {
	brl, err := NewMoneyFormatter("BRL")
	require.NoError(t, err)
	assert.Equal(t, "R$13,20", brl.Format(13.20017))
	assert.Equal(t, "R$1.234,57", brl.Format(1234.5678))
	assert.Equal(t, "BRL", brl.Code())

	usd, err := NewMoneyFormatter("USD")
	require.NoError(t, err)
	assert.Equal(t, "$17.97", usd.Format(17.9687))
	assert.Equal(t, "$92,233,720,368,547.75", usd.Format(92233720368547.75))
	assert.Equal(t, "USD 100000000000000000000.00", usd.Format(1e20))
	assert.Equal(t, "USD -100000000000000000000.00", usd.Format(-1e20))
	assert.Equal(t, "-", usd.Format(math.Inf(1)))

	_, err = NewMoneyFormatter("XXZ")
	assert.Error(t, err)
}

func TestExportFolder_Markdown(t *testing.T) {
	ctx := context.Background()
	mockAnalysisRepo := new(MockAnalysisRepository)
	mockFolderRepo := new(MockFolderRepository)
	service := newTestService(t, mockAnalysisRepo, mockFolderRepo)

	userID := uuid.New()
	folderID := uuid.New()
	older := sampleAnalysis(userID, "PETR4", fixedNow.AddDate(0, 0, -3), 13.20017, "Check debt levels")
	newer := sampleAnalysis(userID, "VALE3", fixedNow.AddDate(0, 0, -1), 21.5, "")

	mockFolderRepo.On("GetByID", ctx, userID, folderID).Return(&domain.Folder{ID: folderID, UserID: userID, Name: "Commodities & Energy"}, nil)
	mockAnalysisRepo.On("List", ctx, userID, domain.AnalysisFilter{FolderID: &folderID, SortBy: domain.SortByCreatedAt}).
		Return([]*domain.Analysis{newer, older}, nil)

	doc, err := service.ExportFolder(ctx, userID, &folderID, FormatMarkdown)

	require.NoError(t, err)
	assert.Equal(t, "commodities-energy-2026-10-17.md", doc.Filename)
	assert.Equal(t, "text/markdown; charset=utf-8", doc.ContentType)

	body := string(doc.Body)
	assert.True(t, strings.HasPrefix(body, "# Commodities & Energy\n"))
	assert.Contains(t, body, "2 analyses. Amounts in BRL.")
	assert.Contains(t, body, "| PETR4 | 2026-10-14 | R$17,97 | R$18,24 | R$8,33 | **R$13,20** |")
	assert.Contains(t, body, "| VALE3 | 2026-10-16 | R$17,97 | R$18,24 | R$8,33 | **R$21,50** |")
	assert.Contains(t, body, "| Profit growth (CAGR, 5y) | 14.87% |")
	assert.Contains(t, body, "| Earnings per share | 2.5 |")
	assert.Contains(t, body, "### Notes\n\nCheck debt levels\n")

	// Oldest first
	assert.Less(t, strings.Index(body, "## PETR4"), strings.Index(body, "## VALE3"))
	// Only one notes section: VALE3 has none
	assert.Equal(t, 1, strings.Count(body, "### Notes"))
}

func TestExportFolder_HTML(t *testing.T) {
	ctx := context.Background()
	mockAnalysisRepo := new(MockAnalysisRepository)
	mockFolderRepo := new(MockFolderRepository)
	service := newTestService(t, mockAnalysisRepo, mockFolderRepo)

	userID := uuid.New()
	analysis := sampleAnalysis(userID, "TAEE11", fixedNow, 30, "keep *watching*\n\n<script>alert(1)</script>")

	mockAnalysisRepo.On("List", ctx, userID, domain.AnalysisFilter{Unfiled: true, SortBy: domain.SortByCreatedAt}).
		Return([]*domain.Analysis{analysis}, nil)

	doc, err := service.ExportFolder(ctx, userID, nil, FormatHTML)

	require.NoError(t, err)
	assert.Equal(t, "unfiled-analyses-2026-10-17.html", doc.Filename)
	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)

	page := string(doc.Body)
	assert.Contains(t, page, "<title>Unfiled analyses</title>")
	assert.Contains(t, page, "@media print")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<em>watching</em>")
	assert.NotContains(t, page, "<script>")
	mockFolderRepo.AssertNotCalled(t, "GetByID")
}

func TestExportFolder_Empty(t *testing.T) {
	ctx := context.Background()
	mockAnalysisRepo := new(MockAnalysisRepository)
	service := newTestService(t, mockAnalysisRepo, new(MockFolderRepository))

	userID := uuid.New()
	mockAnalysisRepo.On("List", ctx, userID, mock.Anything).Return([]*domain.Analysis{}, nil)

	doc, err := service.ExportFolder(ctx, userID, nil, "")

	require.NoError(t, err)
	assert.Contains(t, string(doc.Body), "0 analyses")
	assert.Contains(t, string(doc.Body), "_No analyses in this folder._")
}

func TestExportFolder_Errors(t *testing.T) {
	ctx := context.Background()
	mockAnalysisRepo := new(MockAnalysisRepository)
	mockFolderRepo := new(MockFolderRepository)
	service := newTestService(t, mockAnalysisRepo, mockFolderRepo)

	userID := uuid.New()

	_, err := service.ExportFolder(ctx, uuid.Nil, nil, FormatMarkdown)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = service.ExportFolder(ctx, userID, nil, "pdf")
	assert.True(t, domain.IsInvalidValue(err, "format"))

	folderID := uuid.New()
	mockFolderRepo.On("GetByID", ctx, userID, folderID).Return(nil, domain.ErrNotFound)
	_, err = service.ExportFolder(ctx, userID, &folderID, FormatMarkdown)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mockAnalysisRepo.AssertNotCalled(t, "List")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "watchlist", slug("Watchlist"))
	assert.Equal(t, "bancos-e-seguros", slug("  Bancos e Seguros!! "))
	assert.Equal(t, "ações", slug("Ações"))
	assert.Equal(t, "report", slug("***"))
}

func TestValuationMarkdown(t *testing.T) {
	formatter, err := NewMoneyFormatter("BRL")
	require.NoError(t, err)
	service := NewReportService(nil, nil, formatter)

	md := service.ValuationMarkdown("PETR4", domain.ValuationResult{
		EarningsPerShare:         2.5,
		DerivedGrowthRatePercent: 14.8698,
		GrahamValue:              17.9721,
		GrowthProjectedValue:     18.2435,
		DividendYieldValue:       8.3333,
		FinalBuyPrice:            13.1982,
	})

	assert.True(t, strings.HasPrefix(md, "# PETR4\n\n"))
	assert.Contains(t, md, "| Profit growth (CAGR, 5y) | 14.87% |")
	assert.Contains(t, md, "| **Fair buy price** | **R$13,20** |")

	assert.True(t, strings.HasPrefix(service.ValuationMarkdown("", domain.ValuationResult{}), "# Valuation\n\n"))
}
