// Package fairpricev1 holds the wire messages, service descriptor and client
// of the fairprice.v1.FairPriceService gRPC API.
package fairpricev1

import "google.golang.org/protobuf/types/known/timestamppb"

// EPS modes carried in ValuationInput.EarningsPerShareMode
const (
	EPSModeDirect          = "DIRECT"
	EPSModeFiveYearAverage = "FIVE_YEAR_AVERAGE"
)

// ValuationInput carries the raw valuation inputs. Numeric fields are decimal
// strings; an empty string means the value was not supplied.
type ValuationInput struct {
	Ticker               string   `json:"ticker,omitempty"`
	EarningsPerShareMode string   `json:"earnings_per_share_mode,omitempty"`
	EarningsPerShare     string   `json:"earnings_per_share,omitempty"`
	AnnualProfits        []string `json:"annual_profits,omitempty"`
	ShareCount           string   `json:"share_count,omitempty"`
	BookValuePerShare    string   `json:"book_value_per_share,omitempty"`
	CurrentProfit        string   `json:"current_profit,omitempty"`
	ProfitFiveYearsAgo   string   `json:"profit_five_years_ago,omitempty"`
	Dividends            []string `json:"dividends,omitempty"`
}

// ValuationResult carries the computed values as decimal strings at full precision
type ValuationResult struct {
	EarningsPerShare         string `json:"earnings_per_share"`
	DerivedGrowthRatePercent string `json:"derived_growth_rate_percent"`
	GrahamValue              string `json:"graham_value"`
	GrowthProjectedValue     string `json:"growth_projected_value"`
	DividendYieldValue       string `json:"dividend_yield_value"`
	FinalBuyPrice            string `json:"final_buy_price"`
}

// Analysis is a saved valuation snapshot
type Analysis struct {
	Id        string                 `json:"id"`
	Ticker    string                 `json:"ticker"`
	Input     *ValuationInput        `json:"input"`
	Result    *ValuationResult       `json:"result"`
	Notes     string                 `json:"notes,omitempty"`
	FolderId  string                 `json:"folder_id,omitempty"`
	CreatedAt *timestamppb.Timestamp `json:"created_at"`
	UpdatedAt *timestamppb.Timestamp `json:"updated_at"`
}

// Folder groups analyses
type Folder struct {
	Id            string                 `json:"id"`
	Name          string                 `json:"name"`
	AnalysisCount int32                  `json:"analysis_count"`
	CreatedAt     *timestamppb.Timestamp `json:"created_at"`
	UpdatedAt     *timestamppb.Timestamp `json:"updated_at"`
}

type ComputeValuationRequest struct {
	Input *ValuationInput `json:"input"`
}

type ComputeValuationResponse struct {
	Result *ValuationResult `json:"result"`
}

type SaveAnalysisRequest struct {
	Input    *ValuationInput `json:"input"`
	Notes    string          `json:"notes,omitempty"`
	FolderId string          `json:"folder_id,omitempty"`
}

type SaveAnalysisResponse struct {
	Analysis *Analysis `json:"analysis"`
}

type GetAnalysisRequest struct {
	Id string `json:"id"`
}

type GetAnalysisResponse struct {
	Analysis *Analysis `json:"analysis"`
}

type ListAnalysesRequest struct {
	FolderId    string `json:"folder_id,omitempty"`
	Unfiled     bool   `json:"unfiled,omitempty"`
	TickerQuery string `json:"ticker_query,omitempty"`
	SortBy      string `json:"sort_by,omitempty"`
	Limit       int32  `json:"limit,omitempty"`
	Offset      int32  `json:"offset,omitempty"`
}

type ListAnalysesResponse struct {
	Analyses   []*Analysis `json:"analyses"`
	TotalCount int32       `json:"total_count"`
}

type UpdateAnalysisNotesRequest struct {
	Id    string `json:"id"`
	Notes string `json:"notes"`
}

type UpdateAnalysisNotesResponse struct {
	Analysis *Analysis `json:"analysis"`
}

// MoveAnalysisRequest files an analysis. An empty FolderId unfiles it.
type MoveAnalysisRequest struct {
	Id       string `json:"id"`
	FolderId string `json:"folder_id,omitempty"`
}

type MoveAnalysisResponse struct {
	Analysis *Analysis `json:"analysis"`
}

type DeleteAnalysisRequest struct {
	Id string `json:"id"`
}

type DeleteAnalysisResponse struct{}

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type CreateFolderResponse struct {
	Folder *Folder `json:"folder"`
}

type RenameFolderRequest struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type RenameFolderResponse struct {
	Folder *Folder `json:"folder"`
}

type ListFoldersRequest struct{}

type ListFoldersResponse struct {
	Folders []*Folder `json:"folders"`
}

type DeleteFolderRequest struct {
	Id string `json:"id"`
}

type DeleteFolderResponse struct{}

// ExportFolderRequest exports a folder. An empty FolderId exports the
// unfiled analyses; Format is "markdown" (default) or "html".
type ExportFolderRequest struct {
	FolderId string `json:"folder_id,omitempty"`
	Format   string `json:"format,omitempty"`
}

type ExportFolderResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}
