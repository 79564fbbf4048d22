package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

const analysisColumns = `
	id, user_id, ticker, eps_mode, earnings_per_share, annual_profits, share_count,
	book_value_per_share, current_profit, profit_five_years_ago, dividends,
	eps_used, growth_rate_percent, graham_value, growth_projected_value,
	dividend_yield_value, final_buy_price, notes, folder_id, created_at, updated_at`

// analysisRepository implements domain.AnalysisRepository
type analysisRepository struct {
	db *DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *DB) domain.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create creates a new analysis
func (r *analysisRepository) Create(ctx context.Context, a *domain.Analysis) error {
	query := `
		INSERT INTO stock_analyses (` + analysisColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	var annualProfits interface{}
	if a.Input.EPSMode == domain.EPSModeFiveYearAverage {
		annualProfits = pq.Array(numericArray(a.Input.AnnualProfits))
	}

	var folderID interface{}
	if a.FolderID != nil {
		folderID = *a.FolderID
	}

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Ticker,
		string(a.Input.EPSMode),
		numericArg(a.Input.EarningsPerShare),
		annualProfits,
		numericArg(a.Input.ShareCount),
		numericArg(a.Input.BookValuePerShare),
		numericArg(a.Input.CurrentProfit),
		numericArg(a.Input.ProfitFiveYearsAgo),
		pq.Array(numericArray(a.Input.Dividends)),
		decimal.NewFromFloat(a.Result.EarningsPerShare).String(),
		decimal.NewFromFloat(a.Result.DerivedGrowthRatePercent).String(),
		decimal.NewFromFloat(a.Result.GrahamValue).String(),
		decimal.NewFromFloat(a.Result.GrowthProjectedValue).String(),
		decimal.NewFromFloat(a.Result.DividendYieldValue).String(),
		decimal.NewFromFloat(a.Result.FinalBuyPrice).String(),
		a.Notes,
		folderID,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("analysis %s: %w", a.ID, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// GetByID retrieves one of the user's analyses
func (r *analysisRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM stock_analyses WHERE id = $1 AND user_id = $2`

	analysis, err := scanAnalysis(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get analysis by ID: %w", err)
	}

	return analysis, nil
}

// whereClause builds the WHERE clause and arguments shared by List and Count
func whereClause(userID uuid.UUID, filter domain.AnalysisFilter) (string, []interface{}) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	if filter.Unfiled {
		conditions = append(conditions, "folder_id IS NULL")
	} else if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		conditions = append(conditions, fmt.Sprintf("folder_id = $%d", len(args)))
	}

	if filter.TickerQuery != "" {
		escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(filter.TickerQuery)
		args = append(args, "%"+escaped+"%")
		conditions = append(conditions, fmt.Sprintf("ticker ILIKE $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func orderClause(sortBy domain.AnalysisSort) string {
	switch sortBy {
	case domain.SortByTicker:
		return "ORDER BY ticker ASC, created_at DESC, id"
	case domain.SortByFinalPrice:
		return "ORDER BY final_buy_price DESC, created_at DESC, id"
	default:
		return "ORDER BY created_at DESC, id"
	}
}

// List retrieves the user's analyses matching filter
func (r *analysisRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) ([]*domain.Analysis, error) {
	where, args := whereClause(userID, filter)
	query := `SELECT ` + analysisColumns + ` FROM stock_analyses ` + where + ` ` + orderClause(filter.SortBy)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := []*domain.Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}

	return analyses, nil
}

// Count returns the number of the user's analyses matching filter
func (r *analysisRepository) Count(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) (int, error) {
	where, args := whereClause(userID, filter)
	query := `SELECT COUNT(*) FROM stock_analyses ` + where

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	return count, nil
}

// Update persists notes, folder and updated_at
func (r *analysisRepository) Update(ctx context.Context, a *domain.Analysis) error {
	query := `
		UPDATE stock_analyses
		SET notes = $1, folder_id = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`

	var folderID interface{}
	if a.FolderID != nil {
		folderID = *a.FolderID
	}

	result, err := r.db.ExecContext(ctx, query, a.Notes, folderID, a.UpdatedAt, a.ID, a.UserID)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}

	return expectOneRow(result, "analysis", a.ID)
}

// Delete removes one of the user's analyses
func (r *analysisRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stock_analyses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	return expectOneRow(result, "analysis", id)
}

// CountByFolder returns the number of analyses per folder
func (r *analysisRepository) CountByFolder(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	query := `
		SELECT folder_id, COUNT(*)
		FROM stock_analyses
		WHERE user_id = $1 AND folder_id IS NOT NULL
		GROUP BY folder_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses per folder: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var folderID uuid.UUID
		var count int
		if err := rows.Scan(&folderID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan folder count: %w", err)
		}
		counts[folderID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate folder counts: %w", err)
	}

	return counts, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(row rowScanner) (*domain.Analysis, error) {
	var a domain.Analysis
	var epsMode string
	var eps, shareCount sql.NullString
	var annualProfits, dividends []sql.NullString
	var bookValue, currentProfit, profitFiveYearsAgo string
	var epsUsed, growthRate, graham, growthProjected, dividendYield, finalPrice string
	var folderID uuid.NullUUID

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Ticker,
		&epsMode,
		&eps,
		pq.Array(&annualProfits),
		&shareCount,
		&bookValue,
		&currentProfit,
		&profitFiveYearsAgo,
		pq.Array(&dividends),
		&epsUsed,
		&growthRate,
		&graham,
		&growthProjected,
		&dividendYield,
		&finalPrice,
		&a.Notes,
		&folderID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if folderID.Valid {
		id := folderID.UUID
		a.FolderID = &id
	}

	in := &a.Input
	in.Ticker = a.Ticker
	in.EPSMode = domain.EPSMode(epsMode)

	if in.EarningsPerShare, err = parseNullNumeric("earnings_per_share", eps); err != nil {
		return nil, err
	}
	if in.ShareCount, err = parseNullNumeric("share_count", shareCount); err != nil {
		return nil, err
	}
	if in.AnnualProfits, err = parseNumericArray("annual_profits", annualProfits); err != nil {
		return nil, err
	}
	if in.Dividends, err = parseNumericArray("dividends", dividends); err != nil {
		return nil, err
	}

	required := []struct {
		column string
		raw    string
		dest   **float64
	}{
		{"book_value_per_share", bookValue, &in.BookValuePerShare},
		{"current_profit", currentProfit, &in.CurrentProfit},
		{"profit_five_years_ago", profitFiveYearsAgo, &in.ProfitFiveYearsAgo},
	}
	for _, field := range required {
		v, err := parseNumeric(field.column, field.raw)
		if err != nil {
			return nil, err
		}
		*field.dest = &v
	}

	results := []struct {
		column string
		raw    string
		dest   *float64
	}{
		{"eps_used", epsUsed, &a.Result.EarningsPerShare},
		{"growth_rate_percent", growthRate, &a.Result.DerivedGrowthRatePercent},
		{"graham_value", graham, &a.Result.GrahamValue},
		{"growth_projected_value", growthProjected, &a.Result.GrowthProjectedValue},
		{"dividend_yield_value", dividendYield, &a.Result.DividendYieldValue},
		{"final_buy_price", finalPrice, &a.Result.FinalBuyPrice},
	}
	for _, field := range results {
		if *field.dest, err = parseNumeric(field.column, field.raw); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

// expectOneRow turns "no row affected" into ErrNotFound
func expectOneRow(result sql.Result, entity string, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
