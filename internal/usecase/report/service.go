package report

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/simaogato/fairprice-backend/internal/domain"
)

// Format is the output format of an exported document
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// UnfiledTitle is the title of the export of analyses that are not in a folder
const UnfiledTitle = "Unfiled analyses"

// Document is an exported report ready to be written to a file
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ReportService exports a folder's analyses as a printable document
type ReportService struct {
	AnalysisRepo domain.AnalysisRepository
	FolderRepo   domain.FolderRepository
	Money        *MoneyFormatter

	now      func() time.Time
	markdown goldmark.Markdown
}

// NewReportService creates a new ReportService instance
func NewReportService(analysisRepo domain.AnalysisRepository, folderRepo domain.FolderRepository, formatter *MoneyFormatter) *ReportService {
	return &ReportService{
		AnalysisRepo: analysisRepo,
		FolderRepo:   folderRepo,
		Money:        formatter,
		now:          time.Now,
		markdown:     goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// ExportFolder renders every analysis of the folder, oldest first.
// A nil folderID exports the analyses that are not in any folder.
func (s *ReportService) ExportFolder(ctx context.Context, userID uuid.UUID, folderID *uuid.UUID, format Format) (*Document, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	if format == "" {
		format = FormatMarkdown
	}
	if format != FormatMarkdown && format != FormatHTML {
		return nil, domain.InvalidValue("format")
	}

	title := UnfiledTitle
	filter := domain.AnalysisFilter{Unfiled: true, SortBy: domain.SortByCreatedAt}
	if folderID != nil {
		folder, err := s.FolderRepo.GetByID(ctx, userID, *folderID)
		if err != nil {
			return nil, err
		}
		title = folder.Name
		filter = domain.AnalysisFilter{FolderID: folderID, SortBy: domain.SortByCreatedAt}
	}

	analyses, err := s.AnalysisRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses for export: %w", err)
	}

	// Listing is newest first; a report reads oldest first
	ordered := make([]*domain.Analysis, len(analyses))
	for i, a := range analyses {
		ordered[len(analyses)-1-i] = a
	}

	generatedAt := s.now()
	md := s.RenderMarkdown(title, generatedAt, ordered)
	base := fmt.Sprintf("%s-%s", slug(title), generatedAt.Format("2006-01-02"))

	if format == FormatMarkdown {
		return &Document{
			Filename:    base + ".md",
			ContentType: "text/markdown; charset=utf-8",
			Body:        []byte(md),
		}, nil
	}

	page, err := s.RenderHTML(title, md)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    base + ".html",
		ContentType: "text/html; charset=utf-8",
		Body:        page,
	}, nil
}

// RenderMarkdown builds the report body: a summary table followed by one
// section per analysis
func (s *ReportService) RenderMarkdown(title string, generatedAt time.Time, analyses []*domain.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Generated on %s. %d %s. Amounts in %s.\n\n",
		generatedAt.Format("2006-01-02 15:04 MST"), len(analyses), plural(len(analyses), "analysis", "analyses"), s.Money.Code())

	if len(analyses) == 0 {
		b.WriteString("_No analyses in this folder._\n")
		return b.String()
	}

	b.WriteString("| Ticker | Date | Graham | Growth | Bazin | Fair buy price |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|\n")
	for _, a := range analyses {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | **%s** |\n",
			a.Ticker,
			a.CreatedAt.Format("2006-01-02"),
			s.Money.Format(a.Result.GrahamValue),
			s.Money.Format(a.Result.GrowthProjectedValue),
			s.Money.Format(a.Result.DividendYieldValue),
			s.Money.Format(a.Result.FinalBuyPrice),
		)
	}

	for _, a := range analyses {
		b.WriteString("\n")
		s.writeAnalysis(&b, a)
	}

	return b.String()
}

// ValuationMarkdown renders a single valuation with a heading
func (s *ReportService) ValuationMarkdown(ticker string, r domain.ValuationResult) string {
	var b strings.Builder
	if ticker == "" {
		b.WriteString("# Valuation\n\n")
	} else {
		fmt.Fprintf(&b, "# %s\n\n", ticker)
	}
	s.WriteResult(&b, r)
	return b.String()
}

// WriteResult writes the result table of a single valuation
func (s *ReportService) WriteResult(b *strings.Builder, r domain.ValuationResult) {
	b.WriteString("| Valuation | Value |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(b, "| Earnings per share used | %s |\n", s.Money.Format(r.EarningsPerShare))
	fmt.Fprintf(b, "| Profit growth (CAGR, 5y) | %s%% |\n", decimal.NewFromFloat(r.DerivedGrowthRatePercent).StringFixed(2))
	fmt.Fprintf(b, "| Graham value | %s |\n", s.Money.Format(r.GrahamValue))
	fmt.Fprintf(b, "| Growth-projected value | %s |\n", s.Money.Format(r.GrowthProjectedValue))
	fmt.Fprintf(b, "| Bazin dividend-yield value | %s |\n", s.Money.Format(r.DividendYieldValue))
	fmt.Fprintf(b, "| **Fair buy price** | **%s** |\n", s.Money.Format(r.FinalBuyPrice))
}

func (s *ReportService) writeAnalysis(b *strings.Builder, a *domain.Analysis) {
	fmt.Fprintf(b, "## %s (%s)\n\n", a.Ticker, a.CreatedAt.Format("2006-01-02"))

	in := a.Input
	b.WriteString("| Input | Value |\n")
	b.WriteString("|---|---:|\n")
	if in.EPSMode == domain.EPSModeFiveYearAverage {
		for i, p := range in.AnnualProfits {
			fmt.Fprintf(b, "| Profit, year %d | %s |\n", i+1, domain.FormatField(p))
		}
		fmt.Fprintf(b, "| Share count | %s |\n", domain.FormatField(in.ShareCount))
	} else {
		fmt.Fprintf(b, "| Earnings per share | %s |\n", domain.FormatField(in.EarningsPerShare))
	}
	fmt.Fprintf(b, "| Book value per share | %s |\n", domain.FormatField(in.BookValuePerShare))
	fmt.Fprintf(b, "| Current profit | %s |\n", domain.FormatField(in.CurrentProfit))
	fmt.Fprintf(b, "| Profit five years ago | %s |\n", domain.FormatField(in.ProfitFiveYearsAgo))
	for i, d := range in.Dividends {
		fmt.Fprintf(b, "| Dividend, year %d | %s |\n", i+1, domain.FormatField(d))
	}
	b.WriteString("\n")

	s.WriteResult(b, a.Result)

	if notes := strings.TrimSpace(a.Notes); notes != "" {
		b.WriteString("\n### Notes\n\n")
		b.WriteString(notes)
		b.WriteString("\n")
	}
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2em auto; max-width: 60em; color: #111; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; }
h2 { border-top: 1px solid #ddd; padding-top: 1em; }
@media print {
  body { margin: 0; max-width: none; }
  h2 { page-break-before: always; border-top: none; }
  table, tr { page-break-inside: avoid; }
}
</style>
</head>
<body>
%s</body>
</html>
`

// RenderHTML converts the Markdown report into a standalone printable page.
// Raw HTML inside notes is not rendered.
func (s *ReportService) RenderHTML(title, md string) ([]byte, error) {
	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return []byte(fmt.Sprintf(pageTemplate, html.EscapeString(title), body.String())), nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// slug turns a title into a file-name-safe lowercase string
func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "report"
	}
	return s
}
