package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	fairpricev1 "github.com/simaogato/fairprice-backend/internal/adapter/grpc/fairprice/v1"
	"github.com/simaogato/fairprice-backend/internal/domain"
	"github.com/simaogato/fairprice-backend/internal/usecase/analysis"
	"github.com/simaogato/fairprice-backend/internal/usecase/folder"
	"github.com/simaogato/fairprice-backend/internal/usecase/report"
	"github.com/simaogato/fairprice-backend/internal/usecase/valuation"
)

// Server implements the FairPriceService gRPC server
type Server struct {
	fairpricev1.UnimplementedFairPriceServiceServer

	AnalysisService *analysis.AnalysisService
	FolderService   *folder.FolderService
	ReportService   *report.ReportService
}

// NewServer creates a new gRPC server instance
func NewServer(
	analysisService *analysis.AnalysisService,
	folderService *folder.FolderService,
	reportService *report.ReportService,
) *Server {
	return &Server{
		AnalysisService: analysisService,
		FolderService:   folderService,
		ReportService:   reportService,
	}
}

// ComputeValuation handles the ComputeValuation RPC. It needs no user.
func (s *Server) ComputeValuation(ctx context.Context, req *fairpricev1.ComputeValuationRequest) (*fairpricev1.ComputeValuationResponse, error) {
	in, err := ProtoInputToDomain(req.Input)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := s.AnalysisService.Compute(in)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.ComputeValuationResponse{
		Result: DomainResultToProto(*result),
	}, nil
}

// SaveAnalysis handles the SaveAnalysis RPC
func (s *Server) SaveAnalysis(ctx context.Context, req *fairpricev1.SaveAnalysisRequest) (*fairpricev1.SaveAnalysisResponse, error) {
	folderID, err := parseOptionalID("folder_id", req.FolderId)
	if err != nil {
		return nil, err
	}

	in, err := ProtoInputToDomain(req.Input)
	if err != nil {
		return nil, mapError(err)
	}

	input := analysis.SaveAnalysisInput{
		Input:    in,
		Notes:    req.Notes,
		FolderID: folderID,
	}

	a, err := s.AnalysisService.Save(ctx, UserIDFromContext(ctx), input)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.SaveAnalysisResponse{Analysis: domainAnalysisToProto(a)}, nil
}

// GetAnalysis handles the GetAnalysis RPC
func (s *Server) GetAnalysis(ctx context.Context, req *fairpricev1.GetAnalysisRequest) (*fairpricev1.GetAnalysisResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	a, err := s.AnalysisService.Get(ctx, UserIDFromContext(ctx), id)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.GetAnalysisResponse{Analysis: domainAnalysisToProto(a)}, nil
}

// ListAnalyses handles the ListAnalyses RPC
func (s *Server) ListAnalyses(ctx context.Context, req *fairpricev1.ListAnalysesRequest) (*fairpricev1.ListAnalysesResponse, error) {
	folderID, err := parseOptionalID("folder_id", req.FolderId)
	if err != nil {
		return nil, err
	}

	filter := domain.AnalysisFilter{
		FolderID:    folderID,
		Unfiled:     req.Unfiled,
		TickerQuery: req.TickerQuery,
		SortBy:      domain.AnalysisSort(strings.ToLower(strings.TrimSpace(req.SortBy))),
		Limit:       int(req.Limit),
		Offset:      int(req.Offset),
	}

	result, err := s.AnalysisService.List(ctx, UserIDFromContext(ctx), filter)
	if err != nil {
		return nil, mapError(err)
	}

	analyses := make([]*fairpricev1.Analysis, 0, len(result.Analyses))
	for _, a := range result.Analyses {
		analyses = append(analyses, domainAnalysisToProto(a))
	}

	return &fairpricev1.ListAnalysesResponse{
		Analyses:   analyses,
		TotalCount: int32(result.TotalCount),
	}, nil
}

// UpdateAnalysisNotes handles the UpdateAnalysisNotes RPC
func (s *Server) UpdateAnalysisNotes(ctx context.Context, req *fairpricev1.UpdateAnalysisNotesRequest) (*fairpricev1.UpdateAnalysisNotesResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	a, err := s.AnalysisService.UpdateNotes(ctx, UserIDFromContext(ctx), id, req.Notes)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.UpdateAnalysisNotesResponse{Analysis: domainAnalysisToProto(a)}, nil
}

// MoveAnalysis handles the MoveAnalysis RPC
func (s *Server) MoveAnalysis(ctx context.Context, req *fairpricev1.MoveAnalysisRequest) (*fairpricev1.MoveAnalysisResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	folderID, err := parseOptionalID("folder_id", req.FolderId)
	if err != nil {
		return nil, err
	}

	a, err := s.AnalysisService.MoveToFolder(ctx, UserIDFromContext(ctx), id, folderID)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.MoveAnalysisResponse{Analysis: domainAnalysisToProto(a)}, nil
}

// DeleteAnalysis handles the DeleteAnalysis RPC
func (s *Server) DeleteAnalysis(ctx context.Context, req *fairpricev1.DeleteAnalysisRequest) (*fairpricev1.DeleteAnalysisResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.AnalysisService.Delete(ctx, UserIDFromContext(ctx), id); err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.DeleteAnalysisResponse{}, nil
}

// CreateFolder handles the CreateFolder RPC
func (s *Server) CreateFolder(ctx context.Context, req *fairpricev1.CreateFolderRequest) (*fairpricev1.CreateFolderResponse, error) {
	f, err := s.FolderService.Create(ctx, UserIDFromContext(ctx), req.Name)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.CreateFolderResponse{Folder: domainFolderToProto(f, 0)}, nil
}

// RenameFolder handles the RenameFolder RPC
func (s *Server) RenameFolder(ctx context.Context, req *fairpricev1.RenameFolderRequest) (*fairpricev1.RenameFolderResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	f, err := s.FolderService.Rename(ctx, UserIDFromContext(ctx), id, req.Name)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.RenameFolderResponse{Folder: domainFolderToProto(f, 0)}, nil
}

// ListFolders handles the ListFolders RPC
func (s *Server) ListFolders(ctx context.Context, req *fairpricev1.ListFoldersRequest) (*fairpricev1.ListFoldersResponse, error) {
	summaries, err := s.FolderService.List(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}

	folders := make([]*fairpricev1.Folder, 0, len(summaries))
	for _, summary := range summaries {
		folders = append(folders, domainFolderToProto(summary.Folder, summary.AnalysisCount))
	}

	return &fairpricev1.ListFoldersResponse{Folders: folders}, nil
}

// DeleteFolder handles the DeleteFolder RPC
func (s *Server) DeleteFolder(ctx context.Context, req *fairpricev1.DeleteFolderRequest) (*fairpricev1.DeleteFolderResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.FolderService.Delete(ctx, UserIDFromContext(ctx), id); err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.DeleteFolderResponse{}, nil
}

// ExportFolder handles the ExportFolder RPC
func (s *Server) ExportFolder(ctx context.Context, req *fairpricev1.ExportFolderRequest) (*fairpricev1.ExportFolderResponse, error) {
	folderID, err := parseOptionalID("folder_id", req.FolderId)
	if err != nil {
		return nil, err
	}

	format := report.Format(strings.ToLower(strings.TrimSpace(req.Format)))
	doc, err := s.ReportService.ExportFolder(ctx, UserIDFromContext(ctx), folderID, format)
	if err != nil {
		return nil, mapError(err)
	}

	return &fairpricev1.ExportFolderResponse{
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		Body:        doc.Body,
	}, nil
}

// parseID parses a required UUID request field
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

// parseOptionalID parses a UUID request field where empty means none
func parseOptionalID(field, raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ProtoInputToDomain converts the wire input to a domain input.
// Unparseable numbers become absent and fail validation as missing.
// An empty mode means DIRECT. A series longer than five values is rejected.
func ProtoInputToDomain(in *fairpricev1.ValuationInput) (domain.ValuationInput, error) {
	if in == nil {
		in = &fairpricev1.ValuationInput{}
	}

	mode := domain.EPSMode(strings.ToUpper(strings.TrimSpace(in.EarningsPerShareMode)))
	if mode == "" {
		mode = domain.EPSModeDirect
	}

	annualProfits, err := domain.ParseSeries(valuation.FieldAnnualProfits, in.AnnualProfits)
	if err != nil {
		return domain.ValuationInput{}, err
	}
	dividends, err := domain.ParseSeries(valuation.FieldDividends, in.Dividends)
	if err != nil {
		return domain.ValuationInput{}, err
	}

	return domain.ValuationInput{
		Ticker:             in.Ticker,
		EPSMode:            mode,
		EarningsPerShare:   domain.ParseField(in.EarningsPerShare),
		AnnualProfits:      annualProfits,
		ShareCount:         domain.ParseField(in.ShareCount),
		BookValuePerShare:  domain.ParseField(in.BookValuePerShare),
		CurrentProfit:      domain.ParseField(in.CurrentProfit),
		ProfitFiveYearsAgo: domain.ParseField(in.ProfitFiveYearsAgo),
		Dividends:          dividends,
	}, nil
}

func formatSeries(values [domain.Years]*float64) []string {
	out := make([]string, domain.Years)
	for i, v := range values {
		out[i] = domain.FormatField(v)
	}
	return out
}

// domainInputToProto converts a domain input to the wire input
func domainInputToProto(in domain.ValuationInput) *fairpricev1.ValuationInput {
	return &fairpricev1.ValuationInput{
		Ticker:               in.Ticker,
		EarningsPerShareMode: string(in.EPSMode),
		EarningsPerShare:     domain.FormatField(in.EarningsPerShare),
		AnnualProfits:        formatSeries(in.AnnualProfits),
		ShareCount:           domain.FormatField(in.ShareCount),
		BookValuePerShare:    domain.FormatField(in.BookValuePerShare),
		CurrentProfit:        domain.FormatField(in.CurrentProfit),
		ProfitFiveYearsAgo:   domain.FormatField(in.ProfitFiveYearsAgo),
		Dividends:            formatSeries(in.Dividends),
	}
}

// DomainResultToProto converts a domain result to the wire result
func DomainResultToProto(r domain.ValuationResult) *fairpricev1.ValuationResult {
	return &fairpricev1.ValuationResult{
		EarningsPerShare:         decimal.NewFromFloat(r.EarningsPerShare).String(),
		DerivedGrowthRatePercent: decimal.NewFromFloat(r.DerivedGrowthRatePercent).String(),
		GrahamValue:              decimal.NewFromFloat(r.GrahamValue).String(),
		GrowthProjectedValue:     decimal.NewFromFloat(r.GrowthProjectedValue).String(),
		DividendYieldValue:       decimal.NewFromFloat(r.DividendYieldValue).String(),
		FinalBuyPrice:            decimal.NewFromFloat(r.FinalBuyPrice).String(),
	}
}

// domainAnalysisToProto converts a domain Analysis to a proto Analysis message
func domainAnalysisToProto(a *domain.Analysis) *fairpricev1.Analysis {
	protoAnalysis := &fairpricev1.Analysis{
		Id:        a.ID.String(),
		Ticker:    a.Ticker,
		Input:     domainInputToProto(a.Input),
		Result:    DomainResultToProto(a.Result),
		Notes:     a.Notes,
		CreatedAt: timestamppb.New(a.CreatedAt),
		UpdatedAt: timestamppb.New(a.UpdatedAt),
	}

	if a.FolderID != nil {
		protoAnalysis.FolderId = a.FolderID.String()
	}

	return protoAnalysis
}

// domainFolderToProto converts a domain Folder to a proto Folder message
func domainFolderToProto(f *domain.Folder, analysisCount int) *fairpricev1.Folder {
	return &fairpricev1.Folder{
		Id:            f.ID.String(),
		Name:          f.Name,
		AnalysisCount: int32(analysisCount),
		CreatedAt:     timestamppb.New(f.CreatedAt),
		UpdatedAt:     timestamppb.New(f.UpdatedAt),
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
