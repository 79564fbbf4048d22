package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
	"github.com/simaogato/fairprice-backend/internal/usecase/valuation"
)

// SaveAnalysisInput represents the input for saving an analysis
type SaveAnalysisInput struct {
	Input    domain.ValuationInput
	Notes    string
	FolderID *uuid.UUID
}

// ListResult is one page of analyses plus the total number matching the filter
type ListResult struct {
	Analyses   []*domain.Analysis
	TotalCount int
}

// AnalysisService handles computing and persisting stock analyses
type AnalysisService struct {
	AnalysisRepo domain.AnalysisRepository
	FolderRepo   domain.FolderRepository
}

// NewAnalysisService creates a new AnalysisService instance
func NewAnalysisService(analysisRepo domain.AnalysisRepository, folderRepo domain.FolderRepository) *AnalysisService {
	return &AnalysisService{
		AnalysisRepo: analysisRepo,
		FolderRepo:   folderRepo,
	}
}

// Compute runs the valuation engine. It needs no user and persists nothing.
func (s *AnalysisService) Compute(in domain.ValuationInput) (*domain.ValuationResult, error) {
	return valuation.Compute(in)
}

// Save computes the valuation for the input and stores the snapshot for the user.
// The stored result is always recomputed here from the stored input.
func (s *AnalysisService) Save(ctx context.Context, userID uuid.UUID, input SaveAnalysisInput) (*domain.Analysis, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	in := input.Input
	in.Ticker = domain.NormalizeTicker(in.Ticker)
	if err := domain.ValidateTicker(in.Ticker); err != nil {
		return nil, err
	}

	result, err := valuation.Compute(in)
	if err != nil {
		return nil, err
	}

	if input.FolderID != nil {
		if _, err := s.FolderRepo.GetByID(ctx, userID, *input.FolderID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	analysis := &domain.Analysis{
		ID:        uuid.New(),
		UserID:    userID,
		Ticker:    in.Ticker,
		Input:     in,
		Result:    *result,
		Notes:     strings.TrimSpace(input.Notes),
		FolderID:  input.FolderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := analysis.Validate(); err != nil {
		return nil, err
	}

	if err := s.AnalysisRepo.Create(ctx, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

// Get retrieves one of the user's analyses
func (s *AnalysisService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Analysis, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.AnalysisRepo.GetByID(ctx, userID, id)
}

// List retrieves the user's analyses matching the filter, with the total count
// for pagination
func (s *AnalysisService) List(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) (*ListResult, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	if !filter.SortBy.Valid() {
		return nil, domain.InvalidValue("sort_by")
	}
	if filter.Limit < 0 {
		return nil, domain.InvalidValue("limit")
	}
	if filter.Offset < 0 {
		return nil, domain.InvalidValue("offset")
	}
	if filter.SortBy == "" {
		filter.SortBy = domain.SortByCreatedAt
	}
	filter.TickerQuery = strings.TrimSpace(filter.TickerQuery)

	total, err := s.AnalysisRepo.Count(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	analyses, err := s.AnalysisRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Analyses:   analyses,
		TotalCount: total,
	}, nil
}

// UpdateNotes replaces the notes of one of the user's analyses
func (s *AnalysisService) UpdateNotes(ctx context.Context, userID, id uuid.UUID, notes string) (*domain.Analysis, error) {
	notes = strings.TrimSpace(notes)
	if err := domain.ValidateNotes(notes); err != nil {
		return nil, err
	}

	analysis, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	analysis.Notes = notes
	analysis.UpdatedAt = time.Now().UTC()

	if err := s.AnalysisRepo.Update(ctx, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

// MoveToFolder files one of the user's analyses in a folder.
// A nil folderID takes it out of its folder.
func (s *AnalysisService) MoveToFolder(ctx context.Context, userID, id uuid.UUID, folderID *uuid.UUID) (*domain.Analysis, error) {
	analysis, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if folderID != nil {
		if _, err := s.FolderRepo.GetByID(ctx, userID, *folderID); err != nil {
			return nil, err
		}
	}

	analysis.FolderID = folderID
	analysis.UpdatedAt = time.Now().UTC()

	if err := s.AnalysisRepo.Update(ctx, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

// Delete removes one of the user's analyses
func (s *AnalysisService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	return s.AnalysisRepo.Delete(ctx, userID, id)
}
