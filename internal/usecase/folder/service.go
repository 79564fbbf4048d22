package folder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

// FolderService handles folder-related operations
type FolderService struct {
	FolderRepo   domain.FolderRepository
	AnalysisRepo domain.AnalysisRepository
}

// NewFolderService creates a new FolderService instance
func NewFolderService(folderRepo domain.FolderRepository, analysisRepo domain.AnalysisRepository) *FolderService {
	return &FolderService{
		FolderRepo:   folderRepo,
		AnalysisRepo: analysisRepo,
	}
}

// Create creates a folder for the user. Names are unique per user, ignoring case.
func (s *FolderService) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	now := time.Now().UTC()
	folder := &domain.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      domain.NormalizeFolderName(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := folder.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, userID, folder.Name, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.FolderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// Rename changes the name of one of the user's folders
func (s *FolderService) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*domain.Folder, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	folder, err := s.FolderRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	folder.Name = domain.NormalizeFolderName(name)
	if err := folder.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, userID, folder.Name, folder.ID); err != nil {
		return nil, err
	}

	folder.UpdatedAt = time.Now().UTC()
	if err := s.FolderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// List returns the user's folders, newest first, each with the number of
// analyses filed in it
func (s *FolderService) List(ctx context.Context, userID uuid.UUID) ([]domain.FolderSummary, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	folders, err := s.FolderRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	counts, err := s.AnalysisRepo.CountByFolder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses per folder: %w", err)
	}

	summaries := make([]domain.FolderSummary, 0, len(folders))
	for _, folder := range folders {
		summaries = append(summaries, domain.FolderSummary{
			Folder:        folder,
			AnalysisCount: counts[folder.ID],
		})
	}

	return summaries, nil
}

// Delete removes one of the user's folders. The analyses it holds are kept
// and become unfiled.
func (s *FolderService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	if _, err := s.FolderRepo.GetByID(ctx, userID, id); err != nil {
		return err
	}

	return s.FolderRepo.Delete(ctx, userID, id)
}

// ensureNameAvailable fails with ErrConflict when another folder of the user
// already has the name
func (s *FolderService) ensureNameAvailable(ctx context.Context, userID uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.FolderRepo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == self {
		return nil
	}
	return fmt.Errorf("folder %q: %w", name, domain.ErrConflict)
}
