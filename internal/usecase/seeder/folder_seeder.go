package seeder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

// DefaultFolderNames are seeded for every user when no other list is configured
var DefaultFolderNames = []string{"Watchlist"}

// FolderSeeder ensures every user starts with the default folders
type FolderSeeder struct {
	repo  domain.FolderRepository
	names []string
}

// NewFolderSeeder creates a new FolderSeeder instance.
// An empty names list falls back to DefaultFolderNames.
func NewFolderSeeder(repo domain.FolderRepository, names []string) *FolderSeeder {
	if len(names) == 0 {
		names = DefaultFolderNames
	}
	return &FolderSeeder{
		repo:  repo,
		names: names,
	}
}

// Seed creates the default folders the user does not have yet.
// Existing folders, matched by name ignoring case, are left untouched.
func (s *FolderSeeder) Seed(ctx context.Context, userID uuid.UUID) error {
	for _, name := range s.names {
		name = domain.NormalizeFolderName(name)

		_, err := s.repo.GetByName(ctx, userID, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		now := time.Now().UTC()
		folder := &domain.Folder{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// Validate before creating
		if err := folder.Validate(); err != nil {
			return err
		}

		if err := s.repo.Create(ctx, folder); err != nil {
			return err
		}
	}

	return nil
}
