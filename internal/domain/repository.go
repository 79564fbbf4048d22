package domain

import (
	"context"

	"github.com/google/uuid"
)

// AnalysisSort selects the ordering of listed analyses
type AnalysisSort string

const (
	SortByCreatedAt  AnalysisSort = "created_at"  // newest first (default)
	SortByTicker     AnalysisSort = "ticker"      // A to Z, newest first within a ticker
	SortByFinalPrice AnalysisSort = "final_price" // highest fair buy price first
)

// Valid reports whether s is a known sort order. The empty value means the default.
func (s AnalysisSort) Valid() bool {
	switch s {
	case "", SortByCreatedAt, SortByTicker, SortByFinalPrice:
		return true
	}
	return false
}

// AnalysisFilter narrows a listing of a user's analyses
type AnalysisFilter struct {
	// FolderID restricts to one folder. Ignored when Unfiled is set.
	FolderID *uuid.UUID
	// Unfiled restricts to analyses without a folder
	Unfiled bool
	// TickerQuery is a case-insensitive substring of the ticker
	TickerQuery string
	SortBy      AnalysisSort
	// Limit of 0 means no limit
	Limit  int
	Offset int
}

// AnalysisRepository defines the interface for analysis persistence operations.
// Every method is scoped to a user: records of other users are reported as not found.
type AnalysisRepository interface {
	// Create stores a new analysis
	Create(ctx context.Context, analysis *Analysis) error

	// GetByID retrieves one of the user's analyses
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Analysis, error)

	// List retrieves the user's analyses matching filter
	List(ctx context.Context, userID uuid.UUID, filter AnalysisFilter) ([]*Analysis, error)

	// Count returns the number of the user's analyses matching filter, ignoring Limit and Offset
	Count(ctx context.Context, userID uuid.UUID, filter AnalysisFilter) (int, error)

	// Update persists the mutable fields of an analysis (notes, folder, updated_at)
	Update(ctx context.Context, analysis *Analysis) error

	// Delete removes one of the user's analyses
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CountByFolder returns the number of analyses per folder
	CountByFolder(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error)
}

// FolderRepository defines the interface for folder persistence operations
type FolderRepository interface {
	// Create stores a new folder
	Create(ctx context.Context, folder *Folder) error

	// GetByID retrieves one of the user's folders
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Folder, error)

	// GetByName retrieves one of the user's folders by case-insensitive name
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*Folder, error)

	// List retrieves the user's folders, newest first
	List(ctx context.Context, userID uuid.UUID) ([]*Folder, error)

	// Update persists the name and updated_at of a folder
	Update(ctx context.Context, folder *Folder) error

	// Delete removes one of the user's folders. In the same write, the
	// analyses filed in it become unfiled.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
