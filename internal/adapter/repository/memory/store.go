// Package memory implements the domain repositories in process memory.
// It backs the server when STORAGE=memory and the transport tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

// Store holds analyses and folders of every user
type Store struct {
	mu       sync.RWMutex
	analyses map[uuid.UUID]domain.Analysis
	folders  map[uuid.UUID]domain.Folder
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		analyses: make(map[uuid.UUID]domain.Analysis),
		folders:  make(map[uuid.UUID]domain.Folder),
	}
}

// analysisRepository implements domain.AnalysisRepository
type analysisRepository struct {
	store *Store
}

// NewAnalysisRepository creates a new analysis repository on the store
func NewAnalysisRepository(store *Store) domain.AnalysisRepository {
	return &analysisRepository{store: store}
}

// folderRepository implements domain.FolderRepository
type folderRepository struct {
	store *Store
}

// NewFolderRepository creates a new folder repository on the store
func NewFolderRepository(store *Store) domain.FolderRepository {
	return &folderRepository{store: store}
}

func copyAnalysis(a domain.Analysis) *domain.Analysis {
	if a.FolderID != nil {
		id := *a.FolderID
		a.FolderID = &id
	}
	return &a
}

func (r *analysisRepository) Create(ctx context.Context, analysis *domain.Analysis) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.analyses[analysis.ID]; ok {
		return fmt.Errorf("analysis %s: %w", analysis.ID, domain.ErrConflict)
	}
	r.store.analyses[analysis.ID] = *copyAnalysis(*analysis)
	return nil
}

func (r *analysisRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Analysis, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.analyses[id]
	if !ok || a.UserID != userID {
		return nil, fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
	}
	return copyAnalysis(a), nil
}

// matching returns the user's analyses matching filter, sorted, without pagination
func (r *analysisRepository) matching(userID uuid.UUID, filter domain.AnalysisFilter) []*domain.Analysis {
	query := strings.ToLower(filter.TickerQuery)

	var out []*domain.Analysis
	for _, a := range r.store.analyses {
		if a.UserID != userID {
			continue
		}
		if filter.Unfiled && a.FolderID != nil {
			continue
		}
		if !filter.Unfiled && filter.FolderID != nil && (a.FolderID == nil || *a.FolderID != *filter.FolderID) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(a.Ticker), query) {
			continue
		}
		out = append(out, copyAnalysis(a))
	}

	newestFirst := func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	}

	switch filter.SortBy {
	case domain.SortByTicker:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Ticker != out[j].Ticker {
				return out[i].Ticker < out[j].Ticker
			}
			return newestFirst(i, j)
		})
	case domain.SortByFinalPrice:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Result.FinalBuyPrice != out[j].Result.FinalBuyPrice {
				return out[i].Result.FinalBuyPrice > out[j].Result.FinalBuyPrice
			}
			return newestFirst(i, j)
		})
	default:
		sort.Slice(out, newestFirst)
	}

	return out
}

func (r *analysisRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) ([]*domain.Analysis, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := r.matching(userID, filter)

	if filter.Offset >= len(out) {
		return []*domain.Analysis{}, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *analysisRepository) Count(ctx context.Context, userID uuid.UUID, filter domain.AnalysisFilter) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.matching(userID, filter)), nil
}

func (r *analysisRepository) Update(ctx context.Context, analysis *domain.Analysis) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.analyses[analysis.ID]
	if !ok || stored.UserID != analysis.UserID {
		return fmt.Errorf("analysis %s: %w", analysis.ID, domain.ErrNotFound)
	}

	updated := copyAnalysis(stored)
	updated.Notes = analysis.Notes
	updated.FolderID = copyAnalysis(*analysis).FolderID
	updated.UpdatedAt = analysis.UpdatedAt
	r.store.analyses[analysis.ID] = *updated
	return nil
}

func (r *analysisRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.analyses[id]
	if !ok || a.UserID != userID {
		return fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.analyses, id)
	return nil
}

func (r *analysisRepository) CountByFolder(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[uuid.UUID]int)
	for _, a := range r.store.analyses {
		if a.UserID == userID && a.FolderID != nil {
			counts[*a.FolderID]++
		}
	}
	return counts, nil
}

func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.folders {
		if f.ID == folder.ID || (f.UserID == folder.UserID && strings.EqualFold(f.Name, folder.Name)) {
			return fmt.Errorf("folder %q: %w", folder.Name, domain.ErrConflict)
		}
	}
	r.store.folders[folder.ID] = *folder
	return nil
}

func (r *folderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	f, ok := r.store.folders[id]
	if !ok || f.UserID != userID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return &f, nil
}

func (r *folderRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, f := range r.store.folders {
		if f.UserID == userID && strings.EqualFold(f.Name, name) {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("folder %q: %w", name, domain.ErrNotFound)
}

func (r *folderRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []*domain.Folder{}
	for _, f := range r.store.folders {
		if f.UserID == userID {
			f := f
			out = append(out, &f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.folders[folder.ID]
	if !ok || stored.UserID != folder.UserID {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	stored.Name = folder.Name
	stored.UpdatedAt = folder.UpdatedAt
	r.store.folders[folder.ID] = stored
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, ok := r.store.folders[id]
	if !ok || f.UserID != userID {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(r.store.folders, id)

	for analysisID, a := range r.store.analyses {
		if a.FolderID != nil && *a.FolderID == id {
			a.FolderID = nil
			r.store.analyses[analysisID] = a
		}
	}
	return nil
}
