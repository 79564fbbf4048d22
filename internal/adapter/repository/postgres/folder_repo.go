package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

// folderRepository implements domain.FolderRepository
type folderRepository struct {
	db *DB
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *DB) domain.FolderRepository {
	return &folderRepository{db: db}
}

// Create creates a new folder
func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	query := `
		INSERT INTO analysis_folders (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		folder.ID,
		folder.UserID,
		folder.Name,
		folder.CreatedAt,
		folder.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("folder %q: %w", folder.Name, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create folder: %w", err)
	}

	return nil
}

// GetByID retrieves one of the user's folders
func (r *folderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Folder, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM analysis_folders
		WHERE id = $1 AND user_id = $2
	`

	var folder domain.Folder
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&folder.ID,
		&folder.UserID,
		&folder.Name,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get folder by ID: %w", err)
	}

	return &folder, nil
}

// GetByName retrieves one of the user's folders by case-insensitive name
func (r *folderRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM analysis_folders
		WHERE user_id = $1 AND lower(name) = lower($2)
	`

	var folder domain.Folder
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&folder.ID,
		&folder.UserID,
		&folder.Name,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("folder %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get folder by name: %w", err)
	}

	return &folder, nil
}

// List retrieves the user's folders, newest first
func (r *folderRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM analysis_folders
		WHERE user_id = $1
		ORDER BY created_at DESC, name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	folders := []*domain.Folder{}
	for rows.Next() {
		var folder domain.Folder
		if err := rows.Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, &folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate folders: %w", err)
	}

	return folders, nil
}

// Update persists the name and updated_at of a folder
func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	query := `
		UPDATE analysis_folders
		SET name = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, folder.Name, folder.UpdatedAt, folder.ID, folder.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("folder %q: %w", folder.Name, domain.ErrConflict)
		}
		return fmt.Errorf("failed to update folder: %w", err)
	}

	return expectOneRow(result, "folder", folder.ID)
}

// Delete removes one of the user's folders. The folder_id foreign key is
// ON DELETE SET NULL, so its analyses become unfiled in the same statement.
func (r *folderRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM analysis_folders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	return expectOneRow(result, "folder", id)
}
