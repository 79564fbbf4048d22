package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/simaogato/fairprice-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFolderRepository is a mock implementation of FolderRepository
type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Folder, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func TestFolderSeeder_Seed_FoldersMissing(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFolderRepository)
	seeder := NewFolderSeeder(mockRepo, []string{"Watchlist", " Carteira "})

	userID := uuid.New()

	// Mock GetByName to return "not found" errors for all default folders
	mockRepo.On("GetByName", ctx, userID, "Watchlist").Return(nil, domain.ErrNotFound)
	mockRepo.On("GetByName", ctx, userID, "Carteira").Return(nil, domain.ErrNotFound)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(folder *domain.Folder) bool {
		return folder.UserID == userID && folder.Name == "Watchlist"
	})).Return(nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(folder *domain.Folder) bool {
		return folder.UserID == userID && folder.Name == "Carteira"
	})).Return(nil)

	err := seeder.Seed(ctx, userID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestFolderSeeder_Seed_FoldersExist(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFolderRepository)
	seeder := NewFolderSeeder(mockRepo, nil)

	userID := uuid.New()
	mockRepo.On("GetByName", ctx, userID, "Watchlist").Return(&domain.Folder{ID: uuid.New(), UserID: userID, Name: "watchlist"}, nil)

	err := seeder.Seed(ctx, userID)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFolderSeeder_Seed_LookupError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFolderRepository)
	seeder := NewFolderSeeder(mockRepo, nil)

	userID := uuid.New()
	mockRepo.On("GetByName", ctx, userID, "Watchlist").Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFolderSeeder_Seed_CreateError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFolderRepository)
	seeder := NewFolderSeeder(mockRepo, nil)

	userID := uuid.New()
	mockRepo.On("GetByName", ctx, userID, "Watchlist").Return(nil, domain.ErrNotFound)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("database error"))

	err := seeder.Seed(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestFolderSeeder_Seed_RequiresUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFolderRepository)
	seeder := NewFolderSeeder(mockRepo, nil)

	mockRepo.On("GetByName", ctx, uuid.Nil, "Watchlist").Return(nil, domain.ErrNotFound)

	err := seeder.Seed(ctx, uuid.Nil)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	mockRepo.AssertNotCalled(t, "Create")
}
