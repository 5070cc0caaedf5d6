package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/pkg/errors"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/usecase/dto"
)

// MockFavoriteRepository is a mock of FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, entity domain.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoriteRepository) List(ctx context.Context) ([]domain.Entity, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Entity), args.Int(1), args.Error(2)
}

func TestFavoriteUseCase_Add(t *testing.T) {
	mockRepo := &MockFavoriteRepository{}
	mockRepo.On("Add", mock.Anything, mock.MatchedBy(func(e domain.Entity) bool {
		return e.ID == "hosp-care" && e.Kind == domain.KindHospital
	})).Return(nil)

	uc := usecase.NewFavoriteUseCase(mockRepo, zap.NewNop())

	err := uc.Add(context.Background(), dto.FavoriteAddRequest{
		ID:   "hosp-care",
		Kind: "hospital",
		Name: "CARE Hospital",
		Lat:  21.1498,
		Lon:  79.0806,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteUseCase_Add_InvalidCoordinates(t *testing.T) {
	uc := usecase.NewFavoriteUseCase(&MockFavoriteRepository{}, zap.NewNop())

	err := uc.Add(context.Background(), dto.FavoriteAddRequest{
		ID:   "bad",
		Kind: "hospital",
		Name: "Bad",
		Lat:  91,
		Lon:  0,
	})

	assert.Equal(t, errors.ErrInvalidCoordinates, err)
}

func TestFavoriteUseCase_Add_RepositoryFailure(t *testing.T) {
	mockRepo := &MockFavoriteRepository{}
	mockRepo.On("Add", mock.Anything, mock.Anything).Return(assert.AnError)

	uc := usecase.NewFavoriteUseCase(mockRepo, zap.NewNop())

	err := uc.Add(context.Background(), dto.FavoriteAddRequest{
		ID:   "hosp-care",
		Kind: "hospital",
		Name: "CARE Hospital",
		Lat:  21.1498,
		Lon:  79.0806,
	})

	assert.Equal(t, errors.ErrDatabaseError, err)
}

func TestFavoriteUseCase_Remove(t *testing.T) {
	mockRepo := &MockFavoriteRepository{}
	mockRepo.On("Remove", mock.Anything, "hosp-care").Return(nil)

	uc := usecase.NewFavoriteUseCase(mockRepo, zap.NewNop())

	// Отсутствующий id на уровне репозитория - тоже nil, no-op семантика
	err := uc.Remove(context.Background(), "hosp-care")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteUseCase_Remove_EmptyID(t *testing.T) {
	uc := usecase.NewFavoriteUseCase(&MockFavoriteRepository{}, zap.NewNop())

	err := uc.Remove(context.Background(), "")

	assert.Equal(t, errors.ErrInvalidRequest, err)
}

func TestFavoriteUseCase_List_InsertionOrder(t *testing.T) {
	mockRepo := &MockFavoriteRepository{}
	mockRepo.On("List", mock.Anything).Return([]domain.Entity{
		{ID: "first", Kind: domain.KindHospital, Name: "First"},
		{ID: "second", Kind: domain.KindPlace, Name: "Second"},
	}, 0, nil)

	uc := usecase.NewFavoriteUseCase(mockRepo, zap.NewNop())

	resp, skipped, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "first", resp.Favorites[0].ID)
	assert.Equal(t, "second", resp.Favorites[1].ID)
}

func TestFavoriteUseCase_List_SkippedCorruptRows(t *testing.T) {
	mockRepo := &MockFavoriteRepository{}
	mockRepo.On("List", mock.Anything).Return([]domain.Entity{
		{ID: "ok", Kind: domain.KindTaxi, Name: "Readable"},
	}, 2, nil)

	uc := usecase.NewFavoriteUseCase(mockRepo, zap.NewNop())

	resp, skipped, err := uc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 1, resp.Total)
}

func TestFavoriteUseCase_List_UnreadableStorageDegradesToEmpty(t *testing.T) {
	mockRepo := &MockFavoriteRepository{}
	mockRepo.On("List", mock.Anything).Return(nil, 0, assert.AnError)

	uc := usecase.NewFavoriteUseCase(mockRepo, zap.NewNop())

	resp, skipped, err := uc.List(context.Background())

	// Нечитаемое хранилище - пустой набор, не ошибка
	assert.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.NotNil(t, resp)
	assert.Empty(t, resp.Favorites)
}
