package proximity_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/proximity-service/internal/domain"
	"github.com/proximity-service/internal/usecase"
	"github.com/proximity-service/internal/worker/proximity"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockCatalogRepository is a mock of CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ReplaceAll(ctx context.Context, kind domain.Kind, entities []domain.Entity) error {
	args := m.Called(ctx, kind, entities)
	return args.Error(0)
}

func (m *MockCatalogRepository) All(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

func (m *MockCatalogRepository) FilterByText(ctx context.Context, kind domain.Kind, query string) ([]domain.Entity, error) {
	args := m.Called(ctx, kind, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

func (m *MockCatalogRepository) Kinds(ctx context.Context) ([]domain.Kind, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Kind), args.Error(1)
}

func newTestWorker(mockStream *MockStreamRepository, mockCatalog *MockCatalogRepository) *proximity.RefreshWorker {
	logger := zap.NewNop()
	proximityUC := usecase.NewProximityUseCase(mockCatalog, nil, logger, 0)

	return proximity.NewRefreshWorker(
		mockStream,
		proximityUC,
		"test-group",
		[]string{"hospital"},
		10,
		20,
		logger,
	)
}

func positionMessage(t *testing.T, id string) domain.StreamMessage {
	event := domain.PositionUpdateEvent{
		SessionID: uuid.New(),
		Lat:       21.1458,
		Lon:       79.0882,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(event)
	assert.NoError(t, err)

	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestRefreshWorker_Name(t *testing.T) {
	w := newTestWorker(&MockStreamRepository{}, &MockCatalogRepository{})
	assert.Equal(t, "proximity-refresh", w.Name())
}

func TestRefreshWorker_Stop(t *testing.T) {
	w := newTestWorker(&MockStreamRepository{}, &MockCatalogRepository{})

	assert.False(t, w.IsStopped())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	// Повторный Stop - no-op
	assert.NoError(t, w.Stop())
}

func TestRefreshWorker_StartStopsOnStopSignal(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamPositionUpdate, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamPositionUpdate, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)

	w := newTestWorker(mockStream, &MockCatalogRepository{})

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRefreshWorker_ProcessesUpdateAndPublishesRefresh(t *testing.T) {
	catalog := []domain.Entity{
		{ID: "h1", Kind: domain.KindHospital, Name: "CARE Hospital", Coordinate: domain.Point{Lat: 21.1498, Lon: 79.0806}},
	}

	mockCatalog := &MockCatalogRepository{}
	mockCatalog.On("FilterByText", mock.Anything, domain.KindHospital, "").
		Return(catalog, nil)

	mockStream := &MockStreamRepository{}
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamPositionUpdate, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamPositionUpdate, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{positionMessage(t, "1-0")}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamPositionUpdate, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	mockStream.On("PublishToStream", mock.Anything, domain.StreamProximityRefreshed, mock.MatchedBy(func(data interface{}) bool {
		event, ok := data.(domain.ProximityRefreshedEvent)
		return ok && event.Kind == domain.KindHospital && len(event.Results) == 1 && event.Results[0].ID == "h1"
	})).Return(nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamPositionUpdate, "test-group", []string{"1-0"}).
		Return(nil)

	w := newTestWorker(mockStream, mockCatalog)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	// Даём воркеру обработать batch, затем останавливаем
	time.Sleep(300 * time.Millisecond)
	assert.NoError(t, w.Stop())
	<-done

	mockStream.AssertCalled(t, "PublishToStream", mock.Anything, domain.StreamProximityRefreshed, mock.Anything)
	mockStream.AssertCalled(t, "AckMessages", mock.Anything, domain.StreamPositionUpdate, "test-group", []string{"1-0"})
}

func TestRefreshWorker_PoisonMessageIsAcked(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamPositionUpdate, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamPositionUpdate, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "2-0", Data: "{broken"}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamPositionUpdate, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamPositionUpdate, "test-group", []string{"2-0"}).
		Return(nil)

	w := newTestWorker(mockStream, &MockCatalogRepository{})

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(300 * time.Millisecond)
	assert.NoError(t, w.Stop())
	<-done

	// Битое сообщение подтверждается, чтобы не застревало в стриме
	mockStream.AssertCalled(t, "AckMessages", mock.Anything, domain.StreamPositionUpdate, "test-group", []string{"2-0"})
	mockStream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}
