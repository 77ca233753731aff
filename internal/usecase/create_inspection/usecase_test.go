package create_inspection

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	inspectionRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/inspection"
	"github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeInspectionRepo хранит активные заявки в памяти и воспроизводит
// гарантию уникального индекса: не более одной активной заявки на
// пару (дата, слот)
type fakeInspectionRepo struct {
	mu     sync.Mutex
	nextID int64
	active map[string]*domain.InspectionRequest
}

func newFakeInspectionRepo() *fakeInspectionRepo {
	return &fakeInspectionRepo{
		nextID: 1,
		active: make(map[string]*domain.InspectionRequest),
	}
}

func slotKey(date time.Time, slot domain.SlotLabel) string {
	return fmt.Sprintf("%s|%s", date.Format(domain.DateFormat), slot)
}

func (r *fakeInspectionRepo) Create(ctx context.Context, req *domain.InspectionRequest) (*domain.InspectionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(req.InspectionDate, req.InspectionTime)
	if _, taken := r.active[key]; taken {
		return nil, inspectionRepo.ErrSlotTaken
	}

	created := *req
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.nextID++
	r.active[key] = &created

	return &created, nil
}

// UpdateStatus переводит заявку в новый статус; заявки в неактивных
// статусах перестают удерживать слот, как и в БД с частичным индексом
func (r *fakeInspectionRepo) UpdateStatus(ctx context.Context, id int64, status domain.InspectionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, insp := range r.active {
		if insp.ID == id {
			insp.Status = status
			if !insp.IsActive() {
				delete(r.active, key)
			}
			return nil
		}
	}
	return inspectionRepo.ErrInspectionNotFound
}

func (r *fakeInspectionRepo) BusySlots(ctx context.Context, date time.Time) ([]domain.SlotLabel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var busy []domain.SlotLabel
	for _, slot := range domain.AllSlots() {
		if _, taken := r.active[slotKey(date, slot)]; taken {
			busy = append(busy, slot)
		}
	}
	return busy, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// exhaustedTxManager имитирует конфликт сериализации, переживший все повторы
type exhaustedTxManager struct{}

func (exhaustedTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fmt.Errorf("serialization retries exhausted: %w", &pq.Error{Code: "40001"})
}

type fakeCatalogClient struct {
	cars map[int64]*carcatalog.Car
}

func (c *fakeCatalogClient) GetPublishedCar(ctx context.Context, carID int64) (*carcatalog.Car, error) {
	car, ok := c.cars[carID]
	if !ok {
		return nil, carcatalog.ErrCarNotFound
	}
	return car, nil
}

func newTestUseCase(repo *fakeInspectionRepo) *UseCase {
	catalog := &fakeCatalogClient{
		cars: map[int64]*carcatalog.Car{
			1: {ID: 1, Brand: "Lada", Model: "Vesta", Year: 2023, Price: 1_500_000, IsPublished: true},
		},
	}

	uc := NewUseCase(repo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("Successful creation", func(t *testing.T) {
		uc := newTestUseCase(newFakeInspectionRepo())

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "+7 (999) 123-45-67", resp.Phone)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.Equal(t, "Lada", resp.CarBrand)
		assert.Equal(t, "Vesta", resp.CarModel)
	})

	t.Run("Unknown car is rejected", func(t *testing.T) {
		uc := newTestUseCase(newFakeInspectionRepo())

		req := validRequest()
		req.CarID = 999

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrCarNotFound)
	})

	t.Run("Validation failure is reported before catalog lookup", func(t *testing.T) {
		uc := newTestUseCase(newFakeInspectionRepo())

		req := validRequest()
		req.CarID = 999 // несуществующий автомобиль
		req.Phone = "123"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Taken slot yields conflict with remaining slots", func(t *testing.T) {
		repo := newFakeInspectionRepo()
		uc := newTestUseCase(repo)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		// Вторая заявка на тот же слот
		_, err = uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotTaken)

		var conflictErr *SlotConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Len(t, conflictErr.AvailableSlots, 7)
		assert.NotContains(t, conflictErr.AvailableSlots, domain.SlotLabel("09:00-10:00"))
	})

	t.Run("Different slots on same date do not conflict", func(t *testing.T) {
		uc := newTestUseCase(newFakeInspectionRepo())

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.InspectionTime = "10:00-11:00"
		_, err = uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("Same slot on different dates does not conflict", func(t *testing.T) {
		uc := newTestUseCase(newFakeInspectionRepo())

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.InspectionDate = time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC) // среда
		_, err = uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("Cancelled inspection frees the slot", func(t *testing.T) {
		repo := newFakeInspectionRepo()
		uc := newTestUseCase(repo)

		created, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		date := truncateToDay(validRequest().InspectionDate)

		// Слот удерживается, повторная запись конфликтует
		_, err = uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotTaken)

		// confirmed -> cancelled освобождает слот
		require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, domain.StatusConfirmed))
		require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, domain.StatusCancelled))

		busy, err := repo.BusySlots(context.Background(), date)
		require.NoError(t, err)
		assert.Empty(t, busy)
		assert.Equal(t, domain.AllSlots(), domain.AvailableSlots(busy))

		// Тот же (дата, слот) снова доступен для записи
		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, resp.ID)
	})

	t.Run("Exhausted serialization retries surface as slot conflict", func(t *testing.T) {
		repo := newFakeInspectionRepo()
		catalog := &fakeCatalogClient{
			cars: map[int64]*carcatalog.Car{
				1: {ID: 1, Brand: "Lada", Model: "Vesta", Year: 2023, Price: 1_500_000, IsPublished: true},
			},
		}
		txMgr := &exhaustedTxManager{}

		uc := NewUseCase(repo, catalog, txMgr, nopLogger{})
		uc.timeProvider = &fixedTimeProvider{now: testNow}

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotTaken)

		var conflictErr *SlotConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, domain.AllSlots(), conflictErr.AvailableSlots)
	})

	t.Run("Concurrent requests for one slot produce exactly one winner", func(t *testing.T) {
		repo := newFakeInspectionRepo()
		uc := newTestUseCase(repo)

		const attempts = 16
		var wg sync.WaitGroup
		errs := make([]error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.Execute(context.Background(), validRequest())
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.ErrorIs(t, err, ErrSlotTaken)
			}
		}
		assert.Equal(t, 1, winners)

		busy, err := repo.BusySlots(context.Background(), truncateToDay(validRequest().InspectionDate))
		require.NoError(t, err)
		assert.Len(t, busy, 1)
	})
}
