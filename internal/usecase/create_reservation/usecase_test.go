package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	gametypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/gametype"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager сериализует конкурентные вызовы mutex'ом, как это делает
// SERIALIZABLE транзакция для конфликтующих записей
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeCourtRepo struct {
	courts map[string]*domain.Court
}

func (r *fakeCourtRepo) GetByName(_ context.Context, name string) (*domain.Court, error) {
	if c, ok := r.courts[name]; ok {
		return c, nil
	}
	return nil, courtRepo.ErrCourtNotFound
}

type fakeGameTypeRepo struct {
	gameTypes map[string]*domain.GameType
}

func (r *fakeGameTypeRepo) GetByName(_ context.Context, name string) (*domain.GameType, error) {
	if gt, ok := r.gameTypes[name]; ok {
		return gt, nil
	}
	return nil, gametypeRepo.ErrGameTypeNotFound
}

type fakeCustomerRepo struct {
	nextID  int64
	byPhone map[string]*domain.Customer
}

func (r *fakeCustomerRepo) FindByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	return r.byPhone[phone], nil
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if _, ok := r.byPhone[c.Phone]; ok {
		return nil, customerRepo.ErrPhoneExists
	}
	r.nextID++
	created := &domain.Customer{
		ID:        r.nextID,
		GlobalID:  uuid.New(),
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: time.Now(),
	}
	r.byPhone[c.Phone] = created
	return created, nil
}

type fakeReservationRepo struct {
	nextID       int64
	reservations []*domain.Reservation
}

func (r *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.nextID++
	created := &domain.Reservation{
		ID:        r.nextID,
		GlobalID:  uuid.New(),
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Court:     res.Court,
		GameType:  res.GameType,
		Customer:  res.Customer,
		CreatedAt: time.Now(),
	}
	r.reservations = append(r.reservations, created)
	return created, nil
}

func (r *fakeReservationRepo) ExistsOverlap(_ context.Context, courtName string, start, end time.Time, excludeID *int64) (bool, error) {
	candidate := domain.Interval{Start: start, End: end}
	for _, res := range r.reservations {
		if res.Court.Name != courtName {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if res.Interval().Overlaps(candidate) {
			return true, nil
		}
	}
	return false, nil
}

type fixture struct {
	useCase      *UseCase
	reservations *fakeReservationRepo
	customers    *fakeCustomerRepo
}

func newFixture() *fixture {
	dirt := &domain.Surface{ID: 1, GlobalID: uuid.New(), Name: "Dirt", PricePerMinute: 100}

	reservations := &fakeReservationRepo{}
	customers := &fakeCustomerRepo{byPhone: map[string]*domain.Customer{}}
	courts := &fakeCourtRepo{courts: map[string]*domain.Court{
		"Court 1": {ID: 1, GlobalID: uuid.New(), Name: "Court 1", Surface: dirt},
	}}
	gameTypes := &fakeGameTypeRepo{gameTypes: map[string]*domain.GameType{
		"Singles": {ID: 1, Name: "Singles", PriceMultiplier: 1.0},
		"Doubles": {ID: 2, Name: "Doubles", PriceMultiplier: 1.5},
	}}

	return &fixture{
		useCase:      NewUseCase(reservations, courts, gameTypes, customers, &fakeTxManager{}, nopLogger{}),
		reservations: reservations,
		customers:    customers,
	}
}

func validRequest() *Request {
	start := time.Date(2027, 5, 1, 10, 0, 0, 0, time.UTC)
	return &Request{
		CourtName:    "Court 1",
		GameTypeName: "Singles",
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Phone:        "777123456",
		CustomerName: ptr.Ptr("Emil Doktor"),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.GlobalID)
	assert.Equal(t, "Court 1", resp.CourtName)
	assert.Equal(t, "Singles", resp.GameTypeName)
	assert.Equal(t, "Emil Doktor", resp.CustomerName)
	assert.Equal(t, "777123456", resp.Phone)
	// 100 за минуту, множитель 1.0, 120 минут
	assert.Equal(t, float64(12000), resp.Price)
}

func TestExecute_DoublesMultiplier(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.GameTypeName = "Doubles"

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, float64(18000), resp.Price)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing court", func(r *Request) { r.CourtName = "" }},
		{"missing game type", func(r *Request) { r.GameTypeName = "" }},
		{"missing phone", func(r *Request) { r.Phone = "" }},
		{"malformed phone", func(r *Request) { r.Phone = "not-a-phone" }},
		{"missing start time", func(r *Request) { r.StartTime = time.Time{} }},
		{"missing end time", func(r *Request) { r.EndTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.useCase.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrBadArgument)
			assert.Empty(t, f.reservations.reservations)
		})
	}
}

func TestExecute_UnknownCourt(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CourtName = "Court 99"

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.ErrorIs(t, err, domain.ErrBadArgument)
}

func TestExecute_UnknownGameType(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.GameTypeName = "Triples"

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrGameTypeNotFound)
	assert.ErrorIs(t, err, domain.ErrBadArgument)
}

func TestExecute_StartNotBeforeEnd(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.EndTime = req.StartTime

	_, err := f.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_Overlap(t *testing.T) {
	f := newFixture()

	first := validRequest()
	_, err := f.useCase.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.Phone = "777321987"
	second.StartTime = first.StartTime.Add(time.Hour)
	second.EndTime = first.EndTime.Add(time.Hour)

	_, err = f.useCase.Execute(context.Background(), second)

	assert.ErrorIs(t, err, ErrOverlap)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, f.reservations.reservations, 1)
}

func TestExecute_TouchingIntervalsDoNotConflict(t *testing.T) {
	f := newFixture()

	first := validRequest()
	_, err := f.useCase.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.StartTime = first.EndTime
	second.EndTime = first.EndTime.Add(time.Hour)

	_, err = f.useCase.Execute(context.Background(), second)

	require.NoError(t, err)
	assert.Len(t, f.reservations.reservations, 2)
}

func TestExecute_NewPhoneWithoutNameGetsPlaceholder(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CustomerName = nil

	resp, err := f.useCase.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.UnknownCustomerName, resp.CustomerName)
}

func TestExecute_ExistingCustomerKeepsRegisteredName(t *testing.T) {
	f := newFixture()

	first := validRequest()
	_, err := f.useCase.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.StartTime = first.EndTime
	second.EndTime = first.EndTime.Add(time.Hour)
	second.CustomerName = ptr.Ptr("Somebody Else")

	resp, err := f.useCase.Execute(context.Background(), second)

	require.NoError(t, err)
	assert.Equal(t, "Emil Doktor", resp.CustomerName)
	assert.Len(t, f.customers.byPhone, 1)
}

func TestExecute_ConcurrentCreates(t *testing.T) {
	f := newFixture()

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.useCase.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrConflict):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, f.reservations.reservations, 1)
}
