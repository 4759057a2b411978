package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	gametypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/gametype"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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
	customers []*domain.Customer
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) GetByName(_ context.Context, name string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*domain.Reservation
	updated      *domain.Reservation
}

func (r *fakeReservationRepo) GetByGlobalID(_ context.Context, globalID uuid.UUID) (*domain.Reservation, error) {
	res, ok := r.reservations[globalID]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	// Копия, чтобы правки use case не меняли хранимое состояние до Update
	clone := *res
	return &clone, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if _, ok := r.reservations[res.GlobalID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	clone := *res
	r.reservations[res.GlobalID] = &clone
	r.updated = &clone
	return nil
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
	existing     *domain.Reservation
}

func newFixture() *fixture {
	dirt := &domain.Surface{ID: 1, Name: "Dirt", PricePerMinute: 100}
	gravel := &domain.Surface{ID: 2, Name: "Gravel", PricePerMinute: 150}

	court1 := &domain.Court{ID: 1, GlobalID: uuid.New(), Name: "Court 1", Surface: dirt}
	court3 := &domain.Court{ID: 3, GlobalID: uuid.New(), Name: "Court 3", Surface: gravel}

	singles := &domain.GameType{ID: 1, Name: "Singles", PriceMultiplier: 1.0}
	doubles := &domain.GameType{ID: 2, Name: "Doubles", PriceMultiplier: 1.5}

	emil := &domain.Customer{ID: 1, GlobalID: uuid.New(), Name: "Emil Doktor", Phone: "777123456"}
	pavel := &domain.Customer{ID: 2, GlobalID: uuid.New(), Name: "Pavel Prochazka", Phone: "777321987"}

	start := time.Date(2027, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.Reservation{
		ID:        1,
		GlobalID:  uuid.New(),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Court:     court1,
		GameType:  singles,
		Customer:  emil,
	}

	reservations := &fakeReservationRepo{
		reservations: map[uuid.UUID]*domain.Reservation{existing.GlobalID: existing},
	}
	courts := &fakeCourtRepo{courts: map[string]*domain.Court{
		"Court 1": court1,
		"Court 3": court3,
	}}
	gameTypes := &fakeGameTypeRepo{gameTypes: map[string]*domain.GameType{
		"Singles": singles,
		"Doubles": doubles,
	}}
	customers := &fakeCustomerRepo{customers: []*domain.Customer{emil, pavel}}

	return &fixture{
		useCase:      NewUseCase(reservations, courts, gameTypes, customers, fakeTxManager{}, nopLogger{}),
		reservations: reservations,
		existing:     existing,
	}
}

func TestExecute_MissingGlobalID(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_UnknownReservation(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{GlobalID: uuid.New()})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NoFieldsKeepsState(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{GlobalID: f.existing.GlobalID})

	require.NoError(t, err)
	assert.Equal(t, "Court 1", resp.CourtName)
	assert.Equal(t, "Singles", resp.GameTypeName)
	assert.Equal(t, "777123456", resp.Phone)
	assert.Equal(t, f.existing.StartTime, resp.StartTime)
}

func TestExecute_ChangeGameTypeRepricesReservation(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:     f.existing.GlobalID,
		GameTypeName: ptr.Ptr("Doubles"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Doubles", resp.GameTypeName)
	// 100 за минуту, множитель 1.5, 120 минут
	assert.Equal(t, float64(18000), resp.Price)
}

func TestExecute_ChangeCourtRepricesBySurface(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		CourtName: ptr.Ptr("Court 3"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Court 3", resp.CourtName)
	// Gravel: 150 за минуту, множитель 1.0, 120 минут
	assert.Equal(t, float64(18000), resp.Price)
}

func TestExecute_ReassignCustomerByPhone(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID: f.existing.GlobalID,
		Phone:    ptr.Ptr("777321987"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Pavel Prochazka", resp.CustomerName)
}

func TestExecute_UnknownPhone(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID: f.existing.GlobalID,
		Phone:    ptr.Ptr("999999999"),
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.ErrorIs(t, err, domain.ErrBadArgument)
}

func TestExecute_UnknownCourt(t *testing.T) {
	f := newFixture()

	_, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		CourtName: ptr.Ptr("Court 99"),
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_TimeChangeWithCourtRevalidates(t *testing.T) {
	f := newFixture()

	// Занимаем соседний интервал другим бронированием
	blocker := &domain.Reservation{
		ID:        2,
		GlobalID:  uuid.New(),
		StartTime: f.existing.EndTime,
		EndTime:   f.existing.EndTime.Add(2 * time.Hour),
		Court:     f.existing.Court,
		GameType:  f.existing.GameType,
		Customer:  f.existing.Customer,
	}
	f.reservations.reservations[blocker.GlobalID] = blocker

	newStart := f.existing.EndTime.Add(time.Hour)
	newEnd := newStart.Add(2 * time.Hour)

	_, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		CourtName: ptr.Ptr("Court 1"),
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	assert.ErrorIs(t, err, ErrOverlap)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestExecute_TimeChangeExcludesOwnRecord(t *testing.T) {
	f := newFixture()

	// Сдвиг внутри собственного интервала не конфликтует сам с собой
	newStart := f.existing.StartTime.Add(30 * time.Minute)
	newEnd := f.existing.EndTime.Add(30 * time.Minute)

	resp, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		CourtName: ptr.Ptr("Court 1"),
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, newStart, resp.StartTime)
	assert.Equal(t, newEnd, resp.EndTime)
}

func TestExecute_TimeChangeWithoutCourtIsNotRevalidated(t *testing.T) {
	f := newFixture()

	// Занимаем целевой интервал другим бронированием
	blocker := &domain.Reservation{
		ID:        2,
		GlobalID:  uuid.New(),
		StartTime: f.existing.EndTime,
		EndTime:   f.existing.EndTime.Add(2 * time.Hour),
		Court:     f.existing.Court,
		GameType:  f.existing.GameType,
		Customer:  f.existing.Customer,
	}
	f.reservations.reservations[blocker.GlobalID] = blocker

	newStart := f.existing.EndTime
	newEnd := newStart.Add(time.Hour)

	// Без имени корта в запросе время не перепроверяется и не меняется
	resp, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, f.existing.StartTime, resp.StartTime)
	assert.Equal(t, f.existing.EndTime, resp.EndTime)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	f := newFixture()

	newStart := f.existing.StartTime.Add(time.Hour)
	newEnd := newStart.Add(-time.Minute)

	_, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		CourtName: ptr.Ptr("Court 1"),
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_SameTimesSkipRevalidation(t *testing.T) {
	f := newFixture()

	// Переданные времена совпадают с сохраненными, пересечение не проверяется
	start := f.existing.StartTime
	end := f.existing.EndTime

	resp, err := f.useCase.Execute(context.Background(), &Request{
		GlobalID:  f.existing.GlobalID,
		CourtName: ptr.Ptr("Court 1"),
		StartTime: &start,
		EndTime:   &end,
	})

	require.NoError(t, err)
	assert.Equal(t, start, resp.StartTime)
}
