package reservations

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
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
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

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	if c, ok := r.customers[phone]; ok {
		return c, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	deletedIDs   []int64
}

func (r *fakeReservationRepo) GetByGlobalID(_ context.Context, globalID uuid.UUID) (*domain.Reservation, error) {
	for _, res := range r.reservations {
		if res.GlobalID == globalID {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (r *fakeReservationRepo) ListAll(_ context.Context) ([]*domain.Reservation, error) {
	return r.reservations, nil
}

func (r *fakeReservationRepo) ListForCourt(_ context.Context, courtName string) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.Court.Name == courtName {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListForPhone(_ context.Context, phone string, fromTime *time.Time) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.Customer.Phone != phone {
			continue
		}
		if fromTime != nil && !res.StartTime.After(*fromTime) {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeReservationRepo) SoftDelete(_ context.Context, id int64) error {
	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			r.deletedIDs = append(r.deletedIDs, id)
			return nil
		}
	}
	return reservationRepo.ErrReservationNotFound
}

type fixture struct {
	service      *Service
	reservations *fakeReservationRepo
	dirt         *domain.Surface
	existing     *domain.Reservation
	now          time.Time
}

func newFixture() *fixture {
	dirt := &domain.Surface{ID: 1, Name: "Dirt", PricePerMinute: 100}
	court1 := &domain.Court{ID: 1, GlobalID: uuid.New(), Name: "Court 1", Surface: dirt}
	singles := &domain.GameType{ID: 1, Name: "Singles", PriceMultiplier: 1.0}
	emil := &domain.Customer{ID: 1, GlobalID: uuid.New(), Name: "Emil Doktor", Phone: "777123456"}

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	existing := &domain.Reservation{
		ID:        1,
		GlobalID:  uuid.New(),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Court:     court1,
		GameType:  singles,
		Customer:  emil,
	}

	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{existing}}
	courts := &fakeCourtRepo{courts: map[string]*domain.Court{"Court 1": court1}}
	customers := &fakeCustomerRepo{customers: map[string]*domain.Customer{"777123456": emil}}

	svc := NewService(reservations, courts, customers, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}

	return &fixture{
		service:      svc,
		reservations: reservations,
		dirt:         dirt,
		existing:     existing,
		now:          now,
	}
}

func TestGetByGlobalID(t *testing.T) {
	f := newFixture()

	resp, err := f.service.GetByGlobalID(context.Background(), f.existing.GlobalID)

	require.NoError(t, err)
	assert.Equal(t, f.existing.GlobalID, resp.GlobalID)
	assert.Equal(t, float64(12000), resp.Price)
}

func TestGetByGlobalID_NilID(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetByGlobalID(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByGlobalID_Unknown(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetByGlobalID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByGlobalID_PriceFollowsRateChange(t *testing.T) {
	f := newFixture()

	before, err := f.service.GetByGlobalID(context.Background(), f.existing.GlobalID)
	require.NoError(t, err)

	// Цена не фиксируется при создании: смена тарифа покрытия
	// меняет цену уже существующего бронирования
	f.dirt.PricePerMinute = 200

	after, err := f.service.GetByGlobalID(context.Background(), f.existing.GlobalID)
	require.NoError(t, err)

	assert.Equal(t, float64(12000), before.Price)
	assert.Equal(t, float64(24000), after.Price)
}

func TestListForCourt_UnknownCourt(t *testing.T) {
	f := newFixture()

	_, err := f.service.ListForCourt(context.Background(), "Court 99")

	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForCourt_KnownCourtWithoutReservations(t *testing.T) {
	f := newFixture()
	f.reservations.reservations = nil

	resp, err := f.service.ListForCourt(context.Background(), "Court 1")

	require.NoError(t, err)
	assert.Empty(t, resp.Reservations)
}

func TestListForPhone_UnknownPhone(t *testing.T) {
	f := newFixture()

	_, err := f.service.ListForPhone(context.Background(), "999999999", false)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestListForPhone_OnlyFuture(t *testing.T) {
	f := newFixture()

	// Прошедшее бронирование того же клиента
	past := &domain.Reservation{
		ID:        2,
		GlobalID:  uuid.New(),
		StartTime: f.now.Add(-48 * time.Hour),
		EndTime:   f.now.Add(-46 * time.Hour),
		Court:     f.existing.Court,
		GameType:  f.existing.GameType,
		Customer:  f.existing.Customer,
	}
	f.reservations.reservations = append(f.reservations.reservations, past)

	all, err := f.service.ListForPhone(context.Background(), "777123456", false)
	require.NoError(t, err)
	assert.Len(t, all.Reservations, 2)

	future, err := f.service.ListForPhone(context.Background(), "777123456", true)
	require.NoError(t, err)
	require.Len(t, future.Reservations, 1)
	assert.Equal(t, f.existing.GlobalID, future.Reservations[0].GlobalID)
}

func TestDelete(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), f.existing.GlobalID)

	require.NoError(t, err)
	assert.Equal(t, []int64{f.existing.ID}, f.reservations.deletedIDs)
}

func TestDelete_Unknown(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
