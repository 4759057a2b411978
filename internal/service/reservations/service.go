package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис чтения и удаления бронирований.
// Цена не хранится: каждая выдача пересчитывает её по текущему тарифу
// покрытия, поэтому смена тарифа сразу видна в существующих бронированиях.
type Service struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	customerRepo    CustomerRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		customerRepo:    customerRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByGlobalID получает бронирование по внешнему идентификатору
func (s *Service) GetByGlobalID(ctx context.Context, globalID uuid.UUID) (*models.ReservationResponse, error) {
	if globalID == uuid.Nil {
		s.logger.Warn("GetByGlobalID: no reservation id specified")
		return nil, fmt.Errorf("%w: no reservation id specified", ErrReservationNotFound)
	}

	res, err := s.reservationRepo.GetByGlobalID(ctx, globalID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByGlobalID: reservation %s not found", globalID)
			return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, globalID)
		}
		s.logger.Error("GetByGlobalID: repository error for reservation %s: %v", globalID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := s.price(res); err != nil {
		return nil, err
	}

	return models.FromDomainReservation(res), nil
}

// ListAll получает все бронирования в порядке создания
func (s *Service) ListAll(ctx context.Context) (*models.ReservationListResponse, error) {
	list, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := s.priceAll(list); err != nil {
		return nil, err
	}

	s.logger.Info("ListAll: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// ListForCourt получает бронирования корта в порядке создания записей.
// Неизвестное имя корта - ошибка NotFound; известный корт без
// бронирований - пустой список.
func (s *Service) ListForCourt(ctx context.Context, courtName string) (*models.ReservationListResponse, error) {
	if _, err := s.courtRepo.GetByName(ctx, courtName); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("ListForCourt: court %q not found", courtName)
			return nil, fmt.Errorf("%w: %q", ErrCourtNotFound, courtName)
		}
		s.logger.Error("ListForCourt: failed to get court %q: %v", courtName, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	list, err := s.reservationRepo.ListForCourt(ctx, courtName)
	if err != nil {
		s.logger.Error("ListForCourt: repository error for court %q: %v", courtName, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := s.priceAll(list); err != nil {
		return nil, err
	}

	s.logger.Info("ListForCourt: fetched %d reservations for court %q", len(list), courtName)
	return models.FromDomainReservationList(list), nil
}

// ListForPhone получает бронирования клиента в порядке времени начала.
// При onlyFuture возвращаются только бронирования, начинающиеся позже
// текущего момента. Неизвестный телефон - ошибка NotFound.
func (s *Service) ListForPhone(ctx context.Context, phone string, onlyFuture bool) (*models.ReservationListResponse, error) {
	if _, err := s.customerRepo.GetByPhone(ctx, phone); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("ListForPhone: customer with phone %q not found", phone)
			return nil, fmt.Errorf("%w: phone %q", ErrCustomerNotFound, phone)
		}
		s.logger.Error("ListForPhone: failed to get customer %q: %v", phone, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	var fromTime *time.Time
	if onlyFuture {
		now := s.timeProvider.Now()
		fromTime = &now
	}

	list, err := s.reservationRepo.ListForPhone(ctx, phone, fromTime)
	if err != nil {
		s.logger.Error("ListForPhone: repository error for phone %q: %v", phone, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := s.priceAll(list); err != nil {
		return nil, err
	}

	s.logger.Info("ListForPhone: fetched %d reservations for phone %q (onlyFuture=%v)", len(list), phone, onlyFuture)
	return models.FromDomainReservationList(list), nil
}

// Delete мягко удаляет бронирование по внешнему идентификатору
func (s *Service) Delete(ctx context.Context, globalID uuid.UUID) error {
	if globalID == uuid.Nil {
		s.logger.Warn("Delete: no reservation id specified")
		return fmt.Errorf("%w: no reservation id specified", ErrReservationNotFound)
	}

	res, err := s.reservationRepo.GetByGlobalID(ctx, globalID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation %s not found", globalID)
			return fmt.Errorf("%w: %s", ErrReservationNotFound, globalID)
		}
		s.logger.Error("Delete: repository error for reservation %s: %v", globalID, err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.SoftDelete(ctx, res.ID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return fmt.Errorf("%w: %s", ErrReservationNotFound, globalID)
		}
		s.logger.Error("Delete: failed to delete reservation %s: %v", globalID, err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation %s", globalID)
	return nil
}

func (s *Service) price(res *domain.Reservation) error {
	price, err := domain.PriceOf(res)
	if err != nil {
		// Нарушение инварианта данных, не ошибка вызывающего
		s.logger.Error("price: cannot compute price for reservation %s: %v", res.GlobalID, err)
		return err
	}
	res.Price = price
	return nil
}

func (s *Service) priceAll(list []*domain.Reservation) error {
	for _, res := range list {
		if err := s.price(res); err != nil {
			return err
		}
	}
	return nil
}
