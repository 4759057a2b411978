package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	gametypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/gametype"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	gameTypeRepo    GameTypeRepository
	customerRepo    CustomerRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	gameTypeRepo GameTypeRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		gameTypeRepo:    gameTypeRepo,
		customerRepo:    customerRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет частичное обновление: каждое переданное поле
// резолвится по натуральному ключу и заменяет текущую ссылку,
// непереданные поля не меняются.
//
// Интервал перепроверяется на порядок и пересечение (без собственной
// записи) только если переданы оба времени, они отличаются от текущих
// И запрос содержит имя корта. Последнее условие - задокументированный
// контракт: изменение только времени без имени корта пересечение
// не перепроверяет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Без global_id запись идентифицировать нечем
	if req.GlobalID == uuid.Nil {
		uc.logger.Warn("UpdateReservation: no reservation id specified")
		return nil, fmt.Errorf("%w: no reservation id specified", ErrReservationNotFound)
	}

	uc.logger.Info("UpdateReservation: id=%s", req.GlobalID)

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем текущее состояние
		existing, err := uc.reservationRepo.GetByGlobalID(txCtx, req.GlobalID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation %s not found", req.GlobalID)
				return fmt.Errorf("%w: %s", ErrReservationNotFound, req.GlobalID)
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Переданные и отличающиеся натуральные ключи резолвим и заменяем
		if changed(req.CourtName, existing.Court.Name) {
			court, err := uc.courtRepo.GetByName(txCtx, *req.CourtName)
			if err != nil {
				if errors.Is(err, courtRepo.ErrCourtNotFound) {
					uc.logger.Warn("UpdateReservation: court %q not found", *req.CourtName)
					return fmt.Errorf("%w: %q", ErrCourtNotFound, *req.CourtName)
				}
				return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
			}
			existing.Court = court
		}

		if changed(req.Phone, existing.Customer.Phone) {
			customer, err := uc.customerRepo.GetByPhone(txCtx, *req.Phone)
			if err != nil {
				if errors.Is(err, customerRepo.ErrCustomerNotFound) {
					uc.logger.Warn("UpdateReservation: customer with phone %q not found", *req.Phone)
					return fmt.Errorf("%w: phone %q", ErrCustomerNotFound, *req.Phone)
				}
				return fmt.Errorf("%w: failed to get customer by phone: %v", ErrInternal, err)
			}
			existing.Customer = customer
		}

		if changed(req.CustomerName, existing.Customer.Name) {
			customer, err := uc.customerRepo.GetByName(txCtx, *req.CustomerName)
			if err != nil {
				if errors.Is(err, customerRepo.ErrCustomerNotFound) {
					uc.logger.Warn("UpdateReservation: customer %q not found", *req.CustomerName)
					return fmt.Errorf("%w: name %q", ErrCustomerNotFound, *req.CustomerName)
				}
				return fmt.Errorf("%w: failed to get customer by name: %v", ErrInternal, err)
			}
			existing.Customer = customer
		}

		if changed(req.GameTypeName, existing.GameType.Name) {
			gameType, err := uc.gameTypeRepo.GetByName(txCtx, *req.GameTypeName)
			if err != nil {
				if errors.Is(err, gametypeRepo.ErrGameTypeNotFound) {
					uc.logger.Warn("UpdateReservation: game type %q not found", *req.GameTypeName)
					return fmt.Errorf("%w: %q", ErrGameTypeNotFound, *req.GameTypeName)
				}
				return fmt.Errorf("%w: failed to get game type: %v", ErrInternal, err)
			}
			existing.GameType = gameType
		}

		// 3. Перепроверка интервала: оба времени переданы, отличаются
		// от сохраненных и запрос содержит имя корта
		if present(req.CourtName) && req.StartTime != nil && req.EndTime != nil &&
			(!existing.StartTime.Equal(*req.StartTime) || !existing.EndTime.Equal(*req.EndTime)) {

			interval := domain.Interval{Start: *req.StartTime, End: *req.EndTime}
			if !interval.IsOrdered() {
				uc.logger.Warn("UpdateReservation: end time %s is not after start time %s",
					req.EndTime.Format(domain.DateTimeFormat), req.StartTime.Format(domain.DateTimeFormat))
				return ErrInvalidTimeRange
			}

			overlap, err := uc.reservationRepo.ExistsOverlap(txCtx, *req.CourtName,
				*req.StartTime, *req.EndTime, &existing.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
			}
			if overlap {
				uc.logger.Warn("UpdateReservation: interval conflicts with existing reservation on court %q", *req.CourtName)
				return ErrOverlap
			}

			existing.StartTime = *req.StartTime
			existing.EndTime = *req.EndTime
		}

		// 4. Сохраняем слитое состояние
		if err := uc.reservationRepo.Update(txCtx, existing); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: %s", ErrReservationNotFound, req.GlobalID)
			}
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = existing
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("UpdateReservation: serialization failure, returning conflict")
			return nil, ErrOverlap
		}
		return nil, err
	}

	// 5. Цена пересчитывается по текущим ссылкам
	price, err := domain.PriceOf(result)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to price reservation %s: %v", result.GlobalID, err)
		return nil, err
	}
	result.Price = price

	uc.logger.Info("UpdateReservation: successfully updated reservation %s, price=%.2f", result.GlobalID, price)
	return newResponse(result), nil
}

// present проверяет, что опциональное строковое поле передано и непустое
func present(p *string) bool {
	return p != nil && *p != ""
}

// changed проверяет, что поле передано, непустое и отличается от текущего значения
func changed(p *string, current string) bool {
	return present(p) && *p != current
}
