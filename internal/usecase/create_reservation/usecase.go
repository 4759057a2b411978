package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	gametypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/gametype"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка пересечения, resolve-or-create клиента и вставка выполняются
// в одной SERIALIZABLE транзакции: из двух конкурентных пересекающихся
// бронирований на один корт фиксируется максимум одно, второе получает
// ошибку вида Conflict без повторных попыток.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: court=%s, gameType=%s, phone=%s, interval=[%s, %s)",
		req.CourtName, req.GameTypeName, req.Phone,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Резолвим корт по имени
		court, err := uc.courtRepo.GetByName(txCtx, req.CourtName)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateReservation: court %q not found", req.CourtName)
				return fmt.Errorf("%w: %q", ErrCourtNotFound, req.CourtName)
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		// 3. Резолвим тип игры по имени
		gameType, err := uc.gameTypeRepo.GetByName(txCtx, req.GameTypeName)
		if err != nil {
			if errors.Is(err, gametypeRepo.ErrGameTypeNotFound) {
				uc.logger.Warn("CreateReservation: game type %q not found", req.GameTypeName)
				return fmt.Errorf("%w: %q", ErrGameTypeNotFound, req.GameTypeName)
			}
			return fmt.Errorf("%w: failed to get game type: %v", ErrInternal, err)
		}

		// 4. Проверяем порядок времени
		interval := domain.Interval{Start: req.StartTime, End: req.EndTime}
		if !interval.IsOrdered() {
			uc.logger.Warn("CreateReservation: end time %s is not after start time %s",
				req.EndTime.Format(domain.DateTimeFormat), req.StartTime.Format(domain.DateTimeFormat))
			return ErrInvalidTimeRange
		}

		// 5. Проверяем пересечение с существующими бронированиями
		overlap, err := uc.reservationRepo.ExistsOverlap(txCtx, req.CourtName, req.StartTime, req.EndTime, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlap {
			uc.logger.Warn("CreateReservation: interval conflicts with existing reservation on court %q", req.CourtName)
			return ErrOverlap
		}

		// 6. Резолвим клиента по телефону, создаем при отсутствии.
		// Для существующего клиента подсказка имени игнорируется:
		// первое зарегистрированное имя сохраняется.
		customer, err := uc.customerRepo.FindByPhone(txCtx, req.Phone)
		if err != nil {
			return fmt.Errorf("%w: failed to find customer: %v", ErrInternal, err)
		}
		if customer == nil {
			customer, err = uc.customerRepo.Create(txCtx, &domain.Customer{
				Name:  resolveCustomerName(req.CustomerName),
				Phone: req.Phone,
			})
			if err != nil {
				if errors.Is(err, customerRepo.ErrPhoneExists) {
					return ErrPhoneConflict
				}
				return fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
			}
			uc.logger.Info("CreateReservation: created customer %s for phone %s", customer.Name, customer.Phone)
		}

		// 7. Сохраняем бронирование со свежим global_id
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Court:     court,
			GameType:  gameType,
			Customer:  customer,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Вторая из конкурентных SERIALIZABLE транзакций откатывается
		// с ошибкой сериализации - для вызывающего это тот же Conflict
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: serialization failure, returning conflict")
			return nil, ErrOverlap
		}
		return nil, err
	}

	// 8. Цена вычисляется на чтении, никогда не сохраняется
	price, err := domain.PriceOf(result)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to price reservation %s: %v", result.GlobalID, err)
		return nil, err
	}
	result.Price = price

	uc.logger.Info("CreateReservation: successfully created reservation %s, price=%.2f", result.GlobalID, price)
	return newResponse(result), nil
}
