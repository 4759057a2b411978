package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	surfaceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/surface"
	"github.com/m04kA/SMC-ReservationService/internal/service/courts/models"
)

// Service сервис жизненного цикла кортов
type Service struct {
	courtRepo       CourtRepository
	surfaceRepo     SurfaceRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(
	courtRepo CourtRepository,
	surfaceRepo SurfaceRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		courtRepo:       courtRepo,
		surfaceRepo:     surfaceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает новый корт с существующим покрытием.
// global_id назначается сервисом, значение клиента игнорируется.
func (s *Service) Create(ctx context.Context, name, surfaceName string) (*models.CourtResponse, error) {
	s.logger.Info("CreateCourt: name=%q, surface=%q", name, surfaceName)

	if !domain.IsValidName(name) {
		s.logger.Warn("CreateCourt: invalid court name %q", name)
		return nil, fmt.Errorf("%w: court name must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if surfaceName == "" {
		s.logger.Warn("CreateCourt: surface name is missing")
		return nil, fmt.Errorf("%w: surface name is missing in the request", ErrInvalidInput)
	}

	var result *domain.Court

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Уникальность имени: явная проверка плюс unique constraint
		// как страховка от гонки
		if _, err := s.courtRepo.GetByName(txCtx, name); err == nil {
			s.logger.Warn("CreateCourt: court with name %q already exists", name)
			return fmt.Errorf("%w: %q", ErrCourtExists, name)
		} else if !errors.Is(err, courtRepo.ErrCourtNotFound) {
			return fmt.Errorf("%w: failed to check court name: %v", ErrInternal, err)
		}

		surface, err := s.surfaceRepo.GetByName(txCtx, surfaceName)
		if err != nil {
			if errors.Is(err, surfaceRepo.ErrSurfaceNotFound) {
				s.logger.Warn("CreateCourt: surface %q does not exist", surfaceName)
				return fmt.Errorf("%w: %q", ErrSurfaceNotFound, surfaceName)
			}
			return fmt.Errorf("%w: failed to get surface: %v", ErrInternal, err)
		}

		created, err := s.courtRepo.Create(txCtx, &domain.Court{
			Name:    name,
			Surface: surface,
		})
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtExists) {
				return fmt.Errorf("%w: %q", ErrCourtExists, name)
			}
			return fmt.Errorf("%w: failed to create court: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateCourt: successfully created court %q (%s)", result.Name, result.GlobalID)
	return models.FromDomainCourt(result), nil
}

// GetByIDOrName получает корт по внешнему идентификатору, либо по имени,
// если идентификатор не задан
func (s *Service) GetByIDOrName(ctx context.Context, globalID uuid.UUID, name string) (*models.CourtResponse, error) {
	c, err := s.findByIDOrName(ctx, globalID, name)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCourt(c), nil
}

// List получает все корты в порядке создания
func (s *Service) List(ctx context.Context) (*models.CourtListResponse, error) {
	list, err := s.courtRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCourts: fetched %d courts", len(list))
	return models.FromDomainCourtList(list), nil
}

// Update обновляет имя и/или покрытие корта. Непереданные поля не меняются.
func (s *Service) Update(ctx context.Context, globalID uuid.UUID, name, surfaceName *string) (*models.CourtResponse, error) {
	s.logger.Info("UpdateCourt: id=%s", globalID)

	if globalID == uuid.Nil {
		s.logger.Warn("UpdateCourt: no court id specified")
		return nil, fmt.Errorf("%w: no court id specified", ErrCourtNotFound)
	}

	var result *domain.Court

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.courtRepo.GetByGlobalID(txCtx, globalID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				s.logger.Warn("UpdateCourt: court %s not found", globalID)
				return fmt.Errorf("%w: %s", ErrCourtNotFound, globalID)
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		if name != nil && *name != "" && *name != existing.Name {
			if !domain.IsValidName(*name) {
				return fmt.Errorf("%w: court name must be non-empty and at most %d characters", ErrInvalidInput, domain.MaxNameLength)
			}
			if _, err := s.courtRepo.GetByName(txCtx, *name); err == nil {
				s.logger.Warn("UpdateCourt: court with name %q already exists", *name)
				return fmt.Errorf("%w: %q", ErrCourtExists, *name)
			} else if !errors.Is(err, courtRepo.ErrCourtNotFound) {
				return fmt.Errorf("%w: failed to check court name: %v", ErrInternal, err)
			}
			existing.Name = *name
		}

		if surfaceName != nil && *surfaceName != "" {
			surface, err := s.surfaceRepo.GetByName(txCtx, *surfaceName)
			if err != nil {
				if errors.Is(err, surfaceRepo.ErrSurfaceNotFound) {
					s.logger.Warn("UpdateCourt: surface %q does not exist", *surfaceName)
					return fmt.Errorf("%w: %q", ErrSurfaceNotFound, *surfaceName)
				}
				return fmt.Errorf("%w: failed to get surface: %v", ErrInternal, err)
			}
			existing.Surface = surface
		}

		if err := s.courtRepo.Update(txCtx, existing); err != nil {
			if errors.Is(err, courtRepo.ErrCourtExists) {
				return fmt.Errorf("%w: %q", ErrCourtExists, existing.Name)
			}
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return fmt.Errorf("%w: %s", ErrCourtNotFound, globalID)
			}
			return fmt.Errorf("%w: failed to update court: %v", ErrInternal, err)
		}

		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateCourt: successfully updated court %q (%s)", result.Name, result.GlobalID)
	return models.FromDomainCourt(result), nil
}

// Delete мягко удаляет корт по внешнему идентификатору или имени.
// Корт с не удаленными бронированиями удалить нельзя; проверка и
// удаление выполняются в SERIALIZABLE транзакции, чтобы конкурентное
// создание бронирования не прошло мимо защиты.
func (s *Service) Delete(ctx context.Context, globalID uuid.UUID, name string) error {
	s.logger.Info("DeleteCourt: id=%s, name=%q", globalID, name)

	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.findByIDOrName(txCtx, globalID, name)
		if err != nil {
			return err
		}

		count, err := s.reservationRepo.CountForCourt(txCtx, existing.Name)
		if err != nil {
			return fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("DeleteCourt: court %q is used in %d reservations", existing.Name, count)
			return fmt.Errorf("%w: %q", ErrCourtInUse, existing.Name)
		}

		if err := s.courtRepo.SoftDelete(txCtx, existing.ID); err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return fmt.Errorf("%w: %q", ErrCourtNotFound, existing.Name)
			}
			return fmt.Errorf("%w: failed to delete court: %v", ErrInternal, err)
		}

		s.logger.Info("DeleteCourt: successfully deleted court %q (%s)", existing.Name, existing.GlobalID)
		return nil
	})
}

func (s *Service) findByIDOrName(ctx context.Context, globalID uuid.UUID, name string) (*domain.Court, error) {
	var (
		c   *domain.Court
		err error
	)

	switch {
	case globalID != uuid.Nil:
		c, err = s.courtRepo.GetByGlobalID(ctx, globalID)
	case name != "":
		c, err = s.courtRepo.GetByName(ctx, name)
	default:
		s.logger.Warn("findByIDOrName: no court id or name specified")
		return nil, fmt.Errorf("%w: no court id or name specified", ErrCourtNotFound)
	}

	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("findByIDOrName: court %s %q not found", globalID, name)
			return nil, fmt.Errorf("%w: %s %q", ErrCourtNotFound, globalID, name)
		}
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	return c, nil
}
