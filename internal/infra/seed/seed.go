// Package seed заполняет базу демонстрационными данными при старте.
// Включается флагом seed_data в конфигурации и безопасен при повторном
// запуске: конфликты с уже существующими записями игнорируются.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	surfaceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/surface"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type Seeder struct {
	surfaceRepo   SurfaceRepository
	gameTypeRepo  GameTypeRepository
	customerRepo  CustomerRepository
	courtService  CourtService
	createUseCase CreateReservationUseCase
	logger        Logger
}

func NewSeeder(
	surfaceRepo SurfaceRepository,
	gameTypeRepo GameTypeRepository,
	customerRepo CustomerRepository,
	courtService CourtService,
	createUseCase CreateReservationUseCase,
	logger Logger,
) *Seeder {
	return &Seeder{
		surfaceRepo:   surfaceRepo,
		gameTypeRepo:  gameTypeRepo,
		customerRepo:  customerRepo,
		courtService:  courtService,
		createUseCase: createUseCase,
		logger:        logger,
	}
}

// Run заполняет справочники и создает демонстрационные корты,
// клиентов и бронирования.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedSurfaces(ctx); err != nil {
		return fmt.Errorf("seed: surfaces: %w", err)
	}
	if err := s.seedGameTypes(ctx); err != nil {
		return fmt.Errorf("seed: game types: %w", err)
	}
	if err := s.seedCourts(ctx); err != nil {
		return fmt.Errorf("seed: courts: %w", err)
	}
	if err := s.seedCustomers(ctx); err != nil {
		return fmt.Errorf("seed: customers: %w", err)
	}
	if err := s.seedReservations(ctx); err != nil {
		return fmt.Errorf("seed: reservations: %w", err)
	}

	s.logger.Info("Seed - demo data loaded")
	return nil
}

func (s *Seeder) seedSurfaces(ctx context.Context) error {
	surfaces := []struct {
		name string
		rate int64
	}{
		{"Dirt", 100},
		{"Gravel", 150},
	}

	for _, sf := range surfaces {
		_, err := s.surfaceRepo.Create(ctx, &domain.Surface{Name: sf.name, PricePerMinute: sf.rate})
		if err != nil {
			if errors.Is(err, surfaceRepo.ErrSurfaceExists) {
				s.logger.Info("Seed - surface %q already exists, skipping", sf.name)
				continue
			}
			return err
		}
	}
	return nil
}

func (s *Seeder) seedGameTypes(ctx context.Context) error {
	gameTypes := []struct {
		name       string
		multiplier float64
	}{
		{"Singles", 1.0},
		{"Doubles", 1.5},
	}

	for _, gt := range gameTypes {
		if err := s.gameTypeRepo.Seed(ctx, gt.name, gt.multiplier); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCourts(ctx context.Context) error {
	courts := []struct {
		name    string
		surface string
	}{
		{"Court 1", "Dirt"},
		{"Court 2", "Dirt"},
		{"Court 3", "Gravel"},
		{"Court 4", "Gravel"},
	}

	for _, c := range courts {
		_, err := s.courtService.Create(ctx, c.name, c.surface)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				s.logger.Info("Seed - court %q already exists, skipping", c.name)
				continue
			}
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	customers := []struct {
		name  string
		phone string
	}{
		{"Emil Doktor", "777123456"},
		{"Pavel Prochazka", "777321987"},
	}

	for _, c := range customers {
		_, err := s.customerRepo.Create(ctx, &domain.Customer{Name: c.name, Phone: c.phone})
		if err != nil {
			if errors.Is(err, customerRepo.ErrPhoneExists) {
				s.logger.Info("Seed - customer %q already exists, skipping", c.phone)
				continue
			}
			return err
		}
	}
	return nil
}

func (s *Seeder) seedReservations(ctx context.Context) error {
	nextYear := time.Now().Year() + 1

	reservations := []*createReservation.Request{
		{
			CourtName:    "Court 1",
			GameTypeName: "Singles",
			StartTime:    time.Date(nextYear, time.May, 1, 0, 0, 0, 0, time.UTC),
			EndTime:      time.Date(nextYear, time.May, 2, 0, 0, 0, 0, time.UTC),
			Phone:        "777123456",
			CustomerName: ptr.Ptr("Emil Doktor"),
		},
		{
			CourtName:    "Court 1",
			GameTypeName: "Doubles",
			StartTime:    time.Date(nextYear, time.June, 10, 0, 0, 0, 0, time.UTC),
			EndTime:      time.Date(nextYear, time.June, 15, 0, 0, 0, 0, time.UTC),
			Phone:        "777123456",
			CustomerName: ptr.Ptr("Emil Doktor"),
		},
		{
			CourtName:    "Court 1",
			GameTypeName: "Singles",
			StartTime:    time.Date(nextYear, time.July, 12, 0, 0, 0, 0, time.UTC),
			EndTime:      time.Date(nextYear, time.July, 14, 0, 0, 0, 0, time.UTC),
			Phone:        "777321987",
			CustomerName: ptr.Ptr("Pavel Prochazka"),
		},
	}

	for _, req := range reservations {
		if _, err := s.createUseCase.Execute(ctx, req); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				s.logger.Info("Seed - reservation for %q at %s already exists, skipping",
					req.CourtName, req.StartTime.Format(domain.DateTimeFormat))
				continue
			}
			return err
		}
	}
	return nil
}
