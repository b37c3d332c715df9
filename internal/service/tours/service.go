package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
)

// Service сервис каталога туров.
// Каждый тур обогащается предстоящими выездами; прошедшие выезды
// отфильтровываются, свободные места выводятся на каждый запрос.
type Service struct {
	tourRepo     TourRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	tourRepo TourRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		tourRepo:     tourRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает туры каталога. Направление и ценовой диапазон
// фильтруются в хранилище, ключевое слово и длительность — здесь.
func (s *Service) List(ctx context.Context, req *models.ListToursRequest) (*models.TourListResponse, error) {
	s.logger.Info("List: fetching tours, destination=%v, search=%v", req.Destination, req.Search)

	tours, err := s.tourRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.TourResponse, 0, len(tours))
	for _, tour := range tours {
		if req.Search != nil && !tour.MatchesKeyword(*req.Search) {
			continue
		}
		if req.MinDuration != nil && tour.DurationDays < *req.MinDuration {
			continue
		}
		if req.MaxDuration != nil && tour.DurationDays > *req.MaxDuration {
			continue
		}

		enriched, err := s.enrichTour(ctx, tour)
		if err != nil {
			return nil, err
		}
		result = append(result, enriched)
	}

	s.logger.Info("List: successfully fetched %d tours", len(result))
	return &models.TourListResponse{Tours: result}, nil
}

// GetByID получает тур по ID вместе с предстоящими выездами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TourResponse, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("GetByID: tour id=%d not found", id)
			return nil, ErrTourNotFound
		}
		s.logger.Error("GetByID: repository error for tour id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return s.enrichTour(ctx, tour)
}

// Create добавляет тур в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateTourRequest) (*models.TourResponse, error) {
	s.logger.Info("Create: creating tour name=%q destination=%q", req.Name, req.Destination)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	tour := &domain.Tour{
		Name:         req.Name,
		Slug:         req.Slug,
		Destination:  req.Destination,
		Region:       req.Region,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		DurationDays: req.DurationDays,
		Thumbnail:    req.Thumbnail,
		Images:       req.Images,
		Highlights:   req.Highlights,
		Itinerary:    req.Itinerary,
		Policies:     req.Policies,
	}

	created, err := s.tourRepo.Create(ctx, tour)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created tour id=%d", created.ID)
	return models.FromDomainTour(created, nil), nil
}

// Update обновляет поля тура; изменения цен не затрагивают суммы
// уже созданных броней (суммы зафиксированы при создании)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTourRequest) (*models.TourResponse, error) {
	s.logger.Info("Update: updating tour id=%d", id)

	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if req.SalePrice != nil && *req.SalePrice < 0 {
		return nil, fmt.Errorf("%w: salePrice must be non-negative", ErrInvalidInput)
	}
	if req.DurationDays != nil && *req.DurationDays < domain.MinDuration {
		return nil, fmt.Errorf("%w: durationDays must be positive", ErrInvalidInput)
	}

	updated, err := s.tourRepo.Update(ctx, id, tourRepo.UpdateParams{
		Name:         req.Name,
		Slug:         req.Slug,
		Destination:  req.Destination,
		Region:       req.Region,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		DurationDays: req.DurationDays,
		Thumbnail:    req.Thumbnail,
		Images:       req.Images,
		Highlights:   req.Highlights,
		Itinerary:    req.Itinerary,
		Policies:     req.Policies,
	})
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Update: tour id=%d not found", id)
			return nil, ErrTourNotFound
		}
		s.logger.Error("Update: repository error for tour id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.enrichTour(ctx, updated)
}

// Delete удаляет тур из каталога
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting tour id=%d", id)

	if err := s.tourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Delete: tour id=%d not found", id)
			return ErrTourNotFound
		}
		s.logger.Error("Delete: repository error for tour id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted tour id=%d", id)
	return nil
}

// enrichTour собирает предстоящие выезды тура с производными местами
func (s *Service) enrichTour(ctx context.Context, tour *domain.Tour) (*models.TourResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx, &tour.ID)
	if err != nil {
		s.logger.Error("enrichTour: failed to list schedules for tour id=%d: %v", tour.ID, err)
		return nil, fmt.Errorf("%w: enrichTour - failed to list schedules: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	enriched := make([]*models.EnrichedSchedule, 0, len(schedules))

	for _, schedule := range schedules {
		// Прошедшие выезды в каталоге не показываются
		if schedule.IsPast(now) {
			continue
		}

		confirmed, err := s.bookingRepo.SumConfirmedTravelers(ctx, schedule.ID)
		if err != nil {
			s.logger.Error("enrichTour: failed to sum confirmed travelers for schedule id=%d: %v", schedule.ID, err)
			return nil, fmt.Errorf("%w: enrichTour - failed to derive seats: %v", ErrInternal, err)
		}

		enriched = append(enriched, &models.EnrichedSchedule{
			ID:             schedule.ID,
			TourID:         schedule.TourID,
			Date:           schedule.Date,
			SeatsTotal:     schedule.SeatsTotal,
			SeatsAvailable: schedule.AvailableSeats(confirmed),
			CreatedAt:      schedule.CreatedAt,
			UpdatedAt:      schedule.UpdatedAt,
		})
	}

	return models.FromDomainTour(tour, enriched), nil
}

func validateCreateRequest(req *models.CreateTourRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}
	if req.Region == "" {
		return fmt.Errorf("%w: region is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if req.SalePrice != nil && *req.SalePrice < 0 {
		return fmt.Errorf("%w: salePrice must be non-negative", ErrInvalidInput)
	}
	if req.DurationDays < domain.MinDuration {
		return fmt.Errorf("%w: durationDays must be positive", ErrInvalidInput)
	}
	return nil
}
