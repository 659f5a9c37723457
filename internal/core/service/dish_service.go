package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dishdash/dish-service/internal/core/domain"
	"github.com/dishdash/dish-service/internal/core/ports"
)

type DishService struct {
	repo   ports.DishRepository
	logger zerolog.Logger
}

func NewDishService(repo ports.DishRepository, logger zerolog.Logger) *DishService {
	return &DishService{repo: repo, logger: logger}
}

func (s *DishService) Create(ctx context.Context, input ports.DishInput) (*domain.Dish, error) {
	dish, err := s.repo.Create(ctx, input.Name, input.Description, input.Price)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create dish")
		return nil, err
	}

	s.logger.Info().Int64("dish_id", dish.ID).Str("name", dish.Name).Msg("dish created")
	return dish, nil
}

func (s *DishService) Get(ctx context.Context, id int64) (*domain.Dish, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DishService) List(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces all mutable fields of the dish in a single write. It is a
// full replacement, never a merge with the stored record.
func (s *DishService) Update(ctx context.Context, id int64, input ports.DishInput) (*domain.Dish, error) {
	dish, err := s.repo.Replace(ctx, id, input.Name, input.Description, input.Price)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("dish_id", id).Msg("dish updated")
	return dish, nil
}

func (s *DishService) Delete(ctx context.Context, id int64) (*domain.Dish, error) {
	dish, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("dish_id", id).Msg("dish deleted")
	return dish, nil
}
