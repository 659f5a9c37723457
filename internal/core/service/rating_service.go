package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dishdash/dish-service/internal/core/domain"
	"github.com/dishdash/dish-service/internal/core/ports"
)

// RatingService records rating submissions. Inserts are append-only and do
// not check that the dish exists; the ratings collection accepts dangling
// dish ids just like the dishes and ratings tables are independent rows.
type RatingService struct {
	repo   ports.RatingRepository
	logger zerolog.Logger
}

func NewRatingService(repo ports.RatingRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{repo: repo, logger: logger}
}

func (s *RatingService) Rate(ctx context.Context, userID, dishID int64, value float64) (*domain.Rating, error) {
	rating := &domain.Rating{
		UserID:    userID,
		DishID:    dishID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, rating)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Int64("dish_id", dishID).Msg("failed to record rating")
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("dish_id", dishID).Float64("value", value).Msg("dish rated")
	return created, nil
}
