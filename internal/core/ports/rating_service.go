package ports

import (
	"context"

	"github.com/dishdash/dish-service/internal/core/domain"
)

type RatingService interface {
	// Rate records userID's rating for a dish. The user id always comes from
	// the authenticated request context, never from the request body.
	Rate(ctx context.Context, userID, dishID int64, value float64) (*domain.Rating, error)
}
