package ports

import (
	"context"

	"github.com/dishdash/dish-service/internal/core/domain"
)

// RatingRepository appends rating rows. Ratings are never read back through
// the API, so no query methods are exposed.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
}
