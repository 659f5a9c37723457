package ports

import (
	"context"

	"github.com/dishdash/dish-service/internal/core/domain"
)

// DishInput carries the mutable fields of a dish for create and update.
type DishInput struct {
	Name        string
	Description string
	Price       float64
}

type DishService interface {
	Create(ctx context.Context, input DishInput) (*domain.Dish, error)
	Get(ctx context.Context, id int64) (*domain.Dish, error)
	List(ctx context.Context) ([]*domain.Dish, error)
	Update(ctx context.Context, id int64, input DishInput) (*domain.Dish, error)
	Delete(ctx context.Context, id int64) (*domain.Dish, error)
}
