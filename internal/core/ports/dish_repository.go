package ports

import (
	"context"

	"github.com/dishdash/dish-service/internal/core/domain"
)

// DishRepository defines persistence operations for dishes.
type DishRepository interface {
	Create(ctx context.Context, name, description string, price float64) (*domain.Dish, error)
	FindByID(ctx context.Context, id int64) (*domain.Dish, error)
	FindAll(ctx context.Context) ([]*domain.Dish, error)
	// Replace overwrites name, description and price of the dish in one
	// write and returns the updated record.
	Replace(ctx context.Context, id int64, name, description string, price float64) (*domain.Dish, error)
	// Delete removes the dish and returns the deleted record.
	Delete(ctx context.Context, id int64) (*domain.Dish, error)
}
