package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dishdash/dish-service/internal/core/domain"
)

const ratingsCollection = "ratings"

type RatingRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{db: db, coll: db.Collection(ratingsCollection)}
}

// Create appends a rating row. The dish id is not validated against the
// dishes collection; dangling references are accepted.
func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, ratingsCollection)
	if err != nil {
		return nil, err
	}

	created := *rating
	created.ID = id
	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	return &created, nil
}
