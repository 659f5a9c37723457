package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishdash/dish-service/internal/core/domain"
)

const dishesCollection = "dishes"

type DishRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewDishRepository(db *mongo.Database) *DishRepository {
	return &DishRepository{db: db, coll: db.Collection(dishesCollection)}
}

func (r *DishRepository) Create(ctx context.Context, name, description string, price float64) (*domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, dishesCollection)
	if err != nil {
		return nil, err
	}

	dish := &domain.Dish{ID: id, Name: name, Description: description, Price: price}
	if _, err := r.coll.InsertOne(ctx, dish); err != nil {
		return nil, fmt.Errorf("insert dish: %w", err)
	}
	return dish, nil
}

func (r *DishRepository) FindByID(ctx context.Context, id int64) (*domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var dish domain.Dish
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&dish); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("find dish: %w", err)
	}
	return &dish, nil
}

func (r *DishRepository) FindAll(ctx context.Context) ([]*domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer cur.Close(ctx)

	dishes := make([]*domain.Dish, 0)
	for cur.Next(ctx) {
		var dish domain.Dish
		if err := cur.Decode(&dish); err != nil {
			return nil, fmt.Errorf("decode dish: %w", err)
		}
		dishes = append(dishes, &dish)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

// Replace overwrites all mutable fields in one atomic update and returns the
// updated record. An unknown id maps to domain.ErrDishNotFound.
func (r *DishRepository) Replace(ctx context.Context, id int64, name, description string, price float64) (*domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"name": name, "description": description, "price": price}}

	var dish domain.Dish
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&dish)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("update dish: %w", err)
	}
	return &dish, nil
}

// Delete removes the dish and returns the deleted record.
func (r *DishRepository) Delete(ctx context.Context, id int64) (*domain.Dish, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var dish domain.Dish
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&dish)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("delete dish: %w", err)
	}
	return &dish, nil
}
