package domain

import "time"

// Rating records a single user's rating of a dish. Ratings are append-only:
// no read, update or delete operation is exposed. DishID is not checked
// against the dishes collection; the value carries no bounds.
type Rating struct {
	ID        int64     `json:"id" bson:"_id"`
	UserID    int64     `json:"user_id" bson:"user_id"`
	DishID    int64     `json:"dish_id" bson:"dish_id"`
	Value     float64   `json:"value" bson:"value"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
