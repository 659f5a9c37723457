package domain

// Dish is the shared catalogue entry. There is no ownership field: any
// authenticated user may read or mutate any dish. Updates replace all three
// mutable fields in one write; partial patches are not supported.
type Dish struct {
	ID          int64   `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
}
