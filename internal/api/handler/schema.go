package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type dishRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

// rateDishRequest mirrors the wire contract of the rating route: the dish id
// travels as "did". The rating value is intentionally unbounded.
type rateDishRequest struct {
	DishID int64   `json:"did"    validate:"required"`
	Rating float64 `json:"rating"`
}

// --- Response types ---

type tokenResponse struct {
	Token string `json:"token"`
}

type registerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type dishResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// dishConfirmation wraps the affected record on update and delete.
type dishConfirmation struct {
	Message string       `json:"message"`
	Data    dishResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}
