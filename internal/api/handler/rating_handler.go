package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dishdash/dish-service/internal/api/metrics"
	"github.com/dishdash/dish-service/internal/api/middleware"
	"github.com/dishdash/dish-service/internal/core/ports"
)

type RatingHandler struct {
	service ports.RatingService
}

func NewRatingHandler(service ports.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Rate handles POST /dish/rate. The acting user is always taken from the
// authenticated context, never from the request body. The route is rate
// limited after authentication.
//
// @Summary      Rate a dish
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rateDishRequest  true  "Dish id and rating value"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dish/rate [post]
func (h *RatingHandler) Rate(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req rateDishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Rate(c.Request().Context(), userID, req.DishID, req.Rating); err != nil {
		return err
	}

	metrics.RatingsSubmittedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "successfully rated the dish"})
}
