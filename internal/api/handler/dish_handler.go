package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dishdash/dish-service/internal/api/metrics"
	"github.com/dishdash/dish-service/internal/core/domain"
	"github.com/dishdash/dish-service/internal/core/ports"
)

// DishHandler handles HTTP requests for dish CRUD operations. All routes
// sit behind the auth middleware.
type DishHandler struct {
	service ports.DishService
}

func NewDishHandler(service ports.DishService) *DishHandler {
	return &DishHandler{service: service}
}

// Create handles POST /dishes.
//
// @Summary      Create a dish
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dishRequest  true  "Dish fields"
// @Success      200   {object}  dishResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dishes [post]
func (h *DishHandler) Create(c echo.Context) error {
	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dish, err := h.service.Create(c.Request().Context(), ports.DishInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	metrics.DishesCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toDishResponse(dish))
}

// List handles GET /dishes.
//
// @Summary      List all dishes
// @Tags         dishes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dishResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /dishes [get]
func (h *DishHandler) List(c echo.Context) error {
	dishes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]dishResponse, 0, len(dishes))
	for _, d := range dishes {
		resp = append(resp, toDishResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /dishes/:id.
//
// @Summary      Get a dish by id
// @Tags         dishes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Dish id"
// @Success      200  {object}  dishResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /dishes/{id} [get]
func (h *DishHandler) Get(c echo.Context) error {
	id, err := dishID(c)
	if err != nil {
		return err
	}

	dish, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDishResponse(dish))
}

// Update handles PUT /dishes/:id. The update replaces name, description and
// price atomically; it is not a partial patch.
//
// @Summary      Replace a dish
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Dish id"
// @Param        body  body      dishRequest  true  "Replacement fields"
// @Success      200   {object}  dishConfirmation
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dishes/{id} [put]
func (h *DishHandler) Update(c echo.Context) error {
	id, err := dishID(c)
	if err != nil {
		return err
	}

	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dish, err := h.service.Update(c.Request().Context(), id, ports.DishInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dishConfirmation{
		Message: "dish updated",
		Data:    toDishResponse(dish),
	})
}

// Delete handles DELETE /dishes/:id.
//
// @Summary      Delete a dish
// @Tags         dishes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Dish id"
// @Success      200  {object}  dishConfirmation
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /dishes/{id} [delete]
func (h *DishHandler) Delete(c echo.Context) error {
	id, err := dishID(c)
	if err != nil {
		return err
	}

	dish, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dishConfirmation{
		Message: "dish deleted",
		Data:    toDishResponse(dish),
	})
}

func dishID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid dish id")
	}
	return id, nil
}

func toDishResponse(d *domain.Dish) dishResponse {
	return dishResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}
