package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dishdash/dish-service/internal/core/domain"
	"github.com/dishdash/dish-service/internal/core/ports"
)

type stubDishService struct {
	createFn func(ctx context.Context, input ports.DishInput) (*domain.Dish, error)
	getFn    func(ctx context.Context, id int64) (*domain.Dish, error)
	listFn   func(ctx context.Context) ([]*domain.Dish, error)
	updateFn func(ctx context.Context, id int64, input ports.DishInput) (*domain.Dish, error)
	deleteFn func(ctx context.Context, id int64) (*domain.Dish, error)
}

func (s *stubDishService) Create(ctx context.Context, input ports.DishInput) (*domain.Dish, error) {
	return s.createFn(ctx, input)
}
func (s *stubDishService) Get(ctx context.Context, id int64) (*domain.Dish, error) {
	return s.getFn(ctx, id)
}
func (s *stubDishService) List(ctx context.Context) ([]*domain.Dish, error) {
	return s.listFn(ctx)
}
func (s *stubDishService) Update(ctx context.Context, id int64, input ports.DishInput) (*domain.Dish, error) {
	return s.updateFn(ctx, id, input)
}
func (s *stubDishService) Delete(ctx context.Context, id int64) (*domain.Dish, error) {
	return s.deleteFn(ctx, id)
}

func newDishContext(t *testing.T, method, body string, pathParams map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	return c, rec
}

func TestDishHandler_Create(t *testing.T) {
	stub := &stubDishService{
		createFn: func(ctx context.Context, input ports.DishInput) (*domain.Dish, error) {
			if input.Name != "Soup" || input.Description != "Hot" || input.Price != 5.00 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Dish{ID: 1, Name: input.Name, Description: input.Description, Price: input.Price}, nil
		},
	}
	h := NewDishHandler(stub)

	c, rec := newDishContext(t, http.MethodPost, `{"name":"Soup","description":"Hot","price":5.00}`, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dishResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 1 || resp.Name != "Soup" || resp.Price != 5.00 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestDishHandler_Create_NegativePrice(t *testing.T) {
	stub := &stubDishService{
		createFn: func(ctx context.Context, input ports.DishInput) (*domain.Dish, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewDishHandler(stub)

	c, _ := newDishContext(t, http.MethodPost, `{"name":"Soup","description":"Hot","price":-1}`, nil)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %v", err)
	}
}

func TestDishHandler_Get(t *testing.T) {
	stub := &stubDishService{
		getFn: func(ctx context.Context, id int64) (*domain.Dish, error) {
			if id != 7 {
				t.Fatalf("expected id 7, got %d", id)
			}
			return &domain.Dish{ID: 7, Name: "Soup", Description: "Hot", Price: 5.00}, nil
		},
	}
	h := NewDishHandler(stub)

	c, rec := newDishContext(t, http.MethodGet, "", map[string]string{"id": "7"})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDishHandler_Get_Missing(t *testing.T) {
	stub := &stubDishService{
		getFn: func(ctx context.Context, id int64) (*domain.Dish, error) {
			return nil, domain.ErrDishNotFound
		},
	}
	h := NewDishHandler(stub)

	c, _ := newDishContext(t, http.MethodGet, "", map[string]string{"id": "404"})
	if err := h.Get(c); err != domain.ErrDishNotFound {
		t.Fatalf("expected ErrDishNotFound to propagate, got %v", err)
	}
}

func TestDishHandler_Get_InvalidID(t *testing.T) {
	stub := &stubDishService{
		getFn: func(ctx context.Context, id int64) (*domain.Dish, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewDishHandler(stub)

	c, _ := newDishContext(t, http.MethodGet, "", map[string]string{"id": "soup"})
	err := h.Get(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer id, got %v", err)
	}
}

func TestDishHandler_List(t *testing.T) {
	stub := &stubDishService{
		listFn: func(ctx context.Context) ([]*domain.Dish, error) {
			return []*domain.Dish{
				{ID: 1, Name: "Soup", Description: "Hot", Price: 5.00},
				{ID: 2, Name: "Stew", Description: "Thick", Price: 7.50},
			}, nil
		},
	}
	h := NewDishHandler(stub)

	c, rec := newDishContext(t, http.MethodGet, "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []dishResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(resp))
	}
}

func TestDishHandler_Update(t *testing.T) {
	stub := &stubDishService{
		updateFn: func(ctx context.Context, id int64, input ports.DishInput) (*domain.Dish, error) {
			if id != 7 {
				t.Fatalf("expected id 7, got %d", id)
			}
			return &domain.Dish{ID: id, Name: input.Name, Description: input.Description, Price: input.Price}, nil
		},
	}
	h := NewDishHandler(stub)

	c, rec := newDishContext(t, http.MethodPut, `{"name":"Stew","description":"Thick","price":7.50}`, map[string]string{"id": "7"})
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp dishConfirmation
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "dish updated" || resp.Data.Name != "Stew" || resp.Data.Price != 7.50 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestDishHandler_Delete(t *testing.T) {
	stub := &stubDishService{
		deleteFn: func(ctx context.Context, id int64) (*domain.Dish, error) {
			return &domain.Dish{ID: id, Name: "Soup", Description: "Hot", Price: 5.00}, nil
		},
	}
	h := NewDishHandler(stub)

	c, rec := newDishContext(t, http.MethodDelete, "", map[string]string{"id": "7"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp dishConfirmation
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "dish deleted" || resp.Data.ID != 7 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestDishHandler_Delete_Missing(t *testing.T) {
	stub := &stubDishService{
		deleteFn: func(ctx context.Context, id int64) (*domain.Dish, error) {
			return nil, domain.ErrDishNotFound
		},
	}
	h := NewDishHandler(stub)

	c, _ := newDishContext(t, http.MethodDelete, "", map[string]string{"id": "404"})
	if err := h.Delete(c); err != domain.ErrDishNotFound {
		t.Fatalf("expected ErrDishNotFound to propagate, got %v", err)
	}
}
