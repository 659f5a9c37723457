package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dishdash/dish-service/internal/core/domain"
	"github.com/dishdash/dish-service/internal/core/ports"
)

type stubDishRepo struct {
	dishes map[int64]*domain.Dish
	nextID int64
}

func newStubDishRepo() *stubDishRepo {
	return &stubDishRepo{dishes: make(map[int64]*domain.Dish)}
}

func (r *stubDishRepo) Create(_ context.Context, name, description string, price float64) (*domain.Dish, error) {
	r.nextID++
	dish := &domain.Dish{ID: r.nextID, Name: name, Description: description, Price: price}
	r.dishes[dish.ID] = dish
	return dish, nil
}

func (r *stubDishRepo) FindByID(_ context.Context, id int64) (*domain.Dish, error) {
	dish, ok := r.dishes[id]
	if !ok {
		return nil, domain.ErrDishNotFound
	}
	clone := *dish
	return &clone, nil
}

func (r *stubDishRepo) FindAll(_ context.Context) ([]*domain.Dish, error) {
	out := make([]*domain.Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubDishRepo) Replace(_ context.Context, id int64, name, description string, price float64) (*domain.Dish, error) {
	if _, ok := r.dishes[id]; !ok {
		return nil, domain.ErrDishNotFound
	}
	dish := &domain.Dish{ID: id, Name: name, Description: description, Price: price}
	r.dishes[id] = dish
	clone := *dish
	return &clone, nil
}

func (r *stubDishRepo) Delete(_ context.Context, id int64) (*domain.Dish, error) {
	dish, ok := r.dishes[id]
	if !ok {
		return nil, domain.ErrDishNotFound
	}
	delete(r.dishes, id)
	return dish, nil
}

func TestDishService_CreateAndGet(t *testing.T) {
	svc := NewDishService(newStubDishRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.DishInput{Name: "Soup", Description: "Hot", Price: 5.00})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Soup" || got.Description != "Hot" || got.Price != 5.00 {
		t.Fatalf("unexpected dish: %+v", got)
	}
}

func TestDishService_UpdateReplacesAllFields(t *testing.T) {
	svc := NewDishService(newStubDishRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.DishInput{Name: "Soup", Description: "Hot", Price: 5.00})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.DishInput{Name: "Stew", Description: "Thick", Price: 7.50})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Stew" || updated.Description != "Thick" || updated.Price != 7.50 {
		t.Fatalf("update did not replace all fields: %+v", updated)
	}

	// fetch again: must be the replacement, not a merge of old and new
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Stew" || got.Description != "Thick" || got.Price != 7.50 {
		t.Fatalf("stored dish is a merge, not a replacement: %+v", got)
	}
}

func TestDishService_GetMissing(t *testing.T) {
	svc := NewDishService(newStubDishRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), 404); err != domain.ErrDishNotFound {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
}

func TestDishService_DeleteReturnsRecord(t *testing.T) {
	svc := NewDishService(newStubDishRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.DishInput{Name: "Soup", Description: "Hot", Price: 5.00})

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != created.ID || deleted.Name != "Soup" {
		t.Fatalf("unexpected deleted record: %+v", deleted)
	}

	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrDishNotFound {
		t.Fatalf("expected ErrDishNotFound after delete, got %v", err)
	}

	if _, err := svc.Delete(context.Background(), created.ID); err != domain.ErrDishNotFound {
		t.Fatalf("expected ErrDishNotFound on double delete, got %v", err)
	}
}

func TestDishService_List(t *testing.T) {
	svc := NewDishService(newStubDishRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.DishInput{Name: "Soup", Description: "Hot", Price: 5.00})
	_, _ = svc.Create(context.Background(), ports.DishInput{Name: "Stew", Description: "Thick", Price: 7.50})

	dishes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(dishes) != 2 {
		t.Fatalf("expected 2 dishes, got %d", len(dishes))
	}
}
