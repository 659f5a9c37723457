package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dishdash/dish-service/internal/core/domain"
)

type stubRatingRepo struct {
	mu      sync.Mutex
	nextID  int64
	ratings []*domain.Rating
}

func (r *stubRatingRepo) Create(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *rating
	created.ID = r.nextID
	r.ratings = append(r.ratings, &created)
	return &created, nil
}

func TestRatingService_Rate(t *testing.T) {
	repo := &stubRatingRepo{}
	svc := NewRatingService(repo, zerolog.Nop())

	rating, err := svc.Rate(context.Background(), 7, 3, 4.5)
	if err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if rating.UserID != 7 || rating.DishID != 3 || rating.Value != 4.5 {
		t.Fatalf("unexpected rating: %+v", rating)
	}
	if rating.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestRatingService_ConcurrentRatingsBothPersist(t *testing.T) {
	repo := &stubRatingRepo{}
	svc := NewRatingService(repo, zerolog.Nop())

	var wg sync.WaitGroup
	for _, userID := range []int64{1, 2} {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			if _, err := svc.Rate(context.Background(), uid, 3, 5); err != nil {
				t.Errorf("rate from user %d failed: %v", uid, err)
			}
		}(userID)
	}
	wg.Wait()

	if len(repo.ratings) != 2 {
		t.Fatalf("expected 2 ratings persisted, got %d", len(repo.ratings))
	}
	seen := map[int64]bool{}
	for _, r := range repo.ratings {
		seen[r.UserID] = true
	}
	if !seen[1] || !seen[2] {
		t.Fatalf("a concurrent rating was lost: %+v", repo.ratings)
	}
}
