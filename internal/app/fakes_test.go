package app_test

import (
	"context"

	"hbnb_web/internal/domain"
)

// fakeAPI implements domain.APIClient and counts calls so tests can assert
// that guard failures never reach the network.
type fakeAPI struct {
	loginToken string
	loginErr   error
	places     []map[string]any
	placesErr  error
	place      map[string]any
	placeErr   error
	reviews    []map[string]any
	reviewsErr error
	users      map[string]map[string]any
	userErr    error
	postErr    error

	loginCalls  int
	placeCalls  int
	reviewCalls int
	postCalls   int
	userCalls   []string
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.loginCalls++
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) ListPlaces(ctx context.Context, token string) ([]map[string]any, error) {
	return f.places, f.placesErr
}

func (f *fakeAPI) GetPlace(ctx context.Context, id, token string) (map[string]any, error) {
	f.placeCalls++
	return f.place, f.placeErr
}

func (f *fakeAPI) ListReviews(ctx context.Context, placeID string) ([]map[string]any, error) {
	f.reviewCalls++
	return f.reviews, f.reviewsErr
}

func (f *fakeAPI) PostReview(ctx context.Context, token, placeID, text string, rating int) error {
	f.postCalls++
	return f.postErr
}

func (f *fakeAPI) GetUser(ctx context.Context, id string) (map[string]any, error) {
	f.userCalls = append(f.userCalls, id)
	if f.userErr != nil {
		return nil, f.userErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
