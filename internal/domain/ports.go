package domain

import "context"

// APIClient is the outbound port to the rental backend. Responses come back
// as loose maps; field normalization happens in the app mappers, which is
// where the title/name and comment/text fallbacks live.
type APIClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListPlaces(ctx context.Context, token string) ([]map[string]any, error)
	GetPlace(ctx context.Context, id, token string) (map[string]any, error)
	ListReviews(ctx context.Context, placeID string) ([]map[string]any, error)
	PostReview(ctx context.Context, token, placeID, text string, rating int) error
	GetUser(ctx context.Context, id string) (map[string]any, error)
}
