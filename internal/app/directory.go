package app

import (
	"context"

	"golang.org/x/sync/singleflight"

	"hbnb_web/internal/domain"
)

// UnknownUser is the display name shown whenever a lookup fails or the
// profile carries no usable name. The degradation is deliberate and silent;
// a reviewer's name is cosmetic and must never block or drop the row.
const UnknownUser = "Unknown user"

// Directory resolves reviewer ids to display names.
type Directory struct {
	api domain.APIClient
	sf  singleflight.Group
}

func NewDirectory(api domain.APIClient) *Directory {
	return &Directory{api: api}
}

// Resolve returns the display name for id. Identical concurrent lookups
// collapse into one backend call; nothing is cached once the call returns,
// so no name outlives the page views that asked for it.
func (d *Directory) Resolve(ctx context.Context, id string) string {
	if id == "" {
		return UnknownUser
	}
	v, _, _ := d.sf.Do(id, func() (any, error) {
		u, err := d.api.GetUser(ctx, id)
		if err != nil {
			return "", nil
		}
		return mapUserName(u), nil
	})
	if name, _ := v.(string); name != "" {
		return name
	}
	return UnknownUser
}

// ForRequest returns a resolver whose memo lives exactly as long as one page
// assembly: repeat reviewers on a page cost one lookup, and the memo is
// dropped with the resolver, so no name survives into the next page view.
func (d *Directory) ForRequest() *RequestResolver {
	return &RequestResolver{dir: d, names: map[string]string{}}
}

// RequestResolver is used from a single goroutine per request; no locking.
type RequestResolver struct {
	dir   *Directory
	names map[string]string
}

func (r *RequestResolver) Resolve(ctx context.Context, id string) string {
	if name, ok := r.names[id]; ok {
		return name
	}
	name := r.dir.Resolve(ctx, id)
	r.names[id] = name
	return name
}
