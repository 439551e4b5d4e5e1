package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"hbnb_web/internal/domain"
)

// Section texts, in the words the site has always shown them.
const (
	msgPlaceNotFound    = "Error: Place not found"
	msgPlaceUnavailable = "Unable to retrieve place details."
	msgReviewsFailed    = "Unable to load reviews."
	msgNoAmenities      = "No amenities listed"
)

// Assembler builds the place-detail page: place section first, then the
// review list with author names resolved one by one. A successful review
// submission triggers a fresh Assemble rather than patching the old page.
type Assembler struct {
	api domain.APIClient
	dir *Directory
	log zerolog.Logger
}

func NewAssembler(api domain.APIClient, dir *Directory, log zerolog.Logger) *Assembler {
	return &Assembler{api: api, dir: dir, log: log}
}

// Assemble fetches and formats everything the detail page shows. The two
// sections fail independently: a review failure never blanks the place info,
// while a place failure stops review loading entirely.
func (a *Assembler) Assemble(ctx context.Context, placeID, token string) domain.DetailPage {
	page := domain.DetailPage{PlaceID: placeID}

	if placeID == "" {
		page.Place.Err = msgPlaceNotFound
		return page
	}

	raw, err := a.api.GetPlace(ctx, placeID, token)
	if err != nil {
		a.log.Warn().Str("place_id", placeID).Err(err).Msg("place fetch failed")
		// A backend verdict (404 and friends) reads differently from never
		// reaching the backend at all.
		var se *domain.StatusError
		if errors.As(err, &se) {
			page.Place.Err = msgPlaceNotFound
		} else {
			page.Place.Err = msgPlaceUnavailable
		}
		return page
	}
	page.Place = formatPlace(mapPlace(raw))

	rawReviews, err := a.api.ListReviews(ctx, placeID)
	if err != nil {
		a.log.Warn().Str("place_id", placeID).Err(err).Msg("review fetch failed")
		page.Reviews.Err = msgReviewsFailed
		return page
	}
	if len(rawReviews) == 0 {
		page.Reviews.Empty = true
		return page
	}

	// Name lookups are awaited one at a time, in fetch order, so rows come
	// out top-to-bottom in the order the backend returned them no matter how
	// the individual lookups interleave. The resolver memoizes within this
	// assembly, so a repeat reviewer costs a single lookup.
	res := a.dir.ForRequest()
	page.Reviews.Rows = make([]domain.ReviewRow, 0, len(rawReviews))
	for _, rm := range rawReviews {
		rev := mapReview(rm)
		page.Reviews.Rows = append(page.Reviews.Rows, domain.ReviewRow{
			Author:  res.Resolve(ctx, rev.UserID),
			Stars:   Stars(rev.Rating),
			Comment: rev.Comment,
		})
	}
	return page
}

func formatPlace(p domain.Place) domain.PlaceSection {
	names := lo.Map(p.Amenities, func(am domain.Amenity, _ int) string { return am.Name })
	amenities := msgNoAmenities
	if len(names) > 0 {
		amenities = strings.Join(names, ", ")
	}
	return domain.PlaceSection{
		Title:       p.Title,
		Description: p.Description,
		Price:       fmt.Sprintf("%g€", p.Price),
		Coordinates: fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude),
		Amenities:   amenities,
	}
}

// Stars renders a rating as filled and hollow glyphs. Ratings clamp to
// [0,5] so a row always renders exactly five glyphs.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
