package app

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"hbnb_web/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Backends differ on which key carries a given field; the detail view is
// required to fall back (title -> name, comment -> text).

var placeAliases = map[string][]string{
	"id":          {"id", "place_id"},
	"title":       {"title", "name"},
	"description": {"description"},
	"price":       {"price", "price_by_night"},
	"lat":         {"latitude", "lat"},
	"lon":         {"longitude", "lon", "lng"},
}

var reviewAliases = map[string][]string{
	"user":    {"user_id", "userId", "author_id"},
	"comment": {"comment", "text"},
	"rating":  {"rating", "rate"},
}

/********** tiny helpers **********/

func firstStr(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstFloat accepts float64/int/string forms of a number.
func firstFloat(m map[string]any, keys []string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

/********** mappers **********/

func mapPlace(m map[string]any) domain.Place {
	p := domain.Place{
		ID:          firstStr(m, placeAliases["id"]),
		Title:       firstStr(m, placeAliases["title"]),
		Description: firstStr(m, placeAliases["description"]),
		Price:       firstFloat(m, placeAliases["price"]),
		Latitude:    firstFloat(m, placeAliases["lat"]),
		Longitude:   firstFloat(m, placeAliases["lon"]),
	}
	if raw, ok := m["amenities"].([]any); ok {
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					p.Amenities = append(p.Amenities, domain.Amenity{Name: t})
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					p.Amenities = append(p.Amenities, domain.Amenity{Name: n})
				}
			}
		}
	}
	return p
}

func mapReview(m map[string]any) domain.Review {
	return domain.Review{
		UserID:  firstStr(m, reviewAliases["user"]),
		Rating:  int(firstFloat(m, reviewAliases["rating"])),
		Comment: firstStr(m, reviewAliases["comment"]),
	}
}

// mapUserName accepts a flat name field or a first/last pair; "" means the
// profile carried nothing usable.
func mapUserName(m map[string]any) string {
	if n := firstStr(m, []string{"name", "username"}); n != "" {
		return n
	}
	first, _ := m["first_name"].(string)
	last, _ := m["last_name"].(string)
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// MapCards converts the raw listing payload into cards for the index page.
func MapCards(raw []map[string]any) []domain.PlaceCard {
	return lo.Map(raw, func(m map[string]any, _ int) domain.PlaceCard {
		p := mapPlace(m)
		return domain.PlaceCard{ID: p.ID, Title: p.Title, Description: p.Description, Price: p.Price}
	})
}
