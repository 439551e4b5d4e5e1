package domain

// Read models consumed by the page templates. Sections carry their own Err
// so one section failing never blanks the other.

type PlaceCard struct {
	ID          string
	Title       string
	Description string
	Price       float64
}

type ListingPage struct {
	Cards    []PlaceCard
	Tier     string
	Tiers    []string
	LoggedIn bool
	Err      string
}

type PlaceSection struct {
	Title       string
	Description string
	Price       string
	Coordinates string
	Amenities   string
	Err         string
}

type ReviewRow struct {
	Author  string
	Stars   string
	Comment string
}

type ReviewsSection struct {
	Rows  []ReviewRow
	Empty bool
	Err   string
}

type DetailPage struct {
	PlaceID  string
	Place    PlaceSection
	Reviews  ReviewsSection
	LoggedIn bool

	// Flash is shown after a successful submit; FormErr re-renders the form
	// with the visitor's input preserved.
	Flash       string
	FormErr     string
	FormComment string
	FormRating  int
}

type LoginPage struct {
	Email    string
	Err      string
	LoggedIn bool
}
