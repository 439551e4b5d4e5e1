package domain

type Amenity struct {
	Name string
}

type Place struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	Amenities   []Amenity
}
