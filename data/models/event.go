package models

// Category is one of the fixed event categories.
type Category string

const (
	CategorySports     Category = "Sports"
	CategoryMusic      Category = "Music"
	CategoryTech       Category = "Tech"
	CategoryFood       Category = "Food"
	CategoryArt        Category = "Art"
	CategoryNetworking Category = "Networking"
	CategoryEducation  Category = "Education"
	CategoryOther      Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategorySports,
	CategoryMusic,
	CategoryTech,
	CategoryFood,
	CategoryArt,
	CategoryNetworking,
	CategoryEducation,
	CategoryOther,
}

type Location struct {
	Name string  `json:"name" yaml:"name" validate:"required"`
	Lat  float64 `json:"lat" yaml:"lat" validate:"min=-90,max=90"`
	Lng  float64 `json:"lng" yaml:"lng" validate:"min=-180,max=180"`
}

// Event is the API representation of an event. DistanceInKm is only set on
// query results that were given a center point; it is never stored.
type Event struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Date                string   `json:"date"`
	MaxParticipants     int      `json:"maxParticipants"`
	CurrentParticipants int      `json:"currentParticipants"`
	Location            Location `json:"location"`
	Category            Category `json:"category,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	ImageURL            string   `json:"imageUrl,omitempty"`
	DistanceInKm        *float64 `json:"distanceInKm,omitempty"`
}

// Clone returns a deep copy of e, so callers can annotate results without
// touching what the store holds.
func (e Event) Clone() Event {
	c := e
	if e.Tags != nil {
		c.Tags = append([]string(nil), e.Tags...)
	}
	if e.DistanceInKm != nil {
		d := *e.DistanceInKm
		c.DistanceInKm = &d
	}
	return c
}

// NewEvent is the payload accepted when creating an event.
type NewEvent struct {
	Title           string    `json:"title" yaml:"title" validate:"required"`
	Description     string    `json:"description" yaml:"description" validate:"required"`
	Date            string    `json:"date" yaml:"date" validate:"required"`
	MaxParticipants int       `json:"maxParticipants" yaml:"maxParticipants" validate:"required,gt=0"`
	Location        *Location `json:"location" yaml:"location" validate:"required"`
	Category        Category  `json:"category,omitempty" yaml:"category" validate:"omitempty,oneof=Sports Music Tech Food Art Networking Education Other"`
	Tags            []string  `json:"tags,omitempty" yaml:"tags"`
	ImageURL        string    `json:"imageUrl,omitempty" yaml:"imageUrl" validate:"omitempty,url"`
}
