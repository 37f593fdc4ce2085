package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EventRecord is the flattened row stored in the events table. Field order must
// match the column order of the schema since rows are scanned positionally.
type EventRecord struct {
	Seq                 int64   `db:"seq" readOnly:"true"`
	ID                  string  `db:"id"`
	Title               string  `db:"title"`
	Description         string  `db:"description"`
	Date                string  `db:"date"`
	MaxParticipants     int     `db:"max_participants"`
	CurrentParticipants int     `db:"current_participants"`
	LocationName        string  `db:"location_name"`
	Lat                 float64 `db:"lat"`
	Lng                 float64 `db:"lng"`
	Category            string  `db:"category"`
	Tags                Tags    `db:"tags"`
	ImageURL            string  `db:"image_url"`
}

func (EventRecord) TableName() string {
	return "events"
}

func (r EventRecord) GetID() string {
	return r.ID
}

func (r EventRecord) EmptySlice() interface{} {
	return &[]EventRecord{}
}

// NewEventRecord flattens an Event into its row form.
func NewEventRecord(e Event) EventRecord {
	return EventRecord{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Date:                e.Date,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		LocationName:        e.Location.Name,
		Lat:                 e.Location.Lat,
		Lng:                 e.Location.Lng,
		Category:            string(e.Category),
		Tags:                Tags(e.Tags),
		ImageURL:            e.ImageURL,
	}
}

// Event converts the row back into its API form.
func (r EventRecord) Event() Event {
	return Event{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		Date:                r.Date,
		MaxParticipants:     r.MaxParticipants,
		CurrentParticipants: r.CurrentParticipants,
		Location: Location{
			Name: r.LocationName,
			Lat:  r.Lat,
			Lng:  r.Lng,
		},
		Category: Category(r.Category),
		Tags:     []string(r.Tags),
		ImageURL: r.ImageURL,
	}
}

// Tags is a list of event tags stored as a JSON array.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("failed to decode tags: %w", err)
	}
	if len(tags) == 0 {
		tags = nil
	}
	*t = tags
	return nil
}
