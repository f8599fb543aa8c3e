// Package gallery manages the restaurant photo gallery.
package gallery

import "time"

// Image is one gallery photo.
type Image struct {
	ID        int       `json:"id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	CreatedAt time.Time `json:"-"`
}
