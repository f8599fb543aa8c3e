// Package promo manages the promotional items shown on the landing page.
package promo

import "time"

// Item is one promotional card: a title, a display price, and a photo.
// Price is stored as entered ("45 lei", "de la 120 lei"), not parsed.
type Item struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Price     string    `json:"price"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"-"`
}
