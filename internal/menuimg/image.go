// Package menuimg manages the dish photos shown on the menu pages and keeps
// their database records aligned with the folders of the menu bucket.
package menuimg

import "time"

// Image is one stored dish photo. ImageURL is the public object-store URL
// and is unique across the table.
type Image struct {
	ID         int       `json:"id"`
	ImageURL   string    `json:"image_url"`
	AltText    string    `json:"alt_text"`
	CategoryID int       `json:"category_id"`
	CreatedAt  time.Time `json:"-"`
}

// SyncResult reports what one synchronization run changed.
type SyncResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}
