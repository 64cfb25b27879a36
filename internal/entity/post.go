package entity

import "time"

// Post is one shared image. ImageName is the object-store key: 64 hex
// characters drawn from a cryptographically random source at creation.
// ImageURL is derived at read time from the CDN base and is never
// persisted.
type Post struct {
	ID        uint      `json:"id"`
	ImageName string    `json:"imageName"`
	Caption   string    `json:"caption"`
	Created   time.Time `json:"created"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}
