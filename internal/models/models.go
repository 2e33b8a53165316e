package models

import (
	"time"

	"github.com/google/uuid"
)

// Suggestion is one outfit handed out for an event.
type Suggestion struct {
	ID        uuid.UUID `json:"id"`
	Event     string    `json:"event"`
	Top       string    `json:"top"`
	Bottom    string    `json:"bottom"`
	CreatedAt time.Time `json:"created_at"`
}

// Wardrobe lists everything that can be suggested for an event.
type Wardrobe struct {
	Event   string   `json:"event"`
	Tops    []string `json:"tops"`
	Bottoms []string `json:"bottoms"`
}
