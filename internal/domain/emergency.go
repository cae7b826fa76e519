package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyRequest is the persisted record of one reported emergency.
// Immutable once stored.
type EmergencyRequest struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Issue     string    `json:"issue"`
	Vehicle   string    `json:"vehicle"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
