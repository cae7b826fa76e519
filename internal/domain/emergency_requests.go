package domain

import "strings"

// CreateEmergencyRequest is the inbound intake payload. Coordinates are
// pointers so that a missing or non-numeric value fails validation while a
// legitimate 0 passes.
type CreateEmergencyRequest struct {
	Name      string   `json:"name" validate:"required,notblank"`
	Phone     string   `json:"phone" validate:"required,notblank"`
	Issue     string   `json:"issue" validate:"required,notblank"`
	Vehicle   string   `json:"vehicle" validate:"required,notblank"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// ToRecord builds the entity to persist, trimming surrounding whitespace
// from the text fields. Call only after validation passed.
func (r CreateEmergencyRequest) ToRecord() EmergencyRequest {
	return EmergencyRequest{
		Name:      strings.TrimSpace(r.Name),
		Phone:     strings.TrimSpace(r.Phone),
		Issue:     strings.TrimSpace(r.Issue),
		Vehicle:   strings.TrimSpace(r.Vehicle),
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
	}
}
