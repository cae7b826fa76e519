package notify

import (
	"fmt"

	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/internal/geocode"
)

const mapURLTemplate = "https://www.google.com/maps?q=%s"

// MapURL builds the map-viewer link from the raw coordinates. The resolved
// address never feeds this link; responders follow coordinates, not the
// possibly-degraded display string.
func MapURL(lat, lng float64) string {
	return fmt.Sprintf(mapURLTemplate, geocode.FormatCoords(lat, lng))
}

// ComposeMessage renders the fixed alert template, one field per line.
func ComposeMessage(req *domain.EmergencyRequest, address domain.AddressResolution) string {
	return fmt.Sprintf(
		"New Emergency Request:\nName: %s\nPhone: %s\nIssue: %s\nVehicle: %s\nAddress: %s\nMap: %s",
		req.Name,
		req.Phone,
		req.Issue,
		req.Vehicle,
		address.Address,
		MapURL(req.Latitude, req.Longitude),
	)
}
