package domain

// FallbackAddress is what the notification carries when reverse geocoding
// could not produce a display address.
const FallbackAddress = "Unknown location"

// AddressResolution is the outcome of a reverse-geocode lookup. Resolution
// never fails the pipeline: a failed lookup yields a degraded value instead
// of an error.
type AddressResolution struct {
	Address  string `json:"address"`
	Degraded bool   `json:"degraded"`
}

func ResolvedAddress(address string) AddressResolution {
	return AddressResolution{Address: address}
}

func DegradedAddress() AddressResolution {
	return AddressResolution{Address: FallbackAddress, Degraded: true}
}
