package service

import (
	"context"

	"github.com/Aftab0008/car-end/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// EmergencyService is the intake entry point the HTTP layer talks to.
type EmergencyService interface {
	Submit(ctx context.Context, req domain.CreateEmergencyRequest) error
}

// EmergencyStore persists validated request records.
type EmergencyStore interface {
	Create(ctx context.Context, req *domain.EmergencyRequest) error
}

// AddressResolver translates coordinates to a display address and never
// fails: provider trouble yields a degraded resolution.
type AddressResolver interface {
	Resolve(ctx context.Context, lat, lng float64) domain.AddressResolution
}

// Notifier dispatches the formatted alert to the configured recipient.
type Notifier interface {
	Send(ctx context.Context, req *domain.EmergencyRequest, address domain.AddressResolution) error
}
