package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/internal/observability"
	"github.com/Aftab0008/car-end/pkg/e"
	"github.com/Aftab0008/car-end/pkg/validator"
)

type emergencyService struct {
	store    EmergencyStore
	resolver AddressResolver
	notifier Notifier
	logger   *slog.Logger
	metrics  *observability.Metrics
}

func NewEmergencyService(
	store EmergencyStore,
	resolver AddressResolver,
	notifier Notifier,
	logger *slog.Logger,
	metrics *observability.Metrics,
) EmergencyService {
	return &emergencyService{
		store:    store,
		resolver: resolver,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// Submit runs the intake pipeline: validate, store, resolve address, notify.
// Durability wins over notification: the record is committed before any
// provider call, and a notify failure leaves it in place.
func (s *emergencyService) Submit(ctx context.Context, req domain.CreateEmergencyRequest) error {
	const op = "service.Emergency.Submit"

	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("intake validation failed", slog.Any("error", err))
		s.metrics.IntakeRequests.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%s: %w: %w", op, e.ErrInvalidRequest, err)
	}

	record := req.ToRecord()

	// The write must survive a caller disconnect; a reported emergency is
	// not dropped because the reporter's connection died.
	if err := s.store.Create(context.WithoutCancel(ctx), &record); err != nil {
		s.logger.Error("store request failed", slog.String("op", op), slog.Any("error", err))
		s.metrics.IntakeRequests.WithLabelValues("store_failed").Inc()
		return err
	}
	s.logger.Info("emergency request stored",
		slog.String("request_id", record.ID.String()),
		slog.Float64("lat", record.Latitude),
		slog.Float64("lng", record.Longitude),
	)

	address := s.resolver.Resolve(ctx, record.Latitude, record.Longitude)
	if address.Degraded {
		s.logger.Warn("address resolution degraded", slog.String("request_id", record.ID.String()))
	}

	if err := s.notifier.Send(ctx, &record, address); err != nil {
		// Record stays persisted; losing a notification beats losing the
		// underlying emergency.
		s.logger.Error("notify failed", slog.String("op", op),
			slog.String("request_id", record.ID.String()), slog.Any("error", err))
		s.metrics.IntakeRequests.WithLabelValues("notify_failed").Inc()
		return err
	}

	s.metrics.IntakeRequests.WithLabelValues("completed").Inc()
	return nil
}
