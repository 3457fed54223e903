package status_metrics

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type Service interface {
	SnapshotStatusCounts(ctx context.Context) (map[entities.FulfillmentStatusType]int64, error)
}

type StatusMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatusMetrics(log logger.Logger, service Service, interval time.Duration) *StatusMetrics {
	return &StatusMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatusMetrics) TTL() time.Duration {
	return s.interval
}

func (s *StatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.SnapshotStatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	// выставляем и нули, чтобы гейдж опустевшего статуса не замирал
	for _, status := range entities.FulfillmentStatuses() {
		OrdersTotal.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (s *StatusMetrics) Info() string {
	return "order status metrics"
}
