package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// HistoryService aggregates the per-user history across all sources.
type HistoryService interface {
	Load(ctx context.Context, id domain.Identity) (domain.AggregatedHistory, error)
}
